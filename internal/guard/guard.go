// Package guard implements the role-based route authorization decision.
package guard

import (
	"github.com/repomarket/repomarket/internal/core/domain"
	"github.com/repomarket/repomarket/internal/core/ports"
)

// Client-visible routes used by redirect decisions.
const (
	RouteLogin     = "/login"
	RouteHome      = "/home"
	RouteForbidden = "/forbidden"
)

// Action is the outcome class of a guard decision.
type Action int

const (
	// Render means the protected content may be shown.
	Render Action = iota
	// Loading means session state is still being established; show a
	// placeholder, do not redirect.
	Loading
	// Redirect means navigation to Decision.Target.
	Redirect
)

// Decision is the guard's verdict for one navigation.
type Decision struct {
	Action Action
	Target string
}

// Decide gates access to a role-restricted subtree. It is a pure function of
// the required role and the current session; callers must re-evaluate it on
// every navigation rather than caching the result.
//
// A wrong-role authenticated user is bounced to the authenticated home, not
// the forbidden page: access control here is normal flow, not an error.
func Decide(required domain.Role, s domain.Session) Decision {
	switch {
	case s.Loading:
		return Decision{Action: Loading}
	case !s.Authenticated || s.User == nil:
		return Decision{Action: Redirect, Target: RouteLogin}
	case !s.User.Role.Equal(required):
		return Decision{Action: Redirect, Target: RouteHome}
	default:
		return Decision{Action: Render}
	}
}

// Evaluate applies Decide and performs the redirect side effect through nav.
// It returns the decision so the caller can render content or a placeholder.
func Evaluate(required domain.Role, s domain.Session, nav ports.Navigator) Decision {
	d := Decide(required, s)
	if d.Action == Redirect && nav != nil {
		nav.Navigate(d.Target)
	}
	return d
}
