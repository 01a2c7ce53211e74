package domain

// Session is the in-memory representation of the current authenticated
// identity as exposed by the session manager. It is a snapshot value: readers
// get a copy and never observe partial updates.
type Session struct {
	User          *User
	Token         string
	Authenticated bool
	// Loading is true only during startup rehydration or while a
	// login/register call is in flight.
	Loading bool
}

// Consistent reports whether the core session invariant holds:
// authenticated iff both a user and a token are present.
func (s Session) Consistent() bool {
	return s.Authenticated == (s.User != nil && s.Token != "")
}

// AuthResult is what a successful login or registration yields.
type AuthResult struct {
	Token string
	User  *User
}

// Registration carries the fields collected by the register flow.
// CompanyName is an accepted alias for Organization (the sign-up page
// collects a company name, not an organization); it is mapped to
// Organization before transmission.
type Registration struct {
	Email        string
	Password     string
	Name         string
	Role         Role
	Organization string
	CompanyName  string
	PhoneNumber  string
}
