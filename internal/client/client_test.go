package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/repomarket/repomarket/internal/core/domain"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := New(Config{BaseURL: srv.URL}, zerolog.Nop())
	return c, srv
}

func TestLogin_HappyPath(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["role"] != "DEVELOPER" {
			t.Errorf("role not upper-cased: %q", body["role"])
		}
		_, _ = w.Write([]byte(`{"success":true,"data":{"userId":"u1","name":"Ann","role":"DEVELOPER","token":"tok1"}}`))
	}))

	res, err := c.Login(context.Background(), "a@b.com", "pw", "developer")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.Token != "tok1" {
		t.Fatalf("token = %q", res.Token)
	}
	u := res.User
	if u.ID != "u1" || u.Name != "Ann" || u.Role != domain.RoleDeveloper || u.Email != "a@b.com" || !u.Active {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestLogin_SynthesizesMissingUserID(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"name":"Ann","role":"ADMIN","token":"tok1"}}`))
	}))

	res, err := c.Login(context.Background(), "a@b.com", "pw", "")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.User.ID == "" {
		t.Fatalf("expected a synthesized user id")
	}
}

func TestLogin_MissingTokenIsBadResponse(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":{"name":"Ann"}}`))
	}))

	_, err := c.Login(context.Background(), "a@b.com", "pw", "")
	if !errKind(err, KindBadResponse) {
		t.Fatalf("expected bad-response error, got %v", err)
	}
}

func TestRegister_BuyerWithoutOrganizationFailsBeforeNetwork(t *testing.T) {
	var calls atomic.Int64
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))

	_, err := c.Register(context.Background(), domain.Registration{
		Email:    "b@b.com",
		Password: "pw",
		Name:     "Bob",
		Role:     domain.RoleBuyer,
	})
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if got := err.Error(); got != "organization name is required for buyer registration" {
		t.Fatalf("message must name the business field, got %q", got)
	}
	if calls.Load() != 0 {
		t.Fatalf("expected zero network calls, got %d", calls.Load())
	}
}

func TestRegister_CompanyNameMapsToOrganization(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["organization"] != "Acme" {
			t.Errorf("companyName not mapped, body: %v", body)
		}
		_, _ = w.Write([]byte(`{"data":{"userId":"u2","name":"Bob","role":"BUYER","token":"tok2"}}`))
	}))

	res, err := c.Register(context.Background(), domain.Registration{
		Email:       "b@b.com",
		Password:    "pw",
		Name:        "Bob",
		Role:        domain.RoleBuyer,
		CompanyName: "Acme",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if res.User.Organization != "Acme" {
		t.Fatalf("organization = %q", res.User.Organization)
	}
}

func TestGlobal401_FiresHookForAnyRequest(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"token expired"}`))
	}))

	var fired atomic.Int64
	c.OnUnauthorized(func() { fired.Add(1) })

	// Not an auth-manager call: the hook runs regardless of the caller.
	err := c.Get(context.Background(), "/api/projects", nil)
	if !IsUnauthorized(err) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
	if err.Error() != "token expired" {
		t.Fatalf("backend message lost: %q", err.Error())
	}
	if fired.Load() != 1 {
		t.Fatalf("hook fired %d times", fired.Load())
	}
}

func TestGlobal403_FiresForbiddenHookOnly(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))

	var unauthorized, forbidden atomic.Int64
	c.OnUnauthorized(func() { unauthorized.Add(1) })
	c.OnForbidden(func() { forbidden.Add(1) })

	err := c.Get(context.Background(), "/api/admin/users", nil)
	if !IsForbidden(err) {
		t.Fatalf("expected forbidden error, got %v", err)
	}
	if forbidden.Load() != 1 || unauthorized.Load() != 0 {
		t.Fatalf("hooks: forbidden=%d unauthorized=%d", forbidden.Load(), unauthorized.Load())
	}
}

func TestServerError_GenericMessage(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"stack trace here"}`))
	}))

	err := c.Get(context.Background(), "/api/anything", nil)
	if !errKind(err, KindServer) {
		t.Fatalf("expected server error, got %v", err)
	}
	if err.Error() != "Server error occurred. Please check server logs." {
		t.Fatalf("5xx must not leak backend details: %q", err.Error())
	}
}

func TestOtherStatus_SurfacesBackendMessage(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"user already exists"}`))
	}))

	err := c.Post(context.Background(), "/auth/register", map[string]string{}, nil)
	if !errKind(err, KindRequest) {
		t.Fatalf("expected request error, got %v", err)
	}
	if err.Error() != "user already exists" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestTimeout_IsDistinguishedAndRetriable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()
	c := New(Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond}, zerolog.Nop())

	err := c.Get(context.Background(), "/slow", nil)
	if !IsTimeout(err) {
		t.Fatalf("expected timeout error, got %v", err)
	}
}

func TestNetworkError_IsDistinguished(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on
	c := New(Config{BaseURL: srv.URL}, zerolog.Nop())

	err := c.Get(context.Background(), "/unreachable", nil)
	if !IsNetwork(err) {
		t.Fatalf("expected network error, got %v", err)
	}
}

func TestBareStringResponse_PassesThrough(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`"tok-raw"`))
	}))

	var tok string
	if err := c.Post(context.Background(), "/auth/refresh", nil, &tok); err != nil {
		t.Fatalf("post: %v", err)
	}
	if tok != "tok-raw" {
		t.Fatalf("token = %q", tok)
	}
}

func TestBearerHeader_AttachedWhenTokenPresent(t *testing.T) {
	var seen string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))

	if err := c.Get(context.Background(), "/api/x", nil); err != nil {
		t.Fatalf("get: %v", err)
	}
	if seen != "" {
		t.Fatalf("no token source: header should be absent, got %q", seen)
	}

	c.SetTokenSource(func() string { return "tok9" })
	if err := c.Get(context.Background(), "/api/x", nil); err != nil {
		t.Fatalf("get: %v", err)
	}
	if seen != "Bearer tok9" {
		t.Fatalf("header = %q", seen)
	}
}

func TestCurrentUser(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/current-user" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"data":{"id":"u1","email":"a@b.com","name":"Ann","role":"ADMIN","active":true}}`))
	}))

	user, err := c.CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if user.ID != "u1" || user.Role != domain.RoleAdmin {
		t.Fatalf("unexpected user: %+v", user)
	}
}
