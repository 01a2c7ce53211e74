package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

func mintToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func runAuth(t *testing.T, header string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/current-user", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	return c, Auth(testSecret)(next)(c)
}

func TestAuth_ValidToken(t *testing.T) {
	token := mintToken(t, testSecret, jwt.MapClaims{
		"userId": "u1",
		"name":   "Ann",
		"role":   "DEVELOPER",
		"exp":    time.Now().Add(time.Hour).Unix(),
	})

	c, err := runAuth(t, "Bearer "+token)
	if err != nil {
		t.Fatalf("auth middleware: %v", err)
	}
	if got, _ := c.Get("userId").(string); got != "u1" {
		t.Fatalf("userId claim = %q", got)
	}
	if got, _ := c.Get("role").(string); got != "DEVELOPER" {
		t.Fatalf("role claim = %q", got)
	}
}

func TestAuth_BearerIsCaseInsensitive(t *testing.T) {
	token := mintToken(t, testSecret, jwt.MapClaims{
		"userId": "u1",
		"exp":    time.Now().Add(time.Hour).Unix(),
	})

	if _, err := runAuth(t, "bearer "+token); err != nil {
		t.Fatalf("lowercase scheme rejected: %v", err)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	_, err := runAuth(t, "")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	for _, header := range []string{"tok-only", "Basic abc123"} {
		_, err := runAuth(t, header)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %v", header, err)
		}
	}
}

func TestAuth_WrongSecret(t *testing.T) {
	token := mintToken(t, "other-secret", jwt.MapClaims{
		"userId": "u1",
		"exp":    time.Now().Add(time.Hour).Unix(),
	})

	_, err := runAuth(t, "Bearer "+token)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	token := mintToken(t, testSecret, jwt.MapClaims{
		"userId": "u1",
		"exp":    time.Now().Add(-time.Hour).Unix(),
	})

	_, err := runAuth(t, "Bearer "+token)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
