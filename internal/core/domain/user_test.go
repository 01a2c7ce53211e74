package domain

import "testing"

func TestParseRole(t *testing.T) {
	cases := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"ADMIN", RoleAdmin, true},
		{"admin", RoleAdmin, true},
		{"Developer", RoleDeveloper, true},
		{" buyer ", RoleBuyer, true},
		{"", "", false},
		{"superuser", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseRole(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseRole(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestRoleEqual_CaseInsensitive(t *testing.T) {
	if !RoleAdmin.Equal("admin") {
		t.Fatalf("expected ADMIN to equal admin")
	}
	if !RoleAdmin.Equal("Admin") {
		t.Fatalf("expected ADMIN to equal Admin")
	}
	if RoleAdmin.Equal("buyer") {
		t.Fatalf("ADMIN should not equal buyer")
	}
}

func TestSessionConsistent(t *testing.T) {
	u := &User{ID: "u1", Role: RoleBuyer}

	valid := []Session{
		{},
		{User: u, Token: "tok", Authenticated: true},
		{Loading: true},
	}
	for i, s := range valid {
		if !s.Consistent() {
			t.Fatalf("case %d: expected consistent session", i)
		}
	}

	broken := []Session{
		{User: u, Authenticated: true},
		{Token: "tok", Authenticated: true},
		{User: u, Token: "tok"},
	}
	for i, s := range broken {
		if s.Consistent() {
			t.Fatalf("case %d: expected inconsistent session", i)
		}
	}
}
