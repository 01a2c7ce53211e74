package client

import "testing"

func TestUnwrap(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"wrapped", `{"success":true,"data":{"id":"u1"}}`, `{"id":"u1"}`},
		{"wrapped status variant", `{"status":"ok","data":[1,2]}`, `[1,2]`},
		{"flat object", `{"id":"u1","name":"Ann"}`, `{"id":"u1","name":"Ann"}`},
		{"bare string", `"tok-123"`, `"tok-123"`},
		{"array", `[{"id":"u1"}]`, `[{"id":"u1"}]`},
		{"empty", ``, ``},
		{"not json", `plain text`, `plain text`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, apiErr := unwrap([]byte(tc.body))
			if apiErr != nil {
				t.Fatalf("unexpected error: %v", apiErr)
			}
			if string(got) != tc.want {
				t.Fatalf("unwrap(%q) = %q, want %q", tc.body, got, tc.want)
			}
		})
	}
}

func TestUnwrap_ExplicitFailure(t *testing.T) {
	_, apiErr := unwrap([]byte(`{"success":false,"message":"registration failed"}`))
	if apiErr == nil || apiErr.Kind != KindRequest {
		t.Fatalf("expected request error, got %v", apiErr)
	}
	if apiErr.Message != "registration failed" {
		t.Fatalf("unexpected message: %q", apiErr.Message)
	}
}

func TestBackendMessage(t *testing.T) {
	if got := backendMessage([]byte(`{"message":"nope"}`)); got != "nope" {
		t.Fatalf("message envelope: got %q", got)
	}
	if got := backendMessage([]byte(`{"error":"nope"}`)); got != "nope" {
		t.Fatalf("error envelope: got %q", got)
	}
	if got := backendMessage([]byte(`garbage`)); got != "" {
		t.Fatalf("garbage body: got %q", got)
	}
}
