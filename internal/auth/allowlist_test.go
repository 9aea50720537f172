package auth

import "testing"

func TestAllowed(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		allowed string
		email   string
		want    bool
	}{
		"unconfigured admits anyone": {allowed: "", email: "anyone@example.com", want: true},
		"exact match":                {allowed: "me@example.com", email: "me@example.com", want: true},
		"case insensitive":           {allowed: "Me@Example.com", email: "me@example.com", want: true},
		"padding ignored":            {allowed: "  me@example.com ", email: "me@example.com", want: true},
		"other identity rejected":    {allowed: "me@example.com", email: "other@example.com", want: false},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := Allowed(tc.allowed, Identity{Email: tc.email})
			if got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}
