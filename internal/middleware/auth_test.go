package middleware

import "testing"

func TestNormalizeToken(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"plain", "abc.def.ghi", "abc.def.ghi"},
		{"bearer", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"bearer lowercase", "bearer abc", "abc"},
		{"padded", "  Bearer   abc  ", "abc"},
		{"whitespace only", "   ", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeToken(tc.raw); got != tc.want {
				t.Errorf("NormalizeToken(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestShouldSkipCachePath(t *testing.T) {
	patterns := []string{"/api/v1/health", "/api/v1/admin/*"}

	cases := []struct {
		path string
		want bool
	}{
		{"/api/v1/health", true},
		{"/api/v1/admin/announcements", true},
		{"/api/v1/announcements", false},
		{"/api/v1/healthz", false},
	}
	for _, tc := range cases {
		if got := shouldSkipCachePath(tc.path, patterns); got != tc.want {
			t.Errorf("shouldSkipCachePath(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}
