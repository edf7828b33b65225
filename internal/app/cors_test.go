package app

import "testing"

func TestMatchOriginPattern(t *testing.T) {
	cases := []struct {
		pattern string
		host    string
		want    bool
	}{
		{"sendika.org.tr", "sendika.org.tr", true},
		{"sendika.org.tr", "evil.org", false},
		{"*.sendika.org.tr", "admin.sendika.org.tr", true},
		{"*.sendika.org.tr", "sendika.org.tr", false},
		{"localhost:*", "localhost:3000", true},
		{"localhost:*", "localhost", false},
	}
	for _, tc := range cases {
		if got := matchOriginPattern(tc.pattern, tc.host); got != tc.want {
			t.Errorf("matchOriginPattern(%q, %q) = %v, want %v", tc.pattern, tc.host, got, tc.want)
		}
	}
}

func TestExtractOriginHost(t *testing.T) {
	if got := extractOriginHost("https://www.sendika.org.tr"); got != "www.sendika.org.tr" {
		t.Errorf("got %q", got)
	}
	if got := extractOriginHost("not a url"); got != "not a url" {
		t.Errorf("unparsable origins should pass through, got %q", got)
	}
}
