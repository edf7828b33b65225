package storage

import (
	"strings"
	"testing"
)

func TestBuildFileName(t *testing.T) {
	name := buildFileName("Tüzük 2024.PDF")
	if !strings.HasSuffix(name, ".pdf") {
		t.Fatalf("extension should be lowered and kept, got %q", name)
	}
	if len(name) != 18+len(".pdf") {
		t.Fatalf("unexpected name length: %q", name)
	}

	if !strings.HasSuffix(buildFileName("noext"), ".dat") {
		t.Fatal("missing extension should fall back to .dat")
	}
	if buildFileName("a.pdf") == buildFileName("a.pdf") {
		t.Fatal("names must be unique per upload")
	}
}

func TestSafeName(t *testing.T) {
	cases := map[string]string{
		"report.pdf":     "report.pdf",
		"../etc/passwd":  "passwd",
		"a b.pdf":        "",
		"":               "",
		".":              "",
		"rapor_2024.pdf": "rapor_2024.pdf",
	}
	for in, want := range cases {
		if got := safeName(in); got != want {
			t.Errorf("safeName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeType(t *testing.T) {
	if normalizeType("Image") != "image" {
		t.Fatal("type should be case-insensitive")
	}
	if normalizeType("video") != "" {
		t.Fatal("unknown types should be rejected")
	}
}

func TestNormalizeObjectKey(t *testing.T) {
	if got := normalizeObjectKey("/image//2024/01/a.png"); got != "image/2024/01/a.png" {
		t.Fatalf("got %q", got)
	}
	if got := encodeObjectKey("image/tüzük dosyası.pdf"); strings.Contains(got, " ") {
		t.Fatalf("spaces must be escaped, got %q", got)
	}
}
