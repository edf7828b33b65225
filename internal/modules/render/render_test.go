package render

import (
	"strings"
	"testing"
)

func TestMarkdownBasic(t *testing.T) {
	out := Markdown("# Duyuru\n\nGenel kurul **toplantısı** yapılacaktır.")
	if !strings.Contains(out, "<h1") {
		t.Fatalf("expected heading in output, got %q", out)
	}
	if !strings.Contains(out, "<strong>toplantısı</strong>") {
		t.Fatalf("expected bold text in output, got %q", out)
	}
}

func TestMarkdownTable(t *testing.T) {
	out := Markdown("| a | b |\n|---|---|\n| 1 | 2 |")
	if !strings.Contains(out, "<table>") {
		t.Fatalf("GFM tables should render, got %q", out)
	}
}

func TestMarkdownEmpty(t *testing.T) {
	if out := Markdown(""); out != "" {
		t.Fatalf("empty input should yield empty output, got %q", out)
	}
}
