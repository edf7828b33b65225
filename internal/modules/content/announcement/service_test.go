package announcement

import (
	"testing"

	"github.com/sendikahub/core/internal/models"
)

func TestListOptionsFilter(t *testing.T) {
	t.Run("public listing forces published", func(t *testing.T) {
		f := ListOptions{PublicOnly: true, Status: "draft"}.filter()
		if f["status"] != models.StatusPublished {
			t.Fatalf("status filter = %v, want %q", f["status"], models.StatusPublished)
		}
	})

	t.Run("admin can filter any status", func(t *testing.T) {
		f := ListOptions{Status: models.StatusDraft}.filter()
		if f["status"] != models.StatusDraft {
			t.Fatalf("status filter = %v", f["status"])
		}
	})

	t.Run("category tag and featured narrow the query", func(t *testing.T) {
		featured := true
		f := ListOptions{Category: "hukuk", Tag: "grev", Featured: &featured}.filter()
		if f["category"] != "hukuk" || f["tags"] != "grev" || f["featured"] != true {
			t.Fatalf("unexpected filter: %v", f)
		}
	})

	t.Run("empty options filter nothing", func(t *testing.T) {
		if f := (ListOptions{}).filter(); len(f) != 0 {
			t.Fatalf("expected empty filter, got %v", f)
		}
	})
}
