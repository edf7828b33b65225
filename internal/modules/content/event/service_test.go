package event

import (
	"testing"
	"time"

	"github.com/sendikahub/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

func TestListOptionsFilter(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)

	t.Run("public listing forces published", func(t *testing.T) {
		f := ListOptions{PublicOnly: true, Status: "draft"}.filter(now)
		if f["status"] != models.StatusPublished {
			t.Fatalf("status filter = %v", f["status"])
		}
	})

	t.Run("upcoming cuts at start of today", func(t *testing.T) {
		f := ListOptions{Upcoming: true}.filter(now)
		rng, ok := f["date"].(bson.M)
		if !ok {
			t.Fatalf("expected date range filter, got %v", f["date"])
		}
		cutoff, ok := rng["$gte"].(time.Time)
		if !ok {
			t.Fatalf("expected $gte time, got %v", rng["$gte"])
		}
		want := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
		if !cutoff.Equal(want) {
			t.Fatalf("cutoff = %v, want %v", cutoff, want)
		}
	})
}

func TestStartOfDay(t *testing.T) {
	loc, _ := time.LoadLocation("Europe/Istanbul")
	in := time.Date(2026, 1, 15, 23, 59, 59, 0, loc)
	got := startOfDay(in)
	if got.Hour() != 0 || got.Minute() != 0 || got.Location() != loc {
		t.Fatalf("startOfDay(%v) = %v", in, got)
	}
}
