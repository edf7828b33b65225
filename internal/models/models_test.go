package models

import (
	"errors"
	"strings"
	"testing"
	"time"
)

var now = time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

func TestAnnouncementDefaults(t *testing.T) {
	a := &Announcement{Title: "Genel Kurul", Category: AnnouncementCategoryGenel}
	a.ApplyDefaults(now)

	if a.Slug != "genel-kurul" {
		t.Errorf("Slug = %q, want genel-kurul", a.Slug)
	}
	if a.Status != StatusDraft {
		t.Errorf("Status = %q, want draft (schema default; the importer overrides)", a.Status)
	}
	if a.Author != DefaultAuthor {
		t.Errorf("Author = %q, want %q", a.Author, DefaultAuthor)
	}
	if a.PublishDate.IsZero() {
		t.Error("PublishDate not defaulted")
	}
	if a.Tags == nil {
		t.Error("Tags should default to empty slice")
	}
	if a.CreatedAt.IsZero() || a.UpdatedAt.IsZero() {
		t.Error("timestamps not stamped")
	}
	if err := a.Validate(); err != nil {
		t.Errorf("record with defaults should validate: %v", err)
	}
}

func TestAnnouncementSlugNotOverwritten(t *testing.T) {
	a := &Announcement{Title: "Genel Kurul", Slug: "ozel-slug"}
	a.ApplyDefaults(now)
	if a.Slug != "ozel-slug" {
		t.Errorf("explicit slug replaced: %q", a.Slug)
	}
}

func TestEventDefaults(t *testing.T) {
	e := &Event{Title: "Toplantı", Date: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)}
	e.ApplyDefaults(now)

	if e.Slug != "toplanti" {
		t.Errorf("Slug = %q, want toplanti", e.Slug)
	}
	if e.Time != DefaultEventTime {
		t.Errorf("Time = %q, want %q", e.Time, DefaultEventTime)
	}
	if err := e.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestValidationErrorNamesField(t *testing.T) {
	cases := []struct {
		name  string
		err   error
		field string
	}{
		{"announcement missing title", func() error {
			a := &Announcement{}
			a.ApplyDefaults(now)
			return a.Validate()
		}(), "title"},
		{"announcement bad category", func() error {
			a := &Announcement{Title: "x", Category: "bilinmeyen"}
			a.ApplyDefaults(now)
			return a.Validate()
		}(), "category"},
		{"announcement bad status", func() error {
			a := &Announcement{Title: "x", Status: "pending"}
			a.ApplyDefaults(now)
			return a.Validate()
		}(), "status"},
		{"press bad type", func() error {
			p := &PressItem{Title: "x", Type: "podcast"}
			p.Touch(now)
			return p.Validate()
		}(), "type"},
		{"member missing email", func() error {
			m := &Member{Name: "Ali"}
			m.ApplyDefaults(now)
			return m.Validate()
		}(), "email"},
		{"document bad category", func() error {
			d := &Document{Title: "x", Category: "video"}
			d.Touch(now)
			return d.Validate()
		}(), "category"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err == nil {
				t.Fatal("expected validation error")
			}
			var ve *ValidationError
			if !errors.As(tc.err, &ve) {
				t.Fatalf("error %v is not a *ValidationError", tc.err)
			}
			if ve.Field != tc.field {
				t.Errorf("Field = %q, want %q", ve.Field, tc.field)
			}
			if !strings.Contains(tc.err.Error(), tc.field) {
				t.Errorf("message %q does not name field %q", tc.err.Error(), tc.field)
			}
		})
	}
}

func TestTitleLengthLimit(t *testing.T) {
	a := &Announcement{Title: strings.Repeat("a", maxTitleLen+1)}
	a.ApplyDefaults(now)
	err := a.Validate()
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "title" {
		t.Errorf("over-long title should fail on title, got %v", err)
	}
}

func TestMemberDefaults(t *testing.T) {
	m := &Member{Name: "Ayşe Kaya", Email: "ayse@example.org"}
	m.ApplyDefaults(now)
	if m.MembershipInfo.Type != MembershipTypeUye {
		t.Errorf("membership type = %q", m.MembershipInfo.Type)
	}
	if m.MembershipInfo.DuesStatus != DuesStatusPending {
		t.Errorf("dues status = %q", m.MembershipInfo.DuesStatus)
	}
	if m.Status != MemberStatusActive {
		t.Errorf("status = %q", m.Status)
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}
