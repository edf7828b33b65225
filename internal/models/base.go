package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Base is embedded by all stored entities.
type Base struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"     json:"created"`
	UpdatedAt time.Time          `bson:"updatedAt"     json:"modified"`
}

// Touch stamps creation/modification times.
func (b *Base) Touch(now time.Time) {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

// Publication status shared by Announcement, Event, KamuAr.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

var publicationStatuses = []string{StatusDraft, StatusPublished, StatusArchived}

// DefaultAuthor is applied when a record arrives without one.
const DefaultAuthor = "Admin"

const maxTitleLen = 200

// ValidationError reports which field failed schema validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %q: %s", e.Field, e.Message)
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func requireString(field, value string) *ValidationError {
	if value == "" {
		return invalid(field, "is required")
	}
	return nil
}

func requireEnum(field, value string, allowed []string) *ValidationError {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return invalid(field, fmt.Sprintf("must be one of %v", allowed))
}

func limitLen(field, value string, max int) *ValidationError {
	if len(value) > max {
		return invalid(field, fmt.Sprintf("exceeds %d bytes", max))
	}
	return nil
}

func firstErr(errs ...*ValidationError) error {
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}
