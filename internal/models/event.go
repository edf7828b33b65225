package models

import (
	"time"

	"github.com/sendikahub/core/internal/pkg/slug"
)

// DefaultEventTime is the wall-clock default when the source omits a start time.
const DefaultEventTime = "00:00"

// Event is a scheduled union event. De-duplicated by slug.
type Event struct {
	Base                 `bson:",inline"`
	Title                string     `bson:"title"                json:"title"`
	Slug                 string     `bson:"slug"                 json:"slug"`
	Description          string     `bson:"description"          json:"description"`
	Content              string     `bson:"content"              json:"content"`
	Date                 time.Time  `bson:"date"                 json:"date"`
	Time                 string     `bson:"time"                 json:"time"`
	EndDate              *time.Time `bson:"endDate,omitempty"    json:"end_date,omitempty"`
	EndTime              string     `bson:"endTime,omitempty"    json:"end_time,omitempty"`
	Location             string     `bson:"location"             json:"location"`
	Capacity             int        `bson:"capacity"             json:"capacity"`
	RegistrationRequired bool       `bson:"registrationRequired" json:"registration_required"`
	RegistrationLink     string     `bson:"registrationLink"     json:"registration_link,omitempty"`
	Status               string     `bson:"status"               json:"status"`
	Featured             bool       `bson:"featured"             json:"featured"`
}

func (e *Event) ApplyDefaults(now time.Time) {
	if e.Slug == "" {
		e.Slug = slug.Make(e.Title)
	}
	if e.Date.IsZero() {
		e.Date = now
	}
	if e.Time == "" {
		e.Time = DefaultEventTime
	}
	if e.Status == "" {
		e.Status = StatusDraft
	}
	e.Touch(now)
}

func (e *Event) Validate() error {
	return firstErr(
		requireString("title", e.Title),
		limitLen("title", e.Title, maxTitleLen),
		requireString("slug", e.Slug),
		requireEnum("status", e.Status, publicationStatuses),
	)
}
