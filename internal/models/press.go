package models

import "time"

// Press item media types.
const (
	PressTypeTV        = "tv"
	PressTypeRadio     = "radio"
	PressTypeNewspaper = "newspaper"
	PressTypeOnline    = "online"
)

var pressTypes = []string{PressTypeTV, PressTypeRadio, PressTypeNewspaper, PressTypeOnline}

// PressItem is press coverage of the union. De-duplicated by title+category.
// View/share counters are incremented by the public API, never by the importer.
type PressItem struct {
	Base     `bson:",inline"`
	Title    string    `bson:"title"    json:"title"`
	Category string    `bson:"category" json:"category"`
	Type     string    `bson:"type"     json:"type"`
	Outlet   string    `bson:"outlet"   json:"outlet"`
	Summary  string    `bson:"summary"  json:"summary"`
	URL      string    `bson:"url"      json:"url,omitempty"`
	Date     time.Time `bson:"date"     json:"date"`
	Views    int64     `bson:"views"    json:"views"`
	Shares   int64     `bson:"shares"   json:"shares"`
}

func (p *PressItem) ApplyDefaults(now time.Time) {
	if p.Category == "" {
		p.Category = "genel"
	}
	if p.Type == "" {
		p.Type = PressTypeOnline
	}
	if p.Date.IsZero() {
		p.Date = now
	}
	p.Touch(now)
}

func (p *PressItem) Validate() error {
	return firstErr(
		requireString("title", p.Title),
		limitLen("title", p.Title, maxTitleLen),
		requireEnum("type", p.Type, pressTypes),
	)
}
