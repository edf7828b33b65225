package models

import "time"

// Slider is a homepage hero slide. Admin-managed only; the importer has no JSON
// source for sliders.
type Slider struct {
	Base     `bson:",inline"`
	Title    string `bson:"title"              json:"title"`
	Subtitle string `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Image    string `bson:"image"              json:"image"`
	Link     string `bson:"link,omitempty"     json:"link,omitempty"`
	Order    int    `bson:"order"              json:"order"`
	Active   bool   `bson:"active"             json:"active"`
}

func (s *Slider) ApplyDefaults(now time.Time) {
	s.Touch(now)
}

func (s *Slider) Validate() error {
	return firstErr(
		requireString("title", s.Title),
		requireString("image", s.Image),
	)
}
