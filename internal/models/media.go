package models

import "time"

// Media types.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

var mediaTypes = []string{MediaTypeImage, MediaTypeVideo}

// Media is a gallery item. De-duplicated by url.
type Media struct {
	Base      `bson:",inline"`
	Title     string   `bson:"title"               json:"title"`
	URL       string   `bson:"url"                 json:"url"`
	Thumbnail string   `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	Type      string   `bson:"type"                json:"type"`
	Category  string   `bson:"category"            json:"category"`
	Tags      []string `bson:"tags"                json:"tags"`
}

func (m *Media) ApplyDefaults(now time.Time) {
	if m.Type == "" {
		m.Type = MediaTypeImage
	}
	if m.Category == "" {
		m.Category = "genel"
	}
	if m.Tags == nil {
		m.Tags = []string{}
	}
	m.Touch(now)
}

func (m *Media) Validate() error {
	return firstErr(
		requireString("url", m.URL),
		requireEnum("type", m.Type, mediaTypes),
	)
}
