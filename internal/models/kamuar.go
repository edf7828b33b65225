package models

import (
	"time"

	"github.com/sendikahub/core/internal/pkg/slug"
)

// KamuArItem is a research/analysis article published under the Kamu-Ar section.
// Admin-managed; the importer has no JSON source for this kind.
type KamuArItem struct {
	Base        `bson:",inline"`
	Title       string    `bson:"title"                json:"title"`
	Slug        string    `bson:"slug"                 json:"slug"`
	Summary     string    `bson:"summary"              json:"summary"`
	Content     string    `bson:"content"              json:"content"`
	Author      string    `bson:"author"               json:"author"`
	CoverImage  string    `bson:"coverImage,omitempty" json:"cover_image,omitempty"`
	Tags        []string  `bson:"tags"                 json:"tags"`
	Status      string    `bson:"status"               json:"status"`
	PublishDate time.Time `bson:"publishDate"          json:"publish_date"`
}

func (k *KamuArItem) ApplyDefaults(now time.Time) {
	if k.Slug == "" {
		k.Slug = slug.Make(k.Title)
	}
	if k.Status == "" {
		k.Status = StatusDraft
	}
	if k.PublishDate.IsZero() {
		k.PublishDate = now
	}
	if k.Author == "" {
		k.Author = DefaultAuthor
	}
	if k.Tags == nil {
		k.Tags = []string{}
	}
	k.Touch(now)
}

func (k *KamuArItem) Validate() error {
	return firstErr(
		requireString("title", k.Title),
		limitLen("title", k.Title, maxTitleLen),
		requireString("slug", k.Slug),
		requireEnum("status", k.Status, publicationStatuses),
	)
}
