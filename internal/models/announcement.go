package models

import (
	"time"

	"github.com/sendikahub/core/internal/pkg/slug"
)

// Announcement categories.
const (
	AnnouncementCategoryGenel    = "genel"
	AnnouncementCategorySendikal = "sendikal"
	AnnouncementCategoryEgitim   = "egitim"
	AnnouncementCategoryHukuk    = "hukuk"
	AnnouncementCategoryBasin    = "basin"
)

var announcementCategories = []string{
	AnnouncementCategoryGenel,
	AnnouncementCategorySendikal,
	AnnouncementCategoryEgitim,
	AnnouncementCategoryHukuk,
	AnnouncementCategoryBasin,
}

// Announcement is a site announcement. De-duplicated by slug.
type Announcement struct {
	Base        `bson:",inline"`
	Title       string    `bson:"title"       json:"title"`
	Slug        string    `bson:"slug"        json:"slug"`
	Excerpt     string    `bson:"excerpt"     json:"excerpt"`
	Content     string    `bson:"content"     json:"content"`
	Category    string    `bson:"category"    json:"category"`
	Tags        []string  `bson:"tags"        json:"tags"`
	Status      string    `bson:"status"      json:"status"`
	Featured    bool      `bson:"featured"    json:"featured"`
	PublishDate time.Time `bson:"publishDate" json:"publish_date"`
	Author      string    `bson:"author"      json:"author"`
	Views       int64     `bson:"views"       json:"views"`
}

// ApplyDefaults fills absent optional fields and derives the slug from the title.
func (a *Announcement) ApplyDefaults(now time.Time) {
	if a.Slug == "" {
		a.Slug = slug.Make(a.Title)
	}
	if a.Category == "" {
		a.Category = AnnouncementCategoryGenel
	}
	if a.Status == "" {
		a.Status = StatusDraft
	}
	if a.PublishDate.IsZero() {
		a.PublishDate = now
	}
	if a.Author == "" {
		a.Author = DefaultAuthor
	}
	if a.Tags == nil {
		a.Tags = []string{}
	}
	a.Touch(now)
}

func (a *Announcement) Validate() error {
	return firstErr(
		requireString("title", a.Title),
		limitLen("title", a.Title, maxTitleLen),
		requireString("slug", a.Slug),
		requireEnum("category", a.Category, announcementCategories),
		requireEnum("status", a.Status, publicationStatuses),
	)
}
