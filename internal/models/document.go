package models

import "time"

// Document categories, a fixed set matching the site's document archive.
const (
	DocumentCategoryTuzuk      = "tuzuk"
	DocumentCategoryYonetmelik = "yonetmelik"
	DocumentCategoryRapor      = "rapor"
	DocumentCategoryForm       = "form"
	DocumentCategoryDergi      = "dergi"
	DocumentCategoryDiger      = "diger"
)

var documentCategories = []string{
	DocumentCategoryTuzuk,
	DocumentCategoryYonetmelik,
	DocumentCategoryRapor,
	DocumentCategoryForm,
	DocumentCategoryDergi,
	DocumentCategoryDiger,
}

// Document is a downloadable file asset. De-duplicated by title.
type Document struct {
	Base        `bson:",inline"`
	Title       string `bson:"title"       json:"title"`
	Description string `bson:"description" json:"description"`
	Category    string `bson:"category"    json:"category"`
	FileName    string `bson:"fileName"    json:"file_name"`
	FileType    string `bson:"fileType"    json:"file_type"`
	FileSize    int64  `bson:"fileSize"    json:"file_size"`
	FileURL     string `bson:"fileUrl"     json:"file_url"`
	Private     bool   `bson:"private"     json:"private"`
	Downloads   int64  `bson:"downloads"   json:"downloads"`
}

func (d *Document) ApplyDefaults(now time.Time) {
	if d.Category == "" {
		d.Category = DocumentCategoryDiger
	}
	d.Touch(now)
}

func (d *Document) Validate() error {
	return firstErr(
		requireString("title", d.Title),
		limitLen("title", d.Title, maxTitleLen),
		requireEnum("category", d.Category, documentCategories),
	)
}
