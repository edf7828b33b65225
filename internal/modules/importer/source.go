package importer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Source JSON snapshots are loosely typed: field sets are a superset/subset of
// the target schema. Unknown fields are ignored, missing fields are defaulted
// when the record is constructed.

type announcementSource struct {
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Status      string   `json:"status"`
	Featured    bool     `json:"featured"`
	PublishDate string   `json:"publishDate"`
	Author      string   `json:"author"`
}

type eventSource struct {
	Title                string `json:"title"`
	Slug                 string `json:"slug"`
	Description          string `json:"description"`
	Content              string `json:"content"`
	Date                 string `json:"date"`
	Time                 string `json:"time"`
	EndDate              string `json:"endDate"`
	EndTime              string `json:"endTime"`
	Location             string `json:"location"`
	Capacity             int    `json:"capacity"`
	RegistrationRequired bool   `json:"registrationRequired"`
	RegistrationLink     string `json:"registrationLink"`
	Status               string `json:"status"`
	Featured             bool   `json:"featured"`
}

type pressSource struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Type     string `json:"type"`
	Outlet   string `json:"outlet"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
	Date     string `json:"date"`
}

type documentSource struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	FileName    string `json:"fileName"`
	FileType    string `json:"fileType"`
	FileSize    int64  `json:"fileSize"`
	FileURL     string `json:"fileUrl"`
	Private     bool   `json:"private"`
}

type mediaSource struct {
	Title     string   `json:"title"`
	URL       string   `json:"url"`
	Thumbnail string   `json:"thumbnail"`
	Type      string   `json:"type"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
}

type memberSource struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	WorkInfo struct {
		Workplace string `json:"workplace"`
		Position  string `json:"position"`
		City      string `json:"city"`
	} `json:"workInfo"`
	MembershipInfo struct {
		Type        string `json:"type"`
		DuesStatus  string `json:"duesStatus"`
		MemberSince string `json:"memberSince"`
	} `json:"membershipInfo"`
	Status string `json:"status"`
}

// readSource decodes a JSON array file into dest. A missing or unparsable file
// is not an error; it means "nothing to import" and dest is left empty.
func readSource(dir, file string, dest interface{}) {
	raw, err := os.ReadFile(filepath.Join(dir, file))
	if err != nil {
		return
	}
	_ = json.Unmarshal(raw, dest)
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseDate parses the date formats seen in content snapshots. Returns the zero
// time when the value is empty or unrecognized, letting defaults apply.
func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
