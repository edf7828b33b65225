// Package importer performs the one-shot, operator-invoked content import: JSON
// snapshots from a content directory are inserted into the store unless a record
// with the same natural key already exists. The import is strictly additive —
// existing records are skipped, never updated or merged.
package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/sendikahub/core/internal/database"
	"github.com/sendikahub/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ItemError describes a single source element that could not be imported.
type ItemError struct {
	Index int    `json:"index"`
	Key   string `json:"key"`
	Err   string `json:"error"`
}

// KindResult reports the outcome for one content kind.
type KindResult struct {
	Kind     string      `json:"kind"`
	Inserted int         `json:"inserted"`
	Skipped  int         `json:"skipped"`
	Failed   []ItemError `json:"failed,omitempty"`
}

// Report collects per-kind results in import order.
type Report struct {
	Kinds []KindResult `json:"kinds"`
}

// TotalInserted sums inserted counts across kinds.
func (r Report) TotalInserted() int {
	total := 0
	for _, k := range r.Kinds {
		total += k.Inserted
	}
	return total
}

// Importer reads JSON snapshots and inserts missing records.
type Importer struct {
	store database.Store
	dir   string
	log   *zap.Logger
	now   func() time.Time
}

// New builds an importer over the given store and content directory.
func New(store database.Store, dir string, log *zap.Logger) *Importer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Importer{store: store, dir: dir, log: log, now: time.Now}
}

// Run imports every content kind in a fixed order. Per-record failures are
// isolated and reported; a store failure aborts the whole run.
func (im *Importer) Run(ctx context.Context) (Report, error) {
	steps := []func(context.Context) (KindResult, error){
		im.importAnnouncements,
		im.importEvents,
		im.importPress,
		im.importDocuments,
		im.importMedia,
		im.importMembers,
		im.importSliders,
		im.importKamuAr,
	}

	var report Report
	for _, step := range steps {
		result, err := step(ctx)
		if err != nil {
			return report, err
		}
		report.Kinds = append(report.Kinds, result)
		im.log.Info("kind imported",
			zap.String("kind", result.Kind),
			zap.Int("inserted", result.Inserted),
			zap.Int("skipped", result.Skipped),
			zap.Int("failed", len(result.Failed)),
		)
	}
	return report, nil
}

func (im *Importer) importAnnouncements(ctx context.Context) (KindResult, error) {
	res := KindResult{Kind: "announcements"}
	var items []announcementSource
	readSource(im.dir, "announcements.json", &items)

	for i, src := range items {
		a := &models.Announcement{
			Title:       src.Title,
			Slug:        src.Slug,
			Excerpt:     src.Excerpt,
			Content:     src.Content,
			Category:    src.Category,
			Tags:        src.Tags,
			Status:      src.Status,
			Featured:    src.Featured,
			PublishDate: parseDate(src.PublishDate),
			Author:      src.Author,
		}
		// The importer publishes by default; the schema default stays draft.
		if a.Status == "" {
			a.Status = models.StatusPublished
		}
		a.ApplyDefaults(im.now())

		if err := im.insertIfAbsent(ctx, &res, i, database.CollAnnouncements, bson.M{"slug": a.Slug}, a.Slug, a); err != nil {
			return res, err
		}
	}
	return res, nil
}

func (im *Importer) importEvents(ctx context.Context) (KindResult, error) {
	res := KindResult{Kind: "events"}
	var items []eventSource
	readSource(im.dir, "events.json", &items)

	for i, src := range items {
		e := &models.Event{
			Title:                src.Title,
			Slug:                 src.Slug,
			Description:          src.Description,
			Content:              src.Content,
			Date:                 parseDate(src.Date),
			Time:                 src.Time,
			EndTime:              src.EndTime,
			Location:             src.Location,
			Capacity:             src.Capacity,
			RegistrationRequired: src.RegistrationRequired,
			RegistrationLink:     src.RegistrationLink,
			Status:               src.Status,
			Featured:             src.Featured,
		}
		if end := parseDate(src.EndDate); !end.IsZero() {
			e.EndDate = &end
		}
		if e.Status == "" {
			e.Status = models.StatusPublished
		}
		e.ApplyDefaults(im.now())

		if err := im.insertIfAbsent(ctx, &res, i, database.CollEvents, bson.M{"slug": e.Slug}, e.Slug, e); err != nil {
			return res, err
		}
	}
	return res, nil
}

func (im *Importer) importPress(ctx context.Context) (KindResult, error) {
	res := KindResult{Kind: "press"}
	var items []pressSource
	readSource(im.dir, "press.json", &items)

	for i, src := range items {
		p := &models.PressItem{
			Title:    src.Title,
			Category: src.Category,
			Type:     src.Type,
			Outlet:   src.Outlet,
			Summary:  src.Summary,
			URL:      src.URL,
			Date:     parseDate(src.Date),
		}
		p.ApplyDefaults(im.now())

		key := p.Title + "/" + p.Category
		filter := bson.M{"title": p.Title, "category": p.Category}
		if err := im.insertIfAbsent(ctx, &res, i, database.CollPress, filter, key, p); err != nil {
			return res, err
		}
	}
	return res, nil
}

func (im *Importer) importDocuments(ctx context.Context) (KindResult, error) {
	res := KindResult{Kind: "documents"}
	var items []documentSource
	readSource(im.dir, "documents.json", &items)

	for i, src := range items {
		d := &models.Document{
			Title:       src.Title,
			Description: src.Description,
			Category:    src.Category,
			FileName:    src.FileName,
			FileType:    src.FileType,
			FileSize:    src.FileSize,
			FileURL:     src.FileURL,
			Private:     src.Private,
		}
		d.ApplyDefaults(im.now())

		if err := im.insertIfAbsent(ctx, &res, i, database.CollDocuments, bson.M{"title": d.Title}, d.Title, d); err != nil {
			return res, err
		}
	}
	return res, nil
}

func (im *Importer) importMedia(ctx context.Context) (KindResult, error) {
	res := KindResult{Kind: "gallery"}
	var items []mediaSource
	readSource(im.dir, "gallery.json", &items)

	for i, src := range items {
		m := &models.Media{
			Title:     src.Title,
			URL:       src.URL,
			Thumbnail: src.Thumbnail,
			Type:      src.Type,
			Category:  src.Category,
			Tags:      src.Tags,
		}
		m.ApplyDefaults(im.now())

		if err := im.insertIfAbsent(ctx, &res, i, database.CollMedia, bson.M{"url": m.URL}, m.URL, m); err != nil {
			return res, err
		}
	}
	return res, nil
}

func (im *Importer) importMembers(ctx context.Context) (KindResult, error) {
	res := KindResult{Kind: "members"}
	var items []memberSource
	readSource(im.dir, "members.json", &items)

	for i, src := range items {
		m := &models.Member{
			Name:  src.Name,
			Email: src.Email,
			Phone: src.Phone,
			WorkInfo: models.WorkInfo{
				Workplace: src.WorkInfo.Workplace,
				Position:  src.WorkInfo.Position,
				City:      src.WorkInfo.City,
			},
			MembershipInfo: models.MembershipInfo{
				Type:       src.MembershipInfo.Type,
				DuesStatus: src.MembershipInfo.DuesStatus,
			},
			Status: src.Status,
		}
		if since := parseDate(src.MembershipInfo.MemberSince); !since.IsZero() {
			m.MembershipInfo.MemberSince = &since
		}
		m.ApplyDefaults(im.now())

		if err := im.insertIfAbsent(ctx, &res, i, database.CollMembers, bson.M{"email": m.Email}, m.Email, m); err != nil {
			return res, err
		}
	}
	return res, nil
}

// importSliders is a no-op: sliders have no JSON source and are admin-managed.
func (im *Importer) importSliders(context.Context) (KindResult, error) {
	return KindResult{Kind: "sliders"}, nil
}

// importKamuAr is a no-op: Kamu-Ar articles have no JSON source.
func (im *Importer) importKamuAr(context.Context) (KindResult, error) {
	return KindResult{Kind: "kamuar"}, nil
}

// insertIfAbsent runs one element's existence-check-then-insert. Validation and
// insert failures are recorded on the result; an existence-check failure means
// the store is unreachable and aborts the run.
func (im *Importer) insertIfAbsent(ctx context.Context, res *KindResult, index int, collection string, filter bson.M, key string, doc interface{ Validate() error }) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := doc.Validate(); err != nil {
		res.Failed = append(res.Failed, ItemError{Index: index, Key: key, Err: err.Error()})
		im.log.Warn("record rejected",
			zap.String("kind", res.Kind), zap.Int("index", index), zap.String("key", key), zap.Error(err))
		return nil
	}

	exists, err := im.store.Exists(ctx, collection, filter)
	if err != nil {
		return fmt.Errorf("lookup %s %q: %w", collection, key, err)
	}
	if exists {
		res.Skipped++
		return nil
	}

	if err := im.store.Insert(ctx, collection, doc); err != nil {
		res.Failed = append(res.Failed, ItemError{Index: index, Key: key, Err: err.Error()})
		im.log.Warn("insert failed",
			zap.String("kind", res.Kind), zap.Int("index", index), zap.String("key", key), zap.Error(err))
		return nil
	}
	res.Inserted++
	return nil
}
