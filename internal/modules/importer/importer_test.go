package importer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/sendikahub/core/internal/database"
	"github.com/sendikahub/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// memStore is an in-memory database.Store. It keeps the original documents and
// a flattened bson view per collection so natural-key filters can be matched.
type memStore struct {
	docs      map[string][]interface{}
	flattened map[string][]bson.M
	existsErr error
	insertErr error
}

func newMemStore() *memStore {
	return &memStore{
		docs:      map[string][]interface{}{},
		flattened: map[string][]bson.M{},
	}
}

func (s *memStore) Exists(_ context.Context, collection string, filter bson.M) (bool, error) {
	if s.existsErr != nil {
		return false, s.existsErr
	}
	for _, doc := range s.flattened[collection] {
		match := true
		for k, v := range filter {
			if !reflect.DeepEqual(doc[k], v) {
				match = false
				break
			}
		}
		if match {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) Insert(_ context.Context, collection string, doc interface{}) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	var flat bson.M
	if err := bson.Unmarshal(raw, &flat); err != nil {
		return err
	}
	s.docs[collection] = append(s.docs[collection], doc)
	s.flattened[collection] = append(s.flattened[collection], flat)
	return nil
}

func writeSnapshot(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func kindResult(t *testing.T, report Report, kind string) KindResult {
	t.Helper()
	for _, k := range report.Kinds {
		if k.Kind == kind {
			return k
		}
	}
	t.Fatalf("kind %q missing from report %+v", kind, report)
	return KindResult{}
}

func TestImportAnnouncementDefaults(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "announcements.json", `[{"title": "Genel Kurul", "category": "genel"}]`)

	store := newMemStore()
	report, err := New(store, dir, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := kindResult(t, report, "announcements").Inserted; got != 1 {
		t.Fatalf("inserted = %d, want 1", got)
	}

	a, ok := store.docs[database.CollAnnouncements][0].(*models.Announcement)
	if !ok {
		t.Fatalf("stored doc has type %T", store.docs[database.CollAnnouncements][0])
	}
	if a.Slug != "genel-kurul" {
		t.Errorf("Slug = %q, want genel-kurul", a.Slug)
	}
	if a.Status != models.StatusPublished {
		t.Errorf("Status = %q; importer must override the draft schema default", a.Status)
	}
	if a.Author != models.DefaultAuthor {
		t.Errorf("Author = %q, want %q", a.Author, models.DefaultAuthor)
	}
	if a.PublishDate.IsZero() {
		t.Error("PublishDate not defaulted")
	}
}

func TestImportIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "announcements.json", `[{"title": "Genel Kurul", "category": "genel"}]`)
	writeSnapshot(t, dir, "gallery.json", `[{"url": "https://x/img.jpg"}]`)

	store := newMemStore()
	im := New(store, dir, nil)

	first, err := im.Run(context.Background())
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := im.Run(context.Background())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if got := kindResult(t, first, "gallery").Inserted; got != 1 {
		t.Errorf("first gallery inserted = %d, want 1", got)
	}
	if got := kindResult(t, second, "gallery").Inserted; got != 0 {
		t.Errorf("second gallery inserted = %d, want 0", got)
	}
	if got := kindResult(t, second, "announcements").Skipped; got != 1 {
		t.Errorf("second announcements skipped = %d, want 1", got)
	}
	if n := len(store.docs[database.CollAnnouncements]); n != 1 {
		t.Errorf("announcement count after two runs = %d, want 1", n)
	}
	if n := len(store.docs[database.CollMedia]); n != 1 {
		t.Errorf("media count after two runs = %d, want 1", n)
	}
}

func TestNaturalKeySkipsNotMerges(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "announcements.json",
		`[{"title": "Genel Kurul", "excerpt": "ilk"}, {"title": "Genel Kurul", "excerpt": "ikinci"}]`)

	store := newMemStore()
	report, err := New(store, dir, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	res := kindResult(t, report, "announcements")
	if res.Inserted != 1 || res.Skipped != 1 {
		t.Fatalf("inserted=%d skipped=%d, want 1/1", res.Inserted, res.Skipped)
	}
	a := store.docs[database.CollAnnouncements][0].(*models.Announcement)
	if a.Excerpt != "ilk" {
		t.Errorf("Excerpt = %q; second record must not merge over the first", a.Excerpt)
	}
}

func TestEventDefaultsAndTurkishSlug(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "events.json", `[{"title": "Toplantı", "date": "2025-09-01"}]`)

	store := newMemStore()
	if _, err := New(store, dir, nil).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	e := store.docs[database.CollEvents][0].(*models.Event)
	if e.Slug != "toplanti" {
		t.Errorf("Slug = %q, want toplanti", e.Slug)
	}
	if e.Time != models.DefaultEventTime {
		t.Errorf("Time = %q, want %q", e.Time, models.DefaultEventTime)
	}
	if e.Date.Year() != 2025 || e.Date.Month() != 9 {
		t.Errorf("Date = %v", e.Date)
	}
}

func TestPressCompositeKey(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "press.json", `[
		{"title": "Grev Kararı", "category": "2025", "type": "tv", "outlet": "TRT"},
		{"title": "Grev Kararı", "category": "2024", "type": "online"},
		{"title": "Grev Kararı", "category": "2025", "type": "radio"}
	]`)

	store := newMemStore()
	report, err := New(store, dir, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	res := kindResult(t, report, "press")
	if res.Inserted != 2 || res.Skipped != 1 {
		t.Errorf("inserted=%d skipped=%d, want 2/1 (same title, different category is a new record)", res.Inserted, res.Skipped)
	}
}

func TestMissingFileIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	// Only gallery present; every other kind has no source file.
	writeSnapshot(t, dir, "gallery.json", `[{"url": "https://x/a.jpg"}, {"url": "https://x/b.jpg"}]`)

	store := newMemStore()
	report, err := New(store, dir, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := kindResult(t, report, "announcements").Inserted; got != 0 {
		t.Errorf("announcements inserted = %d, want 0", got)
	}
	if got := kindResult(t, report, "gallery").Inserted; got != 2 {
		t.Errorf("gallery inserted = %d, want 2", got)
	}
	if len(report.Kinds) != 8 {
		t.Errorf("report covers %d kinds, want all 8", len(report.Kinds))
	}
}

func TestMalformedFileTreatedAsEmpty(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "announcements.json", `{"not": "an array"`)

	store := newMemStore()
	report, err := New(store, dir, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := kindResult(t, report, "announcements").Inserted; got != 0 {
		t.Errorf("inserted = %d, want 0", got)
	}
}

func TestPerRecordErrorIsolation(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "members.json", `[
		{"name": "Eksik Eposta"},
		{"name": "Ali Demir", "email": "ali@example.org"}
	]`)

	store := newMemStore()
	report, err := New(store, dir, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	res := kindResult(t, report, "members")
	if res.Inserted != 1 {
		t.Errorf("inserted = %d, want 1 (bad record must not abort the batch)", res.Inserted)
	}
	if len(res.Failed) != 1 || res.Failed[0].Index != 0 {
		t.Errorf("Failed = %+v, want one failure at index 0", res.Failed)
	}
}

func TestStoreFailureAbortsRun(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "announcements.json", `[{"title": "Genel Kurul"}]`)

	store := newMemStore()
	store.existsErr = errors.New("connection refused")

	if _, err := New(store, dir, nil).Run(context.Background()); err == nil {
		t.Fatal("unreachable store must abort the run")
	}
}

func TestInsertErrorIsLocal(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "gallery.json", `[{"url": "https://x/a.jpg"}]`)
	writeSnapshot(t, dir, "members.json", `[{"name": "Ali Demir", "email": "ali@example.org"}]`)

	store := newMemStore()
	store.insertErr = errors.New("duplicate key")

	report, err := New(store, dir, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := kindResult(t, report, "gallery"); len(got.Failed) != 1 || got.Inserted != 0 {
		t.Errorf("gallery result = %+v, want one local failure", got)
	}
}

func TestCancellationStopsRun(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "announcements.json", `[{"title": "Genel Kurul"}]`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := New(newMemStore(), dir, nil).Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
