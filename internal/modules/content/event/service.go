package event

import (
	"context"
	"errors"
	"time"

	"github.com/sendikahub/core/internal/database"
	"github.com/sendikahub/core/internal/models"
	"github.com/sendikahub/core/internal/pkg/pagination"
	"github.com/sendikahub/core/internal/pkg/response"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrSlugTaken = errors.New("an event with this slug already exists")

// Service provides event storage operations.
type Service struct {
	db *mongo.Database
}

func NewService(db *mongo.Database) *Service {
	return &Service{db: db}
}

func (s *Service) coll() *mongo.Collection {
	return s.db.Collection(database.CollEvents)
}

// ListOptions narrows the event listing.
type ListOptions struct {
	Status     string
	Featured   *bool
	Upcoming   bool
	PublicOnly bool
}

func (o ListOptions) filter(now time.Time) bson.M {
	filter := bson.M{}
	if o.PublicOnly {
		filter["status"] = models.StatusPublished
	} else if o.Status != "" {
		filter["status"] = o.Status
	}
	if o.Featured != nil {
		filter["featured"] = *o.Featured
	}
	if o.Upcoming {
		filter["date"] = bson.M{"$gte": startOfDay(now)}
	}
	return filter
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// List returns events. Upcoming listings sort soonest first, archives newest first.
func (s *Service) List(ctx context.Context, opts ListOptions, q pagination.Query) ([]models.Event, response.Pagination, error) {
	items := []models.Event{}
	dir := -1
	if opts.Upcoming {
		dir = 1
	}
	sort := bson.D{{Key: "date", Value: dir}, {Key: "time", Value: dir}}
	meta, err := pagination.Find(ctx, s.coll(), opts.filter(time.Now()), sort, q, &items)
	if err != nil {
		return nil, response.Pagination{}, err
	}
	return items, meta, nil
}

// GetBySlug loads one event by slug. Returns (nil, nil) when not found.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*models.Event, error) {
	var item models.Event
	err := s.coll().FindOne(ctx, bson.M{"slug": slug}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create validates and inserts a new event.
func (s *Service) Create(ctx context.Context, item *models.Event) error {
	item.ID = primitive.NewObjectID()
	item.ApplyDefaults(time.Now())
	if err := item.Validate(); err != nil {
		return err
	}

	n, err := s.coll().CountDocuments(ctx, bson.M{"slug": item.Slug})
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrSlugTaken
	}

	_, err = s.coll().InsertOne(ctx, item)
	return err
}

// UpdateInput carries partial event changes. Nil fields are left untouched.
type UpdateInput struct {
	Title                *string    `json:"title"`
	Slug                 *string    `json:"slug"`
	Description          *string    `json:"description"`
	Content              *string    `json:"content"`
	Date                 *time.Time `json:"date"`
	Time                 *string    `json:"time"`
	EndDate              *time.Time `json:"end_date"`
	EndTime              *string    `json:"end_time"`
	Location             *string    `json:"location"`
	Capacity             *int       `json:"capacity"`
	RegistrationRequired *bool      `json:"registration_required"`
	RegistrationLink     *string    `json:"registration_link"`
	Status               *string    `json:"status"`
	Featured             *bool      `json:"featured"`
}

// Update applies a partial update and returns the updated record.
// Returns (nil, nil) when the record does not exist.
func (s *Service) Update(ctx context.Context, slugKey string, in UpdateInput) (*models.Event, error) {
	current, err := s.GetBySlug(ctx, slugKey)
	if err != nil || current == nil {
		return nil, err
	}

	if in.Title != nil {
		current.Title = *in.Title
	}
	if in.Slug != nil && *in.Slug != current.Slug {
		n, err := s.coll().CountDocuments(ctx, bson.M{"slug": *in.Slug, "_id": bson.M{"$ne": current.ID}})
		if err != nil {
			return nil, err
		}
		if n > 0 {
			return nil, ErrSlugTaken
		}
		current.Slug = *in.Slug
	}
	if in.Description != nil {
		current.Description = *in.Description
	}
	if in.Content != nil {
		current.Content = *in.Content
	}
	if in.Date != nil {
		current.Date = *in.Date
	}
	if in.Time != nil {
		current.Time = *in.Time
	}
	if in.EndDate != nil {
		current.EndDate = in.EndDate
	}
	if in.EndTime != nil {
		current.EndTime = *in.EndTime
	}
	if in.Location != nil {
		current.Location = *in.Location
	}
	if in.Capacity != nil {
		current.Capacity = *in.Capacity
	}
	if in.RegistrationRequired != nil {
		current.RegistrationRequired = *in.RegistrationRequired
	}
	if in.RegistrationLink != nil {
		current.RegistrationLink = *in.RegistrationLink
	}
	if in.Status != nil {
		current.Status = *in.Status
	}
	if in.Featured != nil {
		current.Featured = *in.Featured
	}
	current.UpdatedAt = time.Now()

	if err := current.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.coll().ReplaceOne(ctx, bson.M{"_id": current.ID}, current); err != nil {
		return nil, err
	}
	return current, nil
}

// ArchivePast moves published events whose day has fully passed to archived
// status. Events with an end date stay visible until that date passes.
func (s *Service) ArchivePast(ctx context.Context, now time.Time) (int64, error) {
	cutoff := startOfDay(now)
	filter := bson.M{
		"status": models.StatusPublished,
		"$and": []bson.M{
			{"date": bson.M{"$lt": cutoff}},
			{"$or": []bson.M{
				{"endDate": nil},
				{"endDate": bson.M{"$lt": cutoff}},
			}},
		},
	}
	res, err := s.coll().UpdateMany(ctx, filter, bson.M{"$set": bson.M{
		"status":    models.StatusArchived,
		"updatedAt": now,
	}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// Delete removes an event by slug, reporting whether anything was deleted.
func (s *Service) Delete(ctx context.Context, slugKey string) (bool, error) {
	res, err := s.coll().DeleteOne(ctx, bson.M{"slug": slugKey})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
