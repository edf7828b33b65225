package announcement

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

var ErrSlugTaken = errors.New("an announcement with this slug already exists")

// Service provides announcement storage operations.
type Service struct {
	db *mongo.Database
}

func NewService(db *mongo.Database) *Service {
	return &Service{db: db}
}

func (s *Service) coll() *mongo.Collection {
	return s.db.Collection(database.CollAnnouncements)
}

// ListOptions narrows the announcement listing.
type ListOptions struct {
	Status   string
	Category string
	Tag      string
	Featured *bool
	// PublicOnly restricts results to published records regardless of Status.
	PublicOnly bool
}

func (o ListOptions) filter() bson.M {
	filter := bson.M{}
	if o.PublicOnly {
		filter["status"] = models.StatusPublished
	} else if o.Status != "" {
		filter["status"] = o.Status
	}
	if o.Category != "" {
		filter["category"] = o.Category
	}
	if o.Tag != "" {
		filter["tags"] = o.Tag
	}
	if o.Featured != nil {
		filter["featured"] = *o.Featured
	}
	return filter
}

// List returns announcements ordered by publish date, newest first.
func (s *Service) List(ctx context.Context, opts ListOptions, q pagination.Query) ([]models.Announcement, response.Pagination, error) {
	items := []models.Announcement{}
	sort := bson.D{{Key: "publishDate", Value: -1}}
	meta, err := pagination.Find(ctx, s.coll(), opts.filter(), sort, q, &items)
	if err != nil {
		return nil, response.Pagination{}, err
	}
	return items, meta, nil
}

// GetBySlug loads one announcement by slug. Returns (nil, nil) when not found.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*models.Announcement, error) {
	var item models.Announcement
	err := s.coll().FindOne(ctx, bson.M{"slug": slug}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByID loads one announcement by hex ID. Returns (nil, nil) when not found.
func (s *Service) GetByID(ctx context.Context, id string) (*models.Announcement, error) {
	oid, err := database.ParseObjectID(id)
	if err != nil {
		return nil, nil
	}
	var item models.Announcement
	err = s.coll().FindOne(ctx, bson.M{"_id": oid}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create validates and inserts a new announcement.
func (s *Service) Create(ctx context.Context, item *models.Announcement) error {
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

// UpdateInput carries partial announcement changes. Nil fields are left untouched.
type UpdateInput struct {
	Title       *string    `json:"title"`
	Slug        *string    `json:"slug"`
	Excerpt     *string    `json:"excerpt"`
	Content     *string    `json:"content"`
	Category    *string    `json:"category"`
	Tags        *[]string  `json:"tags"`
	Status      *string    `json:"status"`
	Featured    *bool      `json:"featured"`
	PublishDate *time.Time `json:"publish_date"`
	Author      *string    `json:"author"`
}

// Update applies a partial update and returns the updated record.
// Returns (nil, nil) when the record does not exist.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*models.Announcement, error) {
	current, err := s.GetByID(ctx, id)
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
	if in.Excerpt != nil {
		current.Excerpt = *in.Excerpt
	}
	if in.Content != nil {
		current.Content = *in.Content
	}
	if in.Category != nil {
		current.Category = *in.Category
	}
	if in.Tags != nil {
		current.Tags = *in.Tags
	}
	if in.Status != nil {
		current.Status = *in.Status
	}
	if in.Featured != nil {
		current.Featured = *in.Featured
	}
	if in.PublishDate != nil {
		current.PublishDate = *in.PublishDate
	}
	if in.Author != nil {
		current.Author = *in.Author
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

// Delete removes an announcement, reporting whether anything was deleted.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := database.ParseObjectID(id)
	if err != nil {
		return false, nil
	}
	res, err := s.coll().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// IncrementViews bumps the view counter. Errors are swallowed: a failed
// counter update must not fail the read path.
func (s *Service) IncrementViews(ctx context.Context, id primitive.ObjectID) {
	_, _ = s.coll().UpdateByID(ctx, id, bson.M{"$inc": bson.M{"views": 1}})
}
