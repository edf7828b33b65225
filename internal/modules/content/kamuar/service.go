package kamuar

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

var ErrSlugTaken = errors.New("an article with this slug already exists")

// Service provides Kamu-Ar article storage operations.
type Service struct {
	db *mongo.Database
}

func NewService(db *mongo.Database) *Service {
	return &Service{db: db}
}

func (s *Service) coll() *mongo.Collection {
	return s.db.Collection(database.CollKamuAr)
}

// ListOptions narrows the article listing.
type ListOptions struct {
	Status     string
	Tag        string
	PublicOnly bool
}

func (o ListOptions) filter() bson.M {
	filter := bson.M{}
	if o.PublicOnly {
		filter["status"] = models.StatusPublished
	} else if o.Status != "" {
		filter["status"] = o.Status
	}
	if o.Tag != "" {
		filter["tags"] = o.Tag
	}
	return filter
}

// List returns articles, newest first.
func (s *Service) List(ctx context.Context, opts ListOptions, q pagination.Query) ([]models.KamuArItem, response.Pagination, error) {
	items := []models.KamuArItem{}
	sort := bson.D{{Key: "publishDate", Value: -1}}
	meta, err := pagination.Find(ctx, s.coll(), opts.filter(), sort, q, &items)
	if err != nil {
		return nil, response.Pagination{}, err
	}
	return items, meta, nil
}

// GetBySlug loads one article by slug. Returns (nil, nil) when not found.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*models.KamuArItem, error) {
	var item models.KamuArItem
	err := s.coll().FindOne(ctx, bson.M{"slug": slug}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create validates and inserts a new article.
func (s *Service) Create(ctx context.Context, item *models.KamuArItem) error {
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

// UpdateInput carries partial article changes. Nil fields are left untouched.
type UpdateInput struct {
	Title       *string    `json:"title"`
	Slug        *string    `json:"slug"`
	Summary     *string    `json:"summary"`
	Content     *string    `json:"content"`
	Author      *string    `json:"author"`
	CoverImage  *string    `json:"cover_image"`
	Tags        *[]string  `json:"tags"`
	Status      *string    `json:"status"`
	PublishDate *time.Time `json:"publish_date"`
}

// Update applies a partial update and returns the updated record.
// Returns (nil, nil) when the record does not exist.
func (s *Service) Update(ctx context.Context, slugKey string, in UpdateInput) (*models.KamuArItem, error) {
	current, err := s.GetBySlug(ctx, slugKey)
	if err != nil || current == nil {
		return nil, err
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
	if in.Title != nil {
		current.Title = *in.Title
	}
	if in.Summary != nil {
		current.Summary = *in.Summary
	}
	if in.Content != nil {
		current.Content = *in.Content
	}
	if in.Author != nil {
		current.Author = *in.Author
	}
	if in.CoverImage != nil {
		current.CoverImage = *in.CoverImage
	}
	if in.Tags != nil {
		current.Tags = *in.Tags
	}
	if in.Status != nil {
		current.Status = *in.Status
	}
	if in.PublishDate != nil {
		current.PublishDate = *in.PublishDate
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

// Delete removes an article by slug, reporting whether anything was deleted.
func (s *Service) Delete(ctx context.Context, slugKey string) (bool, error) {
	res, err := s.coll().DeleteOne(ctx, bson.M{"slug": slugKey})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
