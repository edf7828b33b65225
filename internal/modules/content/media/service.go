package media

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

var ErrURLTaken = errors.New("a gallery item with this url already exists")

// Service provides media gallery storage operations.
type Service struct {
	db *mongo.Database
}

func NewService(db *mongo.Database) *Service {
	return &Service{db: db}
}

func (s *Service) coll() *mongo.Collection {
	return s.db.Collection(database.CollMedia)
}

// ListOptions narrows the gallery listing.
type ListOptions struct {
	Category string
	Type     string
	Tag      string
}

func (o ListOptions) filter() bson.M {
	filter := bson.M{}
	if o.Category != "" {
		filter["category"] = o.Category
	}
	if o.Type != "" {
		filter["type"] = o.Type
	}
	if o.Tag != "" {
		filter["tags"] = o.Tag
	}
	return filter
}

// List returns gallery items, newest first.
func (s *Service) List(ctx context.Context, opts ListOptions, q pagination.Query) ([]models.Media, response.Pagination, error) {
	items := []models.Media{}
	sort := bson.D{{Key: "createdAt", Value: -1}}
	meta, err := pagination.Find(ctx, s.coll(), opts.filter(), sort, q, &items)
	if err != nil {
		return nil, response.Pagination{}, err
	}
	return items, meta, nil
}

// GetByID loads one gallery item by hex ID. Returns (nil, nil) when not found.
func (s *Service) GetByID(ctx context.Context, id string) (*models.Media, error) {
	oid, err := database.ParseObjectID(id)
	if err != nil {
		return nil, nil
	}
	var item models.Media
	err = s.coll().FindOne(ctx, bson.M{"_id": oid}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create validates and inserts a new gallery item. URLs must be unique.
func (s *Service) Create(ctx context.Context, item *models.Media) error {
	item.ID = primitive.NewObjectID()
	item.ApplyDefaults(time.Now())
	if err := item.Validate(); err != nil {
		return err
	}

	n, err := s.coll().CountDocuments(ctx, bson.M{"url": item.URL})
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrURLTaken
	}

	_, err = s.coll().InsertOne(ctx, item)
	return err
}

// UpdateInput carries partial gallery item changes. Nil fields are left untouched.
type UpdateInput struct {
	Title     *string   `json:"title"`
	URL       *string   `json:"url"`
	Thumbnail *string   `json:"thumbnail"`
	Type      *string   `json:"type"`
	Category  *string   `json:"category"`
	Tags      *[]string `json:"tags"`
}

// Update applies a partial update and returns the updated record.
// Returns (nil, nil) when the record does not exist.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*models.Media, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil || current == nil {
		return nil, err
	}

	if in.URL != nil && *in.URL != current.URL {
		n, err := s.coll().CountDocuments(ctx, bson.M{"url": *in.URL, "_id": bson.M{"$ne": current.ID}})
		if err != nil {
			return nil, err
		}
		if n > 0 {
			return nil, ErrURLTaken
		}
		current.URL = *in.URL
	}
	if in.Title != nil {
		current.Title = *in.Title
	}
	if in.Thumbnail != nil {
		current.Thumbnail = *in.Thumbnail
	}
	if in.Type != nil {
		current.Type = *in.Type
	}
	if in.Category != nil {
		current.Category = *in.Category
	}
	if in.Tags != nil {
		current.Tags = *in.Tags
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

// Delete removes a gallery item, reporting whether anything was deleted.
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
