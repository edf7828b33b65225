package press

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

var ErrDuplicate = errors.New("a press item with this title and category already exists")

// Service provides press coverage storage operations.
type Service struct {
	db *mongo.Database
}

func NewService(db *mongo.Database) *Service {
	return &Service{db: db}
}

func (s *Service) coll() *mongo.Collection {
	return s.db.Collection(database.CollPress)
}

// ListOptions narrows the press listing.
type ListOptions struct {
	Category string
	Type     string
}

func (o ListOptions) filter() bson.M {
	filter := bson.M{}
	if o.Category != "" {
		filter["category"] = o.Category
	}
	if o.Type != "" {
		filter["type"] = o.Type
	}
	return filter
}

// List returns press items, newest coverage first.
func (s *Service) List(ctx context.Context, opts ListOptions, q pagination.Query) ([]models.PressItem, response.Pagination, error) {
	items := []models.PressItem{}
	sort := bson.D{{Key: "date", Value: -1}}
	meta, err := pagination.Find(ctx, s.coll(), opts.filter(), sort, q, &items)
	if err != nil {
		return nil, response.Pagination{}, err
	}
	return items, meta, nil
}

// GetByID loads one press item by hex ID. Returns (nil, nil) when not found.
func (s *Service) GetByID(ctx context.Context, id string) (*models.PressItem, error) {
	oid, err := database.ParseObjectID(id)
	if err != nil {
		return nil, nil
	}
	var item models.PressItem
	err = s.coll().FindOne(ctx, bson.M{"_id": oid}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create validates and inserts a new press item. Title+category must be unique.
func (s *Service) Create(ctx context.Context, item *models.PressItem) error {
	item.ID = primitive.NewObjectID()
	item.ApplyDefaults(time.Now())
	if err := item.Validate(); err != nil {
		return err
	}

	n, err := s.coll().CountDocuments(ctx, bson.M{"title": item.Title, "category": item.Category})
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrDuplicate
	}

	_, err = s.coll().InsertOne(ctx, item)
	return err
}

// UpdateInput carries partial press item changes. Nil fields are left untouched.
type UpdateInput struct {
	Title    *string    `json:"title"`
	Category *string    `json:"category"`
	Type     *string    `json:"type"`
	Outlet   *string    `json:"outlet"`
	Summary  *string    `json:"summary"`
	URL      *string    `json:"url"`
	Date     *time.Time `json:"date"`
}

// Update applies a partial update and returns the updated record.
// Returns (nil, nil) when the record does not exist.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*models.PressItem, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil || current == nil {
		return nil, err
	}

	if in.Title != nil {
		current.Title = *in.Title
	}
	if in.Category != nil {
		current.Category = *in.Category
	}
	if in.Type != nil {
		current.Type = *in.Type
	}
	if in.Outlet != nil {
		current.Outlet = *in.Outlet
	}
	if in.Summary != nil {
		current.Summary = *in.Summary
	}
	if in.URL != nil {
		current.URL = *in.URL
	}
	if in.Date != nil {
		current.Date = *in.Date
	}
	current.UpdatedAt = time.Now()

	if err := current.Validate(); err != nil {
		return nil, err
	}

	if in.Title != nil || in.Category != nil {
		n, err := s.coll().CountDocuments(ctx, bson.M{
			"title":    current.Title,
			"category": current.Category,
			"_id":      bson.M{"$ne": current.ID},
		})
		if err != nil {
			return nil, err
		}
		if n > 0 {
			return nil, ErrDuplicate
		}
	}

	if _, err := s.coll().ReplaceOne(ctx, bson.M{"_id": current.ID}, current); err != nil {
		return nil, err
	}
	return current, nil
}

// Delete removes a press item, reporting whether anything was deleted.
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

// IncrementViews bumps the view counter, best-effort.
func (s *Service) IncrementViews(ctx context.Context, id primitive.ObjectID) {
	_, _ = s.coll().UpdateByID(ctx, id, bson.M{"$inc": bson.M{"views": 1}})
}

// IncrementShares bumps the share counter, best-effort.
func (s *Service) IncrementShares(ctx context.Context, id primitive.ObjectID) {
	_, _ = s.coll().UpdateByID(ctx, id, bson.M{"$inc": bson.M{"shares": 1}})
}
