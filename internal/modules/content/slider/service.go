package slider

import (
	"context"
	"errors"
	"time"

	"github.com/sendikahub/core/internal/database"
	"github.com/sendikahub/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Service provides homepage slider storage operations.
type Service struct {
	db *mongo.Database
}

func NewService(db *mongo.Database) *Service {
	return &Service{db: db}
}

func (s *Service) coll() *mongo.Collection {
	return s.db.Collection(database.CollSliders)
}

// List returns slides in display order. When activeOnly is set, hidden
// slides are excluded.
func (s *Service) List(ctx context.Context, activeOnly bool) ([]models.Slider, error) {
	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: 1}})
	cursor, err := s.coll().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.Slider{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID loads one slide by hex ID. Returns (nil, nil) when not found.
func (s *Service) GetByID(ctx context.Context, id string) (*models.Slider, error) {
	oid, err := database.ParseObjectID(id)
	if err != nil {
		return nil, nil
	}
	var item models.Slider
	err = s.coll().FindOne(ctx, bson.M{"_id": oid}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create validates and inserts a new slide. New slides go to the end of the
// display order unless an explicit order is set.
func (s *Service) Create(ctx context.Context, item *models.Slider) error {
	item.ID = primitive.NewObjectID()
	item.ApplyDefaults(time.Now())
	if err := item.Validate(); err != nil {
		return err
	}

	if item.Order == 0 {
		n, err := s.coll().CountDocuments(ctx, bson.M{})
		if err != nil {
			return err
		}
		item.Order = int(n) + 1
	}

	_, err := s.coll().InsertOne(ctx, item)
	return err
}

// UpdateInput carries partial slide changes. Nil fields are left untouched.
type UpdateInput struct {
	Title    *string `json:"title"`
	Subtitle *string `json:"subtitle"`
	Image    *string `json:"image"`
	Link     *string `json:"link"`
	Order    *int    `json:"order"`
	Active   *bool   `json:"active"`
}

// Update applies a partial update and returns the updated record.
// Returns (nil, nil) when the record does not exist.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*models.Slider, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil || current == nil {
		return nil, err
	}

	if in.Title != nil {
		current.Title = *in.Title
	}
	if in.Subtitle != nil {
		current.Subtitle = *in.Subtitle
	}
	if in.Image != nil {
		current.Image = *in.Image
	}
	if in.Link != nil {
		current.Link = *in.Link
	}
	if in.Order != nil {
		current.Order = *in.Order
	}
	if in.Active != nil {
		current.Active = *in.Active
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

// Reorder rewrites the display order from an ordered list of slide IDs.
// IDs missing from the list keep their previous order.
func (s *Service) Reorder(ctx context.Context, ids []string) error {
	for i, id := range ids {
		oid, err := database.ParseObjectID(id)
		if err != nil {
			return err
		}
		if _, err := s.coll().UpdateByID(ctx, oid, bson.M{"$set": bson.M{
			"order":     i + 1,
			"updatedAt": time.Now(),
		}}); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a slide, reporting whether anything was deleted.
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
