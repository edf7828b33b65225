package member

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

var ErrEmailTaken = errors.New("a member with this email already exists")

// Service provides member registry storage operations.
type Service struct {
	db *mongo.Database
}

func NewService(db *mongo.Database) *Service {
	return &Service{db: db}
}

func (s *Service) coll() *mongo.Collection {
	return s.db.Collection(database.CollMembers)
}

// ListOptions narrows the member listing.
type ListOptions struct {
	Status     string
	Type       string
	DuesStatus string
	City       string
}

func (o ListOptions) filter() bson.M {
	filter := bson.M{}
	if o.Status != "" {
		filter["status"] = o.Status
	}
	if o.Type != "" {
		filter["membershipInfo.type"] = o.Type
	}
	if o.DuesStatus != "" {
		filter["membershipInfo.duesStatus"] = o.DuesStatus
	}
	if o.City != "" {
		filter["workInfo.city"] = o.City
	}
	return filter
}

// List returns members ordered by name.
func (s *Service) List(ctx context.Context, opts ListOptions, q pagination.Query) ([]models.Member, response.Pagination, error) {
	items := []models.Member{}
	sort := bson.D{{Key: "name", Value: 1}}
	meta, err := pagination.Find(ctx, s.coll(), opts.filter(), sort, q, &items)
	if err != nil {
		return nil, response.Pagination{}, err
	}
	return items, meta, nil
}

// GetByID loads one member by hex ID. Returns (nil, nil) when not found.
func (s *Service) GetByID(ctx context.Context, id string) (*models.Member, error) {
	oid, err := database.ParseObjectID(id)
	if err != nil {
		return nil, nil
	}
	var item models.Member
	err = s.coll().FindOne(ctx, bson.M{"_id": oid}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create validates and inserts a new member. Emails must be unique.
func (s *Service) Create(ctx context.Context, item *models.Member) error {
	item.ID = primitive.NewObjectID()
	item.ApplyDefaults(time.Now())
	if err := item.Validate(); err != nil {
		return err
	}

	n, err := s.coll().CountDocuments(ctx, bson.M{"email": item.Email})
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrEmailTaken
	}

	_, err = s.coll().InsertOne(ctx, item)
	return err
}

// UpdateInput carries partial member changes. Nil fields are left untouched.
type UpdateInput struct {
	Name           *string                `json:"name"`
	Email          *string                `json:"email"`
	Phone          *string                `json:"phone"`
	WorkInfo       *models.WorkInfo       `json:"work_info"`
	MembershipInfo *models.MembershipInfo `json:"membership_info"`
	Status         *string                `json:"status"`
}

// Update applies a partial update and returns the updated record.
// Returns (nil, nil) when the record does not exist.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*models.Member, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil || current == nil {
		return nil, err
	}

	if in.Email != nil && *in.Email != current.Email {
		n, err := s.coll().CountDocuments(ctx, bson.M{"email": *in.Email, "_id": bson.M{"$ne": current.ID}})
		if err != nil {
			return nil, err
		}
		if n > 0 {
			return nil, ErrEmailTaken
		}
		current.Email = *in.Email
	}
	if in.Name != nil {
		current.Name = *in.Name
	}
	if in.Phone != nil {
		current.Phone = *in.Phone
	}
	if in.WorkInfo != nil {
		current.WorkInfo = *in.WorkInfo
	}
	if in.MembershipInfo != nil {
		current.MembershipInfo = *in.MembershipInfo
	}
	if in.Status != nil {
		current.Status = *in.Status
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

// Delete removes a member, reporting whether anything was deleted.
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

// Stats aggregates membership counts for the admin dashboard.
type Stats struct {
	Total  int64            `json:"total"`
	Active int64            `json:"active"`
	ByType map[string]int64 `json:"by_type"`
	ByDues map[string]int64 `json:"by_dues"`
}

// Stats computes membership counts grouped by type and dues status.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	total, err := s.coll().CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	active, err := s.coll().CountDocuments(ctx, bson.M{"status": models.MemberStatusActive})
	if err != nil {
		return nil, err
	}

	byType, err := s.countGrouped(ctx, "$membershipInfo.type")
	if err != nil {
		return nil, err
	}
	byDues, err := s.countGrouped(ctx, "$membershipInfo.duesStatus")
	if err != nil {
		return nil, err
	}

	return &Stats{Total: total, Active: active, ByType: byType, ByDues: byDues}, nil
}

func (s *Service) countGrouped(ctx context.Context, field string) (map[string]int64, error) {
	cursor, err := s.coll().Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": field, "count": bson.M{"$sum": 1}}}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID    string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.ID] = row.Count
	}
	return out, nil
}
