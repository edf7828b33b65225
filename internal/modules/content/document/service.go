package document

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

var ErrTitleTaken = errors.New("a document with this title already exists")

// Service provides document archive storage operations.
type Service struct {
	db *mongo.Database
}

func NewService(db *mongo.Database) *Service {
	return &Service{db: db}
}

func (s *Service) coll() *mongo.Collection {
	return s.db.Collection(database.CollDocuments)
}

// ListOptions narrows the document listing.
type ListOptions struct {
	Category string
	// PublicOnly hides private documents from anonymous visitors.
	PublicOnly bool
}

func (o ListOptions) filter() bson.M {
	filter := bson.M{}
	if o.Category != "" {
		filter["category"] = o.Category
	}
	if o.PublicOnly {
		filter["private"] = false
	}
	return filter
}

// List returns documents, newest first.
func (s *Service) List(ctx context.Context, opts ListOptions, q pagination.Query) ([]models.Document, response.Pagination, error) {
	items := []models.Document{}
	sort := bson.D{{Key: "createdAt", Value: -1}}
	meta, err := pagination.Find(ctx, s.coll(), opts.filter(), sort, q, &items)
	if err != nil {
		return nil, response.Pagination{}, err
	}
	return items, meta, nil
}

// GetByID loads one document by hex ID. Returns (nil, nil) when not found.
func (s *Service) GetByID(ctx context.Context, id string) (*models.Document, error) {
	oid, err := database.ParseObjectID(id)
	if err != nil {
		return nil, nil
	}
	var item models.Document
	err = s.coll().FindOne(ctx, bson.M{"_id": oid}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create validates and inserts a new document. Titles must be unique.
func (s *Service) Create(ctx context.Context, item *models.Document) error {
	item.ID = primitive.NewObjectID()
	item.ApplyDefaults(time.Now())
	if err := item.Validate(); err != nil {
		return err
	}

	n, err := s.coll().CountDocuments(ctx, bson.M{"title": item.Title})
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrTitleTaken
	}

	_, err = s.coll().InsertOne(ctx, item)
	return err
}

// UpdateInput carries partial document changes. Nil fields are left untouched.
type UpdateInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	FileName    *string `json:"file_name"`
	FileType    *string `json:"file_type"`
	FileSize    *int64  `json:"file_size"`
	FileURL     *string `json:"file_url"`
	Private     *bool   `json:"private"`
}

// Update applies a partial update and returns the updated record.
// Returns (nil, nil) when the record does not exist.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*models.Document, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil || current == nil {
		return nil, err
	}

	if in.Title != nil && *in.Title != current.Title {
		n, err := s.coll().CountDocuments(ctx, bson.M{"title": *in.Title, "_id": bson.M{"$ne": current.ID}})
		if err != nil {
			return nil, err
		}
		if n > 0 {
			return nil, ErrTitleTaken
		}
		current.Title = *in.Title
	}
	if in.Description != nil {
		current.Description = *in.Description
	}
	if in.Category != nil {
		current.Category = *in.Category
	}
	if in.FileName != nil {
		current.FileName = *in.FileName
	}
	if in.FileType != nil {
		current.FileType = *in.FileType
	}
	if in.FileSize != nil {
		current.FileSize = *in.FileSize
	}
	if in.FileURL != nil {
		current.FileURL = *in.FileURL
	}
	if in.Private != nil {
		current.Private = *in.Private
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

// Delete removes a document, reporting whether anything was deleted.
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

// IncrementDownloads bumps the download counter, best-effort.
func (s *Service) IncrementDownloads(ctx context.Context, id primitive.ObjectID) {
	_, _ = s.coll().UpdateByID(ctx, id, bson.M{"$inc": bson.M{"downloads": 1}})
}
