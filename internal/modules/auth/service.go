package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sendikahub/core/internal/database"
	"github.com/sendikahub/core/internal/models"
	"github.com/sendikahub/core/internal/pkg/jwt"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 7 * 24 * time.Hour

var ErrInvalidCredentials = errors.New("invalid email or password")

// Service handles operator authentication.
type Service struct {
	db *mongo.Database
}

func NewService(db *mongo.Database) *Service {
	return &Service{db: db}
}

func (s *Service) coll() *mongo.Collection {
	return s.db.Collection(database.CollUsers)
}

// Login verifies credentials and returns a signed token with the user.
func (s *Service) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	var user models.User
	err := s.coll().FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := jwt.Sign(user.ID.Hex(), tokenTTL)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	now := time.Now()
	user.LastLoginAt = &now
	_, _ = s.coll().UpdateByID(ctx, user.ID, bson.M{"$set": bson.M{"lastLoginAt": now}})

	return token, &user, nil
}

// GetByID loads a user by hex ID. Returns (nil, nil) when not found.
func (s *Service) GetByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := database.ParseObjectID(id)
	if err != nil {
		return nil, nil
	}
	var user models.User
	err = s.coll().FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// EnsureAdmin seeds the first operator account from config credentials. Does
// nothing when the email already exists or credentials are not configured.
func (s *Service) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	n, err := s.coll().CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	user := &models.User{
		Email:        email,
		Name:         "Yönetici",
		PasswordHash: string(hash),
	}
	user.ApplyDefaults(time.Now())
	if err := user.Validate(); err != nil {
		return err
	}

	_, err = s.coll().InsertOne(ctx, user)
	return err
}
