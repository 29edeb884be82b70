package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campusbites/campusbites-api/internal/model"
	"github.com/campusbites/campusbites-api/internal/utils"
)

// UserRepo provides account lookups and creation on the `users`
// collection.  Emails are stored lower-cased; a unique index on `email`
// is expected so duplicate registrations surface as ErrEmailExists.
type UserRepo struct {
	col *mongo.Collection
}

// NewUserRepo returns a UserRepo bound to the given database.
func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{col: db.Collection("users")}
}

// Create hashes the password with bcrypt and inserts a new user with the
// given role.  It returns the new user's id as a hex string.
func (r *UserRepo) Create(ctx context.Context, email, password, role string, bcryptCost int) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	// Cheap pre-check for a friendlier error; the unique index is the
	// actual guarantee.
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Err(); err == nil {
		return "", ErrEmailExists
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", err
	}

	hash, err := utils.HashPassword(password, bcryptCost)
	if err != nil {
		return "", err
	}
	now := time.Now().UTC()
	u := model.User{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrEmailExists
		}
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return oid.Hex(), nil
}

// GetByEmail returns the user with the given email or ErrUserNotFound.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.col.FindOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID returns the user with the given hex id or ErrUserNotFound.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	var u model.User
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
