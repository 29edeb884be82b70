package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account document in the `users` collection.
// Passwords are stored only as bcrypt hashes.  The Role field holds
// either CUSTOMER (self-registered) or ADMIN (seeded out of band) and
// is carried into issued access tokens as the "role" claim.
//
// Fields:
//  ID           – Mongo object id.
//  Email        – unique, lower-cased email address.
//  PasswordHash – bcrypt hash of the password.
//  Role         – CUSTOMER or ADMIN.
//  CreatedAt    – creation timestamp (UTC).
//  UpdatedAt    – last update timestamp (UTC).
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Role         string             `bson:"role" json:"role"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}
