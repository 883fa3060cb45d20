package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a family member account in the Family Hub.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Username       string             `bson:"username"`
	Email          string             `bson:"email"`
	HashedPassword string             `json:"hashed_password"`
	Role           string             `bson:"role" json:"role"`
	FamilyID       string             `bson:"family_id" json:"family_id"`
	// Traits is the user's personalization profile; the rotation manager
	// snapshots it into UserTraitState.
	Traits       []string  `bson:"traits,omitempty" json:"traits,omitempty"`
	IsActive     bool      `bson:"is_active" json:"is_active"`
	LastActiveAt time.Time `bson:"last_active_at,omitempty" json:"last_active_at,omitempty"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

type PublicUser struct {
	ID       primitive.ObjectID `json:"id"`
	Username string             `json:"username"`
	Email    string             `json:"email"`
	Traits   []string           `json:"traits,omitempty"`
}
