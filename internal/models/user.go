package models

import (
	"errors"
	"time"
)

// Role marks what a user is allowed to do inside a classroom. The stored
// numeric values are part of the document format.
type Role int

const (
	RoleInstructor Role = 1
	RoleStudent    Role = 2
)

func (r Role) Valid() bool {
	return r == RoleInstructor || r == RoleStudent
}

func (r Role) String() string {
	switch r {
	case RoleInstructor:
		return "instructor"
	case RoleStudent:
		return "student"
	default:
		return "unknown"
	}
}

type User struct {
	ID           string    `bson:"_id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PhotoURL     string    `bson:"photo_url" json:"photo_url"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         Role      `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// NewUser validates required fields so malformed documents are rejected at
// the boundary instead of surfacing as empty fields deep in a flow.
func NewUser(id, name, email, passwordHash string, role Role) (*User, error) {
	if id == "" {
		return nil, errors.New("user id is required")
	}
	if name == "" {
		return nil, errors.New("user name is required")
	}
	if email == "" {
		return nil, errors.New("user email is required")
	}
	if passwordHash == "" {
		return nil, errors.New("user password hash is required")
	}
	if !role.Valid() {
		return nil, errors.New("user role must be instructor or student")
	}
	return &User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
	}, nil
}
