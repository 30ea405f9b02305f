// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents the owner/admin account of a business.
type User struct {
	ID           uuid.UUID
	BusinessID   uuid.UUID
	Email        string
	Name         string
	BusinessName string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User with a fresh business scope.
// Every record the user creates is tagged with the same BusinessID.
func NewUser(email, name, businessName, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		BusinessID:   uuid.New(),
		Email:        email,
		Name:         name,
		BusinessName: businessName,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
