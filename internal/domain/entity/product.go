// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProductType classifies a product in the catalog.
type ProductType string

const (
	ProductTypeManufactured ProductType = "manufactured"
	ProductTypeResale       ProductType = "resale"
)

// Product represents an item the business produces and/or sells.
// Production batches and sales always reference a product.
type Product struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	Name       string
	Type       ProductType
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewProduct creates a new Product entity.
func NewProduct(businessID uuid.UUID, name string, productType ProductType) *Product {
	now := time.Now().UTC()
	return &Product{
		ID:         uuid.New(),
		BusinessID: businessID,
		Name:       name,
		Type:       productType,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
