// Package store provides durable access to the storefront's single-document
// JSON store: products, orders, and admin-managed site images.
package store

import "encoding/json"

// Product is a catalog entry as persisted in the store file.
// CreatedAt is a unix-millisecond timestamp assigned at creation; products
// written before the field existed carry 0 and sort as oldest.
type Product struct {
	ID             int64             `json:"id"`
	Name           string            `json:"name"`
	Price          float64           `json:"price"`
	Stock          int               `json:"stock"`
	Status         string            `json:"status"`
	Image          *string           `json:"image"`
	Description    string            `json:"description,omitempty"`
	Category       string            `json:"category,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
	SKU            string            `json:"sku,omitempty"`
	Brand          string            `json:"brand,omitempty"`
	CreatedAt      int64             `json:"createdAt,omitempty"`
}

// Order is read-only from this service's perspective; orders land in the
// store file out of band and line items stay opaque.
type Order struct {
	ID       string            `json:"id"`
	Customer string            `json:"customer"`
	Status   string            `json:"status"`
	Total    float64           `json:"total"`
	Date     string            `json:"date"`
	Items    []json.RawMessage `json:"items"`
}

// SiteImages maps fixed placement keys to image references
// (data URIs or paths). Unknown keys are tolerated.
type SiteImages map[string]string

// Site image placement keys used by the storefront.
const (
	ImageHero  = "hero1"
	ImageLogo  = "logo"
	ImageStack = "stack1" // stack2, stack3 follow the same pattern
)

// Store is an interface for storefront storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, file).
type Store interface {
	// ListProducts returns all products in storage order.
	// Returns an empty slice if no products exist.
	ListProducts() ([]Product, error)

	// UpsertProduct replaces the product with a matching ID in place,
	// or appends it when no such product exists. The incoming record
	// replaces the stored one entirely; fields are never merged.
	UpsertProduct(p Product) (*Product, error)

	// DeleteProduct removes every product with the given ID.
	// Deleting an unknown ID is a no-op, not an error.
	DeleteProduct(id int64) error

	// ListOrders returns all orders as stored.
	ListOrders() ([]Order, error)

	// SiteImages returns the full placement-key mapping.
	SiteImages() (SiteImages, error)

	// MergeSiteImages shallow-merges patch into the stored mapping:
	// patched keys override, absent keys are retained.
	MergeSiteImages(patch SiteImages) (SiteImages, error)
}
