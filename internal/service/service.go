// Package service implements the storefront's action layer: thin entry
// points over the store that also mark dependent views stale.
package service

import (
	"fmt"

	"github.com/Allison-thonio/TTTSL/internal/store"
	"github.com/Allison-thonio/TTTSL/internal/views"
)

// StoreService defines the operations the presentation layer calls.
type StoreService interface {
	// FetchProducts returns the catalog in storage order.
	FetchProducts() ([]store.Product, error)

	// UpsertProduct inserts or replaces a product by ID and marks the
	// catalog, home, and admin views stale.
	UpsertProduct(p store.Product) (*store.Product, error)

	// RemoveProduct deletes a product by ID. Removing an unknown ID
	// succeeds; dependent views are marked stale either way.
	RemoveProduct(id int64) error

	// FetchOrders returns all orders as stored.
	FetchOrders() ([]store.Order, error)

	// FetchSiteImages returns the full site-image mapping.
	FetchSiteImages() (store.SiteImages, error)

	// UpdateSiteImages shallow-merges patch into the stored mapping and
	// marks the home and admin views stale.
	UpdateSiteImages(patch store.SiteImages) (store.SiteImages, error)
}

// Revalidator receives stale-view notifications after mutations.
type Revalidator interface {
	Revalidate(paths ...string)
}

// Service implements StoreService.
type Service struct {
	store store.Store
	views Revalidator
}

// NewService creates a Service over the given store and view tracker.
func NewService(s store.Store, v Revalidator) *Service {
	return &Service{store: s, views: v}
}

func (s *Service) FetchProducts() ([]store.Product, error) {
	products, err := s.store.ListProducts()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}

func (s *Service) UpsertProduct(p store.Product) (*store.Product, error) {
	saved, err := s.store.UpsertProduct(p)
	if err != nil {
		return nil, fmt.Errorf("failed to save product %d: %w", p.ID, err)
	}
	s.views.Revalidate(views.AdminDashboard, views.Home, views.Shop)
	return saved, nil
}

func (s *Service) RemoveProduct(id int64) error {
	if err := s.store.DeleteProduct(id); err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	s.views.Revalidate(views.AdminDashboard, views.Home, views.Shop)
	return nil
}

func (s *Service) FetchOrders() ([]store.Order, error) {
	orders, err := s.store.ListOrders()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, nil
}

func (s *Service) FetchSiteImages() (store.SiteImages, error) {
	images, err := s.store.SiteImages()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch site images: %w", err)
	}
	return images, nil
}

func (s *Service) UpdateSiteImages(patch store.SiteImages) (store.SiteImages, error) {
	merged, err := s.store.MergeSiteImages(patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update site images: %w", err)
	}
	s.views.Revalidate(views.Home, views.AdminDashboard)
	return merged, nil
}
