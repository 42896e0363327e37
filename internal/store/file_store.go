package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// document is the on-disk shape of the store file.
type document struct {
	Products   []Product  `json:"products"`
	Orders     []Order    `json:"orders"`
	SiteImages SiteImages `json:"siteImages"`
}

func emptyDocument() document {
	return document{
		Products:   []Product{},
		Orders:     []Order{},
		SiteImages: SiteImages{},
	}
}

// FileStore implements Store over a single pretty-printed JSON file.
//
// Every operation re-reads the whole file, mutates the document and rewrites
// it in full; nothing is cached between calls. A RWMutex serializes calls
// within this process, but a second process writing the same file still
// races (last write wins in full).
type FileStore struct {
	mu     sync.RWMutex
	path   string
	logger *slog.Logger
}

// NewFileStore creates a FileStore for the given path, creating parent
// directories as needed. The file itself is created lazily on first write.
func NewFileStore(path string, logger *slog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &FileStore{
		path:   path,
		logger: logger.With("component", "store"),
	}, nil
}

// load reads and parses the store file. A missing or unparsable file
// degrades to the empty document so a fresh deployment starts clean; parse
// failures are logged because they can also mask real corruption.
func (s *FileStore) load() document {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("Store file unreadable, treating as empty", "path", s.path, "error", err)
		}
		return emptyDocument()
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn("Store file unparsable, treating as empty", "path", s.path, "error", err)
		return emptyDocument()
	}
	if doc.Products == nil {
		doc.Products = []Product{}
	}
	if doc.Orders == nil {
		doc.Orders = []Order{}
	}
	if doc.SiteImages == nil {
		doc.SiteImages = SiteImages{}
	}
	return doc
}

// save rewrites the whole store file. There is no temp-file rename, matching
// the accepted whole-file-overwrite durability model.
func (s *FileStore) save(doc document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store file: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	return nil
}

// ListProducts returns the product collection in storage order.
func (s *FileStore) ListProducts() ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.load().Products, nil
}

// UpsertProduct replaces the product with a matching ID in place, or appends it.
func (s *FileStore) UpsertProduct(p Product) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.load()
	replaced := false
	for i := range doc.Products {
		if doc.Products[i].ID == p.ID {
			doc.Products[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		doc.Products = append(doc.Products, p)
	}
	if err := s.save(doc); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteProduct removes every product with the given ID. Unknown IDs are a no-op.
func (s *FileStore) DeleteProduct(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.load()
	kept := doc.Products[:0]
	for _, p := range doc.Products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	doc.Products = kept
	return s.save(doc)
}

// ListOrders returns the order collection as stored.
func (s *FileStore) ListOrders() ([]Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.load().Orders, nil
}

// SiteImages returns the full placement-key mapping.
func (s *FileStore) SiteImages() (SiteImages, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.load().SiteImages, nil
}

// MergeSiteImages shallow-merges patch into the stored mapping and persists it.
func (s *FileStore) MergeSiteImages(patch SiteImages) (SiteImages, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.load()
	for k, v := range patch {
		doc.SiteImages[k] = v
	}
	if err := s.save(doc); err != nil {
		return nil, err
	}
	return doc.SiteImages, nil
}
