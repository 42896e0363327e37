package store

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	s, err := NewFileStore(filepath.Join(t.TempDir(), "data", "store.json"), logger)
	require.NoError(t, err)
	return s
}

func strPtr(s string) *string { return &s }

func Test_FileStore_MissingFileYieldsEmptyStore(t *testing.T) {
	// given
	s := newTestStore(t)

	// when
	products, pErr := s.ListProducts()
	orders, oErr := s.ListOrders()
	images, iErr := s.SiteImages()

	// then
	require.NoError(t, pErr)
	require.NoError(t, oErr)
	require.NoError(t, iErr)
	assert.Empty(t, products)
	assert.Empty(t, orders)
	assert.Empty(t, images)
}

func Test_FileStore_CorruptFileYieldsEmptyStore(t *testing.T) {
	// given
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.path, []byte("{not json"), 0o644))

	// when
	products, err := s.ListProducts()

	// then
	require.NoError(t, err)
	assert.Empty(t, products)
}

func Test_FileStore_UpsertProduct(t *testing.T) {
	// given
	s := newTestStore(t)
	first := Product{ID: 1, Name: "Ana Tee", Price: 29.99, Stock: 4, Status: "active"}
	second := Product{ID: 2, Name: "Zed Jacket", Price: 120, Stock: 2, Status: "active"}

	// when
	saved, err := s.UpsertProduct(first)
	require.NoError(t, err)
	_, err = s.UpsertProduct(second)
	require.NoError(t, err)

	// then
	assert.Equal(t, first, *saved)
	products, err := s.ListProducts()
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, first, products[0])
	assert.Equal(t, second, products[1])
}

func Test_FileStore_UpsertReplacesInPlaceWithoutMerging(t *testing.T) {
	// given
	s := newTestStore(t)
	_, err := s.UpsertProduct(Product{ID: 1, Name: "Ana Tee", Price: 29.99, Description: "cotton"})
	require.NoError(t, err)
	_, err = s.UpsertProduct(Product{ID: 2, Name: "Zed Jacket", Price: 120})
	require.NoError(t, err)

	// when: replace id 1 with a record that has no description
	replacement := Product{ID: 1, Name: "Ana Tee v2", Price: 34.99}
	_, err = s.UpsertProduct(replacement)
	require.NoError(t, err)

	// then: position preserved, old fields gone
	products, err := s.ListProducts()
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, replacement, products[0])
	assert.Empty(t, products[0].Description)
}

func Test_FileStore_DeleteProductIsIdempotent(t *testing.T) {
	// given
	s := newTestStore(t)
	_, err := s.UpsertProduct(Product{ID: 1, Name: "Ana Tee"})
	require.NoError(t, err)

	// when
	require.NoError(t, s.DeleteProduct(1))
	require.NoError(t, s.DeleteProduct(1))
	require.NoError(t, s.DeleteProduct(99))

	// then
	products, err := s.ListProducts()
	require.NoError(t, err)
	assert.Empty(t, products)
}

func Test_FileStore_MergeSiteImages(t *testing.T) {
	// given
	s := newTestStore(t)

	// when
	_, err := s.MergeSiteImages(SiteImages{"hero1": "x"})
	require.NoError(t, err)
	merged, err := s.MergeSiteImages(SiteImages{"logo": "y"})
	require.NoError(t, err)

	// then: merge, not replace
	assert.Equal(t, SiteImages{"hero1": "x", "logo": "y"}, merged)
	stored, err := s.SiteImages()
	require.NoError(t, err)
	assert.Equal(t, merged, stored)
}

func Test_FileStore_PersistsPrettyPrintedDocument(t *testing.T) {
	// given
	s := newTestStore(t)
	_, err := s.UpsertProduct(Product{ID: 1, Name: "Ana Tee", Image: strPtr("/img/ana.jpg")})
	require.NoError(t, err)

	// when
	data, err := os.ReadFile(s.path)
	require.NoError(t, err)

	// then: all three collections present, human-diffable layout
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "products")
	assert.Contains(t, doc, "orders")
	assert.Contains(t, doc, "siteImages")
	assert.Contains(t, string(data), "\n  ")
}

func Test_FileStore_OrdersReadBackAsStored(t *testing.T) {
	// given: orders land in the file out of band
	s := newTestStore(t)
	doc := emptyDocument()
	doc.Orders = []Order{{
		ID:       "ORD-1001",
		Customer: "Ellery",
		Status:   "completed",
		Total:    149.99,
		Date:     "Jan 12, 2026",
		Items:    []json.RawMessage{json.RawMessage(`{"name":"Ana Tee","qty":1}`)},
	}}
	require.NoError(t, s.save(doc))

	// when
	orders, err := s.ListOrders()

	// then
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "ORD-1001", orders[0].ID)
	assert.JSONEq(t, `{"name":"Ana Tee","qty":1}`, string(orders[0].Items[0]))
}
