// Package catalog derives filtered, sorted, display-ready product lists
// from an in-memory snapshot of the catalog, and backs the storefront's
// free-text search.
package catalog

import (
	"slices"
	"strings"

	"github.com/Allison-thonio/TTTSL/internal/store"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// PreviewLimit caps the live search dropdown.
const PreviewLimit = 5

// PriceRange is a category-page price filter key.
type PriceRange string

const (
	RangeAll      PriceRange = "all"
	RangeUnder50  PriceRange = "under-50"
	Range50To100  PriceRange = "50-100"
	Range100To200 PriceRange = "100-200"
	RangeOver200  PriceRange = "over-200"
)

// Includes reports whether a price falls inside the range. The bracketed
// ranges include both endpoints; under/over are strict.
func (r PriceRange) Includes(price float64) bool {
	switch r {
	case RangeUnder50:
		return price < 50
	case Range50To100:
		return price >= 50 && price <= 100
	case Range100To200:
		return price >= 100 && price <= 200
	case RangeOver200:
		return price > 200
	default:
		return true
	}
}

// SortKey selects the ordering of a product list. One key is active at a time.
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortName      SortKey = "name"
	// SortRelevance preserves the incoming match order; used by the
	// search page only.
	SortRelevance SortKey = "relevance"
)

// FilterCategory returns the products whose category exactly equals the
// page's target category (case-sensitive) and whose price falls in the
// given range. Products without a category never match a non-"all" page.
func FilterCategory(products []store.Product, category string, priceRange PriceRange) []store.Product {
	out := make([]store.Product, 0, len(products))
	for _, p := range products {
		if p.Category != category {
			continue
		}
		if !priceRange.Includes(p.Price) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Sort returns a sorted copy of products; the input is left untouched.
// Sorting is stable, so equal elements keep their collection order.
// Unknown keys (and SortRelevance) return the list unresorted.
func Sort(products []store.Product, key SortKey) []store.Product {
	out := slices.Clone(products)
	switch key {
	case SortNewest:
		slices.SortStableFunc(out, func(a, b store.Product) int {
			switch {
			case a.CreatedAt > b.CreatedAt:
				return -1
			case a.CreatedAt < b.CreatedAt:
				return 1
			default:
				return 0
			}
		})
	case SortPriceLow:
		slices.SortStableFunc(out, func(a, b store.Product) int {
			switch {
			case a.Price < b.Price:
				return -1
			case a.Price > b.Price:
				return 1
			default:
				return 0
			}
		})
	case SortPriceHigh:
		slices.SortStableFunc(out, func(a, b store.Product) int {
			switch {
			case a.Price > b.Price:
				return -1
			case a.Price < b.Price:
				return 1
			default:
				return 0
			}
		})
	case SortName:
		c := collate.New(language.AmericanEnglish)
		slices.SortStableFunc(out, func(a, b store.Product) int {
			return c.CompareString(a.Name, b.Name)
		})
	}
	return out
}

// Matches reports whether the query (case-insensitive) is a substring of
// the product's name, description, or category.
func Matches(p store.Product, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	if p.Description != "" && strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	if p.Category != "" && strings.Contains(strings.ToLower(p.Category), q) {
		return true
	}
	return false
}

// Search returns all products matching the query in collection order.
// An empty query returns the whole snapshot (full search page semantics).
func Search(products []store.Product, query string) []store.Product {
	if query == "" {
		return slices.Clone(products)
	}
	out := make([]store.Product, 0, len(products))
	for _, p := range products {
		if Matches(p, query) {
			out = append(out, p)
		}
	}
	return out
}

// Preview returns at most PreviewLimit matches for the live dropdown.
// Unlike Search, an empty query yields nothing.
func Preview(products []store.Product, query string) []store.Product {
	if query == "" {
		return []store.Product{}
	}
	matches := Search(products, query)
	if len(matches) > PreviewLimit {
		matches = matches[:PreviewLimit]
	}
	return matches
}

// Categories returns the distinct non-empty categories in first-seen order,
// for the search page's filter chips. Products without a category
// contribute nothing.
func Categories(products []store.Product) []string {
	seen := make(map[string]struct{}, len(products))
	out := make([]string, 0, len(products))
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}
