package catalog

import (
	"testing"

	"github.com/Allison-thonio/TTTSL/internal/store"
	"github.com/stretchr/testify/assert"
)

func names(products []store.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func Test_PriceRange_Includes(t *testing.T) {
	testCases := []struct {
		name     string
		r        PriceRange
		price    float64
		included bool
	}{
		{name: "all includes anything", r: RangeAll, price: 9999, included: true},
		{name: "under-50 excludes 50", r: RangeUnder50, price: 50, included: false},
		{name: "under-50 includes 49.99", r: RangeUnder50, price: 49.99, included: true},
		{name: "50-100 includes lower bound", r: Range50To100, price: 50, included: true},
		{name: "50-100 includes upper bound", r: Range50To100, price: 100, included: true},
		{name: "50-100 excludes 49.99", r: Range50To100, price: 49.99, included: false},
		{name: "50-100 excludes 100.01", r: Range50To100, price: 100.01, included: false},
		{name: "100-200 includes 150", r: Range100To200, price: 150, included: true},
		{name: "over-200 excludes 200", r: RangeOver200, price: 200, included: false},
		{name: "over-200 includes 200.01", r: RangeOver200, price: 200.01, included: true},
		{name: "unknown key behaves as all", r: PriceRange("bogus"), price: 1, included: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.included, tc.r.Includes(tc.price))
		})
	}
}

func Test_FilterCategory(t *testing.T) {
	products := []store.Product{
		{ID: 1, Name: "A", Price: 10, Category: "men"},
		{ID: 2, Name: "B", Price: 90, Category: "women"},
		{ID: 3, Name: "C", Price: 75, Category: "men"},
		{ID: 4, Name: "D", Price: 75}, // no category
		{ID: 5, Name: "E", Price: 75, Category: "Men"}, // case differs
	}

	testCases := []struct {
		name       string
		category   string
		priceRange PriceRange
		expected   []string
	}{
		{name: "exact case-sensitive category match", category: "men", priceRange: RangeAll, expected: []string{"A", "C"}},
		{name: "price range applies after category", category: "men", priceRange: Range50To100, expected: []string{"C"}},
		{name: "no products in category", category: "kids", priceRange: RangeAll, expected: []string{}},
		{name: "empty target matches only uncategorized", category: "", priceRange: RangeAll, expected: []string{"D"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterCategory(products, tc.category, tc.priceRange)
			assert.Equal(t, tc.expected, names(got))
		})
	}
}

func Test_FilterCategory_NoMatchesYieldsEmpty(t *testing.T) {
	// given: neither product is tagged for men
	products := []store.Product{
		{ID: 1, Name: "A", Price: 10},
		{ID: 2, Name: "B", Price: 90},
	}

	// when
	got := FilterCategory(products, "men", RangeAll)

	// then
	assert.Empty(t, got)
}

func Test_Sort(t *testing.T) {
	products := []store.Product{
		{ID: 1, Name: "Zed Jacket", Price: 120, CreatedAt: 100},
		{ID: 2, Name: "Ana Tee", Price: 30, CreatedAt: 300},
		{ID: 3, Name: "Mid Coat", Price: 75}, // no createdAt, sorts oldest
	}

	testCases := []struct {
		name     string
		key      SortKey
		expected []string
	}{
		{name: "newest sorts createdAt descending, absent last", key: SortNewest, expected: []string{"Ana Tee", "Zed Jacket", "Mid Coat"}},
		{name: "price-low ascending", key: SortPriceLow, expected: []string{"Ana Tee", "Mid Coat", "Zed Jacket"}},
		{name: "price-high descending", key: SortPriceHigh, expected: []string{"Zed Jacket", "Mid Coat", "Ana Tee"}},
		{name: "name ascending", key: SortName, expected: []string{"Ana Tee", "Mid Coat", "Zed Jacket"}},
		{name: "relevance preserves order", key: SortRelevance, expected: []string{"Zed Jacket", "Ana Tee", "Mid Coat"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Sort(products, tc.key)
			assert.Equal(t, tc.expected, names(got))
			// input order untouched
			assert.Equal(t, []string{"Zed Jacket", "Ana Tee", "Mid Coat"}, names(products))
		})
	}
}

func Test_Sort_IsStable(t *testing.T) {
	// given: equal prices keep collection order
	products := []store.Product{
		{ID: 1, Name: "First", Price: 50},
		{ID: 2, Name: "Second", Price: 50},
		{ID: 3, Name: "Third", Price: 50},
	}

	// when
	got := Sort(products, SortPriceLow)

	// then
	assert.Equal(t, []string{"First", "Second", "Third"}, names(got))
}

func Test_Search(t *testing.T) {
	products := []store.Product{
		{ID: 1, Name: "Ana Tee", Description: "organic cotton crew neck"},
		{ID: 2, Name: "Zed Jacket", Category: "men"},
		{ID: 3, Name: "Silk Scarf"},
	}

	testCases := []struct {
		name     string
		query    string
		expected []string
	}{
		{name: "matches name case-insensitively", query: "zed", expected: []string{"Zed Jacket"}},
		{name: "matches description only", query: "cotton", expected: []string{"Ana Tee"}},
		{name: "matches category", query: "MEN", expected: []string{"Zed Jacket"}},
		{name: "empty query returns everything", query: "", expected: []string{"Ana Tee", "Zed Jacket", "Silk Scarf"}},
		{name: "no match", query: "denim", expected: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, names(Search(products, tc.query)))
		})
	}
}

func Test_Preview(t *testing.T) {
	products := make([]store.Product, 0, 8)
	for i := int64(1); i <= 8; i++ {
		products = append(products, store.Product{ID: i, Name: "Tee", CreatedAt: i})
	}

	// when: more matches than the dropdown shows
	got := Preview(products, "tee")

	// then: first five in collection order
	assert.Len(t, got, PreviewLimit)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(5), got[4].ID)

	// empty query shows no dropdown at all
	assert.Empty(t, Preview(products, ""))
}

func Test_Categories(t *testing.T) {
	// given
	products := []store.Product{
		{ID: 1, Category: "men"},
		{ID: 2}, // uncategorized, contributes no chip
		{ID: 3, Category: "women"},
		{ID: 4, Category: "men"},
	}

	// when
	got := Categories(products)

	// then: distinct, first-seen order
	assert.Equal(t, []string{"men", "women"}, got)
}
