package catalog

import (
	"fmt"

	"shopmate/internal/errors"
)

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortRelevance SortKey = "relevance"  // match score descending, missing treated as 0
	SortPriceLow  SortKey = "price_low"  // price ascending
	SortPriceHigh SortKey = "price_high" // price descending
	SortRating    SortKey = "rating"     // rating descending, missing treated as 0
	SortNewest    SortKey = "newest"     // creation time descending
)

// Filter is an ephemeral product query. All predicates are optional and
// combined as a conjunction; a zero Filter matches everything in id order.
type Filter struct {
	Stores     []string
	Categories []string
	MinPrice   *float64
	MaxPrice   *float64
	MinRating  *float64
	SortBy     SortKey // empty means no explicit ordering
}

// Validate checks filter shape. Price and rating bounds must be
// non-negative and the sort key must be one of the known values.
func (f *Filter) Validate() error {
	if f.MinPrice != nil && *f.MinPrice < 0 {
		return errors.NewInvalidRequest("minPrice must be non-negative")
	}
	if f.MaxPrice != nil && *f.MaxPrice < 0 {
		return errors.NewInvalidRequest("maxPrice must be non-negative")
	}
	if f.MinRating != nil && *f.MinRating < 0 {
		return errors.NewInvalidRequest("minRating must be non-negative")
	}
	switch f.SortBy {
	case "", SortRelevance, SortPriceLow, SortPriceHigh, SortRating, SortNewest:
		return nil
	default:
		return errors.NewInvalidRequest(fmt.Sprintf("unknown sortBy value: %q", f.SortBy))
	}
}
