package catalog

import (
	"testing"

	"shopmate/internal/errors"
)

func TestFilterValidate(t *testing.T) {
	neg := -1.0
	zero := 0.0

	tests := []struct {
		name    string
		filter  Filter
		wantErr bool
	}{
		{name: "zero filter", filter: Filter{}},
		{name: "zero bounds allowed", filter: Filter{MinPrice: &zero, MinRating: &zero}},
		{name: "sort relevance", filter: Filter{SortBy: SortRelevance}},
		{name: "sort price_low", filter: Filter{SortBy: SortPriceLow}},
		{name: "sort price_high", filter: Filter{SortBy: SortPriceHigh}},
		{name: "sort rating", filter: Filter{SortBy: SortRating}},
		{name: "sort newest", filter: Filter{SortBy: SortNewest}},
		{name: "unknown sort", filter: Filter{SortBy: "cheapest"}, wantErr: true},
		{name: "negative min price", filter: Filter{MinPrice: &neg}, wantErr: true},
		{name: "negative max price", filter: Filter{MaxPrice: &neg}, wantErr: true},
		{name: "negative min rating", filter: Filter{MinRating: &neg}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate()
			if tt.wantErr {
				if !errors.Is(err, errors.ErrInvalidRequest) {
					t.Errorf("Validate() error = %v, want INVALID_REQUEST", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
		})
	}
}
