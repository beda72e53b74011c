package ops

import (
	"database/sql"

	"shopmate/internal/catalog"
	"shopmate/internal/db"
)

// ListProductsInput contains parameters for the ListProducts operation.
type ListProductsInput struct {
	Filter catalog.Filter
}

// ListProducts returns catalog products matching the filter. An empty
// filter returns everything in insertion order.
func ListProducts(database *sql.DB, input ListProductsInput) ([]catalog.Product, error) {
	if err := input.Filter.Validate(); err != nil {
		return nil, err
	}

	products, err := db.ListProducts(database, input.Filter)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []catalog.Product{}
	}
	return products, nil
}

// GetProduct returns a single product by id.
func GetProduct(database *sql.DB, id int64) (*catalog.Product, error) {
	return db.GetProduct(database, id)
}

// ResetOutput contains the result of the ResetProducts operation.
type ResetOutput struct {
	Message string `json:"message"`
}

// ResetProducts clears the catalog and reseeds the default listings.
func ResetProducts(database *sql.DB) (*ResetOutput, error) {
	if err := clearAndReseed(database); err != nil {
		return nil, err
	}
	return &ResetOutput{Message: "Products reset successfully"}, nil
}

// clearAndReseed empties the catalog and inserts the default listings.
// Product ids keep counting up across resets, so listings from before
// and after a reset never share an id.
func clearAndReseed(database *sql.DB) error {
	if err := db.ClearProducts(database); err != nil {
		return err
	}
	_, err := db.InsertProducts(database, db.DefaultSeed())
	return err
}
