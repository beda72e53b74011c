package db

import (
	"database/sql"
	"strings"
	"time"

	"shopmate/internal/catalog"
	"shopmate/internal/errors"
)

const productColumns = `id, name, description, price, original_price, image_url,
	product_url, store, category, rating, review_count, ai_match_score,
	is_available, created_at`

// InsertProduct stores a single product and returns it with its assigned ID.
func InsertProduct(database *sql.DB, d catalog.ProductDraft) (*catalog.Product, error) {
	now := time.Now()

	query := `
		INSERT INTO products (
			name, description, price, original_price, image_url,
			product_url, store, category, rating, review_count,
			ai_match_score, is_available, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := database.Exec(query,
		d.Name, d.Description, d.Price, toNullString(d.OriginalPrice),
		d.ImageURL, d.ProductURL, d.Store, d.Category,
		toNullString(d.Rating), toNullInt(d.ReviewCount), toNullInt(d.MatchScore),
		boolToInt(d.IsAvailable), now.Unix(),
	)
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	return &catalog.Product{
		ID:            id,
		Name:          d.Name,
		Description:   d.Description,
		Price:         d.Price,
		OriginalPrice: d.OriginalPrice,
		ImageURL:      d.ImageURL,
		ProductURL:    d.ProductURL,
		Store:         d.Store,
		Category:      d.Category,
		Rating:        d.Rating,
		ReviewCount:   d.ReviewCount,
		MatchScore:    d.MatchScore,
		IsAvailable:   d.IsAvailable,
		CreatedAt:     time.Unix(now.Unix(), 0),
	}, nil
}

// InsertProducts stores a batch of products in insertion order.
// The batch is committed as one transaction: either every draft becomes
// a row or none do.
func InsertProducts(database *sql.DB, drafts []catalog.ProductDraft) ([]catalog.Product, error) {
	tx, err := database.Begin()
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer tx.Rollback()

	now := time.Now().Unix()
	query := `
		INSERT INTO products (
			name, description, price, original_price, image_url,
			product_url, store, category, rating, review_count,
			ai_match_score, is_available, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	products := make([]catalog.Product, 0, len(drafts))
	for _, d := range drafts {
		result, err := tx.Exec(query,
			d.Name, d.Description, d.Price, toNullString(d.OriginalPrice),
			d.ImageURL, d.ProductURL, d.Store, d.Category,
			toNullString(d.Rating), toNullInt(d.ReviewCount), toNullInt(d.MatchScore),
			boolToInt(d.IsAvailable), now,
		)
		if err != nil {
			return nil, errors.NewInternal(err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return nil, errors.NewInternal(err)
		}
		products = append(products, catalog.Product{
			ID:            id,
			Name:          d.Name,
			Description:   d.Description,
			Price:         d.Price,
			OriginalPrice: d.OriginalPrice,
			ImageURL:      d.ImageURL,
			ProductURL:    d.ProductURL,
			Store:         d.Store,
			Category:      d.Category,
			Rating:        d.Rating,
			ReviewCount:   d.ReviewCount,
			MatchScore:    d.MatchScore,
			IsAvailable:   d.IsAvailable,
			CreatedAt:     time.Unix(now, 0),
		})
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.NewInternal(err)
	}

	return products, nil
}

// ListProducts returns products matching the filter, ordered by its sort key.
// A zero filter returns the whole catalog in id order.
func ListProducts(database *sql.DB, f catalog.Filter) ([]catalog.Product, error) {
	var (
		conds []string
		args  []any
	)

	if len(f.Stores) > 0 {
		conds = append(conds, "store IN ("+placeholders(len(f.Stores))+")")
		for _, s := range f.Stores {
			args = append(args, s)
		}
	}
	if len(f.Categories) > 0 {
		conds = append(conds, "category IN ("+placeholders(len(f.Categories))+")")
		for _, c := range f.Categories {
			args = append(args, c)
		}
	}
	if f.MinPrice != nil {
		conds = append(conds, "CAST(price AS REAL) >= ?")
		args = append(args, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		conds = append(conds, "CAST(price AS REAL) <= ?")
		args = append(args, *f.MaxPrice)
	}
	if f.MinRating != nil {
		// Listings without a rating are excluded only when a minimum is given.
		conds = append(conds, "rating IS NOT NULL AND CAST(rating AS REAL) >= ?")
		args = append(args, *f.MinRating)
	}

	query := "SELECT " + productColumns + " FROM products"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " " + orderClause(f.SortBy)

	rows, err := database.Query(query, args...)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	products := make([]catalog.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, errors.NewInternal(err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}

	return products, nil
}

// orderClause maps a sort key to its ORDER BY clause.
// Prices and ratings are stored as decimal strings, so sorts cast to REAL.
func orderClause(key catalog.SortKey) string {
	switch key {
	case catalog.SortPriceLow:
		return "ORDER BY CAST(price AS REAL) ASC"
	case catalog.SortPriceHigh:
		return "ORDER BY CAST(price AS REAL) DESC"
	case catalog.SortRating:
		return "ORDER BY CAST(COALESCE(rating, '0') AS REAL) DESC"
	case catalog.SortNewest:
		return "ORDER BY created_at DESC, id DESC"
	case catalog.SortRelevance:
		return "ORDER BY COALESCE(ai_match_score, 0) DESC"
	default:
		return "ORDER BY id ASC"
	}
}

// GetProduct retrieves a product by ID.
func GetProduct(database *sql.DB, id int64) (*catalog.Product, error) {
	row := database.QueryRow("SELECT "+productColumns+" FROM products WHERE id = ?", id)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound("product", id)
	}
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	return p, nil
}

// ClearProducts deletes every product. Cart rows referencing them are
// left in place and become orphans; cart listing filters them out.
func ClearProducts(database *sql.DB) error {
	if _, err := database.Exec("DELETE FROM products"); err != nil {
		return errors.NewInternal(err)
	}
	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanProduct.
type scanner interface {
	Scan(dest ...any) error
}

// scanProduct scans a single row into a Product struct.
func scanProduct(row scanner) (*catalog.Product, error) {
	var (
		p             catalog.Product
		originalPrice sql.NullString
		rating        sql.NullString
		reviewCount   sql.NullInt64
		matchScore    sql.NullInt64
		isAvailable   int
		createdAt     int64
	)

	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &originalPrice,
		&p.ImageURL, &p.ProductURL, &p.Store, &p.Category,
		&rating, &reviewCount, &matchScore, &isAvailable, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	p.OriginalPrice = fromNullString(originalPrice)
	p.Rating = fromNullString(rating)
	p.ReviewCount = fromNullInt(reviewCount)
	p.MatchScore = fromNullInt(matchScore)
	p.IsAvailable = isAvailable != 0
	p.CreatedAt = time.Unix(createdAt, 0)

	return &p, nil
}

// placeholders returns n comma-separated "?" markers.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// toNullString converts a *string to sql.NullString.
func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// fromNullString converts a sql.NullString to *string.
func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

// toNullInt converts a *int to sql.NullInt64.
func toNullInt(n *int) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*n), Valid: true}
}

// fromNullInt converts a sql.NullInt64 to *int.
func fromNullInt(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	n := int(ni.Int64)
	return &n
}

// boolToInt converts a bool to the 0/1 form SQLite stores.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
