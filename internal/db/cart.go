package db

import (
	"database/sql"
	"time"

	"shopmate/internal/catalog"
	"shopmate/internal/errors"
)

// ListCartBySession returns a session's cart rows joined with their
// products, in insertion order. Rows whose product has been removed by a
// catalog clear are silently dropped; cart references are best-effort,
// not referentially enforced.
func ListCartBySession(database *sql.DB, sessionID string) ([]catalog.CartLine, error) {
	query := `
		SELECT c.id, c.session_id, c.product_id, c.quantity, c.created_at,
			` + prefixedProductColumns("p") + `
		FROM cart_items c
		INNER JOIN products p ON p.id = c.product_id
		WHERE c.session_id = ?
		ORDER BY c.id ASC
	`

	rows, err := database.Query(query, sessionID)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	lines := make([]catalog.CartLine, 0)
	for rows.Next() {
		var (
			line          catalog.CartLine
			itemCreatedAt int64
			originalPrice sql.NullString
			rating        sql.NullString
			reviewCount   sql.NullInt64
			matchScore    sql.NullInt64
			isAvailable   int
			prodCreatedAt int64
		)
		err := rows.Scan(
			&line.ID, &line.SessionID, &line.ProductID, &line.Quantity, &itemCreatedAt,
			&line.Product.ID, &line.Product.Name, &line.Product.Description,
			&line.Product.Price, &originalPrice, &line.Product.ImageURL,
			&line.Product.ProductURL, &line.Product.Store, &line.Product.Category,
			&rating, &reviewCount, &matchScore, &isAvailable, &prodCreatedAt,
		)
		if err != nil {
			return nil, errors.NewInternal(err)
		}
		line.CreatedAt = time.Unix(itemCreatedAt, 0)
		line.Product.OriginalPrice = fromNullString(originalPrice)
		line.Product.Rating = fromNullString(rating)
		line.Product.ReviewCount = fromNullInt(reviewCount)
		line.Product.MatchScore = fromNullInt(matchScore)
		line.Product.IsAvailable = isAvailable != 0
		line.Product.CreatedAt = time.Unix(prodCreatedAt, 0)
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}

	return lines, nil
}

// AddCartItem inserts a cart row, or merges into the existing row for the
// same (session, product) pair by adding the requested quantity to it.
func AddCartItem(database *sql.DB, sessionID string, productID int64, quantity int) (*catalog.CartItem, error) {
	tx, err := database.Begin()
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer tx.Rollback()

	var (
		existingID  int64
		existingQty int
	)
	err = tx.QueryRow(
		"SELECT id, quantity FROM cart_items WHERE session_id = ? AND product_id = ?",
		sessionID, productID,
	).Scan(&existingID, &existingQty)

	switch {
	case err == sql.ErrNoRows:
		now := time.Now().Unix()
		result, err := tx.Exec(
			"INSERT INTO cart_items (session_id, product_id, quantity, created_at) VALUES (?, ?, ?, ?)",
			sessionID, productID, quantity, now,
		)
		if err != nil {
			return nil, errors.NewInternal(err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return nil, errors.NewInternal(err)
		}
		if err := tx.Commit(); err != nil {
			return nil, errors.NewInternal(err)
		}
		return &catalog.CartItem{
			ID:        id,
			SessionID: sessionID,
			ProductID: productID,
			Quantity:  quantity,
			CreatedAt: time.Unix(now, 0),
		}, nil

	case err != nil:
		return nil, errors.NewInternal(err)
	}

	newQty := existingQty + quantity
	if _, err := tx.Exec("UPDATE cart_items SET quantity = ? WHERE id = ?", newQty, existingID); err != nil {
		return nil, errors.NewInternal(err)
	}
	if err := tx.Commit(); err != nil {
		return nil, errors.NewInternal(err)
	}

	return getCartItem(database, existingID)
}

// UpdateCartQuantity sets the quantity of a cart row.
func UpdateCartQuantity(database *sql.DB, id int64, quantity int) (*catalog.CartItem, error) {
	result, err := database.Exec("UPDATE cart_items SET quantity = ? WHERE id = ?", quantity, id)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	if affected == 0 {
		return nil, errors.NewNotFound("cart item", id)
	}
	return getCartItem(database, id)
}

// DeleteCartItem removes a cart row. Removing a row that does not exist
// is not an error.
func DeleteCartItem(database *sql.DB, id int64) error {
	if _, err := database.Exec("DELETE FROM cart_items WHERE id = ?", id); err != nil {
		return errors.NewInternal(err)
	}
	return nil
}

// ClearCartSession removes all cart rows for a session and reports how
// many were deleted.
func ClearCartSession(database *sql.DB, sessionID string) (int, error) {
	result, err := database.Exec("DELETE FROM cart_items WHERE session_id = ?", sessionID)
	if err != nil {
		return 0, errors.NewInternal(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, errors.NewInternal(err)
	}
	return int(affected), nil
}

// getCartItem retrieves a cart row by ID.
func getCartItem(database *sql.DB, id int64) (*catalog.CartItem, error) {
	var (
		item      catalog.CartItem
		createdAt int64
	)
	err := database.QueryRow(
		"SELECT id, session_id, product_id, quantity, created_at FROM cart_items WHERE id = ?",
		id,
	).Scan(&item.ID, &item.SessionID, &item.ProductID, &item.Quantity, &createdAt)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound("cart item", id)
	}
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	item.CreatedAt = time.Unix(createdAt, 0)
	return &item, nil
}

// prefixedProductColumns returns the product column list qualified with a
// table alias, for joins.
func prefixedProductColumns(alias string) string {
	return alias + ".id, " + alias + ".name, " + alias + ".description, " +
		alias + ".price, " + alias + ".original_price, " + alias + ".image_url, " +
		alias + ".product_url, " + alias + ".store, " + alias + ".category, " +
		alias + ".rating, " + alias + ".review_count, " + alias + ".ai_match_score, " +
		alias + ".is_available, " + alias + ".created_at"
}
