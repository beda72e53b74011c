package ops

import (
	"database/sql"

	"shopmate/internal/catalog"
	"shopmate/internal/db"
	"shopmate/internal/errors"
)

// GetCart returns the cart lines for a session, each joined with its
// product. Lines whose product no longer exists are omitted.
func GetCart(database *sql.DB, sessionID string) ([]catalog.CartLine, error) {
	if blank(sessionID) {
		return nil, errors.NewInvalidRequest("sessionId is required")
	}

	lines, err := db.ListCartBySession(database, sessionID)
	if err != nil {
		return nil, err
	}
	if lines == nil {
		lines = []catalog.CartLine{}
	}
	return lines, nil
}

// AddToCartInput contains parameters for the AddToCart operation.
type AddToCartInput struct {
	SessionID string `json:"sessionId"`
	ProductID int64  `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// AddToCart adds a product to a session's cart. Adding a product that
// is already in the cart increments its quantity instead of creating a
// second line. Quantity defaults to 1.
func AddToCart(database *sql.DB, input AddToCartInput) (*catalog.CartItem, error) {
	if blank(input.SessionID) {
		return nil, errors.NewInvalidRequest("sessionId is required")
	}
	if input.ProductID <= 0 {
		return nil, errors.NewInvalidRequest("productId is required")
	}
	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	return db.AddCartItem(database, input.SessionID, input.ProductID, quantity)
}

// UpdateCartOutput contains the result of the UpdateCartItem operation.
// Either Item is set (quantity changed) or Removed is true (quantity
// dropped to zero or below).
type UpdateCartOutput struct {
	Item    *catalog.CartItem
	Removed bool
	Message string
}

// UpdateCartItem sets a cart line's quantity. A quantity of zero or
// less removes the line instead.
func UpdateCartItem(database *sql.DB, id int64, quantity int) (*UpdateCartOutput, error) {
	if quantity <= 0 {
		if err := db.DeleteCartItem(database, id); err != nil {
			return nil, err
		}
		return &UpdateCartOutput{Removed: true, Message: "Item removed from cart"}, nil
	}

	item, err := db.UpdateCartQuantity(database, id, quantity)
	if err != nil {
		return nil, err
	}
	return &UpdateCartOutput{Item: item}, nil
}

// RemoveOutput contains the result of cart removal operations.
type RemoveOutput struct {
	Message string `json:"message"`
}

// RemoveFromCart deletes a cart line. Removing an id that does not
// exist is not an error.
func RemoveFromCart(database *sql.DB, id int64) (*RemoveOutput, error) {
	if err := db.DeleteCartItem(database, id); err != nil {
		return nil, err
	}
	return &RemoveOutput{Message: "Item removed from cart"}, nil
}

// ClearCart removes every line in a session's cart.
func ClearCart(database *sql.DB, sessionID string) (*RemoveOutput, error) {
	if blank(sessionID) {
		return nil, errors.NewInvalidRequest("sessionId is required")
	}
	if _, err := db.ClearCartSession(database, sessionID); err != nil {
		return nil, err
	}
	return &RemoveOutput{Message: "Cart cleared"}, nil
}
