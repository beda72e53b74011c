package catalog

import "time"

// Product is a single listing shown to the user, either curated,
// synthesized from a checklist item, or part of a seed set.
type Product struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         string    `json:"price"`
	OriginalPrice *string   `json:"originalPrice"`
	ImageURL      string    `json:"imageUrl"`
	ProductURL    string    `json:"productUrl"`
	Store         string    `json:"store"`
	Category      string    `json:"category"`
	Rating        *string   `json:"rating"`
	ReviewCount   *int      `json:"reviewCount"`
	MatchScore    *int      `json:"aiMatchScore"`
	IsAvailable   bool      `json:"isAvailable"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ProductDraft is a product before it has been assigned an ID and timestamp.
// Prices and ratings are carried as fixed-point strings ("1999.00", "4.5"),
// matching the decimal columns they map to.
type ProductDraft struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         string  `json:"price"`
	OriginalPrice *string `json:"originalPrice,omitempty"`
	ImageURL      string  `json:"imageUrl"`
	ProductURL    string  `json:"productUrl"`
	Store         string  `json:"store"`
	Category      string  `json:"category"`
	Rating        *string `json:"rating,omitempty"`
	ReviewCount   *int    `json:"reviewCount,omitempty"`
	MatchScore    *int    `json:"aiMatchScore,omitempty"`
	IsAvailable   bool    `json:"isAvailable"`
}

// CartItem is one row of a session's cart. It references a product by ID;
// the reference is best-effort and may dangle after a catalog clear.
type CartItem struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"sessionId"`
	ProductID int64     `json:"productId"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}

// CartLine is a cart item joined with its product for display.
type CartLine struct {
	CartItem
	Product Product `json:"product"`
}

// ChecklistItem is one submitted checklist, kept as an append-only log.
type ChecklistItem struct {
	ID            int64     `json:"id"`
	SessionID     string    `json:"sessionId"`
	OriginalText  string    `json:"originalText"`
	ProcessedText string    `json:"processedText"`
	IsProcessed   bool      `json:"isProcessed"`
	CreatedAt     time.Time `json:"createdAt"`
}
