package mcp

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"shopmate/internal/catalog"
	"shopmate/internal/errors"
	"shopmate/internal/ops"
	"shopmate/internal/recommend"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	db     *sql.DB
	engine *recommend.Engine
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(db *sql.DB, engine *recommend.Engine) *Handlers {
	return &Handlers{db: db, engine: engine}
}

// Request types for each tool

// ChecklistProcessRequest represents the arguments for checklist_process.
type ChecklistProcessRequest struct {
	Text      string `json:"text"`
	SessionID string `json:"session_id"`
}

// ChecklistListRequest represents the arguments for checklist_list.
type ChecklistListRequest struct {
	SessionID string `json:"session_id"`
}

// ProductListRequest represents the arguments for product_list.
type ProductListRequest struct {
	Stores     []string `json:"stores,omitempty"`
	Categories []string `json:"categories,omitempty"`
	MinPrice   *float64 `json:"min_price,omitempty"`
	MaxPrice   *float64 `json:"max_price,omitempty"`
	MinRating  *float64 `json:"min_rating,omitempty"`
	SortBy     string   `json:"sort_by,omitempty"`
}

// ProductGetRequest represents the arguments for product_get.
type ProductGetRequest struct {
	ID int64 `json:"id"`
}

// CartSessionRequest represents the arguments for session-scoped cart tools.
type CartSessionRequest struct {
	SessionID string `json:"session_id"`
}

// CartAddRequest represents the arguments for cart_add.
type CartAddRequest struct {
	SessionID string `json:"session_id"`
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity,omitempty"`
}

// CartUpdateRequest represents the arguments for cart_update.
type CartUpdateRequest struct {
	ID       int64 `json:"id"`
	Quantity int   `json:"quantity"`
}

// CartRemoveRequest represents the arguments for cart_remove.
type CartRemoveRequest struct {
	ID int64 `json:"id"`
}

// HandleChecklistProcess handles the checklist_process tool.
func (h *Handlers) HandleChecklistProcess(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := decode[ChecklistProcessRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.ProcessChecklist(h.db, h.engine, ops.ProcessChecklistInput{
		Text:      args.Text,
		SessionID: args.SessionID,
	})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleChecklistList handles the checklist_list tool.
func (h *Handlers) HandleChecklistList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := decode[ChecklistListRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	items, err := ops.ListChecklist(h.db, args.SessionID)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(map[string]any{"items": items})
}

// HandleProductList handles the product_list tool.
func (h *Handlers) HandleProductList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := decode[ProductListRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	products, err := ops.ListProducts(h.db, ops.ListProductsInput{
		Filter: catalog.Filter{
			Stores:     args.Stores,
			Categories: args.Categories,
			MinPrice:   args.MinPrice,
			MaxPrice:   args.MaxPrice,
			MinRating:  args.MinRating,
			SortBy:     catalog.SortKey(args.SortBy),
		},
	})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(map[string]any{"products": products})
}

// HandleProductGet handles the product_get tool.
func (h *Handlers) HandleProductGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := decode[ProductGetRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	product, err := ops.GetProduct(h.db, args.ID)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(product)
}

// HandleProductReset handles the product_reset tool.
func (h *Handlers) HandleProductReset(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.ResetProducts(h.db)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleCartList handles the cart_list tool.
func (h *Handlers) HandleCartList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := decode[CartSessionRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	lines, err := ops.GetCart(h.db, args.SessionID)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(map[string]any{"items": lines})
}

// HandleCartAdd handles the cart_add tool.
func (h *Handlers) HandleCartAdd(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := decode[CartAddRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	item, err := ops.AddToCart(h.db, ops.AddToCartInput{
		SessionID: args.SessionID,
		ProductID: args.ProductID,
		Quantity:  args.Quantity,
	})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(item)
}

// HandleCartUpdate handles the cart_update tool.
func (h *Handlers) HandleCartUpdate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := decode[CartUpdateRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.UpdateCartItem(h.db, args.ID, args.Quantity)
	if err != nil {
		return errorResult(err), nil
	}
	if result.Removed {
		return successResult(map[string]any{"removed": true, "message": result.Message})
	}
	return successResult(result.Item)
}

// HandleCartRemove handles the cart_remove tool.
func (h *Handlers) HandleCartRemove(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := decode[CartRemoveRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.RemoveFromCart(h.db, args.ID)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleCartClear handles the cart_clear tool.
func (h *Handlers) HandleCartClear(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := decode[CartSessionRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.ClearCart(h.db, args.SessionID)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// errorResult converts an error into an MCP error result payload.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if sErr, ok := err.(*errors.ShopError); ok {
		errorObj := map[string]any{
			"code":    sErr.Code,
			"message": sErr.Message,
			"status":  sErr.Status,
		}
		// Only include details for non-internal errors to avoid leaking
		// sensitive info like file paths or SQL errors
		if sErr.Code != errors.ErrInternal && sErr.Details != nil {
			errorObj["details"] = sErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult wraps data in a JSON tool result.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
