package mcp

import (
	"context"
	"encoding/json"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"shopmate/internal/config"
	"shopmate/internal/db"
	"shopmate/internal/recommend"
)

// testSetup creates an in-memory database and handlers for testing.
func testSetup(t *testing.T) *Handlers {
	t.Helper()

	database, err := db.Init("")
	if err != nil {
		t.Fatalf("failed to init db: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	return NewHandlers(database, recommend.NewEngine(rand.NewSource(5)))
}

// makeRequest creates a CallToolRequest with the given arguments.
func makeRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: args,
		},
	}
}

// resultText extracts the text payload from a tool result.
func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("result has no content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want TextContent", result.Content[0])
	}
	return text.Text
}

func TestProductListTool(t *testing.T) {
	h := testSetup(t)

	result, err := h.HandleProductList(context.Background(), makeRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("HandleProductList: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, result))
	}

	var out struct {
		Products []map[string]any `json:"products"`
	}
	if err := json.Unmarshal([]byte(resultText(t, result)), &out); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if len(out.Products) != 6 {
		t.Errorf("got %d products, want 6", len(out.Products))
	}
}

func TestProductListToolFilter(t *testing.T) {
	h := testSetup(t)

	result, err := h.HandleProductList(context.Background(), makeRequest(map[string]any{
		"stores":  []any{"Amazon"},
		"sort_by": "price_low",
	}))
	if err != nil {
		t.Fatalf("HandleProductList: %v", err)
	}

	var out struct {
		Products []struct {
			Store string `json:"store"`
			Price string `json:"price"`
		} `json:"products"`
	}
	if err := json.Unmarshal([]byte(resultText(t, result)), &out); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if len(out.Products) != 2 {
		t.Fatalf("got %d products, want 2", len(out.Products))
	}
	if out.Products[0].Price != "999.00" {
		t.Errorf("first price = %q, want cheapest Amazon listing", out.Products[0].Price)
	}
}

func TestProductListToolBadSort(t *testing.T) {
	h := testSetup(t)

	result, err := h.HandleProductList(context.Background(), makeRequest(map[string]any{
		"sort_by": "cheapest",
	}))
	if err != nil {
		t.Fatalf("HandleProductList: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result")
	}
	if !strings.Contains(resultText(t, result), "INVALID_REQUEST") {
		t.Errorf("error payload = %s", resultText(t, result))
	}
}

func TestProductGetTool(t *testing.T) {
	h := testSetup(t)

	result, err := h.HandleProductGet(context.Background(), makeRequest(map[string]any{"id": 1}))
	if err != nil {
		t.Fatalf("HandleProductGet: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, result))
	}

	result, err = h.HandleProductGet(context.Background(), makeRequest(map[string]any{"id": 9999}))
	if err != nil {
		t.Fatalf("HandleProductGet: %v", err)
	}
	if !result.IsError || !strings.Contains(resultText(t, result), "NOT_FOUND") {
		t.Errorf("missing product payload = %s", resultText(t, result))
	}
}

func TestChecklistProcessTool(t *testing.T) {
	h := testSetup(t)

	result, err := h.HandleChecklistProcess(context.Background(), makeRequest(map[string]any{
		"text":       "laptop, coffee maker",
		"session_id": "s1",
	}))
	if err != nil {
		t.Fatalf("HandleChecklistProcess: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, result))
	}

	var out struct {
		ProcessedItems []map[string]any `json:"processedItems"`
		Products       []map[string]any `json:"products"`
		Message        string           `json:"message"`
	}
	if err := json.Unmarshal([]byte(resultText(t, result)), &out); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if len(out.ProcessedItems) != 2 {
		t.Errorf("got %d processed items, want 2", len(out.ProcessedItems))
	}
	if !strings.Contains(out.Message, "product recommendations with working links") {
		t.Errorf("message = %q", out.Message)
	}

	// The recorded checklist is visible through checklist_list.
	result, err = h.HandleChecklistList(context.Background(), makeRequest(map[string]any{
		"session_id": "s1",
	}))
	if err != nil {
		t.Fatalf("HandleChecklistList: %v", err)
	}
	if !strings.Contains(resultText(t, result), "laptop, coffee maker") {
		t.Errorf("checklist payload = %s", resultText(t, result))
	}
}

func TestChecklistProcessToolValidation(t *testing.T) {
	h := testSetup(t)

	result, err := h.HandleChecklistProcess(context.Background(), makeRequest(map[string]any{
		"text": "laptop",
	}))
	if err != nil {
		t.Fatalf("HandleChecklistProcess: %v", err)
	}
	if !result.IsError || !strings.Contains(resultText(t, result), "INVALID_REQUEST") {
		t.Errorf("payload = %s", resultText(t, result))
	}
}

func TestCartTools(t *testing.T) {
	h := testSetup(t)
	ctx := context.Background()

	// Add
	result, err := h.HandleCartAdd(ctx, makeRequest(map[string]any{
		"session_id": "s1",
		"product_id": 1,
		"quantity":   2,
	}))
	if err != nil {
		t.Fatalf("HandleCartAdd: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, result))
	}

	var item struct {
		ID       int64 `json:"id"`
		Quantity int   `json:"quantity"`
	}
	if err := json.Unmarshal([]byte(resultText(t, result)), &item); err != nil {
		t.Fatalf("decode item: %v", err)
	}
	if item.Quantity != 2 {
		t.Errorf("quantity = %d", item.Quantity)
	}

	// List
	result, err = h.HandleCartList(ctx, makeRequest(map[string]any{"session_id": "s1"}))
	if err != nil {
		t.Fatalf("HandleCartList: %v", err)
	}
	if !strings.Contains(resultText(t, result), `"quantity":2`) {
		t.Errorf("cart payload = %s", resultText(t, result))
	}

	// Update to zero removes
	result, err = h.HandleCartUpdate(ctx, makeRequest(map[string]any{
		"id":       item.ID,
		"quantity": 0,
	}))
	if err != nil {
		t.Fatalf("HandleCartUpdate: %v", err)
	}
	if !strings.Contains(resultText(t, result), "Item removed from cart") {
		t.Errorf("update payload = %s", resultText(t, result))
	}

	// Update on missing line reports not found
	result, err = h.HandleCartUpdate(ctx, makeRequest(map[string]any{
		"id":       item.ID,
		"quantity": 3,
	}))
	if err != nil {
		t.Fatalf("HandleCartUpdate: %v", err)
	}
	if !result.IsError || !strings.Contains(resultText(t, result), "NOT_FOUND") {
		t.Errorf("payload = %s", resultText(t, result))
	}

	// Clear
	result, err = h.HandleCartClear(ctx, makeRequest(map[string]any{"session_id": "s1"}))
	if err != nil {
		t.Fatalf("HandleCartClear: %v", err)
	}
	if !strings.Contains(resultText(t, result), "Cart cleared") {
		t.Errorf("clear payload = %s", resultText(t, result))
	}
}

func TestProductResetTool(t *testing.T) {
	h := testSetup(t)

	result, err := h.HandleProductReset(context.Background(), makeRequest(nil))
	if err != nil {
		t.Fatalf("HandleProductReset: %v", err)
	}
	if !strings.Contains(resultText(t, result), "Products reset successfully") {
		t.Errorf("payload = %s", resultText(t, result))
	}
}

func TestToolRegistry(t *testing.T) {
	names := AllToolNames()
	for _, want := range []string{
		"checklist_process", "checklist_list",
		"product_list", "product_get", "product_reset",
		"cart_list", "cart_add", "cart_update", "cart_remove", "cart_clear",
	} {
		if !slices.Contains(names, want) {
			t.Errorf("registry missing tool %q", want)
		}
	}

	if unknown := ValidateDisabledTools([]string{"cart_add", "nope"}); len(unknown) != 1 || unknown[0] != "nope" {
		t.Errorf("unknown tools = %v", unknown)
	}
	if unknown := ValidateDisabledTypes([]string{"cart", "widget"}); len(unknown) != 1 || unknown[0] != "widget" {
		t.Errorf("unknown types = %v", unknown)
	}

	tools := ExpandTypesToTools([]string{"cart"})
	if len(tools) != 5 {
		t.Errorf("cart expands to %d tools, want 5", len(tools))
	}
	for _, tool := range tools {
		if GetTypeForTool(tool) != "cart" {
			t.Errorf("tool %q has type %q", tool, GetTypeForTool(tool))
		}
	}
}

func TestNewServerRespectsDisabledTools(t *testing.T) {
	database, err := db.Init("")
	if err != nil {
		t.Fatalf("init db: %v", err)
	}
	defer database.Close()

	cfg := config.DefaultConfig()
	cfg.DisabledTypes = []string{"cart"}
	cfg.DisabledTools = []string{"product_reset"}

	s := NewServer(database, recommend.NewEngine(rand.NewSource(1)), cfg, "test")
	if s == nil {
		t.Fatal("NewServer returned nil")
	}
}
