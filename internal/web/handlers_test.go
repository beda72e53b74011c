package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"shopmate/internal/catalog"
	"shopmate/internal/db"
	"shopmate/internal/recommend"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	database, err := db.Init("")
	if err != nil {
		t.Fatalf("init db: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	engine := recommend.NewEngine(rand.NewSource(11))
	return NewServer(database, engine, "127.0.0.1", 0).Handler
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestListProductsEndpoint(t *testing.T) {
	handler := newTestHandler(t)

	rec := doJSON(t, handler, "GET", "/api/products", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	products := decodeBody[[]catalog.Product](t, rec)
	if len(products) != 6 {
		t.Errorf("got %d products, want 6", len(products))
	}

	// Wire format uses camelCase keys.
	body := rec.Body.String()
	for _, key := range []string{`"imageUrl"`, `"productUrl"`, `"aiMatchScore"`, `"isAvailable"`, `"reviewCount"`} {
		if !strings.Contains(body, key) {
			t.Errorf("response missing %s key", key)
		}
	}
}

func TestListProductsEndpointFilters(t *testing.T) {
	handler := newTestHandler(t)

	rec := doJSON(t, handler, "GET", "/api/products?stores=Amazon&stores=Best+Buy", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	products := decodeBody[[]catalog.Product](t, rec)
	if len(products) != 4 {
		t.Errorf("got %d products, want 4 from two stores", len(products))
	}

	rec = doJSON(t, handler, "GET", "/api/products?maxPrice=200&sortBy=price_low", nil)
	products = decodeBody[[]catalog.Product](t, rec)
	if len(products) != 2 {
		t.Fatalf("got %d products, want 2 under 200", len(products))
	}
	if products[0].Price != "89.00" {
		t.Errorf("first price = %q, want cheapest", products[0].Price)
	}
}

func TestListProductsEndpointBadFilter(t *testing.T) {
	handler := newTestHandler(t)

	for _, path := range []string{
		"/api/products?minPrice=abc",
		"/api/products?minRating=high",
		"/api/products?sortBy=cheapest",
		"/api/products?minPrice=-5",
	} {
		rec := doJSON(t, handler, "GET", path, nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("GET %s status = %d, want 400", path, rec.Code)
		}
	}
}

func TestGetProductEndpoint(t *testing.T) {
	handler := newTestHandler(t)

	rec := doJSON(t, handler, "GET", "/api/products/1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	product := decodeBody[catalog.Product](t, rec)
	if product.ID != 1 {
		t.Errorf("id = %d", product.ID)
	}

	rec = doJSON(t, handler, "GET", "/api/products/9999", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing product status = %d, want 404", rec.Code)
	}

	rec = doJSON(t, handler, "GET", "/api/products/abc", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad id status = %d, want 400", rec.Code)
	}
}

func TestProcessChecklistEndpoint(t *testing.T) {
	handler := newTestHandler(t)

	rec := doJSON(t, handler, "POST", "/api/ai/process-checklist", map[string]string{
		"text":      "laptop, coffee maker",
		"sessionId": "s1",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	out := decodeBody[struct {
		ProcessedItems []recommend.ProcessedItem `json:"processedItems"`
		Products       []catalog.Product         `json:"products"`
		Message        string                    `json:"message"`
	}](t, rec)

	if len(out.ProcessedItems) != 2 {
		t.Errorf("got %d processed items, want 2", len(out.ProcessedItems))
	}
	wantMsg := fmt.Sprintf("Found %d product recommendations with working links", len(out.Products))
	if out.Message != wantMsg {
		t.Errorf("message = %q, want %q", out.Message, wantMsg)
	}
}

func TestProcessChecklistEndpointValidation(t *testing.T) {
	handler := newTestHandler(t)

	rec := doJSON(t, handler, "POST", "/api/ai/process-checklist", map[string]string{
		"text": "laptop",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing session status = %d, want 400", rec.Code)
	}

	req := httptest.NewRequest("POST", "/api/ai/process-checklist", strings.NewReader("{not json"))
	rec2 := httptest.NewRecorder()
	handler.ServeHTTP(rec2, req)
	if rec2.Code != http.StatusBadRequest {
		t.Errorf("malformed body status = %d, want 400", rec2.Code)
	}
}

func uploadRequest(t *testing.T, filename, contentType, content, sessionID string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="document"; filename="%s"`, filename))
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if sessionID != "" {
		if err := mw.WriteField("sessionId", sessionID); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	mw.Close()

	req := httptest.NewRequest("POST", "/api/ai/process-document", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestProcessDocumentEndpoint(t *testing.T) {
	handler := newTestHandler(t)

	req := uploadRequest(t, "list.txt", "text/plain", "laptop\nrunning shoes", "s1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	out := decodeBody[map[string]any](t, rec)
	if out["extractedText"] != "laptop\nrunning shoes" {
		t.Errorf("extractedText = %v", out["extractedText"])
	}
	msg, _ := out["message"].(string)
	if !strings.HasPrefix(msg, "Extracted text from list.txt and found ") {
		t.Errorf("message = %q", msg)
	}
}

func TestProcessDocumentEndpointErrors(t *testing.T) {
	handler := newTestHandler(t)

	// Unsupported content type
	req := uploadRequest(t, "list.doc", "application/msword", "content", "s1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("doc upload status = %d, want 400", rec.Code)
	}

	// Missing session id
	req = uploadRequest(t, "list.txt", "text/plain", "laptop", "")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing session status = %d, want 400", rec.Code)
	}

	// No file at all
	req = httptest.NewRequest("POST", "/api/ai/process-document", strings.NewReader("sessionId=s1"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("no file status = %d, want 400", rec.Code)
	}
}

func TestResetProductsEndpoint(t *testing.T) {
	handler := newTestHandler(t)

	rec := doJSON(t, handler, "POST", "/api/products/reset", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	out := decodeBody[map[string]string](t, rec)
	if out["message"] != "Products reset successfully" {
		t.Errorf("message = %q", out["message"])
	}

	rec = doJSON(t, handler, "GET", "/api/products", nil)
	products := decodeBody[[]catalog.Product](t, rec)
	if len(products) != 2 {
		t.Errorf("got %d products after reset, want 2", len(products))
	}
}

func TestCartEndpoints(t *testing.T) {
	handler := newTestHandler(t)

	// Add
	rec := doJSON(t, handler, "POST", "/api/cart", map[string]any{
		"sessionId": "s1",
		"productId": 1,
		"quantity":  2,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("add status = %d, body %s", rec.Code, rec.Body.String())
	}
	item := decodeBody[catalog.CartItem](t, rec)
	if item.Quantity != 2 {
		t.Errorf("quantity = %d", item.Quantity)
	}

	// Get
	rec = doJSON(t, handler, "GET", "/api/cart/s1", nil)
	lines := decodeBody[[]catalog.CartLine](t, rec)
	if len(lines) != 1 || lines[0].Product.ID != 1 {
		t.Errorf("lines = %+v", lines)
	}

	// Update
	rec = doJSON(t, handler, "PATCH", fmt.Sprintf("/api/cart/%d", item.ID), map[string]int{"quantity": 5})
	if rec.Code != http.StatusOK {
		t.Fatalf("patch status = %d", rec.Code)
	}
	updated := decodeBody[catalog.CartItem](t, rec)
	if updated.Quantity != 5 {
		t.Errorf("updated quantity = %d", updated.Quantity)
	}

	// Update to zero removes
	rec = doJSON(t, handler, "PATCH", fmt.Sprintf("/api/cart/%d", item.ID), map[string]int{"quantity": 0})
	msg := decodeBody[map[string]string](t, rec)
	if msg["message"] != "Item removed from cart" {
		t.Errorf("message = %q", msg["message"])
	}

	// Patch on a missing item is a 404
	rec = doJSON(t, handler, "PATCH", fmt.Sprintf("/api/cart/%d", item.ID), map[string]int{"quantity": 3})
	if rec.Code != http.StatusNotFound {
		t.Errorf("patch missing status = %d, want 404", rec.Code)
	}
}

func TestCartClearEndpoints(t *testing.T) {
	handler := newTestHandler(t)

	rec := doJSON(t, handler, "POST", "/api/cart", map[string]any{"sessionId": "s1", "productId": 1})
	item := decodeBody[catalog.CartItem](t, rec)

	// Delete single line
	rec = doJSON(t, handler, "DELETE", fmt.Sprintf("/api/cart/%d", item.ID), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rec.Code)
	}
	out := decodeBody[map[string]string](t, rec)
	if out["message"] != "Item removed from cart" {
		t.Errorf("message = %q", out["message"])
	}

	// Clear whole session
	doJSON(t, handler, "POST", "/api/cart", map[string]any{"sessionId": "s2", "productId": 2})
	rec = doJSON(t, handler, "DELETE", "/api/cart/session/s2", nil)
	out = decodeBody[map[string]string](t, rec)
	if out["message"] != "Cart cleared" {
		t.Errorf("message = %q", out["message"])
	}

	rec = doJSON(t, handler, "GET", "/api/cart/s2", nil)
	lines := decodeBody[[]catalog.CartLine](t, rec)
	if len(lines) != 0 {
		t.Errorf("got %d lines after clear", len(lines))
	}
}

func TestCORSPreflight(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("OPTIONS", "/api/products", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want 204", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("missing CORS header")
	}
}

func TestRequestIDHeader(t *testing.T) {
	handler := newTestHandler(t)

	rec := doJSON(t, handler, "GET", "/api/products", nil)
	if rec.Header().Get("X-Request-Id") == "" {
		t.Errorf("missing X-Request-Id header")
	}
}
