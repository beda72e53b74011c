package web

import (
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"strconv"

	"shopmate/internal/catalog"
	"shopmate/internal/errors"
	"shopmate/internal/ops"
	"shopmate/internal/recommend"
)

// maxUploadBytes caps document uploads at 10 MiB.
const maxUploadBytes = 10 << 20

// Handlers holds dependencies for HTTP handlers.
type Handlers struct {
	db     *sql.DB
	engine *recommend.Engine
}

// HandleListProducts handles GET /api/products.
func (h *Handlers) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		renderError(w, err)
		return
	}

	products, err := ops.ListProducts(h.db, ops.ListProductsInput{Filter: *filter})
	if err != nil {
		renderError(w, err)
		return
	}
	renderJSON(w, http.StatusOK, products)
}

// HandleGetProduct handles GET /api/products/{id}.
func (h *Handlers) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		renderError(w, err)
		return
	}

	product, err := ops.GetProduct(h.db, id)
	if err != nil {
		renderError(w, err)
		return
	}
	renderJSON(w, http.StatusOK, product)
}

// HandleResetProducts handles POST /api/products/reset.
func (h *Handlers) HandleResetProducts(w http.ResponseWriter, r *http.Request) {
	out, err := ops.ResetProducts(h.db)
	if err != nil {
		renderError(w, err)
		return
	}
	renderJSON(w, http.StatusOK, out)
}

// HandleProcessChecklist handles POST /api/ai/process-checklist.
func (h *Handlers) HandleProcessChecklist(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text      string `json:"text"`
		SessionID string `json:"sessionId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, errors.NewInvalidRequest("invalid JSON body"))
		return
	}

	out, err := ops.ProcessChecklist(h.db, h.engine, ops.ProcessChecklistInput{
		Text:      req.Text,
		SessionID: req.SessionID,
	})
	if err != nil {
		renderError(w, err)
		return
	}
	renderJSON(w, http.StatusOK, out)
}

// HandleProcessDocument handles POST /api/ai/process-document.
// Expects a multipart form with a "document" file and a "sessionId"
// field. Uploads are capped at 10 MiB.
func (h *Handlers) HandleProcessDocument(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("document")
	if err != nil {
		var maxErr *http.MaxBytesError
		if stderrors.As(err, &maxErr) {
			renderError(w, errors.NewPayloadTooLarge(maxUploadBytes))
			return
		}
		renderError(w, errors.NewInvalidRequest("no file uploaded"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		var maxErr *http.MaxBytesError
		if stderrors.As(err, &maxErr) {
			renderError(w, errors.NewPayloadTooLarge(maxUploadBytes))
			return
		}
		renderError(w, errors.NewInternal(err))
		return
	}

	out, err := ops.ProcessDocument(h.db, h.engine, ops.ProcessDocumentInput{
		Data:        data,
		ContentType: header.Header.Get("Content-Type"),
		Filename:    header.Filename,
		SessionID:   r.FormValue("sessionId"),
	})
	if err != nil {
		renderError(w, err)
		return
	}
	renderJSON(w, http.StatusOK, out)
}

// HandleGetCart handles GET /api/cart/{sessionId}.
func (h *Handlers) HandleGetCart(w http.ResponseWriter, r *http.Request) {
	lines, err := ops.GetCart(h.db, r.PathValue("sessionId"))
	if err != nil {
		renderError(w, err)
		return
	}
	renderJSON(w, http.StatusOK, lines)
}

// HandleAddToCart handles POST /api/cart.
func (h *Handlers) HandleAddToCart(w http.ResponseWriter, r *http.Request) {
	var req ops.AddToCartInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, errors.NewInvalidRequest("invalid JSON body"))
		return
	}

	item, err := ops.AddToCart(h.db, req)
	if err != nil {
		renderError(w, err)
		return
	}
	renderJSON(w, http.StatusOK, item)
}

// HandleUpdateCartItem handles PATCH /api/cart/{id}.
func (h *Handlers) HandleUpdateCartItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		renderError(w, err)
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, errors.NewInvalidRequest("invalid JSON body"))
		return
	}

	out, err := ops.UpdateCartItem(h.db, id, req.Quantity)
	if err != nil {
		renderError(w, err)
		return
	}
	if out.Removed {
		renderJSON(w, http.StatusOK, map[string]string{"message": out.Message})
		return
	}
	renderJSON(w, http.StatusOK, out.Item)
}

// HandleRemoveFromCart handles DELETE /api/cart/{id}.
func (h *Handlers) HandleRemoveFromCart(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		renderError(w, err)
		return
	}

	out, err := ops.RemoveFromCart(h.db, id)
	if err != nil {
		renderError(w, err)
		return
	}
	renderJSON(w, http.StatusOK, out)
}

// HandleClearCart handles DELETE /api/cart/session/{sessionId}.
func (h *Handlers) HandleClearCart(w http.ResponseWriter, r *http.Request) {
	out, err := ops.ClearCart(h.db, r.PathValue("sessionId"))
	if err != nil {
		renderError(w, err)
		return
	}
	renderJSON(w, http.StatusOK, out)
}

// parseFilter builds a product filter from query parameters. Repeated
// stores/categories keys accumulate; numeric parameters must parse.
func parseFilter(r *http.Request) (*catalog.Filter, error) {
	q := r.URL.Query()
	filter := &catalog.Filter{
		Stores:     q["stores"],
		Categories: q["categories"],
		SortBy:     catalog.SortKey(q.Get("sortBy")),
	}

	for _, param := range []struct {
		name string
		dst  **float64
	}{
		{"minPrice", &filter.MinPrice},
		{"maxPrice", &filter.MaxPrice},
		{"minRating", &filter.MinRating},
	} {
		raw := q.Get(param.name)
		if raw == "" {
			continue
		}
		val, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.NewInvalidRequest("invalid " + param.name + " value")
		}
		*param.dst = &val
	}

	return filter, nil
}

// pathID parses a numeric path segment.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewInvalidRequest("invalid " + name)
	}
	return id, nil
}
