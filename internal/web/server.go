// Package web exposes the shopping API over HTTP.
package web

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"shopmate/internal/recommend"
)

// NewServer creates and configures the HTTP JSON API server.
func NewServer(db *sql.DB, engine *recommend.Engine, bind string, port int) *http.Server {
	h := &Handlers{
		db:     db,
		engine: engine,
	}

	mux := http.NewServeMux()

	// Routes using Go 1.22+ pattern syntax
	mux.HandleFunc("GET /api/products", h.HandleListProducts)
	mux.HandleFunc("GET /api/products/{id}", h.HandleGetProduct)
	mux.HandleFunc("POST /api/products/reset", h.HandleResetProducts)
	mux.HandleFunc("POST /api/ai/process-checklist", h.HandleProcessChecklist)
	mux.HandleFunc("POST /api/ai/process-document", h.HandleProcessDocument)
	mux.HandleFunc("GET /api/cart/{sessionId}", h.HandleGetCart)
	mux.HandleFunc("POST /api/cart", h.HandleAddToCart)
	mux.HandleFunc("PATCH /api/cart/{id}", h.HandleUpdateCartItem)
	mux.HandleFunc("DELETE /api/cart/{id}", h.HandleRemoveFromCart)
	mux.HandleFunc("DELETE /api/cart/session/{sessionId}", h.HandleClearCart)

	handler := securityHeaders(withCORS(withRequestLog(mux)))

	return &http.Server{
		Addr:    fmt.Sprintf("%s:%d", bind, port),
		Handler: handler,
	}
}

// securityHeaders adds security-related HTTP headers to all responses.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		next.ServeHTTP(w, r)
	})
}

// Run starts the HTTP server and handles graceful shutdown on SIGINT/SIGTERM.
func Run(srv *http.Server) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	log.Printf("Shopmate API running at http://%s", srv.Addr)

	if strings.Contains(srv.Addr, "0.0.0.0") || strings.Contains(srv.Addr, "::") {
		log.Printf("WARNING: Server is binding to all interfaces and may be accessible from the network")
	}

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
