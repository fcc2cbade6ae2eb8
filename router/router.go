// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/food-del/cliparse"
	"github.com/danielhkuo/food-del/handlers"
	"github.com/danielhkuo/food-del/middleware"
	"github.com/danielhkuo/food-del/models"
	"github.com/danielhkuo/food-del/uploads"
)

// RootMessage is the plain-text body of GET /
const RootMessage = "API Working"

// NewMountTable returns the fixed prefix table of the API
func NewMountTable(db *sql.DB, cfg cliparse.Config, store *uploads.Store) []Mount {
	foodHandler := handlers.NewFoodHandler(db, store)

	return []Mount{
		{Prefix: "/api/food", Handler: foodHandler.Routes()},
		{Prefix: "/images", Handler: StaticFiles(cfg.UploadDir)},
		{Prefix: "/api/user", Handler: handlers.Unavailable("user")},
		{Prefix: "/api/cart", Handler: handlers.Unavailable("cart")},
		{Prefix: "/api/order", Handler: handlers.Unavailable("order")},
	}
}

// NewRouter validates the mount table and registers it together with
// the inline endpoints. Paths matching nothing get the ServeMux 404.
func NewRouter(mounts []Mount) (*http.ServeMux, error) {
	if err := Validate(mounts); err != nil {
		return nil, err
	}

	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{Status: models.StatusOK})
	})

	for _, m := range mounts {
		mux.Handle(m.Prefix+"/", http.StripPrefix(m.Prefix, m.Handler))
	}

	// Root endpoint, exact match only
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(RootMessage))
	})

	return mux, nil
}

// NewHandler builds the router and wraps it in the global middleware stack
func NewHandler(cfg cliparse.Config, mounts []Mount) (http.Handler, error) {
	mux, err := NewRouter(mounts)
	if err != nil {
		return nil, err
	}

	// Logging sits outside recovery so a recovered panic is still logged with its 500
	return middleware.Chain(mux,
		middleware.WithLogging,
		middleware.Recoverer(slog.Default()),
		middleware.CORS,
		middleware.JSONBody(cfg.MaxBodyBytes),
	), nil
}
