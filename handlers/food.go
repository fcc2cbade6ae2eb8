// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/food-del/middleware"
	"github.com/danielhkuo/food-del/models"
	"github.com/danielhkuo/food-del/uploads"
)

// Multipart bodies for /add; images are shrunk after upload
const (
	maxUploadBytes = 10 << 20
	maxFormMemory  = 4 << 20
)

type FoodHandler struct {
	db    *sql.DB
	store *uploads.Store
}

func NewFoodHandler(db *sql.DB, store *uploads.Store) *FoodHandler {
	return &FoodHandler{db: db, store: store}
}

// Routes returns the food router, to be mounted with its prefix stripped
func (h *FoodHandler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /list", h.ListFood)
	mux.HandleFunc("POST /add", h.AddFood)
	mux.HandleFunc("POST /remove", h.RemoveFood)
	return mux
}

// ListFood handles GET /api/food/list
// Returns the whole catalog, newest first
func (h *FoodHandler) ListFood(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.QueryContext(r.Context(), `
		SELECT id, name, description, price, category, image, created_at
		FROM food
		ORDER BY created_at DESC, id
	`)
	if err != nil {
		slog.Error("failed to query food", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	foods := []models.Food{}
	for rows.Next() {
		var f models.Food
		if err := rows.Scan(&f.ID, &f.Name, &f.Description, &f.Price, &f.Category, &f.Image, &f.CreatedAt); err != nil {
			slog.Error("failed to scan food", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		foods = append(foods, f)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate food", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.FoodListResponse{
		Success: true,
		Data:    foods,
	})
}

// AddFood handles POST /api/food/add
// Expects a multipart form with name, description, price, category and image
func (h *FoodHandler) AddFood(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	price, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue("price")), 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "price must be a number")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "image file required")
		return
	}
	defer file.Close()

	imageName, err := h.store.Save(file)
	if errors.Is(err, uploads.ErrImageTooLarge) {
		middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, "image dimensions too large")
		return
	}
	if errors.Is(err, uploads.ErrNotImage) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "image could not be decoded")
		return
	}
	if err != nil {
		slog.Error("failed to store image", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to store image")
		return
	}

	food := models.Food{
		ID:          uuid.NewString(),
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Price:       price,
		Category:    r.FormValue("category"),
		Image:       imageName,
		CreatedAt:   time.Now().UTC(),
	}

	_, err = h.db.ExecContext(r.Context(), `
		INSERT INTO food (id, name, description, price, category, image, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, food.ID, food.Name, food.Description, food.Price, food.Category, food.Image, food.CreatedAt)
	if err != nil {
		slog.Error("failed to insert food", "error", err)
		if rmErr := h.store.Remove(imageName); rmErr != nil {
			slog.Error("failed to clean up image", "image", imageName, "error", rmErr)
		}
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add food")
		return
	}

	slog.Info("food added", "food_id", food.ID, "image", food.Image)

	middleware.JSONResponse(w, http.StatusCreated, models.Response{
		Success: true,
		Message: models.MessageFoodAdded,
		Data:    food,
	})
}

// RemoveFood handles POST /api/food/remove
// Deletes the catalog entry and its image file
func (h *FoodHandler) RemoveFood(w http.ResponseWriter, r *http.Request) {
	var req models.RemoveFoodRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.ID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	var imageName string
	err := h.db.QueryRowContext(r.Context(), `
		SELECT image FROM food WHERE id = $1
	`, req.ID).Scan(&imageName)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Food not found")
		return
	}
	if err != nil {
		slog.Error("failed to query food", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if _, err := h.db.ExecContext(r.Context(), `DELETE FROM food WHERE id = $1`, req.ID); err != nil {
		slog.Error("failed to delete food", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to remove food")
		return
	}

	// The row is gone, so a stale file is only logged
	if err := h.store.Remove(imageName); err != nil {
		slog.Error("failed to remove image", "image", imageName, "error", err)
	}

	slog.Info("food removed", "food_id", req.ID)

	middleware.JSONResponse(w, http.StatusOK, models.Response{
		Success: true,
		Message: models.MessageFoodRemoved,
	})
}
