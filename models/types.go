package models

import "time"

// Health status constants
const (
	StatusOK = "ok"
)

// Messages returned by the food catalog
const (
	MessageFoodAdded   = "Food Added"
	MessageFoodRemoved = "Food Removed"
)

// Request types

type RemoveFoodRequest struct {
	ID string `json:"id"`
}

// Response types

type HealthResponse struct {
	Status string `json:"status"`
}

// Envelope used by the catalog endpoints
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type FoodListResponse struct {
	Success bool   `json:"success"`
	Data    []Food `json:"data"`
}

// Domain types

type Food struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Image       string    `json:"image"` // file name under /images
	CreatedAt   time.Time `json:"created_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
