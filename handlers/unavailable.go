// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/food-del/middleware"
)

// Unavailable answers every request under its prefix with 501.
// It stands in for a module whose logic lives in another service.
func Unavailable(module string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		middleware.ErrorResponse(w, http.StatusNotImplemented, module+" module is not available on this server")
	})
}
