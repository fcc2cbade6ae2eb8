// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"
)

type jsonBodyKey struct{}

// JSONBody parses JSON request bodies before routing.
// Malformed JSON is answered with 400 and a body over maxBytes with 413;
// neither reaches the next handler. The decoded value is available through
// Body and the raw bytes are put back on r.Body for handlers that decode
// into their own types.
//
// GET, HEAD and OPTIONS requests are passed through untouched.
func JSONBody(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !carriesBody(r.Method) || !isJSON(r.Header.Get("Content-Type")) {
				next.ServeHTTP(w, r)
				return
			}

			data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBytes))
			r.Body.Close()
			if err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					ErrorResponse(w, http.StatusRequestEntityTooLarge, "Request body too large")
					return
				}
				ErrorResponse(w, http.StatusBadRequest, "Failed to read request body")
				return
			}

			if len(bytes.TrimSpace(data)) > 0 {
				var v any
				if err := json.Unmarshal(data, &v); err != nil {
					ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
					return
				}
				r = r.WithContext(context.WithValue(r.Context(), jsonBodyKey{}, v))
			}

			r.Body = io.NopCloser(bytes.NewReader(data))
			next.ServeHTTP(w, r)
		})
	}
}

// Body returns the value decoded by JSONBody, if any
func Body(r *http.Request) (any, bool) {
	v := r.Context().Value(jsonBodyKey{})
	return v, v != nil
}

func carriesBody(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return false
	}
	return true
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
