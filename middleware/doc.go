// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Global Stack

The server wraps the whole mux once at startup:

	handler := middleware.Chain(mux,
		middleware.WithLogging,
		middleware.Recoverer(slog.Default()),
		middleware.CORS,
		middleware.JSONBody(cfg.MaxBodyBytes),
	)

The first middleware listed sees the request first, so a panic recovered
by Recoverer is still logged by WithLogging with its 500 status.

# Request Logging

WithLogging logs one line per request with method, path, status,
client IP and duration_ms.

# CORS Middleware

Allows any origin. OPTIONS requests are answered with 204 and never reach
a handler; requested headers are echoed back.

# JSON Body Parsing

JSONBody rejects malformed application/json bodies with 400 (413 when over
the size limit) before routing. Handlers read the decoded value with

	v, ok := middleware.Body(r)

or decode r.Body into their own type, which still holds the raw bytes.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Checks X-Forwarded-For, then X-Real-IP, then RemoteAddr.
*/
package middleware
