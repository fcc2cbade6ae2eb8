// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the food-del API.

# Route Registration

NewHandler builds the mux from a mount table and wraps it in the global
middleware stack:

	mounts := router.NewMountTable(db, cfg, store)
	handler, err := router.NewHandler(cfg, mounts)

# Mount Table

Each Mount owns every path under its prefix; the handler sees the path
with the prefix stripped. The default table:

	/api/food   - food catalog (list, add, remove)
	/images     - static files from cfg.UploadDir
	/api/user   - user accounts (501, not served here)
	/api/cart   - cart (501, not served here)
	/api/order  - orders (501, not served here)

Validate rejects a table whose prefixes are empty, relative, end in a
slash, or overlap by whole path segments (/api and /api/food overlap,
/api/food and /api/foods do not). Prefixes may not cover /health.
Because no two prefixes overlap, registration order never matters.

# Endpoints

	GET /health - {"status":"ok"}, no dependency checks
	GET /       - "API Working" (exact root only)

Anything else falls through to the http.ServeMux 404.

# Static Files

StaticFiles serves GET and HEAD only. Missing files and directories are
404; directory listings are never produced.
*/
package router
