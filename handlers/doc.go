// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the food-del API.

# Food Catalog

FoodHandler owns the catalog table and the upload store:

	foodHandler := handlers.NewFoodHandler(db, store)
	mux.Handle("/api/food/", http.StripPrefix("/api/food", foodHandler.Routes()))

Routes, relative to the mount prefix:

	GET  /list   → ListFood (newest first)
	POST /add    → AddFood (multipart: name, description, price, category, image)
	POST /remove → RemoveFood (JSON: {"id": "..."})

Uploaded images are shrunk to fit 1024x1024 and stored under a random
name; the stored name is returned in the food's image field and served
at /images/<name>.

# Other Modules

User accounts, carts and orders need authentication and payments, which
this server does not provide. Unavailable mounts a placeholder that
answers 501 for every path, so the prefixes stay owned:

	handlers.Unavailable("cart")
*/
package handlers
