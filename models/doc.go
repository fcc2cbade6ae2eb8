// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - RemoveFoodRequest: id

Adding food is a multipart form, not JSON, so it has no request type.

# Response Types

  - HealthResponse: status ("ok")
  - Response: success, message, data
  - FoodListResponse: success, data ([]Food)
  - ErrorResponse: error, message

# Domain Types

  - Food: catalog entry; Image is a file name served under /images
*/
package models
