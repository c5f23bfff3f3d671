// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP plumbing shared by all handlers.

# Helpers

  - WithLogging: request start/completion logging via slog
  - JSONResponse: write a JSON body with a status code
  - ErrorResponse: write a models.ErrorResponse
  - ParseJSONBody: decode a JSON request body
  - CORS: permissive CORS for the party frontend, including the
    X-Admin-Token and X-Session-Token headers
*/
package middleware
