// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides token helpers for the two identity levels of the API.

# Admin Token

Admin endpoints present X-Admin-Token, compared in constant time against the
configured ADMIN_TOKEN:

	if err := auth.ValidateAdminToken(presented, cfg.AdminToken); err != nil { ... }

# Session Tokens

Guests claim a session by name and receive a random token (UUIDv4) that
identifies them on later requests via X-Session-Token:

	token := auth.GenerateSessionToken()
*/
package auth
