// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/ranked-pick/auth"
	"github.com/danielhkuo/ranked-pick/middleware"
	"github.com/danielhkuo/ranked-pick/models"
)

type SessionHandler struct {
	db *sql.DB
}

func NewSessionHandler(db *sql.DB) *SessionHandler {
	return &SessionHandler{db: db}
}

// Claim handles POST /sessions
// A guest claims a session by their registered name and receives a token for
// the X-Session-Token header. Claiming again issues a fresh token; old
// tokens stay valid until the guest is removed.
func (h *SessionHandler) Claim(w http.ResponseWriter, r *http.Request) {
	var req models.ClaimSessionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	var guestID int64
	err := h.db.QueryRow(`
		SELECT id FROM guest WHERE name = $1 AND is_active = 1
	`, req.Name).Scan(&guestID)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "No active guest with that name")
		return
	}
	if err != nil {
		slog.Error("failed to look up guest", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	token := auth.GenerateSessionToken()
	_, err = h.db.Exec(`
		INSERT INTO session (guest_id, token, created_at)
		VALUES ($1, $2, $3)
	`, guestID, token, time.Now())

	if err != nil {
		slog.Error("failed to insert session", "error", err, "guest_id", guestID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to claim session")
		return
	}

	slog.Info("session claimed", "guest_id", guestID)

	middleware.JSONResponse(w, http.StatusCreated, models.ClaimSessionResponse{
		SessionToken: token,
		GuestID:      guestID,
	})
}

// GuestFromSession resolves the guest behind the X-Session-Token header.
// Returns auth.ErrInvalidSessionToken for a missing or unknown token.
func GuestFromSession(db *sql.DB, r *http.Request) (int64, error) {
	token := r.Header.Get("X-Session-Token")
	if token == "" {
		return 0, auth.ErrInvalidSessionToken
	}

	var guestID int64
	err := db.QueryRow(`SELECT guest_id FROM session WHERE token = $1`, token).Scan(&guestID)
	if err == sql.ErrNoRows {
		return 0, auth.ErrInvalidSessionToken
	}
	if err != nil {
		return 0, err
	}
	return guestID, nil
}
