// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/lib/pq"
	"modernc.org/sqlite"

	"github.com/danielhkuo/ranked-pick/auth"
	"github.com/danielhkuo/ranked-pick/cliparse"
	"github.com/danielhkuo/ranked-pick/middleware"
	"github.com/danielhkuo/ranked-pick/models"
)

type GuestHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewGuestHandler(db *sql.DB, cfg cliparse.Config) *GuestHandler {
	return &GuestHandler{db: db, cfg: cfg}
}

// Register handles POST /admin/guests
func (h *GuestHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := auth.ValidateAdminToken(r.Header.Get("X-Admin-Token"), h.cfg.AdminToken); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin token")
		return
	}

	var req models.RegisterGuestRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if len(req.Name) > 50 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name must be at most 50 characters")
		return
	}

	var costume *string
	if req.Costume != "" {
		costume = &req.Costume
	}

	// RETURNING works on both drivers; lib/pq has no LastInsertId.
	var guestID int64
	err := h.db.QueryRow(`
		INSERT INTO guest (name, costume, is_active, registered_at)
		VALUES ($1, $2, 1, $3)
		RETURNING id
	`, req.Name, costume, time.Now()).Scan(&guestID)

	if err != nil {
		if isUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusConflict, "Name already registered")
			return
		}
		slog.Error("failed to insert guest", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register guest")
		return
	}

	slog.Info("guest registered", "guest_id", guestID, "name", req.Name)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterGuestResponse{
		GuestID: guestID,
	})
}

// List handles GET /guests
// Returns the active roster, which doubles as the candidate list.
func (h *GuestHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, name, costume, registered_at
		FROM guest
		WHERE is_active = 1
		ORDER BY name
	`)
	if err != nil {
		slog.Error("failed to query guests", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	guests := []models.GuestSummary{}
	for rows.Next() {
		var g models.GuestSummary
		var registeredAt *time.Time
		if err := rows.Scan(&g.ID, &g.Name, &g.Costume, &registeredAt); err != nil {
			slog.Error("failed to scan guest", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		if registeredAt != nil {
			g.Registered = humanize.Time(*registeredAt)
		}
		guests = append(guests, g)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read guests", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, guests)
}

// Deactivate handles POST /admin/guests/{id}/deactivate
// An inactive guest can neither vote nor receive votes, and drops out of the
// candidate set for any later tabulation.
func (h *GuestHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, false)
}

// Activate handles POST /admin/guests/{id}/activate
func (h *GuestHandler) Activate(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, true)
}

func (h *GuestHandler) setActive(w http.ResponseWriter, r *http.Request, active bool) {
	if err := auth.ValidateAdminToken(r.Header.Get("X-Admin-Token"), h.cfg.AdminToken); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin token")
		return
	}

	guestID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid guest id")
		return
	}

	isActive := 0
	if active {
		isActive = 1
	}

	res, err := h.db.Exec(`UPDATE guest SET is_active = $1 WHERE id = $2`, isActive, guestID)
	if err != nil {
		slog.Error("failed to update guest", "error", err, "guest_id", guestID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	affected, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read rows affected", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Guest not found")
		return
	}

	slog.Info("guest activity changed", "guest_id", guestID, "is_active", active)

	w.WriteHeader(http.StatusNoContent)
}

// isUniqueViolation reports whether err is a unique-constraint failure from
// either supported driver.
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		// SQLITE_CONSTRAINT (19) or its SQLITE_CONSTRAINT_UNIQUE extension
		return se.Code() == 19 || se.Code() == 2067
	}
	var pe *pq.Error
	if errors.As(err, &pe) {
		return pe.Code == "23505" // unique_violation
	}
	return false
}
