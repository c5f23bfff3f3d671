// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ranked-pick/auth"
	"github.com/danielhkuo/ranked-pick/cliparse"
	"github.com/danielhkuo/ranked-pick/election"
	"github.com/danielhkuo/ranked-pick/middleware"
	"github.com/danielhkuo/ranked-pick/models"
)

type AdminHandler struct {
	cfg   cliparse.Config
	coord *election.Coordinator
}

func NewAdminHandler(cfg cliparse.Config, coord *election.Coordinator) *AdminHandler {
	return &AdminHandler{cfg: cfg, coord: coord}
}

// OpenVoting handles POST /admin/voting/open
// Idempotent: reopening clears the previous closed_at.
func (h *AdminHandler) OpenVoting(w http.ResponseWriter, r *http.Request) {
	if err := auth.ValidateAdminToken(r.Header.Get("X-Admin-Token"), h.cfg.AdminToken); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin token")
		return
	}

	if err := h.coord.Open(); err != nil {
		slog.Error("failed to open voting", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to open voting")
		return
	}

	slog.Info("voting opened")

	w.WriteHeader(http.StatusNoContent)
}

// CloseVoting handles POST /admin/voting/close
// Closing and tabulating are one operation: the returned result reflects
// exactly the ballot set present the instant the window closed.
func (h *AdminHandler) CloseVoting(w http.ResponseWriter, r *http.Request) {
	if err := auth.ValidateAdminToken(r.Header.Get("X-Admin-Token"), h.cfg.AdminToken); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin token")
		return
	}

	result, closedAt, err := h.coord.Close()
	if err != nil {
		slog.Error("failed to close voting", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to close voting")
		return
	}

	if result.WinnerID != nil {
		slog.Info("voting closed", "winner_id", *result.WinnerID, "rounds", len(result.Rounds))
	} else {
		slog.Info("voting closed with no winner", "rounds", len(result.Rounds))
	}

	// Same timestamp the window row now carries, so this response agrees
	// with the status endpoint.
	middleware.JSONResponse(w, http.StatusOK, models.CloseVotingResponse{
		ClosedAt: closedAt,
		Result:   result,
	})
}

// ResetVotes handles POST /admin/votes/reset
// Wipes every ballot; the roster and window state are untouched.
func (h *AdminHandler) ResetVotes(w http.ResponseWriter, r *http.Request) {
	if err := auth.ValidateAdminToken(r.Header.Get("X-Admin-Token"), h.cfg.AdminToken); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin token")
		return
	}

	if err := h.coord.ResetVotes(); err != nil {
		slog.Error("failed to reset votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reset votes")
		return
	}

	slog.Info("votes reset")

	w.WriteHeader(http.StatusNoContent)
}
