// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ranked-pick/election"
	"github.com/danielhkuo/ranked-pick/middleware"
	"github.com/danielhkuo/ranked-pick/models"
)

type ResultsHandler struct {
	coord *election.Coordinator
}

func NewResultsHandler(coord *election.Coordinator) *ResultsHandler {
	return &ResultsHandler{coord: coord}
}

// GetResult handles GET /voting/result
// Returns 403 while the window is open: tabulation is only defined against a
// closed, frozen ballot set. The result is recomputed on each request.
func (h *ResultsHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	result, err := h.coord.Result()
	if err != nil {
		electionErrorResponse(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, result)
}

// GetStats handles GET /voting/stats
// Visible even while voting is open; counts reveal nothing about rankings.
func (h *ResultsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.coord.Stats()
	if err != nil {
		slog.Error("failed to read voting stats", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, stats)
}

// GetStatus handles GET /voting/status
func (h *ResultsHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.coord.Status()
	if err != nil {
		slog.Error("failed to read voting status", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	stats, err := h.coord.Stats()
	if err != nil {
		slog.Error("failed to read voting stats", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VotingStatusResponse{
		IsOpen:   status.IsOpen,
		OpenedAt: status.OpenedAt,
		ClosedAt: status.ClosedAt,
		Stats:    stats,
	})
}
