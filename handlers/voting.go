// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ranked-pick/auth"
	"github.com/danielhkuo/ranked-pick/election"
	"github.com/danielhkuo/ranked-pick/middleware"
	"github.com/danielhkuo/ranked-pick/models"
)

type VotingHandler struct {
	db    *sql.DB
	coord *election.Coordinator
}

func NewVotingHandler(db *sql.DB, coord *election.Coordinator) *VotingHandler {
	return &VotingHandler{db: db, coord: coord}
}

// SubmitVote handles POST /voting/ballots
// Submitting again replaces the voter's prior ballot entirely.
func (h *VotingHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	voterID, err := GuestFromSession(h.db, r)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidSessionToken) {
			middleware.ErrorResponse(w, http.StatusUnauthorized, "Valid X-Session-Token header required")
			return
		}
		slog.Error("failed to resolve session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	err = h.coord.SubmitVote(voterID, req.FirstChoiceID, req.SecondChoiceID, req.ThirdChoiceID)
	if err != nil {
		electionErrorResponse(w, err)
		return
	}

	slog.Info("ballot submitted", "voter_id", voterID)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitVoteResponse{
		Message: "Ballot recorded",
	})
}

// MyBallot handles GET /voting/my-ballot
func (h *VotingHandler) MyBallot(w http.ResponseWriter, r *http.Request) {
	voterID, err := GuestFromSession(h.db, r)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidSessionToken) {
			middleware.ErrorResponse(w, http.StatusUnauthorized, "Valid X-Session-Token header required")
			return
		}
		slog.Error("failed to resolve session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	hasVoted, err := h.coord.HasVoted(voterID)
	if err != nil {
		slog.Error("failed to check ballot", "error", err, "voter_id", voterID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var ballot *models.Vote
	if hasVoted {
		ballot, err = h.coord.UserVote(voterID)
		if err != nil {
			slog.Error("failed to load ballot", "error", err, "voter_id", voterID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.MyBallotResponse{
		HasVoted: hasVoted,
		Ballot:   ballot,
	})
}

// electionErrorResponse maps the engine's closed error set onto HTTP
// statuses. Anything outside the set is an internal failure.
func electionErrorResponse(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, election.ErrVotingClosed):
		middleware.ErrorResponse(w, http.StatusConflict, "Voting is not open")
	case errors.Is(err, election.ErrVotingOpen):
		middleware.ErrorResponse(w, http.StatusForbidden, "Results are hidden until voting closes")
	case errors.Is(err, election.ErrSelfVote):
		middleware.ErrorResponse(w, http.StatusBadRequest, "You cannot vote for yourself")
	case errors.Is(err, election.ErrDuplicateChoice):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Choices must be three different guests")
	case errors.Is(err, election.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "No active guest with that id")
	default:
		slog.Error("election operation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}
