// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/ranked-pick/cliparse"
	"github.com/danielhkuo/ranked-pick/election"
	"github.com/danielhkuo/ranked-pick/handlers"
	"github.com/danielhkuo/ranked-pick/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// One coordinator for the whole process: its mutex is what serializes
	// ballot writes against window close.
	coord := election.NewCoordinator(db)

	guestHandler := handlers.NewGuestHandler(db, cfg)
	sessionHandler := handlers.NewSessionHandler(db)
	votingHandler := handlers.NewVotingHandler(db, coord)
	resultsHandler := handlers.NewResultsHandler(coord)
	adminHandler := handlers.NewAdminHandler(cfg, coord)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Public reads
	mux.HandleFunc("GET /guests", middleware.WithLogging(guestHandler.List))
	mux.HandleFunc("GET /voting/status", middleware.WithLogging(resultsHandler.GetStatus))
	mux.HandleFunc("GET /voting/stats", middleware.WithLogging(resultsHandler.GetStats))
	mux.HandleFunc("GET /voting/result", middleware.WithLogging(resultsHandler.GetResult))

	// Voter operations (X-Session-Token)
	mux.HandleFunc("POST /sessions", middleware.WithLogging(sessionHandler.Claim))
	mux.HandleFunc("POST /voting/ballots", middleware.WithLogging(votingHandler.SubmitVote))
	mux.HandleFunc("GET /voting/my-ballot", middleware.WithLogging(votingHandler.MyBallot))

	// Admin operations (X-Admin-Token)
	mux.HandleFunc("POST /admin/guests", middleware.WithLogging(guestHandler.Register))
	mux.HandleFunc("POST /admin/guests/{id}/deactivate", middleware.WithLogging(guestHandler.Deactivate))
	mux.HandleFunc("POST /admin/guests/{id}/activate", middleware.WithLogging(guestHandler.Activate))
	mux.HandleFunc("POST /admin/voting/open", middleware.WithLogging(adminHandler.OpenVoting))
	mux.HandleFunc("POST /admin/voting/close", middleware.WithLogging(adminHandler.CloseVoting))
	mux.HandleFunc("POST /admin/votes/reset", middleware.WithLogging(adminHandler.ResetVotes))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ranked-pick API v1"))
	})

	return mux
}
