// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Ranked Pick API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - GuestHandler: roster management (register, list, activate/deactivate)
  - SessionHandler: session claims by guest name
  - VotingHandler: ballot submission and my-ballot lookup
  - ResultsHandler: tabulation result, stats, and window status
  - AdminHandler: voting window control and ballot reset

All voting-state mutation and tabulation goes through a single shared
election.Coordinator, created once in the router:

	coord := election.NewCoordinator(db)
	votingHandler := handlers.NewVotingHandler(db, coord)

# Voting Flow

Guests interact with their session token:

	POST /sessions            → Claim (returns session_token)
	POST /voting/ballots      → SubmitVote (create or replace)
	GET  /voting/my-ballot    → MyBallot

Voter operations require the X-Session-Token header.

# Admin Flow

	POST /admin/guests                  → Register
	POST /admin/guests/{id}/deactivate  → Deactivate
	POST /admin/voting/open             → OpenVoting
	POST /admin/voting/close            → CloseVoting (returns tabulation)
	POST /admin/votes/reset             → ResetVotes

Admin operations require the X-Admin-Token header.

# Error Mapping

The election package's closed error set maps onto HTTP statuses in
electionErrorResponse: VotingClosed → 409, VotingOpen → 403, SelfVote and
DuplicateChoice → 400, NotFound → 404.
*/
package handlers
