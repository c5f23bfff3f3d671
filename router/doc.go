// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires URL patterns to handlers using Go 1.22+ method routing.

# Route Groups

Public:

	GET /health
	GET /guests
	GET /voting/status
	GET /voting/stats
	GET /voting/result

Voter (X-Session-Token):

	POST /sessions
	POST /voting/ballots
	GET  /voting/my-ballot

Admin (X-Admin-Token):

	POST /admin/guests
	POST /admin/guests/{id}/deactivate
	POST /admin/guests/{id}/activate
	POST /admin/voting/open
	POST /admin/voting/close
	POST /admin/votes/reset

NewRouter also creates the single election.Coordinator shared by every
handler; see the election package for why there must be exactly one.
*/
package router
