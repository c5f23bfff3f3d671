// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterGuestRequest: name, costume
  - ClaimSessionRequest: name
  - SubmitVoteRequest: first_choice_id, second_choice_id, third_choice_id

# Response Types

Types for JSON responses:

  - RegisterGuestResponse: guest_id
  - ClaimSessionResponse: session_token, guest_id
  - SubmitVoteResponse: message
  - MyBallotResponse: has_voted, ballot
  - CloseVotingResponse: closed_at, result
  - VotingStatusResponse: is_open, opened_at, closed_at, stats
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Guest: roster member with active flag
  - GuestSummary: public listing entry with humanized registration age
  - Vote: one guest's ranked ballot (three distinct non-self choices)
  - VotingStatus: the singleton open/closed voting window
  - VotingStats: ballots cast and active roster size

# Tabulation Types

Output of the instant-runoff tabulator:

  - TallyEntry: (candidate_id, votes) pair, display-sorted
  - RcvRound: one round's tally snapshot, eliminations, and winner
  - RcvResult: winner_id (nil on a full tie-out) plus all rounds
*/
package models
