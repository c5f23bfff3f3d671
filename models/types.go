// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Request types

type RegisterGuestRequest struct {
	Name    string `json:"name"`
	Costume string `json:"costume,omitempty"`
}

type ClaimSessionRequest struct {
	Name string `json:"name"`
}

type SubmitVoteRequest struct {
	FirstChoiceID  int64 `json:"first_choice_id"`
	SecondChoiceID int64 `json:"second_choice_id"`
	ThirdChoiceID  int64 `json:"third_choice_id"`
}

// Response types

type RegisterGuestResponse struct {
	GuestID int64 `json:"guest_id"`
}

type ClaimSessionResponse struct {
	SessionToken string `json:"session_token"`
	GuestID      int64  `json:"guest_id"`
}

type SubmitVoteResponse struct {
	Message string `json:"message"`
}

type MyBallotResponse struct {
	HasVoted bool  `json:"has_voted"`
	Ballot   *Vote `json:"ballot,omitempty"`
}

type CloseVotingResponse struct {
	ClosedAt time.Time `json:"closed_at"`
	Result   RcvResult `json:"result"`
}

type VotingStatusResponse struct {
	IsOpen   bool        `json:"is_open"`
	OpenedAt *time.Time  `json:"opened_at,omitempty"`
	ClosedAt *time.Time  `json:"closed_at,omitempty"`
	Stats    VotingStats `json:"stats"`
}

// Domain types

type Guest struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Costume      *string    `json:"costume,omitempty"`
	IsActive     bool       `json:"is_active"`
	RegisteredAt *time.Time `json:"registered_at,omitempty"`
}

// GuestSummary is the public roster listing entry. Registered is a
// human-readable age ("3 minutes ago") rather than a raw timestamp.
type GuestSummary struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Costume    *string `json:"costume,omitempty"`
	Registered string  `json:"registered,omitempty"`
}

// Vote is one guest's ranked ballot. A guest has at most one; resubmitting
// replaces the prior ballot entirely.
type Vote struct {
	ID             int64     `json:"id"`
	VoterID        int64     `json:"voter_id"`
	FirstChoiceID  int64     `json:"first_choice_id"`
	SecondChoiceID int64     `json:"second_choice_id"`
	ThirdChoiceID  int64     `json:"third_choice_id"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

// VotingStatus mirrors the singleton voting_status row.
type VotingStatus struct {
	IsOpen   bool       `json:"is_open"`
	OpenedAt *time.Time `json:"opened_at,omitempty"`
	ClosedAt *time.Time `json:"closed_at,omitempty"`
}

type VotingStats struct {
	BallotsCast  int64 `json:"ballots_cast"`
	ActiveGuests int64 `json:"active_guests"`
}

// RCV result types

// TallyEntry is one candidate's count within a round, already ordered for
// display (count descending, candidate id ascending).
type TallyEntry struct {
	CandidateID int64 `json:"candidate_id"`
	Votes       int   `json:"votes"`
}

// RcvRound is an immutable per-round record: the full tally snapshot, the
// candidates eliminated at the end of the round, and the winner if one was
// declared this round.
type RcvRound struct {
	RoundNumber int          `json:"round_number"`
	Tallies     []TallyEntry `json:"tallies"`
	Eliminated  []int64      `json:"eliminated"`
	Winner      *int64       `json:"winner,omitempty"`
}

// RcvResult is the complete tabulation. WinnerID is nil when all remaining
// candidates tied out without anyone reaching a majority.
type RcvResult struct {
	WinnerID *int64     `json:"winner_id"`
	Rounds   []RcvRound `json:"rounds"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
