// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election implements the ranked-choice voting engine: ballot
validation, the open/closed voting window, and instant-runoff tabulation.

# Tabulation

ComputeRCV is a pure function over an immutable ballot snapshot and the
initial candidate set:

	result := election.ComputeRCV(votes, candidateIDs)

Each round tallies every ballot's highest-ranked still-active choice. A
candidate wins by holding at least ceil(pool/2) votes with a strict lead over
second place (a lone remaining candidate always has the lead, even with zero
votes). Otherwise every candidate tied at the minimum tally is eliminated
together and ballots with no active choice left are dropped from the pool,
shrinking the majority denominator for later rounds. If all remaining
candidates are eliminated in one round the result carries a nil winner.

# Coordination

Coordinator wraps a *sql.DB with a single-writer mutex. SubmitVote validates
against the window and roster, then replaces any prior ballot atomically.
Close flips the window shut and tabulates inside one transaction so the
result reflects the exact ballot set at closing time. Result recomputes on
demand, but only once the window is closed.

# Errors

Rejections are a closed set of sentinel errors (ErrVotingClosed,
ErrVotingOpen, ErrSelfVote, ErrDuplicateChoice, ErrNotFound) so callers can
branch with errors.Is instead of parsing messages.
*/
package election
