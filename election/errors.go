// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "errors"

// Ballot intake and tabulation rejections. All are deterministic validation
// failures: rejected input leaves prior state untouched, and retrying without
// changing the input fails the same way. Handlers branch on these with
// errors.Is to pick an HTTP status.
var (
	// ErrVotingClosed rejects ballot submission while the window is shut.
	ErrVotingClosed = errors.New("voting is not open")

	// ErrVotingOpen rejects tabulation while ballots are still being accepted.
	ErrVotingOpen = errors.New("voting is still open")

	// ErrSelfVote rejects a ballot ranking the voter themselves.
	ErrSelfVote = errors.New("cannot vote for yourself")

	// ErrDuplicateChoice rejects a ballot whose three choices are not
	// pairwise distinct.
	ErrDuplicateChoice = errors.New("choices must be distinct")

	// ErrNotFound means a referenced voter or choice is not an active guest.
	ErrNotFound = errors.New("no active guest with that id")
)
