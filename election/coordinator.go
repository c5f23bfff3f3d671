// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/danielhkuo/ranked-pick/models"
)

// Coordinator owns the voting window and ballot intake. All mutations run
// under a single mutex plus a transaction, so a resubmitted ballot is
// replaced atomically (never zero or two ballots for a voter) and Close
// tabulates against a ballot set no in-flight submission can change.
// Reads of an already-closed result need no locking; the ballot set is
// frozen once the window shuts.
type Coordinator struct {
	db *sql.DB
	mu sync.Mutex
}

func NewCoordinator(db *sql.DB) *Coordinator {
	return &Coordinator{db: db}
}

// querier lets the roster and ballot reads run against either the pool or an
// open transaction.
type querier interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// Open starts (or restarts) the voting window. Idempotent: reopening clears
// any prior closed_at.
func (c *Coordinator) Open() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.db.Exec(`
		UPDATE voting_status
		SET is_open = 1, opened_at = $1, closed_at = NULL
		WHERE id = 1
	`, time.Now())
	if err != nil {
		return fmt.Errorf("failed to open voting: %w", err)
	}
	return nil
}

// Close shuts the voting window and tabulates in the same transaction, so
// the returned result reflects exactly the ballots present the instant the
// window closed. The returned time is the closed_at written to the window
// row. Idempotent: re-closing refreshes closed_at and recomputes.
func (c *Coordinator) Close() (models.RcvResult, time.Time, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	closedAt := time.Now()

	tx, err := c.db.Begin()
	if err != nil {
		return models.RcvResult{}, time.Time{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		UPDATE voting_status
		SET is_open = 0, closed_at = $1
		WHERE id = 1
	`, closedAt)
	if err != nil {
		return models.RcvResult{}, time.Time{}, fmt.Errorf("failed to close voting: %w", err)
	}

	votes, err := allVotes(tx)
	if err != nil {
		return models.RcvResult{}, time.Time{}, err
	}
	candidates, err := activeGuestIDs(tx)
	if err != nil {
		return models.RcvResult{}, time.Time{}, err
	}

	result := ComputeRCV(votes, candidates)

	if err := tx.Commit(); err != nil {
		return models.RcvResult{}, time.Time{}, fmt.Errorf("failed to commit close: %w", err)
	}
	return result, closedAt, nil
}

// SubmitVote validates and records a ranked ballot for voterID. Any prior
// ballot for the voter is discarded and replaced in the same transaction.
// The window check always runs before roster validation.
func (c *Coordinator) SubmitVote(voterID, first, second, third int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	open, err := windowOpen(tx)
	if err != nil {
		return err
	}
	if !open {
		return ErrVotingClosed
	}

	active, err := guestActive(tx, voterID)
	if err != nil {
		return err
	}
	if !active {
		return ErrNotFound
	}

	choices := [3]int64{first, second, third}
	for _, id := range choices {
		if id == voterID {
			return ErrSelfVote
		}
	}
	if first == second || first == third || second == third {
		return ErrDuplicateChoice
	}
	for _, id := range choices {
		active, err := guestActive(tx, id)
		if err != nil {
			return err
		}
		if !active {
			return ErrNotFound
		}
	}

	if _, err := tx.Exec(`DELETE FROM vote WHERE voter_id = $1`, voterID); err != nil {
		return fmt.Errorf("failed to discard prior ballot: %w", err)
	}
	_, err = tx.Exec(`
		INSERT INTO vote (voter_id, first_choice_id, second_choice_id, third_choice_id, submitted_at)
		VALUES ($1, $2, $3, $4, $5)
	`, voterID, first, second, third, time.Now())
	if err != nil {
		return fmt.Errorf("failed to record ballot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit ballot: %w", err)
	}
	return nil
}

// HasVoted reports whether a ballot currently exists for voterID. Total over
// all roster states; an inactive guest's ballot still counts as voted.
func (c *Coordinator) HasVoted(voterID int64) (bool, error) {
	var count int64
	err := c.db.QueryRow(`SELECT COUNT(*) FROM vote WHERE voter_id = $1`, voterID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to count ballots: %w", err)
	}
	return count > 0, nil
}

// UserVote returns voterID's current ballot, or nil if none exists.
func (c *Coordinator) UserVote(voterID int64) (*models.Vote, error) {
	var v models.Vote
	err := c.db.QueryRow(`
		SELECT id, voter_id, first_choice_id, second_choice_id, third_choice_id, submitted_at
		FROM vote
		WHERE voter_id = $1
	`, voterID).Scan(&v.ID, &v.VoterID, &v.FirstChoiceID, &v.SecondChoiceID, &v.ThirdChoiceID, &v.SubmittedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load ballot: %w", err)
	}
	return &v, nil
}

// Result recomputes the tabulation from the full ballot set and the active
// roster. Only well-defined against a closed window; returns ErrVotingOpen
// otherwise.
func (c *Coordinator) Result() (models.RcvResult, error) {
	open, err := windowOpen(c.db)
	if err != nil {
		return models.RcvResult{}, err
	}
	if open {
		return models.RcvResult{}, ErrVotingOpen
	}

	votes, err := allVotes(c.db)
	if err != nil {
		return models.RcvResult{}, err
	}
	candidates, err := activeGuestIDs(c.db)
	if err != nil {
		return models.RcvResult{}, err
	}
	return ComputeRCV(votes, candidates), nil
}

// Status returns the window's current open/closed state and timestamps.
func (c *Coordinator) Status() (models.VotingStatus, error) {
	var st models.VotingStatus
	err := c.db.QueryRow(`
		SELECT is_open, opened_at, closed_at FROM voting_status WHERE id = 1
	`).Scan(&st.IsOpen, &st.OpenedAt, &st.ClosedAt)
	if err == sql.ErrNoRows {
		return models.VotingStatus{}, nil
	}
	if err != nil {
		return models.VotingStatus{}, fmt.Errorf("failed to read voting status: %w", err)
	}
	return st, nil
}

// IsOpen reports whether the window currently accepts ballots.
func (c *Coordinator) IsOpen() (bool, error) {
	return windowOpen(c.db)
}

// Stats returns (ballots cast, active roster size).
func (c *Coordinator) Stats() (models.VotingStats, error) {
	var stats models.VotingStats
	err := c.db.QueryRow(`SELECT COUNT(*) FROM vote`).Scan(&stats.BallotsCast)
	if err != nil {
		return models.VotingStats{}, fmt.Errorf("failed to count ballots: %w", err)
	}
	err = c.db.QueryRow(`SELECT COUNT(*) FROM guest WHERE is_active = 1`).Scan(&stats.ActiveGuests)
	if err != nil {
		return models.VotingStats{}, fmt.Errorf("failed to count active guests: %w", err)
	}
	return stats, nil
}

// ResetVotes deletes every ballot. The window state is left as-is.
func (c *Coordinator) ResetVotes() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.db.Exec(`DELETE FROM vote`); err != nil {
		return fmt.Errorf("failed to reset votes: %w", err)
	}
	return nil
}

func windowOpen(q querier) (bool, error) {
	var isOpen bool
	err := q.QueryRow(`SELECT is_open FROM voting_status WHERE id = 1`).Scan(&isOpen)
	if err == sql.ErrNoRows {
		// Missing singleton row reads as closed.
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read voting status: %w", err)
	}
	return isOpen, nil
}

func guestActive(q querier, guestID int64) (bool, error) {
	var count int64
	err := q.QueryRow(`
		SELECT COUNT(*) FROM guest WHERE id = $1 AND is_active = 1
	`, guestID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check guest %d: %w", guestID, err)
	}
	return count > 0, nil
}

func allVotes(q querier) ([]models.Vote, error) {
	rows, err := q.Query(`
		SELECT id, voter_id, first_choice_id, second_choice_id, third_choice_id, submitted_at
		FROM vote
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to load ballots: %w", err)
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		var v models.Vote
		if err := rows.Scan(&v.ID, &v.VoterID, &v.FirstChoiceID, &v.SecondChoiceID, &v.ThirdChoiceID, &v.SubmittedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ballot: %w", err)
		}
		votes = append(votes, v)
	}
	return votes, rows.Err()
}

func activeGuestIDs(q querier) ([]int64, error) {
	rows, err := q.Query(`SELECT id FROM guest WHERE is_active = 1 ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to load active guests: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan guest id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
