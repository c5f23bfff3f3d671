// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"sort"

	"github.com/danielhkuo/ranked-pick/models"
)

// ComputeRCV runs instant-runoff tabulation over an immutable snapshot of
// ballots and the initial candidate set. Each round tallies every ballot's
// highest-ranked still-active choice, declares a winner if the top candidate
// holds a majority of the round's ballot pool with a clear lead, and
// otherwise eliminates every candidate tied at the minimum tally. Ballots
// with no remaining active choice are dropped from the pool, which shrinks
// the majority denominator for later rounds.
//
// The candidate set must contain unique ids; it is not deduplicated here.
func ComputeRCV(votes []models.Vote, candidates []int64) models.RcvResult {
	if len(candidates) == 0 {
		return models.RcvResult{WinnerID: nil, Rounds: []models.RcvRound{}}
	}

	active := make(map[int64]bool, len(candidates))
	for _, id := range candidates {
		active[id] = true
	}
	ballots := make([]models.Vote, len(votes))
	copy(ballots, votes)

	rounds := []models.RcvRound{}
	for roundNumber := 1; len(active) > 0; roundNumber++ {
		// Tally each ballot's highest-ranked active choice. A ballot with no
		// active choice left counts for nobody this round.
		counts := make(map[int64]int, len(active))
		for _, v := range ballots {
			if active[v.FirstChoiceID] {
				counts[v.FirstChoiceID]++
			} else if active[v.SecondChoiceID] {
				counts[v.SecondChoiceID]++
			} else if active[v.ThirdChoiceID] {
				counts[v.ThirdChoiceID]++
			}
		}

		// Snapshot covers every active candidate, zero-vote ones included.
		// The id tie-break keeps the ordering stable for display; it plays no
		// part in who wins or who is eliminated.
		tallies := make([]models.TallyEntry, 0, len(active))
		for id := range active {
			tallies = append(tallies, models.TallyEntry{CandidateID: id, Votes: counts[id]})
		}
		sort.Slice(tallies, func(i, j int) bool {
			if tallies[i].Votes != tallies[j].Votes {
				return tallies[i].Votes > tallies[j].Votes
			}
			return tallies[i].CandidateID < tallies[j].CandidateID
		})

		rounds = append(rounds, models.RcvRound{
			RoundNumber: roundNumber,
			Tallies:     tallies,
			Eliminated:  []int64{},
		})

		// Majority check against the pool size at the start of this round.
		// Two candidates can both hold "the majority" (3 votes each of 6), so
		// the winner must also hold a clear lead over second place. With zero
		// ballots the threshold is zero: a lone surviving candidate still
		// wins via the clear-top rule.
		totalBallots := len(ballots)
		threshold := 0
		if totalBallots > 0 {
			threshold = (totalBallots + 1) / 2 // ceil(n * 0.5), at least 1
		}
		topCount := tallies[0].Votes
		isClearTop := len(tallies) < 2 || tallies[1].Votes < topCount
		if topCount >= threshold && isClearTop {
			winner := tallies[0].CandidateID
			rounds[len(rounds)-1].Winner = &winner
			return models.RcvResult{WinnerID: &winner, Rounds: rounds}
		}

		// No winner: eliminate every candidate tied at the minimum tally in
		// the same round, then permanently drop fully exhausted ballots.
		minCount := tallies[len(tallies)-1].Votes
		eliminated := []int64{}
		for _, entry := range tallies {
			if entry.Votes == minCount {
				eliminated = append(eliminated, entry.CandidateID)
				delete(active, entry.CandidateID)
			}
		}
		rounds[len(rounds)-1].Eliminated = eliminated

		kept := ballots[:0]
		for _, v := range ballots {
			if active[v.FirstChoiceID] || active[v.SecondChoiceID] || active[v.ThirdChoiceID] {
				kept = append(kept, v)
			}
		}
		ballots = kept
	}

	// Every remaining candidate tied out at the bottom simultaneously. A
	// legitimate no-winner outcome, not an error.
	return models.RcvResult{WinnerID: nil, Rounds: rounds}
}
