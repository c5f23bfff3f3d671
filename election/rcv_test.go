// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"testing"

	"github.com/danielhkuo/ranked-pick/models"
)

// ballots builds a vote slice from (first, second, third) triples. Voter ids
// are synthetic; ComputeRCV never looks at them.
func ballots(triples ...[3]int64) []models.Vote {
	votes := make([]models.Vote, 0, len(triples))
	for i, t := range triples {
		votes = append(votes, models.Vote{
			ID:             int64(i + 1),
			VoterID:        int64(100 + i),
			FirstChoiceID:  t[0],
			SecondChoiceID: t[1],
			ThirdChoiceID:  t[2],
		})
	}
	return votes
}

func repeat(n int, triple [3]int64) [][3]int64 {
	out := make([][3]int64, n)
	for i := range out {
		out[i] = triple
	}
	return out
}

func TestMajorityFirstRound(t *testing.T) {
	votes := ballots(repeat(3, [3]int64{1, 2, 3})...)
	result := ComputeRCV(votes, []int64{1, 2, 3})

	if result.WinnerID == nil || *result.WinnerID != 1 {
		t.Fatalf("Expected winner 1, got %v", result.WinnerID)
	}
	if len(result.Rounds) != 1 {
		t.Fatalf("Expected 1 round, got %d", len(result.Rounds))
	}

	round := result.Rounds[0]
	if len(round.Eliminated) != 0 {
		t.Errorf("Expected no eliminations in winning round, got %v", round.Eliminated)
	}
	if round.Winner == nil || *round.Winner != 1 {
		t.Errorf("Expected round winner 1, got %v", round.Winner)
	}
	if round.Tallies[0].CandidateID != 1 || round.Tallies[0].Votes != 3 {
		t.Errorf("Expected top tally (1, 3), got %+v", round.Tallies[0])
	}
}

func TestMultiRoundComeback(t *testing.T) {
	// Candidate 1 leads round 1 with 4 of 9 first-choice votes, but candidate
	// 2 picks up the eliminated candidate 3's ballots and reaches 5 of 9.
	triples := repeat(4, [3]int64{1, 2, 3})
	triples = append(triples, repeat(3, [3]int64{2, 1, 3})...)
	triples = append(triples, repeat(2, [3]int64{3, 2, 1})...)
	votes := ballots(triples...)

	result := ComputeRCV(votes, []int64{1, 2, 3, 4})

	if result.WinnerID == nil || *result.WinnerID != 2 {
		t.Fatalf("Expected winner 2, got %v", result.WinnerID)
	}
	if len(result.Rounds) != 3 {
		t.Fatalf("Expected 3 rounds, got %d", len(result.Rounds))
	}

	// Round 1: 1:4, 2:3, 3:2, 4:0 - candidate 4 drops out alone.
	r1 := result.Rounds[0]
	if r1.Tallies[0].CandidateID != 1 || r1.Tallies[0].Votes != 4 {
		t.Errorf("Round 1: expected leader (1, 4), got %+v", r1.Tallies[0])
	}
	if len(r1.Eliminated) != 1 || r1.Eliminated[0] != 4 {
		t.Errorf("Round 1: expected elimination of 4, got %v", r1.Eliminated)
	}

	// Round 2: same tallies without 4 - candidate 3 drops out.
	r2 := result.Rounds[1]
	if len(r2.Eliminated) != 1 || r2.Eliminated[0] != 3 {
		t.Errorf("Round 2: expected elimination of 3, got %v", r2.Eliminated)
	}

	// Round 3: transfers give 2 a majority, 5 of 9.
	r3 := result.Rounds[2]
	if r3.Tallies[0].CandidateID != 2 || r3.Tallies[0].Votes != 5 {
		t.Errorf("Round 3: expected (2, 5) on top, got %+v", r3.Tallies[0])
	}
	if r3.Winner == nil || *r3.Winner != 2 {
		t.Errorf("Round 3: expected declared winner 2, got %v", r3.Winner)
	}
}

func TestLoneSurvivorAfterTieElimination(t *testing.T) {
	// {2, 3, 4} all tie at one vote and are eliminated together in round 1.
	// Candidate 1 then wins round 2 with the 4 surviving ballots, even though
	// round 1 produced no majority.
	triples := repeat(2, [3]int64{1, 2, 3})
	triples = append(triples,
		[3]int64{2, 1, 3},
		[3]int64{3, 1, 2},
		[3]int64{4, 2, 3}, // exhausted once 2, 3, 4 are gone
	)
	votes := ballots(triples...)

	result := ComputeRCV(votes, []int64{1, 2, 3, 4})

	if result.WinnerID == nil || *result.WinnerID != 1 {
		t.Fatalf("Expected winner 1, got %v", result.WinnerID)
	}
	if len(result.Rounds) != 2 {
		t.Fatalf("Expected 2 rounds, got %d", len(result.Rounds))
	}

	r1 := result.Rounds[0]
	if len(r1.Eliminated) != 3 {
		t.Fatalf("Round 1: expected 3 simultaneous eliminations, got %v", r1.Eliminated)
	}
	for i, want := range []int64{2, 3, 4} {
		if r1.Eliminated[i] != want {
			t.Errorf("Round 1: expected eliminated[%d] = %d, got %d", i, want, r1.Eliminated[i])
		}
	}

	r2 := result.Rounds[1]
	if len(r2.Tallies) != 1 {
		t.Fatalf("Round 2: expected single active candidate, got %+v", r2.Tallies)
	}
	if r2.Tallies[0].Votes != 4 {
		t.Errorf("Round 2: expected all 4 surviving ballots for candidate 1, got %d", r2.Tallies[0].Votes)
	}
}

func TestFullTieNoWinner(t *testing.T) {
	triples := repeat(2, [3]int64{1, 2, 3})
	triples = append(triples, repeat(2, [3]int64{2, 3, 4})...)
	triples = append(triples, repeat(2, [3]int64{3, 4, 1})...)
	triples = append(triples, repeat(2, [3]int64{4, 1, 2})...)
	votes := ballots(triples...)

	result := ComputeRCV(votes, []int64{1, 2, 3, 4})

	if result.WinnerID != nil {
		t.Fatalf("Expected no winner, got %d", *result.WinnerID)
	}
	if len(result.Rounds) != 1 {
		t.Fatalf("Expected 1 round, got %d", len(result.Rounds))
	}
	if len(result.Rounds[0].Eliminated) != 4 {
		t.Errorf("Expected all 4 candidates eliminated together, got %v", result.Rounds[0].Eliminated)
	}
}

func TestEmptyCandidates(t *testing.T) {
	result := ComputeRCV(ballots([3]int64{1, 2, 3}), []int64{})

	if result.WinnerID != nil {
		t.Errorf("Expected no winner, got %d", *result.WinnerID)
	}
	if len(result.Rounds) != 0 {
		t.Errorf("Expected no rounds, got %d", len(result.Rounds))
	}
}

func TestLoneCandidateZeroBallots(t *testing.T) {
	// With an empty ballot pool the majority threshold is zero, so a lone
	// remaining candidate wins by the clear-top rule despite zero votes.
	result := ComputeRCV(nil, []int64{7})

	if result.WinnerID == nil || *result.WinnerID != 7 {
		t.Fatalf("Expected winner 7, got %v", result.WinnerID)
	}
	if len(result.Rounds) != 1 {
		t.Fatalf("Expected 1 round, got %d", len(result.Rounds))
	}
	if result.Rounds[0].Tallies[0].Votes != 0 {
		t.Errorf("Expected zero-vote win, got %d votes", result.Rounds[0].Tallies[0].Votes)
	}
}

func TestTwoCandidatesZeroBallots(t *testing.T) {
	// Both sit at zero: threshold is met but neither has a clear lead, so
	// both are eliminated and nobody wins.
	result := ComputeRCV(nil, []int64{1, 2})

	if result.WinnerID != nil {
		t.Fatalf("Expected no winner, got %d", *result.WinnerID)
	}
	if len(result.Rounds) != 1 {
		t.Fatalf("Expected 1 round, got %d", len(result.Rounds))
	}
	if len(result.Rounds[0].Eliminated) != 2 {
		t.Errorf("Expected both candidates eliminated, got %v", result.Rounds[0].Eliminated)
	}
}

func TestShrinkingBallotPool(t *testing.T) {
	// Ballots ranking only non-candidates count toward round 1's majority
	// denominator but are dropped once fully exhausted, lowering the
	// threshold for later rounds.
	triples := repeat(2, [3]int64{1, 5, 6})
	triples = append(triples, [3]int64{2, 5, 6})
	triples = append(triples, repeat(2, [3]int64{9, 8, 7})...)
	votes := ballots(triples...)

	result := ComputeRCV(votes, []int64{1, 2})

	// Round 1: pool of 5 needs 3 to win; leader 1 has only 2.
	r1 := result.Rounds[0]
	if r1.Winner != nil {
		t.Fatalf("Round 1: expected no winner at threshold 3, got %d", *r1.Winner)
	}
	if len(r1.Eliminated) != 1 || r1.Eliminated[0] != 2 {
		t.Fatalf("Round 1: expected elimination of 2, got %v", r1.Eliminated)
	}

	// Round 2: the three exhausted ballots are gone, pool of 2 needs 1.
	if result.WinnerID == nil || *result.WinnerID != 1 {
		t.Fatalf("Expected winner 1 after pool shrink, got %v", result.WinnerID)
	}
	if len(result.Rounds) != 2 {
		t.Fatalf("Expected 2 rounds, got %d", len(result.Rounds))
	}
	if result.Rounds[1].Tallies[0].Votes != 2 {
		t.Errorf("Round 2: expected 2 votes for winner, got %d", result.Rounds[1].Tallies[0].Votes)
	}
}

func TestTallyOrdering(t *testing.T) {
	// Equal counts are ordered by candidate id ascending. Display-only: the
	// full tie still eliminates everyone.
	votes := ballots(
		[3]int64{5, 1, 3},
		[3]int64{3, 5, 1},
		[3]int64{1, 3, 5},
	)
	result := ComputeRCV(votes, []int64{5, 3, 1})

	tallies := result.Rounds[0].Tallies
	want := []int64{1, 3, 5}
	for i, id := range want {
		if tallies[i].CandidateID != id || tallies[i].Votes != 1 {
			t.Errorf("Expected tallies[%d] = (%d, 1), got %+v", i, id, tallies[i])
		}
	}
	if result.WinnerID != nil {
		t.Errorf("Expected full tie with no winner, got %d", *result.WinnerID)
	}
}

func TestRoundInvariants(t *testing.T) {
	cases := []struct {
		name       string
		candidates []int64
		triples    [][3]int64
	}{
		{
			name:       "comeback",
			candidates: []int64{1, 2, 3, 4},
			triples: append(append(
				repeat(4, [3]int64{1, 2, 3}),
				repeat(3, [3]int64{2, 1, 3})...),
				repeat(2, [3]int64{3, 2, 1})...),
		},
		{
			name:       "full tie",
			candidates: []int64{1, 2, 3, 4},
			triples: append(append(append(
				repeat(2, [3]int64{1, 2, 3}),
				repeat(2, [3]int64{2, 3, 4})...),
				repeat(2, [3]int64{3, 4, 1})...),
				repeat(2, [3]int64{4, 1, 2})...),
		},
		{
			name:       "lone survivor",
			candidates: []int64{1, 2, 3, 4},
			triples: append(
				repeat(2, [3]int64{1, 2, 3}),
				[3]int64{2, 1, 3}, [3]int64{3, 1, 2}, [3]int64{4, 2, 3}),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := ComputeRCV(ballots(tc.triples...), tc.candidates)

			prevActive := len(tc.candidates) + 1
			for i, round := range result.Rounds {
				if round.RoundNumber != i+1 {
					t.Errorf("rounds[%d].RoundNumber = %d, want %d", i, round.RoundNumber, i+1)
				}
				if len(round.Tallies) >= prevActive {
					t.Errorf("rounds[%d]: active count %d did not shrink from %d", i, len(round.Tallies), prevActive)
				}
				if round.Winner == nil && len(round.Eliminated) == 0 {
					t.Errorf("rounds[%d]: no winner and no eliminations", i)
				}
				prevActive = len(round.Tallies)
			}
		})
	}
}
