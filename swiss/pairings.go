package swiss

import (
	"errors"
	"fmt"
)

const (
	// BracketSize is the number of teams the fixed pairing table covers.
	BracketSize = 12

	// TotalRounds is the number of Swiss rounds in the bracket.
	TotalRounds = 4

	// FieldsPerRound is the number of simultaneous games per round.
	FieldsPerRound = 3
)

var (
	ErrRoundOutOfRange   = errors.New("swiss: round number out of range")
	ErrSeedingIncomplete = errors.New("swiss: seeding does not cover every seed in the pairing table")
)

type Field string

const (
	FieldRed   Field = "A"
	FieldBlue  Field = "B"
	FieldGreen Field = "C"
)

// Pairing is one entry of the static pairing table: two seed numbers meeting
// on a field in a given round.
type Pairing struct {
	Field Field `json:"field"`
	SeedA int   `json:"seed_a"`
	SeedB int   `json:"seed_b"`
}

// Matchup is a Pairing with seed numbers resolved to actual team IDs.
type Matchup struct {
	Field Field `json:"field"`
	TeamA int   `json:"team_a"`
	TeamB int   `json:"team_b"`
}

// pairingTable is the fixed schedule for a 12-team Swiss bracket. It keeps
// seed 1 and seed 2 from meeting twice and spreads top seeds across fields
// from round to round. Reference data for manual scheduling; it is not
// re-derived from standings between rounds.
var pairingTable = [TotalRounds][FieldsPerRound]Pairing{
	{{FieldRed, 1, 2}, {FieldBlue, 6, 5}, {FieldGreen, 7, 8}},
	{{FieldRed, 1, 3}, {FieldBlue, 6, 10}, {FieldGreen, 7, 11}},
	{{FieldRed, 2, 4}, {FieldBlue, 5, 9}, {FieldGreen, 8, 12}},
	{{FieldRed, 3, 4}, {FieldBlue, 9, 10}, {FieldGreen, 11, 12}},
}

// PairingsForRound returns the three field assignments for a round (1-based).
func PairingsForRound(round int) ([FieldsPerRound]Pairing, error) {
	if round < 1 || round > TotalRounds {
		return [FieldsPerRound]Pairing{}, fmt.Errorf("%w: got %d, want 1..%d", ErrRoundOutOfRange, round, TotalRounds)
	}
	return pairingTable[round-1], nil
}

// ResolveForRound substitutes team IDs from the seeding order (seed N is
// seeding[N-1]) into the pairing table for a round.
func ResolveForRound(round int, seeding []int) ([FieldsPerRound]Matchup, error) {
	var matchups [FieldsPerRound]Matchup

	pairings, err := PairingsForRound(round)
	if err != nil {
		return matchups, err
	}

	for i, p := range pairings {
		if p.SeedA > len(seeding) || p.SeedB > len(seeding) {
			return [FieldsPerRound]Matchup{}, fmt.Errorf("%w: round %d needs seed %d, seeding has %d teams",
				ErrSeedingIncomplete, round, maxSeed(p), len(seeding))
		}
		matchups[i] = Matchup{
			Field: p.Field,
			TeamA: seeding[p.SeedA-1],
			TeamB: seeding[p.SeedB-1],
		}
	}
	return matchups, nil
}

func maxSeed(p Pairing) int {
	if p.SeedA > p.SeedB {
		return p.SeedA
	}
	return p.SeedB
}
