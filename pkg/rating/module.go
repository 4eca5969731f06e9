package rating

import (
	"math"

	"elo/pkg/history"
)

const (
	// InitialRating is every player's rating before their first match.
	InitialRating = 1000
	// K is the default K-factor.
	K = 32
	// D is the default deviation.
	D = 400
)

// Elo calculates rating changes based on the configured factors.
type Elo struct {
	K float64
	D float64
}

// NewElo instantiates the Elo calculator with the default factors.
func NewElo() *Elo {
	return &Elo{K: K, D: D}
}

// ExpectedScore gives the expected chance that the first player wins.
func (e *Elo) ExpectedScore(ratingA, ratingB float64) float64 {
	return 1 / (1 + math.Pow(10, (ratingB-ratingA)/e.D))
}

// Outcome gives both players' new ratings for the given score, each side
// computed from the pre-match ratings of both.
func (e *Elo) Outcome(ratingA, ratingB, score float64) (float64, float64) {
	newA := ratingA + e.K*(score-e.ExpectedScore(ratingA, ratingB))
	newB := ratingB + e.K*((1-score)-e.ExpectedScore(ratingB, ratingA))
	return newA, newB
}

// Standing is one player's replay result.
type Standing struct {
	Rating float64
	Wins   int
	Losses int
}

// Table maps canonical player names to their standings.
type Table map[string]*Standing

// Get looks up a player's standing, defaulting to a fresh one for players
// with no recorded matches. Lookup is case-insensitive.
func (t Table) Get(name string) Standing {
	if standing, ok := t[history.Canonical(name)]; ok {
		return *standing
	}

	return Standing{Rating: InitialRating}
}

// Rating is shorthand for Get(name).Rating.
func (t Table) Rating(name string) float64 {
	return t.Get(name).Rating
}

// Replay derives every participant's standing by applying the ELO update to
// each match in chronological order. It is a pure function of the history,
// which is what makes undo a plain truncation of the record sequence.
func Replay(matches []history.Match) Table {
	elo := NewElo()
	table := make(Table)

	entry := func(name string) *Standing {
		name = history.Canonical(name)
		if standing, ok := table[name]; ok {
			return standing
		}

		standing := &Standing{Rating: InitialRating}
		table[name] = standing
		return standing
	}

	for _, match := range matches {
		winner := entry(match.Winner)
		loser := entry(match.Loser)

		// A match against oneself resolves to the loser-side result, the
		// assignments landing in order on the same entry.
		winner.Rating, loser.Rating = elo.Outcome(winner.Rating, loser.Rating, 1)
		winner.Wins++
		loser.Losses++
	}

	return table
}
