package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bent101/wordle-assist/constraint"
)

var scoreDict = []string{"abcde", "fghij", "abxyz", "klmno", "abcdz"}

func newTestRecommender(t *testing.T, dict []string, opts ...Option) *Recommender {
	t.Helper()
	r, err := New(dict, nil, opts...)
	require.NoError(t, err)
	return r
}

func TestScoreNothingKnown(t *testing.T) {
	r := newTestRecommender(t, scoreDict)
	var c constraint.Constraint

	// positions: a .6 + b .6 + c .4 + d .4 + e .2 = 2.2, doubled
	// letters: five unused at 8
	assert.InDelta(t, 44.4, r.Score("abcde", scoreDict, c, 1, false), 1e-9)
	// plus five unknown letters at 12
	assert.InDelta(t, 104.4, r.Score("abcde", scoreDict, c, 1, true), 1e-9)
}

func TestScoreLetterStates(t *testing.T) {
	r := newTestRecommender(t, scoreDict)
	c := constraint.Constraint{
		Greens:  [constraint.WordLength]byte{0: 'a'},
		Yellows: map[byte]constraint.Positions{'b': constraint.PositionsOf(2)},
		Counts: map[byte]constraint.Count{
			'a': {Min: 1, Max: constraint.Unbounded},
			'b': {Min: 1, Max: constraint.Unbounded},
			'c': {Min: 0, Max: 0},
		},
	}

	// 4.4 + green 10 + yellow 5 + gray -5 + two unused 16
	assert.InDelta(t, 30.4, r.Score("abcde", scoreDict, c, 2, false), 1e-9)
	// plus d and e unknown
	assert.InDelta(t, 54.4, r.Score("abcde", scoreDict, c, 2, true), 1e-9)
}

func TestScoreDuplicatePenalty(t *testing.T) {
	r := newTestRecommender(t, scoreDict)

	// positions: only a at 0 scores, .6 doubled; three distinct unused
	// letters, all unknown; two repeats at 15
	assert.InDelta(t, 1.2+24+36-30, r.Score("aabbc", scoreDict, constraint.Constraint{}, 1, true), 1e-9)
	assert.InDelta(t, 1.2+24, r.Score("aabbc", scoreDict, constraint.Constraint{}, 1, false), 1e-9,
		"candidates are never penalized")

	// a known repeated letter forgives one repeat
	c := constraint.Constraint{Counts: map[byte]constraint.Count{'a': {Min: 2, Max: constraint.Unbounded}}}
	assert.InDelta(t, 1.2+24+36-15, r.Score("aabbc", scoreDict, c, 1, true), 1e-9)
}

func TestScoreCustomWeights(t *testing.T) {
	w := Weights{Unused: 1}
	r := newTestRecommender(t, scoreDict, WithWeights(w))
	assert.Equal(t, w, r.Weights())
	assert.InDelta(t, 4.4+5, r.Score("abcde", scoreDict, constraint.Constraint{}, 1, true), 1e-9)
}

func TestTrapBonus(t *testing.T) {
	dict := []string{"abcde", "abcdz", "abcxy", "abcmn", "abcop", "dzxym", "qqqqq"}
	candidates := dict[:5]
	c := constraint.Constraint{
		Greens: [constraint.WordLength]byte{'a', 'b', 'c'},
		Counts: map[byte]constraint.Count{
			'a': {Min: 1, Max: constraint.Unbounded},
			'b': {Min: 1, Max: constraint.Unbounded},
			'c': {Min: 1, Max: constraint.Unbounded},
		},
	}

	withTrap := newTestRecommender(t, dict)
	withoutTrap := newTestRecommender(t, dict, WithTrap(TrapConfig{}))
	custom := newTestRecommender(t, dict, WithTrap(TrapConfig{MinGreens: 3, Bonus: 7}))

	base := withoutTrap.Score("dzxym", candidates, c, 3, true)
	// y and m at the free positions both occur there among the candidates
	assert.InDelta(t, base+40, withTrap.Score("dzxym", candidates, c, 3, true), 1e-9)
	assert.InDelta(t, base+14, custom.Score("dzxym", candidates, c, 3, true), 1e-9)

	// q never occurs at a free position
	assert.InDelta(t,
		withoutTrap.Score("qqqqq", candidates, c, 3, true),
		withTrap.Score("qqqqq", candidates, c, 3, true), 1e-9)

	// candidates are scored without the trap term
	assert.InDelta(t,
		withoutTrap.Score("abcde", candidates, c, 3, false),
		withTrap.Score("abcde", candidates, c, 3, false), 1e-9)

	// two greens do not activate it
	c.Greens[2] = 0
	assert.InDelta(t,
		withoutTrap.Score("dzxym", candidates, c, 3, true),
		withTrap.Score("dzxym", candidates, c, 3, true), 1e-9)
}

func TestDistinctLetters(t *testing.T) {
	assert.Equal(t, []byte("sped"), distinctLetters("speed"))
	assert.Equal(t, []byte("abc"), distinctLetters("abcab"))
}
