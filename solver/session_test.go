package solver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bent101/wordle-assist/constraint"
	"github.com/bent101/wordle-assist/dictionary"
	"github.com/bent101/wordle-assist/hint"
	"github.com/bent101/wordle-assist/recommend"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	r, err := recommend.New(dictionary.Default(), nil)
	require.NoError(t, err)
	return NewSession(r)
}

func TestSessionSubmit(t *testing.T) {
	s := newTestSession(t)
	dict := dictionary.Default()

	assert.Equal(t, 1, s.RoundNumber())
	assert.Equal(t, len(dict), s.CandidateCount())
	assert.True(t, s.Constraint().IsEmpty())

	require.NoError(t, s.Submit(mustRound(t, "speed", "bbybb")))
	assert.Equal(t, 2, s.RoundNumber())
	assert.Len(t, s.History(), 1)

	candidates := s.Candidates()
	assert.Subset(t, candidates, []string{"venom", "melon", "below"})
	for _, w := range candidates {
		assert.True(t, Matches(w, s.Constraint()), w)
	}
	assert.Equal(t, len(candidates), s.CandidateCount())
	assert.False(t, s.Solved())
}

func TestSessionRejectsConflictingRound(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.Submit(mustRound(t, "speed", "bbybb")))
	before := s.Candidates()

	// e was excluded from position 2 by the first round
	err := s.Submit(mustRound(t, "speed", "bbgbb"))
	require.ErrorIs(t, err, constraint.ErrConflict)

	var re *RoundError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, 1, re.Index)
	assert.Equal(t, "speed", re.Round.Guess())
	assert.Contains(t, err.Error(), "round 2")

	assert.Equal(t, 2, s.RoundNumber())
	assert.Equal(t, before, s.Candidates())
}

func TestSessionUndoAndReset(t *testing.T) {
	s := newTestSession(t)
	full := s.CandidateCount()

	assert.ErrorIs(t, s.Undo(), ErrNoRounds)

	require.NoError(t, s.Submit(mustRound(t, "crane", "bybbb")))
	afterOne := s.CandidateCount()
	require.NoError(t, s.Submit(mustRound(t, "light", "bbbbb")))
	assert.LessOrEqual(t, s.CandidateCount(), afterOne)

	require.NoError(t, s.Undo())
	assert.Equal(t, 2, s.RoundNumber())
	assert.Equal(t, afterOne, s.CandidateCount())

	s.Reset()
	assert.Equal(t, 1, s.RoundNumber())
	assert.Equal(t, full, s.CandidateCount())
	assert.Empty(t, s.History())
}

func TestSessionReplace(t *testing.T) {
	s := newTestSession(t)
	rounds := []hint.Round{
		mustRound(t, "crane", "bybbb"),
		mustRound(t, "light", "bbbbb"),
	}
	require.NoError(t, s.Replace(rounds))
	assert.Equal(t, 3, s.RoundNumber())

	c, err := Rebuild(rounds)
	require.NoError(t, err)
	assert.True(t, c.Equal(s.Constraint()))
	assert.Equal(t, Filter(dictionary.Default(), c), s.Candidates())

	err = s.Replace([]hint.Round{
		mustRound(t, "crane", "gbbbb"),
		mustRound(t, "rocks", "gbbbb"),
	})
	var re *RoundError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, 1, re.Index)
	assert.Equal(t, 3, s.RoundNumber(), "failed replace leaves the session as it was")
}

func TestSessionSolvedAndRecommend(t *testing.T) {
	s := newTestSession(t)

	res, err := s.Recommend(3)
	require.NoError(t, err)
	assert.Len(t, res.Candidates, 3)
	assert.Empty(t, res.Explorations, "every word is still a candidate")

	require.NoError(t, s.Submit(mustRound(t, "crane", "bybbb")))
	res, err = s.Recommend(3)
	require.NoError(t, err)
	assert.Len(t, res.Explorations, 3)

	s.Reset()

	require.NoError(t, s.Submit(mustRound(t, "venom", "ggggg")))
	assert.True(t, s.Solved())
	assert.Equal(t, []string{"venom"}, s.Candidates())
}

func TestRebuildEmpty(t *testing.T) {
	c, err := Rebuild(nil)
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}

func TestSessionSubmitZeroRound(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.Submit(hint.Round{}))
	assert.Equal(t, len(dictionary.Default()), s.CandidateCount())
}
