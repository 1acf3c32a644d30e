package solver

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/bent101/wordle-assist/constraint"
	"github.com/bent101/wordle-assist/hint"
	"github.com/bent101/wordle-assist/recommend"
)

var ErrNoRounds = errors.New("no rounds to undo")

// RoundError points at the round whose feedback contradicts the rounds
// before it.
type RoundError struct {
	Index int
	Round hint.Round
	Err   error
}

func (e *RoundError) Error() string {
	return fmt.Sprintf("round %d (%s): %v", e.Index+1, e.Round.Guess(), e.Err)
}

func (e *RoundError) Unwrap() error {
	return e.Err
}

// Session is the state of one game: the submitted rounds and everything
// derived from them. Derived state is always rebuilt from the whole history.
// A Session is not safe for concurrent use.
type Session struct {
	recommender *recommend.Recommender
	dictionary  []string

	history    []hint.Round
	constraint constraint.Constraint
	candidates []string
}

func NewSession(r *recommend.Recommender) *Session {
	s := &Session{
		recommender: r,
		dictionary:  r.Dictionary(),
	}
	s.Reset()
	return s
}

// Submit appends a round. On a conflict the session is left unchanged.
func (s *Session) Submit(r hint.Round) error {
	return s.Replace(append(slices.Clone(s.history), r))
}

// Replace swaps the whole history and rebuilds the constraint and candidate
// list from it. On a conflict the session is left unchanged.
func (s *Session) Replace(rounds []hint.Round) error {
	c, err := Rebuild(rounds)
	if err != nil {
		return err
	}
	s.history = slices.Clone(rounds)
	s.constraint = c
	s.candidates = Filter(s.dictionary, c)
	return nil
}

// Undo drops the last round.
func (s *Session) Undo() error {
	if len(s.history) == 0 {
		return ErrNoRounds
	}
	return s.Replace(s.history[:len(s.history)-1])
}

func (s *Session) Reset() {
	s.history = nil
	s.constraint = constraint.Constraint{}
	s.candidates = slices.Clone(s.dictionary)
}

// RoundNumber is the 1-based number of the next round to play.
func (s *Session) RoundNumber() int {
	return len(s.history) + 1
}

func (s *Session) History() []hint.Round {
	return slices.Clone(s.history)
}

func (s *Session) Constraint() constraint.Constraint {
	return s.constraint.Clone()
}

func (s *Session) Candidates() []string {
	return slices.Clone(s.candidates)
}

func (s *Session) CandidateCount() int {
	return len(s.candidates)
}

// Solved reports whether the last round was all green.
func (s *Session) Solved() bool {
	return len(s.history) > 0 && s.history[len(s.history)-1].Solved()
}

// Recommend ranks the next guesses for the current state.
func (s *Session) Recommend(topN int) (recommend.Result, error) {
	return s.recommender.Recommend(s.candidates, s.constraint, s.RoundNumber(), topN)
}

// Rebuild folds every round's constraint into one. The first round that
// conflicts with the rounds before it is reported as a *RoundError.
func Rebuild(rounds []hint.Round) (constraint.Constraint, error) {
	var acc constraint.Constraint
	for i, r := range rounds {
		next, err := acc.Merge(r.Constraint())
		if err != nil {
			return constraint.Constraint{}, &RoundError{Index: i, Round: r, Err: err}
		}
		acc = next
	}
	return acc, nil
}
