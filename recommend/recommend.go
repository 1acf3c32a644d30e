// Package recommend ranks next guesses. Words still consistent with the
// feedback are scored as candidates; the rest of the dictionary, minus
// words using a letter known to be absent, is scored as exploration guesses.
package recommend

import (
	"errors"
	"fmt"
	"log/slog"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/bent101/wordle-assist/constraint"
	"github.com/bent101/wordle-assist/stats"
)

var (
	ErrEmptyDictionary = errors.New("recommend: empty dictionary")

	ErrInvalidRequest  = errors.New("invalid recommendation request")
	ErrEmptyCandidates = fmt.Errorf("%w: no candidates left, the feedback is probably mis-entered", ErrInvalidRequest)
)

// positionFactor scales the summed position frequencies.
const positionFactor = 2.0

// TrapConfig controls the bonus for exploration words that test many
// letters at the free positions once most positions are locked.
type TrapConfig struct {
	MinGreens int
	Bonus     float64
}

func DefaultTrap() TrapConfig {
	return TrapConfig{MinGreens: 3, Bonus: 20}
}

type Scored struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

type Result struct {
	Candidates   []Scored `json:"candidates"`
	Explorations []Scored `json:"explorations"`
}

var byScore = Descending(
	func(s Scored) float64 { return s.Score },
	func(s Scored) string { return s.Word },
)

type Recommender struct {
	dictionary []string
	stats      *stats.LetterStats
	index      *letterIndex
	weights    Weights
	trap       TrapConfig
	logger     *slog.Logger
}

type Option func(*Recommender)

func WithWeights(w Weights) Option {
	return func(r *Recommender) {
		r.weights = w
	}
}

func WithTrap(t TrapConfig) Option {
	return func(r *Recommender) {
		r.trap = t
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Recommender) {
		r.logger = l
	}
}

// New builds a recommender over dictionary. The dictionary must be
// non-empty and is not modified. st may be nil, in which case statistics are
// built from the dictionary.
func New(dictionary []string, st *stats.LetterStats, opts ...Option) (*Recommender, error) {
	if len(dictionary) == 0 {
		return nil, ErrEmptyDictionary
	}
	if st == nil {
		st = stats.New(dictionary)
	}
	r := &Recommender{
		dictionary: dictionary,
		stats:      st,
		index:      newLetterIndex(dictionary),
		weights:    DefaultWeights(),
		trap:       DefaultTrap(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func (r *Recommender) Weights() Weights {
	return r.weights
}

func (r *Recommender) Dictionary() []string {
	return r.dictionary
}

// Recommend returns up to topN candidate and exploration guesses, each best
// first. candidates are the words still consistent with c.
func (r *Recommender) Recommend(candidates []string, c constraint.Constraint, round, topN int) (Result, error) {
	if round < 1 {
		return Result{}, fmt.Errorf("%w: round number must be >= 1, got %d", ErrInvalidRequest, round)
	}
	if topN < 1 {
		return Result{}, fmt.Errorf("%w: list size must be >= 1, got %d", ErrInvalidRequest, topN)
	}
	if len(candidates) == 0 {
		return Result{}, ErrEmptyCandidates
	}
	if err := c.Validate(); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	grays := c.Grays()
	var absent [26]bool
	for _, l := range grays {
		absent[l-'a'] = true
	}

	candidateSet := mapset.NewThreadUnsafeSet[string]()
	candidateWords := make([]string, 0, len(candidates))
	for _, w := range candidates {
		if usesAny(w, &absent) || !candidateSet.Add(w) {
			continue
		}
		candidateWords = append(candidateWords, w)
	}

	pool := r.index.without(grays)
	explorationWords := make([]string, 0, len(pool))
	for _, w := range pool {
		if !candidateSet.Contains(w) {
			explorationWords = append(explorationWords, w)
		}
	}

	ctx := r.newContext(candidates, c, round)

	scoredCandidates := make([]Scored, len(candidateWords))
	for i, w := range candidateWords {
		scoredCandidates[i] = Scored{Word: w, Score: ctx.score(w, false)}
	}
	scoredExplorations := make([]Scored, len(explorationWords))
	for i, w := range explorationWords {
		scoredExplorations[i] = Scored{Word: w, Score: ctx.score(w, true)}
	}

	r.logger.Debug("scored words",
		"round", round,
		"candidates", len(candidateWords),
		"explorations", len(explorationWords),
		"absent", string(grays),
		"trap", ctx.trapActive,
	)

	return Result{
		Candidates:   TopN(scoredCandidates, topN, byScore),
		Explorations: TopN(scoredExplorations, topN, byScore),
	}, nil
}

// Score returns the score of one word under the same rules Recommend uses.
func (r *Recommender) Score(word string, candidates []string, c constraint.Constraint, round int, exploration bool) float64 {
	return r.newContext(candidates, c, round).score(word, exploration)
}

func usesAny(w string, letters *[26]bool) bool {
	for i := 0; i < len(w); i++ {
		if w[i] >= 'a' && w[i] <= 'z' && letters[w[i]-'a'] {
			return true
		}
	}
	return false
}
