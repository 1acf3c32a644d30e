// Package stats computes per-position letter frequencies over word sets and
// memoizes them by the exact content of the set.
package stats

import (
	"sort"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/bent101/wordle-assist/constraint"
)

// DefaultThreshold is the candidate count below which the full-dictionary
// frequencies are used instead.
const DefaultThreshold = 5

// DefaultCacheLimit caps the number of memoized frequency tables.
const DefaultCacheLimit = 1024

// keySep cannot occur in a dictionary word.
const keySep = "\x00"

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wordle_stats_cache_hits_total",
		Help: "Position frequency requests served from the cache",
	})
	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wordle_stats_cache_misses_total",
		Help: "Position frequency requests that computed a new table",
	})
)

// Frequencies holds, for each position, the share of words with each letter
// there.
type Frequencies [constraint.WordLength][26]float64

// At returns the frequency of letter l at pos, 0 for anything outside a-z.
func (f *Frequencies) At(pos int, l byte) float64 {
	if pos < 0 || pos >= constraint.WordLength || l < 'a' || l > 'z' {
		return 0
	}
	return f[pos][l-'a']
}

// LetterStats is safe for concurrent use.
type LetterStats struct {
	threshold int
	limit     int
	full      *Frequencies

	mu     sync.Mutex
	cache  map[string]*Frequencies
	order  []string // insertion order, oldest first
	hits   int
	misses int
}

type Option func(*LetterStats)

// WithThreshold sets the minimum candidate count for candidate-specific
// frequencies.
func WithThreshold(n int) Option {
	return func(s *LetterStats) {
		s.threshold = n
	}
}

// WithCacheLimit caps the cache at n tables, evicting the oldest entry
// first. n <= 0 removes the cap.
func WithCacheLimit(n int) Option {
	return func(s *LetterStats) {
		s.limit = n
	}
}

func New(dictionary []string, opts ...Option) *LetterStats {
	s := &LetterStats{
		threshold: DefaultThreshold,
		limit:     DefaultCacheLimit,
		cache:     make(map[string]*Frequencies),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.full = compute(dictionary)
	return s
}

// Full returns the frequencies of the whole dictionary.
func (s *LetterStats) Full() *Frequencies {
	return s.full
}

// PositionFrequencies returns the frequency table for candidates. Sets
// smaller than the threshold get the full-dictionary table. Otherwise the
// table is looked up by the set's content, so the same words in any order
// share one entry. The returned table must not be modified.
func (s *LetterStats) PositionFrequencies(candidates []string) *Frequencies {
	if len(candidates) < s.threshold {
		return s.full
	}

	words := setOf(candidates)
	key := strings.Join(words, keySep)

	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.cache[key]; ok {
		s.hits++
		cacheHits.Inc()
		return f
	}
	f := compute(words)
	if s.limit > 0 && len(s.cache) >= s.limit {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.cache, oldest)
	}
	s.cache[key] = f
	s.order = append(s.order, key)
	s.misses++
	cacheMisses.Inc()
	return f
}

func (s *LetterStats) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string]*Frequencies)
	s.order = nil
}

func (s *LetterStats) CacheSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cache)
}

// CacheStats returns how many lookups hit and missed since construction.
func (s *LetterStats) CacheStats() (hits, misses int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits, s.misses
}

// LetterFrequencies returns the share of all letter slots in words taken by
// each letter, ignoring position.
func LetterFrequencies(words []string) map[byte]float64 {
	out := make(map[byte]float64)
	if len(words) == 0 {
		return out
	}
	var counts [26]int
	total := 0
	for _, w := range words {
		for i := 0; i < len(w); i++ {
			if w[i] >= 'a' && w[i] <= 'z' {
				counts[w[i]-'a']++
				total++
			}
		}
	}
	for i, n := range counts {
		if n > 0 {
			out[byte('a'+i)] = float64(n) / float64(total)
		}
	}
	return out
}

func compute(words []string) *Frequencies {
	var f Frequencies
	if len(words) == 0 {
		return &f
	}
	var counts [constraint.WordLength][26]int
	for _, w := range words {
		for pos := 0; pos < constraint.WordLength && pos < len(w); pos++ {
			if w[pos] >= 'a' && w[pos] <= 'z' {
				counts[pos][w[pos]-'a']++
			}
		}
	}
	total := float64(len(words))
	for pos := range counts {
		for l, n := range counts[pos] {
			f[pos][l] = float64(n) / total
		}
	}
	return &f
}

// setOf returns the distinct words sorted.
func setOf(words []string) []string {
	out := make([]string, len(words))
	copy(out, words)
	sort.Strings(out)
	n := 0
	for i, w := range out {
		if i == 0 || w != out[n-1] {
			out[n] = w
			n++
		}
	}
	return out[:n]
}
