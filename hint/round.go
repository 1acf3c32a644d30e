// Package hint models one guess with its per-letter feedback and derives the
// constraint that round implies.
package hint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bent101/wordle-assist/constraint"
)

const WordLength = constraint.WordLength

var (
	ErrInvalidRound = errors.New("invalid round")

	ErrWordLen     = fmt.Errorf("%w: guess must be %d letters", ErrInvalidRound, WordLength)
	ErrWordChar    = fmt.Errorf("%w: guess must be lowercase letters a-z", ErrInvalidRound)
	ErrFeedbackLen = fmt.Errorf("%w: feedback must have %d colors", ErrInvalidRound, WordLength)
	ErrColor       = fmt.Errorf("%w: unknown color", ErrInvalidRound)
)

type Color uint8

// Values double as base-3 digits: 0 gray, 1 yellow, 2 green.
const (
	Absent Color = iota
	Present
	Correct
)

func (c Color) Valid() bool {
	return c <= Correct
}

func (c Color) String() string {
	switch c {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Correct:
		return "correct"
	default:
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
}

// ParseColor reads one feedback character.
func ParseColor(r rune) (Color, error) {
	switch r {
	case 'b', 'B', 'x', 'X', '.', '-', '0':
		return Absent, nil
	case 'y', 'Y', '?', '1':
		return Present, nil
	case 'g', 'G', '!', '2':
		return Correct, nil
	}
	return 0, fmt.Errorf("%w %q", ErrColor, r)
}

// Round is one guess paired with its feedback. It is immutable once built.
type Round struct {
	guess  string
	colors [WordLength]Color
}

// New validates and builds a round.
func New(guess string, colors []Color) (Round, error) {
	if len(guess) != WordLength {
		return Round{}, fmt.Errorf("%w, got %q", ErrWordLen, guess)
	}
	for i := 0; i < len(guess); i++ {
		if guess[i] < 'a' || guess[i] > 'z' {
			return Round{}, fmt.Errorf("%w, got %q", ErrWordChar, guess)
		}
	}
	if len(colors) != WordLength {
		return Round{}, fmt.Errorf("%w, got %d", ErrFeedbackLen, len(colors))
	}
	r := Round{guess: guess}
	for i, c := range colors {
		if !c.Valid() {
			return Round{}, fmt.Errorf("%w at index %d: %v", ErrColor, i, c)
		}
		r.colors[i] = c
	}
	return r, nil
}

// Parse builds a round from user input such as ("Crane", "gybbb").
func Parse(guess, pattern string) (Round, error) {
	guess = strings.ToLower(strings.TrimSpace(guess))
	pattern = strings.TrimSpace(pattern)
	colors := make([]Color, 0, WordLength)
	for _, r := range pattern {
		c, err := ParseColor(r)
		if err != nil {
			return Round{}, err
		}
		colors = append(colors, c)
	}
	return New(guess, colors)
}

func (r Round) Guess() string {
	return r.guess
}

func (r Round) Colors() [WordLength]Color {
	return r.colors
}

// Pattern renders the feedback as "g", "y" and "b" characters.
func (r Round) Pattern() string {
	var b strings.Builder
	for _, c := range r.colors {
		b.WriteByte("byg"[c])
	}
	return b.String()
}

// Code returns the feedback as a base-3 number (0..242).
func (r Round) Code() int {
	code := 0
	for _, c := range r.colors {
		code = code*3 + int(c)
	}
	return code
}

// Solved reports whether every letter was marked correct.
func (r Round) Solved() bool {
	return r.colors == [WordLength]Color{Correct, Correct, Correct, Correct, Correct}
}

// Constraint derives what this single round says about the answer.
//
// For each letter of the guess the confirmed minimum is its number of green
// and yellow marks. Any gray mark on a letter pins the count to that minimum
// (zero when the letter never scored). Letters that do occur are excluded
// from both their yellow and gray positions: a gray duplicate still marks a
// slot the letter is not in. The zero Round yields the empty constraint.
func (r Round) Constraint() constraint.Constraint {
	if len(r.guess) != WordLength {
		return constraint.Constraint{}
	}
	var (
		green, yellow, gray [26]int
		excluded            [26]constraint.Positions
		c                   = constraint.Constraint{
			Yellows: map[byte]constraint.Positions{},
			Counts:  map[byte]constraint.Count{},
		}
	)

	for pos := 0; pos < WordLength; pos++ {
		l := r.guess[pos]
		switch r.colors[pos] {
		case Correct:
			c.Greens[pos] = l
			green[l-'a']++
		case Present:
			yellow[l-'a']++
			excluded[l-'a'] = excluded[l-'a'].With(pos)
		case Absent:
			gray[l-'a']++
			excluded[l-'a'] = excluded[l-'a'].With(pos)
		}
	}

	for pos := 0; pos < WordLength; pos++ {
		l := r.guess[pos]
		i := l - 'a'
		if _, done := c.Counts[l]; done {
			continue
		}
		cnt := constraint.Count{Min: green[i] + yellow[i], Max: constraint.Unbounded}
		if gray[i] > 0 {
			cnt.Max = cnt.Min
		}
		c.Counts[l] = cnt
		if cnt.Min > 0 && excluded[i] != 0 {
			c.Yellows[l] = excluded[i]
		}
	}
	return c
}

// String renders the round as colored tiles.
func (r Round) String() string {
	var b strings.Builder
	for _, c := range r.colors {
		switch c {
		case Correct:
			b.WriteString("🟩")
		case Present:
			b.WriteString("🟨")
		default:
			b.WriteString("⬜")
		}
	}
	return r.guess + " " + b.String()
}
