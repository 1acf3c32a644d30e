// Package solver narrows a dictionary to the words consistent with the
// feedback so far and keeps the per-game session state.
package solver

import (
	"github.com/bent101/wordle-assist/constraint"
)

// Filter returns the words of dict that satisfy c, in dictionary order.
func Filter(dict []string, c constraint.Constraint) []string {
	out := make([]string, 0, len(dict))
	for _, w := range dict {
		if Matches(w, c) {
			out = append(out, w)
		}
	}
	return out
}

// Matches reports whether word is consistent with c: every locked position
// holds its letter, every excluded letter occurs but not at an excluded
// position, and every letter count is within bounds.
func Matches(word string, c constraint.Constraint) bool {
	if len(word) != constraint.WordLength {
		return false
	}
	for pos, l := range c.Greens {
		if l != 0 && word[pos] != l {
			return false
		}
	}

	var counts [256]int
	for i := 0; i < len(word); i++ {
		counts[word[i]]++
	}

	for l, excluded := range c.Yellows {
		if counts[l] == 0 {
			return false
		}
		for pos := 0; pos < constraint.WordLength; pos++ {
			if excluded.Has(pos) && word[pos] == l {
				return false
			}
		}
	}

	for l, cnt := range c.Counts {
		if !cnt.Allows(counts[l]) {
			return false
		}
	}
	return true
}
