package hint

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Score computes the feedback Wordle shows for guess when the answer is
// answer. Greens are assigned first; each remaining guess letter turns
// yellow only while unmatched copies of it are left in the answer.
func Score(guess, answer string) (Round, error) {
	if len(guess) != WordLength || len(answer) != WordLength {
		return Round{}, fmt.Errorf("%w: scoring %q against %q", ErrWordLen, guess, answer)
	}

	var colors [WordLength]Color

	// greens
	for i := 0; i < WordLength; i++ {
		if guess[i] == answer[i] {
			colors[i] = Correct
		}
	}

	// answer letters not already claimed by a green
	unHintedAtChars := make([]byte, 0, WordLength)
	for i := 0; i < WordLength; i++ {
		if colors[i] != Correct {
			unHintedAtChars = append(unHintedAtChars, answer[i])
		}
	}

	for i := 0; i < WordLength; i++ {
		if colors[i] == Correct {
			continue
		}
		if j := slices.Index(unHintedAtChars, guess[i]); j >= 0 {
			colors[i] = Present
			unHintedAtChars = slices.Delete(unHintedAtChars, j, j+1)
		}
	}

	return New(guess, colors[:])
}
