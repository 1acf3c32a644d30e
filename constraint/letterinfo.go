package constraint

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// LetterInfo represents what we know about one letter in the answer.
type LetterInfo struct {
	Letter            byte  `json:"letter"`
	MustBeInPositions []int `json:"must_be_in_positions"`
	CantBeInPositions []int `json:"cant_be_in_positions"`
	Frequency         int   `json:"frequency"`
	FrequencyIsExact  bool  `json:"frequency_is_exact"`
}

func (l LetterInfo) Canonical() string {
	return fmt.Sprintf("%c must:%v,cant:%v,freq:%d,exact:%t",
		l.Letter, l.MustBeInPositions, l.CantBeInPositions, l.Frequency, l.FrequencyIsExact)
}

func (l LetterInfo) InTarget() bool {
	return l.Frequency > 0
}

func (l LetterInfo) CouldBeInPosition(pos int) bool {
	if !l.InTarget() && l.FrequencyIsExact {
		return false
	}
	return !slices.Contains(l.CantBeInPositions, pos)
}

func (l LetterInfo) PossiblePositions() []int {
	var possible []int
	for pos := range WordLength {
		if l.CouldBeInPosition(pos) {
			possible = append(possible, pos)
		}
	}
	return possible
}

// Info summarizes everything c knows about letter l.
func (c Constraint) Info(l byte) LetterInfo {
	info := LetterInfo{
		Letter:            l,
		MustBeInPositions: []int{},
		CantBeInPositions: c.Yellows[l].Slice(),
	}
	for pos, g := range c.Greens {
		if g == l {
			info.MustBeInPositions = append(info.MustBeInPositions, pos)
		}
	}
	cnt := c.Count(l)
	info.Frequency = max(cnt.Min, len(info.MustBeInPositions))
	info.FrequencyIsExact = cnt.HasMax() && cnt.Max == info.Frequency
	return info
}

// Letters returns an Info for every letter the constraint mentions, in
// alphabetical order.
func (c Constraint) Letters() []LetterInfo {
	seen := map[byte]bool{}
	for _, l := range c.Greens {
		if l != 0 {
			seen[l] = true
		}
	}
	for l := range c.Yellows {
		seen[l] = true
	}
	for l := range c.Counts {
		seen[l] = true
	}
	out := make([]LetterInfo, 0, len(seen))
	for _, l := range sortedKeys(seen) {
		out = append(out, c.Info(l))
	}
	return out
}
