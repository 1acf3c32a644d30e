// Package constraint holds the accumulated knowledge about the answer word:
// locked positions, excluded positions per letter, and per-letter occurrence
// bounds. A Constraint is treated as an immutable value; Merge returns a new
// one and leaves its inputs untouched.
package constraint

import (
	"fmt"
	"sort"
	"strings"
)

// WordLength is the fixed length of every word handled by the solver.
const WordLength = 5

// Unbounded marks a Count with no known upper limit.
const Unbounded = -1

// Count bounds the number of occurrences of one letter in the answer.
type Count struct {
	Min int
	Max int // Unbounded when no absent mark has pinned the count
}

func (c Count) HasMax() bool {
	return c.Max != Unbounded
}

// Allows reports whether n occurrences satisfy the bounds.
func (c Count) Allows(n int) bool {
	if n < c.Min {
		return false
	}
	return !c.HasMax() || n <= c.Max
}

func (c Count) String() string {
	if !c.HasMax() {
		return fmt.Sprintf("(%d, -)", c.Min)
	}
	return fmt.Sprintf("(%d, %d)", c.Min, c.Max)
}

// intersect keeps the tighter of both bounds.
func (c Count) intersect(o Count) Count {
	out := Count{Min: max(c.Min, o.Min), Max: c.Max}
	switch {
	case !c.HasMax():
		out.Max = o.Max
	case o.HasMax():
		out.Max = min(c.Max, o.Max)
	}
	return out
}

// Positions is a set of word positions stored as a bitmask.
type Positions uint8

func PositionsOf(idxs ...int) Positions {
	var p Positions
	for _, i := range idxs {
		p = p.With(i)
	}
	return p
}

func (p Positions) Has(i int) bool {
	return i >= 0 && i < WordLength && p&(1<<i) != 0
}

func (p Positions) With(i int) Positions {
	if i < 0 || i >= WordLength {
		return p
	}
	return p | 1<<i
}

func (p Positions) Len() int {
	n := 0
	for i := range WordLength {
		if p.Has(i) {
			n++
		}
	}
	return n
}

func (p Positions) Slice() []int {
	out := make([]int, 0, WordLength)
	for i := range WordLength {
		if p.Has(i) {
			out = append(out, i)
		}
	}
	return out
}

func (p Positions) String() string {
	return fmt.Sprint(p.Slice())
}

// Constraint is the filtering state accumulated from feedback rounds.
// The zero value imposes no restriction.
type Constraint struct {
	// Greens locks a letter at a position; 0 means the position is free.
	Greens [WordLength]byte

	// Yellows lists, per letter known to be present, the positions it is not at.
	Yellows map[byte]Positions

	// Counts bounds the number of occurrences of each letter seen so far.
	Counts map[byte]Count
}

// Grays returns the letters proven absent (Max == 0), sorted. It is always
// derived from Counts.
func (c Constraint) Grays() []byte {
	var out []byte
	for l, cnt := range c.Counts {
		if cnt.Max == 0 {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (c Constraint) IsGray(l byte) bool {
	cnt, ok := c.Counts[l]
	return ok && cnt.Max == 0
}

// GreenCount returns the number of locked positions.
func (c Constraint) GreenCount() int {
	n := 0
	for _, l := range c.Greens {
		if l != 0 {
			n++
		}
	}
	return n
}

// FreePositions returns the positions without a locked letter.
func (c Constraint) FreePositions() []int {
	out := make([]int, 0, WordLength)
	for i, l := range c.Greens {
		if l == 0 {
			out = append(out, i)
		}
	}
	return out
}

// Count returns the bounds for l, or the unrestricted bounds if l was never seen.
func (c Constraint) Count(l byte) Count {
	if cnt, ok := c.Counts[l]; ok {
		return cnt
	}
	return Count{Min: 0, Max: Unbounded}
}

func (c Constraint) IsEmpty() bool {
	return c.GreenCount() == 0 && len(c.Yellows) == 0 && len(c.Counts) == 0
}

func (c Constraint) Clone() Constraint {
	out := Constraint{Greens: c.Greens}
	if c.Yellows != nil {
		out.Yellows = make(map[byte]Positions, len(c.Yellows))
		for l, p := range c.Yellows {
			out.Yellows[l] = p
		}
	}
	if c.Counts != nil {
		out.Counts = make(map[byte]Count, len(c.Counts))
		for l, cnt := range c.Counts {
			out.Counts[l] = cnt
		}
	}
	return out
}

// Equal compares two constraints structurally. A nil map equals an empty one.
func (c Constraint) Equal(o Constraint) bool {
	if c.Greens != o.Greens || len(c.Yellows) != len(o.Yellows) || len(c.Counts) != len(o.Counts) {
		return false
	}
	for l, p := range c.Yellows {
		if q, ok := o.Yellows[l]; !ok || p != q {
			return false
		}
	}
	for l, cnt := range c.Counts {
		if d, ok := o.Counts[l]; !ok || cnt != d {
			return false
		}
	}
	return true
}

// Validate checks the internal invariants: bounds with Min > Max, and a
// locked letter that is also excluded from its own position.
func (c Constraint) Validate() error {
	for _, l := range sortedKeys(c.Counts) {
		cnt := c.Counts[l]
		if cnt.HasMax() && cnt.Min > cnt.Max {
			return &ConflictError{Kind: CountConflict, Letter: l, Min: cnt.Min, Max: cnt.Max, Position: -1}
		}
	}
	for pos, l := range c.Greens {
		if l != 0 && c.Yellows[l].Has(pos) {
			return &ConflictError{Kind: GreenExcluded, Letter: l, Position: pos}
		}
	}
	return nil
}

func (c Constraint) String() string {
	var b strings.Builder
	b.WriteString("greens=[")
	for i, l := range c.Greens {
		if l == 0 {
			b.WriteByte('_')
		} else {
			b.WriteByte(l)
		}
		if i < WordLength-1 {
			b.WriteByte(' ')
		}
	}
	b.WriteString("] yellows={")
	for i, l := range sortedKeys(c.Yellows) {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%c:%v", l, c.Yellows[l])
	}
	b.WriteString("} counts={")
	for i, l := range sortedKeys(c.Counts) {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%c:%v", l, c.Counts[l])
	}
	b.WriteString("} grays=")
	b.WriteString(string(c.Grays()))
	return b.String()
}

func sortedKeys[V any](m map[byte]V) []byte {
	keys := make([]byte, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
