package constraint

import (
	"errors"
	"fmt"
)

// ErrConflict is matched by every *ConflictError.
var ErrConflict = errors.New("conflicting constraints")

type ConflictKind int

const (
	// GreenConflict: one position locked to two different letters.
	GreenConflict ConflictKind = iota
	// GreenExcluded: a letter locked at a position that is also excluded for it.
	GreenExcluded
	// CountConflict: merged bounds with Min > Max.
	CountConflict
)

func (k ConflictKind) String() string {
	switch k {
	case GreenConflict:
		return "green conflict"
	case GreenExcluded:
		return "green excluded"
	case CountConflict:
		return "count conflict"
	default:
		return "unknown conflict"
	}
}

// ConflictError describes contradictory feedback. Position is -1 for
// count conflicts.
type ConflictError struct {
	Kind     ConflictKind
	Position int
	Letter   byte
	Other    byte
	Min, Max int
}

func (e *ConflictError) Error() string {
	switch e.Kind {
	case GreenConflict:
		return fmt.Sprintf("position %d is locked to both %q and %q", e.Position, e.Letter, e.Other)
	case GreenExcluded:
		return fmt.Sprintf("letter %q is locked at position %d but also excluded from it", e.Letter, e.Position)
	case CountConflict:
		return fmt.Sprintf("letter %q needs at least %d but at most %d occurrences", e.Letter, e.Min, e.Max)
	default:
		return ErrConflict.Error()
	}
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// Merge combines c with o. Greens are unioned, exclusions are unioned per
// letter and count bounds are intersected. The result is never less
// restrictive than either input. Merge is commutative and associative up to
// which letter a conflict error reports.
func (c Constraint) Merge(o Constraint) (Constraint, error) {
	out := Constraint{Greens: c.Greens}
	for pos, l := range o.Greens {
		if l == 0 {
			continue
		}
		if cur := out.Greens[pos]; cur != 0 && cur != l {
			return Constraint{}, &ConflictError{Kind: GreenConflict, Position: pos, Letter: cur, Other: l}
		}
		out.Greens[pos] = l
	}

	if len(c.Yellows)+len(o.Yellows) > 0 {
		out.Yellows = make(map[byte]Positions, len(c.Yellows)+len(o.Yellows))
		for l, p := range c.Yellows {
			out.Yellows[l] |= p
		}
		for l, p := range o.Yellows {
			out.Yellows[l] |= p
		}
		for l, p := range out.Yellows {
			if p == 0 {
				delete(out.Yellows, l)
			}
		}
	}

	for pos, l := range out.Greens {
		if l != 0 && out.Yellows[l].Has(pos) {
			return Constraint{}, &ConflictError{Kind: GreenExcluded, Position: pos, Letter: l}
		}
	}

	if len(c.Counts)+len(o.Counts) > 0 {
		out.Counts = make(map[byte]Count, len(c.Counts)+len(o.Counts))
		for l := range c.Counts {
			out.Counts[l] = c.Count(l).intersect(o.Count(l))
		}
		for l := range o.Counts {
			if _, ok := out.Counts[l]; !ok {
				out.Counts[l] = c.Count(l).intersect(o.Count(l))
			}
		}
		for _, l := range sortedKeys(out.Counts) {
			cnt := out.Counts[l]
			if cnt.HasMax() && cnt.Min > cnt.Max {
				return Constraint{}, &ConflictError{Kind: CountConflict, Position: -1, Letter: l, Min: cnt.Min, Max: cnt.Max}
			}
		}
	}

	return out, nil
}

// MergeAll left-folds cs starting from the empty constraint. Zero
// constraints yield the empty constraint.
func MergeAll(cs ...Constraint) (Constraint, error) {
	var acc Constraint
	for i, c := range cs {
		next, err := acc.Merge(c)
		if err != nil {
			return Constraint{}, fmt.Errorf("merging constraint %d: %w", i, err)
		}
		acc = next
	}
	return acc, nil
}
