package recommend

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/bent101/wordle-assist/constraint"
	"github.com/bent101/wordle-assist/stats"
)

// scoringContext is built once per request and shared by every word scored.
type scoringContext struct {
	weights    Weights
	constraint constraint.Constraint
	freq       *stats.Frequencies
	round      int

	green, yellow, gray, known mapset.Set[byte]

	trapActive      bool
	trapBonus       float64
	freePositions   []int
	trapTestLetters mapset.Set[byte]
}

func (r *Recommender) newContext(candidates []string, c constraint.Constraint, round int) *scoringContext {
	ctx := &scoringContext{
		weights:    r.weights,
		constraint: c,
		freq:       r.stats.PositionFrequencies(candidates),
		round:      round,
		green:      mapset.NewThreadUnsafeSet[byte](),
		yellow:     mapset.NewThreadUnsafeSet[byte](),
		gray:       mapset.NewThreadUnsafeSet[byte](c.Grays()...),
	}
	for _, l := range c.Greens {
		if l != 0 {
			ctx.green.Add(l)
		}
	}
	for l := range c.Yellows {
		ctx.yellow.Add(l)
	}
	ctx.known = ctx.green.Union(ctx.yellow).Union(ctx.gray)

	if r.trap.MinGreens > 0 && c.GreenCount() >= r.trap.MinGreens {
		ctx.trapActive = true
		ctx.trapBonus = r.trap.Bonus
		ctx.freePositions = c.FreePositions()
		ctx.trapTestLetters = mapset.NewThreadUnsafeSet[byte]()
		for _, w := range candidates {
			for _, pos := range ctx.freePositions {
				if pos < len(w) {
					ctx.trapTestLetters.Add(w[pos])
				}
			}
		}
	}
	return ctx
}

// score combines position frequency, letter state weights and, for
// exploration words, the new-letter bonus, the repeated-letter penalty and
// the trap bonus.
func (ctx *scoringContext) score(w string, exploration bool) float64 {
	var positional float64
	for pos := 0; pos < len(w) && pos < constraint.WordLength; pos++ {
		positional += ctx.freq.At(pos, w[pos])
	}
	score := positionFactor * positional

	distinct := distinctLetters(w)
	for _, l := range distinct {
		switch {
		case ctx.green.Contains(l):
			score += ctx.weights.Green
		case ctx.yellow.Contains(l):
			score += ctx.weights.Yellow
		case ctx.gray.Contains(l):
			score += ctx.weights.Gray
		default:
			score += ctx.weights.Unused
		}
	}

	if !exploration {
		return score
	}

	unknown := 0
	for _, l := range distinct {
		if !ctx.known.Contains(l) {
			unknown++
		}
	}
	score += float64(unknown) * ctx.weights.Exploration

	penalty := constraint.WordLength - len(distinct)
	for _, l := range distinct {
		if ctx.constraint.Count(l).Min > 1 {
			penalty = max(0, penalty-1)
		}
	}
	score -= float64(penalty) * ctx.weights.DuplicatePenalty

	if ctx.trapActive {
		tested := 0
		for _, pos := range ctx.freePositions {
			if pos < len(w) && ctx.trapTestLetters.Contains(w[pos]) {
				tested++
			}
		}
		score += float64(tested) * ctx.trapBonus
	}
	return score
}

// distinctLetters returns the letters of w without repeats, in first
// occurrence order.
func distinctLetters(w string) []byte {
	out := make([]byte, 0, len(w))
	var seen [256]bool
	for i := 0; i < len(w); i++ {
		if !seen[w[i]] {
			seen[w[i]] = true
			out = append(out, w[i])
		}
	}
	return out
}
