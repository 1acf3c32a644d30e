package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bent101/wordle-assist/dictionary"
	"github.com/bent101/wordle-assist/hint"
	"github.com/bent101/wordle-assist/recommend"
	"github.com/bent101/wordle-assist/solver"
)

const (
	maxGuesses = 6
	maxTurns   = 12
)

var (
	simSample  int
	simWorkers int
	simOpener  string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play every dictionary word as the answer and report guess counts",
	Long: `Plays one game per target word, always guessing the top-ranked candidate,
and prints how many guesses each game needed.`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&simSample, "sample", 0, "Play only this many evenly spaced targets (0 = all)")
	simulateCmd.Flags().IntVar(&simWorkers, "workers", runtime.NumCPU(), "Games played in parallel")
	simulateCmd.Flags().StringVar(&simOpener, "start", "", "Fixed first guess")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	eng, err := loadEngine()
	if err != nil {
		return err
	}
	if simOpener != "" && !dictionary.IsValid(simOpener) {
		return fmt.Errorf("invalid opener %q", simOpener)
	}

	targets := sampleTargets(eng.dictionary, simSample)
	fmt.Printf("simulating %d games\n", len(targets))
	bar := progressbar.Default(int64(len(targets)))

	start := time.Now()
	turns := make([]int, len(targets))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(1, simWorkers))
	for i, target := range targets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			n, err := playGame(eng.recommender, target, simOpener)
			if err != nil {
				return fmt.Errorf("target %q: %w", target, err)
			}
			turns[i] = n
			bar.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	hits, misses := eng.stats.CacheStats()
	logger.Info("simulation finished", "games", len(targets), "elapsed", time.Since(start), "cache_hits", hits, "cache_misses", misses)
	printDistribution(turns)
	return nil
}

// playGame returns the number of guesses needed to find target, or
// maxTurns+1 if it was not found.
func playGame(r *recommend.Recommender, target, opener string) (int, error) {
	s := solver.NewSession(r)
	for turn := 1; turn <= maxTurns; turn++ {
		guess := opener
		if turn > 1 || guess == "" {
			res, err := s.Recommend(1)
			if err != nil {
				return 0, err
			}
			guess = res.Candidates[0].Word
		}
		rd, err := hint.Score(guess, target)
		if err != nil {
			return 0, err
		}
		if err := s.Submit(rd); err != nil {
			return 0, err
		}
		if rd.Solved() {
			return turn, nil
		}
	}
	return maxTurns + 1, nil
}

func sampleTargets(words []string, n int) []string {
	if n <= 0 || n >= len(words) {
		return words
	}
	out := make([]string, 0, n)
	step := float64(len(words)) / float64(n)
	for i := range n {
		out = append(out, words[int(float64(i)*step)])
	}
	return out
}

func printDistribution(turns []int) {
	if len(turns) == 0 {
		return
	}
	counts := make([]int, maxTurns+2)
	total, failed := 0, 0
	for _, n := range turns {
		counts[n]++
		total += n
		if n > maxGuesses {
			failed++
		}
	}
	for n := 1; n <= maxTurns; n++ {
		if counts[n] > 0 {
			fmt.Printf("%2d guesses: %d\n", n, counts[n])
		}
	}
	if counts[maxTurns+1] > 0 {
		fmt.Printf("unsolved:   %d\n", counts[maxTurns+1])
	}
	fmt.Printf("average %.3f, failed (> %d guesses) %d of %d\n",
		float64(total)/float64(len(turns)), maxGuesses, failed, len(turns))
}
