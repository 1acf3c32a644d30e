package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bent101/wordle-assist/hint"
	"github.com/bent101/wordle-assist/recommend"
	"github.com/bent101/wordle-assist/solver"
	"github.com/bent101/wordle-assist/stats"
)

var solveTopN int

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Interactive solver reading rounds from stdin",
	Long: `Enter each round as the guess followed by its feedback, one letter per
tile: g (green), y (yellow), b (gray). For example:

  crane bygbb

Other commands:
  p       print the possible answers
  info    show what is known about each letter
  undo    drop the last round
  reset   start a new game
  q       quit`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().IntVarP(&solveTopN, "top", "n", 5, "Number of suggestions per list")
}

func runSolve(cmd *cobra.Command, args []string) error {
	eng, err := loadEngine()
	if err != nil {
		return err
	}
	session := solver.NewSession(eng.recommender)
	r := newRenderer(cmd.OutOrStdout())
	out := cmd.OutOrStdout()

	showTopLetters(out, eng.dictionary)
	suggest(r, session)

	reader := bufio.NewReader(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "> ")
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("reading input: %w", err)
		}
		eof := errors.Is(err, io.EOF)

		fields := strings.Fields(line)
		switch {
		case len(fields) == 0:
		case fields[0] == "q" || fields[0] == "quit":
			return nil
		case fields[0] == "p":
			for _, w := range session.Candidates() {
				fmt.Fprintln(out, w)
			}
		case fields[0] == "info":
			for _, info := range session.Constraint().Letters() {
				fmt.Fprintf(out, "  %s possible at %v\n", info.Canonical(), info.PossiblePositions())
			}
		case fields[0] == "undo":
			if err := session.Undo(); err != nil {
				fmt.Fprintln(out, err)
			}
			suggest(r, session)
		case fields[0] == "reset":
			session.Reset()
			suggest(r, session)
		case len(fields) == 2:
			rd, err := hint.Parse(fields[0], fields[1])
			if err != nil {
				fmt.Fprintln(out, err)
				break
			}
			if err := session.Submit(rd); err != nil {
				logger.Warn("round rejected", "guess", rd.Guess(), "error", err)
				fmt.Fprintf(out, "%v\ncheck the feedback and enter the round again\n", err)
				break
			}
			if rd.Solved() {
				r.session(session)
				fmt.Fprintf(out, "solved in %d\n", len(session.History()))
				session.Reset()
			}
			suggest(r, session)
		default:
			fmt.Fprintln(out, "expected: <guess> <feedback>, e.g. crane bygbb")
		}

		if eof {
			return nil
		}
	}
}

func suggest(r *renderer, s *solver.Session) {
	r.session(s)
	res, err := s.Recommend(solveTopN)
	if err != nil {
		fmt.Fprintln(r.out, err)
		return
	}
	r.recommendations(res)
}

func showTopLetters(out io.Writer, words []string) {
	freq := stats.LetterFrequencies(words)
	type lf struct {
		letter byte
		f      float64
	}
	top := make([]lf, 0, len(freq))
	for l, f := range freq {
		top = append(top, lf{l, f})
	}
	top = recommend.TopN(top, 8, recommend.Descending(
		func(x lf) float64 { return x.f },
		func(x lf) byte { return x.letter },
	))
	fmt.Fprintf(out, "%d words. most common letters:", len(words))
	for _, x := range top {
		fmt.Fprintf(out, " %c %.1f%%", x.letter, x.f*100)
	}
	fmt.Fprintln(out)
}
