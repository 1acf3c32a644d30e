package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/bent101/wordle-assist/hint"
	"github.com/bent101/wordle-assist/recommend"
	"github.com/bent101/wordle-assist/solver"
)

var (
	tileBase   = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("0"))
	tileStyles = map[hint.Color]lipgloss.Style{
		hint.Correct: tileBase.Background(lipgloss.Color("2")),
		hint.Present: tileBase.Background(lipgloss.Color("3")),
		hint.Absent:  tileBase.Background(lipgloss.Color("8")).Foreground(lipgloss.Color("15")),
	}
	candidateStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	explorationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
)

type renderer struct {
	out   io.Writer
	color bool
}

func newRenderer(out io.Writer) *renderer {
	color := false
	if f, ok := out.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &renderer{out: out, color: color}
}

func (r *renderer) round(rd hint.Round) string {
	if !r.color {
		return rd.String()
	}
	colors := rd.Colors()
	guess := strings.ToUpper(rd.Guess())
	tiles := make([]string, len(guess))
	for i := range guess {
		tiles[i] = tileStyles[colors[i]].Render(guess[i : i+1])
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

func (r *renderer) session(s *solver.Session) {
	for _, rd := range s.History() {
		fmt.Fprintln(r.out, r.round(rd))
	}
	fmt.Fprintf(r.out, "round %d, %d possible answers", s.RoundNumber(), s.CandidateCount())
	if grays := s.Constraint().Grays(); len(grays) > 0 {
		fmt.Fprintf(r.out, ", absent: %s", grays)
	}
	fmt.Fprintln(r.out)
}

func (r *renderer) recommendations(res recommend.Result) {
	r.list("Candidates", res.Candidates, candidateStyle)
	r.list("Explorations", res.Explorations, explorationStyle)
}

func (r *renderer) list(title string, words []recommend.Scored, style lipgloss.Style) {
	fmt.Fprintf(r.out, "%s:\n", title)
	if len(words) == 0 {
		fmt.Fprintln(r.out, "  (none)")
		return
	}
	for i, w := range words {
		word := w.Word
		if r.color {
			word = style.Render(word)
		}
		fmt.Fprintf(r.out, "  %d. %s %.2f\n", i+1, word, w.Score)
	}
}
