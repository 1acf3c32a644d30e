package api

import (
	"github.com/bent101/wordle-assist/constraint"
	"github.com/bent101/wordle-assist/hint"
	"github.com/bent101/wordle-assist/recommend"
	"github.com/bent101/wordle-assist/solver"
)

// maxListedCandidates caps the candidate words echoed in a session view.
const maxListedCandidates = 50

// RoundRequest is one guess with its feedback pattern, e.g. "gybbb".
type RoundRequest struct {
	Guess    string `json:"guess" binding:"required"`
	Feedback string `json:"feedback" binding:"required"`
}

type ReplaceRequest struct {
	Rounds []RoundRequest `json:"rounds"`
}

type RoundView struct {
	Guess    string `json:"guess"`
	Feedback string `json:"feedback"`
	Tiles    string `json:"tiles"`
}

type SessionResponse struct {
	ID             string                  `json:"id"`
	Round          int                     `json:"round"`
	Solved         bool                    `json:"solved"`
	History        []RoundView             `json:"history"`
	CandidateCount int                     `json:"candidate_count"`
	Candidates     []string                `json:"candidates"`
	Absent         string                  `json:"absent"`
	Letters        []constraint.LetterInfo `json:"letters"`
}

type RecommendationResponse struct {
	Round        int                `json:"round"`
	Candidates   []recommend.Scored `json:"candidates"`
	Explorations []recommend.Scored `json:"explorations"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`

	// RoundIndex is the 0-based index of the round that conflicts with
	// earlier feedback.
	RoundIndex *int `json:"round_index,omitempty"`
}

type HealthResponse struct {
	Status     string `json:"status"`
	Sessions   int    `json:"sessions"`
	Dictionary int    `json:"dictionary"`
}

func newSessionResponse(id string, s *solver.Session) SessionResponse {
	history := s.History()
	views := make([]RoundView, len(history))
	for i, r := range history {
		views[i] = RoundView{Guess: r.Guess(), Feedback: r.Pattern(), Tiles: r.String()}
	}
	candidates := s.Candidates()
	if len(candidates) > maxListedCandidates {
		candidates = candidates[:maxListedCandidates]
	}
	c := s.Constraint()
	return SessionResponse{
		ID:             id,
		Round:          s.RoundNumber(),
		Solved:         s.Solved(),
		History:        views,
		CandidateCount: s.CandidateCount(),
		Candidates:     candidates,
		Absent:         string(c.Grays()),
		Letters:        c.Letters(),
	}
}

func parseRounds(reqs []RoundRequest) ([]hint.Round, error) {
	rounds := make([]hint.Round, 0, len(reqs))
	for _, rr := range reqs {
		r, err := hint.Parse(rr.Guess, rr.Feedback)
		if err != nil {
			return nil, err
		}
		rounds = append(rounds, r)
	}
	return rounds, nil
}
