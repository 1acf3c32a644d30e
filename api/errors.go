package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bent101/wordle-assist/constraint"
	"github.com/bent101/wordle-assist/hint"
	"github.com/bent101/wordle-assist/recommend"
	"github.com/bent101/wordle-assist/solver"
)

func notFound(c *gin.Context, id string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: "session not found: " + id, Code: "NOT_FOUND"})
}

// writeSessionError maps engine errors to HTTP responses.
func (s *Server) writeSessionError(c *gin.Context, logger *slog.Logger, err error) {
	resp := ErrorResponse{Error: err.Error()}
	status := http.StatusInternalServerError

	var roundErr *solver.RoundError
	switch {
	case errors.As(err, &roundErr):
		status = http.StatusConflict
		resp.Code = "CONFLICT"
		idx := roundErr.Index
		resp.RoundIndex = &idx
	case errors.Is(err, recommend.ErrInvalidRequest):
		status = http.StatusBadRequest
		resp.Code = "INVALID_REQUEST"
	case errors.Is(err, constraint.ErrConflict):
		status = http.StatusConflict
		resp.Code = "CONFLICT"
	case errors.Is(err, hint.ErrInvalidRound):
		status = http.StatusBadRequest
		resp.Code = "INVALID_ROUND"
	case errors.Is(err, solver.ErrNoRounds):
		status = http.StatusBadRequest
		resp.Code = "NO_ROUNDS"
	}

	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "error", err)
	} else {
		logger.Warn("request rejected", "error", err, "code", resp.Code)
	}
	c.JSON(status, resp)
}
