// Package api exposes solver sessions over a JSON HTTP API.
package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bent101/wordle-assist/recommend"
	"github.com/bent101/wordle-assist/solver"
)

const defaultTopN = 5

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wordle_api_requests_total",
		Help: "HTTP requests by route and status",
	}, []string{"route", "status"})

	requestLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wordle_api_request_duration_seconds",
		Help:    "HTTP request latency by route",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
	}, []string{"route"})
)

type Server struct {
	recommender *recommend.Recommender
	store       *Store
	logger      *slog.Logger
	router      *gin.Engine
}

func NewServer(r *recommend.Recommender, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		recommender: r,
		store:       NewStore(func() *solver.Session { return solver.NewSession(r) }),
		logger:      logger,
	}

	router := gin.New()
	router.Use(gin.Recovery(), s.instrument())
	router.GET("/health", s.handleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	RegisterRoutes(router.Group("/v1"), s)
	s.router = router
	return s
}

func RegisterRoutes(rg *gin.RouterGroup, s *Server) {
	sessions := rg.Group("/sessions")
	{
		sessions.POST("", s.handleCreate)
		sessions.GET("/:id", s.handleGet)
		sessions.DELETE("/:id", s.handleDelete)
		sessions.POST("/:id/rounds", s.handleSubmit)
		sessions.PUT("/:id/rounds", s.handleReplace)
		sessions.DELETE("/:id/rounds/last", s.handleUndo)
		sessions.POST("/:id/reset", s.handleReset)
		sessions.GET("/:id/recommendations", s.handleRecommend)
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) instrument() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestsTotal.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		requestLatency.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:     "healthy",
		Sessions:   s.store.Len(),
		Dictionary: len(s.recommender.Dictionary()),
	})
}

func (s *Server) handleCreate(c *gin.Context) {
	id, e := s.store.create()
	s.logger.Info("session created", "session_id", id)

	e.mu.Lock()
	defer e.mu.Unlock()
	c.JSON(http.StatusCreated, newSessionResponse(id, e.session))
}

func (s *Server) handleGet(c *gin.Context) {
	id, e, ok := s.lookup(c)
	if !ok {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	c.JSON(http.StatusOK, newSessionResponse(id, e.session))
}

func (s *Server) handleDelete(c *gin.Context) {
	id := c.Param("id")
	if !s.store.Delete(id) {
		notFound(c, id)
		return
	}
	s.logger.Info("session deleted", "session_id", id)
	c.Status(http.StatusNoContent)
}

func (s *Server) handleSubmit(c *gin.Context) {
	id, e, ok := s.lookup(c)
	if !ok {
		return
	}
	logger := s.logger.With("session_id", id, "handler", "submit")

	var req RoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Code: "INVALID_REQUEST"})
		return
	}
	rounds, err := parseRounds([]RoundRequest{req})
	if err != nil {
		logger.Warn("invalid round", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "INVALID_ROUND"})
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.session.Submit(rounds[0]); err != nil {
		s.writeSessionError(c, logger, err)
		return
	}
	logger.Info("round submitted", "guess", req.Guess, "round", e.session.RoundNumber()-1, "candidates", e.session.CandidateCount())
	c.JSON(http.StatusOK, newSessionResponse(id, e.session))
}

func (s *Server) handleReplace(c *gin.Context) {
	id, e, ok := s.lookup(c)
	if !ok {
		return
	}
	logger := s.logger.With("session_id", id, "handler", "replace")

	var req ReplaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Code: "INVALID_REQUEST"})
		return
	}
	rounds, err := parseRounds(req.Rounds)
	if err != nil {
		logger.Warn("invalid round", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "INVALID_ROUND"})
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.session.Replace(rounds); err != nil {
		s.writeSessionError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, newSessionResponse(id, e.session))
}

func (s *Server) handleUndo(c *gin.Context) {
	id, e, ok := s.lookup(c)
	if !ok {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.session.Undo(); err != nil {
		s.writeSessionError(c, s.logger.With("session_id", id, "handler", "undo"), err)
		return
	}
	c.JSON(http.StatusOK, newSessionResponse(id, e.session))
}

func (s *Server) handleReset(c *gin.Context) {
	id, e, ok := s.lookup(c)
	if !ok {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.session.Reset()
	c.JSON(http.StatusOK, newSessionResponse(id, e.session))
}

func (s *Server) handleRecommend(c *gin.Context) {
	id, e, ok := s.lookup(c)
	if !ok {
		return
	}
	logger := s.logger.With("session_id", id, "handler", "recommend")

	topN := defaultTopN
	if q := c.Query("top"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "top must be an integer", Code: "INVALID_REQUEST"})
			return
		}
		topN = n
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	res, err := e.session.Recommend(topN)
	if err != nil {
		s.writeSessionError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, RecommendationResponse{
		Round:        e.session.RoundNumber(),
		Candidates:   res.Candidates,
		Explorations: res.Explorations,
	})
}

func (s *Server) lookup(c *gin.Context) (string, *entry, bool) {
	id := c.Param("id")
	e := s.store.get(id)
	if e == nil {
		notFound(c, id)
		return id, nil, false
	}
	return id, e, true
}
