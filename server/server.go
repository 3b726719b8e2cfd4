// Package server exposes one solver over JSON HTTP.
//
// Routes:
//   - POST /api/start       new game, returns the opener
//   - POST /api/guess       {"guess","pattern"} for the last turn, returns the next guess
//   - GET  /api/candidates  answers still consistent with the feedback
//   - GET  /health
//
// Input is validated here, the solver assumes well formed words and patterns.
// The solver holds a single game, requests are serialized on a mutex.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/powellquiring/wordlesolver/wordle"
)

// Server bundles the router and the solver it drives.
type Server struct {
	r *chi.Mux

	mu     sync.Mutex
	solver *wordle.Solver
}

func New(solver *wordle.Solver) *Server {
	s := &Server{r: chi.NewRouter(), solver: solver}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(30 * time.Second))
	s.r.Use(requestLog)
	s.r.Use(jsonContentType)

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Route("/api", func(r chi.Router) {
		r.Post("/start", s.handleStart)
		r.Post("/guess", s.handleGuess)
		r.Get("/candidates", s.handleCandidates)
	})
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	return s
}

// Start serves HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

func (s *Server) Handler() http.Handler { return s.r }

// ------------------------------ middleware ---------------------------------

func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

func requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Str("requestId", chimw.GetReqID(r.Context())).
			Msg("request")
	})
}

// -------------------------------- game -------------------------------------

type guessRes struct {
	Guess     string `json:"guess"`
	Remaining int    `json:"remaining"`
	Solved    bool   `json:"solved"`
}

type guessReq struct {
	Guess   string `json:"guess"`
	Pattern string `json:"pattern"`
}

type errorRes struct {
	Error     string `json:"error"`
	Remaining *int   `json:"remaining,omitempty"`
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.solver.Reset()
	result, err := s.solver.NextGuess(nil)
	s.mu.Unlock()
	if err != nil {
		log.Error().Err(err).Msg("start game")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, guessRes{
		Guess:     strings.ToUpper(result.Guess.String()),
		Remaining: result.Remaining,
	})
}

// handleGuess takes the feedback for the previous guess. An all correct pattern
// ends the game without consulting the solver.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	guess, err := wordle.ParseWord(req.Guess)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	pattern, err := wordle.ParsePattern(req.Pattern)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if pattern == wordle.AllCorrect {
		writeJSON(w, http.StatusOK, guessRes{
			Guess:     strings.ToUpper(guess.String()),
			Remaining: 1,
			Solved:    true,
		})
		return
	}

	s.mu.Lock()
	result, err := s.solver.NextGuess(&wordle.Feedback{Guess: guess, Pattern: pattern})
	s.mu.Unlock()
	if errors.Is(err, wordle.ErrNoCandidates) {
		zero := 0
		writeJSON(w, http.StatusConflict, errorRes{Error: "no word matches your feedback", Remaining: &zero})
		return
	} else if err != nil {
		log.Error().Err(err).Msg("next guess")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, guessRes{
		Guess:     strings.ToUpper(result.Guess.String()),
		Remaining: result.Remaining,
	})
}

func (s *Server) handleCandidates(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	candidates := s.solver.CandidateStrings()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string][]string{"candidates": candidates})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("write response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorRes{Error: msg})
}
