package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/mathtutor/internal/session"
)

// Error taxonomy → status mapping: validation and missing-login are 400,
// absent problems are 404, storage faults are a generic 500, and provider
// failures are not errors at all — they arrive as degraded feedback text.

type loginRequest struct {
	Name string `json:"name"`
}

type sessionRequest struct {
	Session session.State `json:"session"`
}

type answerRequest struct {
	Session session.State `json:"session"`
	Answer  string        `json:"answer"`
}

func (s *Server) handleHealth(c *gin.Context) {
	respondOK(c, gin.H{"status": "ok"})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", "malformed request body")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		respondError(c, http.StatusBadRequest, "validation", "please enter a username")
		return
	}

	u, err := s.progress.GetOrCreateUser(c.Request.Context(), name)
	if err != nil {
		s.log.Error("get or create user", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "storage", "something went wrong, please try again")
		return
	}

	respondOK(c, gin.H{"user_id": u.ID, "name": u.Name})
}

func (s *Server) handleProblem(c *gin.Context) {
	st, ok := s.bindSession(c)
	if !ok {
		return
	}

	p, found := s.catalog.Lookup(st.CurrentProblem)
	if !found {
		respondError(c, http.StatusNotFound, "not_found", "no problem data available")
		return
	}

	respondOK(c, gin.H{
		"problem_number": p.Number,
		"statement":      p.Statement,
		"progress":       fmt.Sprintf("Problem %d of %d", p.Number, s.catalog.Len()),
		"hints_shown":    st.VisibleHints(p),
		"session":        st,
	})
}

func (s *Server) handleAnswer(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", "malformed request body")
		return
	}
	st := req.Session.Normalize(s.catalog)

	if st.UserID == nil {
		respondError(c, http.StatusBadRequest, "validation", "please log in first")
		return
	}
	if strings.TrimSpace(req.Answer) == "" {
		respondError(c, http.StatusBadRequest, "validation", "please enter an answer")
		return
	}

	p, found := s.catalog.Lookup(st.CurrentProblem)
	if !found {
		respondError(c, http.StatusNotFound, "not_found", "no problem data available")
		return
	}

	result, err := s.tutor.Evaluate(c.Request.Context(), *st.UserID, p, req.Answer)
	if err != nil {
		s.log.Error("evaluate answer", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "storage", "something went wrong, please try again")
		return
	}

	respondOK(c, gin.H{
		"feedback": result.Feedback,
		"correct":  result.Correct,
		"degraded": result.Degraded,
		"session":  st,
	})
}

func (s *Server) handleHint(c *gin.Context) {
	st, ok := s.bindSession(c)
	if !ok {
		return
	}

	p, found := s.catalog.Lookup(st.CurrentProblem)
	if !found {
		respondError(c, http.StatusNotFound, "not_found", "no problem data available")
		return
	}

	next, hint, revealed := st.RevealNextHint(p)
	if !revealed {
		respondOK(c, gin.H{
			"hint":      nil,
			"exhausted": true,
			"message":   "No more hints available.",
			"session":   st,
		})
		return
	}

	respondOK(c, gin.H{
		"hint":        hint,
		"hint_number": next.HintsShown[p.Number],
		"exhausted":   false,
		"session":     next,
	})
}

func (s *Server) handleSolution(c *gin.Context) {
	st, ok := s.bindSession(c)
	if !ok {
		return
	}

	p, found := s.catalog.Lookup(st.CurrentProblem)
	if !found {
		respondError(c, http.StatusNotFound, "not_found", "no problem data available")
		return
	}

	solutions := make([]gin.H, 0, len(p.Solutions))
	for _, sol := range p.Solutions {
		solutions = append(solutions, gin.H{
			"method":   sol.Method,
			"solution": sol.Text,
		})
	}

	respondOK(c, gin.H{
		"problem_number": p.Number,
		"solutions":      solutions,
		"session":        st,
	})
}

func (s *Server) handleNext(c *gin.Context) {
	st, ok := s.bindSession(c)
	if !ok {
		return
	}

	next, moved := st.Advance(s.catalog.Max())
	body := gin.H{
		"session": next,
		"at_last": !moved,
	}
	if !moved {
		body["message"] = "You are at the last problem."
	}
	respondOK(c, body)
}

func (s *Server) handleStats(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		respondError(c, http.StatusBadRequest, "validation", "invalid user id")
		return
	}

	stats, err := s.progress.Stats(c.Request.Context(), id)
	if err != nil {
		s.log.Error("load stats", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "storage", "something went wrong, please try again")
		return
	}

	rows := make([]gin.H, 0, len(stats))
	for _, st := range stats {
		rows = append(rows, gin.H{
			"problem_number":   st.ProblemNumber,
			"total_attempts":   st.TotalAttempts,
			"correct_attempts": st.CorrectAttempts,
			"success_rate":     st.SuccessRate,
		})
	}

	respondOK(c, gin.H{"user_id": id, "stats": rows})
}

// bindSession decodes and normalizes the client-held session state. The
// client copy is never trusted as-is: it crossed a serialization
// boundary and may be missing, stale, or tampered with.
func (s *Server) bindSession(c *gin.Context) (session.State, bool) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", "malformed request body")
		return session.State{}, false
	}
	if req.Session.CurrentProblem == 0 && req.Session.HintsShown == nil && req.Session.UserID == nil {
		req.Session = session.New()
	}
	return req.Session.Normalize(s.catalog), true
}
