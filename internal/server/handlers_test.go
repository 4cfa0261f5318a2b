package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathtutor/internal/catalog"
	"github.com/abhisek/mathtutor/internal/llm"
	"github.com/abhisek/mathtutor/internal/store"
	"github.com/abhisek/mathtutor/internal/tutor"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// memProgress is an in-memory ProgressRepo for handler tests.
type memProgress struct {
	users    map[string]int
	nextID   int
	attempts map[int]map[int]*store.Stat
	chat     []store.ChatMessage

	failUser error
}

func newMemProgress() *memProgress {
	return &memProgress{
		users:    make(map[string]int),
		nextID:   1,
		attempts: make(map[int]map[int]*store.Stat),
	}
}

func (m *memProgress) GetOrCreateUser(_ context.Context, name string) (*store.User, error) {
	if m.failUser != nil {
		return nil, m.failUser
	}
	if id, ok := m.users[name]; ok {
		return &store.User{ID: id, Name: name}, nil
	}
	id := m.nextID
	m.nextID++
	m.users[name] = id
	return &store.User{ID: id, Name: name}, nil
}

func (m *memProgress) RecordAttempt(_ context.Context, userID, problemNumber int, answer string, isCorrect bool) error {
	byProblem, ok := m.attempts[userID]
	if !ok {
		byProblem = make(map[int]*store.Stat)
		m.attempts[userID] = byProblem
	}
	st, ok := byProblem[problemNumber]
	if !ok {
		st = &store.Stat{ProblemNumber: problemNumber}
		byProblem[problemNumber] = st
	}
	st.TotalAttempts++
	if isCorrect {
		st.CorrectAttempts++
	}
	return nil
}

func (m *memProgress) RecordChat(_ context.Context, userID, problemNumber int, role, content string) error {
	m.chat = append(m.chat, store.ChatMessage{ProblemNumber: problemNumber, Role: role, Content: content})
	return nil
}

func (m *memProgress) Stats(_ context.Context, userID int) ([]store.Stat, error) {
	var out []store.Stat
	for _, st := range m.attempts[userID] {
		s := *st
		if s.TotalAttempts > 0 {
			s.SuccessRate = float64(s.CorrectAttempts) / float64(s.TotalAttempts)
		}
		out = append(out, s)
	}
	return out, nil
}

func (m *memProgress) RecentChat(_ context.Context, userID, limit int) ([]store.ChatMessage, error) {
	var out []store.ChatMessage
	for i := len(m.chat) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.chat[i])
	}
	return out, nil
}

func (m *memProgress) WeakProblems(_ context.Context, userID, limit int) ([]int, error) {
	return nil, nil
}

var _ store.ProgressRepo = (*memProgress)(nil)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	return catalog.New([]catalog.Problem{
		{
			Number:    1,
			Statement: "What is 2 + 2?",
			Hints:     []string{"add", "carry the one"},
			Solutions: []catalog.Solution{{Method: "addition", Text: "2 + 2 = 4"}},
		},
		{
			Number:    2,
			Statement: "What is 7 x 8?",
			Hints:     []string{"double 7 x 4"},
			Solutions: []catalog.Solution{{Method: "multiplication", Text: "7 x 8 = 56"}},
		},
	})
}

func newTestServer(t *testing.T, progress *memProgress, responses ...llm.MockResponse) *Server {
	t.Helper()
	mock := llm.NewMockProvider(responses...)
	svc := tutor.NewService(mock, progress, tutor.DefaultConfig())
	return New(Options{
		Catalog:  testCatalog(t),
		Progress: progress,
		Tutor:    svc,
	})
}

func doJSON(t *testing.T, s *Server, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)

	var parsed map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func errCode(t *testing.T, body map[string]any) string {
	t.Helper()
	e, ok := body["error"].(map[string]any)
	require.True(t, ok, "expected error payload, got %v", body)
	return e["code"].(string)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, newMemProgress())
	w, body := doJSON(t, s, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestLogin(t *testing.T) {
	s := newTestServer(t, newMemProgress())

	w, body := doJSON(t, s, http.MethodPost, "/api/login", gin.H{"name": "Ada"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["user_id"])
	assert.Equal(t, "Ada", body["name"])

	// Same name maps to the same user.
	w, body = doJSON(t, s, http.MethodPost, "/api/login", gin.H{"name": "Ada"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["user_id"])
}

func TestLogin_Validation(t *testing.T) {
	s := newTestServer(t, newMemProgress())

	w, body := doJSON(t, s, http.MethodPost, "/api/login", gin.H{"name": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation", errCode(t, body))

	w, body = doJSON(t, s, http.MethodPost, "/api/login", gin.H{"name": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation", errCode(t, body))
}

func TestLogin_MalformedBody(t *testing.T) {
	s := newTestServer(t, newMemProgress())

	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_StorageError(t *testing.T) {
	progress := newMemProgress()
	progress.failUser = fmt.Errorf("disk full")
	s := newTestServer(t, progress)

	w, body := doJSON(t, s, http.MethodPost, "/api/login", gin.H{"name": "Ada"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "storage", errCode(t, body))
	// Internal detail stays out of the response.
	assert.NotContains(t, w.Body.String(), "disk full")
}

func TestProblem_FreshSession(t *testing.T) {
	s := newTestServer(t, newMemProgress())

	w, body := doJSON(t, s, http.MethodPost, "/api/problem", gin.H{})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["problem_number"])
	assert.Equal(t, "What is 2 + 2?", body["statement"])
	assert.Equal(t, "Problem 1 of 2", body["progress"])
	assert.Empty(t, body["hints_shown"])

	sess := body["session"].(map[string]any)
	assert.Equal(t, float64(1), sess["current_problem"])
}

func TestProblem_TamperedSessionClamped(t *testing.T) {
	s := newTestServer(t, newMemProgress())

	w, body := doJSON(t, s, http.MethodPost, "/api/problem", gin.H{
		"session": gin.H{"current_problem": 99},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), body["problem_number"])
}

func TestAnswer_Flow(t *testing.T) {
	progress := newMemProgress()
	s := newTestServer(t, progress, llm.MockResponse{Text: "Great job!"})

	_, login := doJSON(t, s, http.MethodPost, "/api/login", gin.H{"name": "Ada"})
	userID := int(login["user_id"].(float64))

	w, body := doJSON(t, s, http.MethodPost, "/api/answer", gin.H{
		"session": gin.H{"current_problem": 1, "user_id": userID},
		"answer":  "4",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["correct"])
	assert.Equal(t, false, body["degraded"])
	assert.Equal(t, "Great job!", body["feedback"])

	// Attempt landed in statistics.
	w, body = doJSON(t, s, http.MethodGet, fmt.Sprintf("/api/users/%d/stats", userID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	rows := body["stats"].([]any)
	require.Len(t, rows, 1)
	row := rows[0].(map[string]any)
	assert.Equal(t, float64(1), row["problem_number"])
	assert.Equal(t, float64(1), row["total_attempts"])
	assert.Equal(t, float64(1), row["correct_attempts"])
	assert.Equal(t, float64(1), row["success_rate"])
}

func TestAnswer_WrongAnswer(t *testing.T) {
	s := newTestServer(t, newMemProgress(), llm.MockResponse{Text: "Not quite."})

	w, body := doJSON(t, s, http.MethodPost, "/api/answer", gin.H{
		"session": gin.H{"current_problem": 1, "user_id": 1},
		"answer":  "5",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["correct"])
}

func TestAnswer_RequiresLogin(t *testing.T) {
	s := newTestServer(t, newMemProgress())

	w, body := doJSON(t, s, http.MethodPost, "/api/answer", gin.H{
		"session": gin.H{"current_problem": 1},
		"answer":  "4",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation", errCode(t, body))
}

func TestAnswer_EmptyAnswer(t *testing.T) {
	s := newTestServer(t, newMemProgress())

	w, body := doJSON(t, s, http.MethodPost, "/api/answer", gin.H{
		"session": gin.H{"current_problem": 1, "user_id": 1},
		"answer":  "   ",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation", errCode(t, body))
}

func TestAnswer_DegradedOnProviderFailure(t *testing.T) {
	s := newTestServer(t, newMemProgress(),
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)

	w, body := doJSON(t, s, http.MethodPost, "/api/answer", gin.H{
		"session": gin.H{"current_problem": 1, "user_id": 1},
		"answer":  "4",
	})
	// A provider outage is not an HTTP error.
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["degraded"])
	assert.Equal(t, true, body["correct"])
	assert.NotEmpty(t, body["feedback"])
}

func TestHint_SequenceAndExhaustion(t *testing.T) {
	s := newTestServer(t, newMemProgress())

	sess := gin.H{"current_problem": 1}

	w, body := doJSON(t, s, http.MethodPost, "/api/hint", gin.H{"session": sess})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "add", body["hint"])
	assert.Equal(t, float64(1), body["hint_number"])
	assert.Equal(t, false, body["exhausted"])

	sess = body["session"].(map[string]any)
	w, body = doJSON(t, s, http.MethodPost, "/api/hint", gin.H{"session": sess})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "carry the one", body["hint"])
	assert.Equal(t, float64(2), body["hint_number"])

	sess = body["session"].(map[string]any)
	w, body = doJSON(t, s, http.MethodPost, "/api/hint", gin.H{"session": sess})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, body["hint"])
	assert.Equal(t, true, body["exhausted"])
	assert.Equal(t, "No more hints available.", body["message"])
}

func TestSolution(t *testing.T) {
	s := newTestServer(t, newMemProgress())

	w, body := doJSON(t, s, http.MethodPost, "/api/solution", gin.H{
		"session": gin.H{"current_problem": 2},
	})
	require.Equal(t, http.StatusOK, w.Code)
	sols := body["solutions"].([]any)
	require.Len(t, sols, 1)
	sol := sols[0].(map[string]any)
	assert.Equal(t, "multiplication", sol["method"])
	assert.Equal(t, "7 x 8 = 56", sol["solution"])
}

func TestNext_AdvancesAndClamps(t *testing.T) {
	s := newTestServer(t, newMemProgress())

	w, body := doJSON(t, s, http.MethodPost, "/api/next", gin.H{
		"session": gin.H{"current_problem": 1},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["at_last"])
	sess := body["session"].(map[string]any)
	assert.Equal(t, float64(2), sess["current_problem"])

	// Already at the last problem: informational, not an error.
	w, body = doJSON(t, s, http.MethodPost, "/api/next", gin.H{"session": sess})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["at_last"])
	assert.Equal(t, "You are at the last problem.", body["message"])
	sess = body["session"].(map[string]any)
	assert.Equal(t, float64(2), sess["current_problem"])
}

func TestStats_InvalidID(t *testing.T) {
	s := newTestServer(t, newMemProgress())

	w, body := doJSON(t, s, http.MethodGet, "/api/users/zero/stats", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation", errCode(t, body))
}

func TestSessionRoundTrip_HintsSurviveAnswer(t *testing.T) {
	s := newTestServer(t, newMemProgress(), llm.MockResponse{Text: "ok"})

	// Reveal a hint, then answer: the returned session still carries
	// the hint counter.
	w, body := doJSON(t, s, http.MethodPost, "/api/hint", gin.H{
		"session": gin.H{"current_problem": 1, "user_id": 1},
	})
	require.Equal(t, http.StatusOK, w.Code)
	sess := body["session"].(map[string]any)

	w, body = doJSON(t, s, http.MethodPost, "/api/answer", gin.H{
		"session": sess,
		"answer":  "4",
	})
	require.Equal(t, http.StatusOK, w.Code)
	sess = body["session"].(map[string]any)
	hints := sess["hints_shown"].(map[string]any)
	assert.Equal(t, float64(1), hints["1"])
}
