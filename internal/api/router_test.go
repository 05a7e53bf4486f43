package api_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/naveenrjn/prep-hub-be/internal/api"
	"github.com/naveenrjn/prep-hub-be/internal/auth"
	"github.com/naveenrjn/prep-hub-be/internal/database"
	"github.com/naveenrjn/prep-hub-be/internal/ollama"
	"github.com/naveenrjn/prep-hub-be/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	result ollama.Result
}

func (s *stubGenerator) Generate(ctx context.Context, message, contextText string) ollama.Result {
	return s.result
}

type stubHealth struct{ ok bool }

func (s *stubHealth) HealthCheck(ctx context.Context) bool { return s.ok }

type testServer struct {
	router http.Handler
	tokens *auth.TokenService
	db     *sql.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := database.New(":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { db.Close() })

	tokens := auth.NewTokenService([]byte("test-secret"), 30*time.Minute)
	users := services.NewUserService(db)

	router := api.NewRouter(api.Deps{
		Tokens:         tokens,
		Users:          users,
		Subjects:       services.NewSubjectService(db),
		Quizzes:        services.NewQuizService(db),
		Progress:       services.NewProgressService(db),
		Papers:         services.NewPaperService(db),
		Chat:           services.NewChatService(db, &stubGenerator{result: ollama.Result{Text: "Keep practicing!"}}),
		AIHealth:       &stubHealth{ok: true},
		AllowedOrigins: []string{"http://localhost:3000"},
	})

	return &testServer{router: router, tokens: tokens, db: db}
}

func (ts *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func register(t *testing.T, ts *testServer, email, password string) (token string) {
	t.Helper()

	rec := ts.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Asha", "email": email, "password": password,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		User        struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotEmpty(t, resp.AccessToken)
	require.Equal(t, "bearer", resp.TokenType)
	require.Equal(t, email, resp.User.Email)
	return resp.AccessToken
}

func TestRegisterLoginAndProtectedAccess(t *testing.T) {
	ts := newTestServer(t)

	token := register(t, ts, "a@x.com", "secret123")

	// Token from registration opens protected routes.
	rec := ts.do(t, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var me struct {
		Email string `json:"email"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&me))
	assert.Equal(t, "a@x.com", me.Email)

	// Duplicate registration is rejected before any account is touched.
	rec = ts.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Other", "email": "a@x.com", "password": "other-pass",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Login issues a fresh working token.
	rec = ts.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "a@x.com", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	ts := newTestServer(t)
	register(t, ts, "a@x.com", "secret123")

	wrongPassword := ts.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "a@x.com", "password": "wrong",
	})
	unknownEmail := ts.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "ghost@x.com", "password": "secret123",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, wrongPassword.Code, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String(),
		"wrong password and unknown email must be indistinguishable")
}

func TestExpiredTokenRejected(t *testing.T) {
	ts := newTestServer(t)
	register(t, ts, "a@x.com", "secret123")

	// Simulate the clock passing the TTL by issuing in the past.
	expired, err := ts.tokens.IssueAt("a@x.com", time.Now().Add(-time.Hour))
	require.NoError(t, err)

	rec := ts.do(t, http.MethodGet, "/api/auth/me", expired, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Missing and malformed credentials land in the same category.
	noHeader := ts.do(t, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, noHeader.Code)
	assert.Equal(t, rec.Body.String(), noHeader.Body.String())
}

func TestChatEndpoint(t *testing.T) {
	ts := newTestServer(t)
	token := register(t, ts, "a@x.com", "secret123")

	// Unauthenticated chat is rejected.
	rec := ts.do(t, http.MethodPost, "/api/chat/", "", map[string]string{"message": "hi"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/chat/", token, map[string]string{"message": "How do I prepare for Tamil?"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Response string `json:"response"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Keep practicing!", resp.Response)

	// The turn lands in the user's history.
	rec = ts.do(t, http.MethodGet, "/api/chat/history", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var turns []struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&turns))
	require.Len(t, turns, 1)
	assert.Equal(t, "How do I prepare for Tamil?", turns[0].Message)
}

func TestQuizAndProgressFlow(t *testing.T) {
	ts := newTestServer(t)
	token := register(t, ts, "a@x.com", "secret123")

	_, err := ts.db.Exec("INSERT INTO subjects (id, name, color) VALUES ('sub-1', 'Tamil', 'bg-blue-500')")
	require.NoError(t, err)

	// Create a quiz (protected) and record an attempt against it.
	rec := ts.do(t, http.MethodPost, "/api/quizzes/", token, map[string]any{
		"title": "Tamil Basics", "subjectId": "sub-1",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var quiz struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&quiz))

	rec = ts.do(t, http.MethodPost, "/api/quizzes/"+quiz.ID+"/attempts", token, map[string]any{
		"totalQuestions": 10, "correctAnswers": 7, "score": 70.0, "timeTakenMinutes": 12,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = ts.do(t, http.MethodGet, "/api/user/attempts", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var attempts []struct {
		QuizID string  `json:"quizId"`
		Score  float64 `json:"score"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&attempts))
	require.Len(t, attempts, 1)
	assert.Equal(t, quiz.ID, attempts[0].QuizID)
	assert.Equal(t, 70.0, attempts[0].Score)

	rec = ts.do(t, http.MethodPost, "/api/user/progress", token, map[string]any{
		"subjectId": "sub-1", "questionsCompleted": 3, "totalQuestions": 10, "score": 30.0,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = ts.do(t, http.MethodGet, "/api/user/progress", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var progress []struct {
		SubjectID string  `json:"subjectId"`
		Score     float64 `json:"score"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&progress))
	require.Len(t, progress, 1)
	assert.Equal(t, "sub-1", progress[0].SubjectID)
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status    string `json:"status"`
		AIBackend bool   `json:"ai_backend"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.AIBackend)
}
