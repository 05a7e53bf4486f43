package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/naveenrjn/prep-hub-be/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUserMissing = errors.New("user not found")

type stubLookup struct {
	users map[string]models.User
}

func (s *stubLookup) GetByEmail(email string) (models.User, error) {
	user, ok := s.users[email]
	if !ok {
		return models.User{}, errUserMissing
	}
	return user, nil
}

func TestRequireAuth(t *testing.T) {
	tokens := NewTokenService([]byte("test-secret"), 30*time.Minute)
	lookup := &stubLookup{users: map[string]models.User{
		"a@x.com":        {ID: "u1", Email: "a@x.com", Name: "A", IsActive: true},
		"inactive@x.com": {ID: "u2", Email: "inactive@x.com", Name: "B", IsActive: false},
	}}

	validToken, err := tokens.Issue("a@x.com")
	require.NoError(t, err)
	expiredToken, err := tokens.IssueAt("a@x.com", time.Now().Add(-time.Hour))
	require.NoError(t, err)
	unknownUserToken, err := tokens.Issue("ghost@x.com")
	require.NoError(t, err)
	inactiveToken, err := tokens.Issue("inactive@x.com")
	require.NoError(t, err)

	var seenUser models.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		require.True(t, ok)
		seenUser = user
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireAuth(tokens, lookup)(next)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{name: "no header", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", authHeader: "Basic abc123", wantStatus: http.StatusUnauthorized},
		{name: "bearer without token", authHeader: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", authHeader: "Bearer not-a-token", wantStatus: http.StatusUnauthorized},
		{name: "expired token", authHeader: "Bearer " + expiredToken, wantStatus: http.StatusUnauthorized},
		{name: "unknown user", authHeader: "Bearer " + unknownUserToken, wantStatus: http.StatusUnauthorized},
		{name: "inactive user", authHeader: "Bearer " + inactiveToken, wantStatus: http.StatusUnauthorized},
		{name: "valid token", authHeader: "Bearer " + validToken, wantStatus: http.StatusOK},
	}

	var rejectionBody string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusUnauthorized {
				// Every rejection must be byte-identical so callers cannot
				// tell a bad token from a missing or inactive account.
				if rejectionBody == "" {
					rejectionBody = rec.Body.String()
				}
				assert.Equal(t, rejectionBody, rec.Body.String())
			}
		})
	}

	assert.Equal(t, "u1", seenUser.ID)
	assert.Equal(t, "a@x.com", seenUser.Email)
}
