package services

import (
	"context"
	"testing"
	"time"

	"github.com/naveenrjn/prep-hub-be/internal/models"
	"github.com/naveenrjn/prep-hub-be/internal/ollama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	result     ollama.Result
	gotMessage string
	gotContext string
}

func (f *fakeGenerator) Generate(ctx context.Context, message, contextText string) ollama.Result {
	f.gotMessage = message
	f.gotContext = contextText
	return f.result
}

func registerTestUser(t *testing.T, svc *UserService) models.User {
	t.Helper()
	user, err := svc.Register("Asha", "a@x.com", "", "secret123")
	require.NoError(t, err)
	return user
}

func TestChatService_Ask(t *testing.T) {
	db := newTestDB(t)
	user := registerTestUser(t, NewUserService(db))

	gen := &fakeGenerator{result: ollama.Result{Text: "Practice daily."}}
	svc := NewChatService(db, gen)

	reply, err := svc.Ask(context.Background(), user, "How should I prepare?")
	require.NoError(t, err)
	assert.Equal(t, "Practice daily.", reply)

	assert.Equal(t, "How should I prepare?", gen.gotMessage)
	assert.Contains(t, gen.gotContext, "TNPSC")

	turns, err := svc.RecentHistory(user.ID, 10)
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, "How should I prepare?", turns[0].Message)
	assert.Equal(t, "Practice daily.", turns[0].Response)
}

func TestChatService_Ask_FallbackStillStored(t *testing.T) {
	db := newTestDB(t)
	user := registerTestUser(t, NewUserService(db))

	gen := &fakeGenerator{result: ollama.Result{Text: "Sorry, I'm currently unavailable. Please try again later.", Fallback: true}}
	svc := NewChatService(db, gen)

	reply, err := svc.Ask(context.Background(), user, "hello")
	require.NoError(t, err, "a degraded backend must not fail the chat call")
	assert.NotEmpty(t, reply)

	turns, err := svc.RecentHistory(user.ID, 10)
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, reply, turns[0].Response)
}

func TestChatService_RecentHistory_LimitAndOrder(t *testing.T) {
	db := newTestDB(t)
	user := registerTestUser(t, NewUserService(db))
	svc := NewChatService(db, &fakeGenerator{result: ollama.Result{Text: "ok"}})

	// Insert with explicit timestamps so ordering is deterministic.
	base := time.Now().UTC().Add(-time.Hour)
	for i, msg := range []string{"first", "second", "third"} {
		_, err := db.Exec(
			"INSERT INTO chat_history (id, user_id, message, response, created_at) VALUES (?, ?, ?, ?, ?)",
			msg, user.ID, msg, "ok", base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, err)
	}

	turns, err := svc.RecentHistory(user.ID, 2)
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, "third", turns[0].Message)
	assert.Equal(t, "second", turns[1].Message)
}

func TestChatService_PruneOlderThan(t *testing.T) {
	db := newTestDB(t)
	user := registerTestUser(t, NewUserService(db))
	svc := NewChatService(db, &fakeGenerator{result: ollama.Result{Text: "ok"}})

	old := time.Now().UTC().Add(-100 * 24 * time.Hour)
	_, err := db.Exec(
		"INSERT INTO chat_history (id, user_id, message, response, created_at) VALUES ('old', ?, 'old msg', 'ok', ?)",
		user.ID, old)
	require.NoError(t, err)
	_, err = db.Exec(
		"INSERT INTO chat_history (id, user_id, message, response, created_at) VALUES ('new', ?, 'new msg', 'ok', ?)",
		user.ID, time.Now().UTC())
	require.NoError(t, err)

	deleted, err := svc.PruneOlderThan(time.Now().UTC().Add(-90 * 24 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	turns, err := svc.RecentHistory(user.ID, 10)
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, "new msg", turns[0].Message)
}
