package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/naveenrjn/prep-hub-be/internal/models"
	"github.com/naveenrjn/prep-hub-be/internal/ollama"
	"github.com/rs/zerolog/log"
)

// tutorContext steers the model toward exam-preparation answers.
const tutorContext = `You are a helpful AI assistant for TNPSC (Tamil Nadu Public Service Commission) exam preparation.
You help students with questions about Tamil, Aptitude, General Studies, and Mental Ability subjects.
Provide accurate, helpful, and encouraging responses to help students prepare for their exams.`

// Generator produces text for a chat message. Satisfied by the Ollama client.
type Generator interface {
	Generate(ctx context.Context, message, contextText string) ollama.Result
}

// ChatServiceProvider defines the interface for chat services.
type ChatServiceProvider interface {
	Ask(ctx context.Context, user models.User, message string) (string, error)
	RecentHistory(userID string, limit int) ([]models.ChatTurn, error)
	PruneOlderThan(cutoff time.Time) (int64, error)
}

// ChatService proxies chat messages to the AI backend and keeps transcripts.
type ChatService struct {
	db        *sql.DB
	generator Generator
}

// NewChatService creates a new ChatService.
func NewChatService(db *sql.DB, generator Generator) *ChatService {
	return &ChatService{db: db, generator: generator}
}

// Ask sends the user's message to the AI backend and stores the exchange.
// Generation failures surface as fallback text, never as errors; only a
// storage failure is returned to the caller.
func (s *ChatService) Ask(ctx context.Context, user models.User, message string) (string, error) {
	result := s.generator.Generate(ctx, message, tutorContext)
	if result.Fallback {
		log.Warn().Str("user_id", user.ID).Msg("Chat answered with fallback text")
	}

	stmt, err := s.db.Prepare("INSERT INTO chat_history (id, user_id, message, response, created_at) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	if _, err := stmt.Exec(uuid.New().String(), user.ID, message, result.Text, time.Now().UTC()); err != nil {
		return "", err
	}
	return result.Text, nil
}

// RecentHistory returns the user's latest chat turns, newest first.
func (s *ChatService) RecentHistory(userID string, limit int) ([]models.ChatTurn, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, message, response, created_at
		 FROM chat_history WHERE user_id = ? ORDER BY created_at DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	turns := []models.ChatTurn{}
	for rows.Next() {
		var t models.ChatTurn
		if err := rows.Scan(&t.ID, &t.UserID, &t.Message, &t.Response, &t.CreatedAt); err != nil {
			return nil, err
		}
		turns = append(turns, t)
	}
	return turns, rows.Err()
}

// PruneOlderThan deletes chat turns created before cutoff and returns how
// many rows were removed.
func (s *ChatService) PruneOlderThan(cutoff time.Time) (int64, error) {
	res, err := s.db.Exec("DELETE FROM chat_history WHERE created_at < ?", cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
