package models

import "time"

// Quiz is a timed set of questions drawn from a subject.
type Quiz struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	SubjectID       string    `json:"subjectId"`
	DurationMinutes int       `json:"durationMinutes"`
	TotalQuestions  int       `json:"totalQuestions"`
	Difficulty      string    `json:"difficulty"`
	IsActive        bool      `json:"isActive"`
	CreatedBy       string    `json:"createdBy,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// QuizAttempt records one completed run of a quiz by a user.
type QuizAttempt struct {
	ID               string    `json:"id"`
	UserID           string    `json:"userId"`
	QuizID           string    `json:"quizId"`
	Score            float64   `json:"score"`
	TotalQuestions   int       `json:"totalQuestions"`
	CorrectAnswers   int       `json:"correctAnswers"`
	TimeTakenMinutes int       `json:"timeTakenMinutes"`
	CompletedAt      time.Time `json:"completedAt"`
}
