package models

import "time"

// QuestionPaper is a previous-year exam paper available for download.
type QuestionPaper struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Year           string     `json:"year"`
	Subject        string     `json:"subject"`
	ExamDate       *time.Time `json:"examDate,omitempty"`
	DurationHours  float64    `json:"durationHours"`
	TotalQuestions int        `json:"totalQuestions"`
	ExamType       string     `json:"examType,omitempty"` // Preliminary, Main, etc.
	Difficulty     string     `json:"difficulty"`
	HasAnswerKey   bool       `json:"hasAnswerKey"`
	FilePath       string     `json:"filePath,omitempty"`
	AnswerKeyPath  string     `json:"answerKeyPath,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}
