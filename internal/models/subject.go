package models

import "time"

// Subject is an exam subject area, e.g. Tamil or General Studies.
type Subject struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Question is a multiple-choice practice question belonging to a subject.
type Question struct {
	ID            string    `json:"id"`
	SubjectID     string    `json:"subjectId"`
	QuestionText  string    `json:"questionText"`
	OptionA       string    `json:"optionA"`
	OptionB       string    `json:"optionB"`
	OptionC       string    `json:"optionC"`
	OptionD       string    `json:"optionD"`
	CorrectAnswer string    `json:"correctAnswer"` // A, B, C or D
	Explanation   string    `json:"explanation,omitempty"`
	Difficulty    string    `json:"difficulty"` // Easy, Medium, Hard
	Topic         string    `json:"topic,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
