package models

import "time"

// ChatTurn is one stored exchange between a user and the AI assistant.
type ChatTurn struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"createdAt"`
}
