package event

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventTypeQuizStarted   EventType = "quiz.started"
	EventTypeQuizCompleted EventType = "quiz.completed"
)

type Envelope struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

func NewEnvelope(t EventType, payload any) Envelope {
	return Envelope{
		ID:         uuid.NewString(),
		Type:       t,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

type QuizStartedEvent struct {
	SessionID      string `json:"session_id"`
	ClientID       string `json:"client_id"`
	TotalQuestions int    `json:"total_questions"`
}

type QuizCompletedEvent struct {
	SessionID      string `json:"session_id"`
	ClientID       string `json:"client_id"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
	Percentage     int    `json:"percentage"`
	TimeTaken      int    `json:"time_taken"`
	CompletedAt    string `json:"completed_at"`
}
