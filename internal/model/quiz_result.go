package model

import "time"

// ISOTimeLayout matches JavaScript's Date.toISOString output in UTC.
const ISOTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// QuizResult is appended once per completed session and never mutated.
type QuizResult struct {
	Score          int    `json:"score"`
	TotalQuestions int    `json:"totalQuestions"`
	CompletedAt    string `json:"completedAt"`
	TimeTaken      int    `json:"timeTaken"` // seconds
}

func NewQuizResult(score, total int, started, completed time.Time) QuizResult {
	elapsed := int(completed.Sub(started) / time.Second)
	if elapsed < 0 {
		elapsed = 0
	}
	return QuizResult{
		Score:          score,
		TotalQuestions: total,
		CompletedAt:    completed.UTC().Format(ISOTimeLayout),
		TimeTaken:      elapsed,
	}
}
