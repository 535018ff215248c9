package dto

import (
	"encoding/json"

	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/model"
)

// QuestionDTO is a question as shown before answering; the correct answer is withheld.
type QuestionDTO struct {
	ID         int                `json:"id"`
	Type       model.QuestionKind `json:"type"`
	Question   string             `json:"question"`
	Options    []string           `json:"options,omitempty"`
	Category   string             `json:"category"`
	Difficulty model.Difficulty   `json:"difficulty"`
}

type RevealDTO struct {
	Selected    model.Answer `json:"selected"`
	Correct     model.Answer `json:"correct"`
	IsCorrect   bool         `json:"is_correct"`
	Explanation string       `json:"explanation"`
}

type GradeDTO struct {
	Tier  int    `json:"tier"`
	Label string `json:"label"`
	Color string `json:"color"`
}

type QuizSummaryDTO struct {
	Score          int              `json:"score"`
	TotalQuestions int              `json:"total_questions"`
	Percentage     int              `json:"percentage"`
	Grade          GradeDTO         `json:"grade"`
	Message        string           `json:"message"`
	TimeTaken      int              `json:"time_taken"`
	Duration       string           `json:"duration"`
	Result         model.QuizResult `json:"result"`
}

type QuizSessionDTO struct {
	ID             string          `json:"id"`
	ClientID       string          `json:"client_id"`
	Locale         string          `json:"locale"`
	State          string          `json:"state"`
	CurrentIndex   int             `json:"current_index"`
	TotalQuestions int             `json:"total_questions"`
	Question       *QuestionDTO    `json:"question,omitempty"`
	Answers        []model.Answer  `json:"answers"`
	Revealed       bool            `json:"revealed"`
	Reveal         *RevealDTO      `json:"reveal,omitempty"`
	Summary        *QuizSummaryDTO `json:"summary,omitempty"`
	StartedAt      string          `json:"started_at"`
}

type SubmitAnswerRequest struct {
	Answer json.RawMessage `json:"answer" binding:"required"`
}

type QuizHistoryResponse struct {
	ClientID string             `json:"client_id"`
	Results  []model.QuizResult `json:"results"`
}

type QuizStatsDTO struct {
	ClientID          string            `json:"client_id"`
	Attempts          int               `json:"attempts"`
	BestPercentage    int               `json:"best_percentage"`
	AveragePercentage int               `json:"average_percentage"`
	AverageTimeTaken  int               `json:"average_time_taken"`
	Last              *model.QuizResult `json:"last,omitempty"`
}
