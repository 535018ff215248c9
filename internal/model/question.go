package model

import (
	"errors"
	"fmt"
)

type QuestionKind string

const (
	KindBinary   QuestionKind = "ox"       // true/false
	KindMultiple QuestionKind = "multiple" // pick one option
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Question is immutable once the bank is loaded.
type Question struct {
	ID          int          `json:"id"`
	Kind        QuestionKind `json:"type"`
	Prompt      string       `json:"question"`
	Options     []string     `json:"options,omitempty"`
	Correct     Answer       `json:"correctAnswer"`
	Explanation string       `json:"explanation"`
	Category    string       `json:"category"`
	Difficulty  Difficulty   `json:"difficulty"`
}

// IsCorrect reports strict equality with the expected answer.
func (q Question) IsCorrect(a Answer) bool {
	return a.IsAnswered() && a.Equal(q.Correct)
}

// Validate checks that Correct matches the question kind.
func (q Question) Validate() error {
	switch q.Kind {
	case KindBinary:
		if len(q.Options) != 0 {
			return fmt.Errorf("question %d: true/false questions take no options", q.ID)
		}
		if _, ok := q.Correct.Bool(); !ok {
			return fmt.Errorf("question %d: correct answer must be a boolean", q.ID)
		}
	case KindMultiple:
		if len(q.Options) == 0 {
			return fmt.Errorf("question %d: multiple-choice question has no options", q.ID)
		}
		idx, ok := q.Correct.Index()
		if !ok {
			return fmt.Errorf("question %d: correct answer must be an option index", q.ID)
		}
		if idx < 0 || idx >= len(q.Options) {
			return fmt.Errorf("question %d: correct index %d outside %d options", q.ID, idx, len(q.Options))
		}
	default:
		return fmt.Errorf("question %d: unknown kind %q", q.ID, q.Kind)
	}
	return nil
}

var ErrEmptyBank = errors.New("question bank is empty")

// Bank is the fixed, ordered question list a quiz runs over.
type Bank []Question

func (b Bank) Validate() error {
	if len(b) == 0 {
		return ErrEmptyBank
	}
	seen := make(map[int]bool, len(b))
	for _, q := range b {
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %d", q.ID)
		}
		seen[q.ID] = true
		if err := q.Validate(); err != nil {
			return err
		}
	}
	return nil
}
