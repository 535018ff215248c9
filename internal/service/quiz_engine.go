package service

import (
	"errors"
	"time"

	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/model"
	"github.com/rs/zerolog/log"
)

var (
	ErrQuizCompleted = errors.New("quiz is already completed")
	ErrNotRevealed   = errors.New("answer has not been submitted for the current question")
)

type QuizState string

const (
	StateInProgress QuizState = "in_progress"
	StateCompleted  QuizState = "completed"
)

// ResultRecorder stores a finished quiz. Errors are logged by the engine and
// never undo completion.
type ResultRecorder interface {
	RecordResult(result model.QuizResult) error
}

type ResultRecorderFunc func(result model.QuizResult) error

func (f ResultRecorderFunc) RecordResult(result model.QuizResult) error { return f(result) }

// QuizEngine walks a fixed question bank: submit reveals the current answer,
// advance moves on, and advancing past the last question completes the quiz.
// It is not safe for concurrent use.
type QuizEngine struct {
	bank     model.Bank
	recorder ResultRecorder
	now      func() time.Time

	state     QuizState
	index     int
	answers   []model.Answer
	revealed  bool
	score     int
	startedAt time.Time
	result    *model.QuizResult
}

// NewQuizEngine starts a quiz over bank. recorder and now may be nil.
func NewQuizEngine(bank model.Bank, recorder ResultRecorder, now func() time.Time) (*QuizEngine, error) {
	if err := bank.Validate(); err != nil {
		return nil, err
	}
	if now == nil {
		now = time.Now
	}
	e := &QuizEngine{bank: bank, recorder: recorder, now: now}
	e.Restart()
	return e, nil
}

func (e *QuizEngine) State() QuizState        { return e.state }
func (e *QuizEngine) Index() int              { return e.index }
func (e *QuizEngine) Revealed() bool          { return e.revealed }
func (e *QuizEngine) Total() int              { return len(e.bank) }
func (e *QuizEngine) StartedAt() time.Time    { return e.startedAt }
func (e *QuizEngine) IsCompleted() bool       { return e.state == StateCompleted }
func (e *QuizEngine) Bank() model.Bank        { return e.bank }
func (e *QuizEngine) Current() model.Question { return e.bank[e.index] }

// Answers returns a copy of the recorded answers.
func (e *QuizEngine) Answers() []model.Answer {
	out := make([]model.Answer, len(e.answers))
	copy(out, e.answers)
	return out
}

// Score is the final score once completed, otherwise the running count.
func (e *QuizEngine) Score() int {
	if e.state == StateCompleted {
		return e.score
	}
	return e.countCorrect()
}

// Result is the record produced on completion.
func (e *QuizEngine) Result() (model.QuizResult, bool) {
	if e.result == nil {
		return model.QuizResult{}, false
	}
	return *e.result, true
}

// SubmitAnswer records a for the current question and reveals it. A second
// submission before Advance is ignored and reports false.
func (e *QuizEngine) SubmitAnswer(a model.Answer) (bool, error) {
	if e.state == StateCompleted {
		return false, ErrQuizCompleted
	}
	if e.revealed {
		return false, nil
	}
	e.answers[e.index] = a
	e.revealed = true
	return true, nil
}

func (e *QuizEngine) Advance() error {
	if e.state == StateCompleted {
		return ErrQuizCompleted
	}
	if !e.revealed {
		return ErrNotRevealed
	}
	if e.index < len(e.bank)-1 {
		e.index++
		e.revealed = false
		return nil
	}
	e.complete()
	return nil
}

// Restart returns to the first question with every answer cleared.
func (e *QuizEngine) Restart() {
	e.state = StateInProgress
	e.index = 0
	e.answers = make([]model.Answer, len(e.bank))
	e.revealed = false
	e.score = 0
	e.result = nil
	e.startedAt = e.now()
}

func (e *QuizEngine) complete() {
	e.state = StateCompleted
	e.score = e.countCorrect()

	result := model.NewQuizResult(e.score, len(e.bank), e.startedAt, e.now())
	e.result = &result

	if e.recorder == nil {
		return
	}
	if err := e.recorder.RecordResult(result); err != nil {
		log.Error().Err(err).Int("score", result.Score).Int("total", result.TotalQuestions).Msg("Failed to persist quiz result")
	}
}

func (e *QuizEngine) countCorrect() int {
	n := 0
	for i, q := range e.bank {
		if q.IsCorrect(e.answers[i]) {
			n++
		}
	}
	return n
}
