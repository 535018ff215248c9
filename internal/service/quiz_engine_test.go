package service

import (
	"errors"
	"testing"
	"time"

	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type recordingRecorder struct {
	results []model.QuizResult
	err     error
}

func (r *recordingRecorder) RecordResult(result model.QuizResult) error {
	if r.err != nil {
		return r.err
	}
	r.results = append(r.results, result)
	return nil
}

func twoQuestionBank() model.Bank {
	return model.Bank{
		{ID: 1, Kind: model.KindBinary, Prompt: "Is it true?", Correct: model.BoolAnswer(true)},
		{ID: 2, Kind: model.KindMultiple, Prompt: "Pick one", Options: []string{"a", "b", "c"}, Correct: model.IndexAnswer(1)},
	}
}

func newTestEngine(t *testing.T, rec ResultRecorder) (*QuizEngine, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
	engine, err := NewQuizEngine(twoQuestionBank(), rec, clock.Now)
	require.NoError(t, err)
	return engine, clock
}

func TestQuizEngineInitialState(t *testing.T) {
	engine, _ := newTestEngine(t, nil)

	assert.Equal(t, StateInProgress, engine.State())
	assert.Equal(t, 0, engine.Index())
	assert.False(t, engine.Revealed())
	for _, a := range engine.Answers() {
		assert.False(t, a.IsAnswered())
	}
	_, ok := engine.Result()
	assert.False(t, ok)
}

func TestQuizEngineScenario(t *testing.T) {
	rec := &recordingRecorder{}
	engine, clock := newTestEngine(t, rec)

	recorded, err := engine.SubmitAnswer(model.BoolAnswer(true))
	require.NoError(t, err)
	assert.True(t, recorded)
	require.NoError(t, engine.Advance())
	assert.Equal(t, 1, engine.Index())
	assert.False(t, engine.Revealed())

	clock.Advance(95 * time.Second)
	_, err = engine.SubmitAnswer(model.IndexAnswer(2))
	require.NoError(t, err)
	require.NoError(t, engine.Advance())

	assert.Equal(t, StateCompleted, engine.State())
	assert.Equal(t, 1, engine.Score())

	require.Len(t, rec.results, 1)
	assert.Equal(t, 1, rec.results[0].Score)
	assert.Equal(t, 2, rec.results[0].TotalQuestions)
	assert.Equal(t, 95, rec.results[0].TimeTaken)
	assert.Equal(t, "2024-05-01T09:01:35.000Z", rec.results[0].CompletedAt)

	result, ok := engine.Result()
	require.True(t, ok)
	assert.Equal(t, rec.results[0], result)
}

func TestQuizEngineScoreMatchesCorrectCount(t *testing.T) {
	bank := model.Bank{
		{ID: 1, Kind: model.KindBinary, Correct: model.BoolAnswer(false)},
		{ID: 2, Kind: model.KindBinary, Correct: model.BoolAnswer(true)},
		{ID: 3, Kind: model.KindMultiple, Options: []string{"a", "b"}, Correct: model.IndexAnswer(0)},
		{ID: 4, Kind: model.KindMultiple, Options: []string{"a", "b", "c", "d"}, Correct: model.IndexAnswer(3)},
	}
	answers := []model.Answer{model.BoolAnswer(false), model.BoolAnswer(false), model.IndexAnswer(0), model.IndexAnswer(3)}

	engine, err := NewQuizEngine(bank, nil, nil)
	require.NoError(t, err)
	for _, a := range answers {
		_, err := engine.SubmitAnswer(a)
		require.NoError(t, err)
		require.NoError(t, engine.Advance())
	}

	assert.True(t, engine.IsCompleted())
	assert.Equal(t, 3, engine.Score())
}

func TestQuizEngineSecondSubmitIsIgnored(t *testing.T) {
	engine, _ := newTestEngine(t, nil)

	_, err := engine.SubmitAnswer(model.BoolAnswer(false))
	require.NoError(t, err)
	recorded, err := engine.SubmitAnswer(model.BoolAnswer(true))
	require.NoError(t, err)

	assert.False(t, recorded)
	assert.Equal(t, model.BoolAnswer(false), engine.Answers()[0])
}

func TestQuizEngineAdvanceRequiresReveal(t *testing.T) {
	engine, _ := newTestEngine(t, nil)

	assert.ErrorIs(t, engine.Advance(), ErrNotRevealed)
	assert.Equal(t, 0, engine.Index())
}

func TestQuizEngineRejectsActionsAfterCompletion(t *testing.T) {
	engine, _ := newTestEngine(t, nil)
	for i := 0; i < 2; i++ {
		_, err := engine.SubmitAnswer(model.BoolAnswer(true))
		require.NoError(t, err)
		require.NoError(t, engine.Advance())
	}

	_, err := engine.SubmitAnswer(model.BoolAnswer(true))
	assert.ErrorIs(t, err, ErrQuizCompleted)
	assert.ErrorIs(t, engine.Advance(), ErrQuizCompleted)
}

func TestQuizEngineRestart(t *testing.T) {
	engine, clock := newTestEngine(t, nil)
	firstStart := engine.StartedAt()
	for i := 0; i < 2; i++ {
		_, err := engine.SubmitAnswer(model.BoolAnswer(true))
		require.NoError(t, err)
		require.NoError(t, engine.Advance())
	}
	require.True(t, engine.IsCompleted())

	clock.Advance(time.Minute)
	engine.Restart()

	assert.Equal(t, StateInProgress, engine.State())
	assert.Equal(t, 0, engine.Index())
	assert.False(t, engine.Revealed())
	assert.Equal(t, 0, engine.Score())
	for _, a := range engine.Answers() {
		assert.False(t, a.IsAnswered())
	}
	assert.False(t, engine.StartedAt().Before(firstStart))
	assert.True(t, engine.StartedAt().After(firstStart))
	_, ok := engine.Result()
	assert.False(t, ok)
}

func TestQuizEngineRecorderFailureStillCompletes(t *testing.T) {
	rec := &recordingRecorder{err: errors.New("storage unavailable")}
	engine, _ := newTestEngine(t, rec)

	_, err := engine.SubmitAnswer(model.BoolAnswer(true))
	require.NoError(t, err)
	require.NoError(t, engine.Advance())
	_, err = engine.SubmitAnswer(model.IndexAnswer(1))
	require.NoError(t, err)
	require.NoError(t, engine.Advance())

	assert.True(t, engine.IsCompleted())
	assert.Equal(t, 2, engine.Score())
	result, ok := engine.Result()
	require.True(t, ok)
	assert.Equal(t, 2, result.Score)
}

func TestNewQuizEngineRejectsEmptyBank(t *testing.T) {
	_, err := NewQuizEngine(model.Bank{}, nil, nil)
	assert.ErrorIs(t, err, model.ErrEmptyBank)
}

func TestResultRecorderFunc(t *testing.T) {
	var got model.QuizResult
	rec := ResultRecorderFunc(func(r model.QuizResult) error {
		got = r
		return nil
	})
	require.NoError(t, rec.RecordResult(model.QuizResult{Score: 4}))
	assert.Equal(t, 4, got.Score)
}
