package event

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledPublisherIsNoop(t *testing.T) {
	p, err := NewEventPublisher("", "enrich.events")
	require.NoError(t, err)
	assert.False(t, p.Enabled())

	assert.NoError(t, p.PublishQuizStarted(context.Background(), QuizStartedEvent{SessionID: "s1"}))
	assert.NoError(t, p.PublishQuizCompleted(context.Background(), QuizCompletedEvent{SessionID: "s1", Score: 3}))
	assert.NoError(t, p.Close())
}

func TestEnvelopeCarriesTypeAndPayload(t *testing.T) {
	env := NewEnvelope(EventTypeQuizCompleted, QuizCompletedEvent{SessionID: "s1", Score: 7, TotalQuestions: 8})
	assert.NotEmpty(t, env.ID)
	assert.False(t, env.OccurredAt.IsZero())

	raw, err := json.Marshal(env)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "quiz.completed", decoded["type"])
	payload := decoded["payload"].(map[string]any)
	assert.Equal(t, "s1", payload["session_id"])
	assert.EqualValues(t, 7, payload["score"])
}
