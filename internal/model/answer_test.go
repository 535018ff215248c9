package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerEqualityIsStrict(t *testing.T) {
	assert.True(t, BoolAnswer(true).Equal(BoolAnswer(true)))
	assert.False(t, BoolAnswer(true).Equal(BoolAnswer(false)))
	assert.True(t, IndexAnswer(1).Equal(IndexAnswer(1)))
	assert.False(t, IndexAnswer(1).Equal(BoolAnswer(true)))
	assert.False(t, IndexAnswer(0).Equal(BoolAnswer(false)))
	assert.True(t, Unanswered().Equal(Answer{}))
}

func TestAnswerJSON(t *testing.T) {
	answers := []Answer{Unanswered(), BoolAnswer(true), IndexAnswer(2)}
	raw, err := json.Marshal(answers)
	require.NoError(t, err)
	assert.JSONEq(t, `[null, true, 2]`, string(raw))

	var decoded []Answer
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded, 3)
	for i := range answers {
		assert.True(t, answers[i].Equal(decoded[i]), "index %d", i)
	}

	var bad Answer
	assert.Error(t, json.Unmarshal([]byte(`"maybe"`), &bad))
}

func TestParseAnswer(t *testing.T) {
	binary := Question{ID: 1, Kind: KindBinary, Correct: BoolAnswer(true)}
	multiple := Question{ID: 2, Kind: KindMultiple, Options: []string{"a", "b", "c"}, Correct: IndexAnswer(1)}

	cases := []struct {
		name    string
		q       Question
		raw     string
		want    Answer
		wantErr bool
	}{
		{"bool", binary, `true`, BoolAnswer(true), false},
		{"o string", binary, `"o"`, BoolAnswer(true), false},
		{"x string", binary, `"x"`, BoolAnswer(false), false},
		{"index on binary", binary, `1`, Answer{}, true},
		{"index", multiple, `2`, IndexAnswer(2), false},
		{"negative index", multiple, `-1`, Answer{}, true},
		{"out of range", multiple, `3`, Answer{}, true},
		{"bool on multiple", multiple, `true`, Answer{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAnswer(tc.q, json.RawMessage(tc.raw))
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrAnswerKind))
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "got %s", got)
		})
	}
}

func TestQuestionValidate(t *testing.T) {
	assert.NoError(t, Question{ID: 1, Kind: KindBinary, Correct: BoolAnswer(false)}.Validate())
	assert.Error(t, Question{ID: 1, Kind: KindBinary, Options: []string{"a"}, Correct: BoolAnswer(false)}.Validate())
	assert.Error(t, Question{ID: 1, Kind: KindBinary, Correct: IndexAnswer(0)}.Validate())
	assert.Error(t, Question{ID: 1, Kind: KindMultiple, Options: []string{"a"}, Correct: IndexAnswer(1)}.Validate())
	assert.Error(t, Question{ID: 1, Kind: "essay", Correct: BoolAnswer(true)}.Validate())
	assert.ErrorIs(t, Bank{}.Validate(), ErrEmptyBank)
}

func TestQuestionIsCorrect(t *testing.T) {
	q := Question{ID: 1, Kind: KindBinary, Correct: BoolAnswer(false)}
	assert.True(t, q.IsCorrect(BoolAnswer(false)))
	assert.False(t, q.IsCorrect(Unanswered()))
	assert.False(t, q.IsCorrect(IndexAnswer(0)))
}
