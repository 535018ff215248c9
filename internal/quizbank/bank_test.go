package quizbank

import (
	"testing"

	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedBank(t *testing.T) {
	bank, err := Load()
	require.NoError(t, err)
	require.Len(t, bank, 8)

	first := bank[0]
	assert.Equal(t, model.KindBinary, first.Kind)
	b, ok := first.Correct.Bool()
	require.True(t, ok)
	assert.False(t, b)

	last := bank[7]
	assert.Equal(t, model.KindMultiple, last.Kind)
	assert.Len(t, last.Options, 4)
	idx, ok := last.Correct.Index()
	require.True(t, ok)
	assert.Equal(t, 2, idx)
	assert.Equal(t, model.DifficultyHard, last.Difficulty)
}

func TestParseRejectsInvalidBanks(t *testing.T) {
	cases := map[string]string{
		"empty":            `[]`,
		"index on ox":      "- {id: 1, type: ox, question: q, correctAnswer: 1}",
		"bool on multiple": "- {id: 1, type: multiple, question: q, options: [a, b], correctAnswer: true}",
		"index out of range": "- {id: 1, type: multiple, question: q, options: [a, b], correctAnswer: 2}",
		"duplicate id": "- {id: 1, type: ox, question: q, correctAnswer: true}\n" +
			"- {id: 1, type: ox, question: r, correctAnswer: false}",
		"string answer": "- {id: 1, type: ox, question: q, correctAnswer: yes-please}",
		"not yaml list": "id: 1",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(src))
			assert.Error(t, err)
		})
	}
}
