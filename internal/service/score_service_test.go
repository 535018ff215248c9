package service

import (
	"testing"

	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/i18n"
	"github.com/stretchr/testify/assert"
)

func TestScorePercentage(t *testing.T) {
	assert.Equal(t, 0, ScorePercentage(0, 0))
	assert.Equal(t, 50, ScorePercentage(1, 2))
	assert.Equal(t, 88, ScorePercentage(7, 8))
	assert.Equal(t, 63, ScorePercentage(5, 8))
	assert.Equal(t, 67, ScorePercentage(2, 3))
	assert.Equal(t, 100, ScorePercentage(8, 8))
}

func TestGradeFor(t *testing.T) {
	tests := []struct {
		pct   int
		tier  GradeTier
		label string
		color string
	}{
		{100, TierExcellent, "Excellent", "green"},
		{90, TierExcellent, "Excellent", "green"},
		{89, TierGreat, "Great", "blue"},
		{85, TierGreat, "Great", "blue"},
		{80, TierGreat, "Great", "blue"},
		{79, TierGood, "Good", "yellow"},
		{70, TierGood, "Good", "yellow"},
		{69, TierFair, "Fair", "orange"},
		{60, TierFair, "Fair", "orange"},
		{59, TierNeedsImprovement, "Needs Improvement", "red"},
		{0, TierNeedsImprovement, "Needs Improvement", "red"},
	}
	for _, tt := range tests {
		g := GradeFor(tt.pct, i18n.English)
		assert.Equal(t, tt.tier, g.Tier, "pct %d", tt.pct)
		assert.Equal(t, tt.label, g.Label, "pct %d", tt.pct)
		assert.Equal(t, tt.color, g.Color, "pct %d", tt.pct)
	}

	assert.Equal(t, "훌륭해요", GradeFor(95, i18n.Korean).Label)
}

func TestCompletionMessageBands(t *testing.T) {
	assert.Equal(t, i18n.T(i18n.English, i18n.MsgCompletionHigh), CompletionMessage(80, i18n.English))
	assert.Equal(t, i18n.T(i18n.English, i18n.MsgCompletionMid), CompletionMessage(60, i18n.English))
	assert.Equal(t, i18n.T(i18n.English, i18n.MsgCompletionLow), CompletionMessage(59, i18n.English))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0:00", FormatDuration(0))
	assert.Equal(t, "0:07", FormatDuration(7))
	assert.Equal(t, "1:05", FormatDuration(65))
	assert.Equal(t, "12:00", FormatDuration(720))
	assert.Equal(t, "0:00", FormatDuration(-3))
}
