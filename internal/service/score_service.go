package service

import (
	"fmt"
	"math"

	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/i18n"
)

type GradeTier int

const (
	TierExcellent GradeTier = iota + 1
	TierGreat
	TierGood
	TierFair
	TierNeedsImprovement
)

// Grade is a percentage band with its display label and color.
type Grade struct {
	Tier  GradeTier
	Label string
	Color string
}

// gradeBands are checked in order; the first band whose floor the percentage reaches wins.
var gradeBands = []struct {
	floor int
	tier  GradeTier
	key   i18n.MessageKey
	color string
}{
	{90, TierExcellent, i18n.MsgGradeExcellent, "green"},
	{80, TierGreat, i18n.MsgGradeGreat, "blue"},
	{70, TierGood, i18n.MsgGradeGood, "yellow"},
	{60, TierFair, i18n.MsgGradeFair, "orange"},
	{0, TierNeedsImprovement, i18n.MsgGradeNeedsWork, "red"},
}

type ScoreService interface {
	Percentage(score, total int) int
	Grade(percentage int, locale i18n.Locale) Grade
	CompletionMessage(percentage int, locale i18n.Locale) string
	FormatDuration(seconds int) string
}

type scoreService struct{}

func NewScoreService() ScoreService {
	return &scoreService{}
}

func (s *scoreService) Percentage(score, total int) int {
	return ScorePercentage(score, total)
}

func (s *scoreService) Grade(percentage int, locale i18n.Locale) Grade {
	return GradeFor(percentage, locale)
}

func (s *scoreService) CompletionMessage(percentage int, locale i18n.Locale) string {
	return CompletionMessage(percentage, locale)
}

func (s *scoreService) FormatDuration(seconds int) string {
	return FormatDuration(seconds)
}

// ScorePercentage is round(100*score/total), halves rounding up. A zero total scores 0.
func ScorePercentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Floor(100*float64(score)/float64(total) + 0.5))
}

func GradeFor(percentage int, locale i18n.Locale) Grade {
	for _, band := range gradeBands {
		if percentage >= band.floor {
			return Grade{Tier: band.tier, Label: i18n.T(locale, band.key), Color: band.color}
		}
	}
	last := gradeBands[len(gradeBands)-1]
	return Grade{Tier: last.tier, Label: i18n.T(locale, last.key), Color: last.color}
}

func CompletionMessage(percentage int, locale i18n.Locale) string {
	switch {
	case percentage >= 80:
		return i18n.T(locale, i18n.MsgCompletionHigh)
	case percentage >= 60:
		return i18n.T(locale, i18n.MsgCompletionMid)
	default:
		return i18n.T(locale, i18n.MsgCompletionLow)
	}
}

// FormatDuration renders whole seconds as m:ss.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
