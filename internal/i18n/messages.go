package i18n

import "strconv"

// MessageKey identifies one API-facing string.
type MessageKey string

const (
	MsgNoPosts           MessageKey = "no_posts"
	MsgNoCategories      MessageKey = "no_categories"
	MsgNoAuthors         MessageKey = "no_authors"
	MsgPostNotFound      MessageKey = "post_not_found"
	MsgSessionNotFound   MessageKey = "session_not_found"
	MsgGradeExcellent    MessageKey = "grade_excellent"
	MsgGradeGreat        MessageKey = "grade_great"
	MsgGradeGood         MessageKey = "grade_good"
	MsgGradeFair         MessageKey = "grade_fair"
	MsgGradeNeedsWork    MessageKey = "grade_needs_improvement"
	MsgCompletionHigh    MessageKey = "completion_high"
	MsgCompletionMid     MessageKey = "completion_mid"
	MsgCompletionLow     MessageKey = "completion_low"
	MsgReadingTimeSuffix MessageKey = "reading_time_suffix"
)

var messages = map[Locale]map[MessageKey]string{
	English: {
		MsgNoPosts:           "No posts found.",
		MsgNoCategories:      "No categories available.",
		MsgNoAuthors:         "No authors available.",
		MsgPostNotFound:      "Post not found.",
		MsgSessionNotFound:   "Quiz session not found.",
		MsgGradeExcellent:    "Excellent",
		MsgGradeGreat:        "Great",
		MsgGradeGood:         "Good",
		MsgGradeFair:         "Fair",
		MsgGradeNeedsWork:    "Needs Improvement",
		MsgCompletionHigh:    "Excellent! You have a deep understanding of technology and social impact. Keep sharing your knowledge with others.",
		MsgCompletionMid:     "Great job! You have a solid foundation. Consider exploring our blog articles to learn more.",
		MsgCompletionLow:     "Good start! There's always more to learn. Check out our blog for insights on technology and social impact.",
		MsgReadingTimeSuffix: " min read",
	},
	Korean: {
		MsgNoPosts:           "게시물이 없습니다.",
		MsgNoCategories:      "카테고리가 없습니다.",
		MsgNoAuthors:         "작성자 정보가 없습니다.",
		MsgPostNotFound:      "게시물을 찾을 수 없습니다.",
		MsgSessionNotFound:   "퀴즈 세션을 찾을 수 없습니다.",
		MsgGradeExcellent:    "훌륭해요",
		MsgGradeGreat:        "아주 좋아요",
		MsgGradeGood:         "좋아요",
		MsgGradeFair:         "괜찮아요",
		MsgGradeNeedsWork:    "더 노력해요",
		MsgCompletionHigh:    "훌륭합니다! 기술과 사회적 임팩트에 대한 깊은 이해를 갖고 계시네요. 지식을 계속 나눠 주세요.",
		MsgCompletionMid:     "잘하셨어요! 탄탄한 기초를 갖추셨습니다. 블로그 글을 통해 더 알아보세요.",
		MsgCompletionLow:     "좋은 시작이에요! 배울 것은 항상 더 있습니다. 기술과 사회적 임팩트에 관한 블로그 글을 확인해 보세요.",
		MsgReadingTimeSuffix: "분 읽기",
	},
}

// T returns the message for the locale, falling back to English, then the key.
func T(l Locale, key MessageKey) string {
	if msg, ok := messages[l][key]; ok {
		return msg
	}
	if msg, ok := messages[DefaultLocale][key]; ok {
		return msg
	}
	return string(key)
}

// ReadingTime renders "5 min read" or "5분 읽기".
func ReadingTime(l Locale, minutes int) string {
	return strconv.Itoa(minutes) + T(l, MsgReadingTimeSuffix)
}
