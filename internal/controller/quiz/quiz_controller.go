package quiz

import (
	"errors"
	"net/http"

	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/dto"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/i18n"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/middleware"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/model"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	quizService service.QuizService
}

func NewQuizController(qs service.QuizService) *QuizController {
	return &QuizController{quizService: qs}
}

// ListQuestions godoc
// @Summary List quiz questions
// @Description The question bank without correct answers or explanations.
// @Tags Quiz
// @Produce json
// @Success 200 {array} dto.QuestionDTO
// @Router /quiz/questions [get]
func (c *QuizController) ListQuestions(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.quizService.Questions())
}

// StartSession godoc
// @Summary Start a quiz session
// @Tags Quiz
// @Produce json
// @Param X-Client-ID header string false "Client identifier; assigned when absent"
// @Success 201 {object} dto.QuizSessionDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /quiz/sessions [post]
func (c *QuizController) StartSession(ctx *gin.Context) {
	sess, err := c.quizService.StartSession(ctx.Request.Context(), middleware.ClientIDFrom(ctx), middleware.LocaleFrom(ctx))
	if err != nil {
		log.Error().Err(err).Msg("StartSession: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to start quiz", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, sess)
}

// GetSession godoc
// @Summary Get a quiz session
// @Tags Quiz
// @Produce json
// @Param id path string true "Session ID"
// @Param X-Client-ID header string true "Client identifier that started the session"
// @Success 200 {object} dto.QuizSessionDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /quiz/sessions/{id} [get]
func (c *QuizController) GetSession(ctx *gin.Context) {
	sess, err := c.quizService.GetSession(ctx.Request.Context(), middleware.ClientIDFrom(ctx), ctx.Param("id"), middleware.LocaleFrom(ctx))
	if err != nil {
		c.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, sess)
}

// SubmitAnswer godoc
// @Summary Answer the current question
// @Description Accepts true/false (or "o"/"x") for O/X questions and a zero-based option index for multiple choice. Resubmitting before advancing is ignored.
// @Tags Quiz
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param X-Client-ID header string true "Client identifier that started the session"
// @Param answer body dto.SubmitAnswerRequest true "Answer"
// @Success 200 {object} dto.QuizSessionDTO
// @Failure 400 {object} dto.ErrorResponse "Answer does not fit the question"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Quiz already completed"
// @Router /quiz/sessions/{id}/answer [post]
func (c *QuizController) SubmitAnswer(ctx *gin.Context) {
	var req dto.SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitAnswer: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	sess, err := c.quizService.SubmitAnswer(ctx.Request.Context(), middleware.ClientIDFrom(ctx), ctx.Param("id"), req.Answer, middleware.LocaleFrom(ctx))
	if err != nil {
		c.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, sess)
}

// Advance godoc
// @Summary Move to the next question
// @Description Completes the quiz and stores the result when called on the last question.
// @Tags Quiz
// @Produce json
// @Param id path string true "Session ID"
// @Param X-Client-ID header string true "Client identifier that started the session"
// @Success 200 {object} dto.QuizSessionDTO
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Answer not submitted yet, or quiz already completed"
// @Router /quiz/sessions/{id}/advance [post]
func (c *QuizController) Advance(ctx *gin.Context) {
	sess, err := c.quizService.Advance(ctx.Request.Context(), middleware.ClientIDFrom(ctx), ctx.Param("id"), middleware.LocaleFrom(ctx))
	if err != nil {
		c.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, sess)
}

// Restart godoc
// @Summary Restart a quiz session
// @Tags Quiz
// @Produce json
// @Param id path string true "Session ID"
// @Param X-Client-ID header string true "Client identifier that started the session"
// @Success 200 {object} dto.QuizSessionDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /quiz/sessions/{id}/restart [post]
func (c *QuizController) Restart(ctx *gin.Context) {
	sess, err := c.quizService.Restart(ctx.Request.Context(), middleware.ClientIDFrom(ctx), ctx.Param("id"), middleware.LocaleFrom(ctx))
	if err != nil {
		c.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, sess)
}

// History godoc
// @Summary Quiz history for the client
// @Tags Quiz
// @Produce json
// @Param X-Client-ID header string true "Client identifier"
// @Success 200 {object} dto.QuizHistoryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quiz/history [get]
func (c *QuizController) History(ctx *gin.Context) {
	clientID := middleware.ClientIDFrom(ctx)
	results, err := c.quizService.History(ctx.Request.Context(), clientID)
	if err != nil {
		c.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.QuizHistoryResponse{ClientID: clientID, Results: results})
}

// Stats godoc
// @Summary Aggregate quiz statistics for the client
// @Tags Quiz
// @Produce json
// @Param X-Client-ID header string true "Client identifier"
// @Success 200 {object} dto.QuizStatsDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /quiz/stats [get]
func (c *QuizController) Stats(ctx *gin.Context) {
	stats, err := c.quizService.Stats(ctx.Request.Context(), middleware.ClientIDFrom(ctx))
	if err != nil {
		c.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

func (c *QuizController) writeError(ctx *gin.Context, err error) {
	locale := middleware.LocaleFrom(ctx)
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: i18n.T(locale, i18n.MsgSessionNotFound)})
	case errors.Is(err, model.ErrAnswerKind):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid answer", Details: []string{err.Error()}})
	case errors.Is(err, service.ErrNotRevealed), errors.Is(err, service.ErrQuizCompleted):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	default:
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Quiz request failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
	}
}
