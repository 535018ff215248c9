package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/dto"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/event"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/i18n"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/metrics"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/model"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	// SessionTTL is how long an untouched session stays in memory.
	SessionTTL     = 2 * time.Hour
	persistTimeout = 5 * time.Second
)

var ErrSessionNotFound = errors.New("quiz session not found")

type QuizService interface {
	Questions() []dto.QuestionDTO
	StartSession(ctx context.Context, clientID string, locale i18n.Locale) (*dto.QuizSessionDTO, error)
	GetSession(ctx context.Context, clientID, sessionID string, locale i18n.Locale) (*dto.QuizSessionDTO, error)
	SubmitAnswer(ctx context.Context, clientID, sessionID string, raw json.RawMessage, locale i18n.Locale) (*dto.QuizSessionDTO, error)
	Advance(ctx context.Context, clientID, sessionID string, locale i18n.Locale) (*dto.QuizSessionDTO, error)
	Restart(ctx context.Context, clientID, sessionID string, locale i18n.Locale) (*dto.QuizSessionDTO, error)
	History(ctx context.Context, clientID string) ([]model.QuizResult, error)
	Stats(ctx context.Context, clientID string) (*dto.QuizStatsDTO, error)
}

type quizSession struct {
	mu       sync.Mutex
	id       string
	clientID string
	engine   *QuizEngine

	// touchedAt is guarded by quizService.mu, not by mu.
	touchedAt time.Time
}

type quizService struct {
	bank       model.Bank
	resultRepo repository.ResultRepository
	publisher  event.Publisher
	scores     ScoreService
	now        func() time.Time

	mu       sync.Mutex
	sessions map[string]*quizSession
}

func NewQuizService(
	bank model.Bank,
	resultRepo repository.ResultRepository,
	publisher event.Publisher,
	scores ScoreService,
) QuizService {
	return newQuizService(bank, resultRepo, publisher, scores, time.Now)
}

func newQuizService(
	bank model.Bank,
	resultRepo repository.ResultRepository,
	publisher event.Publisher,
	scores ScoreService,
	now func() time.Time,
) *quizService {
	return &quizService{
		bank:       bank,
		resultRepo: resultRepo,
		publisher:  publisher,
		scores:     scores,
		now:        now,
		sessions:   make(map[string]*quizSession),
	}
}

func (s *quizService) Questions() []dto.QuestionDTO {
	out := make([]dto.QuestionDTO, 0, len(s.bank))
	for _, q := range s.bank {
		out = append(out, questionDTO(q))
	}
	return out
}

// resultRecorder appends completed results to the client's history.
type resultRecorder struct {
	repo      repository.ResultRepository
	clientID  string
	sessionID string
}

func (r *resultRecorder) RecordResult(result model.QuizResult) error {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := r.repo.Append(ctx, r.clientID, result); err != nil {
		metrics.ResultPersistFailures.Inc()
		return fmt.Errorf("append result for session %s: %w", r.sessionID, err)
	}
	log.Info().Str("session_id", r.sessionID).Str("client_id", r.clientID).Int("score", result.Score).Msg("Quiz result stored")
	return nil
}

func (s *quizService) StartSession(ctx context.Context, clientID string, locale i18n.Locale) (*dto.QuizSessionDTO, error) {
	id := uuid.NewString()
	engine, err := NewQuizEngine(s.bank, &resultRecorder{repo: s.resultRepo, clientID: clientID, sessionID: id}, s.now)
	if err != nil {
		return nil, fmt.Errorf("start quiz: %w", err)
	}
	sess := &quizSession{id: id, clientID: clientID, engine: engine, touchedAt: s.now()}

	s.mu.Lock()
	s.evictExpiredLocked()
	s.sessions[id] = sess
	metrics.ActiveQuizSessions.Set(float64(len(s.sessions)))
	s.mu.Unlock()

	log.Info().Str("session_id", id).Str("client_id", clientID).Int("questions", len(s.bank)).Msg("Quiz session started")
	if err := s.publisher.PublishQuizStarted(ctx, event.QuizStartedEvent{
		SessionID:      id,
		ClientID:       clientID,
		TotalQuestions: len(s.bank),
	}); err != nil {
		log.Warn().Err(err).Str("session_id", id).Msg("Failed to publish quiz started event")
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.sessionDTO(sess, locale), nil
}

func (s *quizService) evictExpiredLocked() {
	cutoff := s.now().Add(-SessionTTL)
	for id, sess := range s.sessions {
		if sess.touchedAt.Before(cutoff) {
			delete(s.sessions, id)
			log.Debug().Str("session_id", id).Msg("Evicted idle quiz session")
		}
	}
}

// lookup returns the session only to the client that started it and marks
// it as used so eviction skips it.
func (s *quizService) lookup(clientID, sessionID string) (*quizSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok || sess.clientID != clientID {
		return nil, ErrSessionNotFound
	}
	sess.touchedAt = s.now()
	return sess, nil
}

// withSession runs fn under the session lock and renders the resulting state.
func (s *quizService) withSession(clientID, sessionID string, locale i18n.Locale, fn func(sess *quizSession) error) (*dto.QuizSessionDTO, error) {
	sess, err := s.lookup(clientID, sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if fn != nil {
		if err := fn(sess); err != nil {
			return nil, err
		}
	}
	return s.sessionDTO(sess, locale), nil
}

func (s *quizService) GetSession(_ context.Context, clientID, sessionID string, locale i18n.Locale) (*dto.QuizSessionDTO, error) {
	return s.withSession(clientID, sessionID, locale, nil)
}

func (s *quizService) SubmitAnswer(_ context.Context, clientID, sessionID string, raw json.RawMessage, locale i18n.Locale) (*dto.QuizSessionDTO, error) {
	return s.withSession(clientID, sessionID, locale, func(sess *quizSession) error {
		if sess.engine.IsCompleted() {
			return ErrQuizCompleted
		}
		answer, err := model.ParseAnswer(sess.engine.Current(), raw)
		if err != nil {
			return err
		}
		recorded, err := sess.engine.SubmitAnswer(answer)
		if err != nil {
			return err
		}
		if !recorded {
			log.Debug().Str("session_id", sess.id).Int("index", sess.engine.Index()).Msg("Answer already revealed, ignoring resubmission")
		}
		return nil
	})
}

func (s *quizService) Advance(ctx context.Context, clientID, sessionID string, locale i18n.Locale) (*dto.QuizSessionDTO, error) {
	return s.withSession(clientID, sessionID, locale, func(sess *quizSession) error {
		if err := sess.engine.Advance(); err != nil {
			return err
		}
		if sess.engine.IsCompleted() {
			s.onCompleted(ctx, sess)
		}
		return nil
	})
}

func (s *quizService) onCompleted(ctx context.Context, sess *quizSession) {
	result, ok := sess.engine.Result()
	if !ok {
		return
	}
	pct := s.scores.Percentage(result.Score, result.TotalQuestions)
	metrics.QuizCompletions.Inc()
	metrics.QuizScorePercent.Observe(float64(pct))

	log.Info().Str("session_id", sess.id).Str("client_id", sess.clientID).
		Int("score", result.Score).Int("total", result.TotalQuestions).
		Int("percentage", pct).Int("time_taken", result.TimeTaken).
		Msg("Quiz completed")

	if err := s.publisher.PublishQuizCompleted(ctx, event.QuizCompletedEvent{
		SessionID:      sess.id,
		ClientID:       sess.clientID,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		Percentage:     pct,
		TimeTaken:      result.TimeTaken,
		CompletedAt:    result.CompletedAt,
	}); err != nil {
		log.Warn().Err(err).Str("session_id", sess.id).Msg("Failed to publish quiz completed event")
	}
}

func (s *quizService) Restart(_ context.Context, clientID, sessionID string, locale i18n.Locale) (*dto.QuizSessionDTO, error) {
	return s.withSession(clientID, sessionID, locale, func(sess *quizSession) error {
		sess.engine.Restart()
		log.Info().Str("session_id", sess.id).Msg("Quiz session restarted")
		return nil
	})
}

func (s *quizService) History(ctx context.Context, clientID string) ([]model.QuizResult, error) {
	results, err := s.resultRepo.FindAll(ctx, clientID)
	if err != nil {
		log.Error().Err(err).Str("client_id", clientID).Msg("Failed to load quiz history")
		return nil, fmt.Errorf("error loading quiz history: %w", err)
	}
	return results, nil
}

func (s *quizService) Stats(ctx context.Context, clientID string) (*dto.QuizStatsDTO, error) {
	results, err := s.History(ctx, clientID)
	if err != nil {
		return nil, err
	}
	stats := &dto.QuizStatsDTO{ClientID: clientID, Attempts: len(results)}
	if len(results) == 0 {
		return stats, nil
	}

	sumPct, sumTime := 0, 0
	for _, r := range results {
		pct := s.scores.Percentage(r.Score, r.TotalQuestions)
		if pct > stats.BestPercentage {
			stats.BestPercentage = pct
		}
		sumPct += pct
		sumTime += r.TimeTaken
	}
	stats.AveragePercentage = ScorePercentage(sumPct, 100*len(results))
	stats.AverageTimeTaken = sumTime / len(results)
	last := results[len(results)-1]
	stats.Last = &last
	return stats, nil
}

func questionDTO(q model.Question) dto.QuestionDTO {
	return dto.QuestionDTO{
		ID:         q.ID,
		Type:       q.Kind,
		Question:   q.Prompt,
		Options:    q.Options,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

func (s *quizService) sessionDTO(sess *quizSession, locale i18n.Locale) *dto.QuizSessionDTO {
	e := sess.engine
	out := &dto.QuizSessionDTO{
		ID:             sess.id,
		ClientID:       sess.clientID,
		Locale:         string(locale),
		State:          string(e.State()),
		CurrentIndex:   e.Index(),
		TotalQuestions: e.Total(),
		Answers:        e.Answers(),
		Revealed:       e.Revealed(),
		StartedAt:      e.StartedAt().UTC().Format(model.ISOTimeLayout),
	}

	if !e.IsCompleted() {
		q := questionDTO(e.Current())
		out.Question = &q
		if e.Revealed() {
			current := e.Current()
			selected := out.Answers[e.Index()]
			out.Reveal = &dto.RevealDTO{
				Selected:    selected,
				Correct:     current.Correct,
				IsCorrect:   current.IsCorrect(selected),
				Explanation: current.Explanation,
			}
		}
		return out
	}

	result, _ := e.Result()
	pct := s.scores.Percentage(result.Score, result.TotalQuestions)
	grade := s.scores.Grade(pct, locale)
	out.Summary = &dto.QuizSummaryDTO{
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		Percentage:     pct,
		Grade:          dto.GradeDTO{Tier: int(grade.Tier), Label: grade.Label, Color: grade.Color},
		Message:        s.scores.CompletionMessage(pct, locale),
		TimeTaken:      result.TimeTaken,
		Duration:       s.scores.FormatDuration(result.TimeTaken),
		Result:         result,
	}
	return out
}
