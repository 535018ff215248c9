package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/model"
	"github.com/rs/zerolog/log"
)

// ResultsKey is the storage key holding the ordered result list.
const ResultsKey = "quizResults"

type ResultRepository interface {
	Append(ctx context.Context, clientID string, result model.QuizResult) error
	FindAll(ctx context.Context, clientID string) ([]model.QuizResult, error)
}

type resultRepository struct {
	storage Storage
}

func NewResultRepository(storage Storage) ResultRepository {
	return &resultRepository{storage: storage}
}

func resultsKey(clientID string) string {
	if clientID == "" {
		return ResultsKey
	}
	return ResultsKey + ":" + clientID
}

// Append reads the full list, appends and writes it back. There is no
// protection against concurrent writers for the same client.
func (r *resultRepository) Append(ctx context.Context, clientID string, result model.QuizResult) error {
	results, err := r.FindAll(ctx, clientID)
	if err != nil {
		return err
	}
	results = append(results, result)

	data, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("encode quiz results: %w", err)
	}
	return r.storage.Write(ctx, resultsKey(clientID), data)
}

// FindAll returns results in insertion order. A corrupt stored list reads as empty.
func (r *resultRepository) FindAll(ctx context.Context, clientID string) ([]model.QuizResult, error) {
	key := resultsKey(clientID)
	raw, err := r.storage.Read(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read quiz results: %w", err)
	}
	if len(raw) == 0 {
		return []model.QuizResult{}, nil
	}

	var results []model.QuizResult
	if err := json.Unmarshal(raw, &results); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Stored quiz results are not valid JSON, treating as empty")
		return []model.QuizResult{}, nil
	}
	if results == nil {
		results = []model.QuizResult{}
	}
	return results, nil
}
