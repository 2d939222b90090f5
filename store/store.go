// Package store accumulates prediction outcomes so the insights
// endpoint reports real counts instead of placeholders.
package store

import (
	"context"
	"sync"
	"time"

	"app/models"
)

// Stats summarizes the prediction log.
type Stats struct {
	TotalPredictions int
	AvgConfidence    float64
	LastUpdated      time.Time
}

// PredictionStore records recommendation outcomes and summarizes
// them.
type PredictionStore interface {
	Record(ctx context.Context, rec models.PredictionRecord) error
	Stats(ctx context.Context) (Stats, error)
}

// MemoryStore keeps the prediction log in process memory. It is the
// default when no DATABASE_URL is configured, preserving the
// service's no-persistence character.
type MemoryStore struct {
	mu      sync.RWMutex
	records []models.PredictionRecord
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Record appends one prediction outcome.
func (s *MemoryStore) Record(_ context.Context, rec models.PredictionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	return nil
}

// Stats summarizes all recorded predictions.
func (s *MemoryStore) Stats(_ context.Context) (Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Stats{TotalPredictions: len(s.records)}
	if len(s.records) == 0 {
		return stats, nil
	}

	var sum float64
	for _, rec := range s.records {
		sum += rec.Confidence
		if rec.CreatedAt.After(stats.LastUpdated) {
			stats.LastUpdated = rec.CreatedAt
		}
	}
	stats.AvgConfidence = sum / float64(len(s.records))
	return stats, nil
}
