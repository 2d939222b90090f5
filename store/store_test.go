package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"app/models"
)

func TestMemoryStoreEmpty(t *testing.T) {
	s := NewMemoryStore()

	stats, err := s.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalPredictions)
	assert.Equal(t, 0.0, stats.AvgConfidence)
	assert.True(t, stats.LastUpdated.IsZero())
}

func TestMemoryStoreAccumulates(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	first := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	require.NoError(t, s.Record(ctx, models.PredictionRecord{ProductID: "A", Confidence: 0.6, CreatedAt: first}))
	require.NoError(t, s.Record(ctx, models.PredictionRecord{ProductID: "B", Confidence: 0.8, CreatedAt: second}))

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalPredictions)
	assert.InDelta(t, 0.7, stats.AvgConfidence, 1e-9)
	assert.Equal(t, second, stats.LastUpdated)
}
