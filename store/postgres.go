package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"app/models"
)

// PostgresStore persists the prediction log, selected when
// DATABASE_URL is set.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore wraps an existing connection pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// EnsureSchema creates the prediction_log table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS prediction_log (
			id BIGSERIAL PRIMARY KEY,
			product_id TEXT NOT NULL,
			predicted_demand DOUBLE PRECISION NOT NULL,
			confidence DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create prediction_log table: %w", err)
	}
	return nil
}

// Record inserts one prediction outcome.
func (s *PostgresStore) Record(ctx context.Context, rec models.PredictionRecord) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO prediction_log (product_id, predicted_demand, confidence, created_at) VALUES ($1, $2, $3, $4)`,
		rec.ProductID, rec.PredictedDemand, rec.Confidence, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert prediction record: %w", err)
	}
	return nil
}

// Stats summarizes all recorded predictions.
func (s *PostgresStore) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	var lastUpdated *time.Time

	row := s.pool.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(AVG(confidence), 0), MAX(created_at) FROM prediction_log`)
	if err := row.Scan(&stats.TotalPredictions, &stats.AvgConfidence, &lastUpdated); err != nil {
		return Stats{}, fmt.Errorf("failed to query prediction stats: %w", err)
	}
	if lastUpdated != nil {
		stats.LastUpdated = *lastUpdated
	}
	return stats, nil
}
