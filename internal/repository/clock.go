package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"volunteer-dispatch/internal/domain"
)

// ClockConfigRepo persists the clock singleton.
type ClockConfigRepo struct{ db *pgxpool.Pool }

// NewClockConfigRepo creates a new ClockConfigRepo.
func NewClockConfigRepo(db *pgxpool.Pool) *ClockConfigRepo { return &ClockConfigRepo{db: db} }

// Load returns the saved configuration. ok is false when nothing has been saved yet.
func (r *ClockConfigRepo) Load(ctx context.Context) (domain.ClockConfig, bool, error) {
	var (
		cfg domain.ClockConfig
		ns  int64
	)
	err := r.db.QueryRow(ctx, `SELECT clock, risk_window_ns FROM clock_config WHERE id = 1`).
		Scan(&cfg.Clock, &ns)
	if err != nil {
		if IsNotFound(err) {
			return domain.ClockConfig{}, false, nil
		}
		return domain.ClockConfig{}, false, fmt.Errorf("load clock config: %w", err)
	}
	cfg.Clock = cfg.Clock.UTC()
	cfg.RiskWindow = time.Duration(ns)
	return cfg, true, nil
}

// Save upserts the configuration.
func (r *ClockConfigRepo) Save(ctx context.Context, cfg domain.ClockConfig) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO clock_config(id, clock, risk_window_ns) VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET clock = EXCLUDED.clock, risk_window_ns = EXCLUDED.risk_window_ns`,
		cfg.Clock, int64(cfg.RiskWindow))
	if err != nil {
		return fmt.Errorf("save clock config: %w", err)
	}
	return nil
}
