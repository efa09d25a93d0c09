package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/merpol/pos-api/internal/domain/entity"
)

// PrintStateRepository is the key-value store for per-merchant printing state:
// last printed receipt (for reprints) and the daily-report stamp.
type PrintStateRepository interface {
	// Get returns the merchant's print state, or nil if none exists yet.
	Get(ctx context.Context, merchantID uuid.UUID) (*entity.PrintState, error)
	// SaveLastReceipt upserts the last successfully printed receipt text.
	SaveLastReceipt(ctx context.Context, merchantID uuid.UUID, text string) error
	// StampDailyReport upserts the time the daily report was last printed.
	StampDailyReport(ctx context.Context, merchantID uuid.UUID, at time.Time) error
}
