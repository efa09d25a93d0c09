package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/merpol/pos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// IssuanceHistoryRepository defines the interface for prepaid card data operations
type IssuanceHistoryRepository interface {
	Create(ctx context.Context, history *entity.IssuanceHistory) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.IssuanceHistory, error)
	// GetByCardNumber returns the most recent issuance for a scanned card,
	// with the owning client preloaded. Returns nil when the card is unknown.
	GetByCardNumber(ctx context.Context, cardNumber string) (*entity.IssuanceHistory, error)
	UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error
}
