package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/merpol/pos-api/internal/domain/entity"
	"github.com/merpol/pos-api/internal/domain/enum"
	"github.com/merpol/pos-api/pkg/pagination"
)

// TransactionRepository defines the interface for transaction data operations.
// ListForDay is the source of the daily receipt: all of a merchant's
// transactions whose timestamp falls on the given local day.
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	ListForDay(ctx context.Context, merchantID uuid.UUID, day time.Time) ([]entity.Transaction, error)
	List(ctx context.Context, merchantID uuid.UUID, params *TransactionFilterParams) ([]entity.Transaction, int64, error)
}

// TransactionFilterParams contains filtering parameters for transaction queries
type TransactionFilterParams struct {
	Pagination *pagination.PaginationParams
	Kind       *enum.TransactionKind
	ClientID   *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}
