package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/merpol/pos-api/internal/domain/entity"
	domainRepo "github.com/merpol/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) domainRepo.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *transactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var tx entity.Transaction
	err := r.db.WithContext(ctx).Preload("Client").First(&tx, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &tx, err
}

func (r *transactionRepository) ListForDay(ctx context.Context, merchantID uuid.UUID, day time.Time) ([]entity.Transaction, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	var txs []entity.Transaction
	err := r.db.WithContext(ctx).
		Preload("Client").
		Where("merchant_id = ? AND timestamp >= ? AND timestamp < ?", merchantID, start, end).
		Order("timestamp ASC").
		Find(&txs).Error

	return txs, err
}

func (r *transactionRepository) List(ctx context.Context, merchantID uuid.UUID, params *domainRepo.TransactionFilterParams) ([]entity.Transaction, int64, error) {
	var txs []entity.Transaction
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Transaction{}).
		Where("merchant_id = ?", merchantID)

	if params.Kind != nil {
		query = query.Where("kind = ?", *params.Kind)
	}
	if params.ClientID != nil {
		query = query.Where("client_id = ?", *params.ClientID)
	}
	if params.StartDate != nil {
		query = query.Where("timestamp >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("timestamp < ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Preload("Client").
		Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("timestamp DESC").
		Find(&txs).Error

	return txs, total, err
}
