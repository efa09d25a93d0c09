package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/merpol/pos-api/internal/domain/entity"
	domainRepo "github.com/merpol/pos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type issuanceHistoryRepository struct {
	db *gorm.DB
}

// NewIssuanceHistoryRepository creates a new issuance history repository
func NewIssuanceHistoryRepository(db *gorm.DB) domainRepo.IssuanceHistoryRepository {
	return &issuanceHistoryRepository{db: db}
}

func (r *issuanceHistoryRepository) Create(ctx context.Context, history *entity.IssuanceHistory) error {
	return r.db.WithContext(ctx).Create(history).Error
}

func (r *issuanceHistoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.IssuanceHistory, error) {
	var history entity.IssuanceHistory
	err := r.db.WithContext(ctx).Preload("Client").First(&history, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &history, err
}

func (r *issuanceHistoryRepository) GetByCardNumber(ctx context.Context, cardNumber string) (*entity.IssuanceHistory, error) {
	var history entity.IssuanceHistory
	err := r.db.WithContext(ctx).
		Preload("Client").
		Where("card_number = ?", cardNumber).
		Order("issued_at DESC").
		First(&history).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &history, err
}

func (r *issuanceHistoryRepository) UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	return r.db.WithContext(ctx).
		Model(&entity.IssuanceHistory{}).
		Where("id = ?", id).
		Update("balance", balance).Error
}
