package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/merpol/pos-api/internal/domain/entity"
	domainRepo "github.com/merpol/pos-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type printStateRepository struct {
	db *gorm.DB
}

// NewPrintStateRepository creates a new print state repository
func NewPrintStateRepository(db *gorm.DB) domainRepo.PrintStateRepository {
	return &printStateRepository{db: db}
}

func (r *printStateRepository) Get(ctx context.Context, merchantID uuid.UUID) (*entity.PrintState, error) {
	var state entity.PrintState
	err := r.db.WithContext(ctx).First(&state, "merchant_id = ?", merchantID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &state, err
}

func (r *printStateRepository) SaveLastReceipt(ctx context.Context, merchantID uuid.UUID, text string) error {
	state := entity.PrintState{
		MerchantID:  merchantID,
		LastReceipt: text,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "merchant_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"last_receipt", "updated_at"}),
		}).
		Create(&state).Error
}

func (r *printStateRepository) StampDailyReport(ctx context.Context, merchantID uuid.UUID, at time.Time) error {
	state := entity.PrintState{
		MerchantID:           merchantID,
		DailyReportPrintedAt: &at,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "merchant_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"daily_report_printed_at", "updated_at"}),
		}).
		Create(&state).Error
}
