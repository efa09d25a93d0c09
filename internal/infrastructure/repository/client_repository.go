package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/merpol/pos-api/internal/domain/entity"
	domainRepo "github.com/merpol/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) domainRepo.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *clientRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	var client entity.Client
	err := r.db.WithContext(ctx).First(&client, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &client, err
}

func (r *clientRepository) GetByCode(ctx context.Context, code string) (*entity.Client, error) {
	var client entity.Client
	err := r.db.WithContext(ctx).First(&client, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &client, err
}

type merchantRepository struct {
	db *gorm.DB
}

// NewMerchantRepository creates a new merchant repository
func NewMerchantRepository(db *gorm.DB) domainRepo.MerchantRepository {
	return &merchantRepository{db: db}
}

func (r *merchantRepository) Create(ctx context.Context, merchant *entity.Merchant) error {
	return r.db.WithContext(ctx).Create(merchant).Error
}

func (r *merchantRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Merchant, error) {
	var merchant entity.Merchant
	err := r.db.WithContext(ctx).First(&merchant, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &merchant, err
}

func (r *merchantRepository) GetByName(ctx context.Context, name string) (*entity.Merchant, error) {
	var merchant entity.Merchant
	err := r.db.WithContext(ctx).First(&merchant, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &merchant, err
}
