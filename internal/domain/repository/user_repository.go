package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/merpol/pos-api/internal/domain/entity"
)

// UserRepository defines the interface for operator account operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}

// MerchantRepository defines the interface for merchant data operations
type MerchantRepository interface {
	Create(ctx context.Context, merchant *entity.Merchant) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Merchant, error)
	GetByName(ctx context.Context, name string) (*entity.Merchant, error)
}
