package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/merpol/pos-api/internal/domain/entity"
)

// ClientRepository defines the interface for client data operations
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)
	GetByCode(ctx context.Context, code string) (*entity.Client, error)
}
