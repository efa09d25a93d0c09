package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/merpol/pos-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction represents a single card transaction recorded by a merchant.
// Amount is always non-negative; the direction (sale vs return) is carried by
// Kind, never by a negative amount.
type Transaction struct {
	ID                  uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	ClientID            uuid.UUID            `gorm:"type:uuid;not null;index" json:"client_id"`
	MerchantID          uuid.UUID            `gorm:"type:uuid;not null;index" json:"merchant_id"`
	IssuanceHistoryID   uuid.UUID            `gorm:"type:uuid;not null;index" json:"issuance_history_id"`
	Kind                enum.TransactionKind `gorm:"default:0" json:"kind"`
	Amount              decimal.Decimal      `gorm:"type:numeric(12,2);not null" json:"amount"`
	PaybackPeriodMonths int                  `gorm:"default:0" json:"payback_period_months"`
	Timestamp           time.Time            `gorm:"not null;index" json:"timestamp"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
	DeletedAt           gorm.DeletedAt       `gorm:"index" json:"-"`

	// Relationships
	Client          *Client          `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Merchant        Merchant         `gorm:"foreignKey:MerchantID" json:"-"`
	IssuanceHistory *IssuanceHistory `gorm:"foreignKey:IssuanceHistoryID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}

// SignedAmount returns the amount with its direction applied:
// positive for Expense, negative for Retour.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Kind == enum.KindRetour {
		return t.Amount.Neg()
	}
	return t.Amount
}
