package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// IssuanceHistory represents a prepaid card issued to a client: the NFC card
// number, its PIN, the issued amount and the remaining balance.
type IssuanceHistory struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ClientID            uuid.UUID       `gorm:"type:uuid;not null;index" json:"client_id"`
	CardNumber          string          `gorm:"size:100;not null;index" json:"card_number"`
	PinCode             string          `gorm:"size:20" json:"-"`
	Amount              decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	AmountPaid          decimal.Decimal `gorm:"type:numeric(12,2)" json:"amount_paid"`
	Balance             decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"balance"`
	PaybackPeriodMonths int             `gorm:"default:0" json:"payback_period_months"`
	IssuedAt            time.Time       `gorm:"not null" json:"issued_at"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
	DeletedAt           gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Client       *Client       `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Transactions []Transaction `gorm:"foreignKey:IssuanceHistoryID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new issuance history
func (h *IssuanceHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the IssuanceHistory model
func (IssuanceHistory) TableName() string {
	return "issuance_histories"
}

// CanSpend reports whether the card balance covers the given amount
func (h *IssuanceHistory) CanSpend(amount decimal.Decimal) bool {
	return h.Balance.GreaterThanOrEqual(amount)
}
