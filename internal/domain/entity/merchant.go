package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Merchant represents a store that accepts prepaid card payments.
// Its name is printed on every receipt.
type Merchant struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name           string         `gorm:"size:255;not null" json:"name"`
	SupportContact string         `gorm:"size:50" json:"support_contact,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Users        []User        `gorm:"foreignKey:MerchantID" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:MerchantID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new merchant
func (m *Merchant) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Merchant model
func (Merchant) TableName() string {
	return "merchants"
}
