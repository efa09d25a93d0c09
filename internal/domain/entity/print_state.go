package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PrintState holds per-merchant printing state: the last successfully printed
// receipt (kept for reprints) and the timestamp of the last daily report.
// Write-on-success, read-on-demand; one row per merchant.
type PrintState struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	MerchantID           uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"merchant_id"`
	LastReceipt          string     `gorm:"type:text" json:"last_receipt,omitempty"`
	DailyReportPrintedAt *time.Time `json:"daily_report_printed_at,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new print state
func (p *PrintState) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PrintState model
func (PrintState) TableName() string {
	return "print_states"
}
