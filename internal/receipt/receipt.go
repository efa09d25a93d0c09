package receipt

import (
	"time"

	"github.com/merpol/pos-api/internal/domain/enum"
	"github.com/merpol/pos-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// Clock supplies the timestamp printed on receipts
type Clock interface {
	Now() time.Time
}

// NumberGenerator supplies display-only receipt reference numbers
type NumberGenerator interface {
	Next() string
}

type locationClock struct {
	loc *time.Location
}

func (c locationClock) Now() time.Time { return time.Now().In(c.loc) }

// LocationClock returns a Clock that reports time in the given location.
// The daily-report window follows the merchant's business day, not the
// timezone the server happens to run in.
func LocationClock(loc *time.Location) Clock { return locationClock{loc: loc} }

type uuidNumbers struct{}

func (uuidNumbers) Next() string { return utils.GenerateReceiptNumber() }

// UUIDNumbers returns a NumberGenerator backed by random UUID prefixes
func UUIDNumbers() NumberGenerator { return uuidNumbers{} }

// Customer identifies the card holder printed on a receipt
type Customer struct {
	Name string
	Code string
}

// SaleInput is the input record for a single sale/retour receipt
type SaleInput struct {
	Amount              decimal.Decimal
	Customer            Customer
	MerchantName        string
	Kind                enum.TransactionKind
	PaybackPeriodMonths int
}

// BalanceInput is the input record for a balance inquiry receipt
type BalanceInput struct {
	Balance             decimal.Decimal
	CardNumber          string
	Customer            Customer
	MerchantName        string
	PaybackPeriodMonths int
}

// Transaction is one line item of a daily report. ClientID is printed
// verbatim; Amount is non-negative with direction carried by Kind.
type Transaction struct {
	ClientID            string
	Amount              decimal.Decimal
	Kind                enum.TransactionKind
	Timestamp           time.Time
	PaybackPeriodMonths int
}
