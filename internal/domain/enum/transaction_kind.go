package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// TransactionKind represents the direction of a card transaction.
// Expense is a sale and adds to the daily total; Retour is a return/refund
// and subtracts from it. The amount itself is always non-negative.
type TransactionKind int

const (
	KindExpense TransactionKind = 0
	KindRetour  TransactionKind = 1
)

func (k TransactionKind) String() string {
	return [...]string{"Expense", "Retour"}[k]
}

// Label returns the wording printed on single-sale receipts
func (k TransactionKind) Label() string {
	if k == KindRetour {
		return "Retour"
	}
	return "Sale"
}

// Valid reports whether k is a known kind
func (k TransactionKind) Valid() bool {
	return k == KindExpense || k == KindRetour
}

func (k TransactionKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *TransactionKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*k = TransactionKind(i)
		return nil
	}
	switch str {
	case "Expense":
		*k = KindExpense
	case "Retour":
		*k = KindRetour
	}
	return nil
}

func (k TransactionKind) Value() (driver.Value, error) {
	return int64(k), nil
}

func (k *TransactionKind) Scan(value interface{}) error {
	if value == nil {
		*k = KindExpense
		return nil
	}
	switch v := value.(type) {
	case int64:
		*k = TransactionKind(v)
	case int:
		*k = TransactionKind(v)
	}
	return nil
}

// ParseTransactionKind maps a request string to a TransactionKind
func ParseTransactionKind(s string) (TransactionKind, bool) {
	switch s {
	case "Expense", "expense":
		return KindExpense, true
	case "Retour", "retour":
		return KindRetour, true
	}
	return KindExpense, false
}
