package request

// CreateTransactionRequest represents a transaction creation request.
// Kind is 0 for an expense (sale) and 1 for a retour (return).
type CreateTransactionRequest struct {
	IssuanceHistoryID   string  `json:"issuance_history_id" binding:"required,uuid"`
	Kind                int     `json:"kind" binding:"min=0,max=1"`
	Amount              float64 `json:"amount" binding:"required,gt=0"`
	PaybackPeriodMonths int     `json:"payback_period_months" binding:"min=0"`
}

// TransactionFilterRequest represents transaction filter parameters
type TransactionFilterRequest struct {
	Kind      *int   `form:"kind" binding:"omitempty,min=0,max=1"`
	ClientID  string `form:"client_id" binding:"omitempty,uuid"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
