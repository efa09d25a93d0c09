package request

// PrintSaleReceiptRequest is the request body for printing a sale or retour
// receipt. Kind is 0 for an expense (sale) and 1 for a retour.
type PrintSaleReceiptRequest struct {
	Amount              float64 `json:"amount" binding:"required,gt=0"`
	Kind                int     `json:"kind" binding:"min=0,max=1"`
	PaybackPeriodMonths int     `json:"payback_period_months" binding:"min=0"`
	CustomerName        string  `json:"customer_name" binding:"required"`
	CustomerCode        string  `json:"customer_code"`
}

// PrintBalanceReceiptRequest is the request body for printing a balance
// inquiry receipt.
type PrintBalanceReceiptRequest struct {
	Balance             float64 `json:"balance" binding:"min=0"`
	CardNumber          string  `json:"card_number" binding:"required"`
	PaybackPeriodMonths int     `json:"payback_period_months" binding:"min=0"`
	CustomerName        string  `json:"customer_name" binding:"required"`
	CustomerCode        string  `json:"customer_code"`
}
