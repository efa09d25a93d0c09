package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/merpol/pos-api/internal/application/service"
	"github.com/merpol/pos-api/internal/domain/enum"
	"github.com/merpol/pos-api/internal/domain/repository"
	"github.com/merpol/pos-api/internal/presentation/http/dto/request"
	"github.com/merpol/pos-api/internal/presentation/http/dto/response"
	"github.com/merpol/pos-api/pkg/pagination"
	"github.com/merpol/pos-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// Create records a transaction against a card
// @Summary Create transaction
// @Description Record a sale or retour against a card and adjust its balance
// @Tags transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateTransactionRequest true "Transaction data"
// @Success 201 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	merchantID := GetMerchantID(c)
	if merchantID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	historyID, err := utils.ParseUUID(req.IssuanceHistoryID)
	if err != nil {
		response.BadRequest(c, "Invalid issuance history ID")
		return
	}

	tx, err := h.transactionService.Record(c.Request.Context(), *merchantID, service.RecordInput{
		IssuanceHistoryID:   historyID,
		Kind:                enum.TransactionKind(req.Kind),
		Amount:              decimal.NewFromFloat(req.Amount),
		PaybackPeriodMonths: req.PaybackPeriodMonths,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Transaction recorded successfully", gin.H{
		"transaction": tx,
	})
}

// List returns the merchant's transactions with filters and pagination
// @Summary List transactions
// @Tags transactions
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	merchantID := GetMerchantID(c)
	if merchantID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.TransactionFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.TransactionFilterParams{
		Pagination: &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
	}
	params.Pagination.Validate()

	if req.Kind != nil {
		kind := enum.TransactionKind(*req.Kind)
		params.Kind = &kind
	}
	if req.ClientID != "" {
		clientID, err := utils.ParseUUID(req.ClientID)
		if err != nil {
			response.BadRequest(c, "Invalid client ID")
			return
		}
		params.ClientID = &clientID
	}
	if req.StartDate != "" {
		start, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			response.BadRequest(c, "Invalid start date, use YYYY-MM-DD")
			return
		}
		params.StartDate = &start
	}
	if req.EndDate != "" {
		end, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			response.BadRequest(c, "Invalid end date, use YYYY-MM-DD")
			return
		}
		// Include the whole end day
		end = end.AddDate(0, 0, 1)
		params.EndDate = &end
	}

	result, err := h.transactionService.List(c.Request.Context(), *merchantID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Transactions retrieved successfully", result)
}

// ListToday returns all of the merchant's transactions for the current day
// @Summary List today's transactions
// @Tags transactions
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /transactions/daily [get]
func (h *TransactionHandler) ListToday(c *gin.Context) {
	merchantID := GetMerchantID(c)
	if merchantID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	txs, err := h.transactionService.ListForToday(c.Request.Context(), *merchantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	total := decimal.Zero
	for i := range txs {
		total = total.Add(txs[i].SignedAmount())
	}

	response.OK(c, "Daily transactions retrieved successfully", gin.H{
		"transactions": txs,
		"count":        len(txs),
		"total":        total,
	})
}
