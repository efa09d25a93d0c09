package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/merpol/pos-api/internal/application/service"
	"github.com/merpol/pos-api/internal/domain/enum"
	"github.com/merpol/pos-api/internal/presentation/http/dto/request"
	"github.com/merpol/pos-api/internal/presentation/http/dto/response"
	"github.com/shopspring/decimal"
)

// ReceiptHandler handles receipt printing HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// PrintSale formats and prints a sale or retour receipt
// @Summary Print sale receipt
// @Tags receipts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.PrintSaleReceiptRequest true "Sale receipt data"
// @Success 200 {object} response.APIResponse
// @Router /receipts/sale [post]
func (h *ReceiptHandler) PrintSale(c *gin.Context) {
	merchantID := GetMerchantID(c)
	if merchantID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.PrintSaleReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	text, err := h.receiptService.PrintSale(c.Request.Context(), *merchantID, service.SalePrintInput{
		Amount:              decimal.NewFromFloat(req.Amount),
		Kind:                enum.TransactionKind(req.Kind),
		PaybackPeriodMonths: req.PaybackPeriodMonths,
		CustomerName:        req.CustomerName,
		CustomerCode:        req.CustomerCode,
	})
	if err != nil {
		// If the receipt was built but printing failed, return it with a warning
		if text != "" {
			response.OK(c, "Receipt generated but printing failed", gin.H{
				"receipt": text,
				"warning": err.Error(),
			})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt printed successfully", gin.H{
		"receipt": text,
	})
}

// PrintBalance formats and prints a balance inquiry receipt
// @Summary Print balance receipt
// @Tags receipts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.PrintBalanceReceiptRequest true "Balance receipt data"
// @Success 200 {object} response.APIResponse
// @Router /receipts/balance [post]
func (h *ReceiptHandler) PrintBalance(c *gin.Context) {
	merchantID := GetMerchantID(c)
	if merchantID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.PrintBalanceReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	text, err := h.receiptService.PrintBalance(c.Request.Context(), *merchantID, service.BalancePrintInput{
		Balance:             decimal.NewFromFloat(req.Balance),
		CardNumber:          req.CardNumber,
		PaybackPeriodMonths: req.PaybackPeriodMonths,
		CustomerName:        req.CustomerName,
		CustomerCode:        req.CustomerCode,
	})
	if err != nil {
		if text != "" {
			response.OK(c, "Receipt generated but printing failed", gin.H{
				"receipt": text,
				"warning": err.Error(),
			})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt printed successfully", gin.H{
		"receipt": text,
	})
}

// PrintDaily prints the daily sales report and stamps the report date
// @Summary Print daily report
// @Tags receipts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /receipts/daily [post]
func (h *ReceiptHandler) PrintDaily(c *gin.Context) {
	merchantID := GetMerchantID(c)
	if merchantID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	report, err := h.receiptService.PrintDaily(c.Request.Context(), *merchantID)
	if err != nil {
		if report != nil && report.Text != "" {
			response.OK(c, "Report generated but printing failed", gin.H{
				"report":  report,
				"warning": err.Error(),
			})
			return
		}
		response.Error(c, err)
		return
	}

	if !report.Printed {
		response.OK(c, "No transactions today, nothing to print", gin.H{
			"report": report,
		})
		return
	}

	response.OK(c, "Daily report printed successfully", gin.H{
		"report": report,
	})
}

// Reprint reprints the last successfully printed receipt
// @Summary Reprint last receipt
// @Tags receipts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /receipts/reprint [post]
func (h *ReceiptHandler) Reprint(c *gin.Context) {
	merchantID := GetMerchantID(c)
	if merchantID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	text, err := h.receiptService.ReprintLast(c.Request.Context(), *merchantID)
	if err != nil {
		if text != "" {
			response.OK(c, "Receipt retrieved but printing failed", gin.H{
				"receipt": text,
				"warning": err.Error(),
			})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt reprinted successfully", gin.H{
		"receipt": text,
	})
}

// Last returns the last successfully printed receipt without printing it
// @Summary Get last receipt
// @Tags receipts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /receipts/last [get]
func (h *ReceiptHandler) Last(c *gin.Context) {
	merchantID := GetMerchantID(c)
	if merchantID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	text, err := h.receiptService.LastReceipt(c.Request.Context(), *merchantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Last receipt retrieved successfully", gin.H{
		"receipt": text,
	})
}
