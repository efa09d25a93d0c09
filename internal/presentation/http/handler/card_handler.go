package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/merpol/pos-api/internal/application/service"
	"github.com/merpol/pos-api/internal/presentation/http/dto/response"
)

// CardHandler handles card lookup HTTP requests
type CardHandler struct {
	cardService *service.CardService
}

// NewCardHandler creates a new card handler
func NewCardHandler(cardService *service.CardService) *CardHandler {
	return &CardHandler{cardService: cardService}
}

// Lookup resolves a scanned card number to its issuance history and client.
// Returns 409 while the merchant still owes a daily report from an earlier
// day, so the terminal can redirect the cashier to print it first.
// @Summary Lookup card
// @Description Resolve a scanned card number to its balance and owner
// @Tags cards
// @Security BearerAuth
// @Produce json
// @Param card_number path string true "Card number"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /cards/{card_number} [get]
func (h *CardHandler) Lookup(c *gin.Context) {
	merchantID := GetMerchantID(c)
	if merchantID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	cardNumber := c.Param("card_number")
	if cardNumber == "" {
		response.BadRequest(c, "Card number is required")
		return
	}

	history, err := h.cardService.Lookup(c.Request.Context(), *merchantID, cardNumber)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Card retrieved successfully", gin.H{
		"card": history,
	})
}

// GetClient resolves a client code to the card-holder account.
// @Summary Get client
// @Description Resolve a client code to the card-holder account
// @Tags clients
// @Security BearerAuth
// @Produce json
// @Param code path string true "Client code"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /clients/{code} [get]
func (h *CardHandler) GetClient(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		response.BadRequest(c, "Client code is required")
		return
	}

	client, err := h.cardService.GetClientByCode(c.Request.Context(), code)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Client retrieved successfully", gin.H{
		"client": client,
	})
}

// DailyReportStatus reports whether the merchant must print a daily report
// before scanning cards.
// @Summary Daily report status
// @Tags cards
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /cards/daily-report-status [get]
func (h *CardHandler) DailyReportStatus(c *gin.Context) {
	merchantID := GetMerchantID(c)
	if merchantID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	due, err := h.cardService.DailyReportDue(c.Request.Context(), *merchantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily report status retrieved", gin.H{
		"daily_report_due": due,
	})
}
