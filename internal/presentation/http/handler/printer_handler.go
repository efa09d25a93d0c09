package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/merpol/pos-api/internal/application/service"
	"github.com/merpol/pos-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles printer diagnostics HTTP requests.
type PrinterHandler struct {
	receiptService *service.ReceiptService
}

// NewPrinterHandler creates a new printer handler.
func NewPrinterHandler(receiptService *service.ReceiptService) *PrinterHandler {
	return &PrinterHandler{receiptService: receiptService}
}

// GetStatus returns the current printer connection status.
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	status := h.receiptService.GetStatus()
	response.OK(c, "Printer status retrieved", status)
}

// TestPrint sends a test page to the printer.
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	page, err := h.receiptService.TestPrint()
	if err != nil {
		// Return the page anyway (useful when printer type is "none")
		response.OK(c, "Test print completed (printer may be disabled)", gin.H{
			"receipt": page,
			"warning": err.Error(),
		})
		return
	}

	response.OK(c, "Test page sent to printer", gin.H{
		"receipt": page,
	})
}
