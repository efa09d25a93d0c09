package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/merpol/pos-api/internal/domain/entity"
	"github.com/merpol/pos-api/internal/domain/enum"
	"github.com/merpol/pos-api/internal/domain/repository"
	"github.com/merpol/pos-api/internal/receipt"
	"github.com/merpol/pos-api/pkg/apperror"
	"github.com/merpol/pos-api/pkg/printer"
	"github.com/shopspring/decimal"
)

// ReceiptService formats receipts, hands them to the thermal printer and
// maintains the merchant's print state (last receipt, daily report stamp).
type ReceiptService struct {
	formatter      *receipt.Formatter
	printer        printer.Printer
	txRepo         repository.TransactionRepository
	merchantRepo   repository.MerchantRepository
	printStateRepo repository.PrintStateRepository
	clock          receipt.Clock
	printerType    string
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	formatter *receipt.Formatter,
	p printer.Printer,
	txRepo repository.TransactionRepository,
	merchantRepo repository.MerchantRepository,
	printStateRepo repository.PrintStateRepository,
	clock receipt.Clock,
	printerType string,
) *ReceiptService {
	return &ReceiptService{
		formatter:      formatter,
		printer:        p,
		txRepo:         txRepo,
		merchantRepo:   merchantRepo,
		printStateRepo: printStateRepo,
		clock:          clock,
		printerType:    printerType,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *ReceiptService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a test page to the printer.
// Returns the page text so the handler can return it as JSON when no printer
// is configured.
func (s *ReceiptService) TestPrint() (string, error) {
	doc := printer.NewDocument(30)
	doc.Center(printer.Bold("PRINTER TEST")).
		Blank().
		Center(s.clock.Now().Format("02/01/2006 03:04:05 PM")).
		Rule().
		Left("If you can read this, the").
		Left("printer is working.")
	text := doc.String()

	if err := s.printer.Print(text); err != nil {
		return text, fmt.Errorf("test print failed: %w", err)
	}
	return text, nil
}

// SalePrintInput is the input for printing a single sale/retour receipt
type SalePrintInput struct {
	Amount              decimal.Decimal
	Kind                enum.TransactionKind
	PaybackPeriodMonths int
	CustomerName        string
	CustomerCode        string
}

// PrintSale formats and prints a sale or retour receipt. On success the text
// is persisted as the merchant's last printed receipt for reprints.
func (s *ReceiptService) PrintSale(ctx context.Context, merchantID uuid.UUID, in SalePrintInput) (string, error) {
	merchant, err := s.merchant(ctx, merchantID)
	if err != nil {
		return "", err
	}

	text, err := s.formatter.Sale(receipt.SaleInput{
		Amount:              in.Amount,
		Customer:            receipt.Customer{Name: in.CustomerName, Code: in.CustomerCode},
		MerchantName:        merchant.Name,
		Kind:                in.Kind,
		PaybackPeriodMonths: in.PaybackPeriodMonths,
	})
	if err != nil {
		return "", err
	}

	if err := s.printer.Print(text); err != nil {
		log.Printf("Printer error (sale, merchant %s): %v", merchantID, err)
		return text, fmt.Errorf("failed to print receipt: %w", err)
	}

	if err := s.printStateRepo.SaveLastReceipt(ctx, merchantID, text); err != nil {
		log.Printf("Failed to save last printed receipt (merchant %s): %v", merchantID, err)
	}
	return text, nil
}

// BalancePrintInput is the input for printing a balance inquiry receipt
type BalancePrintInput struct {
	Balance             decimal.Decimal
	CardNumber          string
	PaybackPeriodMonths int
	CustomerName        string
	CustomerCode        string
}

// PrintBalance formats and prints a balance inquiry receipt.
func (s *ReceiptService) PrintBalance(ctx context.Context, merchantID uuid.UUID, in BalancePrintInput) (string, error) {
	merchant, err := s.merchant(ctx, merchantID)
	if err != nil {
		return "", err
	}

	text, err := s.formatter.Balance(receipt.BalanceInput{
		Balance:             in.Balance,
		CardNumber:          in.CardNumber,
		Customer:            receipt.Customer{Name: in.CustomerName, Code: in.CustomerCode},
		MerchantName:        merchant.Name,
		PaybackPeriodMonths: in.PaybackPeriodMonths,
	})
	if err != nil {
		return "", err
	}

	if err := s.printer.Print(text); err != nil {
		log.Printf("Printer error (balance, merchant %s): %v", merchantID, err)
		return text, fmt.Errorf("failed to print receipt: %w", err)
	}
	return text, nil
}

// DailyReport is the outcome of a daily report print
type DailyReport struct {
	Text    string          `json:"text,omitempty"`
	Total   decimal.Decimal `json:"total"`
	Count   int             `json:"count"`
	Printed bool            `json:"printed"`
}

// PrintDaily fetches today's transactions, prints the daily sales report and
// stamps the merchant's daily-report date. With no transactions nothing is
// printed, but the date is still stamped so card scanning is unblocked.
func (s *ReceiptService) PrintDaily(ctx context.Context, merchantID uuid.UUID) (*DailyReport, error) {
	merchant, err := s.merchant(ctx, merchantID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	txs, err := s.txRepo.ListForDay(ctx, merchantID, now)
	if err != nil {
		return nil, err
	}

	if len(txs) == 0 {
		if err := s.printStateRepo.StampDailyReport(ctx, merchantID, now); err != nil {
			return nil, err
		}
		return &DailyReport{Total: decimal.Zero, Count: 0, Printed: false}, nil
	}

	lines := make([]receipt.Transaction, 0, len(txs))
	for _, tx := range txs {
		lines = append(lines, receipt.Transaction{
			ClientID:            displayClientID(&tx),
			Amount:              tx.Amount,
			Kind:                tx.Kind,
			Timestamp:           tx.Timestamp,
			PaybackPeriodMonths: tx.PaybackPeriodMonths,
		})
	}

	text, total, err := s.formatter.Daily(lines, merchant.Name)
	if err != nil {
		return nil, err
	}

	report := &DailyReport{Text: text, Total: total, Count: len(txs)}
	if err := s.printer.Print(text); err != nil {
		log.Printf("Printer error (daily, merchant %s): %v", merchantID, err)
		return report, fmt.Errorf("failed to print daily report: %w", err)
	}

	report.Printed = true
	if err := s.printStateRepo.StampDailyReport(ctx, merchantID, now); err != nil {
		log.Printf("Failed to stamp daily report (merchant %s): %v", merchantID, err)
	}
	return report, nil
}

// ReprintLast reprints the merchant's last successfully printed receipt.
func (s *ReceiptService) ReprintLast(ctx context.Context, merchantID uuid.UUID) (string, error) {
	text, err := s.LastReceipt(ctx, merchantID)
	if err != nil {
		return "", err
	}

	if err := s.printer.Print(text); err != nil {
		log.Printf("Printer error (reprint, merchant %s): %v", merchantID, err)
		return text, fmt.Errorf("failed to reprint receipt: %w", err)
	}
	return text, nil
}

// LastReceipt returns the merchant's last successfully printed receipt text.
func (s *ReceiptService) LastReceipt(ctx context.Context, merchantID uuid.UUID) (string, error) {
	state, err := s.printStateRepo.Get(ctx, merchantID)
	if err != nil {
		return "", err
	}
	if state == nil || state.LastReceipt == "" {
		return "", apperror.ErrNothingToPrint
	}
	return state.LastReceipt, nil
}

func (s *ReceiptService) merchant(ctx context.Context, merchantID uuid.UUID) (*entity.Merchant, error) {
	merchant, err := s.merchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	if merchant == nil {
		return nil, apperror.NewNotFoundError("Merchant")
	}
	return merchant, nil
}

// displayClientID prefers the client's short code over the raw UUID on the
// printed report.
func displayClientID(tx *entity.Transaction) string {
	if tx.Client != nil && tx.Client.Code != "" {
		return tx.Client.Code
	}
	return tx.ClientID.String()
}
