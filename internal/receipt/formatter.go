package receipt

import (
	"fmt"
	"sort"

	"github.com/merpol/pos-api/internal/domain/enum"
	"github.com/merpol/pos-api/pkg/apperror"
	"github.com/merpol/pos-api/pkg/printer"
	"github.com/shopspring/decimal"
)

const (
	// brandName is the underlined title at the top of every receipt
	brandName = "Merpol"
	// timestampLayout matches the terminal's clock line, e.g. "24/08/2026 02:15:09 PM"
	timestampLayout = "02/01/2006 03:04:05 PM"
	// charWidth is the printable width of 48mm receipt paper
	charWidth = 30
)

// Formatter turns sale, balance and daily-report data into printer markup.
// It is pure and stateless: output is fully determined by its inputs plus the
// injected clock and number generator, and calls are safe to make
// concurrently.
type Formatter struct {
	clock          Clock
	numbers        NumberGenerator
	supportContact string
}

// NewFormatter creates a receipt formatter. supportContact is the customer
// service line printed in every footer.
func NewFormatter(clock Clock, numbers NumberGenerator, supportContact string) *Formatter {
	return &Formatter{
		clock:          clock,
		numbers:        numbers,
		supportContact: supportContact,
	}
}

// Sale formats a single sale or retour receipt.
func (f *Formatter) Sale(in SaleInput) (string, error) {
	if in.Amount.IsNegative() {
		return "", apperror.NewInvalidInputError("amount", "must not be negative")
	}
	if !in.Kind.Valid() {
		return "", apperror.NewInvalidInputError("kind", "must be Expense or Retour")
	}
	if in.PaybackPeriodMonths < 0 {
		return "", apperror.NewInvalidInputError("payback_period_months", "must not be negative")
	}
	if in.MerchantName == "" {
		return "", apperror.NewInvalidInputError("merchant_name", "is required")
	}
	if in.Customer.Name == "" {
		return "", apperror.NewInvalidInputError("customer.name", "is required")
	}

	doc := printer.NewDocument(charWidth)
	f.header(doc)

	doc.DoubleRule().
		Blank().
		Pair(in.Kind.Label()+" Amount :", "NAFL "+in.Amount.StringFixed(2)).
		Blank().
		DoubleRule().
		Blank()

	f.customerSection(doc, in.PaybackPeriodMonths, in.MerchantName, in.Customer)
	f.signature(doc)
	f.footer(doc)

	doc.Rule().
		Center(printer.Bold("No Cash Refunds"))

	return doc.String(), nil
}

// Balance formats a balance inquiry receipt. The card number is printed
// verbatim, without validation at this layer.
func (f *Formatter) Balance(in BalanceInput) (string, error) {
	if in.Balance.IsNegative() {
		return "", apperror.NewInvalidInputError("balance", "must not be negative")
	}
	if in.PaybackPeriodMonths < 0 {
		return "", apperror.NewInvalidInputError("payback_period_months", "must not be negative")
	}
	if in.CardNumber == "" {
		return "", apperror.NewInvalidInputError("card_number", "is required")
	}
	if in.MerchantName == "" {
		return "", apperror.NewInvalidInputError("merchant_name", "is required")
	}
	if in.Customer.Name == "" {
		return "", apperror.NewInvalidInputError("customer.name", "is required")
	}

	doc := printer.NewDocument(charWidth)
	f.header(doc)

	doc.DoubleRule().
		Blank().
		Pair("Balance :", "NAFL "+in.Balance.StringFixed(2)).
		Pair("Card Number :", "     "+in.CardNumber).
		Blank().
		DoubleRule().
		Blank()

	f.customerSection(doc, in.PaybackPeriodMonths, in.MerchantName, in.Customer)
	f.signature(doc)
	f.footer(doc)

	return doc.String(), nil
}

// Daily formats the daily sales report and returns the report text together
// with the day's total (Expense adds, Retour subtracts).
//
// The printed list is re-derived from the timestamps on every call: lines are
// sorted ascending by timestamp with a stable sort, so the output does not
// depend on the order the transactions arrive in. The total is a plain fold
// over the input and is order-independent by construction.
func (f *Formatter) Daily(transactions []Transaction, merchantName string) (string, decimal.Decimal, error) {
	if merchantName == "" {
		return "", decimal.Zero, apperror.NewInvalidInputError("merchant_name", "is required")
	}

	total := decimal.Zero
	for i, tx := range transactions {
		if tx.Amount.IsNegative() {
			field := fmt.Sprintf("transactions[%d].amount", i)
			return "", decimal.Zero, apperror.NewInvalidInputError(field, "must not be negative")
		}
		if !tx.Kind.Valid() {
			field := fmt.Sprintf("transactions[%d].kind", i)
			return "", decimal.Zero, apperror.NewInvalidInputError(field, "must be Expense or Retour")
		}
		if tx.Kind == enum.KindRetour {
			total = total.Sub(tx.Amount)
		} else {
			total = total.Add(tx.Amount)
		}
	}

	ordered := make([]Transaction, len(transactions))
	copy(ordered, transactions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.Before(ordered[j].Timestamp)
	})

	doc := printer.NewDocument(charWidth)
	f.header(doc)

	doc.Rule().
		Blank().
		Center(printer.Bold("Daily sales")).
		Blank().
		DoubleRule().
		Blank()

	for _, tx := range ordered {
		sign := " "
		if tx.Kind == enum.KindRetour {
			sign = "-"
		}
		doc.Pair(tx.ClientID+": ", "NAFL "+sign+tx.Amount.StringFixed(2)).
			Pair("Payback period (months): ", fmt.Sprintf("     %d", tx.PaybackPeriodMonths))
	}

	doc.Blank().
		DoubleRule().
		Blank().
		Raw(printer.AlignRight + printer.Bold("Total :") + printer.AlignRight + "NAFL " + total.StringFixed(2)).
		Left(printer.Font(printer.FontTall, "Merchant :")).
		Left(merchantName)

	f.signature(doc)
	f.footer(doc)

	return doc.String(), total, nil
}

// header emits the brand title, receipt number and timestamp lines.
func (f *Formatter) header(doc *printer.Document) {
	doc.Center(printer.Underline(printer.Font(printer.FontBig, brandName))).
		Blank().
		Center("Receipt N.O: " + f.numbers.Next()).
		Center(f.clock.Now().Format(timestampLayout)).
		Blank()
}

// customerSection emits the payback period, merchant and customer lines
// shared by the sale and balance templates.
func (f *Formatter) customerSection(doc *printer.Document, paybackMonths int, merchantName string, customer Customer) {
	doc.Left(printer.Font(printer.FontTall, "Payback period (months):")).
		Left(fmt.Sprintf("%d", paybackMonths)).
		Left(printer.Font(printer.FontTall, "Merchant :")).
		Left(merchantName).
		Left(printer.Font(printer.FontTall, "Customer :")).
		Left(customer.Name).
		Left(customer.Code)
}

func (f *Formatter) signature(doc *printer.Document) {
	doc.BlankLines(2).
		Left(printer.Font(printer.FontTall, "Signature :")).
		BlankLines(2)
}

func (f *Formatter) footer(doc *printer.Document) {
	doc.Rule().
		Blank().
		Left("Thank you for your purchase").
		Left("For questions or inquiries call customer service:").
		Left(f.supportContact)
}
