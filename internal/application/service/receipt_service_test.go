package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/merpol/pos-api/internal/domain/entity"
	"github.com/merpol/pos-api/internal/domain/enum"
	"github.com/merpol/pos-api/internal/domain/repository"
	"github.com/merpol/pos-api/internal/receipt"
	"github.com/merpol/pos-api/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePrinter struct {
	printed []string
	err     error
}

func (p *fakePrinter) Print(text string) error {
	if p.err != nil {
		return p.err
	}
	p.printed = append(p.printed, text)
	return nil
}

func (p *fakePrinter) Close() error      { return nil }
func (p *fakePrinter) IsConnected() bool { return p.err == nil }

type fakePrintStateRepo struct {
	states map[uuid.UUID]*entity.PrintState
}

func newFakePrintStateRepo() *fakePrintStateRepo {
	return &fakePrintStateRepo{states: make(map[uuid.UUID]*entity.PrintState)}
}

func (r *fakePrintStateRepo) Get(_ context.Context, merchantID uuid.UUID) (*entity.PrintState, error) {
	return r.states[merchantID], nil
}

func (r *fakePrintStateRepo) SaveLastReceipt(_ context.Context, merchantID uuid.UUID, text string) error {
	state := r.states[merchantID]
	if state == nil {
		state = &entity.PrintState{MerchantID: merchantID}
		r.states[merchantID] = state
	}
	state.LastReceipt = text
	return nil
}

func (r *fakePrintStateRepo) StampDailyReport(_ context.Context, merchantID uuid.UUID, at time.Time) error {
	state := r.states[merchantID]
	if state == nil {
		state = &entity.PrintState{MerchantID: merchantID}
		r.states[merchantID] = state
	}
	state.DailyReportPrintedAt = &at
	return nil
}

type fakeMerchantRepo struct {
	merchant *entity.Merchant
}

func (r *fakeMerchantRepo) Create(_ context.Context, m *entity.Merchant) error { return nil }

func (r *fakeMerchantRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Merchant, error) {
	if r.merchant != nil && r.merchant.ID == id {
		return r.merchant, nil
	}
	return nil, nil
}

func (r *fakeMerchantRepo) GetByName(_ context.Context, name string) (*entity.Merchant, error) {
	if r.merchant != nil && r.merchant.Name == name {
		return r.merchant, nil
	}
	return nil, nil
}

type fakeTransactionRepo struct {
	txs []entity.Transaction
}

func (r *fakeTransactionRepo) Create(_ context.Context, tx *entity.Transaction) error {
	r.txs = append(r.txs, *tx)
	return nil
}

func (r *fakeTransactionRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	for i := range r.txs {
		if r.txs[i].ID == id {
			return &r.txs[i], nil
		}
	}
	return nil, nil
}

func (r *fakeTransactionRepo) ListForDay(_ context.Context, merchantID uuid.UUID, day time.Time) ([]entity.Transaction, error) {
	var out []entity.Transaction
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)
	for _, tx := range r.txs {
		if tx.MerchantID == merchantID && !tx.Timestamp.Before(start) && tx.Timestamp.Before(end) {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) List(_ context.Context, merchantID uuid.UUID, _ *repository.TransactionFilterParams) ([]entity.Transaction, int64, error) {
	var out []entity.Transaction
	for _, tx := range r.txs {
		if tx.MerchantID == merchantID {
			out = append(out, tx)
		}
	}
	return out, int64(len(out)), nil
}

type stubClock struct {
	now time.Time
}

func (c stubClock) Now() time.Time { return c.now }

type stubNumbers struct {
	value string
}

func (n stubNumbers) Next() string { return n.value }

func newReceiptServiceFixture(t *testing.T, p *fakePrinter) (*ReceiptService, uuid.UUID, *fakePrintStateRepo, *fakeTransactionRepo) {
	t.Helper()

	merchantID := uuid.New()
	clock := stubClock{now: time.Date(2026, 8, 24, 14, 15, 9, 0, time.UTC)}
	formatter := receipt.NewFormatter(clock, stubNumbers{value: "AB12CD34"}, "+5999 767 1509")
	printStates := newFakePrintStateRepo()
	txRepo := &fakeTransactionRepo{}
	merchants := &fakeMerchantRepo{merchant: &entity.Merchant{
		ID:             merchantID,
		Name:           "Merpol Store",
		SupportContact: "+5999 767 1509",
	}}

	svc := NewReceiptService(formatter, p, txRepo, merchants, printStates, clock, "none")
	return svc, merchantID, printStates, txRepo
}

func TestPrintSaleSavesLastReceipt(t *testing.T) {
	p := &fakePrinter{}
	svc, merchantID, printStates, _ := newReceiptServiceFixture(t, p)

	text, err := svc.PrintSale(context.Background(), merchantID, SalePrintInput{
		Amount:              decimal.NewFromInt(25),
		Kind:                enum.KindExpense,
		PaybackPeriodMonths: 3,
		CustomerName:        "Jane Doe",
		CustomerCode:        "C-100",
	})

	require.NoError(t, err)
	require.Len(t, p.printed, 1)
	assert.Equal(t, text, p.printed[0])

	state := printStates.states[merchantID]
	require.NotNil(t, state)
	assert.Equal(t, text, state.LastReceipt)
}

func TestPrintSaleFailureDoesNotSaveLastReceipt(t *testing.T) {
	p := &fakePrinter{err: errors.New("device not found")}
	svc, merchantID, printStates, _ := newReceiptServiceFixture(t, p)

	text, err := svc.PrintSale(context.Background(), merchantID, SalePrintInput{
		Amount:              decimal.NewFromInt(25),
		Kind:                enum.KindExpense,
		PaybackPeriodMonths: 3,
		CustomerName:        "Jane Doe",
		CustomerCode:        "C-100",
	})

	require.Error(t, err)
	assert.NotEmpty(t, text, "formatted text is still returned for display")
	assert.Nil(t, printStates.states[merchantID])
}

func TestPrintBalanceDoesNotTouchLastReceipt(t *testing.T) {
	p := &fakePrinter{}
	svc, merchantID, printStates, _ := newReceiptServiceFixture(t, p)

	_, err := svc.PrintBalance(context.Background(), merchantID, BalancePrintInput{
		Balance:             decimal.NewFromFloat(42.5),
		CardNumber:          "1234567890",
		PaybackPeriodMonths: 3,
		CustomerName:        "Jane Doe",
		CustomerCode:        "C-100",
	})

	require.NoError(t, err)
	require.Len(t, p.printed, 1)
	assert.Nil(t, printStates.states[merchantID])
}

func TestPrintDailyEmptyStampsWithoutPrinting(t *testing.T) {
	p := &fakePrinter{}
	svc, merchantID, printStates, _ := newReceiptServiceFixture(t, p)

	report, err := svc.PrintDaily(context.Background(), merchantID)

	require.NoError(t, err)
	assert.False(t, report.Printed)
	assert.Equal(t, 0, report.Count)
	assert.True(t, report.Total.IsZero())
	assert.Empty(t, p.printed)

	state := printStates.states[merchantID]
	require.NotNil(t, state)
	require.NotNil(t, state.DailyReportPrintedAt)
}

func TestPrintDailyPrintsAndStamps(t *testing.T) {
	p := &fakePrinter{}
	svc, merchantID, printStates, txRepo := newReceiptServiceFixture(t, p)

	clientID := uuid.New()
	txRepo.txs = []entity.Transaction{
		{
			ID:         uuid.New(),
			ClientID:   clientID,
			MerchantID: merchantID,
			Kind:       enum.KindExpense,
			Amount:     decimal.NewFromInt(10),
			Timestamp:  time.Date(2026, 8, 24, 9, 30, 0, 0, time.UTC),
			Client:     &entity.Client{Code: "C-100"},
		},
		{
			ID:         uuid.New(),
			ClientID:   clientID,
			MerchantID: merchantID,
			Kind:       enum.KindRetour,
			Amount:     decimal.NewFromInt(4),
			Timestamp:  time.Date(2026, 8, 24, 11, 0, 0, 0, time.UTC),
			Client:     &entity.Client{Code: "C-100"},
		},
	}

	report, err := svc.PrintDaily(context.Background(), merchantID)

	require.NoError(t, err)
	assert.True(t, report.Printed)
	assert.Equal(t, 2, report.Count)
	assert.Equal(t, "6", report.Total.String())
	require.Len(t, p.printed, 1)
	assert.Contains(t, p.printed[0], "C-100")
	assert.Contains(t, p.printed[0], "NAFL 6.00")

	state := printStates.states[merchantID]
	require.NotNil(t, state)
	require.NotNil(t, state.DailyReportPrintedAt)
}

func TestPrintDailyFailureDoesNotStamp(t *testing.T) {
	p := &fakePrinter{err: errors.New("connection refused")}
	svc, merchantID, printStates, txRepo := newReceiptServiceFixture(t, p)

	txRepo.txs = []entity.Transaction{
		{
			ID:         uuid.New(),
			ClientID:   uuid.New(),
			MerchantID: merchantID,
			Kind:       enum.KindExpense,
			Amount:     decimal.NewFromInt(10),
			Timestamp:  time.Date(2026, 8, 24, 9, 30, 0, 0, time.UTC),
		},
	}

	report, err := svc.PrintDaily(context.Background(), merchantID)

	require.Error(t, err)
	require.NotNil(t, report)
	assert.False(t, report.Printed)
	assert.Nil(t, printStates.states[merchantID])
}

func TestReprintLast(t *testing.T) {
	p := &fakePrinter{}
	svc, merchantID, printStates, _ := newReceiptServiceFixture(t, p)

	_, err := svc.ReprintLast(context.Background(), merchantID)
	require.ErrorIs(t, err, apperror.ErrNothingToPrint)

	require.NoError(t, printStates.SaveLastReceipt(context.Background(), merchantID, "[C]<b>Merpol</b>"))

	text, err := svc.ReprintLast(context.Background(), merchantID)
	require.NoError(t, err)
	assert.Equal(t, "[C]<b>Merpol</b>", text)
	require.Len(t, p.printed, 1)
}

func TestGetStatus(t *testing.T) {
	p := &fakePrinter{}
	svc, _, _, _ := newReceiptServiceFixture(t, p)

	status := svc.GetStatus()
	assert.False(t, status.Configured)
	assert.Equal(t, "none", status.Type)
	assert.True(t, status.Connected)
}

func TestTestPrintReturnsPageOnFailure(t *testing.T) {
	p := &fakePrinter{err: errors.New("offline")}
	svc, _, _, _ := newReceiptServiceFixture(t, p)

	text, err := svc.TestPrint()
	require.Error(t, err)
	assert.Contains(t, text, "PRINTER TEST")
}
