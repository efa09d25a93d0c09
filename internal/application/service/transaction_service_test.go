package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/merpol/pos-api/internal/domain/entity"
	"github.com/merpol/pos-api/internal/domain/enum"
	"github.com/merpol/pos-api/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTransactionServiceFixture(balance decimal.Decimal) (*TransactionService, *fakeTransactionRepo, *fakeHistoryRepo, *entity.IssuanceHistory) {
	histories := newFakeHistoryRepo()
	history := &entity.IssuanceHistory{
		ID:         uuid.New(),
		ClientID:   uuid.New(),
		CardNumber: "0412345678",
		Amount:     decimal.NewFromInt(100),
		Balance:    balance,
	}
	histories.add(history)

	txRepo := &fakeTransactionRepo{}
	clock := stubClock{now: time.Date(2026, 8, 24, 14, 15, 9, 0, time.UTC)}
	return NewTransactionService(txRepo, histories, clock), txRepo, histories, history
}

func TestRecordExpenseDecrementsBalance(t *testing.T) {
	svc, txRepo, _, history := newTransactionServiceFixture(decimal.NewFromInt(50))
	merchantID := uuid.New()

	tx, err := svc.Record(context.Background(), merchantID, RecordInput{
		IssuanceHistoryID:   history.ID,
		Kind:                enum.KindExpense,
		Amount:              decimal.NewFromFloat(12.5),
		PaybackPeriodMonths: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, "37.5", history.Balance.String())
	assert.Equal(t, merchantID, tx.MerchantID)
	assert.Equal(t, history.ClientID, tx.ClientID)
	assert.Equal(t, enum.KindExpense, tx.Kind)
	require.Len(t, txRepo.txs, 1)
}

func TestRecordRetourRestoresBalance(t *testing.T) {
	svc, _, _, history := newTransactionServiceFixture(decimal.NewFromInt(50))

	_, err := svc.Record(context.Background(), uuid.New(), RecordInput{
		IssuanceHistoryID: history.ID,
		Kind:              enum.KindRetour,
		Amount:            decimal.NewFromInt(20),
	})

	require.NoError(t, err)
	assert.Equal(t, "70", history.Balance.String())
}

func TestRecordExpenseRejectsOverdraw(t *testing.T) {
	svc, txRepo, _, history := newTransactionServiceFixture(decimal.NewFromInt(10))

	_, err := svc.Record(context.Background(), uuid.New(), RecordInput{
		IssuanceHistoryID: history.ID,
		Kind:              enum.KindExpense,
		Amount:            decimal.NewFromFloat(10.01),
	})

	require.ErrorIs(t, err, apperror.ErrInsufficientBalance)
	assert.Equal(t, "10", history.Balance.String())
	assert.Empty(t, txRepo.txs)
}

func TestRecordExpenseAllowsExactBalance(t *testing.T) {
	svc, _, _, history := newTransactionServiceFixture(decimal.NewFromInt(10))

	_, err := svc.Record(context.Background(), uuid.New(), RecordInput{
		IssuanceHistoryID: history.ID,
		Kind:              enum.KindExpense,
		Amount:            decimal.NewFromInt(10),
	})

	require.NoError(t, err)
	assert.True(t, history.Balance.IsZero())
}

func TestRecordValidation(t *testing.T) {
	svc, _, _, history := newTransactionServiceFixture(decimal.NewFromInt(50))

	tests := []struct {
		name  string
		input RecordInput
	}{
		{
			name: "negative amount",
			input: RecordInput{
				IssuanceHistoryID: history.ID,
				Kind:              enum.KindExpense,
				Amount:            decimal.NewFromInt(-5),
			},
		},
		{
			name: "invalid kind",
			input: RecordInput{
				IssuanceHistoryID: history.ID,
				Kind:              enum.TransactionKind(9),
				Amount:            decimal.NewFromInt(5),
			},
		},
		{
			name: "negative payback period",
			input: RecordInput{
				IssuanceHistoryID:   history.ID,
				Kind:                enum.KindExpense,
				Amount:              decimal.NewFromInt(5),
				PaybackPeriodMonths: -1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Record(context.Background(), uuid.New(), tt.input)
			require.Error(t, err)
			assert.True(t, apperror.IsInvalidInput(err))
		})
	}
}

func TestRecordUnknownCard(t *testing.T) {
	svc, _, _, _ := newTransactionServiceFixture(decimal.NewFromInt(50))

	_, err := svc.Record(context.Background(), uuid.New(), RecordInput{
		IssuanceHistoryID: uuid.New(),
		Kind:              enum.KindExpense,
		Amount:            decimal.NewFromInt(5),
	})

	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestListForTodayUsesClock(t *testing.T) {
	svc, txRepo, _, history := newTransactionServiceFixture(decimal.NewFromInt(50))
	merchantID := uuid.New()

	txRepo.txs = []entity.Transaction{
		{
			ID:                uuid.New(),
			ClientID:          history.ClientID,
			MerchantID:        merchantID,
			IssuanceHistoryID: history.ID,
			Kind:              enum.KindExpense,
			Amount:            decimal.NewFromInt(10),
			Timestamp:         time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:                uuid.New(),
			ClientID:          history.ClientID,
			MerchantID:        merchantID,
			IssuanceHistoryID: history.ID,
			Kind:              enum.KindExpense,
			Amount:            decimal.NewFromInt(10),
			Timestamp:         time.Date(2026, 8, 23, 9, 0, 0, 0, time.UTC),
		},
	}

	txs, err := svc.ListForToday(context.Background(), merchantID)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, 24, txs[0].Timestamp.Day())
}
