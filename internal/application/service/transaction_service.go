package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/merpol/pos-api/internal/domain/entity"
	"github.com/merpol/pos-api/internal/domain/enum"
	"github.com/merpol/pos-api/internal/domain/repository"
	"github.com/merpol/pos-api/internal/receipt"
	"github.com/merpol/pos-api/pkg/apperror"
	"github.com/merpol/pos-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// TransactionService records card transactions and adjusts card balances
type TransactionService struct {
	txRepo      repository.TransactionRepository
	historyRepo repository.IssuanceHistoryRepository
	clock       receipt.Clock
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	txRepo repository.TransactionRepository,
	historyRepo repository.IssuanceHistoryRepository,
	clock receipt.Clock,
) *TransactionService {
	return &TransactionService{
		txRepo:      txRepo,
		historyRepo: historyRepo,
		clock:       clock,
	}
}

// RecordInput is the input for recording a transaction against a card
type RecordInput struct {
	IssuanceHistoryID   uuid.UUID
	Kind                enum.TransactionKind
	Amount              decimal.Decimal
	PaybackPeriodMonths int
}

// Record persists a transaction and applies it to the card balance.
// An Expense decrements the balance and is rejected when it would overdraw
// the card; a Retour restores the balance.
func (s *TransactionService) Record(ctx context.Context, merchantID uuid.UUID, in RecordInput) (*entity.Transaction, error) {
	if in.Amount.IsNegative() {
		return nil, apperror.NewInvalidInputError("amount", "must not be negative")
	}
	if !in.Kind.Valid() {
		return nil, apperror.NewInvalidInputError("kind", "must be Expense or Retour")
	}
	if in.PaybackPeriodMonths < 0 {
		return nil, apperror.NewInvalidInputError("payback_period_months", "must not be negative")
	}

	history, err := s.historyRepo.GetByID(ctx, in.IssuanceHistoryID)
	if err != nil {
		return nil, err
	}
	if history == nil {
		return nil, apperror.NewNotFoundError("Card issuance")
	}

	var balance decimal.Decimal
	if in.Kind == enum.KindRetour {
		balance = history.Balance.Add(in.Amount)
	} else {
		if !history.CanSpend(in.Amount) {
			return nil, apperror.ErrInsufficientBalance
		}
		balance = history.Balance.Sub(in.Amount)
	}

	tx := &entity.Transaction{
		ClientID:            history.ClientID,
		MerchantID:          merchantID,
		IssuanceHistoryID:   history.ID,
		Kind:                in.Kind,
		Amount:              in.Amount,
		PaybackPeriodMonths: in.PaybackPeriodMonths,
		Timestamp:           s.clock.Now().UTC(),
	}
	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	if err := s.historyRepo.UpdateBalance(ctx, history.ID, balance); err != nil {
		return nil, err
	}

	return tx, nil
}

// List returns a page of the merchant's transactions
func (s *TransactionService) List(ctx context.Context, merchantID uuid.UUID, params *repository.TransactionFilterParams) (*pagination.PaginatedResult[entity.Transaction], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}

	txs, total, err := s.txRepo.List(ctx, merchantID, params)
	if err != nil {
		return nil, err
	}

	params.Pagination.Validate()
	meta := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(txs, meta), nil
}

// ListForToday returns today's transactions for the merchant, the input of
// the daily report
func (s *TransactionService) ListForToday(ctx context.Context, merchantID uuid.UUID) ([]entity.Transaction, error) {
	return s.txRepo.ListForDay(ctx, merchantID, s.clock.Now())
}
