package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/merpol/pos-api/internal/domain/entity"
	"github.com/merpol/pos-api/internal/domain/repository"
	"github.com/merpol/pos-api/internal/receipt"
	"github.com/merpol/pos-api/pkg/apperror"
)

// CardService resolves scanned NFC cards to their issuance history
type CardService struct {
	historyRepo    repository.IssuanceHistoryRepository
	clientRepo     repository.ClientRepository
	printStateRepo repository.PrintStateRepository
	clock          receipt.Clock
}

// NewCardService creates a new card service
func NewCardService(
	historyRepo repository.IssuanceHistoryRepository,
	clientRepo repository.ClientRepository,
	printStateRepo repository.PrintStateRepository,
	clock receipt.Clock,
) *CardService {
	return &CardService{
		historyRepo:    historyRepo,
		clientRepo:     clientRepo,
		printStateRepo: printStateRepo,
		clock:          clock,
	}
}

// Lookup resolves a scanned card number to its latest issuance history with
// the owning client. Scanning is blocked while the merchant still owes a
// daily report from a previous day.
func (s *CardService) Lookup(ctx context.Context, merchantID uuid.UUID, cardNumber string) (*entity.IssuanceHistory, error) {
	due, err := s.DailyReportDue(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	if due {
		return nil, apperror.ErrDailyReportDue
	}

	history, err := s.historyRepo.GetByCardNumber(ctx, cardNumber)
	if err != nil {
		return nil, err
	}
	if history == nil {
		return nil, apperror.NewNotFoundError("Card")
	}
	return history, nil
}

// GetClientByCode resolves a card-holder account by its client code.
func (s *CardService) GetClientByCode(ctx context.Context, code string) (*entity.Client, error) {
	client, err := s.clientRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}
	return client, nil
}

// DailyReportDue reports whether the merchant must print a daily report
// before processing new card scans: true when no report was ever printed or
// the last one was printed on an earlier day.
func (s *CardService) DailyReportDue(ctx context.Context, merchantID uuid.UUID) (bool, error) {
	state, err := s.printStateRepo.Get(ctx, merchantID)
	if err != nil {
		return false, err
	}
	if state == nil || state.DailyReportPrintedAt == nil {
		return true, nil
	}

	now := s.clock.Now()
	printed := state.DailyReportPrintedAt.In(now.Location())
	return startOfDay(now).After(startOfDay(printed)), nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
