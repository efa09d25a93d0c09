package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/merpol/pos-api/internal/domain/entity"
	"github.com/merpol/pos-api/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHistoryRepo struct {
	histories map[uuid.UUID]*entity.IssuanceHistory
	byCard    map[string]*entity.IssuanceHistory
}

func newFakeHistoryRepo() *fakeHistoryRepo {
	return &fakeHistoryRepo{
		histories: make(map[uuid.UUID]*entity.IssuanceHistory),
		byCard:    make(map[string]*entity.IssuanceHistory),
	}
}

func (r *fakeHistoryRepo) add(h *entity.IssuanceHistory) {
	r.histories[h.ID] = h
	r.byCard[h.CardNumber] = h
}

func (r *fakeHistoryRepo) Create(_ context.Context, h *entity.IssuanceHistory) error {
	r.add(h)
	return nil
}

func (r *fakeHistoryRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.IssuanceHistory, error) {
	return r.histories[id], nil
}

func (r *fakeHistoryRepo) GetByCardNumber(_ context.Context, cardNumber string) (*entity.IssuanceHistory, error) {
	return r.byCard[cardNumber], nil
}

func (r *fakeHistoryRepo) UpdateBalance(_ context.Context, id uuid.UUID, balance decimal.Decimal) error {
	if h, ok := r.histories[id]; ok {
		h.Balance = balance
	}
	return nil
}

type fakeClientRepo struct {
	byCode map[string]*entity.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{byCode: make(map[string]*entity.Client)}
}

func (r *fakeClientRepo) Create(_ context.Context, client *entity.Client) error {
	r.byCode[client.Code] = client
	return nil
}

func (r *fakeClientRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Client, error) {
	for _, c := range r.byCode {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeClientRepo) GetByCode(_ context.Context, code string) (*entity.Client, error) {
	return r.byCode[code], nil
}

func TestCardLookupBlockedUntilDailyReport(t *testing.T) {
	merchantID := uuid.New()
	histories := newFakeHistoryRepo()
	histories.add(&entity.IssuanceHistory{
		ID:         uuid.New(),
		ClientID:   uuid.New(),
		CardNumber: "0412345678",
		Balance:    decimal.NewFromInt(50),
	})
	printStates := newFakePrintStateRepo()
	clock := stubClock{now: time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)}
	svc := NewCardService(histories, newFakeClientRepo(), printStates, clock)

	// No daily report ever printed: scanning is blocked
	_, err := svc.Lookup(context.Background(), merchantID, "0412345678")
	require.ErrorIs(t, err, apperror.ErrDailyReportDue)

	// Report printed yesterday: still blocked
	yesterday := clock.now.AddDate(0, 0, -1)
	require.NoError(t, printStates.StampDailyReport(context.Background(), merchantID, yesterday))
	_, err = svc.Lookup(context.Background(), merchantID, "0412345678")
	require.ErrorIs(t, err, apperror.ErrDailyReportDue)

	// Report printed today: scanning allowed
	require.NoError(t, printStates.StampDailyReport(context.Background(), merchantID, clock.now))
	history, err := svc.Lookup(context.Background(), merchantID, "0412345678")
	require.NoError(t, err)
	assert.Equal(t, "0412345678", history.CardNumber)
}

func TestCardLookupUnknownCard(t *testing.T) {
	merchantID := uuid.New()
	printStates := newFakePrintStateRepo()
	clock := stubClock{now: time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)}
	require.NoError(t, printStates.StampDailyReport(context.Background(), merchantID, clock.now))

	svc := NewCardService(newFakeHistoryRepo(), newFakeClientRepo(), printStates, clock)

	_, err := svc.Lookup(context.Background(), merchantID, "0400000000")
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 404, appErr.Code)
}

func TestDailyReportDue(t *testing.T) {
	merchantID := uuid.New()
	now := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		printed *time.Time
		want    bool
	}{
		{name: "never printed", printed: nil, want: true},
		{name: "printed yesterday", printed: timePtr(now.AddDate(0, 0, -1)), want: true},
		{name: "printed earlier today", printed: timePtr(now.Add(-2 * time.Hour)), want: false},
		{name: "printed just now", printed: timePtr(now), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			printStates := newFakePrintStateRepo()
			if tt.printed != nil {
				require.NoError(t, printStates.StampDailyReport(context.Background(), merchantID, *tt.printed))
			}

			svc := NewCardService(newFakeHistoryRepo(), newFakeClientRepo(), printStates, stubClock{now: now})
			due, err := svc.DailyReportDue(context.Background(), merchantID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, due)
		})
	}
}

func TestDailyReportDueFollowsBusinessDay(t *testing.T) {
	merchantID := uuid.New()
	curacao := time.FixedZone("AST", -4*60*60)

	printStates := newFakePrintStateRepo()
	// Stamped 21:00 the previous evening in Curacao, which is already past
	// midnight in UTC
	stamped := time.Date(2026, 8, 24, 1, 0, 0, 0, time.UTC)
	require.NoError(t, printStates.StampDailyReport(context.Background(), merchantID, stamped))

	now := time.Date(2026, 8, 24, 10, 0, 0, 0, curacao)
	svc := NewCardService(newFakeHistoryRepo(), newFakeClientRepo(), printStates, stubClock{now: now})

	due, err := svc.DailyReportDue(context.Background(), merchantID)
	require.NoError(t, err)
	assert.True(t, due, "report stamped on the previous business day must be due again")

	// Stamped later the same Curacao morning: not due
	require.NoError(t, printStates.StampDailyReport(context.Background(), merchantID, now.Add(-2*time.Hour)))
	due, err = svc.DailyReportDue(context.Background(), merchantID)
	require.NoError(t, err)
	assert.False(t, due)
}

func TestGetClientByCode(t *testing.T) {
	clients := newFakeClientRepo()
	require.NoError(t, clients.Create(context.Background(), &entity.Client{
		ID:   uuid.New(),
		Code: "C-100",
		Name: "Jan Doe",
	}))

	svc := NewCardService(newFakeHistoryRepo(), clients, newFakePrintStateRepo(), stubClock{now: time.Now()})

	client, err := svc.GetClientByCode(context.Background(), "C-100")
	require.NoError(t, err)
	assert.Equal(t, "Jan Doe", client.Name)

	_, err = svc.GetClientByCode(context.Background(), "C-999")
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func timePtr(t time.Time) *time.Time {
	return &t
}
