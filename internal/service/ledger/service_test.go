package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petmimo/PTG-AgendaService/internal/domain"
)

type fakeTransactionRepo struct {
	upserted  []*domain.Transaction
	removed   int64
	upsertErr error
	deleteErr error
}

func (f *fakeTransactionRepo) UpsertSubscriptionEntry(_ context.Context, entry *domain.Transaction) (*domain.Transaction, error) {
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	entry.ID = int64(len(f.upserted) + 1)
	f.upserted = append(f.upserted, entry)
	return entry, nil
}

func (f *fakeTransactionRepo) DeleteOpenBySubscription(_ context.Context, _ int64) (int64, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	return f.removed, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestReconcileSubscriptionEntry(t *testing.T) {
	repo := &fakeTransactionRepo{}
	svc := NewService(repo, nopLogger{})

	sub := &domain.Subscription{
		ID:         55,
		ClientID:   10,
		Frequency:  domain.FrequencyWeekly,
		StartDate:  time.Date(2026, time.March, 25, 0, 0, 0, 0, time.UTC),
		TotalValue: decimal.RequireFromString("800"),
	}

	entry, err := svc.ReconcileSubscriptionEntry(context.Background(), sub)
	require.NoError(t, err)

	require.NotNil(t, entry.ClientID)
	assert.Equal(t, int64(10), *entry.ClientID)
	require.NotNil(t, entry.SubscriptionID)
	assert.Equal(t, int64(55), *entry.SubscriptionID)
	assert.Equal(t, sub.StartDate, entry.Date)
	assert.True(t, decimal.RequireFromString("800").Equal(entry.Value))
	assert.Equal(t, domain.LedgerCategory, entry.Category)
	assert.Equal(t, domain.TransactionRevenue, entry.Type)
	assert.Equal(t, domain.TransactionOpen, entry.Status)
	assert.Equal(t, "Assinatura semanal, ciclo iniciando em 2026-03-25", entry.Description)
}

func TestReconcileSubscriptionEntryUpsertError(t *testing.T) {
	repo := &fakeTransactionRepo{upsertErr: errors.New("constraint violation")}
	svc := NewService(repo, nopLogger{})

	_, err := svc.ReconcileSubscriptionEntry(context.Background(), &domain.Subscription{ID: 55, ClientID: 10})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestCleanupOpenEntries(t *testing.T) {
	repo := &fakeTransactionRepo{removed: 2}
	svc := NewService(repo, nopLogger{})

	removed, err := svc.CleanupOpenEntries(context.Background(), 55)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
}

func TestCleanupOpenEntriesError(t *testing.T) {
	repo := &fakeTransactionRepo{deleteErr: errors.New("conexão perdida")}
	svc := NewService(repo, nopLogger{})

	_, err := svc.CleanupOpenEntries(context.Background(), 55)
	assert.ErrorIs(t, err, ErrInternal)
}
