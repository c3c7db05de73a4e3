package transaction

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petmimo/PTG-AgendaService/internal/domain"
	"github.com/petmimo/PTG-AgendaService/pkg/ptr"
)

func TestUpsertEntryQuery(t *testing.T) {
	entry := &domain.Transaction{
		ClientID:       ptr.Ptr(int64(10)),
		SubscriptionID: ptr.Ptr(int64(55)),
		Date:           time.Date(2026, time.March, 25, 0, 0, 0, 0, time.UTC),
		Value:          decimal.RequireFromString("800"),
		Category:       domain.LedgerCategory,
		Type:           domain.TransactionRevenue,
		Status:         domain.TransactionOpen,
		Description:    "Assinatura semanal, ciclo iniciando em 2026-03-25",
	}

	query, args, err := upsertEntryQuery(entry)
	require.NoError(t, err)

	// A idempotência mora na resolução de conflito sobre (subscription_id, date)
	assert.Contains(t, query, "INSERT INTO transactions")
	assert.Contains(t, query, "ON CONFLICT (subscription_id, date) DO UPDATE")
	assert.Contains(t, query, "value = EXCLUDED.value")
	assert.Contains(t, query, "status = EXCLUDED.status")
	assert.Contains(t, query, "description = EXCLUDED.description")
	assert.Contains(t, query, "category = EXCLUDED.category")
	assert.Contains(t, query, "RETURNING id, created_at, updated_at")

	// Placeholders posicionais do Postgres
	assert.Contains(t, query, "$9")
	assert.NotContains(t, query, "?")

	require.Len(t, args, 9)
	assert.Equal(t, entry.ClientID, args[0])
	assert.Nil(t, args[1]) // appointment_id fica nulo em lançamento de ciclo
	assert.Equal(t, entry.SubscriptionID, args[2])
	assert.Equal(t, entry.Date, args[3])
	assert.Equal(t, entry.Value, args[4])
	assert.Equal(t, domain.LedgerCategory, args[5])
	assert.Equal(t, domain.TransactionRevenue, args[6])
	assert.Equal(t, domain.TransactionOpen, args[7])
	assert.Equal(t, entry.Description, args[8])
}
