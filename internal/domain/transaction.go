package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is the settlement state of a ledger entry
type TransactionStatus string

const (
	TransactionOpen      TransactionStatus = "em_aberto"
	TransactionPaid      TransactionStatus = "pago"
	TransactionCancelled TransactionStatus = "cancelado"
)

// TransactionType is the ledger entry direction; the engine only writes revenue
type TransactionType string

const (
	TransactionRevenue TransactionType = "receita"
)

// Transaction is a revenue ledger entry. For subscription billing there is at
// most one entry per (subscription_id, date), enforced by a unique constraint
// and an atomic upsert in the repository.
type Transaction struct {
	ID             int64
	ClientID       *int64
	AppointmentID  *int64
	SubscriptionID *int64
	Date           time.Time
	Value          decimal.Decimal
	Category       string
	Type           TransactionType
	Status         TransactionStatus
	Description    string

	CreatedAt time.Time
	UpdatedAt time.Time
}
