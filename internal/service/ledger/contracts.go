package ledger

import (
	"context"

	"github.com/petmimo/PTG-AgendaService/internal/domain"
)

// TransactionRepository interface do repositório de lançamentos do caixa
type TransactionRepository interface {
	UpsertSubscriptionEntry(ctx context.Context, entry *domain.Transaction) (*domain.Transaction, error)
	DeleteOpenBySubscription(ctx context.Context, subscriptionID int64) (int64, error)
}

// Logger interface de logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
