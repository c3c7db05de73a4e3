package transaction

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/petmimo/PTG-AgendaService/internal/domain"
	"github.com/petmimo/PTG-AgendaService/pkg/dbmetrics"
	"github.com/petmimo/PTG-AgendaService/pkg/psqlbuilder"
)

// Repository repositório de lançamentos do caixa
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository cria um novo repositório de lançamentos
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// UpsertSubscriptionEntry garante exatamente um lançamento por
// (subscription_id, date). A tabela carrega UNIQUE (subscription_id, date) e
// o insert usa ON CONFLICT DO UPDATE, então chamadas concorrentes para o
// mesmo ciclo não duplicam linha: a segunda atualiza valor, status,
// descrição e categoria da primeira.
func (r *Repository) UpsertSubscriptionEntry(ctx context.Context, entry *domain.Transaction) (*domain.Transaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := upsertEntryQuery(entry)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertSubscriptionEntry - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&entry.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertSubscriptionEntry - execute upsert: %v", ErrExecQuery, err)
	}

	entry.CreatedAt = createdAt.Time
	entry.UpdatedAt = updatedAt.Time

	return entry, nil
}

// upsertEntryQuery monta o insert com resolução de conflito sobre a
// constraint única (subscription_id, date)
func upsertEntryQuery(entry *domain.Transaction) (string, []interface{}, error) {
	return psqlbuilder.Insert("transactions").
		Columns(
			"client_id",
			"appointment_id",
			"subscription_id",
			"date",
			"value",
			"category",
			"type",
			"status",
			"description",
		).
		Values(
			entry.ClientID,
			entry.AppointmentID,
			entry.SubscriptionID,
			entry.Date,
			entry.Value,
			entry.Category,
			entry.Type,
			entry.Status,
			entry.Description,
		).
		Suffix(`ON CONFLICT (subscription_id, date) DO UPDATE SET
			value = EXCLUDED.value,
			status = EXCLUDED.status,
			description = EXCLUDED.description,
			category = EXCLUDED.category,
			updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()
}

// DeleteOpenBySubscription remove os lançamentos em aberto de uma assinatura.
// Chamado pela limpeza do caixa quando um agendamento do ciclo é excluído.
func (r *Repository) DeleteOpenBySubscription(ctx context.Context, subscriptionID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("transactions").
		Where(squirrel.Eq{"subscription_id": subscriptionID}).
		Where(squirrel.Eq{"status": domain.TransactionOpen}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOpenBySubscription - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOpenBySubscription - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOpenBySubscription - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}
