package subscription

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/petmimo/PTG-AgendaService/internal/domain"
	"github.com/petmimo/PTG-AgendaService/pkg/dbmetrics"
	"github.com/petmimo/PTG-AgendaService/pkg/psqlbuilder"
)

// Repository repositório de assinaturas
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository cria um novo repositório de assinaturas
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create insere a assinatura do ciclo.
// Roda dentro da transação serializável da criação do ciclo: se a assinatura
// não persistir, a operação inteira aborta sem ocorrências órfãs.
func (r *Repository) Create(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("subscriptions").
		Columns(
			"client_id",
			"pet_ids",
			"frequency",
			"start_date",
			"start_time",
			"base_value",
			"total_value",
			"extra_description",
			"extra_value",
			"tosa_enabled",
			"tosa_price",
			"tosa_occurrence",
			"payment_status",
		).
		Values(
			sub.ClientID,
			pq.Array(sub.PetIDs),
			sub.Frequency,
			sub.StartDate,
			sub.StartTime,
			sub.BaseValue,
			sub.TotalValue,
			sub.Extra.Description,
			sub.Extra.Value,
			sub.Tosa.Enabled,
			sub.Tosa.Price,
			sub.Tosa.OccurrenceIndex,
			sub.PaymentStatus,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&sub.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	sub.CreatedAt = createdAt.Time
	sub.UpdatedAt = updatedAt.Time

	return sub, nil
}

// GetByID busca uma assinatura pelo ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Subscription, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"client_id",
		"pet_ids",
		"frequency",
		"start_date",
		"start_time",
		"base_value",
		"total_value",
		"extra_description",
		"extra_value",
		"tosa_enabled",
		"tosa_price",
		"tosa_occurrence",
		"payment_status",
		"created_at",
		"updated_at",
	).
		From("subscriptions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var sub domain.Subscription
	var petIDs pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&sub.ID,
		&sub.ClientID,
		&petIDs,
		&sub.Frequency,
		&sub.StartDate,
		&sub.StartTime,
		&sub.BaseValue,
		&sub.TotalValue,
		&sub.Extra.Description,
		&sub.Extra.Value,
		&sub.Tosa.Enabled,
		&sub.Tosa.Price,
		&sub.Tosa.OccurrenceIndex,
		&sub.PaymentStatus,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan subscription: %v", ErrScanRow, err)
	}

	sub.PetIDs = []int64(petIDs)
	sub.CreatedAt = createdAt.Time
	sub.UpdatedAt = updatedAt.Time

	return &sub, nil
}
