package appointment

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/petmimo/PTG-AgendaService/internal/domain"
	"github.com/petmimo/PTG-AgendaService/pkg/dbmetrics"
	"github.com/petmimo/PTG-AgendaService/pkg/psqlbuilder"
)

var appointmentColumns = []string{
	"id",
	"client_id",
	"pet_ids",
	"date",
	"start_time",
	"notes",
	"type",
	"tosa_enabled",
	"tosa_price",
	"tosa_occurrence",
	"taxi_enabled",
	"taxi_price",
	"extra_description",
	"extra_value",
	"services",
	"total_value",
	"status",
	"subscription_id",
	"past_payment_status",
	"past_payment_pending_value",
	"created_at",
	"updated_at",
}

// Repository repositório de agendamentos
type Repository struct {
	db DBExecutor
}

// NewRepository cria um novo repositório de agendamentos
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create insere um novo agendamento.
// Se o contexto carrega uma transação ativa, usa a transação; caso contrário
// executa direto no pool.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	servicesJSON, err := json.Marshal(appt.Services)
	if err != nil {
		return nil, fmt.Errorf("%w: Create: %v", ErrEncodeServices, err)
	}

	var pastStatus, pastPending interface{}
	if appt.PastPayment != nil {
		pastStatus = string(appt.PastPayment.Status)
		pastPending = appt.PastPayment.PendingValue
	}

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"client_id",
			"pet_ids",
			"date",
			"start_time",
			"notes",
			"type",
			"tosa_enabled",
			"tosa_price",
			"tosa_occurrence",
			"taxi_enabled",
			"taxi_price",
			"extra_description",
			"extra_value",
			"services",
			"total_value",
			"status",
			"subscription_id",
			"past_payment_status",
			"past_payment_pending_value",
		).
		Values(
			appt.ClientID,
			pq.Array(appt.PetIDs),
			appt.Date,
			appt.Time,
			appt.Notes,
			appt.Type,
			appt.Tosa.Enabled,
			appt.Tosa.Price,
			appt.Tosa.OccurrenceIndex,
			appt.Taxi.Enabled,
			appt.Taxi.Price,
			appt.Extra.Description,
			appt.Extra.Value,
			servicesJSON,
			appt.TotalValue,
			appt.Status,
			appt.SubscriptionID,
			pastStatus,
			pastPending,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID busca um agendamento pelo ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := r.scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// GetWithFilter busca agendamentos com filtro flexível.
//
// Combinações usadas pelo motor:
//   - ClientID + Date + Time: irmãos de um grupo de cobrança multi-pet
//   - DateFrom/DateTo: agenda operacional do período
//   - ClientID: linha do tempo de histórico do cliente
//   - SubscriptionID: ocorrências de um ciclo de assinatura
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments")

	if filter.ClientID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"client_id": *filter.ClientID})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"date": *filter.Date})
	}
	if filter.DateFrom != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"date": *filter.DateTo})
	}
	if filter.Time != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"start_time": *filter.Time})
	}
	if filter.SubscriptionID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"subscription_id": *filter.SubscriptionID})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeTerminal {
		// Sem status explícito e sem terminais: só pendente/finalizado
		terminal := make([]string, len(domain.TerminalStatuses))
		for i, s := range domain.TerminalStatuses {
			terminal[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": terminal})
	}

	// Mais recentes primeiro; empate decidido pelo id (criado por último vence)
	selectBuilder = selectBuilder.OrderBy("date DESC, start_time DESC, id DESC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// UpdateStatus atualiza o status de um agendamento
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// Delete remove fisicamente um agendamento.
// A limpeza do caixa associada roda no serviço, não aqui.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanAppointment lê uma linha do resultado para o modelo de domínio
func (r *Repository) scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var petIDs pq.Int64Array
	var servicesJSON []byte
	var notes sql.NullString
	var subscriptionID sql.NullInt64
	var pastStatus sql.NullString
	var pastPending sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.ClientID,
		&petIDs,
		&appt.Date,
		&appt.Time,
		&notes,
		&appt.Type,
		&appt.Tosa.Enabled,
		&appt.Tosa.Price,
		&appt.Tosa.OccurrenceIndex,
		&appt.Taxi.Enabled,
		&appt.Taxi.Price,
		&appt.Extra.Description,
		&appt.Extra.Value,
		&servicesJSON,
		&appt.TotalValue,
		&appt.Status,
		&subscriptionID,
		&pastStatus,
		&pastPending,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	appt.PetIDs = []int64(petIDs)
	if notes.Valid {
		appt.Notes = &notes.String
	}
	if subscriptionID.Valid {
		appt.SubscriptionID = &subscriptionID.Int64
	}
	if len(servicesJSON) > 0 {
		if err := json.Unmarshal(servicesJSON, &appt.Services); err != nil {
			return nil, fmt.Errorf("decode services snapshot: %v", err)
		}
	}
	if pastStatus.Valid {
		payment := domain.PastPayment{Status: domain.PaymentStatus(pastStatus.String)}
		if pastPending.Valid {
			if err := payment.PendingValue.Scan(pastPending.String); err != nil {
				return nil, fmt.Errorf("decode pending value: %v", err)
			}
		}
		appt.PastPayment = &payment
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

// scanAppointments lê todas as linhas do resultado
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := r.scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
