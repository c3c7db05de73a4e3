// Package catalog é o lado de leitura dos dados de referência: serviços,
// clientes e pets. O CRUD dessas entidades pertence a outro sistema; o motor
// de agenda só consulta.
package catalog

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

// Repository repositório de leitura do catálogo
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository cria um novo repositório de catálogo
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetServiceByName busca um serviço pelo nome exato.
// Usado para resolver os serviços padrão do ciclo de assinatura.
func (r *Repository) GetServiceByName(ctx context.Context, name string) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "price", "category").
		From("services").
		Where(squirrel.Eq{"name": name}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByName - build select query: %v", ErrBuildQuery, err)
	}

	var svc domain.Service
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&svc.ID,
		&svc.Name,
		&svc.Price,
		&svc.Category,
	)

	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByName - scan service: %v", ErrScanRow, err)
	}

	return &svc, nil
}

// GetServicesByIDs busca os serviços informados. Serviços inexistentes
// simplesmente não aparecem no resultado; quem chama decide se isso é erro.
func (r *Repository) GetServicesByIDs(ctx context.Context, ids []int64) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "price", "category").
		From("services").
		Where(squirrel.Expr("id = ANY(?)", pq.Array(ids))).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServicesByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetServicesByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0, len(ids))
	for rows.Next() {
		var svc domain.Service
		if err := rows.Scan(&svc.ID, &svc.Name, &svc.Price, &svc.Category); err != nil {
			return nil, fmt.Errorf("%w: GetServicesByIDs - scan service: %v", ErrScanRow, err)
		}
		services = append(services, &svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetServicesByIDs - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetClientByID busca os dados de contato de um cliente
func (r *Repository) GetClientByID(ctx context.Context, id int64) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "phone").
		From("clients").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetClientByID - build select query: %v", ErrBuildQuery, err)
	}

	var client domain.Client
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&client.ID,
		&client.Name,
		&client.Phone,
	)

	if err == sql.ErrNoRows {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetClientByID - scan client: %v", ErrScanRow, err)
	}

	return &client, nil
}

// GetPetsByIDs busca os pets informados, na ordem do banco
func (r *Repository) GetPetsByIDs(ctx context.Context, ids []int64) ([]*domain.Pet, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "client_id", "name", "breed").
		From("pets").
		Where(squirrel.Expr("id = ANY(?)", pq.Array(ids))).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetPetsByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetPetsByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	pets := make([]*domain.Pet, 0, len(ids))
	for rows.Next() {
		var pet domain.Pet
		if err := rows.Scan(&pet.ID, &pet.ClientID, &pet.Name, &pet.Breed); err != nil {
			return nil, fmt.Errorf("%w: GetPetsByIDs - scan pet: %v", ErrScanRow, err)
		}
		pets = append(pets, &pet)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetPetsByIDs - rows error: %v", ErrScanRow, err)
	}

	return pets, nil
}
