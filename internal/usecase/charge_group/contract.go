package charge_group

import (
	"context"

	"github.com/petmimo/PTG-AgendaService/internal/domain"
)

// AppointmentRepository interface do repositório de agendamentos
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetWithFilter(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
}

// CatalogRepository interface de leitura do catálogo
type CatalogRepository interface {
	GetClientByID(ctx context.Context, id int64) (*domain.Client, error)
	GetPetsByIDs(ctx context.Context, ids []int64) ([]*domain.Pet, error)
}

// Logger interface de logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
