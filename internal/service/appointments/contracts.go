package appointments

import (
	"context"

	"github.com/petmimo/PTG-AgendaService/internal/domain"
)

// AppointmentRepository interface do repositório de agendamentos
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetWithFilter(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	Delete(ctx context.Context, id int64) error
}

// AutomationClient interface dos hooks de automação
type AutomationClient interface {
	AppointmentFinalized(ctx context.Context, appointmentID int64, appointmentType string) error
	AppointmentDeleted(ctx context.Context, appointmentID int64) error
}

// LedgerCleaner interface da limpeza de lançamentos em aberto no caixa
type LedgerCleaner interface {
	CleanupOpenEntries(ctx context.Context, subscriptionID int64) (int64, error)
}

// GroupInvalidator descarta grupos de cobrança memorizados quando o
// agendamento muda
type GroupInvalidator interface {
	Invalidate(appointmentID int64)
}

// Logger interface de logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
