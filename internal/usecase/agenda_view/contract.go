package agenda_view

import (
	"context"
	"time"

	"github.com/petmimo/PTG-AgendaService/internal/domain"
)

// AppointmentRepository interface do repositório de agendamentos
type AppointmentRepository interface {
	GetWithFilter(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
}

// TimeProvider interface para obter o tempo atual (facilita teste)
type TimeProvider interface {
	Now() time.Time
}

// Logger interface de logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider provedor de tempo real para produção
type RealTimeProvider struct{}

// Now devolve o tempo atual
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
