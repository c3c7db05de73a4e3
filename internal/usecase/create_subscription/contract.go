package create_subscription

import (
	"context"
	"time"

	"github.com/petmimo/PTG-AgendaService/internal/domain"
	"github.com/petmimo/PTG-AgendaService/internal/infra/audit"
)

// AppointmentRepository interface do repositório de agendamentos
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// SubscriptionRepository interface do repositório de assinaturas
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error)
}

// CatalogRepository interface de leitura do catálogo
type CatalogRepository interface {
	GetServiceByName(ctx context.Context, name string) (*domain.Service, error)
}

// LedgerReconciler interface do reconciliador do caixa
type LedgerReconciler interface {
	ReconcileSubscriptionEntry(ctx context.Context, sub *domain.Subscription) (*domain.Transaction, error)
}

// AutomationClient interface dos hooks de automação
type AutomationClient interface {
	AppointmentCreated(ctx context.Context, appointmentID int64, appointmentType string) error
}

// AuditWriter interface do registro de auditoria
type AuditWriter interface {
	Append(ctx context.Context, eventType string, actorID int64, payload audit.Payload) error
}

// TransactionManager interface para gerenciar transações do banco
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
