package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petmimo/PTG-AgendaService/internal/domain"
	"github.com/petmimo/PTG-AgendaService/internal/infra/audit"
)

type fakeAppointmentRepo struct {
	created []*domain.Appointment
	err     error
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	appt.ID = int64(len(f.created) + 1)
	appt.CreatedAt = testNow
	appt.UpdatedAt = testNow
	f.created = append(f.created, appt)
	return appt, nil
}

type fakeCatalogRepo struct {
	services []*domain.Service
	err      error
}

func (f *fakeCatalogRepo) GetServicesByIDs(_ context.Context, _ []int64) ([]*domain.Service, error) {
	return f.services, f.err
}

type fakeAutomation struct {
	createdIDs []int64
	err        error
}

func (f *fakeAutomation) AppointmentCreated(_ context.Context, id int64, _ string) error {
	f.createdIDs = append(f.createdIDs, id)
	return f.err
}

type fakeAudit struct {
	events []string
}

func (f *fakeAudit) Append(_ context.Context, eventType string, _ int64, _ audit.Payload) error {
	f.events = append(f.events, eventType)
	return nil
}

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeAppointmentRepo, catalog *fakeCatalogRepo, automation *fakeAutomation, auditW *fakeAudit) *UseCase {
	uc := NewUseCase(repo, catalog, automation, auditW, nopLogger{})
	uc.timeProvider = &fakeClock{now: testNow}
	return uc
}

func TestExecuteCreatesSimpleAppointment(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	catalog := &fakeCatalogRepo{services: []*domain.Service{
		{ID: 1, Name: "banho simples", Price: decimal.RequireFromString("60")},
		{ID: 2, Name: "hidratação", Price: decimal.RequireFromString("40")},
	}}
	automation := &fakeAutomation{}
	auditW := &fakeAudit{}
	uc := newTestUseCase(repo, catalog, automation, auditW)

	sub := validSubmission()
	sub.AppointmentTotal = "100,00"

	resp, err := uc.Execute(context.Background(), 42, sub)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, resp.Status)
	assert.Len(t, resp.Services, 2)
	// O total submetido é armazenado como veio
	assert.True(t, decimal.RequireFromString("100").Equal(resp.TotalValue))

	// Hook de criação disparado com o id persistido
	assert.Equal(t, []int64{resp.ID}, automation.createdIDs)
	assert.Empty(t, auditW.events)
}

func TestExecutePastAppointmentStatusMapping(t *testing.T) {
	tests := []struct {
		payment    string
		wantStatus domain.AppointmentStatus
	}{
		{"pago", domain.StatusFinalizedPaid},
		{"pendente", domain.StatusFinalized},
	}

	for _, tt := range tests {
		t.Run(tt.payment, func(t *testing.T) {
			repo := &fakeAppointmentRepo{}
			uc := newTestUseCase(repo, &fakeCatalogRepo{services: []*domain.Service{
				{ID: 1, Name: "banho simples", Price: decimal.RequireFromString("60")},
				{ID: 2, Name: "hidratação", Price: decimal.RequireFromString("40")},
			}}, &fakeAutomation{}, &fakeAudit{})

			sub := validSubmission()
			sub.Type = "passado"
			sub.Date = "2026-03-10"
			sub.PaymentStatus = tt.payment
			sub.PendingValue = "30"

			resp, err := uc.Execute(context.Background(), 42, sub)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, resp.Status)
			require.NotNil(t, resp.PastPayment)
			if tt.payment == "pendente" {
				assert.True(t, decimal.RequireFromString("30").Equal(resp.PastPayment.PendingValue))
			} else {
				assert.True(t, resp.PastPayment.PendingValue.IsZero())
			}
		})
	}
}

func TestExecuteValidationFailureAppendsAudit(t *testing.T) {
	auditW := &fakeAudit{}
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeCatalogRepo{}, &fakeAutomation{}, auditW)

	sub := validSubmission()
	sub.ClientID = "nope"

	_, err := uc.Execute(context.Background(), 42, sub)

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, fieldNames(validationErr.Fields), "client_id")
	assert.Equal(t, []string{audit.EventValidationRejected}, auditW.events)
}

func TestExecuteServiceNotFound(t *testing.T) {
	// Catálogo devolve menos serviços do que o submetido
	catalog := &fakeCatalogRepo{services: []*domain.Service{
		{ID: 1, Name: "banho simples", Price: decimal.RequireFromString("60")},
	}}
	uc := newTestUseCase(&fakeAppointmentRepo{}, catalog, &fakeAutomation{}, &fakeAudit{})

	_, err := uc.Execute(context.Background(), 42, validSubmission())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecuteHookFailureDoesNotFail(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	catalog := &fakeCatalogRepo{services: []*domain.Service{
		{ID: 1, Name: "banho simples", Price: decimal.RequireFromString("60")},
		{ID: 2, Name: "hidratação", Price: decimal.RequireFromString("40")},
	}}
	automation := &fakeAutomation{err: errors.New("automation offline")}
	uc := newTestUseCase(repo, catalog, automation, &fakeAudit{})

	resp, err := uc.Execute(context.Background(), 42, validSubmission())
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
}
