package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petmimo/PTG-AgendaService/internal/domain"
	appointmentRepo "github.com/petmimo/PTG-AgendaService/internal/infra/storage/appointment"
	"github.com/petmimo/PTG-AgendaService/internal/service/appointments/models"
	"github.com/petmimo/PTG-AgendaService/pkg/ptr"
	"github.com/petmimo/PTG-AgendaService/pkg/types"
)

type fakeRepo struct {
	appointments map[int64]*domain.Appointment
	updated      []domain.AppointmentStatus
	deleted      []int64
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return appt, nil
}

func (f *fakeRepo) GetWithFilter(_ context.Context, _ domain.AppointmentFilter) ([]*domain.Appointment, error) {
	out := make([]*domain.Appointment, 0, len(f.appointments))
	for _, appt := range f.appointments {
		out = append(out, appt)
	}
	return out, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	if _, ok := f.appointments[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	f.updated = append(f.updated, status)
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.appointments[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	f.deleted = append(f.deleted, id)
	delete(f.appointments, id)
	return nil
}

type fakeAutomation struct {
	finalizedIDs []int64
	deletedIDs   []int64
}

func (f *fakeAutomation) AppointmentFinalized(_ context.Context, id int64, _ string) error {
	f.finalizedIDs = append(f.finalizedIDs, id)
	return nil
}

func (f *fakeAutomation) AppointmentDeleted(_ context.Context, id int64) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

type fakeLedgerCleaner struct {
	subscriptionIDs []int64
}

func (f *fakeLedgerCleaner) CleanupOpenEntries(_ context.Context, subscriptionID int64) (int64, error) {
	f.subscriptionIDs = append(f.subscriptionIDs, subscriptionID)
	return 1, nil
}

type fakeGroupInvalidator struct {
	invalidatedIDs []int64
}

func (f *fakeGroupInvalidator) Invalidate(appointmentID int64) {
	f.invalidatedIDs = append(f.invalidatedIDs, appointmentID)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func storedAppt(id int64, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:         id,
		ClientID:   10,
		PetIDs:     []int64{3},
		Date:       time.Date(2026, time.March, 25, 0, 0, 0, 0, time.UTC),
		Time:       types.TimeString("09:00"),
		Type:       domain.TypeSimple,
		Status:     status,
		TotalValue: decimal.RequireFromString("100"),
	}
}

type serviceDeps struct {
	repo        *fakeRepo
	automation  *fakeAutomation
	cleaner     *fakeLedgerCleaner
	invalidator *fakeGroupInvalidator
}

func newTestService(appointments ...*domain.Appointment) (*Service, *serviceDeps) {
	deps := &serviceDeps{
		repo:        &fakeRepo{appointments: map[int64]*domain.Appointment{}},
		automation:  &fakeAutomation{},
		cleaner:     &fakeLedgerCleaner{},
		invalidator: &fakeGroupInvalidator{},
	}
	for _, appt := range appointments {
		deps.repo.appointments[appt.ID] = appt
	}
	svc := NewService(deps.repo, deps.automation, deps.cleaner, deps.invalidator, nopLogger{})
	return svc, deps
}

func TestGetByID(t *testing.T) {
	svc, _ := newTestService(storedAppt(1, domain.StatusPending))

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "pendente", resp.Status)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdateStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.AppointmentStatus
		to      string
		wantErr error
	}{
		{"pendente para finalizado", domain.StatusPending, "finalizado", nil},
		{"pendente para cancelado", domain.StatusPending, "cancelado", nil},
		{"finalizado para finalizado_pago", domain.StatusFinalized, "finalizado_pago", nil},
		{"finalizado_pago salvo de novo", domain.StatusFinalizedPaid, "finalizado_pago", nil},
		{"finalizado de volta para pendente", domain.StatusFinalized, "pendente", ErrTransitionNotAllowed},
		{"finalizado_pago veta mudança", domain.StatusFinalizedPaid, "pendente", ErrTransitionNotAllowed},
		{"cancelado veta mudança", domain.StatusCancelled, "finalizado", ErrTransitionNotAllowed},
		{"status desconhecido", domain.StatusPending, "agendado", ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newTestService(storedAppt(1, tt.from))

			resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: 42, Status: tt.to})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, deps.repo.updated)
				// Transição vetada não descarta o grupo memorizado
				assert.Empty(t, deps.invalidator.invalidatedIDs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, resp.Status)
			assert.Equal(t, []domain.AppointmentStatus{domain.AppointmentStatus(tt.to)}, deps.repo.updated)
			assert.Equal(t, []int64{1}, deps.invalidator.invalidatedIDs)
		})
	}
}

func TestUpdateStatusFinalizedResaveRefiresHook(t *testing.T) {
	// Salvar um status finalizado sobre ele mesmo é permitido e dispara o
	// hook de novo, para os dois valores finalizados
	for _, status := range []domain.AppointmentStatus{domain.StatusFinalized, domain.StatusFinalizedPaid} {
		t.Run(string(status), func(t *testing.T) {
			svc, deps := newTestService(storedAppt(1, status))

			_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: 42, Status: string(status)})
			require.NoError(t, err)
			assert.Equal(t, []int64{1}, deps.automation.finalizedIDs)
		})
	}
}

func TestUpdateStatusHookOnlyOnFinalization(t *testing.T) {
	svc, deps := newTestService(storedAppt(1, domain.StatusPending))

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: 42, Status: "cancelado"})
	require.NoError(t, err)
	assert.Empty(t, deps.automation.finalizedIDs)
}

func TestDeleteSimpleAppointment(t *testing.T) {
	svc, deps := newTestService(storedAppt(1, domain.StatusPending))

	err := svc.Delete(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, []int64{1}, deps.repo.deleted)
	assert.Equal(t, []int64{1}, deps.automation.deletedIDs)
	// Exclusão descarta o grupo de cobrança memorizado
	assert.Equal(t, []int64{1}, deps.invalidator.invalidatedIDs)
	// Agendamento avulso não mexe no caixa
	assert.Empty(t, deps.cleaner.subscriptionIDs)
}

func TestDeleteSubscriptionOccurrenceCleansLedger(t *testing.T) {
	appt := storedAppt(1, domain.StatusPending)
	appt.Type = domain.TypeSubscription
	appt.SubscriptionID = ptr.Ptr(int64(55))
	svc, deps := newTestService(appt)

	err := svc.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{55}, deps.cleaner.subscriptionIDs)
	assert.Equal(t, []int64{1}, deps.invalidator.invalidatedIDs)
}

func TestDeleteNotFound(t *testing.T) {
	svc, deps := newTestService()

	err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.Empty(t, deps.automation.deletedIDs)
	assert.Empty(t, deps.invalidator.invalidatedIDs)
}
