package create_subscription

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petmimo/PTG-AgendaService/internal/domain"
	"github.com/petmimo/PTG-AgendaService/internal/infra/audit"
)

var testNow = time.Date(2026, time.March, 20, 9, 0, 0, 0, time.UTC)

type fakeSubscriptionRepo struct {
	created *domain.Subscription
	err     error
}

func (f *fakeSubscriptionRepo) Create(_ context.Context, sub *domain.Subscription) (*domain.Subscription, error) {
	if f.err != nil {
		return nil, f.err
	}
	sub.ID = 55
	sub.CreatedAt = testNow
	f.created = sub
	return sub, nil
}

type fakeAppointmentRepo struct {
	created []*domain.Appointment
	failAt  map[int]error // índice da chamada (0-based) que deve falhar
	calls   int
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	call := f.calls
	f.calls++
	if err, ok := f.failAt[call]; ok {
		return nil, err
	}
	appt.ID = int64(len(f.created) + 100)
	f.created = append(f.created, appt)
	return appt, nil
}

type fakeCatalogRepo struct {
	services map[string]*domain.Service
}

func (f *fakeCatalogRepo) GetServiceByName(_ context.Context, name string) (*domain.Service, error) {
	svc, ok := f.services[name]
	if !ok {
		return nil, errors.New("serviço não encontrado")
	}
	return svc, nil
}

type fakeLedger struct {
	reconciled []*domain.Subscription
	err        error
}

func (f *fakeLedger) ReconcileSubscriptionEntry(_ context.Context, sub *domain.Subscription) (*domain.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.reconciled = append(f.reconciled, sub)
	return &domain.Transaction{ID: 1}, nil
}

type fakeAutomation struct {
	createdIDs []int64
}

func (f *fakeAutomation) AppointmentCreated(_ context.Context, id int64, _ string) error {
	f.createdIDs = append(f.createdIDs, id)
	return nil
}

type fakeAudit struct {
	events []string
}

func (f *fakeAudit) Append(_ context.Context, eventType string, _ int64, _ audit.Payload) error {
	f.events = append(f.events, eventType)
	return nil
}

type fakeTxManager struct {
	runs int
	err  error
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.runs++
	if f.err != nil {
		return f.err
	}
	return fn(ctx)
}

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func fullCatalog() *fakeCatalogRepo {
	return &fakeCatalogRepo{services: map[string]*domain.Service{
		domain.DefaultServiceBath:      {ID: 1, Name: domain.DefaultServiceBath, Price: money("60")},
		domain.DefaultServiceHydration: {ID: 2, Name: domain.DefaultServiceHydration, Price: money("40")},
	}}
}

func validCycleSubmission() *Submission {
	return &Submission{
		ClientID:  "10",
		PetIDs:    []string{"3", "7"},
		StartDate: "2026-03-25",
		StartTime: "09:00",
		Frequency: "semanal",
	}
}

type testDeps struct {
	subRepo    *fakeSubscriptionRepo
	apptRepo   *fakeAppointmentRepo
	catalog    *fakeCatalogRepo
	ledger     *fakeLedger
	automation *fakeAutomation
	audit      *fakeAudit
	tx         *fakeTxManager
}

func newTestUseCase(deps *testDeps) *UseCase {
	uc := NewUseCase(deps.subRepo, deps.apptRepo, deps.catalog, deps.ledger, deps.automation, deps.audit, deps.tx, nopLogger{})
	uc.timeProvider = &fakeClock{now: testNow}
	return uc
}

func defaultDeps() *testDeps {
	return &testDeps{
		subRepo:    &fakeSubscriptionRepo{},
		apptRepo:   &fakeAppointmentRepo{},
		catalog:    fullCatalog(),
		ledger:     &fakeLedger{},
		automation: &fakeAutomation{},
		audit:      &fakeAudit{},
		tx:         &fakeTxManager{},
	}
}

func TestExecuteCreatesWeeklyCycle(t *testing.T) {
	deps := defaultDeps()
	uc := newTestUseCase(deps)

	resp, err := uc.Execute(context.Background(), 42, validCycleSubmission())
	require.NoError(t, err)

	assert.Equal(t, int64(55), resp.SubscriptionID)
	// Semanal com 2 pets: 4 ocorrências por pet
	assert.Len(t, resp.AppointmentIDs, 8)
	assert.Zero(t, resp.SkippedInserts)

	// Assinatura e lançamento no caixa dentro da mesma transação
	assert.Equal(t, 1, deps.tx.runs)
	require.Len(t, deps.ledger.reconciled, 1)
	assert.Equal(t, int64(55), deps.ledger.reconciled[0].ID)

	// Hook de criação por ocorrência persistida
	assert.Equal(t, resp.AppointmentIDs, deps.automation.createdIDs)
}

func TestExecuteOccurrenceDatesAndTosa(t *testing.T) {
	deps := defaultDeps()
	uc := newTestUseCase(deps)

	sub := validCycleSubmission()
	sub.TosaEnabled = "sim"
	sub.TosaPrice = "80"
	sub.TosaOccurrence = "2"

	_, err := uc.Execute(context.Background(), 42, sub)
	require.NoError(t, err)
	require.Len(t, deps.apptRepo.created, 8)

	start := time.Date(2026, time.March, 25, 0, 0, 0, 0, time.UTC)
	perPet := deps.apptRepo.created[:4]
	for i, appt := range perPet {
		assert.Equal(t, start.AddDate(0, 0, 7*i), appt.Date, "occurrence %d", i+1)
		assert.Equal(t, "09:00", appt.Time.String())
		assert.Equal(t, domain.TypeSubscription, appt.Type)
		assert.Equal(t, domain.StatusPending, appt.Status)
		require.NotNil(t, appt.SubscriptionID)
		assert.Equal(t, int64(55), *appt.SubscriptionID)
	}

	// Tosa apenas na segunda ocorrência de cada pet
	var tosaCount int
	for _, appt := range deps.apptRepo.created {
		if appt.Tosa.Enabled {
			tosaCount++
			assert.True(t, money("180").Equal(appt.TotalValue))
		} else {
			assert.True(t, money("100").Equal(appt.TotalValue))
		}
	}
	assert.Equal(t, 2, tosaCount)

	// O segundo pet repete as mesmas datas do primeiro
	for i := 0; i < 4; i++ {
		assert.Equal(t, deps.apptRepo.created[i].Date, deps.apptRepo.created[i+4].Date)
	}
}

func TestExecuteBiweeklyCycle(t *testing.T) {
	deps := defaultDeps()
	uc := newTestUseCase(deps)

	sub := validCycleSubmission()
	sub.PetIDs = []string{"3"}
	sub.Frequency = "quinzenal"

	resp, err := uc.Execute(context.Background(), 42, sub)
	require.NoError(t, err)

	require.Len(t, resp.AppointmentIDs, 2)
	second := deps.apptRepo.created[1]
	assert.Equal(t, time.Date(2026, time.April, 8, 0, 0, 0, 0, time.UTC), second.Date)
}

func TestExecuteSkipsFailedOccurrence(t *testing.T) {
	deps := defaultDeps()
	deps.apptRepo.failAt = map[int]error{2: errors.New("insert falhou")}
	uc := newTestUseCase(deps)

	resp, err := uc.Execute(context.Background(), 42, validCycleSubmission())
	require.NoError(t, err)

	assert.Len(t, resp.AppointmentIDs, 7)
	assert.Equal(t, 1, resp.SkippedInserts)
	// Sem hook para a ocorrência pulada
	assert.Len(t, deps.automation.createdIDs, 7)
}

func TestExecuteMissingDefaultServiceContinues(t *testing.T) {
	deps := defaultDeps()
	delete(deps.catalog.services, domain.DefaultServiceHydration)
	uc := newTestUseCase(deps)

	resp, err := uc.Execute(context.Background(), 42, validCycleSubmission())
	require.NoError(t, err)

	// Ciclo segue só com o banho: 60 × 4 por pet
	assert.True(t, money("240").Equal(resp.BaseValue))
	for _, appt := range deps.apptRepo.created {
		assert.Len(t, appt.Services, 1)
	}
}

func TestExecuteNoDefaultServices(t *testing.T) {
	deps := defaultDeps()
	deps.catalog.services = map[string]*domain.Service{}
	uc := newTestUseCase(deps)

	_, err := uc.Execute(context.Background(), 42, validCycleSubmission())
	assert.ErrorIs(t, err, ErrNoServices)
	assert.Equal(t, 0, deps.tx.runs)
}

func TestExecuteValidationFailureAppendsAudit(t *testing.T) {
	deps := defaultDeps()
	uc := newTestUseCase(deps)

	sub := validCycleSubmission()
	sub.StartDate = "2026-03-19"

	_, err := uc.Execute(context.Background(), 42, sub)

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{audit.EventValidationRejected}, deps.audit.events)
	assert.Equal(t, 0, deps.tx.runs)
}

func TestExecutePersistFailureAbortsCycle(t *testing.T) {
	deps := defaultDeps()
	deps.subRepo.err = errors.New("conexão perdida")
	uc := newTestUseCase(deps)

	_, err := uc.Execute(context.Background(), 42, validCycleSubmission())
	assert.ErrorIs(t, err, ErrSubscriptionPersist)
	// Nenhuma ocorrência criada quando a transação falha
	assert.Empty(t, deps.apptRepo.created)
}

func TestExecuteLedgerFailureAbortsCycle(t *testing.T) {
	deps := defaultDeps()
	deps.ledger.err = errors.New("caixa indisponível")
	uc := newTestUseCase(deps)

	_, err := uc.Execute(context.Background(), 42, validCycleSubmission())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, deps.apptRepo.created)
}
