package charge_group

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petmimo/PTG-AgendaService/internal/domain"
	appointmentRepo "github.com/petmimo/PTG-AgendaService/internal/infra/storage/appointment"
	catalogRepo "github.com/petmimo/PTG-AgendaService/internal/infra/storage/catalog"
	"github.com/petmimo/PTG-AgendaService/pkg/types"
)

type fakeAppointmentRepo struct {
	byID        map[int64]*domain.Appointment
	siblings    []*domain.Appointment
	filterCalls int
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return appt, nil
}

func (f *fakeAppointmentRepo) GetWithFilter(_ context.Context, _ domain.AppointmentFilter) ([]*domain.Appointment, error) {
	f.filterCalls++
	return f.siblings, nil
}

type fakeCatalogRepo struct {
	client *domain.Client
	pets   []*domain.Pet
	err    error
}

func (f *fakeCatalogRepo) GetClientByID(_ context.Context, _ int64) (*domain.Client, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.client == nil {
		return nil, catalogRepo.ErrClientNotFound
	}
	return f.client, nil
}

func (f *fakeCatalogRepo) GetPetsByIDs(_ context.Context, _ []int64) ([]*domain.Pet, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.pets, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func groupAppt(id int64, petIDs []int64, total string) *domain.Appointment {
	return &domain.Appointment{
		ID:         id,
		ClientID:   10,
		PetIDs:     petIDs,
		Date:       time.Date(2026, time.March, 25, 0, 0, 0, 0, time.UTC),
		Time:       types.TimeString("09:00"),
		Status:     domain.StatusPending,
		TotalValue: decimal.RequireFromString(total),
	}
}

func newTestRepo(siblings ...*domain.Appointment) *fakeAppointmentRepo {
	byID := make(map[int64]*domain.Appointment, len(siblings))
	for _, appt := range siblings {
		byID[appt.ID] = appt
	}
	return &fakeAppointmentRepo{byID: byID, siblings: siblings}
}

func TestResolveGroup(t *testing.T) {
	repo := newTestRepo(
		groupAppt(100, []int64{3}, "100"),
		groupAppt(101, []int64{3}, "180"),
		// Assinatura de pets diferente fica fora do grupo
		groupAppt(102, []int64{4}, "60"),
	)
	catalog := &fakeCatalogRepo{
		client: &domain.Client{ID: 10, Name: "Maria", Phone: "+5511999990000"},
		pets:   []*domain.Pet{{ID: 3, Name: "Thor"}},
	}
	uc := NewUseCase(repo, catalog, time.Minute, nopLogger{})

	group, err := uc.Resolve(context.Background(), 101)
	require.NoError(t, err)

	assert.Equal(t, int64(100), group.AnchorID)
	assert.False(t, group.IsAnchor)
	assert.Equal(t, "3", group.Signature)
	require.Len(t, group.Members, 2)
	assert.Equal(t, int64(100), group.Members[0].AppointmentID)
	assert.True(t, decimal.RequireFromString("280").Equal(group.GroupTotal))
	assert.Equal(t, "Maria", group.ClientName)
	assert.Equal(t, []string{"Thor"}, group.PetNames)
}

func TestResolveAnchorFlag(t *testing.T) {
	repo := newTestRepo(
		groupAppt(100, []int64{3, 7}, "100"),
		groupAppt(101, []int64{7, 3}, "100"),
	)
	uc := NewUseCase(repo, &fakeCatalogRepo{}, time.Minute, nopLogger{})

	// A ordem dos pets não muda a assinatura canônica
	group, err := uc.Resolve(context.Background(), 100)
	require.NoError(t, err)
	assert.True(t, group.IsAnchor)
	assert.Equal(t, "3-7", group.Signature)
}

func TestResolveNoGroupForSingleMember(t *testing.T) {
	repo := newTestRepo(
		groupAppt(100, []int64{3}, "100"),
		groupAppt(101, []int64{4}, "60"),
	)
	uc := NewUseCase(repo, &fakeCatalogRepo{}, time.Minute, nopLogger{})

	_, err := uc.Resolve(context.Background(), 100)
	assert.ErrorIs(t, err, ErrNoGroup)
}

func TestResolveAppointmentNotFound(t *testing.T) {
	uc := NewUseCase(newTestRepo(), &fakeCatalogRepo{}, time.Minute, nopLogger{})

	_, err := uc.Resolve(context.Background(), 999)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestResolveCacheHitSkipsRepository(t *testing.T) {
	repo := newTestRepo(
		groupAppt(100, []int64{3}, "100"),
		groupAppt(101, []int64{3}, "180"),
	)
	uc := NewUseCase(repo, &fakeCatalogRepo{}, time.Minute, nopLogger{})

	first, err := uc.Resolve(context.Background(), 100)
	require.NoError(t, err)
	require.Equal(t, 1, repo.filterCalls)

	second, err := uc.Resolve(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.filterCalls)
	assert.Same(t, first, second)
}

func TestInvalidateDropsCachedGroupAndSiblings(t *testing.T) {
	repo := newTestRepo(
		groupAppt(100, []int64{3}, "100"),
		groupAppt(101, []int64{3}, "180"),
	)
	uc := NewUseCase(repo, &fakeCatalogRepo{}, time.Minute, nopLogger{})

	_, err := uc.Resolve(context.Background(), 100)
	require.NoError(t, err)
	_, err = uc.Resolve(context.Background(), 101)
	require.NoError(t, err)
	require.Equal(t, 2, repo.filterCalls)

	// Invalidar um membro derruba as entradas de todos os membros do grupo
	uc.Invalidate(101)

	_, err = uc.Resolve(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, 3, repo.filterCalls)
}

func TestInvalidateUnknownAppointmentIsNoop(t *testing.T) {
	repo := newTestRepo(
		groupAppt(100, []int64{3}, "100"),
		groupAppt(101, []int64{3}, "180"),
	)
	uc := NewUseCase(repo, &fakeCatalogRepo{}, time.Minute, nopLogger{})

	_, err := uc.Resolve(context.Background(), 100)
	require.NoError(t, err)

	uc.Invalidate(999)

	// A entrada memorizada de outro agendamento permanece
	_, err = uc.Resolve(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.filterCalls)
}

func TestResolveContactFailureKeepsGroup(t *testing.T) {
	repo := newTestRepo(
		groupAppt(100, []int64{3}, "100"),
		groupAppt(101, []int64{3}, "180"),
	)
	catalog := &fakeCatalogRepo{err: errors.New("catálogo fora do ar")}
	uc := NewUseCase(repo, catalog, time.Minute, nopLogger{})

	group, err := uc.Resolve(context.Background(), 100)
	require.NoError(t, err)
	assert.Empty(t, group.ClientPhone)
	assert.Empty(t, group.PetNames)
}
