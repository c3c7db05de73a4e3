package agenda_view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petmimo/PTG-AgendaService/internal/domain"
	"github.com/petmimo/PTG-AgendaService/pkg/types"
)

var testNow = time.Date(2026, time.March, 20, 9, 0, 0, 0, time.UTC)

func appt(id int64, status domain.AppointmentStatus, date string, hhmm string) *domain.Appointment {
	d, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		panic(err)
	}
	return &domain.Appointment{
		ID:     id,
		Status: status,
		Date:   d,
		Time:   types.TimeString(hhmm),
	}
}

func ids(appointments []*domain.Appointment) []int64 {
	out := make([]int64, len(appointments))
	for i, a := range appointments {
		out[i] = a.ID
	}
	return out
}

func TestBucketizeAgenda(t *testing.T) {
	appointments := []*domain.Appointment{
		// Pendente de ontem às 10:00 com agora = hoje 09:00 já venceu
		appt(1, domain.StatusPending, "2026-03-19", "10:00"),
		// Pendente de hoje mais cedo também venceu
		appt(2, domain.StatusPending, "2026-03-20", "08:00"),
		// Sem horário e data passada conta como vencido
		appt(3, domain.StatusPending, "2026-03-18", ""),
		// Finalizado hoje aguarda pagamento
		appt(4, domain.StatusFinalized, "2026-03-20", "07:00"),
		// Pendentes de agora em diante
		appt(5, domain.StatusPending, "2026-03-20", "09:00"),
		appt(6, domain.StatusPending, "2026-03-21", "14:00"),
		// Encerrados nunca aparecem
		appt(7, domain.StatusFinalizedPaid, "2026-03-20", "08:00"),
		appt(8, domain.StatusCancelled, "2026-03-21", "10:00"),
	}

	buckets := BucketizeAgenda(appointments, testNow)

	assert.Equal(t, []int64{2, 1, 3}, ids(buckets.Overdue))
	assert.Equal(t, []int64{4}, ids(buckets.FinalizedToday))
	assert.Equal(t, []int64{6, 5}, ids(buckets.Upcoming))
}

func TestBucketizeAgendaFinalizedPastDayExcluded(t *testing.T) {
	// Finalizado de ontem não é vencido nem "finalizado hoje": fica fora
	appointments := []*domain.Appointment{
		appt(1, domain.StatusFinalized, "2026-03-19", "10:00"),
	}

	buckets := BucketizeAgenda(appointments, testNow)

	assert.Empty(t, buckets.Overdue)
	assert.Empty(t, buckets.FinalizedToday)
	assert.Empty(t, buckets.Upcoming)
}

func TestBucketizeAgendaSortDescTieByID(t *testing.T) {
	appointments := []*domain.Appointment{
		appt(10, domain.StatusPending, "2026-03-19", "10:00"),
		appt(11, domain.StatusPending, "2026-03-19", "10:00"),
		appt(12, domain.StatusPending, "2026-03-19", "08:00"),
	}

	buckets := BucketizeAgenda(appointments, testNow)

	require.Len(t, buckets.Overdue, 3)
	assert.Equal(t, []int64{11, 10, 12}, ids(buckets.Overdue))
}

func TestBucketizeHistory(t *testing.T) {
	appointments := []*domain.Appointment{
		appt(1, domain.StatusFinalizedPaid, "2026-03-10", "10:00"),
		appt(2, domain.StatusCancelled, "2026-03-20", "15:00"),
		appt(3, domain.StatusPending, "2026-03-20", "08:00"),
		appt(4, domain.StatusPending, "2026-03-25", "09:00"),
	}

	buckets := BucketizeHistory(appointments, testNow)

	// Hoje inclui qualquer status e qualquer horário do dia
	assert.Equal(t, []int64{2, 3}, ids(buckets.Today))
	assert.Equal(t, []int64{4}, ids(buckets.Upcoming))
	assert.Equal(t, []int64{1}, ids(buckets.Past))
}
