package agenda_view

import (
	"sort"
	"time"

	"github.com/petmimo/PTG-AgendaService/internal/domain"
)

// AgendaBuckets é a visão operacional da agenda.
// Agendamentos encerrados (finalizado_pago, cancelado) não aparecem aqui.
type AgendaBuckets struct {
	// Overdue: pendentes cujo horário já passou, ou sem horário com a data
	// no passado
	Overdue []*domain.Appointment
	// FinalizedToday: finalizados com data de hoje, aguardando pagamento
	FinalizedToday []*domain.Appointment
	// Upcoming: o restante com horário de agora em diante
	Upcoming []*domain.Appointment
}

// HistoryBuckets é a linha do tempo completa, sem filtro de status
type HistoryBuckets struct {
	Today    []*domain.Appointment
	Upcoming []*domain.Appointment
	Past     []*domain.Appointment
}

// BucketizeAgenda classifica os agendamentos na visão operacional.
// Quem chama já deve ter excluído os status encerrados da consulta; ainda
// assim eles são descartados aqui caso apareçam.
func BucketizeAgenda(appointments []*domain.Appointment, now time.Time) AgendaBuckets {
	today := startOfDay(now)
	var buckets AgendaBuckets

	for _, appt := range appointments {
		if appt.IsTerminal() {
			continue
		}

		dt := appt.DateTime()
		apptDay := startOfDay(appt.Date)

		switch {
		case appt.Status == domain.StatusPending && dt.Before(now),
			appt.Time.IsZero() && apptDay.Before(today):
			buckets.Overdue = append(buckets.Overdue, appt)
		case appt.Status == domain.StatusFinalized && apptDay.Equal(today):
			buckets.FinalizedToday = append(buckets.FinalizedToday, appt)
		case !dt.Before(now):
			buckets.Upcoming = append(buckets.Upcoming, appt)
		}
	}

	sortBucket(buckets.Overdue)
	sortBucket(buckets.FinalizedToday)
	sortBucket(buckets.Upcoming)
	return buckets
}

// BucketizeHistory classifica os agendamentos na linha do tempo
func BucketizeHistory(appointments []*domain.Appointment, now time.Time) HistoryBuckets {
	today := startOfDay(now)
	var buckets HistoryBuckets

	for _, appt := range appointments {
		apptDay := startOfDay(appt.Date)

		switch {
		case apptDay.Equal(today):
			buckets.Today = append(buckets.Today, appt)
		case appt.DateTime().After(now):
			buckets.Upcoming = append(buckets.Upcoming, appt)
		default:
			buckets.Past = append(buckets.Past, appt)
		}
	}

	sortBucket(buckets.Today)
	sortBucket(buckets.Upcoming)
	sortBucket(buckets.Past)
	return buckets
}

// sortBucket ordena por data/hora decrescente; empate decide pelo id
// decrescente (o criado por último vence)
func sortBucket(appointments []*domain.Appointment) {
	sort.SliceStable(appointments, func(i, j int) bool {
		di, dj := appointments[i].DateTime(), appointments[j].DateTime()
		if di.Equal(dj) {
			return appointments[i].ID > appointments[j].ID
		}
		return di.After(dj)
	})
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
