package agenda_view

import (
	"context"
	"fmt"

	"github.com/petmimo/PTG-AgendaService/internal/domain"
	"github.com/petmimo/PTG-AgendaService/internal/service/appointments/models"
)

// UseCase monta as visões da agenda a partir dos agendamentos armazenados
type UseCase struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase cria um novo use case de visões da agenda
func NewUseCase(appointmentRepo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Agenda monta a visão operacional: atrasados, finalizados de hoje e
// próximos. Filtra opcionalmente por cliente.
func (uc *UseCase) Agenda(ctx context.Context, clientID *int64) (*AgendaResponse, error) {
	uc.logger.Info("AgendaView: building agenda, client=%v", clientID)

	// A consulta já exclui os status encerrados
	appointments, err := uc.appointmentRepo.GetWithFilter(ctx, domain.AppointmentFilter{
		ClientID: clientID,
	})
	if err != nil {
		uc.logger.Error("AgendaView: repository error: %v", err)
		return nil, fmt.Errorf("%w: failed to load appointments: %v", ErrInternal, err)
	}

	buckets := BucketizeAgenda(appointments, uc.timeProvider.Now())

	uc.logger.Info("AgendaView: agenda built, overdue=%d, finalizedToday=%d, upcoming=%d",
		len(buckets.Overdue), len(buckets.FinalizedToday), len(buckets.Upcoming))

	return &AgendaResponse{
		Overdue:        toResponses(buckets.Overdue),
		FinalizedToday: toResponses(buckets.FinalizedToday),
		Upcoming:       toResponses(buckets.Upcoming),
	}, nil
}

// History monta a linha do tempo completa de um cliente, sem filtro de
// status. Encerrados entram.
func (uc *UseCase) History(ctx context.Context, clientID *int64) (*HistoryResponse, error) {
	uc.logger.Info("AgendaView: building history, client=%v", clientID)

	appointments, err := uc.appointmentRepo.GetWithFilter(ctx, domain.AppointmentFilter{
		ClientID:        clientID,
		IncludeTerminal: true,
	})
	if err != nil {
		uc.logger.Error("AgendaView: repository error: %v", err)
		return nil, fmt.Errorf("%w: failed to load appointments: %v", ErrInternal, err)
	}

	buckets := BucketizeHistory(appointments, uc.timeProvider.Now())

	uc.logger.Info("AgendaView: history built, today=%d, upcoming=%d, past=%d",
		len(buckets.Today), len(buckets.Upcoming), len(buckets.Past))

	return &HistoryResponse{
		Today:    toResponses(buckets.Today),
		Upcoming: toResponses(buckets.Upcoming),
		Past:     toResponses(buckets.Past),
	}, nil
}

func toResponses(appointments []*domain.Appointment) []models.AppointmentResponse {
	resp := make([]models.AppointmentResponse, 0, len(appointments))
	for _, appt := range appointments {
		if dto := models.FromDomainAppointment(appt); dto != nil {
			resp = append(resp, *dto)
		}
	}
	return resp
}
