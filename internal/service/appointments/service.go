package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/petmimo/PTG-AgendaService/internal/domain"
	appointmentRepo "github.com/petmimo/PTG-AgendaService/internal/infra/storage/appointment"
	"github.com/petmimo/PTG-AgendaService/internal/service/appointments/models"
)

// Service serviço de consulta e ciclo de vida de agendamentos.
// A criação tem fluxos próprios nos use cases; aqui ficam leitura, mudança
// de status pela máquina de estados e exclusão.
type Service struct {
	appointmentRepo AppointmentRepository
	automation      AutomationClient
	ledgerCleaner   LedgerCleaner
	groups          GroupInvalidator
	logger          Logger
}

// NewService cria um novo serviço de agendamentos
func NewService(
	appointmentRepo AppointmentRepository,
	automation AutomationClient,
	ledgerCleaner LedgerCleaner,
	groups GroupInvalidator,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		automation:      automation,
		ledgerCleaner:   ledgerCleaner,
		groups:          groups,
		logger:          logger,
	}
}

// GetByID busca um agendamento pelo id
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appt), nil
}

// List busca agendamentos com filtros opcionais.
// Por padrão os status encerrados ficam de fora; IncludeTerminal os devolve.
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments, client=%v, includeTerminal=%v", req.ClientID, req.IncludeTerminal)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointment(s)", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// UpdateStatus aplica a máquina de status de agendamentos.
// Estados encerrados (finalizado_pago, cancelado) vetam qualquer mudança.
// Salvar finalizado sobre finalizado é permitido e dispara o hook de novo.
func (s *Service) UpdateStatus(ctx context.Context, appointmentID int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s by user=%d",
		appointmentID, req.Status, req.UserID)

	newStatus, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, appointmentID)
		return nil, ErrInvalidStatus
	}

	appt, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", appointmentID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !domain.CanTransition(appt.Status, newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for appointment id=%d",
			appt.Status, newStatus, appointmentID)
		return nil, ErrTransitionNotAllowed
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, appointmentID, newStatus); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found during update", appointmentID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}
	appt.Status = newStatus

	// Mudança de estado descarta o grupo de cobrança memorizado
	s.groups.Invalidate(appointmentID)

	// Hook de finalização: fire-and-continue, inclusive quando o status já
	// era finalizado e foi salvo de novo
	if newStatus == domain.StatusFinalized || newStatus == domain.StatusFinalizedPaid {
		if hookErr := s.automation.AppointmentFinalized(ctx, appt.ID, string(appt.Type)); hookErr != nil {
			s.logger.Error("UpdateStatus: appointment_finalized hook failed for id=%d: %v", appt.ID, hookErr)
		}
	}

	s.logger.Info("UpdateStatus: successfully updated appointment id=%d to status=%s", appointmentID, newStatus)
	return models.FromDomainAppointment(appt), nil
}

// Delete exclui um agendamento.
// Ocorrência de assinatura leva junto os lançamentos em aberto do ciclo no
// caixa; lançamentos pagos ficam intocados.
func (s *Service) Delete(ctx context.Context, appointmentID int64) error {
	s.logger.Info("Delete: deleting appointment id=%d", appointmentID)

	appt, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.appointmentRepo.Delete(ctx, appointmentID); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found during delete", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if appt.SubscriptionID != nil {
		if _, cleanErr := s.ledgerCleaner.CleanupOpenEntries(ctx, *appt.SubscriptionID); cleanErr != nil {
			s.logger.Error("Delete: ledger cleanup failed for subscription=%d: %v", *appt.SubscriptionID, cleanErr)
		}
	}

	// O agendamento saiu do grupo de cobrança; descarta o grupo memorizado
	s.groups.Invalidate(appointmentID)

	// Hook de exclusão: fire-and-continue
	if hookErr := s.automation.AppointmentDeleted(ctx, appointmentID); hookErr != nil {
		s.logger.Error("Delete: appointment_deleted hook failed for id=%d: %v", appointmentID, hookErr)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%d", appointmentID)
	return nil
}
