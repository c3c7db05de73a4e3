package create_appointment

import (
	"context"
	"fmt"

	"github.com/petmimo/PTG-AgendaService/internal/domain"
	"github.com/petmimo/PTG-AgendaService/internal/infra/audit"
)

// UseCase cria agendamentos simples e passados.
// Assinaturas têm fluxo próprio em create_subscription.
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	automation      AutomationClient
	auditWriter     AuditWriter
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase cria um novo use case de criação de agendamento
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	automation AutomationClient,
	auditWriter AuditWriter,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		automation:      automation,
		auditWriter:     auditWriter,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute valida a submissão e cria o agendamento.
// userID é o usuário autenticado que está agendando (vai para a auditoria).
func (uc *UseCase) Execute(ctx context.Context, userID int64, sub *Submission) (*Response, error) {
	uc.logger.Info("CreateAppointment: user=%d, client=%s, type=%s, date=%s, time=%s",
		userID, sub.ClientID, sub.Type, sub.Date, sub.Time)

	now := uc.timeProvider.Now()

	// 1. Validação: rejeição devolve a lista de erros de campo e registra
	// o evento de auditoria com os valores ofensivos
	req, fieldErrors := validateSubmission(sub, now)
	if len(fieldErrors) > 0 {
		uc.logger.Warn("CreateAppointment: validation failed for user=%d: %d field error(s)", userID, len(fieldErrors))
		uc.appendRejectionAudit(ctx, userID, sub, fieldErrors)
		return nil, &domain.ValidationError{Fields: fieldErrors}
	}

	// 2. Snapshot dos serviços escolhidos: o preço capturado aqui nunca é
	// alterado por mudanças futuras no catálogo
	snapshots, err := uc.snapshotServices(ctx, req.ServiceIDs)
	if err != nil {
		return nil, err
	}

	// 3. Status inicial: simples nasce pendente; passado já nasce
	// finalizado conforme o status de pagamento submetido
	status := domain.StatusPending
	var pastPayment *domain.PastPayment
	if req.Type == domain.TypePast {
		status = domain.StatusForPastPayment(req.PaymentStatus)
		pastPayment = &domain.PastPayment{Status: req.PaymentStatus}
		if req.PaymentStatus == domain.PaymentPending {
			pastPayment.PendingValue = req.PendingValue
		}
	}

	// O total submetido pelo cliente é armazenado como veio (regra de
	// negócio documentada); fica no log para a retaguarda auditar
	uc.logger.Info("CreateAppointment: storing client-submitted total=%s for user=%d", req.Total.StringFixed(2), userID)

	appt := &domain.Appointment{
		ClientID:    req.ClientID,
		PetIDs:      req.PetIDs,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
		Type:        req.Type,
		Tosa:        req.Tosa,
		Taxi:        req.Taxi,
		Extra:       req.Extra,
		Services:    snapshots,
		TotalValue:  req.Total,
		Status:      status,
		PastPayment: pastPayment,
	}

	created, err := uc.appointmentRepo.Create(ctx, appt)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to create appointment for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
	}

	// 4. Hook de criação: fire-and-continue
	if err := uc.automation.AppointmentCreated(ctx, created.ID, string(created.Type)); err != nil {
		uc.logger.Error("CreateAppointment: appointment_created hook failed for id=%d: %v", created.ID, err)
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d (type=%s, status=%s)",
		created.ID, created.Type, created.Status)

	return &Response{
		ID:          created.ID,
		ClientID:    created.ClientID,
		PetIDs:      created.PetIDs,
		Date:        created.Date,
		Time:        created.Time,
		Type:        created.Type,
		Status:      created.Status,
		Services:    created.Services,
		TotalValue:  created.TotalValue,
		PastPayment: created.PastPayment,
		CreatedAt:   created.CreatedAt,
		UpdatedAt:   created.UpdatedAt,
	}, nil
}

// snapshotServices resolve os serviços submetidos e captura os preços.
// Id inexistente aqui é erro: o formulário só oferece serviços do catálogo.
func (uc *UseCase) snapshotServices(ctx context.Context, serviceIDs []int64) ([]domain.ServiceSnapshot, error) {
	if len(serviceIDs) == 0 {
		return nil, nil
	}

	services, err := uc.catalogRepo.GetServicesByIDs(ctx, serviceIDs)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to load services %v: %v", serviceIDs, err)
		return nil, fmt.Errorf("%w: failed to load services: %v", ErrInternal, err)
	}
	if len(services) != len(serviceIDs) {
		uc.logger.Warn("CreateAppointment: %d of %d submitted services not found", len(serviceIDs)-len(services), len(serviceIDs))
		return nil, ErrServiceNotFound
	}

	snapshots := make([]domain.ServiceSnapshot, len(services))
	for i, svc := range services {
		snapshots[i] = domain.ServiceSnapshot{
			ServiceID: svc.ID,
			Name:      svc.Name,
			Price:     svc.Price,
		}
	}
	return snapshots, nil
}

// appendRejectionAudit registra a submissão rejeitada com os valores
// ofensivos e o usuário que tentou. Falha de auditoria não bloqueia a
// resposta de validação.
func (uc *UseCase) appendRejectionAudit(ctx context.Context, userID int64, sub *Submission, fieldErrors []domain.FieldError) {
	fields := make([]map[string]string, len(fieldErrors))
	for i, fe := range fieldErrors {
		fields[i] = map[string]string{"field": fe.Field, "message": fe.Message}
	}

	payload := audit.Payload{
		"fields": fields,
		"submission": map[string]interface{}{
			"client_id": sub.ClientID,
			"pet_ids":   sub.PetIDs,
			"date":      sub.Date,
			"time":      sub.Time,
			"type":      sub.Type,
		},
	}

	if err := uc.auditWriter.Append(ctx, audit.EventValidationRejected, userID, payload); err != nil {
		uc.logger.Error("CreateAppointment: failed to append audit event for user=%d: %v", userID, err)
	}
}
