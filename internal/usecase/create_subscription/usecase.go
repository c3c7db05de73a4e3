package create_subscription

import (
	"context"
	"fmt"

	"github.com/petmimo/PTG-AgendaService/internal/domain"
	"github.com/petmimo/PTG-AgendaService/internal/infra/audit"
)

// UseCase cria assinaturas de banho e tosa e gera as ocorrências do ciclo.
// A assinatura e o lançamento no caixa são atômicos; as ocorrências são
// criadas depois, individualmente, e uma falha isolada não derruba o ciclo.
type UseCase struct {
	subscriptionRepo SubscriptionRepository
	appointmentRepo  AppointmentRepository
	catalogRepo      CatalogRepository
	ledger           LedgerReconciler
	automation       AutomationClient
	auditWriter      AuditWriter
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase cria um novo use case de criação de assinatura
func NewUseCase(
	subscriptionRepo SubscriptionRepository,
	appointmentRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	ledger LedgerReconciler,
	automation AutomationClient,
	auditWriter AuditWriter,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		subscriptionRepo: subscriptionRepo,
		appointmentRepo:  appointmentRepo,
		catalogRepo:      catalogRepo,
		ledger:           ledger,
		automation:       automation,
		auditWriter:      auditWriter,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute valida a submissão, cria a assinatura com o lançamento no caixa e
// gera as ocorrências do ciclo para cada pet.
func (uc *UseCase) Execute(ctx context.Context, userID int64, sub *Submission) (*Response, error) {
	uc.logger.Info("CreateSubscription: user=%d, client=%s, frequency=%s, start=%s %s",
		userID, sub.ClientID, sub.Frequency, sub.StartDate, sub.StartTime)

	now := uc.timeProvider.Now()

	// 1. Validação com o mesmo contrato do agendamento avulso
	req, fieldErrors := validateSubmission(sub, now)
	if len(fieldErrors) > 0 {
		uc.logger.Warn("CreateSubscription: validation failed for user=%d: %d field error(s)", userID, len(fieldErrors))
		uc.appendRejectionAudit(ctx, userID, sub, fieldErrors)
		return nil, &domain.ValidationError{Fields: fieldErrors}
	}

	// 2. Serviços padrão do ciclo resolvidos por nome no catálogo.
	// Um ausente vira warning e o ciclo segue com o restante; os dois
	// ausentes invalidam a assinatura inteira.
	snapshots, err := uc.resolveDefaultServices(ctx)
	if err != nil {
		return nil, err
	}

	pricing := computeCyclePricing(req, snapshots)
	uc.logger.Info("CreateSubscription: pricing base=%s perPet=%s total=%s (pets=%d)",
		pricing.BaseCycle.StringFixed(2), pricing.PerPet.StringFixed(2), pricing.TotalPackage.StringFixed(2), len(req.PetIDs))

	subscription := &domain.Subscription{
		ClientID:      req.ClientID,
		PetIDs:        req.PetIDs,
		Frequency:     req.Frequency,
		StartDate:     req.StartDate,
		StartTime:     req.StartTime,
		BaseValue:     pricing.BaseCycle,
		TotalValue:    pricing.TotalPackage,
		Extra:         req.Extra,
		Tosa:          req.Tosa,
		PaymentStatus: string(domain.PaymentPending),
	}

	// 3. Assinatura e lançamento em aberto no caixa persistem juntos:
	// nunca existe assinatura sem a cobrança correspondente
	var created *domain.Subscription
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var txErr error
		created, txErr = uc.subscriptionRepo.Create(txCtx, subscription)
		if txErr != nil {
			return fmt.Errorf("%w: %v", ErrSubscriptionPersist, txErr)
		}
		if _, txErr = uc.ledger.ReconcileSubscriptionEntry(txCtx, created); txErr != nil {
			return fmt.Errorf("%w: failed to reconcile ledger entry: %v", ErrInternal, txErr)
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("CreateSubscription: failed to persist subscription for client=%d: %v", req.ClientID, err)
		return nil, err
	}

	// 4. Ocorrências fora da transação: cada uma persiste sozinha e uma
	// falha isolada é pulada com warning, sem desfazer o ciclo
	appointmentIDs, skipped := uc.createOccurrences(ctx, created, req, snapshots)

	uc.logger.Info("CreateSubscription: created subscription id=%d with %d occurrence(s), %d skipped",
		created.ID, len(appointmentIDs), skipped)

	return &Response{
		SubscriptionID: created.ID,
		ClientID:       created.ClientID,
		PetIDs:         created.PetIDs,
		Frequency:      created.Frequency,
		StartDate:      created.StartDate,
		StartTime:      created.StartTime,
		BaseValue:      pricing.BaseCycle,
		PerPetValue:    pricing.PerPet,
		TotalValue:     pricing.TotalPackage,
		AppointmentIDs: appointmentIDs,
		SkippedInserts: skipped,
		CreatedAt:      created.CreatedAt,
	}, nil
}

// resolveDefaultServices busca os serviços padrão do ciclo pelo nome e
// captura os preços vigentes como snapshot
func (uc *UseCase) resolveDefaultServices(ctx context.Context) ([]domain.ServiceSnapshot, error) {
	names := []string{domain.DefaultServiceBath, domain.DefaultServiceHydration}

	var snapshots []domain.ServiceSnapshot
	for _, name := range names {
		svc, err := uc.catalogRepo.GetServiceByName(ctx, name)
		if err != nil {
			uc.logger.Warn("CreateSubscription: default service %q not resolved, cycle continues without it: %v", name, err)
			continue
		}
		snapshots = append(snapshots, domain.ServiceSnapshot{
			ServiceID: svc.ID,
			Name:      svc.Name,
			Price:     svc.Price,
		})
	}

	if len(snapshots) == 0 {
		uc.logger.Error("CreateSubscription: no default service resolved, aborting")
		return nil, ErrNoServices
	}
	return snapshots, nil
}

// createOccurrences gera as ocorrências do ciclo: para cada pet, uma por
// ocorrência da frequência, todas no mesmo horário e nas mesmas datas.
// A tosa entra apenas na ocorrência designada de cada pet.
func (uc *UseCase) createOccurrences(
	ctx context.Context,
	created *domain.Subscription,
	req *ValidatedRequest,
	snapshots []domain.ServiceSnapshot,
) (appointmentIDs []int64, skipped int) {
	interval := req.Frequency.IntervalDays()
	count := req.Frequency.OccurrenceCount()

	for _, petID := range req.PetIDs {
		for i := 1; i <= count; i++ {
			date := req.StartDate.AddDate(0, 0, interval*(i-1))
			isTosa := req.Tosa.Enabled && i == req.Tosa.OccurrenceIndex

			tosa := domain.TosaConfig{}
			if isTosa {
				tosa = domain.TosaConfig{
					Enabled:         true,
					Price:           req.Tosa.Price,
					OccurrenceIndex: req.Tosa.OccurrenceIndex,
				}
			}

			appt := &domain.Appointment{
				ClientID:       created.ClientID,
				PetIDs:         []int64{petID},
				Date:           date,
				Time:           req.StartTime,
				Notes:          req.Notes,
				Type:           domain.TypeSubscription,
				Tosa:           tosa,
				Services:       snapshots,
				TotalValue:     occurrenceTotal(snapshots, req.Tosa.Price, isTosa),
				Status:         domain.StatusPending,
				SubscriptionID: &created.ID,
			}

			persisted, err := uc.appointmentRepo.Create(ctx, appt)
			if err != nil {
				uc.logger.Warn("CreateSubscription: occurrence %d for pet=%d on %s skipped: %v",
					i, petID, date.Format(domain.DateFormat), err)
				skipped++
				continue
			}
			appointmentIDs = append(appointmentIDs, persisted.ID)

			if hookErr := uc.automation.AppointmentCreated(ctx, persisted.ID, string(persisted.Type)); hookErr != nil {
				uc.logger.Error("CreateSubscription: appointment_created hook failed for id=%d: %v", persisted.ID, hookErr)
			}
		}
	}
	return appointmentIDs, skipped
}

// appendRejectionAudit registra a submissão rejeitada na auditoria.
// Falha de auditoria não bloqueia a resposta de validação.
func (uc *UseCase) appendRejectionAudit(ctx context.Context, userID int64, sub *Submission, fieldErrors []domain.FieldError) {
	fields := make([]map[string]string, len(fieldErrors))
	for i, fe := range fieldErrors {
		fields[i] = map[string]string{"field": fe.Field, "message": fe.Message}
	}

	payload := audit.Payload{
		"fields": fields,
		"submission": map[string]interface{}{
			"client_id":  sub.ClientID,
			"pet_ids":    sub.PetIDs,
			"start_date": sub.StartDate,
			"start_time": sub.StartTime,
			"frequency":  sub.Frequency,
		},
	}

	if err := uc.auditWriter.Append(ctx, audit.EventValidationRejected, userID, payload); err != nil {
		uc.logger.Error("CreateSubscription: failed to append audit event for user=%d: %v", userID, err)
	}
}
