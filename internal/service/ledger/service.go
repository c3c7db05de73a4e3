package ledger

import (
	"context"
	"fmt"

	"github.com/petmimo/PTG-AgendaService/internal/domain"
)

// Service reconcilia os lançamentos de assinatura no caixa.
// A invariante é uma por (subscription_id, date): o repositório faz upsert
// atômico sobre a constraint única, então repetir a reconciliação nunca
// duplica a cobrança.
type Service struct {
	transactionRepo TransactionRepository
	logger          Logger
}

// NewService cria um novo serviço de caixa
func NewService(transactionRepo TransactionRepository, logger Logger) *Service {
	return &Service{
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// ReconcileSubscriptionEntry garante o lançamento em aberto de um ciclo na
// data de início. O valor é o pacote completo da assinatura, todos os pets.
func (s *Service) ReconcileSubscriptionEntry(ctx context.Context, sub *domain.Subscription) (*domain.Transaction, error) {
	s.logger.Info("ReconcileSubscriptionEntry: subscription=%d, date=%s, value=%s",
		sub.ID, sub.StartDate.Format(domain.DateFormat), sub.TotalValue.StringFixed(2))

	entry := &domain.Transaction{
		ClientID:       &sub.ClientID,
		SubscriptionID: &sub.ID,
		Date:           sub.StartDate,
		Value:          sub.TotalValue,
		Category:       domain.LedgerCategory,
		Type:           domain.TransactionRevenue,
		Status:         domain.TransactionOpen,
		Description:    fmt.Sprintf("Assinatura %s, ciclo iniciando em %s", sub.Frequency, sub.StartDate.Format(domain.DateFormat)),
	}

	persisted, err := s.transactionRepo.UpsertSubscriptionEntry(ctx, entry)
	if err != nil {
		s.logger.Error("ReconcileSubscriptionEntry: upsert failed for subscription=%d: %v", sub.ID, err)
		return nil, fmt.Errorf("%w: ReconcileSubscriptionEntry - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ReconcileSubscriptionEntry: entry id=%d reconciled for subscription=%d", persisted.ID, sub.ID)
	return persisted, nil
}

// CleanupOpenEntries remove os lançamentos em aberto de uma assinatura.
// Chamado quando uma ocorrência do ciclo é excluída; lançamentos já pagos
// nunca são tocados.
func (s *Service) CleanupOpenEntries(ctx context.Context, subscriptionID int64) (int64, error) {
	s.logger.Info("CleanupOpenEntries: subscription=%d", subscriptionID)

	removed, err := s.transactionRepo.DeleteOpenBySubscription(ctx, subscriptionID)
	if err != nil {
		s.logger.Error("CleanupOpenEntries: delete failed for subscription=%d: %v", subscriptionID, err)
		return 0, fmt.Errorf("%w: CleanupOpenEntries - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CleanupOpenEntries: removed %d open entr(ies) for subscription=%d", removed, subscriptionID)
	return removed, nil
}
