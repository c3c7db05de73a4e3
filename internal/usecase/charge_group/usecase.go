package charge_group

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/petmimo/PTG-AgendaService/internal/domain"
	appointmentRepo "github.com/petmimo/PTG-AgendaService/internal/infra/storage/appointment"
	catalogRepo "github.com/petmimo/PTG-AgendaService/internal/infra/storage/catalog"
	"github.com/petmimo/PTG-AgendaService/pkg/cache"
)

// UseCase resolve o grupo de cobrança de um agendamento: os irmãos criados
// juntos para os mesmos pets do mesmo cliente, no mesmo dia e horário.
// O resultado alimenta a ação de cobrança combinada e o compositor de
// mensagens; nada aqui grava no banco.
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	groups          *cache.TTL[*Group]
	logger          Logger
}

// NewUseCase cria um novo resolvedor de grupos de cobrança.
// cacheTTL limita a janela em que o mesmo agendamento devolve o grupo
// memorizado sem reconsultar o banco.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	cacheTTL time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		groups:          cache.New[*Group](cacheTTL),
		logger:          logger,
	}
}

// Resolve devolve o grupo de cobrança do agendamento informado.
// Menos de dois membros com a mesma assinatura de pets não é grupo.
func (uc *UseCase) Resolve(ctx context.Context, appointmentID int64) (*Group, error) {
	cacheKey := strconv.FormatInt(appointmentID, 10)
	if group, ok := uc.groups.Get(cacheKey); ok {
		uc.logger.Info("ChargeGroup: cache hit for appointment id=%d", appointmentID)
		return group, nil
	}

	appt, err := uc.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("ChargeGroup: appointment id=%d not found", appointmentID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("ChargeGroup: repository error for appointment id=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: failed to load appointment: %v", ErrInternal, err)
	}

	signature := appt.PetSignature()

	// Irmãos candidatos: mesmo cliente, mesma data e mesmo horário.
	// Status encerrado não desfaz o vínculo do grupo, então entra também.
	siblings, err := uc.appointmentRepo.GetWithFilter(ctx, domain.AppointmentFilter{
		ClientID:        &appt.ClientID,
		Date:            &appt.Date,
		Time:            &appt.Time,
		IncludeTerminal: true,
	})
	if err != nil {
		uc.logger.Error("ChargeGroup: sibling query failed for appointment id=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: failed to load siblings: %v", ErrInternal, err)
	}

	members, groupTotal := collectMembers(siblings, signature)
	if len(members) < 2 {
		uc.logger.Info("ChargeGroup: appointment id=%d has no group (matching members=%d)", appointmentID, len(members))
		return nil, ErrNoGroup
	}

	group := &Group{
		AnchorID:   members[0].AppointmentID,
		IsAnchor:   members[0].AppointmentID == appointmentID,
		Signature:  signature,
		Date:       appt.Date.Format(domain.DateFormat),
		Time:       appt.Time,
		Members:    members,
		GroupTotal: groupTotal,
		ClientID:   appt.ClientID,
	}

	// Enriquecimento de contato para o compositor de mensagens.
	// Falha aqui não invalida o grupo, só o deixa sem os dados de contato.
	uc.enrichContact(ctx, group, appt.PetIDs)

	uc.groups.Set(cacheKey, group)

	uc.logger.Info("ChargeGroup: appointment id=%d resolved group anchor=%d, members=%d, total=%s",
		appointmentID, group.AnchorID, len(group.Members), group.GroupTotal.StringFixed(2))
	return group, nil
}

// Invalidate descarta o grupo memorizado de um agendamento. Chamado quando o
// agendamento muda de status ou é excluído, para não servir um total de grupo
// velho dentro da janela do cache. Se havia grupo memorizado, as entradas dos
// demais membros caem junto.
func (uc *UseCase) Invalidate(appointmentID int64) {
	key := strconv.FormatInt(appointmentID, 10)
	if group, ok := uc.groups.Get(key); ok {
		for _, member := range group.Members {
			uc.groups.Delete(strconv.FormatInt(member.AppointmentID, 10))
		}
	}
	uc.groups.Delete(key)
	uc.logger.Info("ChargeGroup: cache invalidated for appointment id=%d", appointmentID)
}

// collectMembers filtra os irmãos pela assinatura canônica dos pets e soma
// os totais. A âncora é o membro de menor id, então a lista sai ordenada.
func collectMembers(siblings []*domain.Appointment, signature string) ([]Member, decimal.Decimal) {
	var members []Member
	total := decimal.Zero

	for _, sibling := range siblings {
		if sibling.PetSignature() != signature {
			continue
		}
		members = append(members, Member{
			AppointmentID: sibling.ID,
			PetIDs:        sibling.PetIDs,
			TotalValue:    sibling.TotalValue,
		})
		total = total.Add(sibling.TotalValue)
	}

	sort.Slice(members, func(i, j int) bool { return members[i].AppointmentID < members[j].AppointmentID })
	return members, total
}

// enrichContact preenche telefone do cliente e nomes dos pets
func (uc *UseCase) enrichContact(ctx context.Context, group *Group, petIDs []int64) {
	client, err := uc.catalogRepo.GetClientByID(ctx, group.ClientID)
	if err != nil {
		if !errors.Is(err, catalogRepo.ErrClientNotFound) {
			uc.logger.Warn("ChargeGroup: failed to load client=%d: %v", group.ClientID, err)
		}
	} else {
		group.ClientName = client.Name
		group.ClientPhone = client.Phone
	}

	pets, err := uc.catalogRepo.GetPetsByIDs(ctx, petIDs)
	if err != nil {
		uc.logger.Warn("ChargeGroup: failed to load pets %v: %v", petIDs, err)
		return
	}
	names := make([]string, len(pets))
	for i, pet := range pets {
		names[i] = pet.Name
	}
	group.PetNames = names
}
