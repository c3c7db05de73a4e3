package get_charge_group

import (
	"github.com/shopspring/decimal"

	chargeGroup "github.com/petmimo/PTG-AgendaService/internal/usecase/charge_group"
)

// MemberResponse um agendamento participante do grupo
type MemberResponse struct {
	AppointmentID int64           `json:"appointmentId"`
	PetIDs        []int64         `json:"petIds"`
	TotalValue    decimal.Decimal `json:"totalValue"`
}

// ChargeGroupResponse HTTP response model.
// Só a âncora renderiza a ação de cobrança combinada.
type ChargeGroupResponse struct {
	AnchorID   int64            `json:"anchorId"`
	IsAnchor   bool             `json:"isAnchor"`
	Date       string           `json:"date"`
	Time       string           `json:"time"`
	Members    []MemberResponse `json:"members"`
	GroupTotal decimal.Decimal  `json:"groupTotal"`

	ClientID    int64    `json:"clientId"`
	ClientName  string   `json:"clientName,omitempty"`
	ClientPhone string   `json:"clientPhone,omitempty"`
	PetNames    []string `json:"petNames,omitempty"`
}

// FromUseCaseGroup converte o grupo resolvido em HTTP response
func FromUseCaseGroup(group *chargeGroup.Group) *ChargeGroupResponse {
	members := make([]MemberResponse, len(group.Members))
	for i, m := range group.Members {
		members[i] = MemberResponse{
			AppointmentID: m.AppointmentID,
			PetIDs:        m.PetIDs,
			TotalValue:    m.TotalValue,
		}
	}

	return &ChargeGroupResponse{
		AnchorID:    group.AnchorID,
		IsAnchor:    group.IsAnchor,
		Date:        group.Date,
		Time:        group.Time.String(),
		Members:     members,
		GroupTotal:  group.GroupTotal,
		ClientID:    group.ClientID,
		ClientName:  group.ClientName,
		ClientPhone: group.ClientPhone,
		PetNames:    group.PetNames,
	}
}
