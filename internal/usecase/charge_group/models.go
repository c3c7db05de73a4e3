package charge_group

import (
	"github.com/shopspring/decimal"

	"github.com/petmimo/PTG-AgendaService/pkg/types"
)

// Member é um agendamento participante do grupo de cobrança
type Member struct {
	AppointmentID int64
	PetIDs        []int64
	TotalValue    decimal.Decimal
}

// Group é o grupo de cobrança resolvido para um agendamento.
// Só a âncora (menor id do grupo) renderiza a ação de cobrança combinada;
// os demais membros exibem apenas a cobrança individual.
type Group struct {
	AnchorID   int64
	IsAnchor   bool
	Signature  string
	Date       string
	Time       types.TimeString
	Members    []Member
	GroupTotal decimal.Decimal

	// Dados de contato para o compositor de mensagens externo
	ClientID    int64
	ClientName  string
	ClientPhone string
	PetNames    []string
}
