package create_appointment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/petmimo/PTG-AgendaService/internal/domain"
	"github.com/petmimo/PTG-AgendaService/pkg/types"
)

// Submission é a submissão crua do formulário de agendamento.
// Todos os campos chegam como string; a validação normaliza e tipa.
type Submission struct {
	ClientID string   // obrigatório, inteiro positivo
	PetIDs   []string // obrigatório, inteiros positivos
	Date     string   // obrigatório, YYYY-MM-DD
	Time     string   // obrigatório, HH:MM
	Notes    string
	Type     string // simples | passado

	TosaEnabled string // "1"/"true"/"sim" habilita
	TosaPrice   string // decimal, aceita vírgula

	TaxiEnabled string
	TaxiPrice   string

	ExtraDescription string
	ExtraValue       string

	ServiceIDs []string // serviços escolhidos no formulário

	// AppointmentTotal é o total calculado no cliente; o motor confia e
	// armazena o valor submetido (comportamento de negócio documentado)
	AppointmentTotal string

	// PaymentStatus e PendingValue só valem para type = passado
	PaymentStatus string // pago | pendente
	PendingValue  string
}

// ValidatedRequest é a submissão normalizada e tipada
type ValidatedRequest struct {
	ClientID int64
	PetIDs   []int64 // deduplicado; o primeiro é o pet principal
	Date     time.Time
	Time     types.TimeString
	Notes    *string
	Type     domain.AppointmentType

	Tosa  domain.TosaConfig
	Taxi  domain.TaxiConfig
	Extra domain.Extra

	ServiceIDs []int64
	Total      decimal.Decimal

	PaymentStatus domain.PaymentStatus
	PendingValue  decimal.Decimal
}

// Response é o agendamento criado
type Response struct {
	ID         int64
	ClientID   int64
	PetIDs     []int64
	Date       time.Time
	Time       types.TimeString
	Type       domain.AppointmentType
	Status     domain.AppointmentStatus
	Services   []domain.ServiceSnapshot
	TotalValue decimal.Decimal

	PastPayment *domain.PastPayment

	CreatedAt time.Time
	UpdatedAt time.Time
}
