package create_subscription

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/petmimo/PTG-AgendaService/internal/domain"
	"github.com/petmimo/PTG-AgendaService/pkg/types"
)

// Submission é a submissão crua do formulário de assinatura.
// Todos os campos chegam como string; a validação normaliza e tipa.
type Submission struct {
	ClientID  string
	PetIDs    []string
	StartDate string // YYYY-MM-DD, hoje ou futuro
	StartTime string // HH:MM
	Frequency string // semanal | quinzenal
	Notes     string

	TosaEnabled    string
	TosaPrice      string
	TosaOccurrence string // índice 1-based da ocorrência que leva a tosa

	ExtraDescription string
	ExtraValue       string

	// BaseValue substitui a soma dos serviços do ciclo quando > 0
	BaseValue string
	// TotalValue é o override total do pacote; quando > 0 vence tudo
	TotalValue string
}

// ValidatedRequest é a submissão normalizada e tipada
type ValidatedRequest struct {
	ClientID  int64
	PetIDs    []int64
	StartDate time.Time
	StartTime types.TimeString
	Frequency domain.Frequency
	Notes     *string

	Tosa  domain.TosaConfig
	Extra domain.Extra

	BaseOverride  decimal.Decimal
	TotalOverride decimal.Decimal
}

// Response resume o ciclo criado
type Response struct {
	SubscriptionID int64
	ClientID       int64
	PetIDs         []int64
	Frequency      domain.Frequency
	StartDate      time.Time
	StartTime      types.TimeString

	BaseValue   decimal.Decimal // base do ciclo por pet
	PerPetValue decimal.Decimal // pacote por pet (base + tosa + extra)
	TotalValue  decimal.Decimal // pacote completo

	AppointmentIDs []int64 // ocorrências efetivamente criadas
	SkippedInserts int     // ocorrências puladas por falha de insert

	CreatedAt time.Time
}
