package domain

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/petmimo/PTG-AgendaService/pkg/types"
)

// AppointmentType represents how an appointment was created
type AppointmentType string

const (
	TypeSimple       AppointmentType = "simples"
	TypeSubscription AppointmentType = "assinatura"
	TypePast         AppointmentType = "passado"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	StatusPending       AppointmentStatus = "pendente"
	StatusFinalized     AppointmentStatus = "finalizado"
	StatusFinalizedPaid AppointmentStatus = "finalizado_pago"
	StatusCancelled     AppointmentStatus = "cancelado"
)

// PaymentStatus is the payment state submitted with past-type appointments
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "pago"
	PaymentPending PaymentStatus = "pendente"
)

// ServiceSnapshot is a grooming service price captured at booking time.
// Later changes to the service catalog never alter stored appointments.
type ServiceSnapshot struct {
	ServiceID int64
	Name      string
	Price     decimal.Decimal
}

// TosaConfig describes the grooming (tosa) add-on of an appointment or cycle.
// OccurrenceIndex is 1-based and only meaningful inside a subscription cycle:
// exactly one occurrence per pet carries the tosa charge.
type TosaConfig struct {
	Enabled         bool
	Price           decimal.Decimal
	OccurrenceIndex int
}

// TaxiConfig describes the pet-taxi add-on. The taxi price only applies to
// simple and past appointments.
type TaxiConfig struct {
	Enabled bool
	Price   decimal.Decimal
}

// Extra is a free-form additional charge
type Extra struct {
	Description string
	Value       decimal.Decimal
}

// PastPayment holds the payment state submitted with a past appointment
type PastPayment struct {
	Status       PaymentStatus
	PendingValue decimal.Decimal
}

// Appointment represents one grooming visit for one or more pets of a client
type Appointment struct {
	ID       int64
	ClientID int64
	PetIDs   []int64 // ordered, non-empty; first element is the primary pet
	Date     time.Time
	Time     types.TimeString
	Notes    *string

	Type AppointmentType

	Tosa  TosaConfig
	Taxi  TaxiConfig
	Extra Extra

	Services   []ServiceSnapshot
	TotalValue decimal.Decimal

	Status AppointmentStatus

	// SubscriptionID is set only on occurrences generated for a subscription
	SubscriptionID *int64

	// PastPayment is set only on past-type appointments
	PastPayment *PastPayment

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal returns true if no further status transition is allowed
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusFinalizedPaid || a.Status == StatusCancelled
}

// IsFinalized returns true for both finalized states
func (a *Appointment) IsFinalized() bool {
	return a.Status == StatusFinalized || a.Status == StatusFinalizedPaid
}

// ServicesTotal returns the sum of the service price snapshots
func (a *Appointment) ServicesTotal() decimal.Decimal {
	total := decimal.Zero
	for _, s := range a.Services {
		total = total.Add(s.Price)
	}
	return total
}

// PetSignature returns the canonical signature of the pet set: ids sorted
// ascending and joined with "-". Two appointments booked together for the
// same pets share the same signature.
func (a *Appointment) PetSignature() string {
	return PetSignature(a.PetIDs)
}

// DateTime combines Date and Time into a single instant, defaulting a
// missing time to midnight
func (a *Appointment) DateTime() time.Time {
	hour, minute := 0, 0
	if !a.Time.IsZero() {
		if parsed, err := a.Time.Parse(); err == nil {
			hour, minute = parsed.Hour(), parsed.Minute()
		}
	}
	return time.Date(a.Date.Year(), a.Date.Month(), a.Date.Day(), hour, minute, 0, 0, a.Date.Location())
}

// PetSignature normaliza um conjunto de ids de pets em uma assinatura
// canônica ("3-7-12"), usada para detectar agendamentos feitos juntos
func PetSignature(petIDs []int64) string {
	ids := make([]int64, len(petIDs))
	copy(ids, petIDs)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, "-")
}

// AppointmentFilter filtra consultas de agendamentos no repositório
type AppointmentFilter struct {
	ClientID       *int64
	Date           *time.Time         // dia exato
	DateFrom       *time.Time         // início do período (inclusivo)
	DateTo         *time.Time         // fim do período (inclusivo)
	Time           *types.TimeString  // horário exato (para busca de irmãos de grupo)
	Status         *AppointmentStatus // status específico
	SubscriptionID *int64
	IncludeTerminal bool // incluir finalizado_pago e cancelado
}
