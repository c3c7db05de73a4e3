package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/petmimo/PTG-AgendaService/pkg/types"
)

// Frequency represents the recurrence cadence of a subscription
type Frequency string

const (
	FrequencyWeekly   Frequency = "semanal"
	FrequencyBiweekly Frequency = "quinzenal"
)

// IntervalDays returns the number of days between two occurrences
func (f Frequency) IntervalDays() int {
	if f == FrequencyBiweekly {
		return BiweeklyIntervalDays
	}
	return WeeklyIntervalDays
}

// OccurrenceCount returns how many occurrences one cycle generates per pet
func (f Frequency) OccurrenceCount() int {
	if f == FrequencyBiweekly {
		return BiweeklyOccurrences
	}
	return WeeklyOccurrences
}

// IsValid reports whether the frequency is one of the known values
func (f Frequency) IsValid() bool {
	return f == FrequencyWeekly || f == FrequencyBiweekly
}

// Subscription is a recurring grooming plan. It owns the occurrences
// generated at creation time; editing one occurrence never cascades to its
// siblings and the cycle is never regenerated.
type Subscription struct {
	ID        int64
	ClientID  int64
	PetIDs    []int64
	Frequency Frequency
	StartDate time.Time
	StartTime types.TimeString

	// BaseValue is the per-pet cycle base (override or computed service sum)
	BaseValue decimal.Decimal
	// TotalValue is the full cycle charge across all pets
	TotalValue decimal.Decimal

	Extra Extra
	Tosa  TosaConfig

	PaymentStatus string

	CreatedAt time.Time
	UpdatedAt time.Time
}
