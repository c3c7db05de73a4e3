package create_subscription

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/petmimo/PTG-AgendaService/internal/domain"
	createSubscription "github.com/petmimo/PTG-AgendaService/internal/usecase/create_subscription"
)

// CreateSubscriptionRequest HTTP request model.
// Os campos chegam como string, espelhando o formulário.
type CreateSubscriptionRequest struct {
	ClientID  string   `json:"clientId"`
	PetIDs    []string `json:"petIds"`
	StartDate string   `json:"startDate"` // "2026-03-15"
	StartTime string   `json:"startTime"` // "09:00"
	Frequency string   `json:"frequency"` // semanal | quinzenal
	Notes     string   `json:"notes,omitempty"`

	TosaEnabled    string `json:"tosaEnabled,omitempty"`
	TosaPrice      string `json:"tosaPrice,omitempty"`
	TosaOccurrence string `json:"tosaOccurrence,omitempty"`

	ExtraDescription string `json:"extraDescription,omitempty"`
	ExtraValue       string `json:"extraValue,omitempty"`

	BaseValue  string `json:"baseValue,omitempty"`
	TotalValue string `json:"totalValue,omitempty"`
}

// SubscriptionResponse HTTP response model
type SubscriptionResponse struct {
	SubscriptionID int64   `json:"subscriptionId"`
	ClientID       int64   `json:"clientId"`
	PetIDs         []int64 `json:"petIds"`
	Frequency      string  `json:"frequency"`
	StartDate      string  `json:"startDate"`
	StartTime      string  `json:"startTime"`

	BaseValue   decimal.Decimal `json:"baseValue"`
	PerPetValue decimal.Decimal `json:"perPetValue"`
	TotalValue  decimal.Decimal `json:"totalValue"`

	AppointmentIDs []int64 `json:"appointmentIds"`
	SkippedInserts int     `json:"skippedInserts,omitempty"`

	CreatedAt string `json:"createdAt"`
}

// ToSubmission converte o HTTP request em submissão do use case
func (r *CreateSubscriptionRequest) ToSubmission() *createSubscription.Submission {
	return &createSubscription.Submission{
		ClientID:         r.ClientID,
		PetIDs:           r.PetIDs,
		StartDate:        r.StartDate,
		StartTime:        r.StartTime,
		Frequency:        r.Frequency,
		Notes:            r.Notes,
		TosaEnabled:      r.TosaEnabled,
		TosaPrice:        r.TosaPrice,
		TosaOccurrence:   r.TosaOccurrence,
		ExtraDescription: r.ExtraDescription,
		ExtraValue:       r.ExtraValue,
		BaseValue:        r.BaseValue,
		TotalValue:       r.TotalValue,
	}
}

// FromUseCaseResponse converte a resposta do use case em HTTP response
func FromUseCaseResponse(resp *createSubscription.Response) *SubscriptionResponse {
	return &SubscriptionResponse{
		SubscriptionID: resp.SubscriptionID,
		ClientID:       resp.ClientID,
		PetIDs:         resp.PetIDs,
		Frequency:      string(resp.Frequency),
		StartDate:      resp.StartDate.Format(domain.DateFormat),
		StartTime:      resp.StartTime.String(),
		BaseValue:      resp.BaseValue,
		PerPetValue:    resp.PerPetValue,
		TotalValue:     resp.TotalValue,
		AppointmentIDs: resp.AppointmentIDs,
		SkippedInserts: resp.SkippedInserts,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
	}
}
