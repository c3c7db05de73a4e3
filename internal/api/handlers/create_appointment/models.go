package create_appointment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/petmimo/PTG-AgendaService/internal/domain"
	createAppointment "github.com/petmimo/PTG-AgendaService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model.
// Os campos chegam como string, espelhando o formulário; a validação fica
// toda no use case.
type CreateAppointmentRequest struct {
	ClientID string   `json:"clientId"`
	PetIDs   []string `json:"petIds"`
	Date     string   `json:"date"` // "2026-03-15"
	Time     string   `json:"time"` // "14:30"
	Notes    string   `json:"notes,omitempty"`
	Type     string   `json:"type"` // simples | passado

	TosaEnabled string `json:"tosaEnabled,omitempty"`
	TosaPrice   string `json:"tosaPrice,omitempty"`

	TaxiEnabled string `json:"taxiEnabled,omitempty"`
	TaxiPrice   string `json:"taxiPrice,omitempty"`

	ExtraDescription string `json:"extraDescription,omitempty"`
	ExtraValue       string `json:"extraValue,omitempty"`

	ServiceIDs []string `json:"serviceIds,omitempty"`

	AppointmentTotal string `json:"appointmentTotal,omitempty"`

	PaymentStatus string `json:"paymentStatus,omitempty"` // pago | pendente
	PendingValue  string `json:"pendingValue,omitempty"`
}

// ServiceSnapshotResponse serviço com preço capturado
type ServiceSnapshotResponse struct {
	ServiceID int64           `json:"serviceId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
}

// PastPaymentResponse situação de pagamento de um agendamento passado
type PastPaymentResponse struct {
	Status       string          `json:"status"`
	PendingValue decimal.Decimal `json:"pendingValue"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID         int64                     `json:"id"`
	ClientID   int64                     `json:"clientId"`
	PetIDs     []int64                   `json:"petIds"`
	Date       string                    `json:"date"`
	Time       string                    `json:"time"`
	Type       string                    `json:"type"`
	Status     string                    `json:"status"`
	Services   []ServiceSnapshotResponse `json:"services"`
	TotalValue decimal.Decimal           `json:"totalValue"`

	PastPayment *PastPaymentResponse `json:"pastPayment,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToSubmission converte o HTTP request em submissão do use case
func (r *CreateAppointmentRequest) ToSubmission() *createAppointment.Submission {
	return &createAppointment.Submission{
		ClientID:         r.ClientID,
		PetIDs:           r.PetIDs,
		Date:             r.Date,
		Time:             r.Time,
		Notes:            r.Notes,
		Type:             r.Type,
		TosaEnabled:      r.TosaEnabled,
		TosaPrice:        r.TosaPrice,
		TaxiEnabled:      r.TaxiEnabled,
		TaxiPrice:        r.TaxiPrice,
		ExtraDescription: r.ExtraDescription,
		ExtraValue:       r.ExtraValue,
		ServiceIDs:       r.ServiceIDs,
		AppointmentTotal: r.AppointmentTotal,
		PaymentStatus:    r.PaymentStatus,
		PendingValue:     r.PendingValue,
	}
}

// FromUseCaseResponse converte a resposta do use case em HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	services := make([]ServiceSnapshotResponse, len(resp.Services))
	for i, s := range resp.Services {
		services[i] = ServiceSnapshotResponse{
			ServiceID: s.ServiceID,
			Name:      s.Name,
			Price:     s.Price,
		}
	}

	out := &AppointmentResponse{
		ID:         resp.ID,
		ClientID:   resp.ClientID,
		PetIDs:     resp.PetIDs,
		Date:       resp.Date.Format(domain.DateFormat),
		Time:       resp.Time.String(),
		Type:       string(resp.Type),
		Status:     string(resp.Status),
		Services:   services,
		TotalValue: resp.TotalValue,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}

	if resp.PastPayment != nil {
		out.PastPayment = &PastPaymentResponse{
			Status:       string(resp.PastPayment.Status),
			PendingValue: resp.PastPayment.PendingValue,
		}
	}

	return out
}
