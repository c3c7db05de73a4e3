package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/petmimo/PTG-AgendaService/internal/domain"
)

var (
	// ErrInvalidStatus é retornado quando o status submetido não existe
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request models

// UpdateStatusRequest pedido de mudança de status de um agendamento
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

// ListAppointmentsRequest pedido de listagem com filtros opcionais
type ListAppointmentsRequest struct {
	ClientID        *int64     `json:"clientId,omitempty"`
	Date            *time.Time `json:"date,omitempty"`
	DateFrom        *time.Time `json:"dateFrom,omitempty"`
	DateTo          *time.Time `json:"dateTo,omitempty"`
	Status          *string    `json:"status,omitempty"`
	SubscriptionID  *int64     `json:"subscriptionId,omitempty"`
	IncludeTerminal bool       `json:"includeTerminal,omitempty"`
}

// ToDomainFilter converte o request em filtro de domínio
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentFilter, error) {
	filter := domain.AppointmentFilter{
		ClientID:        r.ClientID,
		Date:            r.Date,
		DateFrom:        r.DateFrom,
		DateTo:          r.DateTo,
		SubscriptionID:  r.SubscriptionID,
		IncludeTerminal: r.IncludeTerminal,
	}

	if r.Status != nil {
		status := domain.AppointmentStatus(*r.Status)
		if !domain.IsValidStatus(status) {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response models

// ServiceSnapshotResponse serviço com o preço capturado no agendamento
type ServiceSnapshotResponse struct {
	ServiceID int64           `json:"serviceId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
}

// TosaResponse dados da tosa do agendamento
type TosaResponse struct {
	Enabled         bool            `json:"enabled"`
	Price           decimal.Decimal `json:"price"`
	OccurrenceIndex int             `json:"occurrenceIndex,omitempty"`
}

// TaxiResponse dados do taxi pet
type TaxiResponse struct {
	Enabled bool            `json:"enabled"`
	Price   decimal.Decimal `json:"price"`
}

// ExtraResponse cobrança adicional livre
type ExtraResponse struct {
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
}

// PastPaymentResponse situação de pagamento de um agendamento passado
type PastPaymentResponse struct {
	Status       string          `json:"status"`
	PendingValue decimal.Decimal `json:"pendingValue"`
}

// AppointmentResponse resposta com os dados de um agendamento
type AppointmentResponse struct {
	ID       int64   `json:"id"`
	ClientID int64   `json:"clientId"`
	PetIDs   []int64 `json:"petIds"`
	Date     string  `json:"date"` // "2026-03-15"
	Time     string  `json:"time"` // "14:30"
	Type     string  `json:"type"`
	Status   string  `json:"status"`

	Services   []ServiceSnapshotResponse `json:"services"`
	TotalValue decimal.Decimal           `json:"totalValue"`

	Tosa  TosaResponse  `json:"tosa"`
	Taxi  TaxiResponse  `json:"taxi"`
	Extra ExtraResponse `json:"extra"`

	Notes          *string              `json:"notes,omitempty"`
	SubscriptionID *int64               `json:"subscriptionId,omitempty"`
	PastPayment    *PastPaymentResponse `json:"pastPayment,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse resposta com lista de agendamentos
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Conversões

// FromDomainAppointment converte o modelo de domínio em DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	services := make([]ServiceSnapshotResponse, len(a.Services))
	for i, s := range a.Services {
		services[i] = ServiceSnapshotResponse{
			ServiceID: s.ServiceID,
			Name:      s.Name,
			Price:     s.Price,
		}
	}

	resp := &AppointmentResponse{
		ID:       a.ID,
		ClientID: a.ClientID,
		PetIDs:   a.PetIDs,
		Date:     a.Date.Format(domain.DateFormat),
		Time:     a.Time.String(),
		Type:     string(a.Type),
		Status:   string(a.Status),

		Services:   services,
		TotalValue: a.TotalValue,

		Tosa: TosaResponse{
			Enabled:         a.Tosa.Enabled,
			Price:           a.Tosa.Price,
			OccurrenceIndex: a.Tosa.OccurrenceIndex,
		},
		Taxi: TaxiResponse{
			Enabled: a.Taxi.Enabled,
			Price:   a.Taxi.Price,
		},
		Extra: ExtraResponse{
			Description: a.Extra.Description,
			Value:       a.Extra.Value,
		},

		Notes:          a.Notes,
		SubscriptionID: a.SubscriptionID,

		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}

	if a.PastPayment != nil {
		resp.PastPayment = &PastPaymentResponse{
			Status:       string(a.PastPayment.Status),
			PendingValue: a.PastPayment.PendingValue,
		}
	}

	return resp
}

// FromDomainAppointmentList converte a lista de modelos de domínio em DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	if appointments == nil {
		return &AppointmentListResponse{
			Appointments: []AppointmentResponse{},
		}
	}

	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, len(appointments)),
	}

	for i, appt := range appointments {
		if apptResp := FromDomainAppointment(appt); apptResp != nil {
			resp.Appointments[i] = *apptResp
		}
	}

	return resp
}

// ToDomainStatus converte a string submetida em status de domínio com validação
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)
	if !domain.IsValidStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
