package agenda_view

import (
	"github.com/petmimo/PTG-AgendaService/internal/service/appointments/models"
)

// AgendaResponse é a visão operacional da agenda em DTOs
type AgendaResponse struct {
	Overdue        []models.AppointmentResponse `json:"overdue"`
	FinalizedToday []models.AppointmentResponse `json:"finalizedToday"`
	Upcoming       []models.AppointmentResponse `json:"upcoming"`
}

// HistoryResponse é a linha do tempo completa em DTOs
type HistoryResponse struct {
	Today    []models.AppointmentResponse `json:"today"`
	Upcoming []models.AppointmentResponse `json:"upcoming"`
	Past     []models.AppointmentResponse `json:"past"`
}
