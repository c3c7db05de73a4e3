package get_charge_group

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/petmimo/PTG-AgendaService/internal/api/handlers"
	chargeGroup "github.com/petmimo/PTG-AgendaService/internal/usecase/charge_group"
)

const (
	msgInvalidAppointmentID = "ID de agendamento inválido"
	msgNotFound             = "agendamento não encontrado"
	msgNoGroup              = "o agendamento não faz parte de um grupo de cobrança"
)

type Handler struct {
	useCase ChargeGroupUseCase
	logger  Logger
}

func NewHandler(useCase ChargeGroupUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/{appointmentId}/charge-group
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /appointments/{id}/charge-group - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	group, err := h.useCase.Resolve(r.Context(), appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, chargeGroup.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/{id}/charge-group - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, chargeGroup.ErrNoGroup):
			h.logger.Info("GET /appointments/{id}/charge-group - No group: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNoGroup)

		default:
			h.logger.Error("GET /appointments/{id}/charge-group - Failed to resolve group: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/{id}/charge-group - Group resolved successfully: appointment_id=%d, anchor=%d, members=%d",
		appointmentID, group.AnchorID, len(group.Members))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseGroup(group))
}
