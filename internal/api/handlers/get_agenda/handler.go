package get_agenda

import (
	"net/http"
	"strconv"

	"github.com/petmimo/PTG-AgendaService/internal/api/handlers"
)

const (
	msgInvalidClientID = "ID de cliente inválido"
)

type Handler struct {
	useCase AgendaUseCase
	logger  Logger
}

func NewHandler(useCase AgendaUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/agenda?clientId=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var clientID *int64
	if raw := r.URL.Query().Get("clientId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			h.logger.Warn("GET /agenda - Invalid client ID: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidClientID)
			return
		}
		clientID = &parsed
	}

	agenda, err := h.useCase.Agenda(r.Context(), clientID)
	if err != nil {
		h.logger.Error("GET /agenda - Failed to build agenda: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /agenda - Agenda built successfully: overdue=%d, finalizedToday=%d, upcoming=%d",
		len(agenda.Overdue), len(agenda.FinalizedToday), len(agenda.Upcoming))
	handlers.RespondJSON(w, http.StatusOK, agenda)
}
