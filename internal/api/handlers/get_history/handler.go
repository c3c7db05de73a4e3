package get_history

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/petmimo/PTG-AgendaService/internal/api/handlers"
)

const (
	msgInvalidClientID = "ID de cliente inválido"
)

type Handler struct {
	useCase HistoryUseCase
	logger  Logger
}

func NewHandler(useCase HistoryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients/{clientId}/appointments/history
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clientID, err := strconv.ParseInt(vars["clientId"], 10, 64)
	if err != nil || clientID <= 0 {
		h.logger.Warn("GET /clients/{id}/appointments/history - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	history, err := h.useCase.History(r.Context(), &clientID)
	if err != nil {
		h.logger.Error("GET /clients/{id}/appointments/history - Failed to build history: client_id=%d, error=%v",
			clientID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /clients/{id}/appointments/history - History built successfully: client_id=%d, today=%d, upcoming=%d, past=%d",
		clientID, len(history.Today), len(history.Upcoming), len(history.Past))
	handlers.RespondJSON(w, http.StatusOK, history)
}
