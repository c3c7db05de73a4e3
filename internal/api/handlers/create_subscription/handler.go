package create_subscription

import (
	"errors"
	"net/http"

	"github.com/petmimo/PTG-AgendaService/internal/api/handlers"
	"github.com/petmimo/PTG-AgendaService/internal/api/middleware"
	createSubscription "github.com/petmimo/PTG-AgendaService/internal/usecase/create_subscription"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgMissingUserID      = "usuário não identificado"
	msgValidationFailed   = "a submissão contém campos inválidos"
	msgNoServices         = "nenhum serviço padrão do ciclo foi encontrado no catálogo"
	msgPersistFailed      = "não foi possível gravar a assinatura"
)

type Handler struct {
	useCase CreateSubscriptionUseCase
	logger  Logger
}

func NewHandler(useCase CreateSubscriptionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/subscriptions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSubscriptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /subscriptions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /subscriptions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), userID, req.ToSubmission())
	if err != nil {
		if handlers.RespondValidationError(w, err, msgValidationFailed) {
			h.logger.Warn("POST /subscriptions - Validation failed: user_id=%d", userID)
			return
		}

		switch {
		case errors.Is(err, createSubscription.ErrNoServices):
			h.logger.Warn("POST /subscriptions - No default services resolved: user_id=%d", userID)
			handlers.RespondError(w, http.StatusConflict, msgNoServices)

		case errors.Is(err, createSubscription.ErrSubscriptionPersist):
			h.logger.Error("POST /subscriptions - Failed to persist subscription: user_id=%d, error=%v", userID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgPersistFailed)

		default:
			h.logger.Error("POST /subscriptions - Failed to create subscription: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /subscriptions - Subscription created successfully: subscription_id=%d, user_id=%d, occurrences=%d",
		result.SubscriptionID, userID, len(result.AppointmentIDs))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
