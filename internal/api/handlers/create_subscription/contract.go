package create_subscription

import (
	"context"

	createSubscription "github.com/petmimo/PTG-AgendaService/internal/usecase/create_subscription"
)

type CreateSubscriptionUseCase interface {
	Execute(ctx context.Context, userID int64, sub *createSubscription.Submission) (*createSubscription.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
