package create_appointment

import (
	"context"

	createAppointment "github.com/petmimo/PTG-AgendaService/internal/usecase/create_appointment"
)

type CreateAppointmentUseCase interface {
	Execute(ctx context.Context, userID int64, sub *createAppointment.Submission) (*createAppointment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
