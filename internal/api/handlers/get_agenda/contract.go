package get_agenda

import (
	"context"

	agendaView "github.com/petmimo/PTG-AgendaService/internal/usecase/agenda_view"
)

type AgendaUseCase interface {
	Agenda(ctx context.Context, clientID *int64) (*agendaView.AgendaResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
