package get_history

import (
	"context"

	agendaView "github.com/petmimo/PTG-AgendaService/internal/usecase/agenda_view"
)

type HistoryUseCase interface {
	History(ctx context.Context, clientID *int64) (*agendaView.HistoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
