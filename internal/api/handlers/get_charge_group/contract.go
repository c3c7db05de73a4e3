package get_charge_group

import (
	"context"

	chargeGroup "github.com/petmimo/PTG-AgendaService/internal/usecase/charge_group"
)

type ChargeGroupUseCase interface {
	Resolve(ctx context.Context, appointmentID int64) (*chargeGroup.Group, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
