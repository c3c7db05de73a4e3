package appointments

import "errors"

var (
	// ErrAppointmentNotFound é retornado quando o agendamento não existe
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInvalidStatus é retornado quando o status submetido não existe
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrTransitionNotAllowed é retornado quando a máquina de status veta a
	// transição pedida (estados encerrados não mudam mais)
	ErrTransitionNotAllowed = errors.New("status transition not allowed")

	// ErrInvalidInput é retornado para entradas malformadas
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal é retornado em erros internos do serviço
	ErrInternal = errors.New("appointments: internal error")
)
