package charge_group

import "errors"

var (
	// ErrAppointmentNotFound é retornado quando o agendamento âncora não existe
	ErrAppointmentNotFound = errors.New("charge_group: appointment not found")

	// ErrNoGroup é retornado quando o agendamento não faz parte de um grupo
	// de cobrança (menos de dois membros com a mesma assinatura de pets)
	ErrNoGroup = errors.New("charge_group: appointment has no charge group")

	// ErrInternal é retornado em falhas internas do use case
	ErrInternal = errors.New("charge_group: internal error")
)
