package automationservice

import "errors"

var (
	// ErrInternal é retornado em falhas internas do cliente
	ErrInternal = errors.New("automationservice client: internal error")

	// ErrInvalidResponse é retornado quando o serviço responde com status inesperado
	ErrInvalidResponse = errors.New("automationservice client: invalid response")
)
