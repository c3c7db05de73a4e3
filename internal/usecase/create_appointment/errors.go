package create_appointment

import "errors"

var (
	// ErrServiceNotFound é retornado quando um serviço submetido não existe no catálogo
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrInternal é retornado em falhas internas do use case
	ErrInternal = errors.New("create_appointment: internal error")
)
