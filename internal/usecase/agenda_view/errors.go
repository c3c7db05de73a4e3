package agenda_view

import "errors"

var (
	// ErrInternal é retornado em falhas internas do use case
	ErrInternal = errors.New("agenda_view: internal error")
)
