package ledger

import "errors"

var (
	// ErrInternal é retornado em erros internos do serviço
	ErrInternal = errors.New("ledger: internal error")
)
