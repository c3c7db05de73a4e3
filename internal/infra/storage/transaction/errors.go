package transaction

import "errors"

var (
	// ErrBuildQuery é retornado quando a montagem do SQL falha
	ErrBuildQuery = errors.New("transaction.repository: failed to build query")

	// ErrExecQuery é retornado quando a execução do SQL falha
	ErrExecQuery = errors.New("transaction.repository: failed to execute query")
)
