package subscription

import "errors"

var (
	// ErrSubscriptionNotFound é retornado quando a assinatura não existe
	ErrSubscriptionNotFound = errors.New("subscription.repository: subscription not found")

	// ErrBuildQuery é retornado quando a montagem do SQL falha
	ErrBuildQuery = errors.New("subscription.repository: failed to build query")

	// ErrExecQuery é retornado quando a execução do SQL falha
	ErrExecQuery = errors.New("subscription.repository: failed to execute query")

	// ErrScanRow é retornado quando a leitura do resultado falha
	ErrScanRow = errors.New("subscription.repository: failed to scan row")
)
