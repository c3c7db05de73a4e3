package create_subscription

import "errors"

var (
	// ErrNoServices é retornado quando nenhum dos serviços padrão do ciclo
	// pôde ser resolvido no catálogo: uma assinatura sem nenhum serviço
	// não é legítima
	ErrNoServices = errors.New("create_subscription: no default services resolved")

	// ErrSubscriptionPersist é retornado quando a assinatura não persiste;
	// a operação inteira aborta sem criar ocorrências
	ErrSubscriptionPersist = errors.New("create_subscription: failed to persist subscription")

	// ErrInternal é retornado em falhas internas do use case
	ErrInternal = errors.New("create_subscription: internal error")
)
