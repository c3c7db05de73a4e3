package dbmetrics

import (
	"context"
	"database/sql"
)

// DBExecutor é o subconjunto de *sql.DB / *sql.Tx usado pelos repositórios
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// TxExecutor é um DBExecutor que também controla a transação
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

type txContextKey struct{}

// WithTx coloca a transação ativa no contexto. Usado pelos transaction
// managers; os repositórios recuperam via GetExecutor.
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// GetExecutor devolve a transação do contexto, se houver; caso contrário o
// executor padrão recebido. Permite que o mesmo repositório funcione dentro e
// fora de transações sem mudar a assinatura dos métodos.
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txContextKey{}).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction informa se o contexto carrega uma transação ativa
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txContextKey{}).(TxExecutor)
	return ok
}
