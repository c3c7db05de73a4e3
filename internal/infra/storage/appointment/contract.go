package appointment

import (
	"context"
	"database/sql"

	"github.com/petmimo/PTG-AgendaService/pkg/dbmetrics"
)

// Reaproveitamos as interfaces do dbmetrics para falar com o banco
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner interface para abrir transações
// Satisfeita por *sql.DB e *dbmetrics.DB
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
