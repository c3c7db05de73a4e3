// Package dbmetrics embrulha *sql.DB para instrumentar queries e o pool de
// conexões com Prometheus, e carrega a transação ativa via context para os
// repositórios.
package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/petmimo/PTG-AgendaService/pkg/metrics"
)

const defaultPoolStatsInterval = 15 * time.Second

// DB embrulha *sql.DB adicionando métricas por query
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
	service string
}

// Wrap cria o wrapper e inicia a coleta periódica de estatísticas do pool.
// O canal stop encerra a goroutine de coleta no shutdown.
func Wrap(db *sql.DB, m *metrics.Metrics, service string, interval time.Duration, stop <-chan struct{}) *DB {
	wrapped := &DB{db: db, metrics: m, service: service}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				stats := db.Stats()
				m.SetDBPoolStats(stats.OpenConnections, stats.InUse, stats.Idle)
			case <-stop:
				return
			}
		}
	}()

	return wrapped
}

// WrapWithDefault usa o intervalo padrão de coleta do pool
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, service string, stop <-chan struct{}) *DB {
	return Wrap(db, m, service, defaultPoolStatsInterval, stop)
}

// QueryContext executa uma query registrando duração e resultado
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe("query", start, err)
	return rows, err
}

// QueryRowContext executa uma query de linha única
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe("query_row", start, nil)
	return row
}

// ExecContext executa um comando DML
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := d.db.ExecContext(ctx, query, args...)
	d.observe("exec", start, err)
	return result, err
}

// BeginTx abre uma transação no banco subjacente
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	start := time.Now()
	tx, err := d.db.BeginTx(ctx, opts)
	d.observe("begin_tx", start, err)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func (d *DB) observe(operation string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	d.metrics.ObserveDBQuery(operation, result, time.Since(start))
}
