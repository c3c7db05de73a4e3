// Package metrics concentra os coletores Prometheus do serviço.
// Usa um registry próprio para evitar pânico de "duplicate collector"
// quando New é chamado mais de uma vez (ex.: em testes).
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics agrupa todos os coletores do serviço
type Metrics struct {
	Registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueriesTotal  *prometheus.CounterVec
	dbQueryDuration *prometheus.HistogramVec
	dbPoolOpenConns prometheus.Gauge
	dbPoolInUse     prometheus.Gauge
	dbPoolIdle      prometheus.Gauge
}

// New cria o registry e registra os coletores da aplicação
func New(serviceName string) *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		Registry: reg,

		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total de requisições HTTP por método, rota e status.",
				ConstLabels: constLabels,
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "Duração das requisições HTTP.",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: constLabels,
			},
			[]string{"method", "route"},
		),
		dbQueriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "db_queries_total",
				Help:        "Total de queries executadas por operação e resultado.",
				ConstLabels: constLabels,
			},
			[]string{"operation", "result"},
		),
		dbQueryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "db_query_duration_seconds",
				Help:        "Duração das queries no banco.",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: constLabels,
			},
			[]string{"operation"},
		),
		dbPoolOpenConns: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_pool_open_connections",
			Help:        "Conexões abertas no pool.",
			ConstLabels: constLabels,
		}),
		dbPoolInUse: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_pool_in_use_connections",
			Help:        "Conexões em uso no pool.",
			ConstLabels: constLabels,
		}),
		dbPoolIdle: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_pool_idle_connections",
			Help:        "Conexões ociosas no pool.",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveHTTPRequest registra uma requisição HTTP concluída
func (m *Metrics) ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveDBQuery registra uma query concluída
func (m *Metrics) ObserveDBQuery(operation, result string, duration time.Duration) {
	m.dbQueriesTotal.WithLabelValues(operation, result).Inc()
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetDBPoolStats atualiza os gauges do pool de conexões
func (m *Metrics) SetDBPoolStats(open, inUse, idle int) {
	m.dbPoolOpenConns.Set(float64(open))
	m.dbPoolInUse.Set(float64(inUse))
	m.dbPoolIdle.Set(float64(idle))
}
