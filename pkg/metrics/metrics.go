package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ipay_report"

// Registry é o registro próprio da API, exposto em /metrics
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	// HTTP
	HTTPRequests = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total de requisições HTTP atendidas",
		},
		[]string{"method", "route", "status_code"},
	)

	HTTPRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duração das requisições HTTP",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Relatórios
	ReportBuildDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "report_build_duration_seconds",
			Help:      "Tempo de montagem de cada relatório",
			Buckets:   []float64{.001, .005, .01, .05, .1, .25, .5, 1},
		},
		[]string{"report"},
	)

	ReportErrors = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_errors_total",
			Help:      "Relatórios que terminaram em erro, por código",
		},
		[]string{"report", "code"},
	)

	// Conjunto de dados
	DatasetRequests = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_requests_total",
			Help:      "Leituras do conjunto de dados por resultado do cache",
		},
		[]string{"result"},
	)

	DatasetLoadDuration = factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dataset_load_duration_seconds",
			Help:      "Duração da consulta completa à tabela de métricas",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		},
	)

	DatasetRows = factory.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_rows",
			Help:      "Quantidade de linhas no último carregamento",
		},
	)

	DatasetLastLoad = factory.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_last_load_timestamp_seconds",
			Help:      "Momento do último carregamento bem sucedido",
		},
	)

	DatasetRefreshes = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_refreshes_total",
			Help:      "Atualizações agendadas ou manuais do conjunto de dados",
		},
		[]string{"status"},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Handler expõe o registro no formato de exposição do Prometheus
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}

// ObserveRequest registra uma requisição HTTP concluída
func ObserveRequest(method, route string, statusCode int, elapsed time.Duration) {
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveDatasetLoad registra um carregamento bem sucedido da tabela
func ObserveDatasetLoad(rows int, elapsed time.Duration, loadedAt time.Time) {
	DatasetLoadDuration.Observe(elapsed.Seconds())
	DatasetRows.Set(float64(rows))
	DatasetLastLoad.Set(float64(loadedAt.Unix()))
}
