package middleware

import (
	"net/http"
	"time"

	"github.com/vfg2006/ipay-report-api/pkg/metrics"
)

// Metrics registra contagem e duração por rota.
// route é o padrão registrado no roteador, nunca o caminho com parâmetros.
func Metrics(method, route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			lrw := newLoggingResponseWriter(w)

			next.ServeHTTP(lrw, r)

			metrics.ObserveRequest(method, route, lrw.statusCode, time.Since(start))
		})
	}
}
