package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/vfg2006/ipay-report-api/pkg/apiErrors"
	"github.com/vfg2006/ipay-report-api/pkg/log"
)

// RequestIDHeader devolve ao cliente o ID de correlação da requisição
const RequestIDHeader = "X-Request-ID"

// Relatórios acima deste tempo são registrados como lentos
const slowRequestThreshold = 500 * time.Millisecond

// LoggingMiddleware registra início e fim de cada requisição HTTP
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)
			w.Header().Set(RequestIDHeader, correlationID)

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			if log.IsDevelopment() {
				log.L.WithFields(log.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				}).Debug("→ Iniciando requisição")
			} else {
				log.ForContext(ctx).WithFields(log.Fields{
					"remote_addr": r.RemoteAddr,
					"method":      r.Method,
					"path":        r.URL.Path,
					"query":       r.URL.RawQuery,
					"user_agent":  r.UserAgent(),
				}).Info("Requisição iniciada")
			}

			next.ServeHTTP(lrw, r)

			logCompleted(r, lrw.statusCode, time.Since(startTime))
		})
	}
}

func logCompleted(r *http.Request, statusCode int, elapsed time.Duration) {
	logger := log.ForContext(r.Context()).WithFields(log.Fields{
		"method":      r.Method,
		"path":        r.URL.Path,
		"status_code": statusCode,
		"duration_ms": elapsed.Milliseconds(),
	})

	message := "Requisição finalizada com sucesso"
	if log.IsDevelopment() {
		symbol := "✓"
		if statusCode >= http.StatusBadRequest {
			symbol = "✗"
		}
		message = fmt.Sprintf("%s Completada em %s", symbol, formatDuration(elapsed))
	}

	switch {
	case statusCode >= http.StatusInternalServerError:
		logger.Error(message)
	case statusCode >= http.StatusBadRequest:
		logger.Warn(message)
	default:
		logger.Info(message)
	}

	if elapsed > slowRequestThreshold {
		logger.Warnf("⚠ Requisição lenta: %s %s (%dms)", r.Method, r.URL.Path, elapsed.Milliseconds())
	}
}

// formatDuration formata a duração de forma humana
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// loggingResponseWriter captura o status code da resposta
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware recupera panics, registra a pilha e responde SRV_001
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := make([]byte, 4096)
					stackTrace := string(stack[:runtime.Stack(stack, false)])

					logger := log.ForContext(r.Context()).WithFields(log.Fields{
						"error":  err,
						"method": r.Method,
						"path":   r.URL.Path,
					})

					if log.IsDevelopment() {
						logger.Error("❌ PANIC na aplicação")
						fmt.Fprintf(os.Stderr, "\n\n=== STACK TRACE ===\n%s\n=================\n\n", stackTrace)
					} else {
						logger.WithField("stack_trace", stackTrace).Error("Erro não tratado na aplicação")
					}

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
