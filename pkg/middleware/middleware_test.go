package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ipay-report-api/internal/domain"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireSession(t *testing.T) {
	tests := []struct {
		name       string
		ctx        context.Context
		wantStatus int
	}{
		{name: "Sem sessão", ctx: context.Background(), wantStatus: http.StatusUnauthorized},
		{name: "Com sessão", ctx: context.WithValue(context.Background(), ContextKeySession, &domain.Claims{SessionID: "abc"}), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/pages", nil).WithContext(tt.ctx)
			rec := httptest.NewRecorder()

			RequireSession()(okHandler()).ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []string
		origin     string
		wantHeader string
	}{
		{name: "Origem listada", allowed: []string{"https://dash.ipay.vn"}, origin: "https://dash.ipay.vn", wantHeader: "https://dash.ipay.vn"},
		{name: "Curinga", allowed: []string{"*"}, origin: "http://localhost:5173", wantHeader: "http://localhost:5173"},
		{name: "Origem não listada", allowed: []string{"https://dash.ipay.vn"}, origin: "http://localhost:5173", wantHeader: ""},
		{name: "Sem lista", allowed: nil, origin: "https://dash.ipay.vn", wantHeader: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/pages", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(tt.allowed)(okHandler()).ServeHTTP(rec, req)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantHeader, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/pages", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"SRV_001"`)
}

func TestLoggingMiddleware(t *testing.T) {
	failing := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(failing).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/reports/overview", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "500 µs", formatDuration(500*time.Microsecond))
	assert.Equal(t, "250 ms", formatDuration(250*time.Millisecond))
	assert.Equal(t, "1.50 s", formatDuration(1500*time.Millisecond))
}
