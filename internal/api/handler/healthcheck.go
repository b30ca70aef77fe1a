package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Pinger verifica se uma dependência externa responde
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthcheckResponse struct {
	Status   string `json:"status"`
	Time     string `json:"time"`
	Database string `json:"database"`
}

func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		response := healthcheckResponse{
			Status:   "ok",
			Time:     time.Now().Format(time.RFC3339),
			Database: "ok",
		}
		status := http.StatusOK

		if err := db.Ping(ctx); err != nil {
			logrus.WithError(err).Warn("healthcheck: banco de dados indisponível")
			response.Status = "degraded"
			response.Database = "unavailable"
			status = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
