package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ipay-report-api/pkg/apiErrors"
)

// RequireSession garante que a rota só responde com uma sessão válida no contexto.
// Protege as rotas mesmo quando montadas fora da cadeia global.
func RequireSession() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := SessionFromContext(r.Context()); !ok {
				logrus.Warning("Tentativa de acesso sem sessão")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão não autenticada", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
