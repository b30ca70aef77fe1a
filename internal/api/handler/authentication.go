package handler

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/ipay-report-api/internal/domain"
	"github.com/vfg2006/ipay-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/ipay-report-api/pkg/apiErrors"
	"github.com/vfg2006/ipay-report-api/pkg/log"
	"github.com/vfg2006/ipay-report-api/pkg/middleware"
)

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	Token   string          `json:"token"`
	Session *domain.Session `json:"session"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		// Decodificar o corpo da requisição
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, session, err := service.Login(req.Password)
		if err != nil {
			logger := log.ForContext(r.Context()).WithError(err)
			if authenticating.IsCredentialsError(err) {
				logger.Warn("login: tentativa de login recusada")
			} else {
				logger.Error("login: erro ao autenticar")
			}
			handleLoginError(w, err)
			return
		}

		writeJSON(w, r, LoginResponse{
			Token:   token,
			Session: session,
		})
	}
}

// GetMe retorna a sessão do token enviado
func GetMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão não autenticada", nil)
			return
		}

		session := domain.Session{ID: claims.SessionID}
		if claims.IssuedAt != nil {
			session.IssuedAt = claims.IssuedAt.Format(time.RFC3339)
		}
		if claims.ExpiresAt != nil {
			session.ExpiresAt = claims.ExpiresAt.Format(time.RFC3339)
		}

		log.ForContext(r.Context()).WithField("session_id", claims.SessionID).Debug("me: sessão consultada")
		writeJSON(w, r, session)
	}
}

// handleLoginError trata erros específicos de login e retorna a resposta apropriada
func handleLoginError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)
	case errors.Is(err, authenticating.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Senha é obrigatória", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno durante o login", nil)
	}
}
