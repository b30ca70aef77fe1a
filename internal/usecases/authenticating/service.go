package authenticating

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ipay-report-api/internal/config"
	"github.com/vfg2006/ipay-report-api/internal/domain"
	"github.com/vfg2006/ipay-report-api/pkg/apiErrors"
	"github.com/vfg2006/ipay-report-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

const defaultSessionTTL = 24 * time.Hour

// Authenticator abre e valida sessões do painel protegido por senha única
type Authenticator interface {
	Login(password string) (string, *domain.Session, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	passwordHash []byte
	secretKey    []byte
	sessionTTL   time.Duration
	now          func() time.Time
}

// NewService prepara o hash da senha do painel.
// APP_PASSWORD_HASH tem precedência; sem ele, APP_PASSWORD é convertida com bcrypt na subida.
func NewService(cfg config.Auth, secretKey string) (*Service, error) {
	if secretKey == "" {
		return nil, ErrSecretNotConfigured
	}

	var hash []byte
	switch {
	case cfg.PasswordHash != "":
		if _, err := bcrypt.Cost([]byte(cfg.PasswordHash)); err != nil {
			return nil, fmt.Errorf("hash da senha do painel inválido: %w", err)
		}
		hash = []byte(cfg.PasswordHash)
	case cfg.Password != "":
		generated, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar hash da senha do painel: %w", err)
		}
		hash = generated
	default:
		return nil, ErrPasswordNotConfigured
	}

	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}

	return &Service{
		passwordHash: hash,
		secretKey:    []byte(secretKey),
		sessionTTL:   ttl,
		now:          time.Now,
	}, nil
}

// Login confere a senha e emite o token da sessão
func (s *Service) Login(password string) (string, *domain.Session, error) {
	if password == "" {
		return "", nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Senha é obrigatória")
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		logrus.Warn("auth: tentativa de login com senha incorreta")
		return "", nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Senha incorreta")
	}

	sessionID, err := utils.GenerateSessionID()
	if err != nil {
		return "", nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar identificador da sessão")
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.sessionTTL)

	token, err := s.generateJWT(sessionID, issuedAt, expiresAt)
	if err != nil {
		return "", nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	session := &domain.Session{
		ID:        sessionID,
		IssuedAt:  issuedAt.Format(time.RFC3339),
		ExpiresAt: expiresAt.Format(time.RFC3339),
	}

	logrus.WithField("session_id", sessionID).Info("auth: sessão aberta")
	return token, session, nil
}

func (s *Service) generateJWT(sessionID string, issuedAt, expiresAt time.Time) (string, error) {
	claims := domain.Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if tokenString == "" {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token ausente")
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Sessão expirada")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token inválido")
	}

	// sid e jti são gravados juntos no login
	if claims.SessionID == "" || subtle.ConstantTimeCompare([]byte(claims.SessionID), []byte(claims.ID)) != 1 {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Sessão inválida")
	}

	return claims, nil
}
