package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ipay-report-api/internal/config"
	"github.com/vfg2006/ipay-report-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "segredo-de-teste"

func newTestService(t *testing.T) *Service {
	service, err := NewService(config.Auth{Password: "painel-ipay", SessionTTL: time.Hour}, testSecret)
	require.NoError(t, err)
	return service
}

func TestNewService(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pelo-hash"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name       string
		cfg        config.Auth
		secret     string
		wantErr    error
		wantAnyErr bool
		password   string
	}{
		{name: "Senha em texto", cfg: config.Auth{Password: "painel"}, secret: testSecret, password: "painel"},
		{name: "Hash tem precedência", cfg: config.Auth{Password: "ignorada", PasswordHash: string(hash)}, secret: testSecret, password: "pelo-hash"},
		{name: "Sem senha", cfg: config.Auth{}, secret: testSecret, wantErr: ErrPasswordNotConfigured},
		{name: "Sem chave", cfg: config.Auth{Password: "painel"}, secret: "", wantErr: ErrSecretNotConfigured},
		{name: "Hash inválido", cfg: config.Auth{PasswordHash: "nao-e-bcrypt"}, secret: testSecret, wantAnyErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, err := NewService(tt.cfg, tt.secret)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			if tt.wantAnyErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, defaultSessionTTL, service.sessionTTL)

			_, _, err = service.Login(tt.password)
			assert.NoError(t, err)
		})
	}
}

func TestService_Login(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
		wantCode string
	}{
		{name: "Senha correta", password: "painel-ipay"},
		{name: "Senha incorreta", password: "errada", wantErr: ErrInvalidCredentials, wantCode: "AUTH_001"},
		{name: "Senha vazia", password: "", wantErr: ErrMissingRequiredData, wantCode: "VAL_002"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(t)
			now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
			service.now = func() time.Time { return now }

			token, session, err := service.Login(tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				var authErr *AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, tt.wantCode, authErr.Code)
				assert.True(t, IsCredentialsError(err))
				assert.False(t, IsAuthorizationError(err))
				assert.Empty(t, token)
				assert.Nil(t, session)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.Len(t, session.ID, 21)
			assert.Equal(t, "2025-03-15T10:00:00Z", session.IssuedAt)
			assert.Equal(t, "2025-03-15T11:00:00Z", session.ExpiresAt)

			claims, err := service.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, session.ID, claims.SessionID)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	service := newTestService(t)
	issued := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return issued }

	token, _, err := service.Login("painel-ipay")
	require.NoError(t, err)

	otherSecret := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.Claims{
		SessionID:        "abc",
		RegisteredClaims: jwt.RegisteredClaims{ID: "abc", ExpiresAt: jwt.NewNumericDate(issued.Add(time.Hour))},
	})
	forged, err := otherSecret.SignedString([]byte("outra-chave"))
	require.NoError(t, err)

	withoutSession := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(issued.Add(time.Hour))},
	})
	noSession, err := withoutSession.SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		now     time.Time
		wantErr error
	}{
		{name: "Token válido", token: token, now: issued.Add(30 * time.Minute)},
		{name: "Token expirado", token: token, now: issued.Add(2 * time.Hour), wantErr: ErrExpiredToken},
		{name: "Assinatura de outra chave", token: forged, now: issued, wantErr: ErrInvalidToken},
		{name: "Sem sessão", token: noSession, now: issued, wantErr: ErrInvalidToken},
		{name: "Token vazio", token: "", now: issued, wantErr: ErrInvalidToken},
		{name: "Texto qualquer", token: "nao.e.jwt", now: issued, wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service.now = func() time.Time { return tt.now }

			claims, err := service.ValidateToken(tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, IsAuthorizationError(err))
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, claims.SessionID)
		})
	}
}
