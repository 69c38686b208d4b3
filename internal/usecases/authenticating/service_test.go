package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/web-traffic-api/internal/config"
	"github.com/vfg2006/web-traffic-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

func authTestConfig(t *testing.T, password string) *config.Config {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &config.Config{
		Auth: config.Auth{
			Secret:             "segredo-de-teste",
			Username:           "operador",
			PasswordHash:       string(hash),
			TokenExpiryMinutes: 60,
		},
	}
}

func TestLoginComCredencialValida(t *testing.T) {
	service := NewService(authTestConfig(t, "senha-forte"))

	token, err := service.Login("operador", "senha-forte")

	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "operador", claims.Username)
}

func TestLoginNormalizaOUsuario(t *testing.T) {
	service := NewService(authTestConfig(t, "senha-forte"))

	token, err := service.Login("  OPERADOR  ", "senha-forte")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLoginComSenhaIncorreta(t *testing.T) {
	service := NewService(authTestConfig(t, "senha-forte"))

	_, err := service.Login("operador", "senha-errada")

	require.Error(t, err)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, apiErrors.ErrInvalidCredentials, authErr.Code)
}

func TestLoginComUsuarioDesconhecido(t *testing.T) {
	service := NewService(authTestConfig(t, "senha-forte"))

	_, err := service.Login("intruso", "senha-forte")

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, apiErrors.ErrInvalidCredentials, authErr.Code)
}

func TestLoginSemCamposObrigatorios(t *testing.T) {
	service := NewService(authTestConfig(t, "senha-forte"))

	_, err := service.Login("", "senha-forte")
	assert.Error(t, err)

	_, err = service.Login("operador", "")
	assert.Error(t, err)
}

func TestLoginDesabilitadoSemHashConfigurado(t *testing.T) {
	cfg := authTestConfig(t, "senha-forte")
	cfg.Auth.PasswordHash = ""

	service := NewService(cfg)

	_, err := service.Login("operador", "senha-forte")

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, apiErrors.ErrLoginDisabled, authErr.Code)
}

func TestValidateTokenRejeitaTokenAdulterado(t *testing.T) {
	service := NewService(authTestConfig(t, "senha-forte"))

	token, err := service.Login("operador", "senha-forte")
	require.NoError(t, err)

	_, err = service.ValidateToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = service.ValidateToken("nem-é-um-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejeitaTokenExpirado(t *testing.T) {
	cfg := authTestConfig(t, "senha-forte")
	cfg.Auth.TokenExpiryMinutes = -1

	service := NewService(cfg)

	token, err := service.Login("operador", "senha-forte")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenDeOutroSegredo(t *testing.T) {
	issuer := NewService(authTestConfig(t, "senha-forte"))

	token, err := issuer.Login("operador", "senha-forte")
	require.NoError(t, err)

	otherCfg := authTestConfig(t, "senha-forte")
	otherCfg.Auth.Secret = "outro-segredo"

	_, err = NewService(otherCfg).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
