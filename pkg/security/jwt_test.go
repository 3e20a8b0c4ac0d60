package security_test

import (
	"testing"
	"time"

	"github.com/jairomfjr/patrimonio-sub001/pkg/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const segredoDeTeste = "segredo-de-teste-com-mais-de-32-caracteres"

func TestNewKeyManagerRejeitaSegredoCurto(t *testing.T) {
	_, err := security.NewKeyManager([]byte("curto"), zaptest.NewLogger(t))
	assert.Error(t, err)
}

func TestGenerateEVerifyToken(t *testing.T) {
	km, err := security.NewKeyManager([]byte(segredoDeTeste), zaptest.NewLogger(t))
	require.NoError(t, err)

	token, err := km.GenerateToken("user-1", "joana", 5, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := km.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "joana", claims.Username)
	assert.Equal(t, 5, claims.NivelAcesso)
}

func TestVerifyTokenExpirado(t *testing.T) {
	km, err := security.NewKeyManager([]byte(segredoDeTeste), zaptest.NewLogger(t))
	require.NoError(t, err)

	token, err := km.GenerateToken("user-1", "joana", 5, -time.Minute)
	require.NoError(t, err)

	_, err = km.VerifyToken(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expirado")
}

func TestVerifyTokenComSegredoDiferente(t *testing.T) {
	km, err := security.NewKeyManager([]byte(segredoDeTeste), zaptest.NewLogger(t))
	require.NoError(t, err)

	outro, err := security.NewKeyManager([]byte("outro-segredo-tambem-com-mais-de-32-caracteres"), zaptest.NewLogger(t))
	require.NoError(t, err)

	token, err := outro.GenerateToken("user-1", "joana", 5, time.Hour)
	require.NoError(t, err)

	_, err = km.VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyTokenMalformado(t *testing.T) {
	km, err := security.NewKeyManager([]byte(segredoDeTeste), zaptest.NewLogger(t))
	require.NoError(t, err)

	_, err = km.VerifyToken("nao-e-um-jwt")
	assert.Error(t, err)
}
