package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jairomfjr/patrimonio-sub001/internal/infra/middleware"
	"github.com/jairomfjr/patrimonio-sub001/internal/testutils"
	"github.com/jairomfjr/patrimonio-sub001/pkg/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const segredoDeTeste = "segredo-de-teste-com-mais-de-32-caracteres"

func novoAmbienteAuth(t *testing.T) (*gin.Engine, *security.KeyManager) {
	logger := testutils.TestLogger(t)
	keyManager, err := security.NewKeyManager([]byte(segredoDeTeste), logger)
	require.NoError(t, err)

	auth := middleware.NewAuthMiddleware(keyManager, logger)

	router := testutils.SetupTestRouter(t)
	protegido := router.Group("/", auth.Authenticate())
	protegido.GET("/perfil", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"usuarioId":   c.GetString(middleware.ContextoUsuarioID),
			"nivelAcesso": c.GetInt(middleware.ContextoNivelAcesso),
		})
	})
	protegido.GET("/admin", auth.ExigirNivel(5), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router, keyManager
}

func TestAuthenticateSemToken(t *testing.T) {
	router, _ := novoAmbienteAuth(t)

	resp := testutils.MakeRequest(t, router, http.MethodGet, "/perfil", nil, nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusUnauthorized)

	var envelope middleware.RespostaErro
	testutils.ParseResponse(t, resp, &envelope)
	assert.Equal(t, "UNAUTHORIZED", envelope.Error)
	assert.Equal(t, "/perfil", envelope.Path)
}

func TestAuthenticateComFormatoInvalido(t *testing.T) {
	router, _ := novoAmbienteAuth(t)

	resp := testutils.MakeRequest(t, router, http.MethodGet, "/perfil", nil,
		map[string]string{"Authorization": "Basic abc123"})
	testutils.RequireHTTPStatus(t, resp, http.StatusUnauthorized)
}

func TestAuthenticateComTokenExpirado(t *testing.T) {
	router, keyManager := novoAmbienteAuth(t)

	token, err := keyManager.GenerateToken("user-1", "joana", 5, -time.Minute)
	require.NoError(t, err)

	resp := testutils.MakeRequest(t, router, http.MethodGet, "/perfil", nil,
		map[string]string{"Authorization": "Bearer " + token})
	testutils.RequireHTTPStatus(t, resp, http.StatusUnauthorized)
}

func TestAuthenticatePopulaContexto(t *testing.T) {
	router, keyManager := novoAmbienteAuth(t)

	token, err := keyManager.GenerateToken("user-1", "joana", 3, time.Hour)
	require.NoError(t, err)

	resp := testutils.MakeRequest(t, router, http.MethodGet, "/perfil", nil,
		map[string]string{"Authorization": "Bearer " + token})
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	var corpo struct {
		UsuarioID   string `json:"usuarioId"`
		NivelAcesso int    `json:"nivelAcesso"`
	}
	testutils.ParseResponse(t, resp, &corpo)
	assert.Equal(t, "user-1", corpo.UsuarioID)
	assert.Equal(t, 3, corpo.NivelAcesso)
}

func TestExigirNivel(t *testing.T) {
	router, keyManager := novoAmbienteAuth(t)

	comum, err := keyManager.GenerateToken("user-1", "joana", 2, time.Hour)
	require.NoError(t, err)

	resp := testutils.MakeRequest(t, router, http.MethodGet, "/admin", nil,
		map[string]string{"Authorization": "Bearer " + comum})
	testutils.RequireHTTPStatus(t, resp, http.StatusForbidden)

	var envelope middleware.RespostaErro
	testutils.ParseResponse(t, resp, &envelope)
	assert.Equal(t, "FORBIDDEN", envelope.Error)

	admin, err := keyManager.GenerateToken("user-2", "marcos", 5, time.Hour)
	require.NoError(t, err)

	resp = testutils.MakeRequest(t, router, http.MethodGet, "/admin", nil,
		map[string]string{"Authorization": "Bearer " + admin})
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)
}
