package middleware_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jairomfjr/patrimonio-sub001/internal/infra/middleware"
	"github.com/jairomfjr/patrimonio-sub001/internal/testutils"
	"github.com/jairomfjr/patrimonio-sub001/pkg/apierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novoRouterComTradutor(t *testing.T, err error) *gin.Engine {
	router := testutils.SetupTestRouter(t)
	router.Use(middleware.NewErrorMiddleware(testutils.TestLogger(t)).Middleware())
	router.GET("/recurso", func(c *gin.Context) {
		_ = c.Error(err)
		c.Abort()
	})
	return router
}

func TestEnvelopeDeErroDeDominio(t *testing.T) {
	router := novoRouterComTradutor(t, apierror.BemNaoEncontrado("bem-1"))

	resp := testutils.MakeRequest(t, router, http.MethodGet, "/recurso", nil, nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusNotFound)
	testutils.RequireJSONContentType(t, resp)

	var envelope middleware.RespostaErro
	testutils.ParseResponse(t, resp, &envelope)
	assert.Equal(t, http.StatusNotFound, envelope.Status)
	assert.Equal(t, "NOT_FOUND", envelope.Error)
	assert.Contains(t, envelope.Message, "bem-1")
	assert.Equal(t, "/recurso", envelope.Path)

	_, err := time.Parse(time.RFC3339, envelope.Timestamp)
	require.NoError(t, err, "timestamp fora do formato RFC 3339")
}

func TestEnvelopeDeErroDeValidacaoComCampos(t *testing.T) {
	err := apierror.Validation("dados inválidos", nil).WithField("nome", "obrigatório")
	router := novoRouterComTradutor(t, err)

	resp := testutils.MakeRequest(t, router, http.MethodGet, "/recurso", nil, nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusBadRequest)

	var envelope middleware.RespostaErro
	testutils.ParseResponse(t, resp, &envelope)
	assert.Equal(t, "VALIDATION_FAILURE", envelope.Error)
	assert.Equal(t, "obrigatório", envelope.Fields["nome"])
}

func TestEnvelopeDeErroInternoNaoVazaDetalhes(t *testing.T) {
	router := novoRouterComTradutor(t, errors.New("dsn do banco: usuario/senha@host"))

	resp := testutils.MakeRequest(t, router, http.MethodGet, "/recurso", nil, nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusInternalServerError)

	var envelope middleware.RespostaErro
	testutils.ParseResponse(t, resp, &envelope)
	assert.Equal(t, "INTERNAL_ERROR", envelope.Error)
	assert.Equal(t, "erro interno do servidor", envelope.Message)
	assert.NotContains(t, resp.Body.String(), "senha")
}

func TestRespostaJaEscritaNaoRecebeEnvelope(t *testing.T) {
	router := testutils.SetupTestRouter(t)
	router.Use(middleware.NewErrorMiddleware(testutils.TestLogger(t)).Middleware())
	router.GET("/recurso", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
		_ = c.Error(errors.New("erro tardio"))
	})

	resp := testutils.MakeRequest(t, router, http.MethodGet, "/recurso", nil, nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)
	assert.Contains(t, resp.Body.String(), "ok")
}
