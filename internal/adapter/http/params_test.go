package http

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextoComQuery(t *testing.T, query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestPaginaDaConsulta(t *testing.T) {
	pagina, err := paginaDaConsulta(contextoComQuery(t, "page=2&size=50"))
	require.NoError(t, err)
	assert.Equal(t, 2, pagina.Numero)
	assert.Equal(t, 50, pagina.Tamanho)

	// ausentes ficam zerados; a normalização acontece na paginação
	pagina, err = paginaDaConsulta(contextoComQuery(t, ""))
	require.NoError(t, err)
	assert.Zero(t, pagina.Numero)
	assert.Zero(t, pagina.Tamanho)

	_, err = paginaDaConsulta(contextoComQuery(t, "page=primeira"))
	assert.Error(t, err)

	_, err = paginaDaConsulta(contextoComQuery(t, "size=muitos"))
	assert.Error(t, err)
}

func TestTextoOpcional(t *testing.T) {
	valor := textoOpcional(contextoComQuery(t, "nome=Notebook"), "nome")
	require.NotNil(t, valor)
	assert.Equal(t, "Notebook", *valor)

	assert.Nil(t, textoOpcional(contextoComQuery(t, ""), "nome"))
}

func TestBoolOpcional(t *testing.T) {
	valor, err := boolOpcional(contextoComQuery(t, "ativo=true"), "ativo")
	require.NoError(t, err)
	require.NotNil(t, valor)
	assert.True(t, *valor)

	valor, err = boolOpcional(contextoComQuery(t, ""), "ativo")
	require.NoError(t, err)
	assert.Nil(t, valor)

	_, err = boolOpcional(contextoComQuery(t, "ativo=sim"), "ativo")
	assert.Error(t, err)
}

func TestFloatOpcional(t *testing.T) {
	valor, err := floatOpcional(contextoComQuery(t, "valorMinimo=1500.75"), "valorMinimo")
	require.NoError(t, err)
	require.NotNil(t, valor)
	assert.Equal(t, 1500.75, *valor)

	_, err = floatOpcional(contextoComQuery(t, "valorMinimo=caro"), "valorMinimo")
	assert.Error(t, err)
}

func TestTempoOpcional(t *testing.T) {
	valor, err := tempoOpcional(contextoComQuery(t, "de=2024-03-12T10%3A30%3A00Z"), "de")
	require.NoError(t, err)
	require.NotNil(t, valor)
	assert.Equal(t, time.Date(2024, 3, 12, 10, 30, 0, 0, time.UTC), valor.UTC())

	// data simples também é aceita
	valor, err = tempoOpcional(contextoComQuery(t, "de=2024-03-12"), "de")
	require.NoError(t, err)
	require.NotNil(t, valor)
	assert.Equal(t, 2024, valor.Year())

	valor, err = tempoOpcional(contextoComQuery(t, ""), "de")
	require.NoError(t, err)
	assert.Nil(t, valor)

	_, err = tempoOpcional(contextoComQuery(t, "de=12%2F03%2F2024"), "de")
	assert.Error(t, err)
}
