package testutils

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// TestLogger cria um logger zap vinculado ao teste
func TestLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t)
}

// SetupTestRouter configura um router Gin em modo de teste
func SetupTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gin.Recovery())
	return router
}

// MakeRequest executa uma requisição contra o router e devolve a resposta
// gravada. Corpos string e []byte são enviados como estão; qualquer outro
// valor é serializado como JSON.
func MakeRequest(t *testing.T, router *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var reqBody io.Reader

	if body != nil {
		switch v := body.(type) {
		case string:
			reqBody = strings.NewReader(v)
		case []byte:
			reqBody = strings.NewReader(string(v))
		default:
			jsonData, err := json.Marshal(body)
			require.NoError(t, err, "falha ao serializar o corpo da requisição")
			reqBody = strings.NewReader(string(jsonData))
		}
	}

	req, err := http.NewRequest(method, path, reqBody)
	require.NoError(t, err, "falha ao montar a requisição")

	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for chave, valor := range headers {
		req.Header.Set(chave, valor)
	}

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	return resp
}

// ParseResponse desserializa o corpo JSON da resposta em dst
func ParseResponse(t *testing.T, resp *httptest.ResponseRecorder, dst interface{}) {
	require.NotNil(t, resp, "resposta não gravada")

	err := json.Unmarshal(resp.Body.Bytes(), dst)
	require.NoError(t, err, "falha ao desserializar a resposta: %s", resp.Body.String())
}

// ContextWithTimeout cria um contexto com o timeout padrão dos testes
func ContextWithTimeout(t *testing.T) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}

// RequireHTTPStatus interrompe o teste se o status da resposta divergir
func RequireHTTPStatus(t *testing.T, resp *httptest.ResponseRecorder, status int) {
	require.Equal(t, status, resp.Code, "status esperado %d, recebido %d, corpo: %s",
		status, resp.Code, resp.Body.String())
}

// RequireJSONContentType interrompe o teste se a resposta não for JSON
func RequireJSONContentType(t *testing.T, resp *httptest.ResponseRecorder) {
	contentType := resp.Header().Get("Content-Type")
	require.Contains(t, contentType, "application/json",
		"Content-Type esperado application/json, recebido %s", contentType)
}
