package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jairomfjr/patrimonio-sub001/internal/app/auditoria"
	"go.uber.org/zap"
)

// acoesPorMetodo traduz o método HTTP na ação registrada na trilha
var acoesPorMetodo = map[string]string{
	"POST":   "CREATE",
	"PUT":    "UPDATE",
	"PATCH":  "UPDATE",
	"DELETE": "DELETE",
}

// AuditoriaMiddleware grava na trilha as escritas bem sucedidas da API
type AuditoriaMiddleware struct {
	servico *auditoria.Service
	logger  *zap.Logger
}

// NewAuditoriaMiddleware cria o middleware de auditoria
func NewAuditoriaMiddleware(servico *auditoria.Service, logger *zap.Logger) *AuditoriaMiddleware {
	return &AuditoriaMiddleware{
		servico: servico,
		logger:  logger,
	}
}

// Middleware registra entidade, id, ação e autor após respostas 2xx de
// métodos de escrita. Deve vir depois de Authenticate.
func (m *AuditoriaMiddleware) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		acao, escrita := acoesPorMetodo[c.Request.Method]
		if !escrita {
			return
		}
		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}

		entidade := entidadeDoCaminho(c.Request.URL.Path)
		if entidade == "" {
			return
		}

		m.servico.Registrar(
			c.Request.Context(),
			entidade,
			c.Param("id"),
			acao,
			c.GetString(ContextoUsuarioID),
			c.ClientIP(),
		)
	}
}

// entidadeDoCaminho extrai o primeiro segmento depois do prefixo da API
func entidadeDoCaminho(caminho string) string {
	const prefixo = "/api/v1/"
	if !strings.HasPrefix(caminho, prefixo) {
		return ""
	}

	resto := strings.TrimPrefix(caminho, prefixo)
	if i := strings.IndexByte(resto, '/'); i >= 0 {
		resto = resto[:i]
	}
	return resto
}
