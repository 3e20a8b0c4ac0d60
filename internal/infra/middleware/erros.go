package middleware

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jairomfjr/patrimonio-sub001/pkg/apierror"
	"go.uber.org/zap"
)

// RespostaErro é o envelope uniforme de erro da API
type RespostaErro struct {
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Path      string            `json:"path"`
	Timestamp string            `json:"timestamp"`
	Fields    map[string]string `json:"fields,omitempty"`
}

// ErrorMiddleware traduz erros acumulados no contexto para o envelope
// uniforme. Handlers registram erros com c.Error e não escrevem resposta.
type ErrorMiddleware struct {
	logger *zap.Logger
}

// NewErrorMiddleware cria o middleware de tradução de erros
func NewErrorMiddleware(logger *zap.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// Middleware escreve o envelope de erro quando o handler registrou algum
func (m *ErrorMiddleware) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		kind := apierror.KindOf(err)
		status := kind.HTTPStatus()

		mensagem := err.Error()
		var fields map[string]string
		var apiErr *apierror.APIError
		if errors.As(err, &apiErr) {
			mensagem = apiErr.Message
			fields = apiErr.Fields
		}

		if kind == apierror.KindInternal {
			m.logger.Error("erro interno na requisição",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
				zap.Error(err))
			// detalhes internos nunca chegam ao cliente
			mensagem = "erro interno do servidor"
		}

		c.JSON(status, RespostaErro{
			Status:    status,
			Error:     string(kind),
			Message:   mensagem,
			Path:      c.Request.URL.Path,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Fields:    fields,
		})
	}
}

// abortarComErro escreve o envelope diretamente, para middlewares que
// interrompem a cadeia antes do tradutor
func abortarComErro(c *gin.Context, status int, codigo, mensagem string) {
	c.AbortWithStatusJSON(status, RespostaErro{
		Status:    status,
		Error:     codigo,
		Message:   mensagem,
		Path:      c.Request.URL.Path,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
