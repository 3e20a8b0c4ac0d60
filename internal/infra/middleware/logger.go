package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoggingMiddleware registra cada requisição processada
type LoggingMiddleware struct {
	logger *zap.Logger
}

// NewLoggingMiddleware cria o middleware de log de requisições
func NewLoggingMiddleware(logger *zap.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{logger: logger}
}

// Middleware registra método, caminho, status e duração
func (m *LoggingMiddleware) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		inicio := time.Now()
		caminho := c.Request.URL.Path

		c.Next()

		campos := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", caminho),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(inicio)),
			zap.String("client_ip", c.ClientIP()),
		}
		if usuarioID := c.GetString(ContextoUsuarioID); usuarioID != "" {
			campos = append(campos, zap.String("usuario_id", usuarioID))
		}

		switch {
		case c.Writer.Status() >= 500:
			m.logger.Error("requisição processada", campos...)
		case c.Writer.Status() >= 400:
			m.logger.Warn("requisição processada", campos...)
		default:
			m.logger.Info("requisição processada", campos...)
		}
	}
}
