package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jairomfjr/patrimonio-sub001/pkg/ratelimit"
	"go.uber.org/zap"
)

// RateLimitMiddleware limita tentativas por IP em rotas sensíveis
type RateLimitMiddleware struct {
	limiter *ratelimit.RedisLimiter
	logger  *zap.Logger
}

// NewRateLimitMiddleware cria o middleware de rate limit
func NewRateLimitMiddleware(limiter *ratelimit.RedisLimiter, logger *zap.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter, logger: logger}
}

// LimitarPorIP aplica a janela de tentativas por IP de origem. Falha do
// Redis não bloqueia a requisição.
func (m *RateLimitMiddleware) LimitarPorIP(nome string, limite int, periodo time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		permitido, restante, reset, err := m.limiter.Allow(c.Request.Context(), ratelimit.LimitConfig{
			Key:    nome + ":" + c.ClientIP(),
			Limit:  limite,
			Period: periodo,
		})
		if err != nil {
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limite))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(restante))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(int64(reset.Seconds()), 10))

		if !permitido {
			m.logger.Warn("limite de tentativas excedido",
				zap.String("rota", nome),
				zap.String("client_ip", c.ClientIP()))
			abortarComErro(c, 429, "RATE_LIMITED", "muitas tentativas, aguarde antes de tentar novamente")
			return
		}

		c.Next()
	}
}
