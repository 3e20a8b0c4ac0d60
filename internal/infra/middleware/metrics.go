package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jairomfjr/patrimonio-sub001/internal/infra/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// MetricsMiddleware coleta métricas por requisição
type MetricsMiddleware struct {
	metricas *metrics.Metricas
	logger   *zap.Logger
}

// NewMetricsMiddleware cria o middleware de métricas
func NewMetricsMiddleware(metricas *metrics.Metricas, logger *zap.Logger) *MetricsMiddleware {
	return &MetricsMiddleware{
		metricas: metricas,
		logger:   logger,
	}
}

// Middleware registra contagem, duração e erros de cada requisição
func (m *MetricsMiddleware) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}
		method := c.Request.Method

		m.metricas.RequisicaoIniciada(path, method)
		inicio := time.Now()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		m.metricas.RequisicaoConcluida(path, method, status, time.Since(inicio))

		if c.Writer.Status() >= 400 {
			tipoErro := "client_error"
			if c.Writer.Status() >= 500 {
				tipoErro = "server_error"
			}
			m.metricas.ErroRequisicao(path, method, tipoErro)
		}
	}
}

// RegisterEndpoint expõe as métricas do Prometheus em /metrics
func (m *MetricsMiddleware) RegisterEndpoint(router *gin.Engine) {
	handler := promhttp.HandlerFor(metrics.DefaultRegistry, promhttp.HandlerOpts{})
	router.GET("/metrics", gin.WrapH(handler))
	m.logger.Info("endpoint de métricas registrado em /metrics")
}
