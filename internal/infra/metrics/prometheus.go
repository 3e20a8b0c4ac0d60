package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metricas gerencia as métricas expostas pelo serviço
type Metricas struct {
	contadorRequisicoes  *prometheus.CounterVec
	duracaoRequisicoes   *prometheus.HistogramVec
	requisicoesAtivas    *prometheus.GaugeVec
	errosTotal           *prometheus.CounterVec
	bensPorStatus        *prometheus.GaugeVec
	valorPatrimonial     prometheus.Gauge
	taxaAcertoCache      *prometheus.GaugeVec
	registrosAuditoria   prometheus.Counter
	notificacoesCriadas  prometheus.Counter
}

var (
	// DefaultRegistry é o registro padrão para métricas
	DefaultRegistry = prometheus.NewRegistry()
	// DefaultRegisterer é o registrador padrão para métricas
	DefaultRegisterer = prometheus.WrapRegistererWith(nil, DefaultRegistry)
	// Fábrica para criar métricas automaticamente
	factory = promauto.With(DefaultRegisterer)
)

// NewMetricas cria e registra as métricas do prometheus
func NewMetricas() *Metricas {
	return &Metricas{
		contadorRequisicoes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "patrimonio_requests_total",
				Help: "Total number of HTTP requests by path, method, and status code",
			},
			[]string{"path", "method", "status"},
		),

		duracaoRequisicoes: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "patrimonio_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "method"},
		),

		requisicoesAtivas: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "patrimonio_active_requests",
				Help: "Number of in-flight requests being processed",
			},
			[]string{"path", "method"},
		),

		errosTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "patrimonio_errors_total",
				Help: "Total number of errors by type",
			},
			[]string{"path", "method", "error_type"},
		),

		bensPorStatus: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "patrimonio_bens_por_status",
				Help: "Number of assets in each registry status",
			},
			[]string{"status"},
		),

		valorPatrimonial: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "patrimonio_valor_aquisicao_total",
				Help: "Sum of acquisition value of active assets",
			},
		),

		taxaAcertoCache: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "patrimonio_cache_hit_ratio",
				Help: "Cache hit ratio (0.0 to 1.0)",
			},
			[]string{"cache_type"},
		),

		registrosAuditoria: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "patrimonio_auditoria_registros_total",
				Help: "Total number of audit records written",
			},
		),

		notificacoesCriadas: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "patrimonio_notificacoes_criadas_total",
				Help: "Total number of notifications created",
			},
		),
	}
}

// RequisicaoIniciada registra o início de uma requisição
func (m *Metricas) RequisicaoIniciada(path, method string) {
	m.requisicoesAtivas.WithLabelValues(path, method).Inc()
}

// RequisicaoConcluida registra a conclusão de uma requisição
func (m *Metricas) RequisicaoConcluida(path, method, status string, duracao time.Duration) {
	m.contadorRequisicoes.WithLabelValues(path, method, status).Inc()
	m.duracaoRequisicoes.WithLabelValues(path, method).Observe(duracao.Seconds())
	m.requisicoesAtivas.WithLabelValues(path, method).Dec()
}

// ErroRequisicao registra um erro de requisição
func (m *Metricas) ErroRequisicao(path, method, tipoErro string) {
	m.errosTotal.WithLabelValues(path, method, tipoErro).Inc()
}

// AtualizarBensPorStatus atualiza o total de bens no status
func (m *Metricas) AtualizarBensPorStatus(status string, total int64) {
	m.bensPorStatus.WithLabelValues(status).Set(float64(total))
}

// AtualizarValorPatrimonial atualiza a soma do valor de aquisição
func (m *Metricas) AtualizarValorPatrimonial(valor float64) {
	m.valorPatrimonial.Set(valor)
}

// AtualizarTaxaAcertoCache atualiza a taxa de acertos do cache
func (m *Metricas) AtualizarTaxaAcertoCache(tipoCache string, taxa float64) {
	m.taxaAcertoCache.WithLabelValues(tipoCache).Set(taxa)
}

// AuditoriaRegistrada incrementa o contador de registros de auditoria
func (m *Metricas) AuditoriaRegistrada() {
	m.registrosAuditoria.Inc()
}

// NotificacaoCriada incrementa o contador de notificações criadas
func (m *Metricas) NotificacaoCriada() {
	m.notificacoesCriadas.Inc()
}
