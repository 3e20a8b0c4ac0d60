package auditoria

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/model"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/repository"
	"github.com/jairomfjr/patrimonio-sub001/internal/infra/metrics"
	"github.com/jairomfjr/patrimonio-sub001/pkg/apierror"
	"github.com/jairomfjr/patrimonio-sub001/pkg/pagination"
	"go.uber.org/zap"
)

// Service registra e consulta a trilha de auditoria. A trilha é
// append-only; falha ao gravar nunca derruba a operação auditada.
type Service struct {
	registros repository.AuditoriaRepository
	metricas  *metrics.Metricas
	logger    *zap.Logger
}

// NewService cria o serviço de auditoria
func NewService(registros repository.AuditoriaRepository, metricas *metrics.Metricas, logger *zap.Logger) *Service {
	return &Service{
		registros: registros,
		metricas:  metricas,
		logger:    logger,
	}
}

// Registrar grava um evento na trilha. Erros são logados e absorvidos.
func (s *Service) Registrar(ctx context.Context, entidade, entidadeID, acao, usuarioID, enderecoIP string) {
	registro := &model.RegistroAuditoria{
		ID:         uuid.New().String(),
		Entidade:   entidade,
		EntidadeID: entidadeID,
		Acao:       acao,
		UsuarioID:  usuarioID,
		EnderecoIP: enderecoIP,
		DataHora:   time.Now(),
	}

	if err := s.registros.Criar(ctx, registro); err != nil {
		s.logger.Error("falha ao gravar trilha de auditoria",
			zap.String("entidade", entidade),
			zap.String("acao", acao),
			zap.Error(err))
		return
	}

	if s.metricas != nil {
		s.metricas.AuditoriaRegistrada()
	}
}

// Pesquisar retorna a página de registros que satisfaz o filtro
func (s *Service) Pesquisar(ctx context.Context, filtro repository.FiltroAuditoria, pagina pagination.Pagina) (*pagination.Resultado[*model.RegistroAuditoria], error) {
	registros, total, err := s.registros.Pesquisar(ctx, filtro, pagina)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	return pagination.NovoResultado(registros, total, pagina), nil
}
