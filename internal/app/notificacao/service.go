package notificacao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/model"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/repository"
	"github.com/jairomfjr/patrimonio-sub001/internal/infra/metrics"
	"github.com/jairomfjr/patrimonio-sub001/pkg/apierror"
	"github.com/jairomfjr/patrimonio-sub001/pkg/pagination"
	"go.uber.org/zap"
)

// Service concentra as regras de negócio de notificações. O serviço só
// registra e consulta avisos; nenhum motor de entrega roda aqui.
type Service struct {
	notificacoes repository.NotificacaoRepository
	usuarios     repository.UsuarioRepository
	metricas     *metrics.Metricas
	logger       *zap.Logger
}

// NewService cria o serviço de notificações
func NewService(
	notificacoes repository.NotificacaoRepository,
	usuarios repository.UsuarioRepository,
	metricas *metrics.Metricas,
	logger *zap.Logger,
) *Service {
	return &Service{
		notificacoes: notificacoes,
		usuarios:     usuarios,
		metricas:     metricas,
		logger:       logger,
	}
}

// NovaNotificacao reúne os dados de criação de uma notificação
type NovaNotificacao struct {
	UsuarioID    string
	Tipo         string
	Categoria    string
	Prioridade   int
	Titulo       string
	Mensagem     string
	CanalEmail   bool
	CanalSistema bool
}

// Criar registra uma notificação para um usuário existente
func (s *Service) Criar(ctx context.Context, nova NovaNotificacao) (*model.Notificacao, error) {
	if nova.Titulo == "" {
		return nil, apierror.Validation("título da notificação é obrigatório", nil).WithField("titulo", "obrigatório")
	}
	if nova.Tipo == "" {
		return nil, apierror.Validation("tipo da notificação é obrigatório", nil).WithField("tipo", "obrigatório")
	}

	if _, err := s.usuarios.BuscarPorID(ctx, nova.UsuarioID); err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return nil, apierror.NotFound("usuário", err)
		}
		return nil, apierror.Internal(err)
	}

	agora := time.Now()
	notificacao := &model.Notificacao{
		ID:           uuid.New().String(),
		UsuarioID:    nova.UsuarioID,
		Tipo:         nova.Tipo,
		Categoria:    nova.Categoria,
		Prioridade:   nova.Prioridade,
		Titulo:       nova.Titulo,
		Mensagem:     nova.Mensagem,
		EnviadaEm:    &agora,
		CanalEmail:   nova.CanalEmail,
		CanalSistema: nova.CanalSistema || !nova.CanalEmail,
	}

	if err := s.notificacoes.Criar(ctx, notificacao); err != nil {
		return nil, apierror.Internal(err)
	}

	if s.metricas != nil {
		s.metricas.NotificacaoCriada()
	}

	s.logger.Info("notificação criada",
		zap.String("id", notificacao.ID),
		zap.String("usuario_id", nova.UsuarioID))
	return notificacao, nil
}

// BuscarPorID obtém uma notificação pelo identificador
func (s *Service) BuscarPorID(ctx context.Context, id string) (*model.Notificacao, error) {
	notificacao, err := s.notificacoes.BuscarPorID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return nil, apierror.NotFound("notificação", err)
		}
		return nil, apierror.Internal(err)
	}
	return notificacao, nil
}

// Pesquisar retorna a página de notificações que satisfaz o filtro
func (s *Service) Pesquisar(ctx context.Context, filtro repository.FiltroNotificacoes, pagina pagination.Pagina) (*pagination.Resultado[*model.Notificacao], error) {
	notificacoes, total, err := s.notificacoes.Pesquisar(ctx, filtro, pagina)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	return pagination.NovoResultado(notificacoes, total, pagina), nil
}

// MarcarLida marca a notificação como lida. Só o destinatário pode marcar.
func (s *Service) MarcarLida(ctx context.Context, id, usuarioID string) error {
	notificacao, err := s.BuscarPorID(ctx, id)
	if err != nil {
		return err
	}

	if notificacao.UsuarioID != usuarioID {
		return apierror.Forbidden("notificação pertence a outro usuário", nil)
	}
	if notificacao.Lida {
		return nil
	}

	if err := s.notificacoes.MarcarLida(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return apierror.NotFound("notificação", err)
		}
		return apierror.Internal(err)
	}
	return nil
}

// MarcarTodasLidas marca todas as notificações do usuário e retorna o total
func (s *Service) MarcarTodasLidas(ctx context.Context, usuarioID string) (int64, error) {
	total, err := s.notificacoes.MarcarTodasLidas(ctx, usuarioID)
	if err != nil {
		return 0, apierror.Internal(err)
	}
	return total, nil
}

// ContarNaoLidas retorna o total de notificações não lidas do usuário
func (s *Service) ContarNaoLidas(ctx context.Context, usuarioID string) (int64, error) {
	total, err := s.notificacoes.ContarNaoLidas(ctx, usuarioID)
	if err != nil {
		return 0, apierror.Internal(err)
	}
	return total, nil
}
