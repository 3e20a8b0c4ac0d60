package movimentacao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/model"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/repository"
	"github.com/jairomfjr/patrimonio-sub001/pkg/apierror"
	"github.com/jairomfjr/patrimonio-sub001/pkg/pagination"
	"go.uber.org/zap"
)

// Service concentra as regras de negócio de movimentações. Cada registro é
// imutável; a localização corrente do bem acompanha o destino da última
// movimentação.
type Service struct {
	movimentacoes repository.MovimentacaoRepository
	bens          repository.BemRepository
	localizacoes  repository.LocalizacaoRepository
	logger        *zap.Logger
}

// NewService cria o serviço de movimentações
func NewService(
	movimentacoes repository.MovimentacaoRepository,
	bens repository.BemRepository,
	localizacoes repository.LocalizacaoRepository,
	logger *zap.Logger,
) *Service {
	return &Service{
		movimentacoes: movimentacoes,
		bens:          bens,
		localizacoes:  localizacoes,
		logger:        logger,
	}
}

// NovaMovimentacao reúne os dados de registro de uma movimentação
type NovaMovimentacao struct {
	BemID       string
	Tipo        model.TipoMovimentacao
	DestinoID   string
	Responsavel string
	Observacoes string
	DataHora    time.Time
}

// Registrar grava uma movimentação e atualiza a localização do bem.
// A origem é sempre a localização corrente do bem; em entradas ela fica
// nula quando o bem ainda não tinha localização.
func (s *Service) Registrar(ctx context.Context, nova NovaMovimentacao) (*model.Movimentacao, error) {
	if nova.DestinoID == "" {
		return nil, apierror.Validation("destino da movimentação é obrigatório", nil).WithField("destinoId", "obrigatório")
	}

	bem, err := s.bens.BuscarPorID(ctx, nova.BemID)
	if err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return nil, apierror.BemNaoEncontrado(nova.BemID)
		}
		return nil, apierror.Internal(err)
	}

	if bem.Status.Terminal() {
		return nil, apierror.BusinessRule("bem baixado não pode ser movimentado", nil)
	}

	if _, err := s.localizacoes.BuscarPorID(ctx, nova.DestinoID); err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return nil, apierror.LocalizacaoNaoEncontrada(nova.DestinoID)
		}
		return nil, apierror.Internal(err)
	}

	if nova.Tipo.Transferencia() && bem.LocalizacaoID == nova.DestinoID {
		return nil, apierror.BusinessRule("transferência exige destino diferente da localização atual", nil)
	}

	dataHora := nova.DataHora
	if dataHora.IsZero() {
		dataHora = time.Now()
	}

	var origem *string
	if bem.LocalizacaoID != "" {
		atual := bem.LocalizacaoID
		origem = &atual
	}

	movimentacao := &model.Movimentacao{
		ID:          uuid.New().String(),
		BemID:       bem.ID,
		Tipo:        nova.Tipo,
		OrigemID:    origem,
		DestinoID:   nova.DestinoID,
		Responsavel: nova.Responsavel,
		Observacoes: nova.Observacoes,
		DataHora:    dataHora,
	}

	if err := s.movimentacoes.Criar(ctx, movimentacao); err != nil {
		return nil, apierror.Internal(err)
	}

	bem.LocalizacaoID = nova.DestinoID
	if err := s.bens.Atualizar(ctx, bem); err != nil {
		s.logger.Error("movimentação registrada mas bem não atualizado",
			zap.String("movimentacao_id", movimentacao.ID),
			zap.String("bem_id", bem.ID),
			zap.Error(err))
		return nil, apierror.Internal(err)
	}

	s.logger.Info("movimentação registrada",
		zap.String("id", movimentacao.ID),
		zap.String("bem_id", bem.ID),
		zap.String("tipo", string(nova.Tipo)))
	return movimentacao, nil
}

// BuscarPorID obtém uma movimentação pelo identificador
func (s *Service) BuscarPorID(ctx context.Context, id string) (*model.Movimentacao, error) {
	movimentacao, err := s.movimentacoes.BuscarPorID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return nil, apierror.NotFound("movimentação", err)
		}
		return nil, apierror.Internal(err)
	}
	return movimentacao, nil
}

// Pesquisar retorna a página de movimentações que satisfaz o filtro
func (s *Service) Pesquisar(ctx context.Context, filtro repository.FiltroMovimentacoes, pagina pagination.Pagina) (*pagination.Resultado[*model.Movimentacao], error) {
	movimentacoes, total, err := s.movimentacoes.Pesquisar(ctx, filtro, pagina)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	return pagination.NovoResultado(movimentacoes, total, pagina), nil
}

// HistoricoDoBem retorna as movimentações de um bem, da mais recente
func (s *Service) HistoricoDoBem(ctx context.Context, bemID string, pagina pagination.Pagina) (*pagination.Resultado[*model.Movimentacao], error) {
	if _, err := s.bens.BuscarPorID(ctx, bemID); err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return nil, apierror.BemNaoEncontrado(bemID)
		}
		return nil, apierror.Internal(err)
	}

	filtro := repository.FiltroMovimentacoes{BemID: &bemID}
	return s.Pesquisar(ctx, filtro, pagina)
}
