package baixa

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

// Service concentra as regras de negócio de baixas patrimoniais. Um bem
// tem no máximo uma baixa ativa; registrar a baixa leva o bem ao status
// terminal BAIXADO.
type Service struct {
	baixas repository.BaixaRepository
	bens   repository.BemRepository
	logger *zap.Logger
}

// NewService cria o serviço de baixas
func NewService(
	baixas repository.BaixaRepository,
	bens repository.BemRepository,
	logger *zap.Logger,
) *Service {
	return &Service{
		baixas: baixas,
		bens:   bens,
		logger: logger,
	}
}

// NovaBaixa reúne os dados de registro de uma baixa
type NovaBaixa struct {
	BemID         string
	Data          time.Time
	Motivo        string
	ValorResidual float64
	ProcessoAdm   string
}

// Registrar grava a baixa e leva o bem ao status BAIXADO
func (s *Service) Registrar(ctx context.Context, nova NovaBaixa) (*model.Baixa, error) {
	if nova.Motivo == "" {
		return nil, apierror.Validation("motivo da baixa é obrigatório", nil).WithField("motivo", "obrigatório")
	}
	if nova.ValorResidual < 0 {
		return nil, apierror.Validation("valor residual não pode ser negativo", nil).WithField("valorResidual", "não pode ser negativo")
	}

	bem, err := s.bens.BuscarPorID(ctx, nova.BemID)
	if err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return nil, apierror.BemNaoEncontrado(nova.BemID)
		}
		return nil, apierror.Internal(err)
	}

	if bem.Status.Terminal() {
		return nil, apierror.BaixaJaAtiva(bem.ID)
	}
	if !bem.Status.PodeTransicionarPara(model.StatusBaixado) {
		return nil, apierror.TransicaoStatusInvalida(string(bem.Status), string(model.StatusBaixado))
	}

	if _, err := s.baixas.BuscarAtivaPorBem(ctx, bem.ID); err == nil {
		return nil, apierror.BaixaJaAtiva(bem.ID)
	} else if !errors.Is(err, repository.ErrNaoEncontrado) {
		return nil, apierror.Internal(err)
	}

	data := nova.Data
	if data.IsZero() {
		data = time.Now()
	}

	baixa := &model.Baixa{
		ID:            uuid.New().String(),
		BemID:         bem.ID,
		Data:          data,
		Motivo:        nova.Motivo,
		ValorResidual: nova.ValorResidual,
		ProcessoAdm:   nova.ProcessoAdm,
	}

	if err := s.baixas.Criar(ctx, baixa); err != nil {
		return nil, apierror.Internal(err)
	}

	bem.Status = model.StatusBaixado
	bem.Ativo = false
	if err := s.bens.Atualizar(ctx, bem); err != nil {
		s.logger.Error("baixa registrada mas bem não atualizado",
			zap.String("baixa_id", baixa.ID),
			zap.String("bem_id", bem.ID),
			zap.Error(err))
		return nil, apierror.Internal(err)
	}

	s.logger.Info("baixa registrada",
		zap.String("id", baixa.ID),
		zap.String("bem_id", bem.ID))
	return baixa, nil
}

// BuscarPorID obtém uma baixa pelo identificador
func (s *Service) BuscarPorID(ctx context.Context, id string) (*model.Baixa, error) {
	baixa, err := s.baixas.BuscarPorID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return nil, apierror.NotFound("baixa", err)
		}
		return nil, apierror.Internal(err)
	}
	return baixa, nil
}

// Pesquisar retorna a página de baixas que satisfaz o filtro
func (s *Service) Pesquisar(ctx context.Context, filtro repository.FiltroBaixas, pagina pagination.Pagina) (*pagination.Resultado[*model.Baixa], error) {
	baixas, total, err := s.baixas.Pesquisar(ctx, filtro, pagina)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	return pagination.NovoResultado(baixas, total, pagina), nil
}

// Aprovar registra a aprovação administrativa da baixa
func (s *Service) Aprovar(ctx context.Context, id string) (*model.Baixa, error) {
	baixa, err := s.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}

	if baixa.Cancelada {
		return nil, apierror.BusinessRule("baixa cancelada não pode ser aprovada", nil)
	}
	if baixa.DataAprovacao != nil {
		return nil, apierror.BusinessRule("baixa já aprovada", nil)
	}

	agora := time.Now()
	baixa.DataAprovacao = &agora

	if err := s.baixas.Atualizar(ctx, baixa); err != nil {
		return nil, apierror.Internal(err)
	}
	return baixa, nil
}

// RegistrarVenda grava os dados de venda do bem baixado
func (s *Service) RegistrarVenda(ctx context.Context, id string, valorVenda float64, comprador string, dataVenda time.Time) (*model.Baixa, error) {
	baixa, err := s.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}

	if baixa.Cancelada {
		return nil, apierror.BusinessRule("baixa cancelada não admite venda", nil)
	}
	if valorVenda < 0 {
		return nil, apierror.Validation("valor de venda não pode ser negativo", nil).WithField("valorVenda", "não pode ser negativo")
	}

	if dataVenda.IsZero() {
		dataVenda = time.Now()
	}
	baixa.ValorVenda = &valorVenda
	baixa.Comprador = comprador
	baixa.DataVenda = &dataVenda

	if err := s.baixas.Atualizar(ctx, baixa); err != nil {
		return nil, apierror.Internal(err)
	}
	return baixa, nil
}

// Cancelar desfaz a baixa. É a única saída do status BAIXADO; o bem volta
// a INATIVO para reativação explícita.
func (s *Service) Cancelar(ctx context.Context, id string) (*model.Baixa, error) {
	baixa, err := s.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}

	if baixa.Cancelada {
		return nil, apierror.BusinessRule("baixa já cancelada", nil)
	}

	baixa.Cancelada = true
	if err := s.baixas.Atualizar(ctx, baixa); err != nil {
		return nil, apierror.Internal(err)
	}

	bem, err := s.bens.BuscarPorID(ctx, baixa.BemID)
	if err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			// bem já saiu do cadastro; a baixa fica apenas cancelada
			return baixa, nil
		}
		return nil, apierror.Internal(err)
	}

	bem.Status = model.StatusInativo
	bem.Ativo = false
	if err := s.bens.Atualizar(ctx, bem); err != nil {
		return nil, apierror.Internal(err)
	}

	s.logger.Info("baixa cancelada",
		zap.String("id", id),
		zap.String("bem_id", baixa.BemID))
	return baixa, nil
}
