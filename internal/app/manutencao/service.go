package manutencao

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

// Service concentra as regras de negócio de manutenções
type Service struct {
	manutencoes repository.ManutencaoRepository
	bens        repository.BemRepository
	logger      *zap.Logger
}

// NewService cria o serviço de manutenções
func NewService(
	manutencoes repository.ManutencaoRepository,
	bens repository.BemRepository,
	logger *zap.Logger,
) *Service {
	return &Service{
		manutencoes: manutencoes,
		bens:        bens,
		logger:      logger,
	}
}

// NovaManutencao reúne os dados de agendamento de uma manutenção
type NovaManutencao struct {
	BemID            string
	Tipo             model.TipoManutencao
	DataAgendada     *time.Time
	Responsavel      string
	Fornecedor       string
	Custo            float64
	Prioridade       int
	DescricaoServico string
}

// Agendar registra uma manutenção no status AGENDADA
func (s *Service) Agendar(ctx context.Context, nova NovaManutencao) (*model.Manutencao, error) {
	if nova.Custo < 0 {
		return nil, apierror.Validation("custo não pode ser negativo", nil).WithField("custo", "não pode ser negativo")
	}

	bem, err := s.bens.BuscarPorID(ctx, nova.BemID)
	if err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return nil, apierror.BemNaoEncontrado(nova.BemID)
		}
		return nil, apierror.Internal(err)
	}

	if bem.Status.Terminal() {
		return nil, apierror.BusinessRule("bem baixado não pode receber manutenção", nil)
	}

	manutencao := &model.Manutencao{
		ID:               uuid.New().String(),
		BemID:            bem.ID,
		Status:           model.ManutencaoAgendada,
		Tipo:             nova.Tipo,
		DataAgendada:     nova.DataAgendada,
		Responsavel:      nova.Responsavel,
		Fornecedor:       nova.Fornecedor,
		Custo:            nova.Custo,
		Prioridade:       nova.Prioridade,
		DescricaoServico: nova.DescricaoServico,
	}

	if err := s.manutencoes.Criar(ctx, manutencao); err != nil {
		return nil, apierror.Internal(err)
	}

	s.logger.Info("manutenção agendada",
		zap.String("id", manutencao.ID),
		zap.String("bem_id", bem.ID))
	return manutencao, nil
}

// BuscarPorID obtém uma manutenção pelo identificador
func (s *Service) BuscarPorID(ctx context.Context, id string) (*model.Manutencao, error) {
	manutencao, err := s.manutencoes.BuscarPorID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return nil, apierror.NotFound("manutenção", err)
		}
		return nil, apierror.Internal(err)
	}
	return manutencao, nil
}

// Pesquisar retorna a página de manutenções que satisfaz o filtro
func (s *Service) Pesquisar(ctx context.Context, filtro repository.FiltroManutencoes, pagina pagination.Pagina) (*pagination.Resultado[*model.Manutencao], error) {
	manutencoes, total, err := s.manutencoes.Pesquisar(ctx, filtro, pagina)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	return pagination.NovoResultado(manutencoes, total, pagina), nil
}

// Atualizar altera os dados de uma manutenção não finalizada
func (s *Service) Atualizar(ctx context.Context, id string, dados NovaManutencao) (*model.Manutencao, error) {
	manutencao, err := s.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}

	if manutencao.Status.Finalizada() {
		return nil, apierror.BusinessRule("manutenção finalizada não pode ser alterada", nil)
	}
	if dados.Custo < 0 {
		return nil, apierror.Validation("custo não pode ser negativo", nil).WithField("custo", "não pode ser negativo")
	}

	manutencao.Tipo = dados.Tipo
	manutencao.DataAgendada = dados.DataAgendada
	manutencao.Responsavel = dados.Responsavel
	manutencao.Fornecedor = dados.Fornecedor
	manutencao.Custo = dados.Custo
	manutencao.Prioridade = dados.Prioridade
	manutencao.DescricaoServico = dados.DescricaoServico

	if err := s.manutencoes.Atualizar(ctx, manutencao); err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return nil, apierror.NotFound("manutenção", err)
		}
		return nil, apierror.Internal(err)
	}
	return manutencao, nil
}

// Iniciar coloca a manutenção em execução e o bem em EM_MANUTENCAO
func (s *Service) Iniciar(ctx context.Context, id string) (*model.Manutencao, error) {
	manutencao, err := s.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}

	if manutencao.Status != model.ManutencaoAgendada && manutencao.Status != model.ManutencaoAguardandoPecas {
		return nil, apierror.BusinessRule("só manutenções agendadas ou aguardando peças podem ser iniciadas", nil)
	}

	agora := time.Now()
	manutencao.Status = model.ManutencaoEmAndamento
	if manutencao.DataInicio == nil {
		manutencao.DataInicio = &agora
	}

	if err := s.manutencoes.Atualizar(ctx, manutencao); err != nil {
		return nil, apierror.Internal(err)
	}

	if err := s.moverBemParaStatus(ctx, manutencao.BemID, model.StatusEmManutencao); err != nil {
		s.logger.Warn("manutenção iniciada mas status do bem não alterado",
			zap.String("manutencao_id", id),
			zap.Error(err))
	}

	return manutencao, nil
}

// Suspender marca a manutenção como aguardando peças
func (s *Service) Suspender(ctx context.Context, id string) (*model.Manutencao, error) {
	manutencao, err := s.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}

	if manutencao.Status != model.ManutencaoEmAndamento {
		return nil, apierror.BusinessRule("só manutenções em andamento podem ser suspensas", nil)
	}

	manutencao.Status = model.ManutencaoAguardandoPecas
	if err := s.manutencoes.Atualizar(ctx, manutencao); err != nil {
		return nil, apierror.Internal(err)
	}
	return manutencao, nil
}

// Concluir encerra a manutenção e devolve o bem ao status ATIVO
func (s *Service) Concluir(ctx context.Context, id string, custoFinal *float64) (*model.Manutencao, error) {
	manutencao, err := s.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}

	if manutencao.Status.Finalizada() {
		return nil, apierror.BusinessRule("manutenção já finalizada", nil)
	}

	agora := time.Now()
	manutencao.Status = model.ManutencaoConcluida
	manutencao.DataFim = &agora
	if custoFinal != nil {
		if *custoFinal < 0 {
			return nil, apierror.Validation("custo não pode ser negativo", nil).WithField("custo", "não pode ser negativo")
		}
		manutencao.Custo = *custoFinal
	}

	if err := s.manutencoes.Atualizar(ctx, manutencao); err != nil {
		return nil, apierror.Internal(err)
	}

	if err := s.moverBemParaStatus(ctx, manutencao.BemID, model.StatusAtivo); err != nil {
		s.logger.Warn("manutenção concluída mas status do bem não alterado",
			zap.String("manutencao_id", id),
			zap.Error(err))
	}

	s.logger.Info("manutenção concluída", zap.String("id", id))
	return manutencao, nil
}

// Cancelar encerra a manutenção sem execução
func (s *Service) Cancelar(ctx context.Context, id string) (*model.Manutencao, error) {
	manutencao, err := s.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}

	if manutencao.Status.Finalizada() {
		return nil, apierror.BusinessRule("manutenção já finalizada", nil)
	}

	emAndamento := manutencao.Status == model.ManutencaoEmAndamento ||
		manutencao.Status == model.ManutencaoAguardandoPecas

	manutencao.Status = model.ManutencaoCancelada
	if err := s.manutencoes.Atualizar(ctx, manutencao); err != nil {
		return nil, apierror.Internal(err)
	}

	// O bem só volta a ATIVO se esta manutenção era o motivo do afastamento
	if emAndamento {
		if err := s.moverBemParaStatus(ctx, manutencao.BemID, model.StatusAtivo); err != nil {
			s.logger.Warn("manutenção cancelada mas status do bem não alterado",
				zap.String("manutencao_id", id),
				zap.Error(err))
		}
	}

	return manutencao, nil
}

// CustoTotal soma o custo das manutenções que satisfazem o filtro
func (s *Service) CustoTotal(ctx context.Context, filtro repository.FiltroManutencoes) (float64, error) {
	custo, err := s.manutencoes.SomarCusto(ctx, filtro)
	if err != nil {
		return 0, apierror.Internal(err)
	}
	return custo, nil
}

func (s *Service) moverBemParaStatus(ctx context.Context, bemID string, destino model.StatusBem) error {
	bem, err := s.bens.BuscarPorID(ctx, bemID)
	if err != nil {
		return err
	}
	if bem.Status == destino || !bem.Status.PodeTransicionarPara(destino) {
		return nil
	}

	bem.Status = destino
	bem.Ativo = destino != model.StatusInativo && destino != model.StatusBaixado
	return s.bens.Atualizar(ctx, bem)
}
