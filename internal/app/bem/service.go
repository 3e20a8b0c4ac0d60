package bem

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

// Service concentra as regras de negócio do cadastro de bens
type Service struct {
	bens         repository.BemRepository
	categorias   repository.CategoriaRepository
	localizacoes repository.LocalizacaoRepository
	metricas     *metrics.Metricas
	logger       *zap.Logger
}

// NewService cria o serviço de bens
func NewService(
	bens repository.BemRepository,
	categorias repository.CategoriaRepository,
	localizacoes repository.LocalizacaoRepository,
	metricas *metrics.Metricas,
	logger *zap.Logger,
) *Service {
	return &Service{
		bens:         bens,
		categorias:   categorias,
		localizacoes: localizacoes,
		metricas:     metricas,
		logger:       logger,
	}
}

// NovoBem reúne os dados de cadastro de um bem
type NovoBem struct {
	Nome              string
	NumeroSerie       string
	Descricao         string
	DataAquisicao     time.Time
	ValorAquisicao    float64
	EstadoConservacao model.EstadoConservacao
	CategoriaID       string
	LocalizacaoID     string
}

// validarReferencias garante que categoria e localização existem antes de
// qualquer escrita
func (s *Service) validarReferencias(ctx context.Context, categoriaID, localizacaoID string) error {
	if _, err := s.categorias.BuscarPorID(ctx, categoriaID); err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return apierror.CategoriaNaoEncontrada(categoriaID)
		}
		return apierror.Internal(err)
	}

	if _, err := s.localizacoes.BuscarPorID(ctx, localizacaoID); err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return apierror.LocalizacaoNaoEncontrada(localizacaoID)
		}
		return apierror.Internal(err)
	}
	return nil
}

// Criar cadastra um novo bem. O bem nasce ATIVO; número de série é único.
func (s *Service) Criar(ctx context.Context, novo NovoBem) (*model.Bem, error) {
	if novo.Nome == "" {
		return nil, apierror.Validation("nome do bem é obrigatório", nil).WithField("nome", "obrigatório")
	}
	if novo.NumeroSerie == "" {
		return nil, apierror.Validation("número de série é obrigatório", nil).WithField("numeroSerie", "obrigatório")
	}
	if novo.ValorAquisicao < 0 {
		return nil, apierror.Validation("valor de aquisição não pode ser negativo", nil).WithField("valorAquisicao", "não pode ser negativo")
	}

	existe, err := s.bens.ExisteNumeroSerie(ctx, novo.NumeroSerie, "")
	if err != nil {
		return nil, apierror.Internal(err)
	}
	if existe {
		return nil, apierror.DuplicateSerialNumber(novo.NumeroSerie)
	}

	if err := s.validarReferencias(ctx, novo.CategoriaID, novo.LocalizacaoID); err != nil {
		return nil, err
	}

	estado := novo.EstadoConservacao
	if estado == "" {
		estado = model.ConservacaoBom
	}

	bem := &model.Bem{
		ID:                uuid.New().String(),
		Nome:              novo.Nome,
		NumeroSerie:       novo.NumeroSerie,
		Descricao:         novo.Descricao,
		DataAquisicao:     novo.DataAquisicao,
		ValorAquisicao:    novo.ValorAquisicao,
		Status:            model.StatusAtivo,
		EstadoConservacao: estado,
		Ativo:             true,
		CategoriaID:       novo.CategoriaID,
		LocalizacaoID:     novo.LocalizacaoID,
	}

	if err := s.bens.Criar(ctx, bem); err != nil {
		if errors.Is(err, repository.ErrDuplicado) {
			return nil, apierror.DuplicateSerialNumber(novo.NumeroSerie)
		}
		return nil, apierror.Internal(err)
	}

	s.logger.Info("bem cadastrado",
		zap.String("id", bem.ID),
		zap.String("numero_serie", bem.NumeroSerie))
	return bem, nil
}

// BuscarPorID obtém um bem pelo identificador
func (s *Service) BuscarPorID(ctx context.Context, id string) (*model.Bem, error) {
	bem, err := s.bens.BuscarPorID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return nil, apierror.BemNaoEncontrado(id)
		}
		return nil, apierror.Internal(err)
	}
	return bem, nil
}

// BuscarPorNumeroSerie obtém um bem pelo número de série
func (s *Service) BuscarPorNumeroSerie(ctx context.Context, numeroSerie string) (*model.Bem, error) {
	bem, err := s.bens.BuscarPorNumeroSerie(ctx, numeroSerie)
	if err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return nil, apierror.BemNaoEncontrado(numeroSerie)
		}
		return nil, apierror.Internal(err)
	}
	return bem, nil
}

// Pesquisar retorna a página de bens que satisfaz o filtro
func (s *Service) Pesquisar(ctx context.Context, filtro repository.FiltroBens, pagina pagination.Pagina) (*pagination.Resultado[*model.Bem], error) {
	bens, total, err := s.bens.Pesquisar(ctx, filtro, pagina)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	return pagination.NovoResultado(bens, total, pagina), nil
}

// Atualizar altera os dados cadastrais do bem. Status e conservação têm
// operações próprias e não passam por aqui.
func (s *Service) Atualizar(ctx context.Context, id string, dados NovoBem) (*model.Bem, error) {
	bem, err := s.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dados.Nome == "" {
		return nil, apierror.Validation("nome do bem é obrigatório", nil).WithField("nome", "obrigatório")
	}
	if dados.ValorAquisicao < 0 {
		return nil, apierror.Validation("valor de aquisição não pode ser negativo", nil).WithField("valorAquisicao", "não pode ser negativo")
	}

	if dados.NumeroSerie != "" && dados.NumeroSerie != bem.NumeroSerie {
		existe, err := s.bens.ExisteNumeroSerie(ctx, dados.NumeroSerie, id)
		if err != nil {
			return nil, apierror.Internal(err)
		}
		if existe {
			return nil, apierror.DuplicateSerialNumber(dados.NumeroSerie)
		}
		bem.NumeroSerie = dados.NumeroSerie
	}

	if err := s.validarReferencias(ctx, dados.CategoriaID, dados.LocalizacaoID); err != nil {
		return nil, err
	}

	bem.Nome = dados.Nome
	bem.Descricao = dados.Descricao
	bem.DataAquisicao = dados.DataAquisicao
	bem.ValorAquisicao = dados.ValorAquisicao
	bem.CategoriaID = dados.CategoriaID
	bem.LocalizacaoID = dados.LocalizacaoID
	if dados.EstadoConservacao != "" {
		bem.EstadoConservacao = dados.EstadoConservacao
	}

	if err := s.bens.Atualizar(ctx, bem); err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return nil, apierror.BemNaoEncontrado(id)
		}
		return nil, apierror.Internal(err)
	}
	return bem, nil
}

// Excluir remove um bem do cadastro. Bens baixados são registro histórico e
// não podem ser excluídos.
func (s *Service) Excluir(ctx context.Context, id string) error {
	bem, err := s.BuscarPorID(ctx, id)
	if err != nil {
		return err
	}

	if bem.Status.Terminal() {
		return apierror.BemNaoExcluivel(id, string(bem.Status))
	}

	if err := s.bens.Excluir(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return apierror.BemNaoEncontrado(id)
		}
		return apierror.Internal(err)
	}

	s.logger.Info("bem excluído", zap.String("id", id))
	return nil
}

// AlterarStatus muda o status do bem seguindo a tabela de transições
func (s *Service) AlterarStatus(ctx context.Context, id string, destino model.StatusBem) (*model.Bem, error) {
	bem, err := s.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}

	// BAIXADO só é atingido pelo registro formal de baixa
	if destino == model.StatusBaixado {
		return nil, apierror.TransicaoStatusInvalida(string(bem.Status), string(destino))
	}

	if !bem.Status.PodeTransicionarPara(destino) {
		return nil, apierror.TransicaoStatusInvalida(string(bem.Status), string(destino))
	}

	if bem.Status == destino {
		return bem, nil
	}

	bem.Status = destino
	// INATIVO e BAIXADO retiram o bem de circulação
	bem.Ativo = destino != model.StatusInativo && destino != model.StatusBaixado

	if err := s.bens.Atualizar(ctx, bem); err != nil {
		return nil, apierror.Internal(err)
	}

	s.logger.Info("status do bem alterado",
		zap.String("id", id),
		zap.String("status", string(destino)))
	return bem, nil
}

// AlterarConservacao muda o estado de conservação do bem. Qualquer
// transição entre estados é permitida.
func (s *Service) AlterarConservacao(ctx context.Context, id string, estado model.EstadoConservacao) (*model.Bem, error) {
	bem, err := s.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}

	bem.EstadoConservacao = estado
	if err := s.bens.Atualizar(ctx, bem); err != nil {
		return nil, apierror.Internal(err)
	}
	return bem, nil
}

// Ativar retorna o bem inativo à circulação
func (s *Service) Ativar(ctx context.Context, id string) (*model.Bem, error) {
	return s.AlterarStatus(ctx, id, model.StatusAtivo)
}

// Desativar retira o bem de circulação sem baixa formal
func (s *Service) Desativar(ctx context.Context, id string) (*model.Bem, error) {
	return s.AlterarStatus(ctx, id, model.StatusInativo)
}

// Resumo agrega os totais do acervo
type Resumo struct {
	TotalPorStatus      map[model.StatusBem]int64 `json:"totalPorStatus"`
	TotalBens           int64                     `json:"totalBens"`
	ValorAquisicaoTotal float64                   `json:"valorAquisicaoTotal"`
}

// ResumoAcervo calcula os agregados do acervo e publica as métricas
func (s *Service) ResumoAcervo(ctx context.Context) (*Resumo, error) {
	porStatus, err := s.bens.ContarPorStatus(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}

	valorTotal, err := s.bens.SomarValorAquisicao(ctx, repository.FiltroBens{})
	if err != nil {
		return nil, apierror.Internal(err)
	}

	var total int64
	for status, quantidade := range porStatus {
		total += quantidade
		if s.metricas != nil {
			s.metricas.AtualizarBensPorStatus(string(status), quantidade)
		}
	}
	if s.metricas != nil {
		s.metricas.AtualizarValorPatrimonial(valorTotal)
	}

	return &Resumo{
		TotalPorStatus:      porStatus,
		TotalBens:           total,
		ValorAquisicaoTotal: valorTotal,
	}, nil
}
