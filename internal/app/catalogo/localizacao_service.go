package catalogo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/model"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/repository"
	"github.com/jairomfjr/patrimonio-sub001/pkg/apierror"
	"github.com/jairomfjr/patrimonio-sub001/pkg/pagination"
	"go.uber.org/zap"
)

// LocalizacaoService concentra as regras de negócio de localizações
type LocalizacaoService struct {
	localizacoes repository.LocalizacaoRepository
	logger       *zap.Logger
}

// NewLocalizacaoService cria o serviço de localizações
func NewLocalizacaoService(localizacoes repository.LocalizacaoRepository, logger *zap.Logger) *LocalizacaoService {
	return &LocalizacaoService{localizacoes: localizacoes, logger: logger}
}

// NovaLocalizacao reúne os dados de cadastro de uma localização
type NovaLocalizacao struct {
	Nome        string
	Endereco    string
	Responsavel string
	Telefone    string
	Descricao   string
}

// Criar cadastra uma nova localização com nome único
func (s *LocalizacaoService) Criar(ctx context.Context, nova NovaLocalizacao) (*model.Localizacao, error) {
	if nova.Nome == "" {
		return nil, apierror.Validation("nome da localização é obrigatório", nil).WithField("nome", "obrigatório")
	}

	existe, err := s.localizacoes.ExisteNome(ctx, nova.Nome, "")
	if err != nil {
		return nil, apierror.Internal(err)
	}
	if existe {
		return nil, apierror.CampoDuplicado("localização", "nome", nova.Nome)
	}

	localizacao := &model.Localizacao{
		ID:          uuid.New().String(),
		Nome:        nova.Nome,
		Endereco:    nova.Endereco,
		Responsavel: nova.Responsavel,
		Telefone:    nova.Telefone,
		Descricao:   nova.Descricao,
	}

	if err := s.localizacoes.Criar(ctx, localizacao); err != nil {
		if errors.Is(err, repository.ErrDuplicado) {
			return nil, apierror.CampoDuplicado("localização", "nome", nova.Nome)
		}
		return nil, apierror.Internal(err)
	}

	s.logger.Info("localização criada", zap.String("id", localizacao.ID), zap.String("nome", nova.Nome))
	return localizacao, nil
}

// BuscarPorID obtém uma localização pelo identificador
func (s *LocalizacaoService) BuscarPorID(ctx context.Context, id string) (*model.Localizacao, error) {
	localizacao, err := s.localizacoes.BuscarPorID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return nil, apierror.LocalizacaoNaoEncontrada(id)
		}
		return nil, apierror.Internal(err)
	}
	return localizacao, nil
}

// Pesquisar retorna a página de localizações que satisfaz o filtro
func (s *LocalizacaoService) Pesquisar(ctx context.Context, filtro repository.FiltroLocalizacoes, pagina pagination.Pagina) (*pagination.Resultado[*model.Localizacao], error) {
	localizacoes, total, err := s.localizacoes.Pesquisar(ctx, filtro, pagina)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	return pagination.NovoResultado(localizacoes, total, pagina), nil
}

// Atualizar altera os dados da localização
func (s *LocalizacaoService) Atualizar(ctx context.Context, id string, dados NovaLocalizacao) (*model.Localizacao, error) {
	localizacao, err := s.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dados.Nome == "" {
		return nil, apierror.Validation("nome da localização é obrigatório", nil).WithField("nome", "obrigatório")
	}

	existe, err := s.localizacoes.ExisteNome(ctx, dados.Nome, id)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	if existe {
		return nil, apierror.CampoDuplicado("localização", "nome", dados.Nome)
	}

	localizacao.Nome = dados.Nome
	localizacao.Endereco = dados.Endereco
	localizacao.Responsavel = dados.Responsavel
	localizacao.Telefone = dados.Telefone
	localizacao.Descricao = dados.Descricao

	if err := s.localizacoes.Atualizar(ctx, localizacao); err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return nil, apierror.LocalizacaoNaoEncontrada(id)
		}
		return nil, apierror.Internal(err)
	}
	return localizacao, nil
}

// Excluir remove uma localização sem bens vinculados
func (s *LocalizacaoService) Excluir(ctx context.Context, id string) error {
	if _, err := s.BuscarPorID(ctx, id); err != nil {
		return err
	}

	total, err := s.localizacoes.ContarBens(ctx, id)
	if err != nil {
		return apierror.Internal(err)
	}
	if total > 0 {
		return apierror.BusinessRule(
			fmt.Sprintf("localização %s possui %d bens vinculados e não pode ser excluída", id, total), nil)
	}

	if err := s.localizacoes.Excluir(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return apierror.LocalizacaoNaoEncontrada(id)
		}
		return apierror.Internal(err)
	}

	s.logger.Info("localização excluída", zap.String("id", id))
	return nil
}
