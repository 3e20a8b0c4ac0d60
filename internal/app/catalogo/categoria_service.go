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

// CategoriaService concentra as regras de negócio de categorias
type CategoriaService struct {
	categorias repository.CategoriaRepository
	logger     *zap.Logger
}

// NewCategoriaService cria o serviço de categorias
func NewCategoriaService(categorias repository.CategoriaRepository, logger *zap.Logger) *CategoriaService {
	return &CategoriaService{categorias: categorias, logger: logger}
}

// Criar cadastra uma nova categoria com nome único
func (s *CategoriaService) Criar(ctx context.Context, nome, descricao string) (*model.Categoria, error) {
	if nome == "" {
		return nil, apierror.Validation("nome da categoria é obrigatório", nil).WithField("nome", "obrigatório")
	}

	existe, err := s.categorias.ExisteNome(ctx, nome, "")
	if err != nil {
		return nil, apierror.Internal(err)
	}
	if existe {
		return nil, apierror.CampoDuplicado("categoria", "nome", nome)
	}

	categoria := &model.Categoria{
		ID:        uuid.New().String(),
		Nome:      nome,
		Descricao: descricao,
	}

	if err := s.categorias.Criar(ctx, categoria); err != nil {
		if errors.Is(err, repository.ErrDuplicado) {
			return nil, apierror.CampoDuplicado("categoria", "nome", nome)
		}
		return nil, apierror.Internal(err)
	}

	s.logger.Info("categoria criada", zap.String("id", categoria.ID), zap.String("nome", nome))
	return categoria, nil
}

// BuscarPorID obtém uma categoria pelo identificador
func (s *CategoriaService) BuscarPorID(ctx context.Context, id string) (*model.Categoria, error) {
	categoria, err := s.categorias.BuscarPorID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return nil, apierror.CategoriaNaoEncontrada(id)
		}
		return nil, apierror.Internal(err)
	}
	return categoria, nil
}

// Pesquisar retorna a página de categorias que satisfaz o filtro
func (s *CategoriaService) Pesquisar(ctx context.Context, filtro repository.FiltroCategorias, pagina pagination.Pagina) (*pagination.Resultado[*model.Categoria], error) {
	categorias, total, err := s.categorias.Pesquisar(ctx, filtro, pagina)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	return pagination.NovoResultado(categorias, total, pagina), nil
}

// Atualizar altera nome e descrição da categoria
func (s *CategoriaService) Atualizar(ctx context.Context, id, nome, descricao string) (*model.Categoria, error) {
	categoria, err := s.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}

	if nome == "" {
		return nil, apierror.Validation("nome da categoria é obrigatório", nil).WithField("nome", "obrigatório")
	}

	existe, err := s.categorias.ExisteNome(ctx, nome, id)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	if existe {
		return nil, apierror.CampoDuplicado("categoria", "nome", nome)
	}

	categoria.Nome = nome
	categoria.Descricao = descricao

	if err := s.categorias.Atualizar(ctx, categoria); err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return nil, apierror.CategoriaNaoEncontrada(id)
		}
		return nil, apierror.Internal(err)
	}
	return categoria, nil
}

// Excluir remove uma categoria sem bens vinculados
func (s *CategoriaService) Excluir(ctx context.Context, id string) error {
	if _, err := s.BuscarPorID(ctx, id); err != nil {
		return err
	}

	total, err := s.categorias.ContarBens(ctx, id)
	if err != nil {
		return apierror.Internal(err)
	}
	if total > 0 {
		return apierror.BusinessRule(
			fmt.Sprintf("categoria %s possui %d bens vinculados e não pode ser excluída", id, total), nil)
	}

	if err := s.categorias.Excluir(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return apierror.CategoriaNaoEncontrada(id)
		}
		return apierror.Internal(err)
	}

	s.logger.Info("categoria excluída", zap.String("id", id))
	return nil
}
