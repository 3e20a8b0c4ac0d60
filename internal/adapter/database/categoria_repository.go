package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jairomfjr/patrimonio-sub001/internal/domain/model"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/repository"
	"github.com/jairomfjr/patrimonio-sub001/pkg/pagination"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CategoriaRepository implementa repository.CategoriaRepository
type CategoriaRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewCategoriaRepository cria um novo repositório de categorias
func NewCategoriaRepository(db *gorm.DB, logger *zap.Logger) repository.CategoriaRepository {
	return &CategoriaRepository{db: db, logger: logger}
}

// Criar persiste uma nova categoria
func (r *CategoriaRepository) Criar(ctx context.Context, categoria *model.Categoria) error {
	if err := r.db.WithContext(ctx).Create(categoria).Error; err != nil {
		r.logger.Error("falha ao criar categoria", zap.String("nome", categoria.Nome), zap.Error(err))
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repository.ErrDuplicado
		}
		return fmt.Errorf("falha ao criar categoria: %w", err)
	}
	return nil
}

// BuscarPorID obtém uma categoria pelo identificador
func (r *CategoriaRepository) BuscarPorID(ctx context.Context, id string) (*model.Categoria, error) {
	var categoria model.Categoria
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&categoria).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("falha ao buscar categoria: %w", err)
	}
	return &categoria, nil
}

// ExisteNome verifica unicidade de nome sem diferenciar maiúsculas
func (r *CategoriaRepository) ExisteNome(ctx context.Context, nome, ignorarID string) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&model.Categoria{}).Where("LOWER(nome) = LOWER(?)", nome)
	if ignorarID != "" {
		tx = tx.Where("id <> ?", ignorarID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return false, fmt.Errorf("falha ao verificar nome de categoria: %w", err)
	}
	return total > 0, nil
}

// Pesquisar aplica o filtro e retorna a página ordenada por nome
func (r *CategoriaRepository) Pesquisar(ctx context.Context, filtro repository.FiltroCategorias, pagina pagination.Pagina) ([]*model.Categoria, int64, error) {
	clausulas := []Clausula{
		ClausulaContem("nome", filtro.Nome),
	}

	tx := AplicarClausulas(r.db.WithContext(ctx).Model(&model.Categoria{}), clausulas)
	categorias, total, err := pesquisarPagina[model.Categoria](tx, "nome", pagina)
	if err != nil {
		return nil, 0, fmt.Errorf("falha ao pesquisar categorias: %w", err)
	}
	return categorias, total, nil
}

// Atualizar sobrescreve os campos mutáveis da categoria
func (r *CategoriaRepository) Atualizar(ctx context.Context, categoria *model.Categoria) error {
	result := r.db.WithContext(ctx).Model(&model.Categoria{}).
		Where("id = ?", categoria.ID).
		Select("nome", "descricao").
		Updates(categoria)
	if result.Error != nil {
		return fmt.Errorf("falha ao atualizar categoria: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNaoEncontrado
	}
	return nil
}

// Excluir remove fisicamente a categoria
func (r *CategoriaRepository) Excluir(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Categoria{})
	if result.Error != nil {
		return fmt.Errorf("falha ao excluir categoria: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNaoEncontrado
	}
	return nil
}

// ContarBens retorna quantos bens referenciam a categoria
func (r *CategoriaRepository) ContarBens(ctx context.Context, id string) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Bem{}).
		Where("categoria_id = ?", id).
		Count(&total).Error; err != nil {
		return 0, fmt.Errorf("falha ao contar bens da categoria: %w", err)
	}
	return total, nil
}
