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

// PerfilRepository implementa repository.PerfilRepository
type PerfilRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewPerfilRepository cria um novo repositório de perfis
func NewPerfilRepository(db *gorm.DB, logger *zap.Logger) repository.PerfilRepository {
	return &PerfilRepository{db: db, logger: logger}
}

// Criar persiste um novo perfil
func (r *PerfilRepository) Criar(ctx context.Context, perfil *model.Perfil) error {
	if err := r.db.WithContext(ctx).Create(perfil).Error; err != nil {
		r.logger.Error("falha ao criar perfil", zap.String("nome", perfil.Nome), zap.Error(err))
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repository.ErrDuplicado
		}
		return fmt.Errorf("falha ao criar perfil: %w", err)
	}
	return nil
}

// BuscarPorID obtém um perfil pelo identificador
func (r *PerfilRepository) BuscarPorID(ctx context.Context, id string) (*model.Perfil, error) {
	var perfil model.Perfil
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&perfil).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("falha ao buscar perfil: %w", err)
	}
	return &perfil, nil
}

// ExisteNome verifica unicidade de nome sem diferenciar maiúsculas
func (r *PerfilRepository) ExisteNome(ctx context.Context, nome, ignorarID string) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&model.Perfil{}).Where("LOWER(nome) = LOWER(?)", nome)
	if ignorarID != "" {
		tx = tx.Where("id <> ?", ignorarID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return false, fmt.Errorf("falha ao verificar nome de perfil: %w", err)
	}
	return total > 0, nil
}

// Listar retorna a página de perfis ordenada por nome
func (r *PerfilRepository) Listar(ctx context.Context, pagina pagination.Pagina) ([]*model.Perfil, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.Perfil{})
	perfis, total, err := pesquisarPagina[model.Perfil](tx, "nome", pagina)
	if err != nil {
		return nil, 0, fmt.Errorf("falha ao listar perfis: %w", err)
	}
	return perfis, total, nil
}

// Atualizar sobrescreve os campos mutáveis do perfil
func (r *PerfilRepository) Atualizar(ctx context.Context, perfil *model.Perfil) error {
	result := r.db.WithContext(ctx).Model(&model.Perfil{}).
		Where("id = ?", perfil.ID).
		Select("nome", "nivel_acesso", "ativo", "permissoes").
		Updates(perfil)
	if result.Error != nil {
		return fmt.Errorf("falha ao atualizar perfil: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNaoEncontrado
	}
	return nil
}
