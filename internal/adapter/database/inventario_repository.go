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

// InventarioRepository implementa repository.InventarioRepository
type InventarioRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewInventarioRepository cria um novo repositório de inventários
func NewInventarioRepository(db *gorm.DB, logger *zap.Logger) repository.InventarioRepository {
	return &InventarioRepository{db: db, logger: logger}
}

// Criar persiste um novo inventário
func (r *InventarioRepository) Criar(ctx context.Context, inventario *model.Inventario) error {
	if err := r.db.WithContext(ctx).Create(inventario).Error; err != nil {
		r.logger.Error("falha ao criar inventário", zap.String("nome", inventario.Nome), zap.Error(err))
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repository.ErrDuplicado
		}
		return fmt.Errorf("falha ao criar inventário: %w", err)
	}
	return nil
}

// BuscarPorID obtém um inventário pelo identificador
func (r *InventarioRepository) BuscarPorID(ctx context.Context, id string) (*model.Inventario, error) {
	var inventario model.Inventario
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&inventario).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("falha ao buscar inventário: %w", err)
	}
	return &inventario, nil
}

// ExisteNome verifica unicidade de nome sem diferenciar maiúsculas
func (r *InventarioRepository) ExisteNome(ctx context.Context, nome, ignorarID string) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&model.Inventario{}).Where("LOWER(nome) = LOWER(?)", nome)
	if ignorarID != "" {
		tx = tx.Where("id <> ?", ignorarID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return false, fmt.Errorf("falha ao verificar nome de inventário: %w", err)
	}
	return total > 0, nil
}

// Pesquisar aplica o filtro e retorna a página ordenada da mais recente
func (r *InventarioRepository) Pesquisar(ctx context.Context, filtro repository.FiltroInventarios, pagina pagination.Pagina) ([]*model.Inventario, int64, error) {
	clausulas := []Clausula{
		ClausulaContem("nome", filtro.Nome),
		ClausulaIgual("status", filtro.Status),
	}

	tx := AplicarClausulas(r.db.WithContext(ctx).Model(&model.Inventario{}), clausulas)
	inventarios, total, err := pesquisarPagina[model.Inventario](tx, "criado_em DESC", pagina)
	if err != nil {
		return nil, 0, fmt.Errorf("falha ao pesquisar inventários: %w", err)
	}
	return inventarios, total, nil
}

// Atualizar sobrescreve os campos mutáveis do inventário
func (r *InventarioRepository) Atualizar(ctx context.Context, inventario *model.Inventario) error {
	result := r.db.WithContext(ctx).Model(&model.Inventario{}).
		Where("id = ?", inventario.ID).
		Select("nome", "status", "data_inicio", "data_fim", "responsavel", "observacoes").
		Updates(inventario)
	if result.Error != nil {
		return fmt.Errorf("falha ao atualizar inventário: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNaoEncontrado
	}
	return nil
}

// Excluir remove o inventário e seus vínculos com bens
func (r *InventarioRepository) Excluir(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("inventario_id = ?", id).Delete(&model.InventarioBem{}).Error; err != nil {
			return fmt.Errorf("falha ao excluir bens do inventário: %w", err)
		}

		result := tx.Where("id = ?", id).Delete(&model.Inventario{})
		if result.Error != nil {
			return fmt.Errorf("falha ao excluir inventário: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return repository.ErrNaoEncontrado
		}
		return nil
	})
}

// AdicionarBem vincula um bem ao inventário
func (r *InventarioRepository) AdicionarBem(ctx context.Context, inventarioID, bemID string) error {
	vinculo := model.InventarioBem{
		InventarioID: inventarioID,
		BemID:        bemID,
	}
	if err := r.db.WithContext(ctx).Create(&vinculo).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repository.ErrDuplicado
		}
		return fmt.Errorf("falha ao adicionar bem ao inventário: %w", err)
	}
	return nil
}

// RemoverBem desvincula um bem do inventário
func (r *InventarioRepository) RemoverBem(ctx context.Context, inventarioID, bemID string) error {
	result := r.db.WithContext(ctx).
		Where("inventario_id = ? AND bem_id = ?", inventarioID, bemID).
		Delete(&model.InventarioBem{})
	if result.Error != nil {
		return fmt.Errorf("falha ao remover bem do inventário: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNaoEncontrado
	}
	return nil
}

// ListarBens retorna a página de vínculos do inventário
func (r *InventarioRepository) ListarBens(ctx context.Context, inventarioID string, pagina pagination.Pagina) ([]*model.InventarioBem, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.InventarioBem{}).
		Where("inventario_id = ?", inventarioID)

	pagina = pagina.Normalizar()

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("falha ao contar bens do inventário: %w", err)
	}

	var vinculos []*model.InventarioBem
	if err := tx.Order("bem_id").
		Limit(pagina.Tamanho).
		Offset(pagina.Offset()).
		Find(&vinculos).Error; err != nil {
		return nil, 0, fmt.Errorf("falha ao listar bens do inventário: %w", err)
	}
	return vinculos, total, nil
}

// MarcarVerificado atualiza a flag de verificação do vínculo
func (r *InventarioRepository) MarcarVerificado(ctx context.Context, inventarioID, bemID string, verificado bool) error {
	result := r.db.WithContext(ctx).Model(&model.InventarioBem{}).
		Where("inventario_id = ? AND bem_id = ?", inventarioID, bemID).
		Update("verificado", verificado)
	if result.Error != nil {
		return fmt.Errorf("falha ao marcar verificação: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNaoEncontrado
	}
	return nil
}
