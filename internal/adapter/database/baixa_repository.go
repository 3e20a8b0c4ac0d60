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

// BaixaRepository implementa repository.BaixaRepository.
// A tabela admite mais de uma baixa por bem (as canceladas permanecem
// como histórico); o serviço impede uma segunda baixa não cancelada
// consultando BuscarAtivaPorBem antes de criar.
type BaixaRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewBaixaRepository cria um novo repositório de baixas
func NewBaixaRepository(db *gorm.DB, logger *zap.Logger) repository.BaixaRepository {
	return &BaixaRepository{db: db, logger: logger}
}

// Criar persiste uma nova baixa
func (r *BaixaRepository) Criar(ctx context.Context, baixa *model.Baixa) error {
	if err := r.db.WithContext(ctx).Create(baixa).Error; err != nil {
		r.logger.Error("falha ao criar baixa",
			zap.String("bem_id", baixa.BemID),
			zap.Error(err))
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repository.ErrDuplicado
		}
		return fmt.Errorf("falha ao criar baixa: %w", err)
	}
	return nil
}

// BuscarPorID obtém uma baixa pelo identificador
func (r *BaixaRepository) BuscarPorID(ctx context.Context, id string) (*model.Baixa, error) {
	var baixa model.Baixa
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&baixa).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("falha ao buscar baixa: %w", err)
	}
	return &baixa, nil
}

// BuscarAtivaPorBem obtém a baixa não cancelada do bem, se existir
func (r *BaixaRepository) BuscarAtivaPorBem(ctx context.Context, bemID string) (*model.Baixa, error) {
	var baixa model.Baixa
	if err := r.db.WithContext(ctx).
		Where("bem_id = ? AND cancelada = ?", bemID, false).
		First(&baixa).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("falha ao buscar baixa ativa do bem: %w", err)
	}
	return &baixa, nil
}

// Pesquisar aplica o filtro e retorna a página ordenada da mais recente
func (r *BaixaRepository) Pesquisar(ctx context.Context, filtro repository.FiltroBaixas, pagina pagination.Pagina) ([]*model.Baixa, int64, error) {
	clausulas := []Clausula{
		ClausulaIgual("bem_id", filtro.BemID),
		ClausulaIgual("cancelada", filtro.Cancelada),
		ClausulaMinimo("data", filtro.De),
		ClausulaMaximo("data", filtro.Ate),
	}

	tx := AplicarClausulas(r.db.WithContext(ctx).Model(&model.Baixa{}), clausulas)
	baixas, total, err := pesquisarPagina[model.Baixa](tx, "data DESC", pagina)
	if err != nil {
		return nil, 0, fmt.Errorf("falha ao pesquisar baixas: %w", err)
	}
	return baixas, total, nil
}

// Atualizar sobrescreve os campos mutáveis da baixa
func (r *BaixaRepository) Atualizar(ctx context.Context, baixa *model.Baixa) error {
	result := r.db.WithContext(ctx).Model(&model.Baixa{}).
		Where("id = ?", baixa.ID).
		Select("motivo", "valor_residual", "valor_venda", "data_venda", "comprador",
			"data_aprovacao", "processo_adm", "cancelada").
		Updates(baixa)
	if result.Error != nil {
		return fmt.Errorf("falha ao atualizar baixa: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNaoEncontrado
	}
	return nil
}
