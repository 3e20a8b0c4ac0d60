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

// LocalizacaoRepository implementa repository.LocalizacaoRepository
type LocalizacaoRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewLocalizacaoRepository cria um novo repositório de localizações
func NewLocalizacaoRepository(db *gorm.DB, logger *zap.Logger) repository.LocalizacaoRepository {
	return &LocalizacaoRepository{db: db, logger: logger}
}

// Criar persiste uma nova localização
func (r *LocalizacaoRepository) Criar(ctx context.Context, localizacao *model.Localizacao) error {
	if err := r.db.WithContext(ctx).Create(localizacao).Error; err != nil {
		r.logger.Error("falha ao criar localização", zap.String("nome", localizacao.Nome), zap.Error(err))
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repository.ErrDuplicado
		}
		return fmt.Errorf("falha ao criar localização: %w", err)
	}
	return nil
}

// BuscarPorID obtém uma localização pelo identificador
func (r *LocalizacaoRepository) BuscarPorID(ctx context.Context, id string) (*model.Localizacao, error) {
	var localizacao model.Localizacao
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&localizacao).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("falha ao buscar localização: %w", err)
	}
	return &localizacao, nil
}

// ExisteNome verifica unicidade de nome sem diferenciar maiúsculas
func (r *LocalizacaoRepository) ExisteNome(ctx context.Context, nome, ignorarID string) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&model.Localizacao{}).Where("LOWER(nome) = LOWER(?)", nome)
	if ignorarID != "" {
		tx = tx.Where("id <> ?", ignorarID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return false, fmt.Errorf("falha ao verificar nome de localização: %w", err)
	}
	return total > 0, nil
}

// Pesquisar aplica o filtro e retorna a página ordenada por nome
func (r *LocalizacaoRepository) Pesquisar(ctx context.Context, filtro repository.FiltroLocalizacoes, pagina pagination.Pagina) ([]*model.Localizacao, int64, error) {
	clausulas := []Clausula{
		ClausulaContem("nome", filtro.Nome),
		ClausulaContem("responsavel", filtro.Responsavel),
	}

	tx := AplicarClausulas(r.db.WithContext(ctx).Model(&model.Localizacao{}), clausulas)
	localizacoes, total, err := pesquisarPagina[model.Localizacao](tx, "nome", pagina)
	if err != nil {
		return nil, 0, fmt.Errorf("falha ao pesquisar localizações: %w", err)
	}
	return localizacoes, total, nil
}

// Atualizar sobrescreve os campos mutáveis da localização
func (r *LocalizacaoRepository) Atualizar(ctx context.Context, localizacao *model.Localizacao) error {
	result := r.db.WithContext(ctx).Model(&model.Localizacao{}).
		Where("id = ?", localizacao.ID).
		Select("nome", "endereco", "responsavel", "telefone", "descricao").
		Updates(localizacao)
	if result.Error != nil {
		return fmt.Errorf("falha ao atualizar localização: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNaoEncontrado
	}
	return nil
}

// Excluir remove fisicamente a localização
func (r *LocalizacaoRepository) Excluir(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Localizacao{})
	if result.Error != nil {
		return fmt.Errorf("falha ao excluir localização: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNaoEncontrado
	}
	return nil
}

// ContarBens retorna quantos bens estão na localização
func (r *LocalizacaoRepository) ContarBens(ctx context.Context, id string) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Bem{}).
		Where("localizacao_id = ?", id).
		Count(&total).Error; err != nil {
		return 0, fmt.Errorf("falha ao contar bens da localização: %w", err)
	}
	return total, nil
}
