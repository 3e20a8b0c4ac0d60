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

// ConfiguracaoRepository implementa repository.ConfiguracaoRepository
type ConfiguracaoRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewConfiguracaoRepository cria um novo repositório de configurações
func NewConfiguracaoRepository(db *gorm.DB, logger *zap.Logger) repository.ConfiguracaoRepository {
	return &ConfiguracaoRepository{db: db, logger: logger}
}

// Criar persiste uma nova configuração
func (r *ConfiguracaoRepository) Criar(ctx context.Context, configuracao *model.Configuracao) error {
	if err := r.db.WithContext(ctx).Create(configuracao).Error; err != nil {
		r.logger.Error("falha ao criar configuração", zap.String("chave", configuracao.Chave), zap.Error(err))
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repository.ErrDuplicado
		}
		return fmt.Errorf("falha ao criar configuração: %w", err)
	}
	return nil
}

// BuscarPorID obtém uma configuração pelo identificador
func (r *ConfiguracaoRepository) BuscarPorID(ctx context.Context, id string) (*model.Configuracao, error) {
	var configuracao model.Configuracao
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&configuracao).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("falha ao buscar configuração: %w", err)
	}
	return &configuracao, nil
}

// BuscarPorChave obtém uma configuração pela chave
func (r *ConfiguracaoRepository) BuscarPorChave(ctx context.Context, chave string) (*model.Configuracao, error) {
	var configuracao model.Configuracao
	if err := r.db.WithContext(ctx).Where("chave = ?", chave).First(&configuracao).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("falha ao buscar configuração por chave: %w", err)
	}
	return &configuracao, nil
}

// Listar retorna a página de configurações ordenada por chave
func (r *ConfiguracaoRepository) Listar(ctx context.Context, pagina pagination.Pagina) ([]*model.Configuracao, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.Configuracao{})
	configuracoes, total, err := pesquisarPagina[model.Configuracao](tx, "chave", pagina)
	if err != nil {
		return nil, 0, fmt.Errorf("falha ao listar configurações: %w", err)
	}
	return configuracoes, total, nil
}

// Atualizar sobrescreve o valor e a descrição da configuração
func (r *ConfiguracaoRepository) Atualizar(ctx context.Context, configuracao *model.Configuracao) error {
	result := r.db.WithContext(ctx).Model(&model.Configuracao{}).
		Where("id = ?", configuracao.ID).
		Select("valor", "descricao").
		Updates(configuracao)
	if result.Error != nil {
		return fmt.Errorf("falha ao atualizar configuração: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNaoEncontrado
	}
	return nil
}
