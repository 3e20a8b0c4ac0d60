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

// MovimentacaoRepository implementa repository.MovimentacaoRepository.
// Movimentações são registros imutáveis: só há inserção e consulta.
type MovimentacaoRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewMovimentacaoRepository cria um novo repositório de movimentações
func NewMovimentacaoRepository(db *gorm.DB, logger *zap.Logger) repository.MovimentacaoRepository {
	return &MovimentacaoRepository{db: db, logger: logger}
}

// Criar persiste uma nova movimentação
func (r *MovimentacaoRepository) Criar(ctx context.Context, movimentacao *model.Movimentacao) error {
	if err := r.db.WithContext(ctx).Create(movimentacao).Error; err != nil {
		r.logger.Error("falha ao criar movimentação",
			zap.String("bem_id", movimentacao.BemID),
			zap.Error(err))
		return fmt.Errorf("falha ao criar movimentação: %w", err)
	}
	return nil
}

// BuscarPorID obtém uma movimentação pelo identificador
func (r *MovimentacaoRepository) BuscarPorID(ctx context.Context, id string) (*model.Movimentacao, error) {
	var movimentacao model.Movimentacao
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&movimentacao).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("falha ao buscar movimentação: %w", err)
	}
	return &movimentacao, nil
}

// Pesquisar aplica o filtro e retorna a página ordenada da mais recente
func (r *MovimentacaoRepository) Pesquisar(ctx context.Context, filtro repository.FiltroMovimentacoes, pagina pagination.Pagina) ([]*model.Movimentacao, int64, error) {
	clausulas := []Clausula{
		ClausulaIgual("bem_id", filtro.BemID),
		ClausulaIgual("tipo", filtro.Tipo),
		ClausulaIgual("origem_id", filtro.OrigemID),
		ClausulaIgual("destino_id", filtro.DestinoID),
		ClausulaMinimo("data_hora", filtro.De),
		ClausulaMaximo("data_hora", filtro.Ate),
	}

	tx := AplicarClausulas(r.db.WithContext(ctx).Model(&model.Movimentacao{}), clausulas)
	movimentacoes, total, err := pesquisarPagina[model.Movimentacao](tx, "data_hora DESC", pagina)
	if err != nil {
		return nil, 0, fmt.Errorf("falha ao pesquisar movimentações: %w", err)
	}
	return movimentacoes, total, nil
}
