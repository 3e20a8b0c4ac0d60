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

// ManutencaoRepository implementa repository.ManutencaoRepository
type ManutencaoRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewManutencaoRepository cria um novo repositório de manutenções
func NewManutencaoRepository(db *gorm.DB, logger *zap.Logger) repository.ManutencaoRepository {
	return &ManutencaoRepository{db: db, logger: logger}
}

// Criar persiste uma nova manutenção
func (r *ManutencaoRepository) Criar(ctx context.Context, manutencao *model.Manutencao) error {
	if err := r.db.WithContext(ctx).Create(manutencao).Error; err != nil {
		r.logger.Error("falha ao criar manutenção",
			zap.String("bem_id", manutencao.BemID),
			zap.Error(err))
		return fmt.Errorf("falha ao criar manutenção: %w", err)
	}
	return nil
}

// BuscarPorID obtém uma manutenção pelo identificador
func (r *ManutencaoRepository) BuscarPorID(ctx context.Context, id string) (*model.Manutencao, error) {
	var manutencao model.Manutencao
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&manutencao).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("falha ao buscar manutenção: %w", err)
	}
	return &manutencao, nil
}

// clausulasManutencoes traduz o filtro na lista ordenada de cláusulas
func clausulasManutencoes(filtro repository.FiltroManutencoes) []Clausula {
	return []Clausula{
		ClausulaIgual("bem_id", filtro.BemID),
		ClausulaIgual("status", filtro.Status),
		ClausulaIgual("tipo", filtro.Tipo),
		ClausulaContem("fornecedor", filtro.Fornecedor),
		ClausulaMinimo("custo", filtro.CustoMinimo),
		ClausulaMaximo("custo", filtro.CustoMaximo),
		ClausulaMinimo("data_agendada", filtro.De),
		ClausulaMaximo("data_agendada", filtro.Ate),
	}
}

// Pesquisar aplica o filtro e retorna a página ordenada da mais recente
func (r *ManutencaoRepository) Pesquisar(ctx context.Context, filtro repository.FiltroManutencoes, pagina pagination.Pagina) ([]*model.Manutencao, int64, error) {
	tx := AplicarClausulas(r.db.WithContext(ctx).Model(&model.Manutencao{}), clausulasManutencoes(filtro))
	manutencoes, total, err := pesquisarPagina[model.Manutencao](tx, "criado_em DESC", pagina)
	if err != nil {
		return nil, 0, fmt.Errorf("falha ao pesquisar manutenções: %w", err)
	}
	return manutencoes, total, nil
}

// Atualizar sobrescreve os campos mutáveis da manutenção
func (r *ManutencaoRepository) Atualizar(ctx context.Context, manutencao *model.Manutencao) error {
	result := r.db.WithContext(ctx).Model(&model.Manutencao{}).
		Where("id = ?", manutencao.ID).
		Select("status", "tipo", "data_agendada", "data_inicio", "data_fim",
			"responsavel", "fornecedor", "custo", "prioridade", "descricao_servico").
		Updates(manutencao)
	if result.Error != nil {
		return fmt.Errorf("falha ao atualizar manutenção: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNaoEncontrado
	}
	return nil
}

// SomarCusto soma o custo das manutenções filtradas
func (r *ManutencaoRepository) SomarCusto(ctx context.Context, filtro repository.FiltroManutencoes) (float64, error) {
	tx := AplicarClausulas(r.db.WithContext(ctx).Model(&model.Manutencao{}), clausulasManutencoes(filtro))

	var soma *float64
	if err := tx.Select("SUM(custo)").Scan(&soma).Error; err != nil {
		return 0, fmt.Errorf("falha ao somar custo de manutenções: %w", err)
	}
	if soma == nil {
		return 0, nil
	}
	return *soma, nil
}
