package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jairomfjr/patrimonio-sub001/internal/domain/model"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/repository"
	"github.com/jairomfjr/patrimonio-sub001/pkg/pagination"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BemRepository implementa repository.BemRepository
type BemRepository struct {
	db     *gorm.DB
	logger *zap.Logger
	tracer trace.Tracer
}

// NewBemRepository cria um novo repositório de bens
func NewBemRepository(db *gorm.DB, logger *zap.Logger) repository.BemRepository {
	tracer := otel.GetTracerProvider().Tracer("patrimonio.repository.bem")

	return &BemRepository{
		db:     db,
		logger: logger,
		tracer: tracer,
	}
}

// Criar persiste um novo bem
func (r *BemRepository) Criar(ctx context.Context, bem *model.Bem) error {
	ctx, span := r.tracer.Start(
		ctx,
		"BemRepository.Criar",
		trace.WithAttributes(
			attribute.String("db.operation", "insert"),
			attribute.String("db.table", "bens"),
			attribute.String("bem.numero_serie", bem.NumeroSerie),
		),
	)
	defer span.End()

	if err := r.db.WithContext(ctx).Create(bem).Error; err != nil {
		r.logger.Error("falha ao criar bem",
			zap.String("numero_serie", bem.NumeroSerie),
			zap.Error(err))
		span.SetStatus(codes.Error, "database error")

		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repository.ErrDuplicado
		}
		return fmt.Errorf("falha ao criar bem: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// BuscarPorID obtém um bem pelo identificador
func (r *BemRepository) BuscarPorID(ctx context.Context, id string) (*model.Bem, error) {
	ctx, span := r.tracer.Start(
		ctx,
		"BemRepository.BuscarPorID",
		trace.WithAttributes(
			attribute.String("db.operation", "select"),
			attribute.String("db.table", "bens"),
			attribute.String("bem.id", id),
		),
	)
	defer span.End()

	var bem model.Bem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&bem).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			span.SetStatus(codes.Error, "bem not found")
			return nil, repository.ErrNaoEncontrado
		}
		r.logger.Error("falha ao buscar bem por id", zap.String("id", id), zap.Error(err))
		span.SetStatus(codes.Error, "database error")
		return nil, fmt.Errorf("falha ao buscar bem: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return &bem, nil
}

// BuscarPorNumeroSerie obtém um bem pelo número de série
func (r *BemRepository) BuscarPorNumeroSerie(ctx context.Context, numeroSerie string) (*model.Bem, error) {
	ctx, span := r.tracer.Start(
		ctx,
		"BemRepository.BuscarPorNumeroSerie",
		trace.WithAttributes(
			attribute.String("db.operation", "select"),
			attribute.String("db.table", "bens"),
			attribute.String("bem.numero_serie", numeroSerie),
		),
	)
	defer span.End()

	var bem model.Bem
	if err := r.db.WithContext(ctx).Where("numero_serie = ?", numeroSerie).First(&bem).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			span.SetStatus(codes.Error, "bem not found")
			return nil, repository.ErrNaoEncontrado
		}
		r.logger.Error("falha ao buscar bem por número de série",
			zap.String("numero_serie", numeroSerie),
			zap.Error(err))
		span.SetStatus(codes.Error, "database error")
		return nil, fmt.Errorf("falha ao buscar bem: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return &bem, nil
}

// ExisteNumeroSerie verifica se o número de série já pertence a outro bem
func (r *BemRepository) ExisteNumeroSerie(ctx context.Context, numeroSerie, ignorarID string) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&model.Bem{}).Where("numero_serie = ?", numeroSerie)
	if ignorarID != "" {
		tx = tx.Where("id <> ?", ignorarID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return false, fmt.Errorf("falha ao verificar número de série: %w", err)
	}
	return total > 0, nil
}

// clausulasBens traduz o filtro na lista ordenada de cláusulas opcionais
func clausulasBens(filtro repository.FiltroBens) []Clausula {
	return []Clausula{
		ClausulaContem("nome", filtro.Nome),
		ClausulaContem("numero_serie", filtro.NumeroSerie),
		ClausulaIgual("categoria_id", filtro.CategoriaID),
		ClausulaIgual("localizacao_id", filtro.LocalizacaoID),
		ClausulaIgual("status", filtro.Status),
		ClausulaIgual("estado_conservacao", filtro.Estado),
		ClausulaIgual("ativo", filtro.Ativo),
		ClausulaMinimo("valor_aquisicao", filtro.ValorMinimo),
		ClausulaMaximo("valor_aquisicao", filtro.ValorMaximo),
		ClausulaMinimo("data_aquisicao", filtro.AquisicaoDe),
		ClausulaMaximo("data_aquisicao", filtro.AquisicaoAte),
	}
}

// Pesquisar aplica os filtros fornecidos e retorna a página ordenada por nome
func (r *BemRepository) Pesquisar(ctx context.Context, filtro repository.FiltroBens, pagina pagination.Pagina) ([]*model.Bem, int64, error) {
	ctx, span := r.tracer.Start(
		ctx,
		"BemRepository.Pesquisar",
		trace.WithAttributes(
			attribute.String("db.operation", "select"),
			attribute.String("db.table", "bens"),
			attribute.Int("pagina.numero", pagina.Numero),
			attribute.Int("pagina.tamanho", pagina.Tamanho),
		),
	)
	defer span.End()

	tx := AplicarClausulas(r.db.WithContext(ctx).Model(&model.Bem{}), clausulasBens(filtro))

	bens, total, err := pesquisarPagina[model.Bem](tx, "nome", pagina)
	if err != nil {
		r.logger.Error("falha ao pesquisar bens", zap.Error(err))
		span.SetStatus(codes.Error, "database error")
		return nil, 0, fmt.Errorf("falha ao pesquisar bens: %w", err)
	}

	span.SetAttributes(attribute.Int64("bens.total", total))
	span.SetStatus(codes.Ok, "")
	return bens, total, nil
}

// Atualizar sobrescreve os campos mutáveis do bem
func (r *BemRepository) Atualizar(ctx context.Context, bem *model.Bem) error {
	ctx, span := r.tracer.Start(
		ctx,
		"BemRepository.Atualizar",
		trace.WithAttributes(
			attribute.String("db.operation", "update"),
			attribute.String("db.table", "bens"),
			attribute.String("bem.id", bem.ID),
		),
	)
	defer span.End()

	result := r.db.WithContext(ctx).Model(&model.Bem{}).
		Where("id = ?", bem.ID).
		Select("nome", "numero_serie", "descricao", "data_aquisicao", "valor_aquisicao",
			"status", "estado_conservacao", "ativo", "categoria_id", "localizacao_id").
		Updates(bem)
	if result.Error != nil {
		r.logger.Error("falha ao atualizar bem", zap.String("id", bem.ID), zap.Error(result.Error))
		span.SetStatus(codes.Error, "database error")
		return fmt.Errorf("falha ao atualizar bem: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		span.SetStatus(codes.Error, "no rows affected")
		return repository.ErrNaoEncontrado
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// Excluir remove fisicamente o bem
func (r *BemRepository) Excluir(ctx context.Context, id string) error {
	ctx, span := r.tracer.Start(
		ctx,
		"BemRepository.Excluir",
		trace.WithAttributes(
			attribute.String("db.operation", "delete"),
			attribute.String("db.table", "bens"),
			attribute.String("bem.id", id),
		),
	)
	defer span.End()

	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Bem{})
	if result.Error != nil {
		r.logger.Error("falha ao excluir bem", zap.String("id", id), zap.Error(result.Error))
		span.SetStatus(codes.Error, "database error")
		return fmt.Errorf("falha ao excluir bem: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		span.SetStatus(codes.Error, "no rows affected")
		return repository.ErrNaoEncontrado
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// ContarPorStatus retorna o total de bens por status
func (r *BemRepository) ContarPorStatus(ctx context.Context) (map[model.StatusBem]int64, error) {
	type linha struct {
		Status model.StatusBem
		Total  int64
	}

	var linhas []linha
	if err := r.db.WithContext(ctx).Model(&model.Bem{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&linhas).Error; err != nil {
		return nil, fmt.Errorf("falha ao contar bens por status: %w", err)
	}

	contagem := make(map[model.StatusBem]int64, len(linhas))
	for _, l := range linhas {
		contagem[l.Status] = l.Total
	}
	return contagem, nil
}

// SomarValorAquisicao soma o valor de aquisição dos bens filtrados
func (r *BemRepository) SomarValorAquisicao(ctx context.Context, filtro repository.FiltroBens) (float64, error) {
	tx := AplicarClausulas(r.db.WithContext(ctx).Model(&model.Bem{}), clausulasBens(filtro))

	var soma *float64
	if err := tx.Select("SUM(valor_aquisicao)").Scan(&soma).Error; err != nil {
		return 0, fmt.Errorf("falha ao somar valor de aquisição: %w", err)
	}
	if soma == nil {
		return 0, nil
	}
	return *soma, nil
}
