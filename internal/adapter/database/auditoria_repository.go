package database

import (
	"context"
	"fmt"

	"github.com/jairomfjr/patrimonio-sub001/internal/domain/model"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/repository"
	"github.com/jairomfjr/patrimonio-sub001/pkg/pagination"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AuditoriaRepository implementa repository.AuditoriaRepository.
// Registros de auditoria nunca são alterados nem removidos.
type AuditoriaRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewAuditoriaRepository cria um novo repositório de auditoria
func NewAuditoriaRepository(db *gorm.DB, logger *zap.Logger) repository.AuditoriaRepository {
	return &AuditoriaRepository{db: db, logger: logger}
}

// Criar persiste um novo registro de auditoria
func (r *AuditoriaRepository) Criar(ctx context.Context, registro *model.RegistroAuditoria) error {
	if err := r.db.WithContext(ctx).Create(registro).Error; err != nil {
		r.logger.Error("falha ao gravar auditoria",
			zap.String("entidade", registro.Entidade),
			zap.String("acao", registro.Acao),
			zap.Error(err))
		return fmt.Errorf("falha ao gravar auditoria: %w", err)
	}
	return nil
}

// Pesquisar aplica o filtro e retorna a página ordenada da mais recente
func (r *AuditoriaRepository) Pesquisar(ctx context.Context, filtro repository.FiltroAuditoria, pagina pagination.Pagina) ([]*model.RegistroAuditoria, int64, error) {
	clausulas := []Clausula{
		ClausulaIgual("entidade", filtro.Entidade),
		ClausulaIgual("entidade_id", filtro.EntidadeID),
		ClausulaIgual("acao", filtro.Acao),
		ClausulaIgual("usuario_id", filtro.UsuarioID),
		ClausulaMinimo("data_hora", filtro.De),
		ClausulaMaximo("data_hora", filtro.Ate),
	}

	tx := AplicarClausulas(r.db.WithContext(ctx).Model(&model.RegistroAuditoria{}), clausulas)
	registros, total, err := pesquisarPagina[model.RegistroAuditoria](tx, "data_hora DESC", pagina)
	if err != nil {
		return nil, 0, fmt.Errorf("falha ao pesquisar auditoria: %w", err)
	}
	return registros, total, nil
}
