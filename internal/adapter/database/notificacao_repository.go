package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jairomfjr/patrimonio-sub001/internal/domain/model"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/repository"
	"github.com/jairomfjr/patrimonio-sub001/pkg/pagination"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NotificacaoRepository implementa repository.NotificacaoRepository
type NotificacaoRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewNotificacaoRepository cria um novo repositório de notificações
func NewNotificacaoRepository(db *gorm.DB, logger *zap.Logger) repository.NotificacaoRepository {
	return &NotificacaoRepository{db: db, logger: logger}
}

// Criar persiste uma nova notificação
func (r *NotificacaoRepository) Criar(ctx context.Context, notificacao *model.Notificacao) error {
	if err := r.db.WithContext(ctx).Create(notificacao).Error; err != nil {
		r.logger.Error("falha ao criar notificação",
			zap.String("usuario_id", notificacao.UsuarioID),
			zap.Error(err))
		return fmt.Errorf("falha ao criar notificação: %w", err)
	}
	return nil
}

// BuscarPorID obtém uma notificação pelo identificador
func (r *NotificacaoRepository) BuscarPorID(ctx context.Context, id string) (*model.Notificacao, error) {
	var notificacao model.Notificacao
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&notificacao).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("falha ao buscar notificação: %w", err)
	}
	return &notificacao, nil
}

// Pesquisar aplica o filtro e retorna a página ordenada da mais recente
func (r *NotificacaoRepository) Pesquisar(ctx context.Context, filtro repository.FiltroNotificacoes, pagina pagination.Pagina) ([]*model.Notificacao, int64, error) {
	clausulas := []Clausula{
		ClausulaIgual("usuario_id", filtro.UsuarioID),
		ClausulaIgual("tipo", filtro.Tipo),
		ClausulaIgual("categoria", filtro.Categoria),
		ClausulaIgual("lida", filtro.Lida),
	}

	tx := AplicarClausulas(r.db.WithContext(ctx).Model(&model.Notificacao{}), clausulas)
	notificacoes, total, err := pesquisarPagina[model.Notificacao](tx, "criado_em DESC", pagina)
	if err != nil {
		return nil, 0, fmt.Errorf("falha ao pesquisar notificações: %w", err)
	}
	return notificacoes, total, nil
}

// MarcarLida marca a notificação como lida, gravando o instante
func (r *NotificacaoRepository) MarcarLida(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&model.Notificacao{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"lida":    true,
			"lida_em": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("falha ao marcar notificação como lida: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNaoEncontrado
	}
	return nil
}

// MarcarTodasLidas marca todas as notificações não lidas do usuário e
// retorna quantas foram afetadas
func (r *NotificacaoRepository) MarcarTodasLidas(ctx context.Context, usuarioID string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Notificacao{}).
		Where("usuario_id = ? AND lida = ?", usuarioID, false).
		Updates(map[string]interface{}{
			"lida":    true,
			"lida_em": time.Now(),
		})
	if result.Error != nil {
		return 0, fmt.Errorf("falha ao marcar notificações como lidas: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// ContarNaoLidas retorna quantas notificações do usuário seguem não lidas
func (r *NotificacaoRepository) ContarNaoLidas(ctx context.Context, usuarioID string) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Notificacao{}).
		Where("usuario_id = ? AND lida = ?", usuarioID, false).
		Count(&total).Error; err != nil {
		return 0, fmt.Errorf("falha ao contar notificações não lidas: %w", err)
	}
	return total, nil
}
