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

// colunasUnicasUsuario são as colunas aceitas por ExisteCampoUnico. A lista
// fechada impede que entrada externa vire nome de coluna na consulta.
var colunasUnicasUsuario = map[string]bool{
	"username":  true,
	"email":     true,
	"cpf":       true,
	"matricula": true,
}

// UsuarioRepository implementa repository.UsuarioRepository
type UsuarioRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewUsuarioRepository cria um novo repositório de usuários
func NewUsuarioRepository(db *gorm.DB, logger *zap.Logger) repository.UsuarioRepository {
	return &UsuarioRepository{db: db, logger: logger}
}

// Criar persiste um novo usuário
func (r *UsuarioRepository) Criar(ctx context.Context, usuario *model.Usuario) error {
	if err := r.db.WithContext(ctx).Create(usuario).Error; err != nil {
		r.logger.Error("falha ao criar usuário", zap.String("username", usuario.Username), zap.Error(err))
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repository.ErrDuplicado
		}
		return fmt.Errorf("falha ao criar usuário: %w", err)
	}
	return nil
}

// BuscarPorID obtém um usuário pelo identificador
func (r *UsuarioRepository) BuscarPorID(ctx context.Context, id string) (*model.Usuario, error) {
	var usuario model.Usuario
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&usuario).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("falha ao buscar usuário: %w", err)
	}
	return &usuario, nil
}

// BuscarPorLogin obtém um usuário por username ou e-mail
func (r *UsuarioRepository) BuscarPorLogin(ctx context.Context, login string) (*model.Usuario, error) {
	var usuario model.Usuario
	if err := r.db.WithContext(ctx).
		Where("username = ? OR email = ?", login, login).
		First(&usuario).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("falha ao buscar usuário por login: %w", err)
	}
	return &usuario, nil
}

// ExisteCampoUnico verifica se o valor já está em uso em outra conta
func (r *UsuarioRepository) ExisteCampoUnico(ctx context.Context, campo, valor, ignorarID string) (bool, error) {
	if !colunasUnicasUsuario[campo] {
		return false, fmt.Errorf("campo único desconhecido: %s", campo)
	}

	tx := r.db.WithContext(ctx).Model(&model.Usuario{}).Where(campo+" = ?", valor)
	if ignorarID != "" {
		tx = tx.Where("id <> ?", ignorarID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return false, fmt.Errorf("falha ao verificar campo único: %w", err)
	}
	return total > 0, nil
}

// Pesquisar aplica o filtro e retorna a página ordenada por nome
func (r *UsuarioRepository) Pesquisar(ctx context.Context, filtro repository.FiltroUsuarios, pagina pagination.Pagina) ([]*model.Usuario, int64, error) {
	clausulas := []Clausula{
		ClausulaContem("nome", filtro.Nome),
		ClausulaContem("username", filtro.Username),
		ClausulaContem("email", filtro.Email),
		ClausulaContem("departamento", filtro.Departamento),
		ClausulaIgual("ativo", filtro.Ativo),
	}

	tx := AplicarClausulas(r.db.WithContext(ctx).Model(&model.Usuario{}), clausulas)
	usuarios, total, err := pesquisarPagina[model.Usuario](tx, "nome", pagina)
	if err != nil {
		return nil, 0, fmt.Errorf("falha ao pesquisar usuários: %w", err)
	}
	return usuarios, total, nil
}

// Atualizar sobrescreve os campos mutáveis do usuário
func (r *UsuarioRepository) Atualizar(ctx context.Context, usuario *model.Usuario) error {
	result := r.db.WithContext(ctx).Model(&model.Usuario{}).
		Where("id = ?", usuario.ID).
		Select("username", "email", "cpf", "matricula", "nome", "departamento",
			"senha_hash", "ativo", "data_bloqueio", "senha_expira_em").
		Updates(usuario)
	if result.Error != nil {
		return fmt.Errorf("falha ao atualizar usuário: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNaoEncontrado
	}
	return nil
}

// RegistrarLogin grava a data do último login bem sucedido
func (r *UsuarioRepository) RegistrarLogin(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&model.Usuario{}).
		Where("id = ?", id).
		Update("ultimo_login", time.Now())
	if result.Error != nil {
		return fmt.Errorf("falha ao registrar login: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNaoEncontrado
	}
	return nil
}

// VincularPerfil associa um perfil ao usuário
func (r *UsuarioRepository) VincularPerfil(ctx context.Context, usuarioID, perfilID string) error {
	vinculo := model.UsuarioPerfil{
		UsuarioID: usuarioID,
		PerfilID:  perfilID,
	}
	if err := r.db.WithContext(ctx).Create(&vinculo).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repository.ErrDuplicado
		}
		return fmt.Errorf("falha ao vincular perfil: %w", err)
	}
	return nil
}

// DesvincularPerfil remove a associação entre usuário e perfil
func (r *UsuarioRepository) DesvincularPerfil(ctx context.Context, usuarioID, perfilID string) error {
	result := r.db.WithContext(ctx).
		Where("usuario_id = ? AND perfil_id = ?", usuarioID, perfilID).
		Delete(&model.UsuarioPerfil{})
	if result.Error != nil {
		return fmt.Errorf("falha ao desvincular perfil: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNaoEncontrado
	}
	return nil
}

// PerfisDoUsuario retorna os perfis vinculados ao usuário
func (r *UsuarioRepository) PerfisDoUsuario(ctx context.Context, usuarioID string) ([]*model.Perfil, error) {
	var perfis []*model.Perfil
	if err := r.db.WithContext(ctx).Model(&model.Perfil{}).
		Joins("JOIN usuario_perfis ON usuario_perfis.perfil_id = perfis.id").
		Where("usuario_perfis.usuario_id = ?", usuarioID).
		Order("perfis.nivel_acesso DESC").
		Find(&perfis).Error; err != nil {
		return nil, fmt.Errorf("falha ao buscar perfis do usuário: %w", err)
	}
	return perfis, nil
}
