package usuario

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/model"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/repository"
	"github.com/jairomfjr/patrimonio-sub001/pkg/apierror"
	"github.com/jairomfjr/patrimonio-sub001/pkg/pagination"
	"go.uber.org/zap"
)

// PerfilService concentra as regras de negócio de perfis de acesso
type PerfilService struct {
	perfis repository.PerfilRepository
	logger *zap.Logger
}

// NewPerfilService cria o serviço de perfis
func NewPerfilService(perfis repository.PerfilRepository, logger *zap.Logger) *PerfilService {
	return &PerfilService{perfis: perfis, logger: logger}
}

// Criar cadastra um perfil com nome único e nível de acesso
func (s *PerfilService) Criar(ctx context.Context, nome string, nivelAcesso int, permissoes string) (*model.Perfil, error) {
	if nome == "" {
		return nil, apierror.Validation("nome do perfil é obrigatório", nil).WithField("nome", "obrigatório")
	}
	if nivelAcesso < 1 {
		return nil, apierror.Validation("nível de acesso deve ser positivo", nil).WithField("nivelAcesso", "deve ser positivo")
	}

	existe, err := s.perfis.ExisteNome(ctx, nome, "")
	if err != nil {
		return nil, apierror.Internal(err)
	}
	if existe {
		return nil, apierror.CampoDuplicado("perfil", "nome", nome)
	}

	perfil := &model.Perfil{
		ID:          uuid.New().String(),
		Nome:        nome,
		NivelAcesso: nivelAcesso,
		Ativo:       true,
		Permissoes:  permissoes,
	}

	if err := s.perfis.Criar(ctx, perfil); err != nil {
		if errors.Is(err, repository.ErrDuplicado) {
			return nil, apierror.CampoDuplicado("perfil", "nome", nome)
		}
		return nil, apierror.Internal(err)
	}

	s.logger.Info("perfil criado", zap.String("id", perfil.ID), zap.String("nome", nome))
	return perfil, nil
}

// BuscarPorID obtém um perfil pelo identificador
func (s *PerfilService) BuscarPorID(ctx context.Context, id string) (*model.Perfil, error) {
	perfil, err := s.perfis.BuscarPorID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return nil, apierror.NotFound("perfil", err)
		}
		return nil, apierror.Internal(err)
	}
	return perfil, nil
}

// Listar retorna a página de perfis
func (s *PerfilService) Listar(ctx context.Context, pagina pagination.Pagina) (*pagination.Resultado[*model.Perfil], error) {
	perfis, total, err := s.perfis.Listar(ctx, pagina)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	return pagination.NovoResultado(perfis, total, pagina), nil
}

// Atualizar altera os dados do perfil
func (s *PerfilService) Atualizar(ctx context.Context, id, nome string, nivelAcesso int, ativo bool, permissoes string) (*model.Perfil, error) {
	perfil, err := s.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}

	if nome == "" {
		return nil, apierror.Validation("nome do perfil é obrigatório", nil).WithField("nome", "obrigatório")
	}
	if nivelAcesso < 1 {
		return nil, apierror.Validation("nível de acesso deve ser positivo", nil).WithField("nivelAcesso", "deve ser positivo")
	}

	existe, err := s.perfis.ExisteNome(ctx, nome, id)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	if existe {
		return nil, apierror.CampoDuplicado("perfil", "nome", nome)
	}

	perfil.Nome = nome
	perfil.NivelAcesso = nivelAcesso
	perfil.Ativo = ativo
	perfil.Permissoes = permissoes

	if err := s.perfis.Atualizar(ctx, perfil); err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return nil, apierror.NotFound("perfil", err)
		}
		return nil, apierror.Internal(err)
	}
	return perfil, nil
}
