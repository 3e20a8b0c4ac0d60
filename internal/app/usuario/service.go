package usuario

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/model"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/repository"
	"github.com/jairomfjr/patrimonio-sub001/pkg/apierror"
	"github.com/jairomfjr/patrimonio-sub001/pkg/pagination"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Service concentra as regras de negócio de usuários e perfis
type Service struct {
	usuarios      repository.UsuarioRepository
	perfis        repository.PerfilRepository
	senhaMinima   int
	validadeSenha time.Duration
	logger        *zap.Logger
}

// NewService cria o serviço de usuários. validadeSenha zero desativa a
// expiração de senha.
func NewService(
	usuarios repository.UsuarioRepository,
	perfis repository.PerfilRepository,
	senhaMinima int,
	validadeSenha time.Duration,
	logger *zap.Logger,
) *Service {
	if senhaMinima <= 0 {
		senhaMinima = 8
	}
	return &Service{
		usuarios:      usuarios,
		perfis:        perfis,
		senhaMinima:   senhaMinima,
		validadeSenha: validadeSenha,
		logger:        logger,
	}
}

// NovoUsuario reúne os dados de cadastro de um usuário
type NovoUsuario struct {
	Username     string
	Email        string
	CPF          string
	Matricula    string
	Nome         string
	Departamento string
	Senha        string
}

// camposUnicos aponta cada coluna única para o valor proposto
func (n NovoUsuario) camposUnicos() map[string]string {
	return map[string]string{
		"username":  n.Username,
		"email":     n.Email,
		"cpf":       n.CPF,
		"matricula": n.Matricula,
	}
}

func (s *Service) validarCamposUnicos(ctx context.Context, campos map[string]string, ignorarID string) error {
	for campo, valor := range campos {
		if valor == "" {
			continue
		}
		existe, err := s.usuarios.ExisteCampoUnico(ctx, campo, valor, ignorarID)
		if err != nil {
			return apierror.Internal(err)
		}
		if existe {
			return apierror.CampoDuplicado("usuário", campo, valor)
		}
	}
	return nil
}

func (s *Service) validarSenha(senha string) error {
	if len(senha) < s.senhaMinima {
		return apierror.Validation(
			fmt.Sprintf("senha deve ter ao menos %d caracteres", s.senhaMinima), nil,
		).WithField("senha", fmt.Sprintf("mínimo de %d caracteres", s.senhaMinima))
	}
	return nil
}

// Criar cadastra um novo usuário ativo com senha criptografada
func (s *Service) Criar(ctx context.Context, novo NovoUsuario) (*model.Usuario, error) {
	if novo.Username == "" || novo.Email == "" || novo.Nome == "" {
		return nil, apierror.Validation("username, email e nome são obrigatórios", nil)
	}
	if err := s.validarSenha(novo.Senha); err != nil {
		return nil, err
	}
	if err := s.validarCamposUnicos(ctx, novo.camposUnicos(), ""); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(novo.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, apierror.Internal(err)
	}

	usuario := &model.Usuario{
		ID:           uuid.New().String(),
		Username:     novo.Username,
		Email:        novo.Email,
		CPF:          novo.CPF,
		Matricula:    novo.Matricula,
		Nome:         novo.Nome,
		Departamento: novo.Departamento,
		SenhaHash:    string(hash),
		Ativo:        true,
	}
	if s.validadeSenha > 0 {
		expira := time.Now().Add(s.validadeSenha)
		usuario.SenhaExpiraEm = &expira
	}

	if err := s.usuarios.Criar(ctx, usuario); err != nil {
		if errors.Is(err, repository.ErrDuplicado) {
			return nil, apierror.CampoDuplicado("usuário", "username", novo.Username)
		}
		return nil, apierror.Internal(err)
	}

	s.logger.Info("usuário criado",
		zap.String("id", usuario.ID),
		zap.String("username", usuario.Username))
	return usuario, nil
}

// BuscarPorID obtém um usuário pelo identificador
func (s *Service) BuscarPorID(ctx context.Context, id string) (*model.Usuario, error) {
	usuario, err := s.usuarios.BuscarPorID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return nil, apierror.NotFound("usuário", err)
		}
		return nil, apierror.Internal(err)
	}
	return usuario, nil
}

// Pesquisar retorna a página de usuários que satisfaz o filtro
func (s *Service) Pesquisar(ctx context.Context, filtro repository.FiltroUsuarios, pagina pagination.Pagina) (*pagination.Resultado[*model.Usuario], error) {
	usuarios, total, err := s.usuarios.Pesquisar(ctx, filtro, pagina)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	return pagination.NovoResultado(usuarios, total, pagina), nil
}

// Atualizar altera os dados cadastrais do usuário, sem tocar na senha
func (s *Service) Atualizar(ctx context.Context, id string, dados NovoUsuario) (*model.Usuario, error) {
	usuario, err := s.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dados.Username == "" || dados.Email == "" || dados.Nome == "" {
		return nil, apierror.Validation("username, email e nome são obrigatórios", nil)
	}
	if err := s.validarCamposUnicos(ctx, dados.camposUnicos(), id); err != nil {
		return nil, err
	}

	usuario.Username = dados.Username
	usuario.Email = dados.Email
	usuario.CPF = dados.CPF
	usuario.Matricula = dados.Matricula
	usuario.Nome = dados.Nome
	usuario.Departamento = dados.Departamento

	if err := s.usuarios.Atualizar(ctx, usuario); err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return nil, apierror.NotFound("usuário", err)
		}
		return nil, apierror.Internal(err)
	}
	return usuario, nil
}

// AlterarSenha troca a senha do usuário validando a senha atual
func (s *Service) AlterarSenha(ctx context.Context, id, senhaAtual, novaSenha string) error {
	usuario, err := s.BuscarPorID(ctx, id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(senhaAtual)); err != nil {
		return apierror.Unauthorized("senha atual incorreta", nil)
	}
	if err := s.validarSenha(novaSenha); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(novaSenha), bcrypt.DefaultCost)
	if err != nil {
		return apierror.Internal(err)
	}

	usuario.SenhaHash = string(hash)
	if s.validadeSenha > 0 {
		expira := time.Now().Add(s.validadeSenha)
		usuario.SenhaExpiraEm = &expira
	}

	if err := s.usuarios.Atualizar(ctx, usuario); err != nil {
		return apierror.Internal(err)
	}

	s.logger.Info("senha alterada", zap.String("usuario_id", id))
	return nil
}

// Ativar reativa a conta do usuário
func (s *Service) Ativar(ctx context.Context, id string) (*model.Usuario, error) {
	return s.alterarAtivacao(ctx, id, true)
}

// Desativar suspende a conta do usuário
func (s *Service) Desativar(ctx context.Context, id string) (*model.Usuario, error) {
	return s.alterarAtivacao(ctx, id, false)
}

func (s *Service) alterarAtivacao(ctx context.Context, id string, ativo bool) (*model.Usuario, error) {
	usuario, err := s.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}

	usuario.Ativo = ativo
	if err := s.usuarios.Atualizar(ctx, usuario); err != nil {
		return nil, apierror.Internal(err)
	}
	return usuario, nil
}

// Bloquear impede o acesso do usuário a partir de agora
func (s *Service) Bloquear(ctx context.Context, id string) (*model.Usuario, error) {
	usuario, err := s.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}

	agora := time.Now()
	usuario.DataBloqueio = &agora
	if err := s.usuarios.Atualizar(ctx, usuario); err != nil {
		return nil, apierror.Internal(err)
	}

	s.logger.Info("usuário bloqueado", zap.String("id", id))
	return usuario, nil
}

// Desbloquear remove o bloqueio de acesso
func (s *Service) Desbloquear(ctx context.Context, id string) (*model.Usuario, error) {
	usuario, err := s.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}

	usuario.DataBloqueio = nil
	if err := s.usuarios.Atualizar(ctx, usuario); err != nil {
		return nil, apierror.Internal(err)
	}
	return usuario, nil
}

// VincularPerfil associa um perfil existente ao usuário
func (s *Service) VincularPerfil(ctx context.Context, usuarioID, perfilID string) error {
	if _, err := s.BuscarPorID(ctx, usuarioID); err != nil {
		return err
	}
	if _, err := s.perfis.BuscarPorID(ctx, perfilID); err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return apierror.NotFound("perfil", err)
		}
		return apierror.Internal(err)
	}

	if err := s.usuarios.VincularPerfil(ctx, usuarioID, perfilID); err != nil {
		if errors.Is(err, repository.ErrDuplicado) {
			return apierror.BusinessRule("perfil já vinculado ao usuário", nil)
		}
		return apierror.Internal(err)
	}
	return nil
}

// DesvincularPerfil remove a associação entre usuário e perfil
func (s *Service) DesvincularPerfil(ctx context.Context, usuarioID, perfilID string) error {
	if err := s.usuarios.DesvincularPerfil(ctx, usuarioID, perfilID); err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return apierror.NotFound("vínculo de perfil", err)
		}
		return apierror.Internal(err)
	}
	return nil
}

// PerfisDoUsuario retorna os perfis vinculados ao usuário
func (s *Service) PerfisDoUsuario(ctx context.Context, usuarioID string) ([]*model.Perfil, error) {
	if _, err := s.BuscarPorID(ctx, usuarioID); err != nil {
		return nil, err
	}

	perfis, err := s.usuarios.PerfisDoUsuario(ctx, usuarioID)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	return perfis, nil
}
