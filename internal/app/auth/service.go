package auth

import (
	"context"
	"errors"
	"time"

	"github.com/jairomfjr/patrimonio-sub001/internal/domain/model"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/repository"
	"github.com/jairomfjr/patrimonio-sub001/pkg/apierror"
	"github.com/jairomfjr/patrimonio-sub001/pkg/security"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Service gerencia autenticação e emissão de tokens
type Service struct {
	keyManager *security.KeyManager
	usuarios   repository.UsuarioRepository
	duracao    time.Duration
	logger     *zap.Logger
}

// NewService cria o serviço de autenticação
func NewService(
	keyManager *security.KeyManager,
	usuarios repository.UsuarioRepository,
	duracao time.Duration,
	logger *zap.Logger,
) *Service {
	if duracao <= 0 {
		duracao = 24 * time.Hour
	}
	return &Service{
		keyManager: keyManager,
		usuarios:   usuarios,
		duracao:    duracao,
		logger:     logger,
	}
}

// Sessao é o resultado de um login bem sucedido
type Sessao struct {
	Token       string         `json:"token"`
	ExpiraEm    time.Time      `json:"expiraEm"`
	Usuario     *model.Usuario `json:"usuario"`
	NivelAcesso int            `json:"nivelAcesso"`
}

// Login autentica por username ou e-mail e emite o token JWT. O nível de
// acesso do token é o maior nível entre os perfis ativos do usuário.
func (s *Service) Login(ctx context.Context, login, senha string) (*Sessao, error) {
	usuario, err := s.usuarios.BuscarPorLogin(ctx, login)
	if err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			// mesma resposta de senha errada, sem vazar existência da conta
			return nil, apierror.Unauthorized("credenciais inválidas", nil)
		}
		return nil, apierror.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(senha)); err != nil {
		s.logger.Warn("falha na autenticação", zap.String("login", login))
		return nil, apierror.Unauthorized("credenciais inválidas", nil)
	}

	agora := time.Now()
	if !usuario.Ativo {
		return nil, apierror.Forbidden("conta desativada", nil)
	}
	if usuario.Bloqueado(agora) {
		return nil, apierror.Forbidden("conta bloqueada", nil)
	}
	if usuario.SenhaExpiraEm != nil && usuario.SenhaExpiraEm.Before(agora) {
		return nil, apierror.Forbidden("senha expirada", nil)
	}

	nivel, err := s.nivelAcesso(ctx, usuario.ID)
	if err != nil {
		return nil, err
	}

	token, err := s.keyManager.GenerateToken(usuario.ID, usuario.Username, nivel, s.duracao)
	if err != nil {
		s.logger.Error("falha ao gerar token", zap.String("usuario_id", usuario.ID), zap.Error(err))
		return nil, apierror.Internal(err)
	}

	if err := s.usuarios.RegistrarLogin(ctx, usuario.ID); err != nil {
		s.logger.Warn("falha ao registrar último login",
			zap.String("usuario_id", usuario.ID),
			zap.Error(err))
	}

	s.logger.Info("login bem sucedido", zap.String("usuario_id", usuario.ID))
	return &Sessao{
		Token:       token,
		ExpiraEm:    agora.Add(s.duracao),
		Usuario:     usuario,
		NivelAcesso: nivel,
	}, nil
}

// ValidarToken valida o token e retorna as claims
func (s *Service) ValidarToken(tokenString string) (*security.Claims, error) {
	claims, err := s.keyManager.VerifyToken(tokenString)
	if err != nil {
		return nil, apierror.Unauthorized("token inválido ou expirado", err)
	}
	return claims, nil
}

// nivelAcesso resolve o maior nível entre os perfis ativos do usuário.
// Usuário sem perfil ativo recebe nível 1 (leitura).
func (s *Service) nivelAcesso(ctx context.Context, usuarioID string) (int, error) {
	perfis, err := s.usuarios.PerfisDoUsuario(ctx, usuarioID)
	if err != nil {
		return 0, apierror.Internal(err)
	}

	nivel := 1
	for _, perfil := range perfis {
		if perfil.Ativo && perfil.NivelAcesso > nivel {
			nivel = perfil.NivelAcesso
		}
	}
	return nivel, nil
}
