package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jairomfjr/patrimonio-sub001/pkg/security"
	"go.uber.org/zap"
)

// Chaves do contexto gin preenchidas pela autenticação
const (
	ContextoUsuarioID   = "usuario_id"
	ContextoUsername    = "username"
	ContextoNivelAcesso = "nivel_acesso"
)

// AuthMiddleware valida tokens e aplica o controle de nível de acesso
type AuthMiddleware struct {
	keyManager *security.KeyManager
	logger     *zap.Logger
}

// NewAuthMiddleware cria o middleware de autenticação
func NewAuthMiddleware(keyManager *security.KeyManager, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		keyManager: keyManager,
		logger:     logger,
	}
}

// Authenticate exige um token Bearer válido e popula o contexto com a
// identidade do usuário
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortarComErro(c, 401, "UNAUTHORIZED", "token de autenticação ausente")
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if token == header {
			abortarComErro(c, 401, "UNAUTHORIZED", "formato de autorização inválido, use Bearer")
			return
		}

		claims, err := m.keyManager.VerifyToken(token)
		if err != nil {
			m.logger.Warn("token rejeitado", zap.Error(err))
			abortarComErro(c, 401, "UNAUTHORIZED", "token inválido ou expirado")
			return
		}

		c.Set(ContextoUsuarioID, claims.UserID)
		c.Set(ContextoUsername, claims.Username)
		c.Set(ContextoNivelAcesso, claims.NivelAcesso)
		c.Next()
	}
}

// ExigirNivel exige nível de acesso mínimo para rotas de escrita ou
// administração. Deve vir depois de Authenticate.
func (m *AuthMiddleware) ExigirNivel(minimo int) gin.HandlerFunc {
	return func(c *gin.Context) {
		nivel := c.GetInt(ContextoNivelAcesso)
		if nivel < minimo {
			m.logger.Warn("acesso negado por nível insuficiente",
				zap.String("usuario_id", c.GetString(ContextoUsuarioID)),
				zap.Int("nivel", nivel),
				zap.Int("minimo", minimo))
			abortarComErro(c, 403, "FORBIDDEN", "nível de acesso insuficiente")
			return
		}
		c.Next()
	}
}
