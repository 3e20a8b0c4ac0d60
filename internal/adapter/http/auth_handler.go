package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jairomfjr/patrimonio-sub001/internal/app/auth"
	"github.com/jairomfjr/patrimonio-sub001/internal/app/usuario"
	"github.com/jairomfjr/patrimonio-sub001/internal/infra/middleware"
	"github.com/jairomfjr/patrimonio-sub001/pkg/apierror"
	"go.uber.org/zap"
)

// AuthHandler expõe o login e a identidade da sessão corrente
type AuthHandler struct {
	servico  *auth.Service
	usuarios *usuario.Service
	logger   *zap.Logger
}

// NewAuthHandler cria o handler de autenticação
func NewAuthHandler(servico *auth.Service, usuarios *usuario.Service, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{servico: servico, usuarios: usuarios, logger: logger}
}

// LoginRequest é o corpo do login, por username ou e-mail
type LoginRequest struct {
	Login string `json:"login" binding:"required"`
	Senha string `json:"senha" binding:"required"`
}

// Login autentica o usuário e emite o token JWT
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortarErro(c, apierror.Validation("credenciais ausentes", err))
		return
	}

	sessao, err := h.servico.Login(c.Request.Context(), req.Login, req.Senha)
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, sessao)
}

// Me retorna o usuário autenticado e seus perfis
func (h *AuthHandler) Me(c *gin.Context) {
	usuarioID := c.GetString(middleware.ContextoUsuarioID)

	atual, err := h.usuarios.BuscarPorID(c.Request.Context(), usuarioID)
	if err != nil {
		abortarErro(c, err)
		return
	}

	perfis, err := h.usuarios.PerfisDoUsuario(c.Request.Context(), usuarioID)
	if err != nil {
		abortarErro(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"usuario":     atual,
		"perfis":      perfis,
		"nivelAcesso": c.GetInt(middleware.ContextoNivelAcesso),
	})
}
