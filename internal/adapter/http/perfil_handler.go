package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jairomfjr/patrimonio-sub001/internal/app/usuario"
	"github.com/jairomfjr/patrimonio-sub001/pkg/apierror"
	"go.uber.org/zap"
)

// PerfilHandler expõe o cadastro de perfis de acesso
type PerfilHandler struct {
	servico *usuario.PerfilService
	logger  *zap.Logger
}

// NewPerfilHandler cria o handler de perfis
func NewPerfilHandler(servico *usuario.PerfilService, logger *zap.Logger) *PerfilHandler {
	return &PerfilHandler{servico: servico, logger: logger}
}

// PerfilRequest é o corpo de criação e atualização de perfis
type PerfilRequest struct {
	Nome        string `json:"nome" binding:"required"`
	NivelAcesso int    `json:"nivelAcesso" binding:"required"`
	Ativo       *bool  `json:"ativo"`
	Permissoes  string `json:"permissoes"`
}

// Criar cadastra um perfil com nome único
func (h *PerfilHandler) Criar(c *gin.Context) {
	var req PerfilRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortarErro(c, apierror.Validation("dados do perfil inválidos", err))
		return
	}

	criado, err := h.servico.Criar(c.Request.Context(), req.Nome, req.NivelAcesso, req.Permissoes)
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, criado)
}

// BuscarPorID retorna um perfil pelo identificador
func (h *PerfilHandler) BuscarPorID(c *gin.Context) {
	encontrado, err := h.servico.BuscarPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, encontrado)
}

// Listar retorna a página de perfis
func (h *PerfilHandler) Listar(c *gin.Context) {
	pagina, err := paginaDaConsulta(c)
	if err != nil {
		abortarErro(c, err)
		return
	}

	resultado, err := h.servico.Listar(c.Request.Context(), pagina)
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resultado)
}

// Atualizar altera os dados do perfil
func (h *PerfilHandler) Atualizar(c *gin.Context) {
	var req PerfilRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortarErro(c, apierror.Validation("dados do perfil inválidos", err))
		return
	}

	ativo := true
	if req.Ativo != nil {
		ativo = *req.Ativo
	}

	atualizado, err := h.servico.Atualizar(c.Request.Context(), c.Param("id"), req.Nome, req.NivelAcesso, ativo, req.Permissoes)
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, atualizado)
}
