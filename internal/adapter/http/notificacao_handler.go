package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jairomfjr/patrimonio-sub001/internal/app/notificacao"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/repository"
	"github.com/jairomfjr/patrimonio-sub001/internal/infra/middleware"
	"github.com/jairomfjr/patrimonio-sub001/pkg/apierror"
	"go.uber.org/zap"
)

// NotificacaoHandler expõe as notificações do usuário autenticado
type NotificacaoHandler struct {
	servico *notificacao.Service
	logger  *zap.Logger
}

// NewNotificacaoHandler cria o handler de notificações
func NewNotificacaoHandler(servico *notificacao.Service, logger *zap.Logger) *NotificacaoHandler {
	return &NotificacaoHandler{servico: servico, logger: logger}
}

// NotificacaoRequest é o corpo de criação de uma notificação
type NotificacaoRequest struct {
	UsuarioID    string `json:"usuarioId" binding:"required"`
	Tipo         string `json:"tipo" binding:"required"`
	Categoria    string `json:"categoria"`
	Prioridade   int    `json:"prioridade"`
	Titulo       string `json:"titulo" binding:"required"`
	Mensagem     string `json:"mensagem"`
	CanalEmail   bool   `json:"canalEmail"`
	CanalSistema bool   `json:"canalSistema"`
}

// Criar registra uma notificação para um usuário
func (h *NotificacaoHandler) Criar(c *gin.Context) {
	var req NotificacaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortarErro(c, apierror.Validation("dados da notificação inválidos", err))
		return
	}

	criada, err := h.servico.Criar(c.Request.Context(), notificacao.NovaNotificacao{
		UsuarioID:    req.UsuarioID,
		Tipo:         req.Tipo,
		Categoria:    req.Categoria,
		Prioridade:   req.Prioridade,
		Titulo:       req.Titulo,
		Mensagem:     req.Mensagem,
		CanalEmail:   req.CanalEmail,
		CanalSistema: req.CanalSistema,
	})
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, criada)
}

// BuscarPorID retorna uma notificação pelo identificador
func (h *NotificacaoHandler) BuscarPorID(c *gin.Context) {
	encontrada, err := h.servico.BuscarPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, encontrada)
}

// Pesquisar retorna a página de notificações do usuário autenticado
func (h *NotificacaoHandler) Pesquisar(c *gin.Context) {
	usuarioID := c.GetString(middleware.ContextoUsuarioID)
	filtro := repository.FiltroNotificacoes{
		UsuarioID: &usuarioID,
		Tipo:      textoOpcional(c, "tipo"),
		Categoria: textoOpcional(c, "categoria"),
	}

	var err error
	if filtro.Lida, err = boolOpcional(c, "lida"); err != nil {
		abortarErro(c, err)
		return
	}

	pagina, err := paginaDaConsulta(c)
	if err != nil {
		abortarErro(c, err)
		return
	}

	resultado, err := h.servico.Pesquisar(c.Request.Context(), filtro, pagina)
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resultado)
}

// MarcarLida marca a notificação do usuário autenticado como lida
func (h *NotificacaoHandler) MarcarLida(c *gin.Context) {
	usuarioID := c.GetString(middleware.ContextoUsuarioID)
	if err := h.servico.MarcarLida(c.Request.Context(), c.Param("id"), usuarioID); err != nil {
		abortarErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// MarcarTodasLidas marca todas as notificações do usuário autenticado
func (h *NotificacaoHandler) MarcarTodasLidas(c *gin.Context) {
	usuarioID := c.GetString(middleware.ContextoUsuarioID)
	total, err := h.servico.MarcarTodasLidas(c.Request.Context(), usuarioID)
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"marcadas": total})
}

// ContarNaoLidas retorna o total de não lidas do usuário autenticado
func (h *NotificacaoHandler) ContarNaoLidas(c *gin.Context) {
	usuarioID := c.GetString(middleware.ContextoUsuarioID)
	total, err := h.servico.ContarNaoLidas(c.Request.Context(), usuarioID)
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"naoLidas": total})
}
