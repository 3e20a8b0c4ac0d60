package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jairomfjr/patrimonio-sub001/internal/app/inventario"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/model"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/repository"
	"github.com/jairomfjr/patrimonio-sub001/pkg/apierror"
	"go.uber.org/zap"
)

// InventarioHandler expõe as campanhas de inventário e seus vínculos
type InventarioHandler struct {
	servico *inventario.Service
	logger  *zap.Logger
}

// NewInventarioHandler cria o handler de inventários
func NewInventarioHandler(servico *inventario.Service, logger *zap.Logger) *InventarioHandler {
	return &InventarioHandler{servico: servico, logger: logger}
}

// InventarioRequest é o corpo de criação de uma campanha
type InventarioRequest struct {
	Nome        string `json:"nome" binding:"required"`
	Responsavel string `json:"responsavel"`
	Observacoes string `json:"observacoes"`
}

// Criar cadastra uma campanha no status PLANEJADO
func (h *InventarioHandler) Criar(c *gin.Context) {
	var req InventarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortarErro(c, apierror.Validation("dados do inventário inválidos", err))
		return
	}

	criado, err := h.servico.Criar(c.Request.Context(), req.Nome, req.Responsavel, req.Observacoes)
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, criado)
}

// BuscarPorID retorna um inventário pelo identificador
func (h *InventarioHandler) BuscarPorID(c *gin.Context) {
	encontrado, err := h.servico.BuscarPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, encontrado)
}

// Pesquisar retorna a página de inventários que satisfaz o filtro
func (h *InventarioHandler) Pesquisar(c *gin.Context) {
	filtro := repository.FiltroInventarios{Nome: textoOpcional(c, "nome")}

	if bruto := c.Query("status"); bruto != "" {
		status, err := model.ParseStatusInventario(bruto)
		if err != nil {
			abortarErro(c, err)
			return
		}
		filtro.Status = &status
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

// Iniciar coloca a campanha em andamento
func (h *InventarioHandler) Iniciar(c *gin.Context) {
	atualizado, err := h.servico.Iniciar(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, atualizado)
}

// EncerrarContagem envia a campanha para revisão
func (h *InventarioHandler) EncerrarContagem(c *gin.Context) {
	atualizado, err := h.servico.EncerrarContagem(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, atualizado)
}

// Concluir encerra a campanha
func (h *InventarioHandler) Concluir(c *gin.Context) {
	atualizado, err := h.servico.Concluir(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, atualizado)
}

// Cancelar aborta a campanha
func (h *InventarioHandler) Cancelar(c *gin.Context) {
	atualizado, err := h.servico.Cancelar(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, atualizado)
}

// Excluir remove uma campanha planejada ou cancelada
func (h *InventarioHandler) Excluir(c *gin.Context) {
	if err := h.servico.Excluir(c.Request.Context(), c.Param("id")); err != nil {
		abortarErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// VinculoBemRequest é o corpo de inclusão de bem na campanha
type VinculoBemRequest struct {
	BemID string `json:"bemId" binding:"required"`
}

// AdicionarBem inclui um bem na campanha
func (h *InventarioHandler) AdicionarBem(c *gin.Context) {
	var req VinculoBemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortarErro(c, apierror.Validation("bem do vínculo ausente", err))
		return
	}

	if err := h.servico.AdicionarBem(c.Request.Context(), c.Param("id"), req.BemID); err != nil {
		abortarErro(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// RemoverBem exclui um bem da campanha
func (h *InventarioHandler) RemoverBem(c *gin.Context) {
	if err := h.servico.RemoverBem(c.Request.Context(), c.Param("id"), c.Param("bemId")); err != nil {
		abortarErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListarBens retorna a página de vínculos da campanha
func (h *InventarioHandler) ListarBens(c *gin.Context) {
	pagina, err := paginaDaConsulta(c)
	if err != nil {
		abortarErro(c, err)
		return
	}

	resultado, err := h.servico.ListarBens(c.Request.Context(), c.Param("id"), pagina)
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resultado)
}

// VerificacaoRequest é o corpo da conferência de um bem na campanha
type VerificacaoRequest struct {
	Verificado *bool `json:"verificado" binding:"required"`
}

// MarcarVerificado registra o resultado da conferência de um bem
func (h *InventarioHandler) MarcarVerificado(c *gin.Context) {
	var req VerificacaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortarErro(c, apierror.Validation("resultado da verificação ausente", err))
		return
	}

	if err := h.servico.MarcarVerificado(c.Request.Context(), c.Param("id"), c.Param("bemId"), *req.Verificado); err != nil {
		abortarErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
