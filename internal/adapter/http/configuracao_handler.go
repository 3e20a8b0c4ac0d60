package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jairomfjr/patrimonio-sub001/internal/app/configuracao"
	"github.com/jairomfjr/patrimonio-sub001/pkg/apierror"
	"go.uber.org/zap"
)

// ConfiguracaoHandler expõe os parâmetros operacionais do sistema
type ConfiguracaoHandler struct {
	servico *configuracao.Service
	logger  *zap.Logger
}

// NewConfiguracaoHandler cria o handler de configurações
func NewConfiguracaoHandler(servico *configuracao.Service, logger *zap.Logger) *ConfiguracaoHandler {
	return &ConfiguracaoHandler{servico: servico, logger: logger}
}

// ConfiguracaoRequest é o corpo de criação de uma configuração
type ConfiguracaoRequest struct {
	Chave     string `json:"chave" binding:"required"`
	Valor     string `json:"valor"`
	Tipo      string `json:"tipo"`
	Descricao string `json:"descricao"`
	Editavel  *bool  `json:"editavel"`
}

// Criar cadastra uma configuração com chave única
func (h *ConfiguracaoHandler) Criar(c *gin.Context) {
	var req ConfiguracaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortarErro(c, apierror.Validation("dados da configuração inválidos", err))
		return
	}

	editavel := true
	if req.Editavel != nil {
		editavel = *req.Editavel
	}

	criada, err := h.servico.Criar(c.Request.Context(), req.Chave, req.Valor, req.Tipo, req.Descricao, editavel)
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, criada)
}

// BuscarPorChave retorna uma configuração pela chave
func (h *ConfiguracaoHandler) BuscarPorChave(c *gin.Context) {
	encontrada, err := h.servico.BuscarPorChave(c.Request.Context(), c.Param("chave"))
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, encontrada)
}

// Listar retorna a página de configurações ordenada por chave
func (h *ConfiguracaoHandler) Listar(c *gin.Context) {
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

// AtualizacaoConfiguracaoRequest é o corpo da atualização de valor
type AtualizacaoConfiguracaoRequest struct {
	Valor     string `json:"valor" binding:"required"`
	Descricao string `json:"descricao"`
}

// Atualizar altera o valor de uma configuração editável
func (h *ConfiguracaoHandler) Atualizar(c *gin.Context) {
	var req AtualizacaoConfiguracaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortarErro(c, apierror.Validation("dados da configuração inválidos", err))
		return
	}

	atualizada, err := h.servico.Atualizar(c.Request.Context(), c.Param("chave"), req.Valor, req.Descricao)
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, atualizada)
}
