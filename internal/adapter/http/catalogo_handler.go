package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jairomfjr/patrimonio-sub001/internal/app/catalogo"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/repository"
	"github.com/jairomfjr/patrimonio-sub001/pkg/apierror"
	"go.uber.org/zap"
)

// CategoriaHandler expõe as operações de categorias
type CategoriaHandler struct {
	servico *catalogo.CategoriaService
	logger  *zap.Logger
}

// NewCategoriaHandler cria o handler de categorias
func NewCategoriaHandler(servico *catalogo.CategoriaService, logger *zap.Logger) *CategoriaHandler {
	return &CategoriaHandler{servico: servico, logger: logger}
}

// CategoriaRequest é o corpo de criação e atualização de categorias
type CategoriaRequest struct {
	Nome      string `json:"nome" binding:"required"`
	Descricao string `json:"descricao"`
}

// Criar cadastra uma nova categoria
func (h *CategoriaHandler) Criar(c *gin.Context) {
	var req CategoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortarErro(c, apierror.Validation("dados da categoria inválidos", err))
		return
	}

	criada, err := h.servico.Criar(c.Request.Context(), req.Nome, req.Descricao)
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, criada)
}

// BuscarPorID retorna uma categoria pelo identificador
func (h *CategoriaHandler) BuscarPorID(c *gin.Context) {
	encontrada, err := h.servico.BuscarPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, encontrada)
}

// Pesquisar retorna a página de categorias que satisfaz o filtro
func (h *CategoriaHandler) Pesquisar(c *gin.Context) {
	pagina, err := paginaDaConsulta(c)
	if err != nil {
		abortarErro(c, err)
		return
	}

	filtro := repository.FiltroCategorias{Nome: textoOpcional(c, "nome")}
	resultado, err := h.servico.Pesquisar(c.Request.Context(), filtro, pagina)
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resultado)
}

// Atualizar altera nome e descrição da categoria
func (h *CategoriaHandler) Atualizar(c *gin.Context) {
	var req CategoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortarErro(c, apierror.Validation("dados da categoria inválidos", err))
		return
	}

	atualizada, err := h.servico.Atualizar(c.Request.Context(), c.Param("id"), req.Nome, req.Descricao)
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, atualizada)
}

// Excluir remove uma categoria sem bens vinculados
func (h *CategoriaHandler) Excluir(c *gin.Context) {
	if err := h.servico.Excluir(c.Request.Context(), c.Param("id")); err != nil {
		abortarErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// LocalizacaoHandler expõe as operações de localizações
type LocalizacaoHandler struct {
	servico *catalogo.LocalizacaoService
	logger  *zap.Logger
}

// NewLocalizacaoHandler cria o handler de localizações
func NewLocalizacaoHandler(servico *catalogo.LocalizacaoService, logger *zap.Logger) *LocalizacaoHandler {
	return &LocalizacaoHandler{servico: servico, logger: logger}
}

// LocalizacaoRequest é o corpo de criação e atualização de localizações
type LocalizacaoRequest struct {
	Nome        string `json:"nome" binding:"required"`
	Endereco    string `json:"endereco"`
	Responsavel string `json:"responsavel"`
	Telefone    string `json:"telefone"`
	Descricao   string `json:"descricao"`
}

func (r LocalizacaoRequest) paraNovaLocalizacao() catalogo.NovaLocalizacao {
	return catalogo.NovaLocalizacao{
		Nome:        r.Nome,
		Endereco:    r.Endereco,
		Responsavel: r.Responsavel,
		Telefone:    r.Telefone,
		Descricao:   r.Descricao,
	}
}

// Criar cadastra uma nova localização
func (h *LocalizacaoHandler) Criar(c *gin.Context) {
	var req LocalizacaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortarErro(c, apierror.Validation("dados da localização inválidos", err))
		return
	}

	criada, err := h.servico.Criar(c.Request.Context(), req.paraNovaLocalizacao())
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, criada)
}

// BuscarPorID retorna uma localização pelo identificador
func (h *LocalizacaoHandler) BuscarPorID(c *gin.Context) {
	encontrada, err := h.servico.BuscarPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, encontrada)
}

// Pesquisar retorna a página de localizações que satisfaz o filtro
func (h *LocalizacaoHandler) Pesquisar(c *gin.Context) {
	pagina, err := paginaDaConsulta(c)
	if err != nil {
		abortarErro(c, err)
		return
	}

	filtro := repository.FiltroLocalizacoes{
		Nome:        textoOpcional(c, "nome"),
		Responsavel: textoOpcional(c, "responsavel"),
	}
	resultado, err := h.servico.Pesquisar(c.Request.Context(), filtro, pagina)
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resultado)
}

// Atualizar altera os dados da localização
func (h *LocalizacaoHandler) Atualizar(c *gin.Context) {
	var req LocalizacaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortarErro(c, apierror.Validation("dados da localização inválidos", err))
		return
	}

	atualizada, err := h.servico.Atualizar(c.Request.Context(), c.Param("id"), req.paraNovaLocalizacao())
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, atualizada)
}

// Excluir remove uma localização sem bens vinculados
func (h *LocalizacaoHandler) Excluir(c *gin.Context) {
	if err := h.servico.Excluir(c.Request.Context(), c.Param("id")); err != nil {
		abortarErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
