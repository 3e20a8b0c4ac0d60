package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jairomfjr/patrimonio-sub001/internal/app/bem"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/model"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/repository"
	"github.com/jairomfjr/patrimonio-sub001/pkg/apierror"
	"go.uber.org/zap"
)

// BemHandler expõe as operações do cadastro de bens
type BemHandler struct {
	servico *bem.Service
	logger  *zap.Logger
}

// NewBemHandler cria o handler de bens
func NewBemHandler(servico *bem.Service, logger *zap.Logger) *BemHandler {
	return &BemHandler{servico: servico, logger: logger}
}

// BemRequest é o corpo de criação e atualização de bens
type BemRequest struct {
	Nome              string    `json:"nome" binding:"required"`
	NumeroSerie       string    `json:"numeroSerie" binding:"required"`
	Descricao         string    `json:"descricao"`
	DataAquisicao     time.Time `json:"dataAquisicao" binding:"required"`
	ValorAquisicao    float64   `json:"valorAquisicao"`
	EstadoConservacao string    `json:"estadoConservacao"`
	CategoriaID       string    `json:"categoriaId" binding:"required"`
	LocalizacaoID     string    `json:"localizacaoId" binding:"required"`
}

func (r BemRequest) paraNovoBem() (bem.NovoBem, error) {
	novo := bem.NovoBem{
		Nome:           r.Nome,
		NumeroSerie:    r.NumeroSerie,
		Descricao:      r.Descricao,
		DataAquisicao:  r.DataAquisicao,
		ValorAquisicao: r.ValorAquisicao,
		CategoriaID:    r.CategoriaID,
		LocalizacaoID:  r.LocalizacaoID,
	}

	if r.EstadoConservacao != "" {
		estado, err := model.ParseEstadoConservacao(r.EstadoConservacao)
		if err != nil {
			return novo, err
		}
		novo.EstadoConservacao = estado
	}
	return novo, nil
}

// Criar cadastra um novo bem
func (h *BemHandler) Criar(c *gin.Context) {
	var req BemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortarErro(c, apierror.Validation("dados do bem inválidos", err))
		return
	}

	novo, err := req.paraNovoBem()
	if err != nil {
		abortarErro(c, err)
		return
	}

	criado, err := h.servico.Criar(c.Request.Context(), novo)
	if err != nil {
		abortarErro(c, err)
		return
	}

	c.JSON(http.StatusCreated, criado)
}

// BuscarPorID retorna um bem pelo identificador
func (h *BemHandler) BuscarPorID(c *gin.Context) {
	encontrado, err := h.servico.BuscarPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, encontrado)
}

// BuscarPorNumeroSerie retorna um bem pelo número de série
func (h *BemHandler) BuscarPorNumeroSerie(c *gin.Context) {
	encontrado, err := h.servico.BuscarPorNumeroSerie(c.Request.Context(), c.Param("numeroSerie"))
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, encontrado)
}

// filtroBensDaConsulta monta o filtro a partir da query string
func filtroBensDaConsulta(c *gin.Context) (repository.FiltroBens, error) {
	filtro := repository.FiltroBens{
		Nome:          textoOpcional(c, "nome"),
		NumeroSerie:   textoOpcional(c, "numeroSerie"),
		CategoriaID:   textoOpcional(c, "categoriaId"),
		LocalizacaoID: textoOpcional(c, "localizacaoId"),
	}

	if bruto := c.Query("status"); bruto != "" {
		status, err := model.ParseStatusBem(bruto)
		if err != nil {
			return filtro, err
		}
		filtro.Status = &status
	}
	if bruto := c.Query("estadoConservacao"); bruto != "" {
		estado, err := model.ParseEstadoConservacao(bruto)
		if err != nil {
			return filtro, err
		}
		filtro.Estado = &estado
	}

	var err error
	if filtro.Ativo, err = boolOpcional(c, "ativo"); err != nil {
		return filtro, err
	}
	if filtro.ValorMinimo, err = floatOpcional(c, "valorMinimo"); err != nil {
		return filtro, err
	}
	if filtro.ValorMaximo, err = floatOpcional(c, "valorMaximo"); err != nil {
		return filtro, err
	}
	if filtro.AquisicaoDe, err = tempoOpcional(c, "aquisicaoDe"); err != nil {
		return filtro, err
	}
	if filtro.AquisicaoAte, err = tempoOpcional(c, "aquisicaoAte"); err != nil {
		return filtro, err
	}
	return filtro, nil
}

// Pesquisar retorna a página de bens que satisfaz o filtro
func (h *BemHandler) Pesquisar(c *gin.Context) {
	filtro, err := filtroBensDaConsulta(c)
	if err != nil {
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

// Atualizar altera os dados cadastrais de um bem
func (h *BemHandler) Atualizar(c *gin.Context) {
	var req BemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortarErro(c, apierror.Validation("dados do bem inválidos", err))
		return
	}

	dados, err := req.paraNovoBem()
	if err != nil {
		abortarErro(c, err)
		return
	}

	atualizado, err := h.servico.Atualizar(c.Request.Context(), c.Param("id"), dados)
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, atualizado)
}

// Excluir remove um bem do cadastro
func (h *BemHandler) Excluir(c *gin.Context) {
	if err := h.servico.Excluir(c.Request.Context(), c.Param("id")); err != nil {
		abortarErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// StatusRequest é o corpo da mudança de status
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AlterarStatus muda o status do bem pela tabela de transições
func (h *BemHandler) AlterarStatus(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortarErro(c, apierror.Validation("status de destino ausente", err))
		return
	}

	destino, err := model.ParseStatusBem(req.Status)
	if err != nil {
		abortarErro(c, err)
		return
	}

	atualizado, err := h.servico.AlterarStatus(c.Request.Context(), c.Param("id"), destino)
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, atualizado)
}

// ConservacaoRequest é o corpo da mudança de estado de conservação
type ConservacaoRequest struct {
	EstadoConservacao string `json:"estadoConservacao" binding:"required"`
}

// AlterarConservacao muda o estado de conservação do bem
func (h *BemHandler) AlterarConservacao(c *gin.Context) {
	var req ConservacaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortarErro(c, apierror.Validation("estado de conservação ausente", err))
		return
	}

	estado, err := model.ParseEstadoConservacao(req.EstadoConservacao)
	if err != nil {
		abortarErro(c, err)
		return
	}

	atualizado, err := h.servico.AlterarConservacao(c.Request.Context(), c.Param("id"), estado)
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, atualizado)
}

// Ativar retorna o bem à circulação
func (h *BemHandler) Ativar(c *gin.Context) {
	atualizado, err := h.servico.Ativar(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, atualizado)
}

// Desativar retira o bem de circulação
func (h *BemHandler) Desativar(c *gin.Context) {
	atualizado, err := h.servico.Desativar(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, atualizado)
}

// Resumo retorna os agregados do acervo
func (h *BemHandler) Resumo(c *gin.Context) {
	resumo, err := h.servico.ResumoAcervo(c.Request.Context())
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resumo)
}
