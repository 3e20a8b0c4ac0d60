package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jairomfjr/patrimonio-sub001/internal/app/movimentacao"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/model"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/repository"
	"github.com/jairomfjr/patrimonio-sub001/pkg/apierror"
	"go.uber.org/zap"
)

// MovimentacaoHandler expõe o registro e a consulta de movimentações
type MovimentacaoHandler struct {
	servico *movimentacao.Service
	logger  *zap.Logger
}

// NewMovimentacaoHandler cria o handler de movimentações
func NewMovimentacaoHandler(servico *movimentacao.Service, logger *zap.Logger) *MovimentacaoHandler {
	return &MovimentacaoHandler{servico: servico, logger: logger}
}

// MovimentacaoRequest é o corpo de registro de uma movimentação
type MovimentacaoRequest struct {
	BemID       string     `json:"bemId" binding:"required"`
	Tipo        string     `json:"tipo" binding:"required"`
	DestinoID   string     `json:"destinoId" binding:"required"`
	Responsavel string     `json:"responsavel"`
	Observacoes string     `json:"observacoes"`
	DataHora    *time.Time `json:"dataHora"`
}

// Registrar grava uma movimentação e atualiza a localização do bem
func (h *MovimentacaoHandler) Registrar(c *gin.Context) {
	var req MovimentacaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortarErro(c, apierror.Validation("dados da movimentação inválidos", err))
		return
	}

	tipo, err := model.ParseTipoMovimentacao(req.Tipo)
	if err != nil {
		abortarErro(c, err)
		return
	}

	nova := movimentacao.NovaMovimentacao{
		BemID:       req.BemID,
		Tipo:        tipo,
		DestinoID:   req.DestinoID,
		Responsavel: req.Responsavel,
		Observacoes: req.Observacoes,
	}
	if req.DataHora != nil {
		nova.DataHora = *req.DataHora
	}

	registrada, err := h.servico.Registrar(c.Request.Context(), nova)
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, registrada)
}

// BuscarPorID retorna uma movimentação pelo identificador
func (h *MovimentacaoHandler) BuscarPorID(c *gin.Context) {
	encontrada, err := h.servico.BuscarPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, encontrada)
}

// filtroMovimentacoesDaConsulta monta o filtro a partir da query string
func filtroMovimentacoesDaConsulta(c *gin.Context) (repository.FiltroMovimentacoes, error) {
	filtro := repository.FiltroMovimentacoes{
		BemID:     textoOpcional(c, "bemId"),
		OrigemID:  textoOpcional(c, "origemId"),
		DestinoID: textoOpcional(c, "destinoId"),
	}

	if bruto := c.Query("tipo"); bruto != "" {
		tipo, err := model.ParseTipoMovimentacao(bruto)
		if err != nil {
			return filtro, err
		}
		filtro.Tipo = &tipo
	}

	var err error
	if filtro.De, err = tempoOpcional(c, "de"); err != nil {
		return filtro, err
	}
	if filtro.Ate, err = tempoOpcional(c, "ate"); err != nil {
		return filtro, err
	}
	return filtro, nil
}

// Pesquisar retorna a página de movimentações que satisfaz o filtro
func (h *MovimentacaoHandler) Pesquisar(c *gin.Context) {
	filtro, err := filtroMovimentacoesDaConsulta(c)
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

// HistoricoDoBem retorna as movimentações de um bem, da mais recente
func (h *MovimentacaoHandler) HistoricoDoBem(c *gin.Context) {
	pagina, err := paginaDaConsulta(c)
	if err != nil {
		abortarErro(c, err)
		return
	}

	resultado, err := h.servico.HistoricoDoBem(c.Request.Context(), c.Param("id"), pagina)
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resultado)
}
