package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jairomfjr/patrimonio-sub001/internal/app/baixa"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/repository"
	"github.com/jairomfjr/patrimonio-sub001/pkg/apierror"
	"go.uber.org/zap"
)

// BaixaHandler expõe o registro e o ciclo de vida de baixas patrimoniais
type BaixaHandler struct {
	servico *baixa.Service
	logger  *zap.Logger
}

// NewBaixaHandler cria o handler de baixas
func NewBaixaHandler(servico *baixa.Service, logger *zap.Logger) *BaixaHandler {
	return &BaixaHandler{servico: servico, logger: logger}
}

// BaixaRequest é o corpo de registro de uma baixa
type BaixaRequest struct {
	BemID         string     `json:"bemId" binding:"required"`
	Data          *time.Time `json:"data"`
	Motivo        string     `json:"motivo" binding:"required"`
	ValorResidual float64    `json:"valorResidual"`
	ProcessoAdm   string     `json:"processoAdm"`
}

// Registrar grava a baixa e leva o bem ao status BAIXADO
func (h *BaixaHandler) Registrar(c *gin.Context) {
	var req BaixaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortarErro(c, apierror.Validation("dados da baixa inválidos", err))
		return
	}

	nova := baixa.NovaBaixa{
		BemID:         req.BemID,
		Motivo:        req.Motivo,
		ValorResidual: req.ValorResidual,
		ProcessoAdm:   req.ProcessoAdm,
	}
	if req.Data != nil {
		nova.Data = *req.Data
	}

	registrada, err := h.servico.Registrar(c.Request.Context(), nova)
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, registrada)
}

// BuscarPorID retorna uma baixa pelo identificador
func (h *BaixaHandler) BuscarPorID(c *gin.Context) {
	encontrada, err := h.servico.BuscarPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, encontrada)
}

// Pesquisar retorna a página de baixas que satisfaz o filtro
func (h *BaixaHandler) Pesquisar(c *gin.Context) {
	filtro := repository.FiltroBaixas{BemID: textoOpcional(c, "bemId")}

	var err error
	if filtro.Cancelada, err = boolOpcional(c, "cancelada"); err != nil {
		abortarErro(c, err)
		return
	}
	if filtro.De, err = tempoOpcional(c, "de"); err != nil {
		abortarErro(c, err)
		return
	}
	if filtro.Ate, err = tempoOpcional(c, "ate"); err != nil {
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

// Aprovar registra a aprovação administrativa da baixa
func (h *BaixaHandler) Aprovar(c *gin.Context) {
	aprovada, err := h.servico.Aprovar(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, aprovada)
}

// VendaRequest é o corpo do registro de venda do bem baixado
type VendaRequest struct {
	ValorVenda float64    `json:"valorVenda" binding:"required"`
	Comprador  string     `json:"comprador" binding:"required"`
	DataVenda  *time.Time `json:"dataVenda"`
}

// RegistrarVenda grava os dados de venda do bem baixado
func (h *BaixaHandler) RegistrarVenda(c *gin.Context) {
	var req VendaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortarErro(c, apierror.Validation("dados de venda inválidos", err))
		return
	}

	var dataVenda time.Time
	if req.DataVenda != nil {
		dataVenda = *req.DataVenda
	}

	atualizada, err := h.servico.RegistrarVenda(c.Request.Context(), c.Param("id"), req.ValorVenda, req.Comprador, dataVenda)
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, atualizada)
}

// Cancelar desfaz a baixa e devolve o bem ao status INATIVO
func (h *BaixaHandler) Cancelar(c *gin.Context) {
	cancelada, err := h.servico.Cancelar(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, cancelada)
}
