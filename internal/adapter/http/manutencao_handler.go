package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jairomfjr/patrimonio-sub001/internal/app/manutencao"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/model"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/repository"
	"github.com/jairomfjr/patrimonio-sub001/pkg/apierror"
	"go.uber.org/zap"
)

// ManutencaoHandler expõe o ciclo de vida das manutenções
type ManutencaoHandler struct {
	servico *manutencao.Service
	logger  *zap.Logger
}

// NewManutencaoHandler cria o handler de manutenções
func NewManutencaoHandler(servico *manutencao.Service, logger *zap.Logger) *ManutencaoHandler {
	return &ManutencaoHandler{servico: servico, logger: logger}
}

// ManutencaoRequest é o corpo de agendamento e atualização de manutenções
type ManutencaoRequest struct {
	BemID            string     `json:"bemId" binding:"required"`
	Tipo             string     `json:"tipo" binding:"required"`
	DataAgendada     *time.Time `json:"dataAgendada"`
	Responsavel      string     `json:"responsavel"`
	Fornecedor       string     `json:"fornecedor"`
	Custo            float64    `json:"custo"`
	Prioridade       int        `json:"prioridade"`
	DescricaoServico string     `json:"descricaoServico"`
}

func (r ManutencaoRequest) paraNovaManutencao() (manutencao.NovaManutencao, error) {
	tipo, err := model.ParseTipoManutencao(r.Tipo)
	if err != nil {
		return manutencao.NovaManutencao{}, err
	}

	return manutencao.NovaManutencao{
		BemID:            r.BemID,
		Tipo:             tipo,
		DataAgendada:     r.DataAgendada,
		Responsavel:      r.Responsavel,
		Fornecedor:       r.Fornecedor,
		Custo:            r.Custo,
		Prioridade:       r.Prioridade,
		DescricaoServico: r.DescricaoServico,
	}, nil
}

// Agendar registra uma manutenção no status AGENDADA
func (h *ManutencaoHandler) Agendar(c *gin.Context) {
	var req ManutencaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortarErro(c, apierror.Validation("dados da manutenção inválidos", err))
		return
	}

	nova, err := req.paraNovaManutencao()
	if err != nil {
		abortarErro(c, err)
		return
	}

	agendada, err := h.servico.Agendar(c.Request.Context(), nova)
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, agendada)
}

// BuscarPorID retorna uma manutenção pelo identificador
func (h *ManutencaoHandler) BuscarPorID(c *gin.Context) {
	encontrada, err := h.servico.BuscarPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, encontrada)
}

// filtroManutencoesDaConsulta monta o filtro a partir da query string
func filtroManutencoesDaConsulta(c *gin.Context) (repository.FiltroManutencoes, error) {
	filtro := repository.FiltroManutencoes{
		BemID:      textoOpcional(c, "bemId"),
		Fornecedor: textoOpcional(c, "fornecedor"),
	}

	if bruto := c.Query("status"); bruto != "" {
		status, err := model.ParseStatusManutencao(bruto)
		if err != nil {
			return filtro, err
		}
		filtro.Status = &status
	}
	if bruto := c.Query("tipo"); bruto != "" {
		tipo, err := model.ParseTipoManutencao(bruto)
		if err != nil {
			return filtro, err
		}
		filtro.Tipo = &tipo
	}

	var err error
	if filtro.CustoMinimo, err = floatOpcional(c, "custoMinimo"); err != nil {
		return filtro, err
	}
	if filtro.CustoMaximo, err = floatOpcional(c, "custoMaximo"); err != nil {
		return filtro, err
	}
	if filtro.De, err = tempoOpcional(c, "de"); err != nil {
		return filtro, err
	}
	if filtro.Ate, err = tempoOpcional(c, "ate"); err != nil {
		return filtro, err
	}
	return filtro, nil
}

// Pesquisar retorna a página de manutenções que satisfaz o filtro
func (h *ManutencaoHandler) Pesquisar(c *gin.Context) {
	filtro, err := filtroManutencoesDaConsulta(c)
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

// Atualizar altera os dados de uma manutenção não finalizada
func (h *ManutencaoHandler) Atualizar(c *gin.Context) {
	var req ManutencaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortarErro(c, apierror.Validation("dados da manutenção inválidos", err))
		return
	}

	dados, err := req.paraNovaManutencao()
	if err != nil {
		abortarErro(c, err)
		return
	}

	atualizada, err := h.servico.Atualizar(c.Request.Context(), c.Param("id"), dados)
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, atualizada)
}

// Iniciar coloca a manutenção em execução
func (h *ManutencaoHandler) Iniciar(c *gin.Context) {
	atualizada, err := h.servico.Iniciar(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, atualizada)
}

// Suspender marca a manutenção como aguardando peças
func (h *ManutencaoHandler) Suspender(c *gin.Context) {
	atualizada, err := h.servico.Suspender(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, atualizada)
}

// ConclusaoRequest é o corpo opcional da conclusão de manutenção
type ConclusaoRequest struct {
	CustoFinal *float64 `json:"custoFinal"`
}

// Concluir encerra a manutenção e devolve o bem ao acervo ativo
func (h *ManutencaoHandler) Concluir(c *gin.Context) {
	var req ConclusaoRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortarErro(c, apierror.Validation("dados de conclusão inválidos", err))
			return
		}
	}

	atualizada, err := h.servico.Concluir(c.Request.Context(), c.Param("id"), req.CustoFinal)
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, atualizada)
}

// Cancelar encerra a manutenção sem execução
func (h *ManutencaoHandler) Cancelar(c *gin.Context) {
	atualizada, err := h.servico.Cancelar(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, atualizada)
}

// CustoTotal soma o custo das manutenções que satisfazem o filtro
func (h *ManutencaoHandler) CustoTotal(c *gin.Context) {
	filtro, err := filtroManutencoesDaConsulta(c)
	if err != nil {
		abortarErro(c, err)
		return
	}

	custo, err := h.servico.CustoTotal(c.Request.Context(), filtro)
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"custoTotal": custo})
}
