package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/model"
)

// VocabularioHandler expõe os vocabulários fechados da API para consumo
// por formulários e integrações
type VocabularioHandler struct{}

// NewVocabularioHandler cria o handler de vocabulários
func NewVocabularioHandler() *VocabularioHandler {
	return &VocabularioHandler{}
}

// ValorVocabulario descreve um valor de vocabulário com rótulo de exibição
type ValorVocabulario struct {
	Valor     string `json:"valor"`
	Label     string `json:"label"`
	Descricao string `json:"descricao"`
}

// StatusBem lista os status operacionais de bens
func (h *VocabularioHandler) StatusBem(c *gin.Context) {
	valores := make([]ValorVocabulario, 0, len(model.StatusBens()))
	for _, s := range model.StatusBens() {
		valores = append(valores, ValorVocabulario{
			Valor:     string(s),
			Label:     s.Label(),
			Descricao: s.Descricao(),
		})
	}
	c.JSON(http.StatusOK, valores)
}

// EstadosConservacao lista os estados de conservação, do melhor ao pior
func (h *VocabularioHandler) EstadosConservacao(c *gin.Context) {
	valores := make([]ValorVocabulario, 0, len(model.EstadosConservacao()))
	for _, e := range model.EstadosConservacao() {
		valores = append(valores, ValorVocabulario{
			Valor:     string(e),
			Label:     e.Label(),
			Descricao: e.Descricao(),
		})
	}
	c.JSON(http.StatusOK, valores)
}

// TiposMovimentacao lista os tipos de movimentação
func (h *VocabularioHandler) TiposMovimentacao(c *gin.Context) {
	valores := make([]ValorVocabulario, 0, len(model.TiposMovimentacao()))
	for _, t := range model.TiposMovimentacao() {
		valores = append(valores, ValorVocabulario{
			Valor:     string(t),
			Label:     t.Label(),
			Descricao: t.Descricao(),
		})
	}
	c.JSON(http.StatusOK, valores)
}

// StatusManutencao lista os status do ciclo de manutenção
func (h *VocabularioHandler) StatusManutencao(c *gin.Context) {
	valores := make([]ValorVocabulario, 0, len(model.StatusManutencoes()))
	for _, s := range model.StatusManutencoes() {
		valores = append(valores, ValorVocabulario{
			Valor:     string(s),
			Label:     s.Label(),
			Descricao: s.Descricao(),
		})
	}
	c.JSON(http.StatusOK, valores)
}

// TiposManutencao lista os tipos de manutenção
func (h *VocabularioHandler) TiposManutencao(c *gin.Context) {
	valores := make([]ValorVocabulario, 0, len(model.TiposManutencao()))
	for _, t := range model.TiposManutencao() {
		valores = append(valores, ValorVocabulario{
			Valor:     string(t),
			Label:     t.Label(),
			Descricao: t.Descricao(),
		})
	}
	c.JSON(http.StatusOK, valores)
}

// StatusInventario lista os status do ciclo de inventário
func (h *VocabularioHandler) StatusInventario(c *gin.Context) {
	valores := make([]ValorVocabulario, 0, len(model.StatusInventarios()))
	for _, s := range model.StatusInventarios() {
		valores = append(valores, ValorVocabulario{
			Valor:     string(s),
			Label:     s.Label(),
			Descricao: s.Descricao(),
		})
	}
	c.JSON(http.StatusOK, valores)
}
