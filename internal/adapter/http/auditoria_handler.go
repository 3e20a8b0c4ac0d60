package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jairomfjr/patrimonio-sub001/internal/app/auditoria"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/repository"
	"go.uber.org/zap"
)

// AuditoriaHandler expõe a consulta da trilha de auditoria
type AuditoriaHandler struct {
	servico *auditoria.Service
	logger  *zap.Logger
}

// NewAuditoriaHandler cria o handler de auditoria
func NewAuditoriaHandler(servico *auditoria.Service, logger *zap.Logger) *AuditoriaHandler {
	return &AuditoriaHandler{servico: servico, logger: logger}
}

// Pesquisar retorna a página de registros que satisfaz o filtro
func (h *AuditoriaHandler) Pesquisar(c *gin.Context) {
	filtro := repository.FiltroAuditoria{
		Entidade:   textoOpcional(c, "entidade"),
		EntidadeID: textoOpcional(c, "entidadeId"),
		Acao:       textoOpcional(c, "acao"),
		UsuarioID:  textoOpcional(c, "usuarioId"),
	}

	var err error
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
