package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jairomfjr/patrimonio-sub001/pkg/apierror"
	"github.com/jairomfjr/patrimonio-sub001/pkg/pagination"
)

// Helpers de leitura de parâmetros de consulta. Parâmetros ausentes viram
// ponteiros nulos e não restringem a pesquisa.

// paginaDaConsulta lê page e size da query string
func paginaDaConsulta(c *gin.Context) (pagination.Pagina, error) {
	pagina := pagination.Pagina{}

	if bruto := c.Query("page"); bruto != "" {
		numero, err := strconv.Atoi(bruto)
		if err != nil {
			return pagina, apierror.InvalidArgument("parâmetro page inválido", err).WithField("page", "deve ser um inteiro")
		}
		pagina.Numero = numero
	}

	if bruto := c.Query("size"); bruto != "" {
		tamanho, err := strconv.Atoi(bruto)
		if err != nil {
			return pagina, apierror.InvalidArgument("parâmetro size inválido", err).WithField("size", "deve ser um inteiro")
		}
		pagina.Tamanho = tamanho
	}

	return pagina, nil
}

// textoOpcional retorna o parâmetro como ponteiro, nulo quando ausente
func textoOpcional(c *gin.Context, nome string) *string {
	if valor := c.Query(nome); valor != "" {
		return &valor
	}
	return nil
}

// boolOpcional converte o parâmetro em *bool
func boolOpcional(c *gin.Context, nome string) (*bool, error) {
	bruto := c.Query(nome)
	if bruto == "" {
		return nil, nil
	}

	valor, err := strconv.ParseBool(bruto)
	if err != nil {
		return nil, apierror.InvalidArgument("parâmetro "+nome+" inválido", err).WithField(nome, "deve ser booleano")
	}
	return &valor, nil
}

// floatOpcional converte o parâmetro em *float64
func floatOpcional(c *gin.Context, nome string) (*float64, error) {
	bruto := c.Query(nome)
	if bruto == "" {
		return nil, nil
	}

	valor, err := strconv.ParseFloat(bruto, 64)
	if err != nil {
		return nil, apierror.InvalidArgument("parâmetro "+nome+" inválido", err).WithField(nome, "deve ser numérico")
	}
	return &valor, nil
}

// tempoOpcional converte o parâmetro em *time.Time, aceitando RFC 3339 ou
// data simples
func tempoOpcional(c *gin.Context, nome string) (*time.Time, error) {
	bruto := c.Query(nome)
	if bruto == "" {
		return nil, nil
	}

	if valor, err := time.Parse(time.RFC3339, bruto); err == nil {
		return &valor, nil
	}
	if valor, err := time.Parse("2006-01-02", bruto); err == nil {
		return &valor, nil
	}
	return nil, apierror.InvalidArgument("parâmetro "+nome+" inválido", nil).WithField(nome, "use RFC 3339 ou AAAA-MM-DD")
}

// abortarErro registra o erro para o tradutor de envelope e encerra a cadeia
func abortarErro(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
