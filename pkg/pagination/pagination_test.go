package pagination_test

import (
	"testing"

	"github.com/jairomfjr/patrimonio-sub001/pkg/pagination"
	"github.com/stretchr/testify/assert"
)

func TestNormalizar(t *testing.T) {
	pagina := pagination.Pagina{Numero: -3, Tamanho: 0}.Normalizar()
	assert.Equal(t, 0, pagina.Numero)
	assert.Equal(t, 20, pagina.Tamanho)

	pagina = pagination.Pagina{Numero: 1, Tamanho: 10000}.Normalizar()
	assert.Equal(t, pagination.TamanhoMaximo, pagina.Tamanho)

	pagina = pagination.Pagina{Numero: 2, Tamanho: 50}.Normalizar()
	assert.Equal(t, 2, pagina.Numero)
	assert.Equal(t, 50, pagina.Tamanho)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, pagination.Pagina{Numero: 0, Tamanho: 20}.Offset())
	assert.Equal(t, 100, pagination.Pagina{Numero: 5, Tamanho: 20}.Offset())
}

func TestNovoResultado(t *testing.T) {
	resultado := pagination.NovoResultado([]string{"a", "b"}, 42, pagination.Pagina{Numero: 1, Tamanho: 2})
	assert.Equal(t, []string{"a", "b"}, resultado.Conteudo)
	assert.Equal(t, int64(42), resultado.TotalElementos)
	assert.Equal(t, 1, resultado.Numero)
	assert.Equal(t, 2, resultado.Tamanho)
}

func TestNovoResultadoNormalizaPagina(t *testing.T) {
	// o envelope reporta a página efetivamente consultada, não a pedida
	resultado := pagination.NovoResultado([]string{"a"}, 1, pagination.Pagina{Numero: -1, Tamanho: 0})
	assert.Equal(t, 0, resultado.Numero)
	assert.Equal(t, 20, resultado.Tamanho)
}

func TestNovoResultadoComConteudoNulo(t *testing.T) {
	resultado := pagination.NovoResultado[string](nil, 0, pagination.Pagina{})
	// o envelope serializa como lista vazia, nunca null
	assert.NotNil(t, resultado.Conteudo)
	assert.Empty(t, resultado.Conteudo)
}
