package pagination

// Tamanho máximo de página aceito em qualquer listagem
const TamanhoMaximo = 200

// Pagina descreve a página solicitada em uma listagem
type Pagina struct {
	Numero  int // índice da página, a partir de 0
	Tamanho int
}

// Normalizar ajusta número e tamanho para a faixa aceita
func (p Pagina) Normalizar() Pagina {
	if p.Numero < 0 {
		p.Numero = 0
	}
	if p.Tamanho <= 0 {
		p.Tamanho = 20
	}
	if p.Tamanho > TamanhoMaximo {
		p.Tamanho = TamanhoMaximo
	}
	return p
}

// Offset retorna o deslocamento correspondente à página
func (p Pagina) Offset() int {
	return p.Numero * p.Tamanho
}

// Resultado é o envelope de resposta paginada
type Resultado[T any] struct {
	Conteudo       []T   `json:"content"`
	TotalElementos int64 `json:"totalElements"`
	Numero         int   `json:"page"`
	Tamanho        int   `json:"size"`
}

// NovoResultado monta o envelope a partir do conteúdo e do total. A página
// é normalizada para que o envelope reflita o número e o tamanho
// efetivamente consultados.
func NovoResultado[T any](conteudo []T, total int64, pagina Pagina) *Resultado[T] {
	pagina = pagina.Normalizar()
	if conteudo == nil {
		conteudo = []T{}
	}
	return &Resultado[T]{
		Conteudo:       conteudo,
		TotalElementos: total,
		Numero:         pagina.Numero,
		Tamanho:        pagina.Tamanho,
	}
}
