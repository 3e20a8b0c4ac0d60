package model

import "github.com/jairomfjr/patrimonio-sub001/pkg/apierror"

// EstadoConservacao é o vocabulário fechado de estados de conservação de um
// bem, ordenado do melhor para o pior
type EstadoConservacao string

const (
	ConservacaoExcelente  EstadoConservacao = "EXCELENTE"
	ConservacaoBom        EstadoConservacao = "BOM"
	ConservacaoRegular    EstadoConservacao = "REGULAR"
	ConservacaoRuim       EstadoConservacao = "RUIM"
	ConservacaoCritico    EstadoConservacao = "CRITICO"
	ConservacaoInservivel EstadoConservacao = "INSERVIVEL"
)

// EstadosConservacao lista todos os valores definidos, do melhor ao pior
func EstadosConservacao() []EstadoConservacao {
	return []EstadoConservacao{
		ConservacaoExcelente,
		ConservacaoBom,
		ConservacaoRegular,
		ConservacaoRuim,
		ConservacaoCritico,
		ConservacaoInservivel,
	}
}

// ParseEstadoConservacao converte um nome no valor correspondente
func ParseEstadoConservacao(nome string) (EstadoConservacao, error) {
	for _, e := range EstadosConservacao() {
		if string(e) == nome {
			return e, nil
		}
	}
	return "", apierror.InvalidEnumValue("estado de conservação", nome)
}

// Label retorna o rótulo de exibição do estado
func (e EstadoConservacao) Label() string {
	switch e {
	case ConservacaoExcelente:
		return "Excelente"
	case ConservacaoBom:
		return "Bom"
	case ConservacaoRegular:
		return "Regular"
	case ConservacaoRuim:
		return "Ruim"
	case ConservacaoCritico:
		return "Crítico"
	case ConservacaoInservivel:
		return "Inservível"
	}
	return string(e)
}

// Descricao retorna o texto explicativo do estado
func (e EstadoConservacao) Descricao() string {
	switch e {
	case ConservacaoExcelente:
		return "Bem em estado de novo, sem desgaste aparente"
	case ConservacaoBom:
		return "Bem com desgaste leve, plenamente funcional"
	case ConservacaoRegular:
		return "Bem com desgaste visível, funcional com ressalvas"
	case ConservacaoRuim:
		return "Bem com defeitos que comprometem o uso"
	case ConservacaoCritico:
		return "Bem com defeitos graves, uso desaconselhado"
	case ConservacaoInservivel:
		return "Bem sem condições de uso ou recuperação"
	}
	return string(e)
}

// Operacional indica que o bem pode permanecer em uso
func (e EstadoConservacao) Operacional() bool {
	return e == ConservacaoExcelente || e == ConservacaoBom || e == ConservacaoRegular
}

// ManutencaoNecessaria indica que o bem precisa de manutenção
func (e EstadoConservacao) ManutencaoNecessaria() bool {
	return e == ConservacaoRuim || e == ConservacaoCritico
}

// BaixaRecomendada indica que o bem deve ser baixado
func (e EstadoConservacao) BaixaRecomendada() bool {
	return e == ConservacaoInservivel
}
