package apierror

import "fmt"

// Construtores para os erros de domínio do registro patrimonial.

// DuplicateSerialNumber indica tentativa de cadastrar número de série já usado
func DuplicateSerialNumber(numeroSerie string) *APIError {
	return BusinessRule(fmt.Sprintf("já existe um bem com o número de série %q", numeroSerie), nil)
}

// CategoriaNaoEncontrada indica referência a categoria inexistente
func CategoriaNaoEncontrada(id string) *APIError {
	return New(KindNotFound, fmt.Sprintf("categoria %s não encontrada", id), nil)
}

// LocalizacaoNaoEncontrada indica referência a localização inexistente
func LocalizacaoNaoEncontrada(id string) *APIError {
	return New(KindNotFound, fmt.Sprintf("localização %s não encontrada", id), nil)
}

// BemNaoEncontrado indica bem ausente por id ou número de série
func BemNaoEncontrado(ref string) *APIError {
	return New(KindNotFound, fmt.Sprintf("bem %s não encontrado", ref), nil)
}

// BemNaoExcluivel indica tentativa de excluir um bem em status terminal
func BemNaoExcluivel(id, status string) *APIError {
	return BusinessRule(fmt.Sprintf("bem %s não pode ser excluído no status %s", id, status), nil)
}

// TransicaoStatusInvalida indica mudança de status não permitida pela tabela de transições
func TransicaoStatusInvalida(de, para string) *APIError {
	return BusinessRule(fmt.Sprintf("transição de status %s -> %s não permitida", de, para), nil)
}

// InvalidEnumValue indica nome fora do vocabulário fechado
func InvalidEnumValue(vocabulario, valor string) *APIError {
	return InvalidArgument(fmt.Sprintf("valor %q inválido para %s", valor, vocabulario), nil)
}

// BaixaJaAtiva indica que o bem já possui baixa em aberto
func BaixaJaAtiva(bemID string) *APIError {
	return BusinessRule(fmt.Sprintf("bem %s já possui baixa ativa", bemID), nil)
}

// CampoDuplicado indica violação de unicidade em um campo nomeado
func CampoDuplicado(entidade, campo, valor string) *APIError {
	return BusinessRule(fmt.Sprintf("%s com %s %q já existe", entidade, campo, valor), nil)
}
