package repository

import "errors"

// Erros sentinela da camada de persistência. Os serviços traduzem para os
// erros de domínio com o contexto da entidade envolvida.
var (
	// ErrNaoEncontrado indica registro ausente por id ou campo único
	ErrNaoEncontrado = errors.New("registro não encontrado")

	// ErrDuplicado indica violação de unicidade detectada pelo banco
	ErrDuplicado = errors.New("registro duplicado")
)
