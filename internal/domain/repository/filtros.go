package repository

import (
	"time"

	"github.com/jairomfjr/patrimonio-sub001/internal/domain/model"
)

// Filtros de pesquisa. Cada campo é opcional; campos ausentes não
// restringem a consulta. Filtros presentes são combinados com AND.

// FiltroBens parametriza a pesquisa de bens
type FiltroBens struct {
	Nome          *string
	NumeroSerie   *string
	CategoriaID   *string
	LocalizacaoID *string
	Status        *model.StatusBem
	Estado        *model.EstadoConservacao
	Ativo         *bool
	ValorMinimo   *float64
	ValorMaximo   *float64
	AquisicaoDe   *time.Time
	AquisicaoAte  *time.Time
}

// FiltroCategorias parametriza a pesquisa de categorias
type FiltroCategorias struct {
	Nome *string
}

// FiltroLocalizacoes parametriza a pesquisa de localizações
type FiltroLocalizacoes struct {
	Nome        *string
	Responsavel *string
}

// FiltroMovimentacoes parametriza a pesquisa de movimentações
type FiltroMovimentacoes struct {
	BemID     *string
	Tipo      *model.TipoMovimentacao
	OrigemID  *string
	DestinoID *string
	De        *time.Time
	Ate       *time.Time
}

// FiltroManutencoes parametriza a pesquisa de manutenções
type FiltroManutencoes struct {
	BemID       *string
	Status      *model.StatusManutencao
	Tipo        *model.TipoManutencao
	Fornecedor  *string
	CustoMinimo *float64
	CustoMaximo *float64
	De          *time.Time
	Ate         *time.Time
}

// FiltroBaixas parametriza a pesquisa de baixas
type FiltroBaixas struct {
	BemID     *string
	Cancelada *bool
	De        *time.Time
	Ate       *time.Time
}

// FiltroInventarios parametriza a pesquisa de inventários
type FiltroInventarios struct {
	Nome   *string
	Status *model.StatusInventario
}

// FiltroUsuarios parametriza a pesquisa de usuários
type FiltroUsuarios struct {
	Nome         *string
	Username     *string
	Email        *string
	Departamento *string
	Ativo        *bool
}

// FiltroNotificacoes parametriza a pesquisa de notificações
type FiltroNotificacoes struct {
	UsuarioID *string
	Tipo      *string
	Categoria *string
	Lida      *bool
}

// FiltroAuditoria parametriza a pesquisa de registros de auditoria
type FiltroAuditoria struct {
	Entidade   *string
	EntidadeID *string
	Acao       *string
	UsuarioID  *string
	De         *time.Time
	Ate        *time.Time
}
