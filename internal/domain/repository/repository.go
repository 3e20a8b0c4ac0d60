package repository

import (
	"context"

	"github.com/jairomfjr/patrimonio-sub001/internal/domain/model"
	"github.com/jairomfjr/patrimonio-sub001/pkg/pagination"
)

// BemRepository é a superfície de consulta e escrita de bens
type BemRepository interface {
	Criar(ctx context.Context, bem *model.Bem) error
	BuscarPorID(ctx context.Context, id string) (*model.Bem, error)
	BuscarPorNumeroSerie(ctx context.Context, numeroSerie string) (*model.Bem, error)
	ExisteNumeroSerie(ctx context.Context, numeroSerie, ignorarID string) (bool, error)
	Pesquisar(ctx context.Context, filtro FiltroBens, pagina pagination.Pagina) ([]*model.Bem, int64, error)
	Atualizar(ctx context.Context, bem *model.Bem) error
	Excluir(ctx context.Context, id string) error
	ContarPorStatus(ctx context.Context) (map[model.StatusBem]int64, error)
	SomarValorAquisicao(ctx context.Context, filtro FiltroBens) (float64, error)
}

// CategoriaRepository é a superfície de consulta e escrita de categorias
type CategoriaRepository interface {
	Criar(ctx context.Context, categoria *model.Categoria) error
	BuscarPorID(ctx context.Context, id string) (*model.Categoria, error)
	ExisteNome(ctx context.Context, nome, ignorarID string) (bool, error)
	Pesquisar(ctx context.Context, filtro FiltroCategorias, pagina pagination.Pagina) ([]*model.Categoria, int64, error)
	Atualizar(ctx context.Context, categoria *model.Categoria) error
	Excluir(ctx context.Context, id string) error
	ContarBens(ctx context.Context, id string) (int64, error)
}

// LocalizacaoRepository é a superfície de consulta e escrita de localizações
type LocalizacaoRepository interface {
	Criar(ctx context.Context, localizacao *model.Localizacao) error
	BuscarPorID(ctx context.Context, id string) (*model.Localizacao, error)
	ExisteNome(ctx context.Context, nome, ignorarID string) (bool, error)
	Pesquisar(ctx context.Context, filtro FiltroLocalizacoes, pagina pagination.Pagina) ([]*model.Localizacao, int64, error)
	Atualizar(ctx context.Context, localizacao *model.Localizacao) error
	Excluir(ctx context.Context, id string) error
	ContarBens(ctx context.Context, id string) (int64, error)
}

// MovimentacaoRepository registra e consulta movimentações (append-only)
type MovimentacaoRepository interface {
	Criar(ctx context.Context, movimentacao *model.Movimentacao) error
	BuscarPorID(ctx context.Context, id string) (*model.Movimentacao, error)
	Pesquisar(ctx context.Context, filtro FiltroMovimentacoes, pagina pagination.Pagina) ([]*model.Movimentacao, int64, error)
}

// ManutencaoRepository é a superfície de consulta e escrita de manutenções
type ManutencaoRepository interface {
	Criar(ctx context.Context, manutencao *model.Manutencao) error
	BuscarPorID(ctx context.Context, id string) (*model.Manutencao, error)
	Pesquisar(ctx context.Context, filtro FiltroManutencoes, pagina pagination.Pagina) ([]*model.Manutencao, int64, error)
	Atualizar(ctx context.Context, manutencao *model.Manutencao) error
	SomarCusto(ctx context.Context, filtro FiltroManutencoes) (float64, error)
}

// BaixaRepository é a superfície de consulta e escrita de baixas
type BaixaRepository interface {
	Criar(ctx context.Context, baixa *model.Baixa) error
	BuscarPorID(ctx context.Context, id string) (*model.Baixa, error)
	BuscarAtivaPorBem(ctx context.Context, bemID string) (*model.Baixa, error)
	Pesquisar(ctx context.Context, filtro FiltroBaixas, pagina pagination.Pagina) ([]*model.Baixa, int64, error)
	Atualizar(ctx context.Context, baixa *model.Baixa) error
}

// InventarioRepository é a superfície de consulta e escrita de inventários
type InventarioRepository interface {
	Criar(ctx context.Context, inventario *model.Inventario) error
	BuscarPorID(ctx context.Context, id string) (*model.Inventario, error)
	ExisteNome(ctx context.Context, nome, ignorarID string) (bool, error)
	Pesquisar(ctx context.Context, filtro FiltroInventarios, pagina pagination.Pagina) ([]*model.Inventario, int64, error)
	Atualizar(ctx context.Context, inventario *model.Inventario) error
	Excluir(ctx context.Context, id string) error
	AdicionarBem(ctx context.Context, inventarioID, bemID string) error
	RemoverBem(ctx context.Context, inventarioID, bemID string) error
	ListarBens(ctx context.Context, inventarioID string, pagina pagination.Pagina) ([]*model.InventarioBem, int64, error)
	MarcarVerificado(ctx context.Context, inventarioID, bemID string, verificado bool) error
}

// UsuarioRepository é a superfície de consulta e escrita de usuários
type UsuarioRepository interface {
	Criar(ctx context.Context, usuario *model.Usuario) error
	BuscarPorID(ctx context.Context, id string) (*model.Usuario, error)
	BuscarPorLogin(ctx context.Context, login string) (*model.Usuario, error)
	ExisteCampoUnico(ctx context.Context, campo, valor, ignorarID string) (bool, error)
	Pesquisar(ctx context.Context, filtro FiltroUsuarios, pagina pagination.Pagina) ([]*model.Usuario, int64, error)
	Atualizar(ctx context.Context, usuario *model.Usuario) error
	RegistrarLogin(ctx context.Context, id string) error
	VincularPerfil(ctx context.Context, usuarioID, perfilID string) error
	DesvincularPerfil(ctx context.Context, usuarioID, perfilID string) error
	PerfisDoUsuario(ctx context.Context, usuarioID string) ([]*model.Perfil, error)
}

// PerfilRepository é a superfície de consulta e escrita de perfis
type PerfilRepository interface {
	Criar(ctx context.Context, perfil *model.Perfil) error
	BuscarPorID(ctx context.Context, id string) (*model.Perfil, error)
	ExisteNome(ctx context.Context, nome, ignorarID string) (bool, error)
	Listar(ctx context.Context, pagina pagination.Pagina) ([]*model.Perfil, int64, error)
	Atualizar(ctx context.Context, perfil *model.Perfil) error
}

// NotificacaoRepository é a superfície de consulta e escrita de notificações
type NotificacaoRepository interface {
	Criar(ctx context.Context, notificacao *model.Notificacao) error
	BuscarPorID(ctx context.Context, id string) (*model.Notificacao, error)
	Pesquisar(ctx context.Context, filtro FiltroNotificacoes, pagina pagination.Pagina) ([]*model.Notificacao, int64, error)
	MarcarLida(ctx context.Context, id string) error
	MarcarTodasLidas(ctx context.Context, usuarioID string) (int64, error)
	ContarNaoLidas(ctx context.Context, usuarioID string) (int64, error)
}

// ConfiguracaoRepository é a superfície de consulta e escrita de configurações
type ConfiguracaoRepository interface {
	Criar(ctx context.Context, configuracao *model.Configuracao) error
	BuscarPorID(ctx context.Context, id string) (*model.Configuracao, error)
	BuscarPorChave(ctx context.Context, chave string) (*model.Configuracao, error)
	Listar(ctx context.Context, pagina pagination.Pagina) ([]*model.Configuracao, int64, error)
	Atualizar(ctx context.Context, configuracao *model.Configuracao) error
}

// AuditoriaRepository registra e consulta auditoria (append-only)
type AuditoriaRepository interface {
	Criar(ctx context.Context, registro *model.RegistroAuditoria) error
	Pesquisar(ctx context.Context, filtro FiltroAuditoria, pagina pagination.Pagina) ([]*model.RegistroAuditoria, int64, error)
}
