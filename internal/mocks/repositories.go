package mocks

import (
	"context"

	"github.com/jairomfjr/patrimonio-sub001/internal/domain/model"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/repository"
	"github.com/jairomfjr/patrimonio-sub001/pkg/pagination"
	"github.com/stretchr/testify/mock"
)

// Mocks dos repositórios usados pelos testes de serviço.

// MockBemRepository é um mock para repository.BemRepository
type MockBemRepository struct {
	mock.Mock
}

func (m *MockBemRepository) Criar(ctx context.Context, bem *model.Bem) error {
	args := m.Called(ctx, bem)
	return args.Error(0)
}

func (m *MockBemRepository) BuscarPorID(ctx context.Context, id string) (*model.Bem, error) {
	args := m.Called(ctx, id)
	if bem, ok := args.Get(0).(*model.Bem); ok {
		return bem, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBemRepository) BuscarPorNumeroSerie(ctx context.Context, numeroSerie string) (*model.Bem, error) {
	args := m.Called(ctx, numeroSerie)
	if bem, ok := args.Get(0).(*model.Bem); ok {
		return bem, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBemRepository) ExisteNumeroSerie(ctx context.Context, numeroSerie, ignorarID string) (bool, error) {
	args := m.Called(ctx, numeroSerie, ignorarID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBemRepository) Pesquisar(ctx context.Context, filtro repository.FiltroBens, pagina pagination.Pagina) ([]*model.Bem, int64, error) {
	args := m.Called(ctx, filtro, pagina)
	bens, _ := args.Get(0).([]*model.Bem)
	return bens, args.Get(1).(int64), args.Error(2)
}

func (m *MockBemRepository) Atualizar(ctx context.Context, bem *model.Bem) error {
	args := m.Called(ctx, bem)
	return args.Error(0)
}

func (m *MockBemRepository) Excluir(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBemRepository) ContarPorStatus(ctx context.Context) (map[model.StatusBem]int64, error) {
	args := m.Called(ctx)
	contagem, _ := args.Get(0).(map[model.StatusBem]int64)
	return contagem, args.Error(1)
}

func (m *MockBemRepository) SomarValorAquisicao(ctx context.Context, filtro repository.FiltroBens) (float64, error) {
	args := m.Called(ctx, filtro)
	return args.Get(0).(float64), args.Error(1)
}

// MockCategoriaRepository é um mock para repository.CategoriaRepository
type MockCategoriaRepository struct {
	mock.Mock
}

func (m *MockCategoriaRepository) Criar(ctx context.Context, categoria *model.Categoria) error {
	args := m.Called(ctx, categoria)
	return args.Error(0)
}

func (m *MockCategoriaRepository) BuscarPorID(ctx context.Context, id string) (*model.Categoria, error) {
	args := m.Called(ctx, id)
	if categoria, ok := args.Get(0).(*model.Categoria); ok {
		return categoria, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoriaRepository) ExisteNome(ctx context.Context, nome, ignorarID string) (bool, error) {
	args := m.Called(ctx, nome, ignorarID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoriaRepository) Pesquisar(ctx context.Context, filtro repository.FiltroCategorias, pagina pagination.Pagina) ([]*model.Categoria, int64, error) {
	args := m.Called(ctx, filtro, pagina)
	categorias, _ := args.Get(0).([]*model.Categoria)
	return categorias, args.Get(1).(int64), args.Error(2)
}

func (m *MockCategoriaRepository) Atualizar(ctx context.Context, categoria *model.Categoria) error {
	args := m.Called(ctx, categoria)
	return args.Error(0)
}

func (m *MockCategoriaRepository) Excluir(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoriaRepository) ContarBens(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockLocalizacaoRepository é um mock para repository.LocalizacaoRepository
type MockLocalizacaoRepository struct {
	mock.Mock
}

func (m *MockLocalizacaoRepository) Criar(ctx context.Context, localizacao *model.Localizacao) error {
	args := m.Called(ctx, localizacao)
	return args.Error(0)
}

func (m *MockLocalizacaoRepository) BuscarPorID(ctx context.Context, id string) (*model.Localizacao, error) {
	args := m.Called(ctx, id)
	if localizacao, ok := args.Get(0).(*model.Localizacao); ok {
		return localizacao, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLocalizacaoRepository) ExisteNome(ctx context.Context, nome, ignorarID string) (bool, error) {
	args := m.Called(ctx, nome, ignorarID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLocalizacaoRepository) Pesquisar(ctx context.Context, filtro repository.FiltroLocalizacoes, pagina pagination.Pagina) ([]*model.Localizacao, int64, error) {
	args := m.Called(ctx, filtro, pagina)
	localizacoes, _ := args.Get(0).([]*model.Localizacao)
	return localizacoes, args.Get(1).(int64), args.Error(2)
}

func (m *MockLocalizacaoRepository) Atualizar(ctx context.Context, localizacao *model.Localizacao) error {
	args := m.Called(ctx, localizacao)
	return args.Error(0)
}

func (m *MockLocalizacaoRepository) Excluir(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLocalizacaoRepository) ContarBens(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockBaixaRepository é um mock para repository.BaixaRepository
type MockBaixaRepository struct {
	mock.Mock
}

func (m *MockBaixaRepository) Criar(ctx context.Context, baixa *model.Baixa) error {
	args := m.Called(ctx, baixa)
	return args.Error(0)
}

func (m *MockBaixaRepository) BuscarPorID(ctx context.Context, id string) (*model.Baixa, error) {
	args := m.Called(ctx, id)
	if baixa, ok := args.Get(0).(*model.Baixa); ok {
		return baixa, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBaixaRepository) BuscarAtivaPorBem(ctx context.Context, bemID string) (*model.Baixa, error) {
	args := m.Called(ctx, bemID)
	if baixa, ok := args.Get(0).(*model.Baixa); ok {
		return baixa, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBaixaRepository) Pesquisar(ctx context.Context, filtro repository.FiltroBaixas, pagina pagination.Pagina) ([]*model.Baixa, int64, error) {
	args := m.Called(ctx, filtro, pagina)
	baixas, _ := args.Get(0).([]*model.Baixa)
	return baixas, args.Get(1).(int64), args.Error(2)
}

func (m *MockBaixaRepository) Atualizar(ctx context.Context, baixa *model.Baixa) error {
	args := m.Called(ctx, baixa)
	return args.Error(0)
}

// MockConfiguracaoRepository é um mock para repository.ConfiguracaoRepository
type MockConfiguracaoRepository struct {
	mock.Mock
}

func (m *MockConfiguracaoRepository) Criar(ctx context.Context, configuracao *model.Configuracao) error {
	args := m.Called(ctx, configuracao)
	return args.Error(0)
}

func (m *MockConfiguracaoRepository) BuscarPorID(ctx context.Context, id string) (*model.Configuracao, error) {
	args := m.Called(ctx, id)
	if configuracao, ok := args.Get(0).(*model.Configuracao); ok {
		return configuracao, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockConfiguracaoRepository) BuscarPorChave(ctx context.Context, chave string) (*model.Configuracao, error) {
	args := m.Called(ctx, chave)
	if configuracao, ok := args.Get(0).(*model.Configuracao); ok {
		return configuracao, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockConfiguracaoRepository) Listar(ctx context.Context, pagina pagination.Pagina) ([]*model.Configuracao, int64, error) {
	args := m.Called(ctx, pagina)
	configuracoes, _ := args.Get(0).([]*model.Configuracao)
	return configuracoes, args.Get(1).(int64), args.Error(2)
}

func (m *MockConfiguracaoRepository) Atualizar(ctx context.Context, configuracao *model.Configuracao) error {
	args := m.Called(ctx, configuracao)
	return args.Error(0)
}
