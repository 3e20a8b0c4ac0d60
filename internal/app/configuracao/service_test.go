package configuracao_test

import (
	"context"
	"testing"

	"github.com/jairomfjr/patrimonio-sub001/internal/app/configuracao"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/model"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/repository"
	"github.com/jairomfjr/patrimonio-sub001/internal/mocks"
	"github.com/jairomfjr/patrimonio-sub001/internal/testutils"
	"github.com/jairomfjr/patrimonio-sub001/pkg/apierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func novoServicoConfiguracoes(t *testing.T) (*configuracao.Service, *mocks.MockConfiguracaoRepository, *mocks.MockCache) {
	configuracoes := new(mocks.MockConfiguracaoRepository)
	cacheStore := new(mocks.MockCache)
	servico := configuracao.NewService(configuracoes, cacheStore, testutils.TestLogger(t))
	return servico, configuracoes, cacheStore
}

func TestCriarConfiguracao(t *testing.T) {
	servico, configuracoes, _ := novoServicoConfiguracoes(t)

	configuracoes.On("Criar", mock.Anything, mock.AnythingOfType("*model.Configuracao")).Return(nil)

	criada, err := servico.Criar(context.Background(), "inventario.dias_alerta", "30", "int", "", true)
	require.NoError(t, err)
	assert.Equal(t, "inventario.dias_alerta", criada.Chave)
	assert.Equal(t, "int", criada.Tipo)
}

func TestCriarConfiguracaoComValorIncompativel(t *testing.T) {
	servico, configuracoes, _ := novoServicoConfiguracoes(t)

	_, err := servico.Criar(context.Background(), "limite", "abc", "int", "", true)
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))

	_, err = servico.Criar(context.Background(), "flag", "talvez", "bool", "", true)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))

	_, err = servico.Criar(context.Background(), "chave", "1", "lista", "", true)
	assert.Equal(t, apierror.KindInvalidArgument, apierror.KindOf(err))

	configuracoes.AssertNotCalled(t, "Criar", mock.Anything, mock.Anything)
}

func TestCriarConfiguracaoComChaveDuplicada(t *testing.T) {
	servico, configuracoes, _ := novoServicoConfiguracoes(t)

	configuracoes.On("Criar", mock.Anything, mock.AnythingOfType("*model.Configuracao")).
		Return(repository.ErrDuplicado)

	_, err := servico.Criar(context.Background(), "sistema.nome_orgao", "Prefeitura", "string", "", true)
	require.Error(t, err)
	assert.Equal(t, apierror.KindBusinessRule, apierror.KindOf(err))
}

func TestBuscarPorChaveUsaCache(t *testing.T) {
	servico, configuracoes, cacheStore := novoServicoConfiguracoes(t)

	cacheStore.On("Get", mock.Anything, "configuracao:sistema.nome_orgao", mock.Anything).
		Return(true, nil, func(dest interface{}) {
			*dest.(*model.Configuracao) = model.Configuracao{
				ID:    "cfg-1",
				Chave: "sistema.nome_orgao",
				Valor: "Prefeitura",
			}
		})

	encontrada, err := servico.BuscarPorChave(context.Background(), "sistema.nome_orgao")
	require.NoError(t, err)
	assert.Equal(t, "Prefeitura", encontrada.Valor)
	configuracoes.AssertNotCalled(t, "BuscarPorChave", mock.Anything, mock.Anything)
}

func TestBuscarPorChaveSemCachePreencheCache(t *testing.T) {
	servico, configuracoes, cacheStore := novoServicoConfiguracoes(t)

	cacheStore.On("Get", mock.Anything, "configuracao:sistema.nome_orgao", mock.Anything).
		Return(false, nil, nil)
	configuracoes.On("BuscarPorChave", mock.Anything, "sistema.nome_orgao").
		Return(&model.Configuracao{ID: "cfg-1", Chave: "sistema.nome_orgao", Valor: "Prefeitura"}, nil)
	cacheStore.On("Set", mock.Anything, "configuracao:sistema.nome_orgao", mock.Anything, mock.AnythingOfType("time.Duration")).
		Return(nil)

	encontrada, err := servico.BuscarPorChave(context.Background(), "sistema.nome_orgao")
	require.NoError(t, err)
	assert.Equal(t, "Prefeitura", encontrada.Valor)
	cacheStore.AssertExpectations(t)
}

func TestBuscarPorChaveInexistente(t *testing.T) {
	servico, configuracoes, cacheStore := novoServicoConfiguracoes(t)

	cacheStore.On("Get", mock.Anything, "configuracao:desconhecida", mock.Anything).
		Return(false, nil, nil)
	configuracoes.On("BuscarPorChave", mock.Anything, "desconhecida").
		Return(nil, repository.ErrNaoEncontrado)

	_, err := servico.BuscarPorChave(context.Background(), "desconhecida")
	require.Error(t, err)
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))
}

func TestAtualizarConfiguracaoInvalidaCache(t *testing.T) {
	servico, configuracoes, cacheStore := novoServicoConfiguracoes(t)

	configuracoes.On("BuscarPorChave", mock.Anything, "inventario.dias_alerta").
		Return(&model.Configuracao{ID: "cfg-1", Chave: "inventario.dias_alerta", Valor: "30", Tipo: "int", Editavel: true}, nil)
	configuracoes.On("Atualizar", mock.Anything, mock.MatchedBy(func(c *model.Configuracao) bool {
		return c.Valor == "45"
	})).Return(nil)
	cacheStore.On("Delete", mock.Anything, "configuracao:inventario.dias_alerta").Return(nil)

	atualizada, err := servico.Atualizar(context.Background(), "inventario.dias_alerta", "45", "")
	require.NoError(t, err)
	assert.Equal(t, "45", atualizada.Valor)
	cacheStore.AssertExpectations(t)
}

func TestAtualizarConfiguracaoNaoEditavel(t *testing.T) {
	servico, configuracoes, cacheStore := novoServicoConfiguracoes(t)

	configuracoes.On("BuscarPorChave", mock.Anything, "sistema.versao").
		Return(&model.Configuracao{ID: "cfg-1", Chave: "sistema.versao", Valor: "1", Tipo: "string", Editavel: false}, nil)

	_, err := servico.Atualizar(context.Background(), "sistema.versao", "2", "")
	require.Error(t, err)
	assert.Equal(t, apierror.KindBusinessRule, apierror.KindOf(err))
	configuracoes.AssertNotCalled(t, "Atualizar", mock.Anything, mock.Anything)
	cacheStore.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestAtualizarConfiguracaoRespeitaTipo(t *testing.T) {
	servico, configuracoes, _ := novoServicoConfiguracoes(t)

	configuracoes.On("BuscarPorChave", mock.Anything, "manutencao.custo_alerta").
		Return(&model.Configuracao{ID: "cfg-1", Chave: "manutencao.custo_alerta", Valor: "5000", Tipo: "float", Editavel: true}, nil)

	_, err := servico.Atualizar(context.Background(), "manutencao.custo_alerta", "caro", "")
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
	configuracoes.AssertNotCalled(t, "Atualizar", mock.Anything, mock.Anything)
}
