package bem_test

import (
	"context"
	"testing"
	"time"

	"github.com/jairomfjr/patrimonio-sub001/internal/app/bem"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/model"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/repository"
	"github.com/jairomfjr/patrimonio-sub001/internal/mocks"
	"github.com/jairomfjr/patrimonio-sub001/internal/testutils"
	"github.com/jairomfjr/patrimonio-sub001/pkg/apierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func novoServicoBens(t *testing.T) (*bem.Service, *mocks.MockBemRepository, *mocks.MockCategoriaRepository, *mocks.MockLocalizacaoRepository) {
	bens := new(mocks.MockBemRepository)
	categorias := new(mocks.MockCategoriaRepository)
	localizacoes := new(mocks.MockLocalizacaoRepository)
	servico := bem.NewService(bens, categorias, localizacoes, nil, testutils.TestLogger(t))
	return servico, bens, categorias, localizacoes
}

func novoBemValido() bem.NovoBem {
	return bem.NovoBem{
		Nome:           "Notebook",
		NumeroSerie:    "NB-0001",
		DataAquisicao:  time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		ValorAquisicao: 4500,
		CategoriaID:    "cat-1",
		LocalizacaoID:  "loc-1",
	}
}

func TestCriarBem(t *testing.T) {
	servico, bens, categorias, localizacoes := novoServicoBens(t)

	bens.On("ExisteNumeroSerie", mock.Anything, "NB-0001", "").Return(false, nil)
	categorias.On("BuscarPorID", mock.Anything, "cat-1").Return(&model.Categoria{ID: "cat-1"}, nil)
	localizacoes.On("BuscarPorID", mock.Anything, "loc-1").Return(&model.Localizacao{ID: "loc-1"}, nil)
	bens.On("Criar", mock.Anything, mock.AnythingOfType("*model.Bem")).Return(nil)

	criado, err := servico.Criar(context.Background(), novoBemValido())
	require.NoError(t, err)

	assert.NotEmpty(t, criado.ID)
	assert.Equal(t, model.StatusAtivo, criado.Status)
	assert.Equal(t, model.ConservacaoBom, criado.EstadoConservacao, "conservação omitida assume BOM")
	assert.True(t, criado.Ativo)
	bens.AssertExpectations(t)
}

func TestCriarBemComNumeroSerieDuplicado(t *testing.T) {
	servico, bens, _, _ := novoServicoBens(t)

	bens.On("ExisteNumeroSerie", mock.Anything, "NB-0001", "").Return(true, nil)

	_, err := servico.Criar(context.Background(), novoBemValido())
	require.Error(t, err)
	assert.Equal(t, apierror.KindBusinessRule, apierror.KindOf(err))
	bens.AssertNotCalled(t, "Criar", mock.Anything, mock.Anything)
}

func TestCriarBemComCategoriaInexistente(t *testing.T) {
	servico, bens, categorias, _ := novoServicoBens(t)

	bens.On("ExisteNumeroSerie", mock.Anything, "NB-0001", "").Return(false, nil)
	categorias.On("BuscarPorID", mock.Anything, "cat-1").Return(nil, repository.ErrNaoEncontrado)

	_, err := servico.Criar(context.Background(), novoBemValido())
	require.Error(t, err)
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))
	bens.AssertNotCalled(t, "Criar", mock.Anything, mock.Anything)
}

func TestCriarBemComDadosInvalidos(t *testing.T) {
	servico, bens, _, _ := novoServicoBens(t)

	semNome := novoBemValido()
	semNome.Nome = ""
	_, err := servico.Criar(context.Background(), semNome)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))

	valorNegativo := novoBemValido()
	valorNegativo.ValorAquisicao = -1
	_, err = servico.Criar(context.Background(), valorNegativo)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))

	bens.AssertNotCalled(t, "Criar", mock.Anything, mock.Anything)
}

func TestAlterarStatus(t *testing.T) {
	servico, bens, _, _ := novoServicoBens(t)

	bens.On("BuscarPorID", mock.Anything, "bem-1").
		Return(&model.Bem{ID: "bem-1", Status: model.StatusAtivo, Ativo: true}, nil)
	bens.On("Atualizar", mock.Anything, mock.AnythingOfType("*model.Bem")).Return(nil)

	atualizado, err := servico.AlterarStatus(context.Background(), "bem-1", model.StatusEmManutencao)
	require.NoError(t, err)
	assert.Equal(t, model.StatusEmManutencao, atualizado.Status)
	assert.True(t, atualizado.Ativo)
}

func TestAlterarStatusParaBaixadoSemBaixaFormal(t *testing.T) {
	servico, bens, _, _ := novoServicoBens(t)

	bens.On("BuscarPorID", mock.Anything, "bem-1").
		Return(&model.Bem{ID: "bem-1", Status: model.StatusAtivo}, nil)

	_, err := servico.AlterarStatus(context.Background(), "bem-1", model.StatusBaixado)
	require.Error(t, err)
	assert.Equal(t, apierror.KindBusinessRule, apierror.KindOf(err))
	bens.AssertNotCalled(t, "Atualizar", mock.Anything, mock.Anything)
}

func TestAlterarStatusComTransicaoProibida(t *testing.T) {
	servico, bens, _, _ := novoServicoBens(t)

	bens.On("BuscarPorID", mock.Anything, "bem-1").
		Return(&model.Bem{ID: "bem-1", Status: model.StatusBaixado}, nil)

	_, err := servico.AlterarStatus(context.Background(), "bem-1", model.StatusAtivo)
	require.Error(t, err)
	assert.Equal(t, apierror.KindBusinessRule, apierror.KindOf(err))
}

func TestDesativarRetiraDeCirculacao(t *testing.T) {
	servico, bens, _, _ := novoServicoBens(t)

	bens.On("BuscarPorID", mock.Anything, "bem-1").
		Return(&model.Bem{ID: "bem-1", Status: model.StatusAtivo, Ativo: true}, nil)
	bens.On("Atualizar", mock.Anything, mock.AnythingOfType("*model.Bem")).Return(nil)

	atualizado, err := servico.Desativar(context.Background(), "bem-1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusInativo, atualizado.Status)
	assert.False(t, atualizado.Ativo)
}

func TestExcluirBemBaixado(t *testing.T) {
	servico, bens, _, _ := novoServicoBens(t)

	bens.On("BuscarPorID", mock.Anything, "bem-1").
		Return(&model.Bem{ID: "bem-1", Status: model.StatusBaixado}, nil)

	err := servico.Excluir(context.Background(), "bem-1")
	require.Error(t, err)
	assert.Equal(t, apierror.KindBusinessRule, apierror.KindOf(err))
	bens.AssertNotCalled(t, "Excluir", mock.Anything, mock.Anything)
}

func TestBuscarPorIDInexistente(t *testing.T) {
	servico, bens, _, _ := novoServicoBens(t)

	bens.On("BuscarPorID", mock.Anything, "desconhecido").Return(nil, repository.ErrNaoEncontrado)

	_, err := servico.BuscarPorID(context.Background(), "desconhecido")
	require.Error(t, err)
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))
}

func TestResumoAcervo(t *testing.T) {
	servico, bens, _, _ := novoServicoBens(t)

	bens.On("ContarPorStatus", mock.Anything).Return(map[model.StatusBem]int64{
		model.StatusAtivo:   7,
		model.StatusBaixado: 2,
	}, nil)
	bens.On("SomarValorAquisicao", mock.Anything, repository.FiltroBens{}).Return(125000.0, nil)

	resumo, err := servico.ResumoAcervo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(9), resumo.TotalBens)
	assert.Equal(t, 125000.0, resumo.ValorAquisicaoTotal)
	assert.Equal(t, int64(7), resumo.TotalPorStatus[model.StatusAtivo])
}
