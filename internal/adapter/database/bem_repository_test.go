package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jairomfjr/patrimonio-sub001/internal/adapter/database"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/model"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/repository"
	"github.com/jairomfjr/patrimonio-sub001/internal/testutils"
	"github.com/jairomfjr/patrimonio-sub001/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novoBemParaTeste(numeroSerie, nome string, status model.StatusBem, valor float64) *model.Bem {
	return &model.Bem{
		ID:                uuid.New().String(),
		Nome:              nome,
		NumeroSerie:       numeroSerie,
		DataAquisicao:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		ValorAquisicao:    valor,
		Status:            status,
		EstadoConservacao: model.ConservacaoBom,
		Ativo:             status == model.StatusAtivo,
		CategoriaID:       uuid.New().String(),
		LocalizacaoID:     uuid.New().String(),
	}
}

func TestBemRepositoryCriarEBuscar(t *testing.T) {
	repo := database.NewBemRepository(testutils.NewTestDB(t), testutils.TestLogger(t))
	ctx := context.Background()

	bem := novoBemParaTeste("NB-0001", "Notebook", model.StatusAtivo, 4500)
	require.NoError(t, repo.Criar(ctx, bem))

	porID, err := repo.BuscarPorID(ctx, bem.ID)
	require.NoError(t, err)
	assert.Equal(t, "Notebook", porID.Nome)

	porSerie, err := repo.BuscarPorNumeroSerie(ctx, "NB-0001")
	require.NoError(t, err)
	assert.Equal(t, bem.ID, porSerie.ID)

	_, err = repo.BuscarPorID(ctx, uuid.New().String())
	assert.ErrorIs(t, err, repository.ErrNaoEncontrado)
}

func TestBemRepositoryNumeroSerieDuplicado(t *testing.T) {
	repo := database.NewBemRepository(testutils.NewTestDB(t), testutils.TestLogger(t))
	ctx := context.Background()

	require.NoError(t, repo.Criar(ctx, novoBemParaTeste("NB-0001", "Notebook", model.StatusAtivo, 4500)))

	err := repo.Criar(ctx, novoBemParaTeste("NB-0001", "Outro notebook", model.StatusAtivo, 3000))
	assert.ErrorIs(t, err, repository.ErrDuplicado)

	existe, err := repo.ExisteNumeroSerie(ctx, "NB-0001", "")
	require.NoError(t, err)
	assert.True(t, existe)

	existe, err = repo.ExisteNumeroSerie(ctx, "NB-9999", "")
	require.NoError(t, err)
	assert.False(t, existe)
}

func TestBemRepositoryPesquisarComFiltros(t *testing.T) {
	db := testutils.NewTestDB(t)
	repo := database.NewBemRepository(db, testutils.TestLogger(t))
	ctx := context.Background()

	require.NoError(t, repo.Criar(ctx, novoBemParaTeste("NB-0001", "Notebook Dell", model.StatusAtivo, 4500)))
	require.NoError(t, repo.Criar(ctx, novoBemParaTeste("NB-0002", "Notebook Lenovo", model.StatusEmManutencao, 3800)))
	require.NoError(t, repo.Criar(ctx, novoBemParaTeste("MB-0001", "Mesa de reunião", model.StatusAtivo, 2100)))

	// filtro ausente não restringe
	todos, total, err := repo.Pesquisar(ctx, repository.FiltroBens{}, pagination.Pagina{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, todos, 3)

	// substring de nome, sem diferenciar caixa
	nome := "notebook"
	porNome, total, err := repo.Pesquisar(ctx, repository.FiltroBens{Nome: &nome}, pagination.Pagina{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	for _, b := range porNome {
		assert.Contains(t, b.Nome, "Notebook")
	}

	status := model.StatusEmManutencao
	porStatus, total, err := repo.Pesquisar(ctx, repository.FiltroBens{Status: &status}, pagination.Pagina{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "NB-0002", porStatus[0].NumeroSerie)

	// faixa de valor combina com o filtro de nome por AND
	minimo := 4000.0
	porValor, total, err := repo.Pesquisar(ctx, repository.FiltroBens{Nome: &nome, ValorMinimo: &minimo}, pagination.Pagina{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "NB-0001", porValor[0].NumeroSerie)
}

func TestBemRepositoryPaginacao(t *testing.T) {
	repo := database.NewBemRepository(testutils.NewTestDB(t), testutils.TestLogger(t))
	ctx := context.Background()

	// mesmo nome em todos para exercitar o desempate por id
	for i := 0; i < 5; i++ {
		bem := novoBemParaTeste("SN-"+uuid.New().String(), "Cadeira", model.StatusAtivo, 100)
		require.NoError(t, repo.Criar(ctx, bem))
	}

	primeira, total, err := repo.Pesquisar(ctx, repository.FiltroBens{}, pagination.Pagina{Numero: 0, Tamanho: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, primeira, 2)

	segunda, _, err := repo.Pesquisar(ctx, repository.FiltroBens{}, pagination.Pagina{Numero: 1, Tamanho: 2})
	require.NoError(t, err)
	require.Len(t, segunda, 2)

	terceira, _, err := repo.Pesquisar(ctx, repository.FiltroBens{}, pagination.Pagina{Numero: 2, Tamanho: 2})
	require.NoError(t, err)
	require.Len(t, terceira, 1)

	vistos := map[string]bool{}
	for _, pagina := range [][]*model.Bem{primeira, segunda, terceira} {
		for _, b := range pagina {
			assert.False(t, vistos[b.ID], "bem %s repetido entre páginas", b.ID)
			vistos[b.ID] = true
		}
	}
}

func TestBemRepositoryAtualizarEExcluir(t *testing.T) {
	repo := database.NewBemRepository(testutils.NewTestDB(t), testutils.TestLogger(t))
	ctx := context.Background()

	bem := novoBemParaTeste("NB-0001", "Notebook", model.StatusAtivo, 4500)
	require.NoError(t, repo.Criar(ctx, bem))

	bem.Nome = "Notebook corporativo"
	bem.Status = model.StatusReservado
	require.NoError(t, repo.Atualizar(ctx, bem))

	atualizado, err := repo.BuscarPorID(ctx, bem.ID)
	require.NoError(t, err)
	assert.Equal(t, "Notebook corporativo", atualizado.Nome)
	assert.Equal(t, model.StatusReservado, atualizado.Status)

	fantasma := novoBemParaTeste("NB-0002", "Inexistente", model.StatusAtivo, 100)
	assert.ErrorIs(t, repo.Atualizar(ctx, fantasma), repository.ErrNaoEncontrado)

	require.NoError(t, repo.Excluir(ctx, bem.ID))
	_, err = repo.BuscarPorID(ctx, bem.ID)
	assert.ErrorIs(t, err, repository.ErrNaoEncontrado)
	assert.ErrorIs(t, repo.Excluir(ctx, bem.ID), repository.ErrNaoEncontrado)
}

func TestBemRepositoryAgregados(t *testing.T) {
	repo := database.NewBemRepository(testutils.NewTestDB(t), testutils.TestLogger(t))
	ctx := context.Background()

	require.NoError(t, repo.Criar(ctx, novoBemParaTeste("NB-0001", "Notebook", model.StatusAtivo, 4500)))
	require.NoError(t, repo.Criar(ctx, novoBemParaTeste("NB-0002", "Notebook", model.StatusAtivo, 3800)))
	require.NoError(t, repo.Criar(ctx, novoBemParaTeste("VE-0001", "Veículo", model.StatusBaixado, 86000)))

	contagem, err := repo.ContarPorStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), contagem[model.StatusAtivo])
	assert.Equal(t, int64(1), contagem[model.StatusBaixado])

	soma, err := repo.SomarValorAquisicao(ctx, repository.FiltroBens{})
	require.NoError(t, err)
	assert.InDelta(t, 94300, soma, 0.01)

	status := model.StatusAtivo
	somaAtivos, err := repo.SomarValorAquisicao(ctx, repository.FiltroBens{Status: &status})
	require.NoError(t, err)
	assert.InDelta(t, 8300, somaAtivos, 0.01)

	// banco vazio de EXTRAVIADO soma zero, não erro
	extraviado := model.StatusExtraviado
	somaVazia, err := repo.SomarValorAquisicao(ctx, repository.FiltroBens{Status: &extraviado})
	require.NoError(t, err)
	assert.Zero(t, somaVazia)
}
