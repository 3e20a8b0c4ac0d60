package database_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jairomfjr/patrimonio-sub001/internal/adapter/database"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/model"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/repository"
	"github.com/jairomfjr/patrimonio-sub001/internal/testutils"
	"github.com/jairomfjr/patrimonio-sub001/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novoInventarioParaTeste(nome string) *model.Inventario {
	return &model.Inventario{
		ID:     uuid.New().String(),
		Nome:   nome,
		Status: model.InventarioPlanejado,
	}
}

func TestInventarioRepositoryNomeUnico(t *testing.T) {
	repo := database.NewInventarioRepository(testutils.NewTestDB(t), testutils.TestLogger(t))
	ctx := context.Background()

	require.NoError(t, repo.Criar(ctx, novoInventarioParaTeste("Inventário 2026")))

	err := repo.Criar(ctx, novoInventarioParaTeste("Inventário 2026"))
	assert.ErrorIs(t, err, repository.ErrDuplicado)

	// a verificação de nome ignora maiúsculas
	existe, err := repo.ExisteNome(ctx, "inventário 2026", "")
	require.NoError(t, err)
	assert.True(t, existe)
}

func TestInventarioRepositoryVinculosDeBens(t *testing.T) {
	repo := database.NewInventarioRepository(testutils.NewTestDB(t), testutils.TestLogger(t))
	ctx := context.Background()

	inventario := novoInventarioParaTeste("Inventário 2026")
	require.NoError(t, repo.Criar(ctx, inventario))

	bemA := uuid.New().String()
	bemB := uuid.New().String()
	require.NoError(t, repo.AdicionarBem(ctx, inventario.ID, bemA))
	require.NoError(t, repo.AdicionarBem(ctx, inventario.ID, bemB))

	// o mesmo bem não entra duas vezes na campanha
	assert.ErrorIs(t, repo.AdicionarBem(ctx, inventario.ID, bemA), repository.ErrDuplicado)

	vinculos, total, err := repo.ListarBens(ctx, inventario.ID, pagination.Pagina{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, vinculos, 2)
	for _, vinculo := range vinculos {
		assert.False(t, vinculo.Verificado)
	}

	require.NoError(t, repo.MarcarVerificado(ctx, inventario.ID, bemA, true))
	vinculos, _, err = repo.ListarBens(ctx, inventario.ID, pagination.Pagina{})
	require.NoError(t, err)
	verificados := 0
	for _, vinculo := range vinculos {
		if vinculo.Verificado {
			verificados++
			assert.Equal(t, bemA, vinculo.BemID)
		}
	}
	assert.Equal(t, 1, verificados)

	assert.ErrorIs(t, repo.MarcarVerificado(ctx, inventario.ID, uuid.New().String(), true), repository.ErrNaoEncontrado)

	require.NoError(t, repo.RemoverBem(ctx, inventario.ID, bemB))
	assert.ErrorIs(t, repo.RemoverBem(ctx, inventario.ID, bemB), repository.ErrNaoEncontrado)

	_, total, err = repo.ListarBens(ctx, inventario.ID, pagination.Pagina{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestInventarioRepositoryExcluirRemoveVinculos(t *testing.T) {
	db := testutils.NewTestDB(t)
	repo := database.NewInventarioRepository(db, testutils.TestLogger(t))
	ctx := context.Background()

	inventario := novoInventarioParaTeste("Inventário 2026")
	require.NoError(t, repo.Criar(ctx, inventario))
	require.NoError(t, repo.AdicionarBem(ctx, inventario.ID, uuid.New().String()))

	require.NoError(t, repo.Excluir(ctx, inventario.ID))

	_, err := repo.BuscarPorID(ctx, inventario.ID)
	assert.ErrorIs(t, err, repository.ErrNaoEncontrado)

	var vinculos int64
	require.NoError(t, db.Model(&model.InventarioBem{}).Where("inventario_id = ?", inventario.ID).Count(&vinculos).Error)
	assert.Zero(t, vinculos)
}
