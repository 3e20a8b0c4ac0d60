package main

import (
	"context"
	"testing"

	"github.com/jairomfjr/patrimonio-sub001/internal/domain/model"
	"github.com/jairomfjr/patrimonio-sub001/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSemearCriaAcervoCompleto(t *testing.T) {
	db := testutils.NewTestDB(t)
	require.NoError(t, semear(context.Background(), db))

	contar := func(modelo any) int64 {
		var total int64
		require.NoError(t, db.Model(modelo).Count(&total).Error)
		return total
	}

	assert.Equal(t, int64(3), contar(&model.Categoria{}))
	assert.Equal(t, int64(3), contar(&model.Localizacao{}))
	assert.Equal(t, int64(4), contar(&model.Bem{}))
	assert.Equal(t, int64(3), contar(&model.Configuracao{}))

	// uma entrada por bem mais as transferências
	assert.Equal(t, int64(7), contar(&model.Movimentacao{}))

	// a última movimentação de cada bem termina na sua localização atual
	var bens []model.Bem
	require.NoError(t, db.Find(&bens).Error)
	for _, bem := range bens {
		var ultima model.Movimentacao
		require.NoError(t, db.Where("bem_id = ?", bem.ID).
			Order("data_hora DESC").First(&ultima).Error)
		assert.Equal(t, bem.LocalizacaoID, ultima.DestinoID,
			"bem %s fora do destino da última movimentação", bem.Nome)
	}

	var inventario model.Inventario
	require.NoError(t, db.First(&inventario).Error)
	assert.Equal(t, model.InventarioEmAndamento, inventario.Status)
	require.NotNil(t, inventario.DataInicio)

	var vinculos int64
	require.NoError(t, db.Model(&model.InventarioBem{}).
		Where("inventario_id = ?", inventario.ID).Count(&vinculos).Error)
	assert.Equal(t, int64(4), vinculos)
}
