package model_test

import (
	"testing"

	"github.com/jairomfjr/patrimonio-sub001/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatusBem(t *testing.T) {
	for _, status := range model.StatusBens() {
		parsed, err := model.ParseStatusBem(string(status))
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	_, err := model.ParseStatusBem("QUEBRADO")
	assert.Error(t, err)

	// nomes fora da grafia exata são rejeitados
	_, err = model.ParseStatusBem("ativo")
	assert.Error(t, err)
}

func TestStatusBemLabelsEDescricoes(t *testing.T) {
	for _, status := range model.StatusBens() {
		assert.NotEmpty(t, status.Label(), "status %s sem label", status)
		assert.NotEmpty(t, status.Descricao(), "status %s sem descrição", status)
		assert.NotEqual(t, string(status), status.Label(), "status %s com label igual ao valor", status)
	}
}

func TestStatusBemPredicados(t *testing.T) {
	assert.True(t, model.StatusAtivo.Operacional())
	assert.True(t, model.StatusReservado.Operacional())
	assert.True(t, model.StatusEmManutencao.EmManutencao())
	assert.True(t, model.StatusExtraviado.Problema())
	assert.True(t, model.StatusInativo.Problema())
	assert.True(t, model.StatusBaixado.Problema())

	// cada status pertence a exatamente uma das três famílias
	for _, status := range model.StatusBens() {
		familias := 0
		if status.Operacional() {
			familias++
		}
		if status.EmManutencao() {
			familias++
		}
		if status.Problema() {
			familias++
		}
		assert.Equal(t, 1, familias, "status %s deveria pertencer a exatamente uma família", status)
	}

	for _, status := range model.StatusBens() {
		assert.Equal(t, status == model.StatusBaixado, status.Terminal())
	}
}

func TestTransicoesDeStatus(t *testing.T) {
	// permanecer no mesmo status é sempre permitido
	for _, status := range model.StatusBens() {
		assert.True(t, status.PodeTransicionarPara(status))
	}

	// BAIXADO é terminal
	for _, destino := range model.StatusBens() {
		if destino == model.StatusBaixado {
			continue
		}
		assert.False(t, model.StatusBaixado.PodeTransicionarPara(destino),
			"BAIXADO não deveria transicionar para %s", destino)
	}

	assert.True(t, model.StatusAtivo.PodeTransicionarPara(model.StatusEmManutencao))
	assert.True(t, model.StatusEmManutencao.PodeTransicionarPara(model.StatusAtivo))
	assert.True(t, model.StatusExtraviado.PodeTransicionarPara(model.StatusAtivo))
	assert.True(t, model.StatusInativo.PodeTransicionarPara(model.StatusBaixado))

	// reservado não admite baixa direta nem extravio vindo de manutenção
	assert.False(t, model.StatusReservado.PodeTransicionarPara(model.StatusBaixado))
	assert.False(t, model.StatusEmManutencao.PodeTransicionarPara(model.StatusExtraviado))
}
