package model_test

import (
	"testing"

	"github.com/jairomfjr/patrimonio-sub001/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEstadoConservacao(t *testing.T) {
	for _, estado := range model.EstadosConservacao() {
		parsed, err := model.ParseEstadoConservacao(string(estado))
		require.NoError(t, err)
		assert.Equal(t, estado, parsed)
	}

	_, err := model.ParseEstadoConservacao("OTIMO")
	assert.Error(t, err)
}

func TestEstadoConservacaoPredicados(t *testing.T) {
	assert.True(t, model.ConservacaoExcelente.Operacional())
	assert.True(t, model.ConservacaoBom.Operacional())
	assert.True(t, model.ConservacaoRegular.Operacional())
	assert.True(t, model.ConservacaoRuim.ManutencaoNecessaria())
	assert.True(t, model.ConservacaoCritico.ManutencaoNecessaria())
	assert.True(t, model.ConservacaoInservivel.BaixaRecomendada())

	// as três famílias particionam os estados
	for _, estado := range model.EstadosConservacao() {
		familias := 0
		if estado.Operacional() {
			familias++
		}
		if estado.ManutencaoNecessaria() {
			familias++
		}
		if estado.BaixaRecomendada() {
			familias++
		}
		assert.Equal(t, 1, familias, "estado %s deveria pertencer a exatamente uma família", estado)
	}
}

func TestParseTipoMovimentacao(t *testing.T) {
	for _, tipo := range model.TiposMovimentacao() {
		parsed, err := model.ParseTipoMovimentacao(string(tipo))
		require.NoError(t, err)
		assert.Equal(t, tipo, parsed)
	}

	_, err := model.ParseTipoMovimentacao("REMANEJAMENTO")
	assert.Error(t, err)
}

func TestTipoMovimentacaoPredicados(t *testing.T) {
	assert.True(t, model.MovimentacaoEntrada.Entrada())
	assert.True(t, model.MovimentacaoDevolucao.Entrada())
	assert.True(t, model.MovimentacaoSaida.Saida())
	assert.True(t, model.MovimentacaoEmprestimo.Saida())
	assert.True(t, model.MovimentacaoTransferencia.Transferencia())

	assert.False(t, model.MovimentacaoManutencao.Entrada())
	assert.False(t, model.MovimentacaoManutencao.Transferencia())
}

func TestParseStatusManutencao(t *testing.T) {
	for _, status := range model.StatusManutencoes() {
		parsed, err := model.ParseStatusManutencao(string(status))
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	_, err := model.ParseStatusManutencao("PAUSADA")
	assert.Error(t, err)
}

func TestStatusManutencaoPredicados(t *testing.T) {
	assert.True(t, model.ManutencaoAgendada.Ativa())
	assert.True(t, model.ManutencaoEmAndamento.Ativa())
	assert.True(t, model.ManutencaoAguardandoPecas.Aguardando())
	assert.True(t, model.ManutencaoConcluida.Finalizada())
	assert.True(t, model.ManutencaoCancelada.Finalizada())

	for _, status := range model.StatusManutencoes() {
		familias := 0
		if status.Ativa() {
			familias++
		}
		if status.Aguardando() {
			familias++
		}
		if status.Finalizada() {
			familias++
		}
		assert.Equal(t, 1, familias, "status %s deveria pertencer a exatamente uma família", status)
	}
}

func TestParseTipoManutencao(t *testing.T) {
	for _, tipo := range model.TiposManutencao() {
		parsed, err := model.ParseTipoManutencao(string(tipo))
		require.NoError(t, err)
		assert.Equal(t, tipo, parsed)
	}

	_, err := model.ParseTipoManutencao("EMERGENCIAL")
	assert.Error(t, err)

	assert.True(t, model.ManutencaoPreventiva.Planejada())
	assert.True(t, model.ManutencaoPreditiva.Planejada())
	assert.True(t, model.ManutencaoCorretiva.Corretiva())
	assert.True(t, model.ManutencaoCalibracao.Especializada())
}

func TestParseStatusInventario(t *testing.T) {
	for _, status := range model.StatusInventarios() {
		parsed, err := model.ParseStatusInventario(string(status))
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	_, err := model.ParseStatusInventario("ABERTO")
	assert.Error(t, err)

	assert.True(t, model.InventarioPlanejado.Ativo())
	assert.True(t, model.InventarioEmAndamento.Ativo())
	assert.True(t, model.InventarioEmRevisao.EmRevisao())
	assert.True(t, model.InventarioConcluido.Finalizado())
	assert.True(t, model.InventarioCancelado.Finalizado())
}
