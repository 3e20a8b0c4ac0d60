package baixa_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jairomfjr/patrimonio-sub001/internal/adapter/database"
	"github.com/jairomfjr/patrimonio-sub001/internal/app/baixa"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/model"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/repository"
	"github.com/jairomfjr/patrimonio-sub001/internal/mocks"
	"github.com/jairomfjr/patrimonio-sub001/internal/testutils"
	"github.com/jairomfjr/patrimonio-sub001/pkg/apierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func novoServicoBaixas(t *testing.T) (*baixa.Service, *mocks.MockBaixaRepository, *mocks.MockBemRepository) {
	baixas := new(mocks.MockBaixaRepository)
	bens := new(mocks.MockBemRepository)
	servico := baixa.NewService(baixas, bens, testutils.TestLogger(t))
	return servico, baixas, bens
}

func TestRegistrarBaixa(t *testing.T) {
	servico, baixas, bens := novoServicoBaixas(t)

	bens.On("BuscarPorID", mock.Anything, "bem-1").
		Return(&model.Bem{ID: "bem-1", Status: model.StatusAtivo, Ativo: true}, nil)
	baixas.On("BuscarAtivaPorBem", mock.Anything, "bem-1").Return(nil, repository.ErrNaoEncontrado)
	baixas.On("Criar", mock.Anything, mock.AnythingOfType("*model.Baixa")).Return(nil)
	bens.On("Atualizar", mock.Anything, mock.MatchedBy(func(b *model.Bem) bool {
		return b.Status == model.StatusBaixado && !b.Ativo
	})).Return(nil)

	registrada, err := servico.Registrar(context.Background(), baixa.NovaBaixa{
		BemID:  "bem-1",
		Motivo: "obsolescência",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, registrada.ID)
	assert.False(t, registrada.Data.IsZero(), "data omitida assume o momento do registro")
	bens.AssertExpectations(t)
	baixas.AssertExpectations(t)
}

func TestRegistrarBaixaDeBemJaBaixado(t *testing.T) {
	servico, baixas, bens := novoServicoBaixas(t)

	bens.On("BuscarPorID", mock.Anything, "bem-1").
		Return(&model.Bem{ID: "bem-1", Status: model.StatusBaixado}, nil)

	_, err := servico.Registrar(context.Background(), baixa.NovaBaixa{BemID: "bem-1", Motivo: "duplicada"})
	require.Error(t, err)
	assert.Equal(t, apierror.KindBusinessRule, apierror.KindOf(err))
	baixas.AssertNotCalled(t, "Criar", mock.Anything, mock.Anything)
}

func TestRegistrarBaixaComBaixaAtivaExistente(t *testing.T) {
	servico, baixas, bens := novoServicoBaixas(t)

	bens.On("BuscarPorID", mock.Anything, "bem-1").
		Return(&model.Bem{ID: "bem-1", Status: model.StatusAtivo}, nil)
	baixas.On("BuscarAtivaPorBem", mock.Anything, "bem-1").
		Return(&model.Baixa{ID: "baixa-1", BemID: "bem-1"}, nil)

	_, err := servico.Registrar(context.Background(), baixa.NovaBaixa{BemID: "bem-1", Motivo: "extravio"})
	require.Error(t, err)
	assert.Equal(t, apierror.KindBusinessRule, apierror.KindOf(err))
	baixas.AssertNotCalled(t, "Criar", mock.Anything, mock.Anything)
}

func TestRegistrarBaixaSemMotivo(t *testing.T) {
	servico, baixas, _ := novoServicoBaixas(t)

	_, err := servico.Registrar(context.Background(), baixa.NovaBaixa{BemID: "bem-1"})
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
	baixas.AssertNotCalled(t, "Criar", mock.Anything, mock.Anything)
}

func TestAprovarBaixa(t *testing.T) {
	servico, baixas, _ := novoServicoBaixas(t)

	baixas.On("BuscarPorID", mock.Anything, "baixa-1").
		Return(&model.Baixa{ID: "baixa-1", BemID: "bem-1"}, nil)
	baixas.On("Atualizar", mock.Anything, mock.AnythingOfType("*model.Baixa")).Return(nil)

	aprovada, err := servico.Aprovar(context.Background(), "baixa-1")
	require.NoError(t, err)
	require.NotNil(t, aprovada.DataAprovacao)
}

func TestAprovarBaixaJaAprovada(t *testing.T) {
	servico, baixas, _ := novoServicoBaixas(t)

	aprovacao := time.Now()
	baixas.On("BuscarPorID", mock.Anything, "baixa-1").
		Return(&model.Baixa{ID: "baixa-1", DataAprovacao: &aprovacao}, nil)

	_, err := servico.Aprovar(context.Background(), "baixa-1")
	require.Error(t, err)
	assert.Equal(t, apierror.KindBusinessRule, apierror.KindOf(err))
}

func TestRegistrarVendaEmBaixaCancelada(t *testing.T) {
	servico, baixas, _ := novoServicoBaixas(t)

	baixas.On("BuscarPorID", mock.Anything, "baixa-1").
		Return(&model.Baixa{ID: "baixa-1", Cancelada: true}, nil)

	_, err := servico.RegistrarVenda(context.Background(), "baixa-1", 500, "Comprador", time.Time{})
	require.Error(t, err)
	assert.Equal(t, apierror.KindBusinessRule, apierror.KindOf(err))
}

func TestCancelarBaixaDevolveBemParaInativo(t *testing.T) {
	servico, baixas, bens := novoServicoBaixas(t)

	baixas.On("BuscarPorID", mock.Anything, "baixa-1").
		Return(&model.Baixa{ID: "baixa-1", BemID: "bem-1"}, nil)
	baixas.On("Atualizar", mock.Anything, mock.MatchedBy(func(b *model.Baixa) bool {
		return b.Cancelada
	})).Return(nil)
	bens.On("BuscarPorID", mock.Anything, "bem-1").
		Return(&model.Bem{ID: "bem-1", Status: model.StatusBaixado}, nil)
	bens.On("Atualizar", mock.Anything, mock.MatchedBy(func(b *model.Bem) bool {
		return b.Status == model.StatusInativo && !b.Ativo
	})).Return(nil)

	cancelada, err := servico.Cancelar(context.Background(), "baixa-1")
	require.NoError(t, err)
	assert.True(t, cancelada.Cancelada)
	bens.AssertExpectations(t)
}

func TestRegistrarNovaBaixaAposCancelamento(t *testing.T) {
	db := testutils.NewTestDB(t)
	logger := testutils.TestLogger(t)
	baixas := database.NewBaixaRepository(db, logger)
	bens := database.NewBemRepository(db, logger)
	servico := baixa.NewService(baixas, bens, logger)
	ctx := context.Background()

	categoria := model.Categoria{ID: uuid.New().String(), Nome: "Informática"}
	localizacao := model.Localizacao{ID: uuid.New().String(), Nome: "Almoxarifado"}
	require.NoError(t, db.Create(&categoria).Error)
	require.NoError(t, db.Create(&localizacao).Error)

	bem := model.Bem{
		ID:                uuid.New().String(),
		Nome:              "Notebook",
		NumeroSerie:       "NB-2020-0001",
		Status:            model.StatusInativo,
		EstadoConservacao: model.ConservacaoInservivel,
		CategoriaID:       categoria.ID,
		LocalizacaoID:     localizacao.ID,
	}
	require.NoError(t, db.Create(&bem).Error)

	primeira, err := servico.Registrar(ctx, baixa.NovaBaixa{BemID: bem.ID, Motivo: "inservível"})
	require.NoError(t, err)

	_, err = servico.Cancelar(ctx, primeira.ID)
	require.NoError(t, err)

	// a baixa cancelada fica como histórico e não bloqueia uma nova
	segunda, err := servico.Registrar(ctx, baixa.NovaBaixa{BemID: bem.ID, Motivo: "inservível após reavaliação"})
	require.NoError(t, err)
	assert.NotEqual(t, primeira.ID, segunda.ID)

	atualizado, err := bens.BuscarPorID(ctx, bem.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusBaixado, atualizado.Status)
	assert.False(t, atualizado.Ativo)
}

func TestCancelarBaixaJaCancelada(t *testing.T) {
	servico, baixas, bens := novoServicoBaixas(t)

	baixas.On("BuscarPorID", mock.Anything, "baixa-1").
		Return(&model.Baixa{ID: "baixa-1", Cancelada: true}, nil)

	_, err := servico.Cancelar(context.Background(), "baixa-1")
	require.Error(t, err)
	assert.Equal(t, apierror.KindBusinessRule, apierror.KindOf(err))
	bens.AssertNotCalled(t, "Atualizar", mock.Anything, mock.Anything)
}
