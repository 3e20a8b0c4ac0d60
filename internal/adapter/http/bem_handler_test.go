package http_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jairomfjr/patrimonio-sub001/internal/adapter/database"
	adapterhttp "github.com/jairomfjr/patrimonio-sub001/internal/adapter/http"
	"github.com/jairomfjr/patrimonio-sub001/internal/app/bem"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/model"
	"github.com/jairomfjr/patrimonio-sub001/internal/infra/middleware"
	"github.com/jairomfjr/patrimonio-sub001/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ambienteBens monta um servidor de bens sobre um banco em memória, com o
// tradutor de erros na frente, do jeito que a aplicação registra as rotas.
type ambienteBens struct {
	router        *gin.Engine
	db            *gorm.DB
	categoriaID   string
	localizacaoID string
}

func novoAmbienteBens(t *testing.T) *ambienteBens {
	logger := testutils.TestLogger(t)
	db := testutils.NewTestDB(t)

	bens := database.NewBemRepository(db, logger)
	categorias := database.NewCategoriaRepository(db, logger)
	localizacoes := database.NewLocalizacaoRepository(db, logger)
	servico := bem.NewService(bens, categorias, localizacoes, nil, logger)
	handler := adapterhttp.NewBemHandler(servico, logger)

	router := testutils.SetupTestRouter(t)
	router.Use(middleware.NewErrorMiddleware(logger).Middleware())

	grupo := router.Group("/api/v1/bens")
	grupo.POST("", handler.Criar)
	grupo.GET("", handler.Pesquisar)
	grupo.GET("/:id", handler.BuscarPorID)
	grupo.GET("/numero-serie/:numeroSerie", handler.BuscarPorNumeroSerie)
	grupo.PUT("/:id", handler.Atualizar)
	grupo.DELETE("/:id", handler.Excluir)
	grupo.PATCH("/:id/status", handler.AlterarStatus)

	categoria := model.Categoria{ID: uuid.New().String(), Nome: "Informática"}
	require.NoError(t, db.Create(&categoria).Error)
	localizacao := model.Localizacao{ID: uuid.New().String(), Nome: "Sede"}
	require.NoError(t, db.Create(&localizacao).Error)

	return &ambienteBens{
		router:        router,
		db:            db,
		categoriaID:   categoria.ID,
		localizacaoID: localizacao.ID,
	}
}

func (a *ambienteBens) corpoBem(numeroSerie string) map[string]any {
	return map[string]any{
		"nome":           "Notebook",
		"numeroSerie":    numeroSerie,
		"dataAquisicao":  time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		"valorAquisicao": 4500,
		"categoriaId":    a.categoriaID,
		"localizacaoId":  a.localizacaoID,
	}
}

func TestCriarEBuscarBemViaAPI(t *testing.T) {
	ambiente := novoAmbienteBens(t)

	resp := testutils.MakeRequest(t, ambiente.router, http.MethodPost, "/api/v1/bens", ambiente.corpoBem("NB-0001"), nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusCreated)

	var criado model.Bem
	testutils.ParseResponse(t, resp, &criado)
	assert.Equal(t, model.StatusAtivo, criado.Status)

	resp = testutils.MakeRequest(t, ambiente.router, http.MethodGet, "/api/v1/bens/"+criado.ID, nil, nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	resp = testutils.MakeRequest(t, ambiente.router, http.MethodGet, "/api/v1/bens/numero-serie/NB-0001", nil, nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	var porSerie model.Bem
	testutils.ParseResponse(t, resp, &porSerie)
	assert.Equal(t, criado.ID, porSerie.ID)
}

func TestCriarBemDuplicadoViaAPI(t *testing.T) {
	ambiente := novoAmbienteBens(t)

	resp := testutils.MakeRequest(t, ambiente.router, http.MethodPost, "/api/v1/bens", ambiente.corpoBem("NB-0001"), nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusCreated)

	resp = testutils.MakeRequest(t, ambiente.router, http.MethodPost, "/api/v1/bens", ambiente.corpoBem("NB-0001"), nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusBadRequest)

	var envelope middleware.RespostaErro
	testutils.ParseResponse(t, resp, &envelope)
	assert.Equal(t, http.StatusBadRequest, envelope.Status)
	assert.Equal(t, "BUSINESS_RULE_VIOLATION", envelope.Error)
	assert.Equal(t, "/api/v1/bens", envelope.Path)
	assert.NotEmpty(t, envelope.Timestamp)
}

func TestCriarBemComVocabularioInvalidoViaAPI(t *testing.T) {
	ambiente := novoAmbienteBens(t)

	corpo := ambiente.corpoBem("NB-0001")
	corpo["estadoConservacao"] = "PESSIMO"

	resp := testutils.MakeRequest(t, ambiente.router, http.MethodPost, "/api/v1/bens", corpo, nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusBadRequest)

	var envelope middleware.RespostaErro
	testutils.ParseResponse(t, resp, &envelope)
	assert.Equal(t, "INVALID_ARGUMENT", envelope.Error)
}

func TestBuscarBemInexistenteViaAPI(t *testing.T) {
	ambiente := novoAmbienteBens(t)

	resp := testutils.MakeRequest(t, ambiente.router, http.MethodGet, "/api/v1/bens/"+uuid.New().String(), nil, nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusNotFound)

	var envelope middleware.RespostaErro
	testutils.ParseResponse(t, resp, &envelope)
	assert.Equal(t, "NOT_FOUND", envelope.Error)
}

func TestPesquisarBensViaAPI(t *testing.T) {
	ambiente := novoAmbienteBens(t)

	for _, serie := range []string{"NB-0001", "NB-0002", "NB-0003"} {
		resp := testutils.MakeRequest(t, ambiente.router, http.MethodPost, "/api/v1/bens", ambiente.corpoBem(serie), nil)
		testutils.RequireHTTPStatus(t, resp, http.StatusCreated)
	}

	resp := testutils.MakeRequest(t, ambiente.router, http.MethodGet, "/api/v1/bens?page=0&size=2", nil, nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	var envelope struct {
		Content       []model.Bem `json:"content"`
		TotalElements int64       `json:"totalElements"`
		Page          int         `json:"page"`
		Size          int         `json:"size"`
	}
	testutils.ParseResponse(t, resp, &envelope)
	assert.Equal(t, int64(3), envelope.TotalElements)
	assert.Len(t, envelope.Content, 2)
	assert.Equal(t, 0, envelope.Page)
	assert.Equal(t, 2, envelope.Size)

	// vocabulário inválido no filtro é rejeitado antes da consulta
	resp = testutils.MakeRequest(t, ambiente.router, http.MethodGet, "/api/v1/bens?status=QUEBRADO", nil, nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusBadRequest)
}

func TestAlterarStatusViaAPI(t *testing.T) {
	ambiente := novoAmbienteBens(t)

	resp := testutils.MakeRequest(t, ambiente.router, http.MethodPost, "/api/v1/bens", ambiente.corpoBem("NB-0001"), nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusCreated)

	var criado model.Bem
	testutils.ParseResponse(t, resp, &criado)

	resp = testutils.MakeRequest(t, ambiente.router, http.MethodPatch, "/api/v1/bens/"+criado.ID+"/status",
		map[string]string{"status": "EM_MANUTENCAO"}, nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	var atualizado model.Bem
	testutils.ParseResponse(t, resp, &atualizado)
	assert.Equal(t, model.StatusEmManutencao, atualizado.Status)

	// BAIXADO não é atingível pela troca direta de status
	resp = testutils.MakeRequest(t, ambiente.router, http.MethodPatch, "/api/v1/bens/"+criado.ID+"/status",
		map[string]string{"status": "BAIXADO"}, nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusBadRequest)
}

func TestExcluirBemViaAPI(t *testing.T) {
	ambiente := novoAmbienteBens(t)

	resp := testutils.MakeRequest(t, ambiente.router, http.MethodPost, "/api/v1/bens", ambiente.corpoBem("NB-0001"), nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusCreated)

	var criado model.Bem
	testutils.ParseResponse(t, resp, &criado)

	resp = testutils.MakeRequest(t, ambiente.router, http.MethodDelete, "/api/v1/bens/"+criado.ID, nil, nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusNoContent)

	resp = testutils.MakeRequest(t, ambiente.router, http.MethodGet, "/api/v1/bens/"+criado.ID, nil, nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusNotFound)
}
