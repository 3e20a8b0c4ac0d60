package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jairomfjr/patrimonio-sub001/internal/adapter/database"
	"github.com/jairomfjr/patrimonio-sub001/internal/adapter/http"
	"github.com/jairomfjr/patrimonio-sub001/internal/app/auditoria"
	"github.com/jairomfjr/patrimonio-sub001/internal/app/auth"
	"github.com/jairomfjr/patrimonio-sub001/internal/app/baixa"
	"github.com/jairomfjr/patrimonio-sub001/internal/app/bem"
	"github.com/jairomfjr/patrimonio-sub001/internal/app/catalogo"
	"github.com/jairomfjr/patrimonio-sub001/internal/app/configuracao"
	"github.com/jairomfjr/patrimonio-sub001/internal/app/inventario"
	"github.com/jairomfjr/patrimonio-sub001/internal/app/manutencao"
	"github.com/jairomfjr/patrimonio-sub001/internal/app/movimentacao"
	"github.com/jairomfjr/patrimonio-sub001/internal/app/notificacao"
	"github.com/jairomfjr/patrimonio-sub001/internal/app/usuario"
	"github.com/jairomfjr/patrimonio-sub001/internal/infra/metrics"
	"github.com/jairomfjr/patrimonio-sub001/internal/infra/middleware"
	"github.com/jairomfjr/patrimonio-sub001/pkg/cache"
	"github.com/jairomfjr/patrimonio-sub001/pkg/config"
	"github.com/jairomfjr/patrimonio-sub001/pkg/ratelimit"
	"github.com/jairomfjr/patrimonio-sub001/pkg/security"
	"go.uber.org/zap"
)

// nivelAcessoEscrita é o nível mínimo para operações de escrita sobre o
// acervo. Áreas administrativas usam cfg.Auth.NivelAcessoAdmin.
const nivelAcessoEscrita = 2

// App reúne as dependências montadas da aplicação
type App struct {
	Logger   *zap.Logger
	Config   *config.Config
	DB       *database.Database
	Cache    cache.Cache
	Metricas *metrics.Metricas

	authService *auth.Service

	bemHandler          *http.BemHandler
	categoriaHandler    *http.CategoriaHandler
	localizacaoHandler  *http.LocalizacaoHandler
	movimentacaoHandler *http.MovimentacaoHandler
	manutencaoHandler   *http.ManutencaoHandler
	baixaHandler        *http.BaixaHandler
	inventarioHandler   *http.InventarioHandler
	usuarioHandler      *http.UsuarioHandler
	perfilHandler       *http.PerfilHandler
	authHandler         *http.AuthHandler
	notificacaoHandler  *http.NotificacaoHandler
	configuracaoHandler *http.ConfiguracaoHandler
	auditoriaHandler    *http.AuditoriaHandler
	vocabularioHandler  *http.VocabularioHandler
	healthChecker       *http.HealthChecker

	authMiddleware      *middleware.AuthMiddleware
	auditoriaMiddleware *middleware.AuditoriaMiddleware
	metricsMiddleware   *middleware.MetricsMiddleware
	securityMiddleware  *middleware.SecurityMiddleware
	tracingMiddleware   *middleware.TracingMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

// NewApp monta a aplicação com todas as dependências injetadas
func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	db, err := database.NewDatabase(ctx, database.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        cfg.Database.LogLevel,
		SlowThreshold:   cfg.Database.SlowThreshold,
	}, logger)
	if err != nil {
		return nil, err
	}

	metricas := metrics.NewMetricas()

	cacheStore, err := novoCache(cfg.Cache, metricas, logger)
	if err != nil {
		return nil, err
	}

	keyManager, err := security.NewKeyManager([]byte(cfg.Auth.JWTSecret), logger)
	if err != nil {
		return nil, err
	}

	// Repositórios
	categoriaRepo := database.NewCategoriaRepository(db.DB(), logger)
	localizacaoRepo := database.NewLocalizacaoRepository(db.DB(), logger)
	bemRepo := database.NewBemRepository(db.DB(), logger)
	movimentacaoRepo := database.NewMovimentacaoRepository(db.DB(), logger)
	manutencaoRepo := database.NewManutencaoRepository(db.DB(), logger)
	baixaRepo := database.NewBaixaRepository(db.DB(), logger)
	inventarioRepo := database.NewInventarioRepository(db.DB(), logger)
	usuarioRepo := database.NewUsuarioRepository(db.DB(), logger)
	perfilRepo := database.NewPerfilRepository(db.DB(), logger)
	notificacaoRepo := database.NewNotificacaoRepository(db.DB(), logger)
	configuracaoRepo := database.NewConfiguracaoRepository(db.DB(), logger)
	auditoriaRepo := database.NewAuditoriaRepository(db.DB(), logger)

	// Serviços
	bemService := bem.NewService(bemRepo, categoriaRepo, localizacaoRepo, metricas, logger)
	categoriaService := catalogo.NewCategoriaService(categoriaRepo, logger)
	localizacaoService := catalogo.NewLocalizacaoService(localizacaoRepo, logger)
	movimentacaoService := movimentacao.NewService(movimentacaoRepo, bemRepo, localizacaoRepo, logger)
	manutencaoService := manutencao.NewService(manutencaoRepo, bemRepo, logger)
	baixaService := baixa.NewService(baixaRepo, bemRepo, logger)
	inventarioService := inventario.NewService(inventarioRepo, bemRepo, logger)
	usuarioService := usuario.NewService(usuarioRepo, perfilRepo, cfg.Auth.PasswordMinLen, 0, logger)
	perfilService := usuario.NewPerfilService(perfilRepo, logger)
	authService := auth.NewService(keyManager, usuarioRepo, cfg.Auth.TokenExpiration, logger)
	notificacaoService := notificacao.NewService(notificacaoRepo, usuarioRepo, metricas, logger)
	configuracaoService := configuracao.NewService(configuracaoRepo, cacheStore, logger)
	auditoriaService := auditoria.NewService(auditoriaRepo, metricas, logger)

	// Rate limit do login só quando há Redis disponível
	var rateLimitMiddleware *middleware.RateLimitMiddleware
	if redisCache, ok := cacheStore.(*cache.RedisCache); ok {
		limiter := ratelimit.NewRedisLimiter(redisCache.Client(), logger)
		rateLimitMiddleware = middleware.NewRateLimitMiddleware(limiter, logger)
	}

	return &App{
		Logger:   logger,
		Config:   cfg,
		DB:       db,
		Cache:    cacheStore,
		Metricas: metricas,

		authService: authService,

		bemHandler:          http.NewBemHandler(bemService, logger),
		categoriaHandler:    http.NewCategoriaHandler(categoriaService, logger),
		localizacaoHandler:  http.NewLocalizacaoHandler(localizacaoService, logger),
		movimentacaoHandler: http.NewMovimentacaoHandler(movimentacaoService, logger),
		manutencaoHandler:   http.NewManutencaoHandler(manutencaoService, logger),
		baixaHandler:        http.NewBaixaHandler(baixaService, logger),
		inventarioHandler:   http.NewInventarioHandler(inventarioService, logger),
		usuarioHandler:      http.NewUsuarioHandler(usuarioService, logger),
		perfilHandler:       http.NewPerfilHandler(perfilService, logger),
		authHandler:         http.NewAuthHandler(authService, usuarioService, logger),
		notificacaoHandler:  http.NewNotificacaoHandler(notificacaoService, logger),
		configuracaoHandler: http.NewConfiguracaoHandler(configuracaoService, logger),
		auditoriaHandler:    http.NewAuditoriaHandler(auditoriaService, logger),
		vocabularioHandler:  http.NewVocabularioHandler(),
		healthChecker:       http.NewHealthChecker(db, cacheStore, logger),

		authMiddleware:      middleware.NewAuthMiddleware(keyManager, logger),
		auditoriaMiddleware: middleware.NewAuditoriaMiddleware(auditoriaService, logger),
		metricsMiddleware:   middleware.NewMetricsMiddleware(metricas, logger),
		securityMiddleware:  middleware.NewSecurityMiddleware(logger),
		tracingMiddleware:   middleware.NewTracingMiddleware(logger),
		rateLimitMiddleware: rateLimitMiddleware,
	}, nil
}

// novoCache monta o cache conforme a configuração
func novoCache(cfg config.CacheConfig, metricas *metrics.Metricas, logger *zap.Logger) (cache.Cache, error) {
	if !cfg.Enabled {
		return &cache.NoOpCache{}, nil
	}

	switch cfg.Type {
	case "redis":
		return cache.NewRedisCache(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB, logger)
	case "memory":
		return cache.NewMemoryCache(cfg.TTL, 2*cfg.TTL, metricas, logger), nil
	default:
		return nil, fmt.Errorf("tipo de cache não suportado: %s", cfg.Type)
	}
}

// RegisterRoutes registra middlewares globais e todas as rotas da API
func (a *App) RegisterRoutes(router *gin.Engine) {
	recovery := middleware.NewRecoveryMiddleware(a.Logger)
	logging := middleware.NewLoggingMiddleware(a.Logger)
	erros := middleware.NewErrorMiddleware(a.Logger)

	router.Use(recovery.Recovery())
	router.Use(a.securityMiddleware.Headers())
	router.Use(a.securityMiddleware.CORS())
	router.Use(logging.Middleware())
	if a.Config.Tracing.Enabled {
		router.Use(a.tracingMiddleware.Middleware())
	}
	if a.Config.Metrics.Enabled {
		router.Use(a.metricsMiddleware.Middleware())
		a.metricsMiddleware.RegisterEndpoint(router)
	}
	router.Use(erros.Middleware())

	// Rotas públicas
	if a.rateLimitMiddleware != nil {
		router.POST("/auth/login",
			a.rateLimitMiddleware.LimitarPorIP("login", 10, time.Minute),
			a.authHandler.Login)
	} else {
		router.POST("/auth/login", a.authHandler.Login)
	}
	router.GET("/health", a.healthChecker.LivenessCheck)
	router.GET("/health/liveness", a.healthChecker.LivenessCheck)
	router.GET("/health/readiness", a.healthChecker.ReadinessCheck)
	router.GET("/health/detailed", a.healthChecker.DetailedHealth)

	autenticado := a.authMiddleware.Authenticate()
	escrita := a.authMiddleware.ExigirNivel(nivelAcessoEscrita)
	admin := a.authMiddleware.ExigirNivel(a.Config.Auth.NivelAcessoAdmin)

	router.GET("/auth/me", autenticado, a.authHandler.Me)

	api := router.Group("/api/v1")
	api.Use(autenticado)
	api.Use(a.auditoriaMiddleware.Middleware())

	bens := api.Group("/bens")
	{
		bens.GET("", a.bemHandler.Pesquisar)
		bens.GET("/resumo", a.bemHandler.Resumo)
		bens.GET("/numero-serie/:numeroSerie", a.bemHandler.BuscarPorNumeroSerie)
		bens.GET("/:id", a.bemHandler.BuscarPorID)
		bens.GET("/:id/movimentacoes", a.movimentacaoHandler.HistoricoDoBem)
		bens.POST("", escrita, a.bemHandler.Criar)
		bens.PUT("/:id", escrita, a.bemHandler.Atualizar)
		bens.DELETE("/:id", escrita, a.bemHandler.Excluir)
		bens.PATCH("/:id/status", escrita, a.bemHandler.AlterarStatus)
		bens.PATCH("/:id/conservacao", escrita, a.bemHandler.AlterarConservacao)
		bens.PATCH("/:id/ativar", escrita, a.bemHandler.Ativar)
		bens.PATCH("/:id/desativar", escrita, a.bemHandler.Desativar)
	}

	categorias := api.Group("/categorias")
	{
		categorias.GET("", a.categoriaHandler.Pesquisar)
		categorias.GET("/:id", a.categoriaHandler.BuscarPorID)
		categorias.POST("", escrita, a.categoriaHandler.Criar)
		categorias.PUT("/:id", escrita, a.categoriaHandler.Atualizar)
		categorias.DELETE("/:id", escrita, a.categoriaHandler.Excluir)
	}

	localizacoes := api.Group("/localizacoes")
	{
		localizacoes.GET("", a.localizacaoHandler.Pesquisar)
		localizacoes.GET("/:id", a.localizacaoHandler.BuscarPorID)
		localizacoes.POST("", escrita, a.localizacaoHandler.Criar)
		localizacoes.PUT("/:id", escrita, a.localizacaoHandler.Atualizar)
		localizacoes.DELETE("/:id", escrita, a.localizacaoHandler.Excluir)
	}

	movimentacoes := api.Group("/movimentacoes")
	{
		movimentacoes.GET("", a.movimentacaoHandler.Pesquisar)
		movimentacoes.GET("/:id", a.movimentacaoHandler.BuscarPorID)
		movimentacoes.POST("", escrita, a.movimentacaoHandler.Registrar)
	}

	manutencoes := api.Group("/manutencoes")
	{
		manutencoes.GET("", a.manutencaoHandler.Pesquisar)
		manutencoes.GET("/custo-total", a.manutencaoHandler.CustoTotal)
		manutencoes.GET("/:id", a.manutencaoHandler.BuscarPorID)
		manutencoes.POST("", escrita, a.manutencaoHandler.Agendar)
		manutencoes.PUT("/:id", escrita, a.manutencaoHandler.Atualizar)
		manutencoes.PATCH("/:id/iniciar", escrita, a.manutencaoHandler.Iniciar)
		manutencoes.PATCH("/:id/suspender", escrita, a.manutencaoHandler.Suspender)
		manutencoes.PATCH("/:id/concluir", escrita, a.manutencaoHandler.Concluir)
		manutencoes.PATCH("/:id/cancelar", escrita, a.manutencaoHandler.Cancelar)
	}

	baixas := api.Group("/baixas")
	{
		baixas.GET("", a.baixaHandler.Pesquisar)
		baixas.GET("/:id", a.baixaHandler.BuscarPorID)
		baixas.POST("", escrita, a.baixaHandler.Registrar)
		baixas.PATCH("/:id/aprovar", admin, a.baixaHandler.Aprovar)
		baixas.PATCH("/:id/venda", escrita, a.baixaHandler.RegistrarVenda)
		baixas.PATCH("/:id/cancelar", admin, a.baixaHandler.Cancelar)
	}

	inventarios := api.Group("/inventarios")
	{
		inventarios.GET("", a.inventarioHandler.Pesquisar)
		inventarios.GET("/:id", a.inventarioHandler.BuscarPorID)
		inventarios.GET("/:id/bens", a.inventarioHandler.ListarBens)
		inventarios.POST("", escrita, a.inventarioHandler.Criar)
		inventarios.DELETE("/:id", escrita, a.inventarioHandler.Excluir)
		inventarios.PATCH("/:id/iniciar", escrita, a.inventarioHandler.Iniciar)
		inventarios.PATCH("/:id/encerrar-contagem", escrita, a.inventarioHandler.EncerrarContagem)
		inventarios.PATCH("/:id/concluir", escrita, a.inventarioHandler.Concluir)
		inventarios.PATCH("/:id/cancelar", escrita, a.inventarioHandler.Cancelar)
		inventarios.POST("/:id/bens", escrita, a.inventarioHandler.AdicionarBem)
		inventarios.DELETE("/:id/bens/:bemId", escrita, a.inventarioHandler.RemoverBem)
		inventarios.PATCH("/:id/bens/:bemId/verificacao", escrita, a.inventarioHandler.MarcarVerificado)
	}

	usuarios := api.Group("/usuarios")
	{
		usuarios.GET("", admin, a.usuarioHandler.Pesquisar)
		usuarios.GET("/:id", a.usuarioHandler.BuscarPorID)
		usuarios.GET("/:id/perfis", a.usuarioHandler.PerfisDoUsuario)
		usuarios.POST("", admin, a.usuarioHandler.Criar)
		usuarios.PUT("/:id", admin, a.usuarioHandler.Atualizar)
		usuarios.PATCH("/:id/senha", a.usuarioHandler.AlterarSenha)
		usuarios.PATCH("/:id/ativar", admin, a.usuarioHandler.Ativar)
		usuarios.PATCH("/:id/desativar", admin, a.usuarioHandler.Desativar)
		usuarios.PATCH("/:id/bloquear", admin, a.usuarioHandler.Bloquear)
		usuarios.PATCH("/:id/desbloquear", admin, a.usuarioHandler.Desbloquear)
		usuarios.POST("/:id/perfis/:perfilId", admin, a.usuarioHandler.VincularPerfil)
		usuarios.DELETE("/:id/perfis/:perfilId", admin, a.usuarioHandler.DesvincularPerfil)
	}

	perfis := api.Group("/perfis")
	{
		perfis.GET("", a.perfilHandler.Listar)
		perfis.GET("/:id", a.perfilHandler.BuscarPorID)
		perfis.POST("", admin, a.perfilHandler.Criar)
		perfis.PUT("/:id", admin, a.perfilHandler.Atualizar)
	}

	notificacoes := api.Group("/notificacoes")
	{
		notificacoes.GET("", a.notificacaoHandler.Pesquisar)
		notificacoes.GET("/nao-lidas/contagem", a.notificacaoHandler.ContarNaoLidas)
		notificacoes.GET("/:id", a.notificacaoHandler.BuscarPorID)
		notificacoes.POST("", admin, a.notificacaoHandler.Criar)
		notificacoes.PATCH("/lidas", a.notificacaoHandler.MarcarTodasLidas)
		notificacoes.PATCH("/:id/lida", a.notificacaoHandler.MarcarLida)
	}

	configuracoes := api.Group("/configuracoes")
	{
		configuracoes.GET("", a.configuracaoHandler.Listar)
		configuracoes.GET("/:chave", a.configuracaoHandler.BuscarPorChave)
		configuracoes.POST("", admin, a.configuracaoHandler.Criar)
		configuracoes.PUT("/:chave", admin, a.configuracaoHandler.Atualizar)
	}

	api.GET("/auditoria", admin, a.auditoriaHandler.Pesquisar)

	vocabularios := api.Group("/vocabularios")
	{
		vocabularios.GET("/status-bem", a.vocabularioHandler.StatusBem)
		vocabularios.GET("/estados-conservacao", a.vocabularioHandler.EstadosConservacao)
		vocabularios.GET("/tipos-movimentacao", a.vocabularioHandler.TiposMovimentacao)
		vocabularios.GET("/status-manutencao", a.vocabularioHandler.StatusManutencao)
		vocabularios.GET("/tipos-manutencao", a.vocabularioHandler.TiposManutencao)
		vocabularios.GET("/status-inventario", a.vocabularioHandler.StatusInventario)
	}
}

// Close libera os recursos da aplicação
func (a *App) Close() error {
	return a.DB.Close()
}
