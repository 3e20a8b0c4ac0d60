package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jairomfjr/patrimonio-sub001/internal/app"
	"github.com/jairomfjr/patrimonio-sub001/pkg/config"
	"github.com/jairomfjr/patrimonio-sub001/pkg/logging"
	"github.com/jairomfjr/patrimonio-sub001/pkg/telemetry"
	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"
)

// setupServer monta o servidor HTTP ou HTTPS conforme a configuração
func setupServer(router *gin.Engine, cfg *config.Config, logger *zap.Logger) *http.Server {
	base := &http.Server{
		Addr:           fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:        router,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	if !cfg.Server.TLS {
		logger.Info("iniciando em modo HTTP", zap.Int("port", cfg.Server.Port))
		return base
	}

	tlsConfig := &tls.Config{
		MinVersion: tls.VersionTLS13,
	}

	if cfg.Server.CertFile != "" && cfg.Server.KeyFile != "" {
		logger.Info("usando certificados TLS fornecidos",
			zap.String("cert_file", cfg.Server.CertFile))
		base.Addr = ":443"
		base.TLSConfig = tlsConfig
		go startHTTPRedirector(logger)
		return base
	}

	// Sem certificados próprios, tentar Let's Encrypt
	dominios := cfg.Server.Domains
	if env := os.Getenv("SERVER_DOMAINS"); env != "" {
		dominios = strings.Split(env, ",")
	}

	validos := make([]string, 0, len(dominios))
	for _, d := range dominios {
		if d != "" && d != "localhost" && d != "127.0.0.1" {
			validos = append(validos, d)
		}
	}
	if len(validos) == 0 {
		logger.Warn("TLS habilitado sem domínio válido para Let's Encrypt, usando HTTP")
		return base
	}

	certManager := autocert.Manager{
		Prompt:     autocert.AcceptTOS,
		HostPolicy: autocert.HostWhitelist(validos...),
		Cache:      autocert.DirCache("./certs"),
		Email:      os.Getenv("LETSENCRYPT_EMAIL"),
	}
	tlsConfig.GetCertificate = certManager.GetCertificate

	base.Addr = ":443"
	base.TLSConfig = tlsConfig

	go func() {
		httpServer := &http.Server{
			Addr:    ":80",
			Handler: certManager.HTTPHandler(http.HandlerFunc(redirectHTTPS)),
		}
		logger.Info("iniciando servidor HTTP para desafios Let's Encrypt")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("erro no servidor HTTP de desafios", zap.Error(err))
		}
	}()

	logger.Info("servidor HTTPS com Let's Encrypt configurado", zap.Strings("domains", validos))
	return base
}

// startHTTPRedirector redireciona tráfego HTTP para HTTPS
func startHTTPRedirector(logger *zap.Logger) {
	httpServer := &http.Server{
		Addr:    ":80",
		Handler: http.HandlerFunc(redirectHTTPS),
	}
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("erro no redirecionador HTTP", zap.Error(err))
	}
}

func redirectHTTPS(w http.ResponseWriter, r *http.Request) {
	target := "https://" + r.Host + r.URL.Path
	if len(r.URL.RawQuery) > 0 {
		target += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, target, http.StatusMovedPermanently)
}

func main() {
	cfg, err := config.LoadConfig("./config")
	if err != nil {
		fmt.Printf("falha ao carregar configuração: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Printf("falha ao inicializar logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := context.Background()

	if cfg.Tracing.Enabled {
		tp, err := telemetry.NewTracerProvider(
			ctx,
			cfg.Tracing.ServiceName,
			cfg.Tracing.Endpoint,
			cfg.Tracing.SamplingRatio,
			logger,
		)
		if err != nil {
			logger.Error("falha ao inicializar tracer", zap.Error(err))
		} else {
			logger.Info("tracer inicializado", zap.String("endpoint", cfg.Tracing.Endpoint))
			defer tp.Shutdown(context.Background())
		}
	}

	application, err := app.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("falha ao inicializar aplicação", zap.Error(err))
	}
	defer application.Close()

	if cfg.Logging.Production {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	application.RegisterRoutes(router)

	server := setupServer(router, cfg, logger)

	go func() {
		var err error
		if server.TLSConfig != nil {
			logger.Info("iniciando servidor HTTPS", zap.String("addr", server.Addr))
			err = server.ListenAndServeTLS(cfg.Server.CertFile, cfg.Server.KeyFile)
		} else {
			logger.Info("iniciando servidor HTTP", zap.String("addr", server.Addr))
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal("erro ao iniciar servidor", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("encerrando servidor")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("erro ao encerrar servidor", zap.Error(err))
	}

	logger.Info("servidor encerrado")
}
