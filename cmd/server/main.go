package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/startuphub-br/startuphub-api/internal/app"
	"github.com/startuphub-br/startuphub-api/pkg/config"
	"github.com/startuphub-br/startuphub-api/pkg/logging"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("erro ao carregar configuração: %v", err)
	}

	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("erro ao inicializar logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("falha ao inicializar aplicação", zap.Error(err))
	}
	defer application.Close() //nolint:errcheck

	if os.Getenv("ENV") != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	application.RegisterRoutes(router)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("servidor iniciado",
			zap.String("addr", server.Addr),
			zap.Bool("tls", cfg.Server.TLS))

		var err error
		if cfg.Server.TLS {
			err = server.ListenAndServeTLS(cfg.Server.CertFile, cfg.Server.KeyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("falha no servidor HTTP", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("sinal de encerramento recebido, finalizando")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("erro ao encerrar servidor", zap.Error(err))
	}

	logger.Info("servidor encerrado")
}
