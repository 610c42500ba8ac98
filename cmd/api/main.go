package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hugohenrick/gestor-pme/internal/config"
	"github.com/hugohenrick/gestor-pme/pkg/logger"
)

func main() {
	cfg, envLoaded, err := config.Load()
	if err != nil {
		logger.NewLogger(logger.Options{}).Error("falha ao carregar configuração", "error", err)
		os.Exit(1)
	}

	log := logger.NewLogger(logger.Options{Level: cfg.LogLevel, Production: cfg.IsProduction()})
	if !envLoaded {
		log.Warn("arquivo .env não encontrado, usando apenas variáveis de ambiente")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := NewApp(ctx, cfg, log)
	if err != nil {
		log.Error("falha ao iniciar aplicação", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      app.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("servidor iniciado", "addr", cfg.Address(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("erro no servidor", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("encerrando servidor")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("encerramento forçado", "error", err)
		return
	}
	log.Info("servidor encerrado")
}
