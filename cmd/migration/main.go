package main

import (
	"flag"
	"os"

	"github.com/hugohenrick/gestor-pme/internal/config"
	"github.com/hugohenrick/gestor-pme/internal/infrastructure/database"
	"github.com/hugohenrick/gestor-pme/pkg/logger"
)

func main() {
	down := flag.Bool("down", false, "desfaz a última migração aplicada")
	flag.Parse()

	log := logger.NewLogger(logger.Options{Level: os.Getenv("LOG_LEVEL")})

	cfg, envLoaded, err := config.LoadDatabase()
	if err != nil {
		log.Error("falha ao carregar configuração", "error", err)
		os.Exit(1)
	}
	if !envLoaded {
		log.Warn("arquivo .env não encontrado, usando apenas variáveis de ambiente")
	}

	if *down {
		v, err := database.RollbackMigration(cfg.PostgresURL())
		if err != nil {
			log.Error("erro ao desfazer migração", "error", err)
			os.Exit(1)
		}
		log.Info("migração desfeita", "version", v)
		return
	}

	v, err := database.RunMigrations(cfg.PostgresURL())
	if err != nil {
		log.Error("erro ao executar migrações", "error", err)
		os.Exit(1)
	}
	log.Info("migrações executadas com sucesso", "version", v)
}
