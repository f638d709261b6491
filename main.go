// @title Siigo Retiros API
// @version 1.0
// @description Backend for the employee exit survey platform: questionnaire delivery, response collection, WhatsApp invitations, statistics and exports.

// @contact.name Plataforma de Retiros
// @contact.email dtalero78@gmail.com

// @host localhost:8080
// @BasePath /
package main

import (
	"flag"
	"log"

	"github.com/dtalero78/siigo-retiros/internal/app"
	"github.com/dtalero78/siigo-retiros/internal/config"
	"github.com/dtalero78/siigo-retiros/pkg/configwatcher"
	"github.com/dtalero78/siigo-retiros/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migrations and exit")
	migrate := flag.Bool("migrate", false, "force database migrations on startup, even in release mode")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("Database migration finished, exiting")
		return
	}

	go configwatcher.WatchConfig("configs/config.yaml", func(updated *config.Config) {
		logger.Log.Info("Configuration reloaded")
	})

	application.Run()
}
