// @title College Portal API
// @version 1.0
// @description Backend for the college portal: branch rosters, internal assessment marks, marksheets and notes.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"college_portal_backend/internal/app"
	"college_portal_backend/internal/config"
	"college_portal_backend/pkg/configwatcher"
	"college_portal_backend/pkg/logger"
	"flag"
	"log"

	"go.uber.org/zap"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migrations and exit")
	migrate := flag.Bool("migrate", false, "force migrations on startup even in release mode")
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
		log.Println("Migrations complete, exiting")
		return
	}

	// The eligibility threshold and marksheet branding can be tuned without
	// a restart; everything else still needs one.
	application.RegisterConfigCallback(func(newCfg *config.Config) {
		cfg.Marks = newCfg.Marks
		cfg.Branding = newCfg.Branding
		logger.Log.Info("Reloaded marks and branding configuration",
			zap.Float64("eligibility_threshold", newCfg.Marks.EligibilityThreshold))
	})
	go configwatcher.WatchConfig("configs/config.yaml", application.ApplyConfig)

	application.Run()
}
