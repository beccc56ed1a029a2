package main

import (
	"github.com/arnavshah/mentor-scheduler-api/pkg/auth"
	"github.com/arnavshah/mentor-scheduler-api/pkg/config"
	"github.com/arnavshah/mentor-scheduler-api/pkg/database"
	"github.com/arnavshah/mentor-scheduler-api/pkg/handlers"
	"github.com/arnavshah/mentor-scheduler-api/pkg/logger"
	"github.com/arnavshah/mentor-scheduler-api/pkg/metrics"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load .env if it exists
	config.LoadDotEnv()

	log := logger.New("server")
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logger.SetLevel(cfg.LogLevel)

	if cfg.GinMode == "" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(cfg.GinMode)
	}

	// the API still serves mentors and stored data without a seasons file
	shifts, err := config.LoadShiftConfig(cfg.SeasonsFile)
	if err != nil {
		log.Warn().Err(err).Str("file", cfg.SeasonsFile).Msg("no seasonal shift configuration, stored month generation disabled")
		shifts = nil
	}

	db, err := database.InitDB(cfg.DatabaseURL, cfg.DataPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	created, err := auth.EnsureAdminExists(db, cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		log.Error().Err(err).Msg("could not ensure admin user")
	} else if created {
		log.Info().Str("username", cfg.AdminUsername).Msg("created admin user")
	}

	h := handlers.NewHandler(db, cfg, shifts, metrics.New(), log)
	r := handlers.NewRouter(h)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("could not run server")
	}
}
