package handler

import (
	"net/http"

	"github.com/arnavshah/mentor-scheduler-api/pkg/auth"
	"github.com/arnavshah/mentor-scheduler-api/pkg/config"
	"github.com/arnavshah/mentor-scheduler-api/pkg/database"
	"github.com/arnavshah/mentor-scheduler-api/pkg/handlers"
	"github.com/arnavshah/mentor-scheduler-api/pkg/logger"
	"github.com/arnavshah/mentor-scheduler-api/pkg/metrics"
	"github.com/gin-gonic/gin"
)

var r *gin.Engine

func init() {
	// Load .env if it exists (for local testing with vercel dev)
	config.LoadDotEnv()

	log := logger.New("vercel")
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logger.SetLevel(cfg.LogLevel)

	shifts, err := config.LoadShiftConfig(cfg.SeasonsFile)
	if err != nil {
		log.Warn().Err(err).Msg("no seasonal shift configuration")
		shifts = nil
	}

	db, err := database.InitDB(cfg.DatabaseURL, cfg.DataPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if _, err := auth.EnsureAdminExists(db, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Error().Err(err).Msg("could not ensure admin user")
	}

	gin.SetMode(gin.ReleaseMode)
	r = handlers.NewRouter(handlers.NewHandler(db, cfg, shifts, metrics.New(), log))
}

// Handler is the entry point for Vercel Go Runtime
func Handler(w http.ResponseWriter, req *http.Request) {
	r.ServeHTTP(w, req)
}
