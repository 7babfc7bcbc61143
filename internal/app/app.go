package app

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"harvesttracker/internal/config"
	"harvesttracker/internal/handlers"
	"harvesttracker/internal/logger"
	"harvesttracker/internal/middleware"
	"harvesttracker/internal/routes"
	"harvesttracker/internal/services"
	"harvesttracker/internal/verify"

	_ "harvesttracker/docs"
)

func Run() {
	cfg := config.LoadConfig()

	zlog, err := logger.New(cfg.DevLog)
	if err != nil {
		log.Fatal("Failed to build logger: ", err)
	}
	defer zlog.Sync()

	// === Provider adapter ===
	verifyClient := verify.NewClient(
		cfg.Twilio.AccountSID,
		cfg.Twilio.AuthToken,
		cfg.Twilio.VerifySID,
		cfg.Twilio.DryRun,
		zlog,
	)
	if cfg.Twilio.AccountSID == "" {
		zlog.Warn("[app] no Twilio credentials configured, running the verify adapter in dry-run mode")
	}

	// === Services ===
	otpService := services.NewOTPService(verifyClient, zlog)

	// === Handlers ===
	otpHandler := handlers.NewOTPHandler(otpService)

	// === Gin ===
	router := gin.Default()
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.Server.CORSOrigin))

	routes.SetupRoutes(router, otpHandler)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	zlog.Infof("[app] gateway listening on %s (cors origin %s)", listenAddr, cfg.Server.CORSOrigin)
	if err := router.Run(listenAddr); err != nil {
		zlog.Fatalf("[app] server stopped: %v", err)
	}
}
