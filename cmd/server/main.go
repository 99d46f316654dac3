package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ammica/fuel-backend/docs"
	"github.com/ammica/fuel-backend/internal/audit"
	"github.com/ammica/fuel-backend/internal/config"
	"github.com/ammica/fuel-backend/internal/database"
	"github.com/ammica/fuel-backend/internal/handlers"
	"github.com/ammica/fuel-backend/internal/logging"
	"github.com/ammica/fuel-backend/internal/services"
)

// @title Fuel Management API
// @version 1.0
// @description Fuel sales ledger, loyalty points and sales reports
// @host localhost:5000
// @BasePath /api
// @schemes http https

func main() {
	// Initialize config
	config.Init()
	logger := logging.Setup(config.LoadLogConfig(), os.Stdout)
	serverConfig := config.LoadServerConfig()

	docs.SwaggerInfo.Host = "localhost:" + serverConfig.Port

	// Initialize services
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := database.InitDatabase(ctx)
	defer db.Close()

	ledgerService := services.NewLedgerService(db, audit.NewLogger(logger))
	reportService := services.NewReportService(db)

	// Setup router
	r := handlers.NewRouter(handlers.Dependencies{
		DB:             db,
		Ledger:         ledgerService,
		Reports:        reportService,
		AllowedOrigins: serverConfig.AllowedOrigins,
		RequestTimeout: serverConfig.RequestTimeout,
	})

	// Start server
	server := &http.Server{
		Addr:         ":" + serverConfig.Port,
		Handler:      r,
		ReadTimeout:  serverConfig.ReadTimeout,
		WriteTimeout: serverConfig.WriteTimeout,
		IdleTimeout:  serverConfig.IdleTimeout,
	}

	// Graceful shutdown
	go func() {
		logger.Infof("Server starting on :%s", serverConfig.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	<-ctx.Done()

	logger.Info("Server shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverConfig.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown: ", err)
	}

	logger.Info("Server stopped")
}
