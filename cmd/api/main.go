package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/comitanigiacomo/progress-tracker/internal/config"
	"github.com/comitanigiacomo/progress-tracker/internal/logging"
)

// @title Progress Tracker API
// @version 1.0
// @description Workout session log and training analytics.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Critical: invalid configuration: %v", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.LogFile,
		LogToStdout:   true,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: cfg.LogFormatJSON,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	app, err := newApplication(ctx, cfg, startTime)
	if err != nil {
		logrus.Fatalf("Critical: failed to start: %v", err)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      app.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logrus.Infof("Progress Tracker running on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Stop signal received. Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Forced shutdown error: %v", err)
	}

	stopWorkers()
	select {
	case <-app.worker.Done():
	case <-shutdownCtx.Done():
		logrus.Warn("[WORKER] catalog worker did not stop in time")
	}

	if err := app.close(shutdownCtx); err != nil {
		logrus.Errorf("failed to release resources: %v", err)
	}

	logrus.Info("Server stopped gracefully.")
}
