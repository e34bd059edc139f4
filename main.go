package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hqd-api/catalog"
	"hqd-api/config"
	"hqd-api/handlers"
	"hqd-api/leads"
	"hqd-api/logging"
	"hqd-api/middleware"
	"hqd-api/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Set Gin mode
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	log, err := logging.New(cfg.LogLevel, gin.Mode() == gin.ReleaseMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync() //nolint:errcheck

	// Initialize database
	db, err := config.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatal("database", zap.Error(err))
	}
	if err := config.SeedAdmin(db, cfg.AdminEmail, cfg.AdminPasswordHash); err != nil {
		log.Fatal("seed admin", zap.Error(err))
	}

	auth := middleware.NewAuth(cfg.JWTSecret)
	var notifier leads.Notifier = &leads.LogNotifier{Log: log.Named("notify")}
	if cfg.EmailEnabled {
		notifier = &leads.SMTPNotifier{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.EmailFrom,
			To:       cfg.EmailTo,
			Log:      log.Named("notify"),
		}
	}
	h := handlers.New(handlers.Deps{
		Catalog:        catalog.Default(),
		DB:             db,
		Auth:           auth,
		Notifier:       notifier,
		Log:            log,
		EmailEnabled:   cfg.EmailEnabled,
		WhatsAppNumber: cfg.WhatsAppNumber,
		ContactEmail:   cfg.EmailTo,
	})

	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery(), routes.CORS(cfg.CORSOrigins))

	// Register all routes
	routes.SetupRoutes(r, h, auth, middleware.NewRateLimiter(cfg.LeadRatePerMinute, cfg.LeadRatePerMinute))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	// wait for interrupt or SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	// let in-flight lead notifications finish
	h.Wait()
	log.Info("server stopped")
}
