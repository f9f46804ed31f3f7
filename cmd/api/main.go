package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/personnalite/estoque-api/internal/application/service"
	"github.com/personnalite/estoque-api/internal/config"
	"github.com/personnalite/estoque-api/internal/infrastructure/database"
	"github.com/personnalite/estoque-api/internal/infrastructure/repository"
	"github.com/personnalite/estoque-api/internal/presentation/http/handler"
	"github.com/personnalite/estoque-api/internal/presentation/http/routes"
	"github.com/personnalite/estoque-api/pkg/email"
	"github.com/personnalite/estoque-api/pkg/report"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.App.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		logrus.Warnf("Failed to seed default data: %v", err)
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(db)

	// Initialize services
	productService := service.NewProductService(productRepo)
	sessionStore := service.NewSessionStore(cfg.Session.TTL, cfg.Session.CleanupInterval)
	mailer := email.NewService(email.Config{
		SMTPHost:     cfg.SMTP.Host,
		SMTPPort:     cfg.SMTP.Port,
		SMTPUsername: cfg.SMTP.Username,
		SMTPPassword: cfg.SMTP.Password,
		FromName:     cfg.SMTP.FromName,
		FromEmail:    cfg.SMTP.FromEmail,
	})
	reportService := service.NewReportService(report.NewRenderer(), mailer)

	// Initialize handlers
	handlers := &routes.Handlers{
		Product: handler.NewProductHandler(productService),
		Report:  handler.NewReportHandler(reportService),
		Sales:   handler.NewSalesHandler(sessionStore, reportService),
	}

	// Setup routes and start the server
	router := routes.Setup(handlers, cfg)

	logrus.Infof("%s listening on port %s", cfg.App.Name, cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}
