package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	httpapi "library-backend/internal/api/http"
	"library-backend/internal/config"
	"library-backend/internal/logger"
	"library-backend/internal/repository/postgres"
	"library-backend/internal/security"
	"library-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Library Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email)
	fineSvc := service.NewFineService(
		store.FineRepository,
		store.FineTypeRepository,
		store.UserRepository,
		emailSvc,
		cfg.Fines.LateFineType,
	)
	loanSvc := service.NewLoanService(
		store.LoanRepository,
		store.CopyRepository,
		store.FineRepository,
		fineSvc,
	)
	fineTypeSvc := service.NewFineTypeService(store.FineTypeRepository)
	bookSvc := service.NewBookService(
		store.BookRepository,
		store.CopyRepository,
		store.AuthorRepository,
		store.CategoryRepository,
		store.PublisherRepository,
		store.ShelfRepository,
	)
	locationSvc := service.NewLocationService(store.RoomRepository, store.ShelfRepository)
	userSvc := service.NewUserService(store.UserRepository)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager, cfg.JWT.RefreshTokenExpiry)
	dashboardSvc := service.NewDashboardService(store.BookRepository, store.UserRepository, store.LoanRepository)

	// Set up HTTP server
	router := httpapi.NewRouter(httpapi.Services{
		Auth:      authSvc,
		Users:     userSvc,
		Loans:     loanSvc,
		Fines:     fineSvc,
		FineTypes: fineTypeSvc,
		Books:     bookSvc,
		Locations: locationSvc,
		Dashboard: dashboardSvc,
	}, tokenManager)

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("Failed to serve HTTP", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
