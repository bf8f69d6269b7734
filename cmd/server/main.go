package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ledgerly/ledgerly-backend/internal/api"
	"github.com/ledgerly/ledgerly-backend/internal/backup"
	"github.com/ledgerly/ledgerly-backend/internal/config"
	"github.com/ledgerly/ledgerly-backend/internal/database"
	"github.com/ledgerly/ledgerly-backend/internal/repository"
	"github.com/ledgerly/ledgerly-backend/internal/secrets"
	"github.com/ledgerly/ledgerly-backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Apply schema migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Credential encryption (pass-through when no key is configured)
	encryptor, err := secrets.New(cfg.Secrets.Key)
	if err != nil {
		log.Fatalf("Failed to initialize credential encryption: %v", err)
	}
	if !encryptor.Enabled() {
		log.Println("LEDGERLY_SECRET_KEY not set; credentials are stored unencrypted")
	}

	// Create repositories
	accountRepo := repository.NewAccountRepository(db)
	transactionRepo := repository.NewTransactionRepository()
	summaryRepo := repository.NewSummaryRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	accountService := service.NewAccountService(accountRepo, encryptor)
	lifecycleService := service.NewLifecycleService(db, accountRepo, transactionRepo)
	summaryService := service.NewSummaryService(summaryRepo)

	// Create router
	router := api.NewRouter(systemService, accountService, lifecycleService, summaryService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Scheduled backups
	backupScheduler := backup.NewScheduler(db, cfg.Backup.Dir, cfg.Backup.Schedule)
	if err := backupScheduler.Start(); err != nil {
		log.Fatalf("Failed to start backup scheduler: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		// Wait for interrupt signal for graceful shutdown
		<-ctx.Done()

		log.Println("Shutting down server...")
		backupScheduler.Stop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	log.Println("Server exited")
}
