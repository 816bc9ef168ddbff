package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/api"
	appcache "github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/app/cache"
	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/app/service"
	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/common/security"
	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/domain/repository"
	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/platform/cache"
	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/platform/config"
	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/platform/database"
	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/platform/eventlog"
)

func main() {
	// 1. Load Configuration
	config.Load()
	log.Println("Configuration loaded.")

	// 2. Initialize JWT
	security.InitJWT()
	log.Println("JWT initialized.")

	// 3. Open Database
	db, err := database.Open(config.AppConfig)
	if err != nil {
		log.Fatalf("Database: %v", err)
	}
	defer db.Close()
	log.Println("Database connected.")

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migrations: %v", err)
	}
	log.Println("Migrations applied.")

	// 4. Open Redis
	rdb, err := cache.Open(config.AppConfig)
	if err != nil {
		log.Fatalf("Redis: %v", err)
	}
	defer rdb.Close()
	log.Println("Redis connected.")

	// 5. Initialize Repositories
	userRepo := repository.NewPgUserRepository(db)
	noteRepo := repository.NewPgNoteRepository(db)

	// 6. Initialize Services
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo, noteRepo, db)
	noteCache := appcache.NewNoteCache(rdb, config.AppConfig.NoteCacheTTL)
	noteService := service.NewNoteService(noteRepo, userRepo, noteCache)

	// 7. Initialize Event Log Writer (as a goroutine)
	events := eventlog.New(config.AppConfig.LogDir)
	writerCtx, writerCancel := context.WithCancel(context.Background())
	defer writerCancel()
	go events.Start(writerCtx)
	log.Println("Event log writer started.")

	// 8. Initialize Router & HTTP Server
	router := api.NewRouter(authService, userService, noteService, events, config.AppConfig.AllowedOrigins, "web")

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 9. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.APIPort, err)
		}
	}()
	log.Println("Server started successfully.")

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	writerCancel() // Signal event log writer to drain
	events.Stop()

	log.Println("Server stopped gracefully.")
}
