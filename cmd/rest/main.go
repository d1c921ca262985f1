package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"workforce-bot-api/internal/bootstrap"
	"workforce-bot-api/internal/config"
	"workforce-bot-api/internal/server"
	"workforce-bot-api/internal/tracer"
	"workforce-bot-api/pkg/database"

	"gorm.io/gorm"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// 2. Initialize Tracer
	shutdownTracer := tracer.InitTracer(cfg)
	defer shutdownTracer(context.Background())

	// 3. Initialize Database. The API still starts without one.
	var gormDB *gorm.DB
	if cfg.IsDatabaseConfigured() {
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection, database.PoolConfig{
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		})
		if err != nil {
			log.Printf("[WARN] Unable to open database, continuing without it: %v", err)
		} else if err := pingAtStartup(db, cfg.Database.QueryTimeout); err != nil {
			log.Printf("[WARN] Database unreachable at startup, continuing without it: %v", err)
			_ = database.Close(db)
		} else {
			gormDB = db
			defer database.Close(gormDB)
		}
	} else {
		log.Println("[WARN] No database configured (DB_CONNECTION_STRING or PG* variables)")
	}

	// 4. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(gormDB, cfg)
	if err != nil {
		log.Fatalf("Failed to bootstrap: %v", err)
	}
	defer container.Close()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 6. Run Server
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Printf("Server stopped: %v", err)
		}
	case <-ctx.Done():
		log.Println("Shutting down...")
		if err := srv.Shutdown(cfg.App.ShutdownTimeout); err != nil {
			log.Printf("Graceful shutdown failed: %v", err)
		}
	}
}

func pingAtStartup(db *gorm.DB, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return database.Ping(ctx, db)
}
