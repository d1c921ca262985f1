package main

import (
	"log"

	"workforce-bot-api/internal/config"
	"workforce-bot-api/internal/model"
	"workforce-bot-api/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	if !cfg.IsDatabaseConfigured() {
		log.Fatal("Error: DB_CONNECTION_STRING (or PGHOST/PGUSER/PGPASSWORD/PGDATABASE) is not set")
	}

	// 2. Connect to Database
	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, database.PoolConfig{MaxOpenConns: 1, MaxIdleConns: 1})
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}
	defer database.Close(db)

	log.Println("Step 1: Running AutoMigrate...")

	models := []interface{}{
		&model.Contractor{},
		&model.WorkSession{},
		&model.Job{},
		&model.ConversationMessage{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 3. Post-Migration: indexes AutoMigrate cannot express
	log.Println("Step 2: Creating indexes...")

	postMigrationSQL := []string{
		`CREATE INDEX IF NOT EXISTS idx_conversation_history_recent ON conversation_history (telegram_id, created_at DESC, id DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_contractor_applications_lookup ON contractor_applications (telegram_id, status, id);`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("Success: Database migration completed.")
}
