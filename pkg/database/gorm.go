package database

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotConfigured = errors.New("database connection not configured")

type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func getLogger() logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  false,
		},
	)
}

func configureConnectionPool(db *gorm.DB, pool PoolConfig) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)

	return nil
}

// NewGormDBFromDSN opens a lazily connected pool. Connection failures surface
// on first use, so an unreachable database does not stop the process.
func NewGormDBFromDSN(dsn string, pool PoolConfig) (*gorm.DB, error) {
	if dsn == "" {
		return nil, ErrNotConfigured
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:                 getLogger(),
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, err
	}

	if err := configureConnectionPool(db, pool); err != nil {
		return nil, err
	}

	return db, nil
}

// Ping runs SELECT 1 through the pool.
func Ping(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return ErrNotConfigured
	}
	var one int
	return db.WithContext(ctx).Raw("SELECT 1").Scan(&one).Error
}

func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
