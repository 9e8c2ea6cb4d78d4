package database

import (
	"embed"
	"fmt"

	"api/internal/models"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrations embed.FS

// InitDB opens the shared connection pool, applies pending migrations and
// verifies connectivity. Any failure here is fatal: the process cannot
// serve without its store.
func InitDB(config models.DatabaseConfiguration) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s options='-c statement_timeout=%d'",
		config.Host,
		config.Port,
		config.User,
		config.Password,
		config.Name,
		config.SSLMode,
		config.StatementTimeoutMS,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		zap.L().Fatal("Failed to connect to database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		zap.L().Fatal("Failed to access underlying connection pool", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(config.MaxIdleConns)

	if err = sqlDB.Ping(); err != nil {
		zap.L().Fatal("Database is unreachable", zap.Error(err))
	}

	goose.SetBaseFS(migrations)
	if err = goose.SetDialect("postgres"); err != nil {
		zap.L().Fatal("Failed to set migration dialect", zap.Error(err))
	}
	if err = goose.Up(sqlDB, "migrations"); err != nil {
		zap.L().Fatal("Failed to apply migrations", zap.Error(err))
	}

	zap.L().Info("Database initialized",
		zap.String("host", config.Host),
		zap.String("database", config.Name))

	return db
}

// Close tears down the shared pool at shutdown.
func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		zap.L().Error("Failed to access connection pool on shutdown", zap.Error(err))
		return
	}
	if err = sqlDB.Close(); err != nil {
		zap.L().Error("Failed to close connection pool", zap.Error(err))
	}
}
