package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/laundry-marketplace/internal/config"
	"github.com/BruksfildServices01/laundry-marketplace/internal/models"
)

const sqlitePrefix = "sqlite://"

// NewDB connects to the configured database, retrying with exponential
// backoff until cfg.DBConnectRetry elapses, and migrates the schema.
func NewDB(ctx context.Context, cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	gdb, err := backoff.Retry(ctx,
		func() (*gorm.DB, error) {
			return Open(cfg.DBUrl)
		},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(cfg.DBConnectRetry),
		backoff.WithNotify(func(err error, next time.Duration) {
			log.Warn("database not ready, retrying",
				zap.Error(err),
				zap.Duration("next_attempt_in", next),
			)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := Migrate(gdb); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return gdb, nil
}

// Open accepts a postgres URL/DSN or sqlite://<path> for local runs.
func Open(url string) (*gorm.DB, error) {
	if path, ok := strings.CutPrefix(url, sqlitePrefix); ok {
		return OpenSQLite(path)
	}

	gdb, err := gorm.Open(postgres.Open(url), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	return gdb, nil
}

// OpenSQLite opens a file backed database. SQLite allows a single writer, so
// the pool is pinned to one connection and writers queue instead of failing
// with SQLITE_BUSY.
func OpenSQLite(path string) (*gorm.DB, error) {
	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return gdb, nil
}

func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Merchant{},
		&models.Service{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusHistory{},
		&models.ChatRoom{},
		&models.Message{},
		&models.AuditLog{},
	); err != nil {
		return err
	}

	// One merchant room per (user, merchant) and one support room per user.
	// Partial indexes are not expressible through struct tags on both
	// dialects, so they are created here.
	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_chat_rooms_user_merchant
		   ON chat_rooms (user_id, merchant_id) WHERE is_support = false`,
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_chat_rooms_support_user
		   ON chat_rooms (user_id) WHERE is_support = true`,
	}
	for _, stmt := range stmts {
		if err := gdb.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}

// IsUniqueViolation reports whether err comes from a unique constraint.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// IsNotFound reports whether err is gorm's record-not-found.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
