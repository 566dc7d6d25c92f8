package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"icecream/internal/adapters/out/postgres/orderrepo"
)

// ConnectionSettings holds the pieces of a PostgreSQL DSN.
type ConnectionSettings struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN renders the settings in key=value form. An empty dbName connects to the
// server's default database.
func (s ConnectionSettings) DSN(dbName string) string {
	dsn := fmt.Sprintf("host=%v port=%v user=%v password=%v sslmode=%v",
		s.Host, s.Port, s.User, s.Password, s.SSLMode)
	if dbName != "" {
		dsn += " dbname=" + dbName
	}
	return dsn
}

// Open connects with GORM and routes its log output (slow queries and errors) to logger.
func Open(dsn string, logger logrus.FieldLogger) (*gorm.DB, error) {
	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(logger, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	return db, nil
}

// EnsureDatabase creates settings.DBName if the server does not have it yet.
func EnsureDatabase(ctx context.Context, settings ConnectionSettings, logger logrus.FieldLogger) error {
	if settings.DBName == "" {
		return errors.New("database name is empty")
	}

	admin, err := Open(settings.DSN("postgres"), logger)
	if err != nil {
		return err
	}
	defer closeDB(admin, logger)

	var exists bool
	if err = admin.WithContext(ctx).
		Raw("SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = ?)", settings.DBName).
		Scan(&exists).Error; err != nil {
		return fmt.Errorf("check database %q: %w", settings.DBName, err)
	}
	if exists {
		return nil
	}

	if err = admin.WithContext(ctx).Exec("CREATE DATABASE " + pq.QuoteIdentifier(settings.DBName)).Error; err != nil {
		return fmt.Errorf("create database %q: %w", settings.DBName, err)
	}
	logger.WithField("database", settings.DBName).Info("database created")
	return nil
}

// Migrate brings the order tables up to date.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
}

func closeDB(db *gorm.DB, logger logrus.FieldLogger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err = sqlDB.Close(); err != nil {
		logger.WithError(err).Warn("failed to close admin connection")
	}
}
