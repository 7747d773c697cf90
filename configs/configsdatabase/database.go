package configsdatabase

import (
	"errors"
	"fmt"
	"time"

	"chodae.link/configs/configsenv"
	"chodae.link/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDB PostgreSQL bağlantısını açar ve global DB örneğini ayarlar.
func InitDB(cfg configsenv.DatabaseConfig) error {
	gormLogger := logger.Default.LogMode(logger.Warn)

	conn, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		configslog.Log.Error("Failed to connect to database", zap.String("host", cfg.Host), zap.String("db", cfg.Name), zap.Error(err))
		return fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return fmt.Errorf("database handle: %w", err)
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	db = conn
	configslog.SLog.Infof("Database connection established (%s:%d/%s)", cfg.Host, cfg.Port, cfg.Name)
	return nil
}

// SetDB global DB örneğini değiştirir (testler ve araçlar için).
func SetDB(conn *gorm.DB) {
	db = conn
}

// GetDB global DB örneğini döndürür. InitDB çağrılmadıysa nil döner.
func GetDB() *gorm.DB {
	return db
}

// CloseDB bağlantı havuzunu kapatır.
func CloseDB() error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.Close(); err != nil && !errors.Is(err, gorm.ErrInvalidDB) {
		configslog.Log.Error("Failed to close database connection", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Database connection closed")
	db = nil
	return nil
}
