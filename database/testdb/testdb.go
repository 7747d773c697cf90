// Package testdb testler için migrasyonları uygulanmış, test başına izole
// bellek içi SQLite veritabanı açar.
package testdb

import (
	"net/url"
	"testing"
	"time"

	"chodae.link/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open t.Name() ile adlandırılmış paylaşımlı bellek veritabanı açar ve test bitince kapatır.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := "file:" + url.PathEscape(t.Name()) + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sqlite handle: %v", err)
	}
	// Bellek veritabanı son bağlantı kapanınca silinir; tek bağlantı yeterli.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Initialize(db, true, false); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// OpenSeeded Open ile aynıdır, ek olarak örnek verileri yükler.
func OpenSeeded(t testing.TB) *gorm.DB {
	t.Helper()
	db := Open(t)
	if err := database.CheckAndRunSeeders(db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}
