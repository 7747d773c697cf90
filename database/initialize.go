package database

import (
	"errors"
	"fmt"

	"chodae.link/configs/configslog"
	"chodae.link/database/migrations"
	"chodae.link/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize migrasyonları ve seeder'ları tek bir işlem içinde çalıştırır.
// Herhangi bir adım başarısız olursa işlem geri alınır.
func Initialize(db *gorm.DB, migrate bool, seed bool) (err error) {
	if !migrate && !seed {
		configslog.SLog.Info("Migrate veya seed bayrağı belirtilmedi, işlem yapılmayacak.")
		return nil
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Error("Veritabanı transaction başlatılamadı", zap.Error(tx.Error))
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Error("Veritabanı başlatma işlemi başarısız oldu (panic)", zap.Any("panic_info", r))
			err = fmt.Errorf("database initialize panic: %v", r)
			return
		}
		if err != nil {
			configslog.SLog.Warn("Başlatma sırasında hata oluştuğu için işlem geri alınıyor.", zap.Error(err))
			if rbErr := tx.Rollback().Error; rbErr != nil && !errors.Is(rbErr, gorm.ErrInvalidTransaction) {
				configslog.Log.Error("Rollback sırasında ek hata oluştu", zap.Error(rbErr))
			}
		}
	}()

	configslog.SLog.Info("Veritabanı başlatma işlemi başlıyor...")

	if migrate {
		if err = RunMigrationsInOrder(tx); err != nil {
			return err
		}
	} else {
		configslog.SLog.Info("Migrate bayrağı belirtilmedi, migrasyon adımı atlanıyor.")
	}

	if seed {
		if err = CheckAndRunSeeders(tx); err != nil {
			return err
		}
	} else {
		configslog.SLog.Info("Seed bayrağı belirtilmedi, seeder adımı atlanıyor.")
	}

	if err = tx.Commit().Error; err != nil {
		configslog.Log.Error("Commit başarısız oldu", zap.Error(err))
		return err
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başarıyla tamamlandı")
	return nil
}

// RunMigrationsInOrder tabloları sırayla oluşturur/günceller.
func RunMigrationsInOrder(db *gorm.DB) error {
	steps := []struct {
		name string
		run  func(*gorm.DB) error
	}{
		{"Invitation", migrations.MigrateInvitationsTable},
		{"Invitation RSVP", migrations.MigrateRSVPTable},
		{"Invitation Guestbook", migrations.MigrateGuestbookTable},
	}

	configslog.SLog.Info("Migrasyonlar sırayla çalıştırılıyor...")
	for _, step := range steps {
		configslog.SLog.Infof(" -> %s migrasyonları çalıştırılıyor...", step.name)
		if err := step.run(db); err != nil {
			configslog.Log.Error("Migrasyon başarısız oldu", zap.String("step", step.name), zap.Error(err))
			return err
		}
	}
	configslog.SLog.Info("Tüm migrasyonlar başarıyla çalıştırıldı.")
	return nil
}

func CheckAndRunSeeders(db *gorm.DB) error {
	configslog.SLog.Info(" -> Örnek davetiye seeder çalıştırılıyor...")
	if err := seeders.SeedDemoInvitation(db); err != nil {
		configslog.Log.Error("Örnek davetiye seed edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Tüm seeder'lar başarıyla kontrol edildi/çalıştırıldı.")
	return nil
}
