package migrations

import (
	"chodae.link/configs/configslog"
	"chodae.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateGuestbookTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating invitation_guestbook_entries table...")
	if err := db.AutoMigrate(&models.InvitationGuestbookEntry{}); err != nil {
		configslog.Log.Error("Failed to migrate invitation_guestbook_entries table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Invitation_guestbook_entries table migrated successfully")
	return nil
}
