package migrations

import (
	"chodae.link/configs/configslog"
	"chodae.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateRSVPTable invitation_rsvps tablosunu oluşturur/günceller.
// invitation_id üzerinde FK yoktur; davetiye soft delete edildiğinde yanıtlar kalır.
func MigrateRSVPTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating invitation_rsvps table...")
	if err := db.AutoMigrate(&models.InvitationRSVP{}); err != nil {
		configslog.Log.Error("Failed to migrate invitation_rsvps table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Invitation_rsvps table migrated successfully")
	return nil
}
