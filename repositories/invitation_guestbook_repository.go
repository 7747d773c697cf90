package repositories

import (
	"context"
	"errors"

	"chodae.link/configs/configslog"
	"chodae.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IInvitationGuestbookRepository ziyaretçi defteri kayıtları için arayüz.
type IInvitationGuestbookRepository interface {
	Create(ctx context.Context, entry *models.InvitationGuestbookEntry) error
	FindByInvitationID(ctx context.Context, invitationID string) ([]models.InvitationGuestbookEntry, error)
}

type InvitationGuestbookRepository struct {
	db *gorm.DB
}

func NewInvitationGuestbookRepositoryTx(tx *gorm.DB) IInvitationGuestbookRepository {
	return &InvitationGuestbookRepository{db: tx}
}

func (r *InvitationGuestbookRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

func (r *InvitationGuestbookRepository) Create(ctx context.Context, entry *models.InvitationGuestbookEntry) error {
	if entry == nil || entry.InvitationID == "" {
		return errors.New("guestbook entry must reference an invitation")
	}
	if err := r.getDB(ctx).Create(entry).Error; err != nil {
		configslog.Log.Error("InvitationGuestbookRepository.Create: DB error", zap.String("invitation_id", entry.InvitationID), zap.Error(err))
		return err
	}
	return nil
}

// FindByInvitationID mesajları en yeniden eskiye döner.
func (r *InvitationGuestbookRepository) FindByInvitationID(ctx context.Context, invitationID string) ([]models.InvitationGuestbookEntry, error) {
	entries := []models.InvitationGuestbookEntry{}
	err := r.getDB(ctx).
		Where("invitation_id = ?", invitationID).
		Order("created_at desc").Order("id desc").
		Find(&entries).Error
	if err != nil {
		configslog.Log.Error("InvitationGuestbookRepository.FindByInvitationID: DB error", zap.String("invitation_id", invitationID), zap.Error(err))
		return nil, err
	}
	return entries, nil
}

var _ IInvitationGuestbookRepository = (*InvitationGuestbookRepository)(nil)
