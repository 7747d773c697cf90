package repositories

import (
	"context"
	"errors"

	"chodae.link/configs/configslog"
	"chodae.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IInvitationRSVPRepository katılım yanıtları için arayüz. Kayıtlar yalnızca eklenir.
type IInvitationRSVPRepository interface {
	Create(ctx context.Context, rsvp *models.InvitationRSVP) error
	FindByInvitationID(ctx context.Context, invitationID string) ([]models.InvitationRSVP, error)
	Summary(ctx context.Context, invitationID string) (models.RSVPSummary, error)
}

// InvitationRSVPRepository IInvitationRSVPRepository arayüzünü uygular.
type InvitationRSVPRepository struct {
	db *gorm.DB
}

func NewInvitationRSVPRepositoryTx(tx *gorm.DB) IInvitationRSVPRepository {
	return &InvitationRSVPRepository{db: tx}
}

func (r *InvitationRSVPRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

func (r *InvitationRSVPRepository) Create(ctx context.Context, rsvp *models.InvitationRSVP) error {
	if rsvp == nil || rsvp.InvitationID == "" {
		return errors.New("rsvp must reference an invitation")
	}
	if err := r.getDB(ctx).Create(rsvp).Error; err != nil {
		configslog.Log.Error("InvitationRSVPRepository.Create: DB error", zap.String("invitation_id", rsvp.InvitationID), zap.Error(err))
		return err
	}
	return nil
}

// FindByInvitationID yanıtları en yeniden eskiye döner.
func (r *InvitationRSVPRepository) FindByInvitationID(ctx context.Context, invitationID string) ([]models.InvitationRSVP, error) {
	rsvps := []models.InvitationRSVP{}
	err := r.getDB(ctx).
		Where("invitation_id = ?", invitationID).
		Order("created_at desc").Order("id desc").
		Find(&rsvps).Error
	if err != nil {
		configslog.Log.Error("InvitationRSVPRepository.FindByInvitationID: DB error", zap.String("invitation_id", invitationID), zap.Error(err))
		return nil, err
	}
	return rsvps, nil
}

// Summary tek sorguda özet hesaplar: katılanlar için guest_count toplanır, katılmayanlar sayılır.
func (r *InvitationRSVPRepository) Summary(ctx context.Context, invitationID string) (models.RSVPSummary, error) {
	var summary models.RSVPSummary
	err := r.getDB(ctx).Model(&models.InvitationRSVP{}).
		Select(`count(*) AS total_responses,
			coalesce(sum(case when attending then guest_count else 0 end), 0) AS attending_count,
			coalesce(sum(case when attending then 0 else 1 end), 0) AS decline_count`).
		Where("invitation_id = ?", invitationID).
		Scan(&summary).Error
	if err != nil {
		configslog.Log.Error("InvitationRSVPRepository.Summary: DB error", zap.String("invitation_id", invitationID), zap.Error(err))
		return models.RSVPSummary{}, err
	}
	return summary, nil
}

var _ IInvitationRSVPRepository = (*InvitationRSVPRepository)(nil)
