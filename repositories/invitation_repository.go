package repositories

import (
	"context"
	"errors"

	"chodae.link/configs/configslog"
	"chodae.link/models"
	"chodae.link/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Kullanıcıdan gelen sıralama alanı -> sütun.
var invitationSortColumns = map[string]string{
	"created_at": "invitations.created_at",
	"updated_at": "invitations.updated_at",
	"event_date": "invitations.event_date",
	"title":      "invitations.title",
}

// İçerik güncellemesinde yazılan sütunlar; sahiplik, ödeme ve durum ayrı metodlarla değişir.
var invitationContentColumns = []string{
	"template_id", "type", "title", "greeting", "event_date", "event_time",
	"venue_name", "venue_address", "host_name", "extra_data", "is_premium",
}

// IInvitationRepository davetiye veritabanı işlemleri için arayüz.
type IInvitationRepository interface {
	Create(ctx context.Context, invitation *models.Invitation) error
	FindByID(ctx context.Context, id string) (*models.Invitation, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID string) (*models.Invitation, error)
	LockByIDAndOwner(ctx context.Context, id, ownerID string) (*models.Invitation, error)
	FindPublishedByID(ctx context.Context, id string) (*models.Invitation, error)
	FindPublishedByShareID(ctx context.Context, shareID string) (*models.Invitation, error)
	FindAllByOwnerPaginated(ctx context.Context, ownerID string, params queryparams.ListParams) ([]models.Invitation, int64, error)
	UpdateContent(ctx context.Context, invitation *models.Invitation) error
	SetStatus(ctx context.Context, id, ownerID string, status models.InvitationStatus) error
	MarkPaid(ctx context.Context, id, ownerID string) (bool, error)
	Claim(ctx context.Context, id, ownerID string) error
	Delete(ctx context.Context, id, ownerID string) error
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
}

// InvitationRepository IInvitationRepository arayüzünü uygular.
type InvitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepositoryTx verilen bağlantı ya da işlem üzerinde çalışır.
func NewInvitationRepositoryTx(tx *gorm.DB) IInvitationRepository {
	return &InvitationRepository{db: tx}
}

func (r *InvitationRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// Create davetiyeyi kaydeder; ID ve ShareID BeforeCreate hook'unda atanır.
func (r *InvitationRepository) Create(ctx context.Context, invitation *models.Invitation) error {
	if invitation == nil {
		return errors.New("nil invitation")
	}
	if err := r.getDB(ctx).Create(invitation).Error; err != nil {
		configslog.Log.Error("InvitationRepository.Create: DB error", zap.String("template_id", invitation.TemplateID), zap.Error(err))
		return err
	}
	return nil
}

func (r *InvitationRepository) first(ctx context.Context, op string, query any, args ...any) (*models.Invitation, error) {
	var invitation models.Invitation
	err := r.getDB(ctx).Where(query, args...).First(&invitation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("InvitationRepository."+op+": DB error", zap.Any("args", args), zap.Error(err))
		return nil, err
	}
	return &invitation, nil
}

// FindByID sahiplik kontrolü yapmadan davetiyeyi bulur.
func (r *InvitationRepository) FindByID(ctx context.Context, id string) (*models.Invitation, error) {
	return r.first(ctx, "FindByID", "id = ?", id)
}

// FindByIDAndOwner yalnızca sahibi eşleşen davetiyeyi döner; eşleşmezse ErrNotFound.
func (r *InvitationRepository) FindByIDAndOwner(ctx context.Context, id, ownerID string) (*models.Invitation, error) {
	if ownerID == "" {
		return nil, ErrNotFound
	}
	return r.first(ctx, "FindByIDAndOwner", "id = ? AND owner_id = ?", id, ownerID)
}

// LockByIDAndOwner FindByIDAndOwner ile aynıdır, satırı işlem sonuna kadar kilitler (SELECT ... FOR UPDATE).
// Bir işlem context'i içinde çağrılmalıdır.
func (r *InvitationRepository) LockByIDAndOwner(ctx context.Context, id, ownerID string) (*models.Invitation, error) {
	if ownerID == "" {
		return nil, ErrNotFound
	}
	var invitation models.Invitation
	err := r.getDB(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&invitation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("InvitationRepository.LockByIDAndOwner: DB error", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return &invitation, nil
}

// FindPublishedByID public RSVP/ziyaretçi defteri akışları için yayınlanmış davetiyeyi bulur.
func (r *InvitationRepository) FindPublishedByID(ctx context.Context, id string) (*models.Invitation, error) {
	return r.first(ctx, "FindPublishedByID", "id = ? AND status = ?", id, models.InvitationStatusPublished)
}

// FindPublishedByShareID public paylaşım sayfası için davetiyeyi bulur.
func (r *InvitationRepository) FindPublishedByShareID(ctx context.Context, shareID string) (*models.Invitation, error) {
	return r.first(ctx, "FindPublishedByShareID", "share_id = ? AND status = ?", shareID, models.InvitationStatusPublished)
}

// FindAllByOwnerPaginated kullanıcının davetiyelerini sayfalayarak getirir.
// params çağırmadan önce Validate edilmiş olmalıdır.
func (r *InvitationRepository) FindAllByOwnerPaginated(ctx context.Context, ownerID string, params queryparams.ListParams) ([]models.Invitation, int64, error) {
	invitations := []models.Invitation{}
	if ownerID == "" {
		return invitations, 0, nil
	}

	query := r.getDB(ctx).Model(&models.Invitation{}).Where("invitations.owner_id = ?", ownerID)
	if params.Status != "" {
		query = query.Where("invitations.status = ?", params.Status)
	}
	if params.Type != "" {
		query = query.Where("invitations.type = ?", params.Type)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("InvitationRepository.Count (Paginated by Owner): DB error", zap.String("owner_id", ownerID), zap.Error(err))
		return nil, 0, err
	}
	if totalCount == 0 {
		return invitations, 0, nil
	}

	orderColumn, ok := invitationSortColumns[params.SortBy]
	if !ok {
		orderColumn = invitationSortColumns[queryparams.DefaultSortBy]
	}
	err := query.
		Order(orderColumn + " " + params.OrderBy).
		Order("invitations.id " + params.OrderBy).
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&invitations).Error
	if err != nil {
		configslog.Log.Error("InvitationRepository.Find (Paginated by Owner): DB error", zap.String("owner_id", ownerID), zap.Error(err))
		return nil, totalCount, err
	}
	return invitations, totalCount, nil
}

// UpdateContent içerik alanlarını tam olarak değiştirir (boş değerler dahil).
// Yalnızca invitation.OwnerID ile eşleşen kayıt güncellenir.
func (r *InvitationRepository) UpdateContent(ctx context.Context, invitation *models.Invitation) error {
	if invitation == nil || invitation.ID == "" || invitation.OwnerID == nil {
		return errors.New("invitation to update must have id and owner")
	}
	result := r.getDB(ctx).Model(invitation).
		Where("owner_id = ?", *invitation.OwnerID).
		Select(invitationContentColumns).
		Updates(invitation)
	if result.Error != nil {
		configslog.Log.Error("InvitationRepository.UpdateContent: DB error", zap.String("id", invitation.ID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetStatus yaşam döngüsü durumunu değiştirir.
func (r *InvitationRepository) SetStatus(ctx context.Context, id, ownerID string, status models.InvitationStatus) error {
	return r.updateOwned(ctx, "SetStatus", id, ownerID, map[string]any{"status": status})
}

// MarkPaid ödeme bayrağını bir kez çevirir. Zaten ödenmişse changed=false döner.
func (r *InvitationRepository) MarkPaid(ctx context.Context, id, ownerID string) (bool, error) {
	if ownerID == "" {
		return false, ErrNotFound
	}
	result := r.getDB(ctx).Model(&models.Invitation{}).
		Where("id = ? AND owner_id = ? AND is_paid = ?", id, ownerID, false).
		Update("is_paid", true)
	if result.Error != nil {
		configslog.Log.Error("InvitationRepository.MarkPaid: DB error", zap.String("id", id), zap.Error(result.Error))
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Claim sahipsiz bir davetiyeyi kullanıcıya bağlar ve düzenleme anahtarını geçersiz kılar.
func (r *InvitationRepository) Claim(ctx context.Context, id, ownerID string) error {
	if ownerID == "" {
		return errors.New("owner id required")
	}
	result := r.getDB(ctx).Model(&models.Invitation{}).
		Where("id = ? AND owner_id IS NULL", id).
		Updates(map[string]any{"owner_id": ownerID, "edit_token_hash": ""})
	if result.Error != nil {
		configslog.Log.Error("InvitationRepository.Claim: DB error", zap.String("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete davetiyeyi soft delete ile siler. RSVP ve ziyaretçi defteri kayıtları silinmez.
func (r *InvitationRepository) Delete(ctx context.Context, id, ownerID string) error {
	if ownerID == "" {
		return ErrNotFound
	}
	result := r.getDB(ctx).Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Invitation{})
	if result.Error != nil {
		configslog.Log.Error("InvitationRepository.Delete: DB error", zap.String("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByOwner kullanıcıya ait davetiye sayısı.
func (r *InvitationRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Invitation{}).Where("owner_id = ?", ownerID).Count(&count).Error
	return count, err
}

func (r *InvitationRepository) updateOwned(ctx context.Context, op, id, ownerID string, values map[string]any) error {
	if ownerID == "" {
		return ErrNotFound
	}
	result := r.getDB(ctx).Model(&models.Invitation{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(values)
	if result.Error != nil {
		configslog.Log.Error("InvitationRepository."+op+": DB error", zap.String("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ IInvitationRepository = (*InvitationRepository)(nil)
