package services

import (
	"context"
	"errors"
	"fmt"

	"chodae.link/configs/configslog"
	"chodae.link/models"
	"chodae.link/pkg/inviteform"
	"chodae.link/pkg/queryparams"
	"chodae.link/repositories"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// InvitationServiceError özel servis hataları
type InvitationServiceError string

func (e InvitationServiceError) Error() string { return string(e) }

const (
	ErrInvitationNotFound        InvitationServiceError = "davetiye bulunamadı"
	ErrInvitationCreationFailed  InvitationServiceError = "davetiye oluşturulamadı"
	ErrInvitationUpdateFailed    InvitationServiceError = "davetiye güncellenemedi"
	ErrInvitationDeletionFailed  InvitationServiceError = "davetiye silinemedi"
	ErrInvitationUnauthenticated InvitationServiceError = "oturum açılmamış"
	ErrInvInvalidInput           InvitationServiceError = "geçersiz girdi verisi"
	ErrInvInvalidStatus          InvitationServiceError = "geçersiz davetiye durumu"
	ErrInvInvalidEditToken       InvitationServiceError = "düzenleme anahtarı geçersiz"
	ErrInvCheckoutFailed         InvitationServiceError = "ödeme işaretlenemedi"
)

// editTokenCost anonim düzenleme anahtarının bcrypt maliyeti; testler düşürebilir.
var editTokenCost = bcrypt.DefaultCost

// invitationSortFields listeleme için izin verilen sıralama alanları.
var invitationSortFields = []string{"created_at", "updated_at", "event_date", "title"}

// CreateResult yeni davetiye ve (anonim oluşturmada) bir kez gösterilen düzenleme anahtarı.
type CreateResult struct {
	Invitation *models.Invitation
	EditToken  string
}

// ShareDetail public paylaşım görünümünün verisidir.
type ShareDetail struct {
	Invite    *models.Invitation                `json:"invite"`
	RSVPs     []models.InvitationRSVP           `json:"rsvps"`
	Guestbook []models.InvitationGuestbookEntry `json:"guestbook"`
	Summary   models.RSVPSummary                `json:"rsvpSummary"`
}

// IInvitationService davetiye işlemleri için arayüz.
type IInvitationService interface {
	CreateInvitation(ctx context.Context, ownerID string, payload map[string]any) (*CreateResult, error)
	GetInvitationForOwner(ctx context.Context, id, ownerID string) (*models.Invitation, error)
	GetInvitationsForOwner(ctx context.Context, ownerID string, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateInvitation(ctx context.Context, id, ownerID string, payload map[string]any) (*models.Invitation, error)
	SetStatus(ctx context.Context, id, ownerID string, status string) (*models.Invitation, error)
	Checkout(ctx context.Context, id, ownerID string) (*models.Invitation, error)
	Claim(ctx context.Context, id, ownerID, editToken string) (*models.Invitation, error)
	DeleteInvitation(ctx context.Context, id, ownerID string) error
	GetPublishedInvitation(ctx context.Context, shareID string) (*models.Invitation, error)
	GetShareDetail(ctx context.Context, shareID string) (*ShareDetail, error)
}

// InvitationService IInvitationService arayüzünü uygular.
type InvitationService struct {
	db            *gorm.DB // Transaction için
	repo          repositories.IInvitationRepository
	rsvpRepo      repositories.IInvitationRSVPRepository
	guestbookRepo repositories.IInvitationGuestbookRepository
	validator     *inviteform.Validator
}

// NewInvitationService verilen bağlantı ve doğrulayıcıyla servis oluşturur.
func NewInvitationService(db *gorm.DB, validator *inviteform.Validator) IInvitationService {
	if validator == nil {
		validator = inviteform.NewValidator(nil, nil, nil)
	}
	return &InvitationService{
		db:            db,
		repo:          repositories.NewInvitationRepositoryTx(db),
		rsvpRepo:      repositories.NewInvitationRSVPRepositoryTx(db),
		guestbookRepo: repositories.NewInvitationGuestbookRepositoryTx(db),
		validator:     validator,
	}
}

// --- Yardımcı Metodlar ---

// validate doğrulama hatasını ErrInvInvalidInput ile sarar; *inviteform.ValidationError errors.As ile alınabilir.
func (s *InvitationService) validate(payload map[string]any) (inviteform.Document, error) {
	doc, err := s.validator.ValidateInvitation(payload)
	if err != nil {
		return inviteform.Document{}, fmt.Errorf("%w: %w", ErrInvInvalidInput, err)
	}
	return doc, nil
}

// applyDocument doğrulanmış içeriği modele yazar. Premium bayrağı şablondan gelir.
func (s *InvitationService) applyDocument(inv *models.Invitation, doc inviteform.Document) error {
	if err := copier.Copy(inv, &doc); err != nil {
		return err
	}
	inv.ExtraData = doc.ExtraData()
	if tpl, ok := s.validator.Catalog.ByID(doc.TemplateID); ok {
		inv.IsPremium = tpl.IsPremium
	}
	return nil
}

func newEditToken() (token, hash string, err error) {
	token = uuid.NewString()
	hashed, err := bcrypt.GenerateFromPassword([]byte(token), editTokenCost)
	if err != nil {
		return "", "", err
	}
	return token, string(hashed), nil
}

func translateNotFound(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrInvitationNotFound
	}
	return err
}

// --- Servis Metodları ---

// CreateInvitation doğrulanmış davetiyeyi kaydeder. ownerID boşsa davetiye sahipsiz
// oluşturulur ve sonradan sahiplenmek için bir düzenleme anahtarı döner.
func (s *InvitationService) CreateInvitation(ctx context.Context, ownerID string, payload map[string]any) (*CreateResult, error) {
	doc, err := s.validate(payload)
	if err != nil {
		return nil, err
	}

	invitation := &models.Invitation{Status: models.InvitationStatusPublished}
	if err := s.applyDocument(invitation, doc); err != nil {
		configslog.Log.Error("Davetiye içeriği modele aktarılamadı", zap.Error(err))
		return nil, ErrInvitationCreationFailed
	}
	if doc.RequestedStatus != "" {
		invitation.Status = doc.RequestedStatus
	}

	result := &CreateResult{Invitation: invitation}
	if ownerID != "" {
		invitation.OwnerID = &ownerID
	} else {
		token, hash, err := newEditToken()
		if err != nil {
			configslog.Log.Error("Düzenleme anahtarı üretilemedi", zap.Error(err))
			return nil, ErrInvitationCreationFailed
		}
		invitation.EditTokenHash = hash
		result.EditToken = token
	}

	if err := s.repo.Create(ctx, invitation); err != nil {
		return nil, ErrInvitationCreationFailed
	}
	configslog.SLog.Infof("Davetiye oluşturuldu: ID %s, ShareID %s, şablon %s", invitation.ID, invitation.ShareID, invitation.TemplateID)
	return result, nil
}

// GetInvitationForOwner sahibine ait davetiyeyi getirir; başkasına aitse de bulunamadı döner.
func (s *InvitationService) GetInvitationForOwner(ctx context.Context, id, ownerID string) (*models.Invitation, error) {
	if ownerID == "" {
		return nil, ErrInvitationUnauthenticated
	}
	invitation, err := s.repo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return invitation, nil
}

// GetInvitationsForOwner kullanıcının davetiyelerini sayfalı döner.
func (s *InvitationService) GetInvitationsForOwner(ctx context.Context, ownerID string, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	if ownerID == "" {
		return nil, ErrInvitationUnauthenticated
	}
	params.Validate(invitationSortFields...)

	invitations, total, err := s.repo.FindAllByOwnerPaginated(ctx, ownerID, params)
	if err != nil {
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Items: invitations,
		Meta:  queryparams.NewMeta(params, total),
	}, nil
}

// UpdateInvitation içerik alanlarını tamamen değiştirir. Kayıt işlem boyunca kilitlenir.
func (s *InvitationService) UpdateInvitation(ctx context.Context, id, ownerID string, payload map[string]any) (*models.Invitation, error) {
	if ownerID == "" {
		return nil, ErrInvitationUnauthenticated
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := repositories.WithTx(ctx, tx)
		repoTx := repositories.NewInvitationRepositoryTx(tx)

		invitation, err := repoTx.LockByIDAndOwner(txCtx, id, ownerID)
		if err != nil {
			return translateNotFound(err)
		}

		doc, err := s.validate(payload)
		if err != nil {
			return err
		}
		if err := s.applyDocument(invitation, doc); err != nil {
			return err
		}
		if err := repoTx.UpdateContent(txCtx, invitation); err != nil {
			return translateNotFound(err)
		}
		if doc.RequestedStatus != "" && doc.RequestedStatus != invitation.Status {
			return repoTx.SetStatus(txCtx, id, ownerID, doc.RequestedStatus)
		}
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, ErrInvitationNotFound) || errors.Is(txErr, ErrInvInvalidInput) {
			return nil, txErr
		}
		configslog.Log.Error("Davetiye güncelleme transaction hatası", zap.String("id", id), zap.Error(txErr))
		return nil, ErrInvitationUpdateFailed
	}

	configslog.SLog.Infof("Davetiye başarıyla güncellendi: ID %s", id)
	return s.GetInvitationForOwner(ctx, id, ownerID)
}

// SetStatus davetiyeyi draft, published veya archived durumuna geçirir.
func (s *InvitationService) SetStatus(ctx context.Context, id, ownerID string, status string) (*models.Invitation, error) {
	if ownerID == "" {
		return nil, ErrInvitationUnauthenticated
	}
	newStatus := models.InvitationStatus(status)
	if !newStatus.IsValid() {
		return nil, ErrInvInvalidStatus
	}
	if err := s.repo.SetStatus(ctx, id, ownerID, newStatus); err != nil {
		return nil, translateNotFound(err)
	}
	configslog.SLog.Infof("Davetiye durumu değişti: ID %s -> %s", id, newStatus)
	return s.GetInvitationForOwner(ctx, id, ownerID)
}

// Checkout ödeme bayrağını bir kez işaretler; tekrar çağrılırsa değişiklik yapmadan davetiyeyi döner.
func (s *InvitationService) Checkout(ctx context.Context, id, ownerID string) (*models.Invitation, error) {
	if ownerID == "" {
		return nil, ErrInvitationUnauthenticated
	}

	var changed bool
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := repositories.WithTx(ctx, tx)
		repoTx := repositories.NewInvitationRepositoryTx(tx)

		invitation, err := repoTx.LockByIDAndOwner(txCtx, id, ownerID)
		if err != nil {
			return translateNotFound(err)
		}
		if invitation.IsPaid {
			return nil
		}
		changed, err = repoTx.MarkPaid(txCtx, id, ownerID)
		return err
	})
	if txErr != nil {
		if errors.Is(txErr, ErrInvitationNotFound) {
			return nil, txErr
		}
		configslog.Log.Error("Davetiye ödeme transaction hatası", zap.String("id", id), zap.Error(txErr))
		return nil, ErrInvCheckoutFailed
	}

	if changed {
		configslog.SLog.Infof("Davetiye ödendi olarak işaretlendi: ID %s", id)
	}
	return s.GetInvitationForOwner(ctx, id, ownerID)
}

// Claim sahipsiz bir davetiyeyi düzenleme anahtarıyla kullanıcıya bağlar.
func (s *InvitationService) Claim(ctx context.Context, id, ownerID, editToken string) (*models.Invitation, error) {
	if ownerID == "" {
		return nil, ErrInvitationUnauthenticated
	}
	invitation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	if invitation.OwnerID != nil {
		if invitation.IsOwnedBy(ownerID) {
			return invitation, nil
		}
		return nil, ErrInvitationNotFound
	}
	if invitation.EditTokenHash == "" || editToken == "" ||
		bcrypt.CompareHashAndPassword([]byte(invitation.EditTokenHash), []byte(editToken)) != nil {
		return nil, ErrInvInvalidEditToken
	}

	if err := s.repo.Claim(ctx, id, ownerID); err != nil {
		return nil, translateNotFound(err)
	}
	configslog.SLog.Infof("Davetiye sahiplenildi: ID %s, kullanıcı %s", id, ownerID)
	return s.GetInvitationForOwner(ctx, id, ownerID)
}

// DeleteInvitation davetiyeyi soft delete ile siler.
func (s *InvitationService) DeleteInvitation(ctx context.Context, id, ownerID string) error {
	if ownerID == "" {
		return ErrInvitationUnauthenticated
	}
	if err := s.repo.Delete(ctx, id, ownerID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrInvitationNotFound
		}
		return ErrInvitationDeletionFailed
	}
	configslog.SLog.Infof("Davetiye silindi: ID %s", id)
	return nil
}

// GetPublishedInvitation paylaşım anahtarıyla yayınlanmış davetiyeyi getirir.
func (s *InvitationService) GetPublishedInvitation(ctx context.Context, shareID string) (*models.Invitation, error) {
	invitation, err := s.repo.FindPublishedByShareID(ctx, shareID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return invitation, nil
}

// GetShareDetail yayınlanmış davetiyeyi yanıtları ve ziyaretçi defteriyle birlikte getirir.
func (s *InvitationService) GetShareDetail(ctx context.Context, shareID string) (*ShareDetail, error) {
	invitation, err := s.GetPublishedInvitation(ctx, shareID)
	if err != nil {
		return nil, err
	}

	detail := &ShareDetail{Invite: invitation}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		detail.RSVPs, err = s.rsvpRepo.FindByInvitationID(gctx, invitation.ID)
		return err
	})
	g.Go(func() error {
		var err error
		detail.Guestbook, err = s.guestbookRepo.FindByInvitationID(gctx, invitation.ID)
		return err
	})
	g.Go(func() error {
		var err error
		detail.Summary, err = s.rsvpRepo.Summary(gctx, invitation.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		configslog.Log.Error("Paylaşım detayı yüklenemedi", zap.String("share_id", shareID), zap.Error(err))
		return nil, err
	}
	return detail, nil
}

var _ IInvitationService = (*InvitationService)(nil)
