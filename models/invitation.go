package models

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvitationType davetiye türlerini tanımlar.
type InvitationType string

const (
	InvitationTypeWedding          InvitationType = "wedding"
	InvitationTypeFirstBirthday    InvitationType = "first-birthday"
	InvitationTypeBirthday         InvitationType = "birthday"
	InvitationTypeHousewarming     InvitationType = "housewarming"
	InvitationTypeSixtiethBirthday InvitationType = "sixtieth-birthday"
	InvitationTypeGeneral          InvitationType = "general"
)

// InvitationTypes desteklenen tüm türler (sıralı).
var InvitationTypes = []InvitationType{
	InvitationTypeWedding,
	InvitationTypeFirstBirthday,
	InvitationTypeBirthday,
	InvitationTypeHousewarming,
	InvitationTypeSixtiethBirthday,
	InvitationTypeGeneral,
}

// InvitationStatus davetiyenin yaşam döngüsü durumu.
type InvitationStatus string

const (
	InvitationStatusDraft     InvitationStatus = "draft"
	InvitationStatusPublished InvitationStatus = "published"
	InvitationStatusArchived  InvitationStatus = "archived"
)

// IsValid durumun bilinen değerlerden biri olup olmadığını döner.
func (s InvitationStatus) IsValid() bool {
	switch s {
	case InvitationStatusDraft, InvitationStatusPublished, InvitationStatusArchived:
		return true
	}
	return false
}

// ExtraData türe özgü alanları (damat/gelin adı, bebek adı vb.) tutar.
type ExtraData map[string]any

const (
	ShareIDLength   = 12
	shareIDAttempts = 5
)

var ErrShareIDGenerationFailed = errors.New("could not generate a unique share id")

// Invitation bir etkinlik davetiyesinin kaydıdır.
type Invitation struct {
	ID            string           `gorm:"type:varchar(36);primaryKey" json:"id"`
	ShareID       string           `gorm:"type:varchar(12);uniqueIndex;not null" json:"shareId"`
	OwnerID       *string          `gorm:"type:varchar(191);index" json:"ownerId"` // Anonim oluşturmada nil
	TemplateID    string           `gorm:"type:varchar(64);not null" json:"templateId"`
	Type          InvitationType   `gorm:"type:varchar(32);not null" json:"type"`
	Title         string           `gorm:"type:varchar(100);not null" json:"title"`
	Greeting      string           `gorm:"type:text;not null;default:''" json:"greeting"`
	EventDate     string           `gorm:"type:varchar(10);not null" json:"eventDate"` // YYYY-MM-DD
	EventTime     string           `gorm:"type:varchar(5);not null" json:"eventTime"`  // HH:MM
	VenueName     string           `gorm:"type:varchar(100);not null" json:"venueName"`
	VenueAddress  string           `gorm:"type:varchar(200);not null" json:"venueAddress"`
	HostName      string           `gorm:"type:varchar(100)" json:"hostName,omitempty"`
	ExtraData     ExtraData        `gorm:"serializer:json;type:text;not null" json:"extraData"`
	IsPremium     bool             `gorm:"not null;default:false" json:"isPremium"`
	IsPaid        bool             `gorm:"not null;default:false" json:"isPaid"`
	Status        InvitationStatus `gorm:"type:varchar(20);not null;default:'published';index" json:"status"`
	EditTokenHash string           `gorm:"type:varchar(255)" json:"-"` // Anonim davetiyeyi sahiplenmek için
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt   `gorm:"index" json:"-"`
}

// IsOwnedBy davetiyenin verilen kullanıcıya ait olup olmadığını döner.
func (i *Invitation) IsOwnedBy(userID string) bool {
	return userID != "" && i.OwnerID != nil && *i.OwnerID == userID
}

// IsPublished public görünümde gösterilebilirliği belirler.
func (i *Invitation) IsPublished() bool {
	return i.Status == InvitationStatusPublished
}

// BeforeCreate ID ve benzersiz ShareID üretir.
// ShareID çakışırsa birkaç kez yeniden denenir (soft delete edilenler dahil).
func (i *Invitation) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	if i.ExtraData == nil {
		i.ExtraData = ExtraData{}
	}
	if i.Status == "" {
		i.Status = InvitationStatusPublished
	}
	if i.ShareID != "" {
		return nil
	}

	for attempt := 0; attempt < shareIDAttempts; attempt++ {
		candidate, err := NewShareID()
		if err != nil {
			return err
		}
		var count int64
		err = tx.Session(&gorm.Session{NewDB: true}).Unscoped().
			Model(&Invitation{}).Where("share_id = ?", candidate).Count(&count).Error
		if err != nil {
			return err
		}
		if count == 0 {
			i.ShareID = candidate
			return nil
		}
	}
	return ErrShareIDGenerationFailed
}

// NewShareID 12 karakterlik hex bir public anahtar üretir.
func NewShareID() (string, error) {
	buf := make([]byte, ShareIDLength/2)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
