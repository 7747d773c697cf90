package seeders

import (
	"errors"
	"time"

	"chodae.link/configs/configslog"
	"chodae.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DemoShareID örnek davetiyenin sabit paylaşım anahtarı (/i/demo0000000a).
const DemoShareID = "demo0000000a"

// SeedDemoInvitation yayınlanmış, sahipsiz bir örnek düğün davetiyesi ekler.
// Aynı share_id ile kayıt varsa hiçbir şey yapmaz.
func SeedDemoInvitation(db *gorm.DB) error {
	var existing models.Invitation
	err := db.Unscoped().Where("share_id = ?", DemoShareID).First(&existing).Error
	if err == nil {
		configslog.SLog.Debugf("Örnek davetiye '%s' zaten mevcut, atlanıyor.", DemoShareID)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Örnek davetiye kontrol edilirken veritabanı hatası", zap.Error(err))
		return err
	}

	demo := models.Invitation{
		ShareID:      DemoShareID,
		TemplateID:   "wedding-floral-01",
		Type:         models.InvitationTypeWedding,
		Title:        "민수 ♥ 지연 결혼합니다",
		Greeting:     "서로가 마주보며 다져온 사랑을 이제 함께 한 곳을 바라보며 걸어가려 합니다.",
		EventDate:    time.Now().AddDate(0, 3, 0).Format("2006-01-02"),
		EventTime:    "12:30",
		VenueName:    "더채플 앳 청담",
		VenueAddress: "서울시 강남구 선릉로 757, 2층",
		ExtraData: models.ExtraData{
			"groomName":  "김민수",
			"brideName":  "이지연",
			"groomPhone": "010-1234-5678",
		},
		Status: models.InvitationStatusPublished,
	}
	if err := db.Create(&demo).Error; err != nil {
		configslog.Log.Error("Örnek davetiye oluşturulamadı", zap.Error(err))
		return err
	}

	rsvps := []models.InvitationRSVP{
		{InvitationID: demo.ID, GuestName: "박지훈", GuestCount: 2, Attending: true},
		{InvitationID: demo.ID, GuestName: "최유나", GuestCount: 1, Attending: false},
	}
	if err := db.Create(&rsvps).Error; err != nil {
		configslog.Log.Error("Örnek RSVP kayıtları oluşturulamadı", zap.Error(err))
		return err
	}

	entry := models.InvitationGuestbookEntry{InvitationID: demo.ID, AuthorName: "정하늘", Content: "결혼 축하해요! 행복하세요 :)"}
	if err := db.Create(&entry).Error; err != nil {
		configslog.Log.Error("Örnek ziyaretçi defteri kaydı oluşturulamadı", zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Örnek davetiye oluşturuldu (ID: %s, ShareID: %s).", demo.ID, demo.ShareID)
	return nil
}
