// models/invitation_rsvp.go
package models

import (
	"time"
)

// InvitationRSVP bir misafirin davetiyeye verdiği katılım yanıtıdır.
// Oluşturulduktan sonra değiştirilmez.
type InvitationRSVP struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	InvitationID string    `gorm:"type:varchar(36);not null;index" json:"inviteId"`
	GuestName    string    `gorm:"type:varchar(50);not null" json:"guestName"`
	GuestPhone   *string   `gorm:"type:varchar(20)" json:"guestPhone"`
	GuestCount   int       `gorm:"type:integer;not null" json:"guestCount"`
	Attending    bool      `gorm:"not null" json:"attending"`
	Message      *string   `gorm:"type:varchar(300)" json:"message"`
	CreatedAt    time.Time `gorm:"index" json:"createdAt"`
}

// RSVPSummary bir davetiyenin katılım özetidir.
type RSVPSummary struct {
	TotalResponses int64 `json:"totalResponses"`
	AttendingCount int64 `json:"attendingCount"` // Katılacakların getirdiği toplam kişi sayısı
	DeclineCount   int64 `json:"declineCount"`
}
