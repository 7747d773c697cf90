package models

import "time"

// InvitationGuestbookEntry davetiyeye bırakılan tebrik mesajıdır.
type InvitationGuestbookEntry struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	InvitationID string    `gorm:"type:varchar(36);not null;index" json:"inviteId"`
	AuthorName   string    `gorm:"type:varchar(50);not null" json:"authorName"`
	Content      string    `gorm:"type:varchar(500);not null" json:"content"`
	CreatedAt    time.Time `gorm:"index" json:"createdAt"`
}
