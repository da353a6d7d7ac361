package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NotificationTypeLike   = "like"
	NotificationTypeFollow = "follow"
)

type Notification struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	From      string    `gorm:"column:from;type:uuid;not null;index" json:"from"`
	To        string    `gorm:"column:to;type:uuid;not null;index" json:"to"`
	Type      string    `gorm:"not null" json:"type"` // "like" or "follow"
	Read      bool      `gorm:"default:false" json:"read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Associations
	FromUser *User `gorm:"foreignKey:From;constraint:OnDelete:CASCADE;" json:"from_user,omitempty"`
	ToUser   *User `gorm:"foreignKey:To;constraint:OnDelete:CASCADE;" json:"to_user,omitempty"`
}

func (notification *Notification) BeforeCreate(tx *gorm.DB) (err error) {
	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}
	return
}

func (Notification) TableName() string {
	return "notifications"
}
