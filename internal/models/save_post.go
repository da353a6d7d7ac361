package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SavePost struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	PostID string `gorm:"type:uuid;not null;index" json:"post_id"`
	UserID string `gorm:"type:uuid;not null;index" json:"user_id"`

	// Associations
	Post *Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE;" json:"post,omitempty"`
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
}

func (save *SavePost) BeforeCreate(tx *gorm.DB) (err error) {
	if save.ID == "" {
		save.ID = uuid.New().String()
	}
	return
}

func (SavePost) TableName() string {
	return "save_posts"
}
