package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Profile struct {
	ID         string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID     string `gorm:"type:uuid;not null;index" json:"user_id"`
	FullName   string `gorm:"size:255" json:"full_name,omitempty"`
	Bio        string `gorm:"size:255" json:"bio,omitempty"`
	ProfilePic string `gorm:"type:text" json:"profile_pic,omitempty"`
	Gender     string `gorm:"size:10" json:"gender,omitempty"` // "male" or "female", empty when unset
	IsBanned   bool   `gorm:"default:false" json:"is_banned"`
}

func (profile *Profile) BeforeCreate(tx *gorm.DB) (err error) {
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	return
}

func (Profile) TableName() string {
	return "profiles"
}
