package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostTag struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	PostID string `gorm:"type:uuid;index" json:"post_id"`
	Tag    string `gorm:"size:255;not null" json:"tag"`
}

func (tag *PostTag) BeforeCreate(tx *gorm.DB) (err error) {
	if tag.ID == "" {
		tag.ID = uuid.New().String()
	}
	return
}

func (PostTag) TableName() string {
	return "post_tags"
}
