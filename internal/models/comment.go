package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Comment struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	AuthorID  string    `gorm:"type:uuid;not null;index" json:"author_id"`
	Text      string    `gorm:"not null;type:text" json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Associations
	Author  *User   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE;" json:"author,omitempty"`
	Replies []Reply `gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE;" json:"replies,omitempty"`
}

func (comment *Comment) BeforeCreate(tx *gorm.DB) (err error) {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	return
}

func (Comment) TableName() string {
	return "comments"
}
