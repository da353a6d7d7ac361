package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Reply struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	CommentID string    `gorm:"type:uuid;not null;index" json:"comment_id"`
	AuthorID  string    `gorm:"type:uuid;not null;index" json:"author_id"`
	Text      string    `gorm:"not null;type:text" json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Associations
	Author *User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE;" json:"author,omitempty"`
}

func (reply *Reply) BeforeCreate(tx *gorm.DB) (err error) {
	if reply.ID == "" {
		reply.ID = uuid.New().String()
	}
	return
}

func (Reply) TableName() string {
	return "replies"
}
