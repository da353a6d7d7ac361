package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Post struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Text      string    `gorm:"not null;type:text" json:"text"`
	Image     string    `gorm:"type:text" json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Associations
	User     *User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
	Comments []Comment  `gorm:"many2many:post_comments;" json:"comments,omitempty"`
	Likes    []PostLike `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE;" json:"likes,omitempty"`
	Tags     []PostTag  `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE;" json:"tags,omitempty"`
}

func (post *Post) BeforeCreate(tx *gorm.DB) (err error) {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	return
}

func (Post) TableName() string {
	return "posts"
}
