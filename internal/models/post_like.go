package models

// PostLike records one like per user per post, enforced by the composite
// primary key.
type PostLike struct {
	PostID string `gorm:"primaryKey;type:uuid" json:"post_id"`
	UserID string `gorm:"primaryKey;type:uuid" json:"user_id"`

	// Associations
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
}

func (PostLike) TableName() string {
	return "post_likes"
}
