package models

import "time"

// Follower is a directed follow edge: FollowerID follows FollowedID.
// The composite primary key guarantees at most one edge per ordered pair.
// Self-follows are not blocked by the schema, the service layer rejects them.
type Follower struct {
	FollowerID string    `gorm:"primaryKey;type:uuid" json:"follower_id"`
	FollowedID string    `gorm:"primaryKey;type:uuid" json:"followed_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Associations
	FollowerUser *User `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE;" json:"follower_user,omitempty"`
	Followed     *User `gorm:"foreignKey:FollowedID;constraint:OnDelete:CASCADE;" json:"followed,omitempty"`
}

func (Follower) TableName() string {
	return "followers"
}
