package models

// PostComment is the join table between posts and comments. The schema allows
// a comment to attach to more than one post, typical use is one to one.
type PostComment struct {
	PostID    string `gorm:"primaryKey;type:uuid" json:"post_id"`
	CommentID string `gorm:"primaryKey;type:uuid" json:"comment_id"`
}

func (PostComment) TableName() string {
	return "post_comments"
}
