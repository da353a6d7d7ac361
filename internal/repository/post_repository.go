package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"socialnet/internal/apperror"
	"socialnet/internal/models"
)

// PostRepository covers posts and everything hanging off them: comments,
// replies, likes, tags and saves.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	FindByID(ctx context.Context, id string) (*models.Post, error)
	Delete(ctx context.Context, id, userID string) error
	ListByAuthor(ctx context.Context, authorID string, limit int) ([]models.Post, error)
	AddComment(ctx context.Context, postID string, comment *models.Comment) error
	AddReply(ctx context.Context, reply *models.Reply) error
	CommentsByPost(ctx context.Context, postID string) ([]models.Comment, error)
	Like(ctx context.Context, postID, userID string) error
	Unlike(ctx context.Context, postID, userID string) error
	Save(ctx context.Context, postID, userID string) error
	Unsave(ctx context.Context, postID, userID string) error
	ListSaved(ctx context.Context, userID string) ([]models.SavePost, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	// Tags attached to the struct are inserted in the same statement batch.
	err := r.db.WithContext(ctx).Create(post).Error
	if isForeignKeyViolation(err) {
		return apperror.NotFound("user", post.UserID)
	}
	return storeErr(err)
}

func (r *postRepository) FindByID(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Preload("User.Profile").
		Preload("Comments.Author").
		Preload("Comments.Replies").
		Preload("Likes").
		Preload("Tags").
		First(&post, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &post, nil
}

// Delete removes a post owned by userID. Dependent comment links, likes, tags
// and saves cascade at the store.
func (r *postRepository) Delete(ctx context.Context, id, userID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Post{})
	if result.Error != nil {
		return storeErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("post", id)
	}
	return nil
}

// ListByAuthor returns the author's posts with nested content, newest first.
// This is the per-followee building block of the following feed.
func (r *postRepository) ListByAuthor(ctx context.Context, authorID string, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Preload("User.Profile").
		Preload("Comments.Author").
		Preload("Comments.Replies").
		Preload("Likes").
		Preload("Tags").
		Where("user_id = ?", authorID).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, storeErr(err)
}

// AddComment inserts the comment row and its post_comments link in one
// transaction.
func (r *postRepository) AddComment(ctx context.Context, postID string, comment *models.Comment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		link := models.PostComment{PostID: postID, CommentID: comment.ID}
		return tx.Create(&link).Error
	})
	if isForeignKeyViolation(err) {
		return apperror.NotFound("post", postID)
	}
	return storeErr(err)
}

func (r *postRepository) AddReply(ctx context.Context, reply *models.Reply) error {
	err := r.db.WithContext(ctx).Create(reply).Error
	if isForeignKeyViolation(err) {
		return apperror.NotFound("comment", reply.CommentID)
	}
	return storeErr(err)
}

func (r *postRepository) CommentsByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Joins("JOIN post_comments ON post_comments.comment_id = comments.id").
		Where("post_comments.post_id = ?", postID).
		Preload("Author").
		Preload("Replies.Author").
		Order("comments.created_at DESC").
		Find(&comments).Error
	return comments, storeErr(err)
}

// Like inserts the (post, user) like row. A duplicate like trips the
// composite primary key and surfaces as a Conflict.
func (r *postRepository) Like(ctx context.Context, postID, userID string) error {
	like := models.PostLike{PostID: postID, UserID: userID}
	err := r.db.WithContext(ctx).Create(&like).Error
	if isUniqueViolation(err) {
		return apperror.Conflict("like", "post already liked")
	}
	if isForeignKeyViolation(err) {
		return apperror.NotFound("post", postID)
	}
	return storeErr(err)
}

func (r *postRepository) Unlike(ctx context.Context, postID, userID string) error {
	return storeErr(r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&models.PostLike{}).Error)
}

func (r *postRepository) Save(ctx context.Context, postID, userID string) error {
	save := models.SavePost{PostID: postID, UserID: userID}
	err := r.db.WithContext(ctx).Create(&save).Error
	if isForeignKeyViolation(err) {
		return apperror.NotFound("post", postID)
	}
	return storeErr(err)
}

func (r *postRepository) Unsave(ctx context.Context, postID, userID string) error {
	return storeErr(r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&models.SavePost{}).Error)
}

func (r *postRepository) ListSaved(ctx context.Context, userID string) ([]models.SavePost, error) {
	var saves []models.SavePost
	err := r.db.WithContext(ctx).
		Preload("Post.User").
		Preload("Post.Tags").
		Where("user_id = ?", userID).
		Find(&saves).Error
	return saves, storeErr(err)
}
