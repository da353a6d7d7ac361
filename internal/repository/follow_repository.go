package repository

import (
	"context"

	"gorm.io/gorm"

	"socialnet/internal/apperror"
	"socialnet/internal/models"
)

// FollowRepository exposes the follow-edge primitives the graph engine is
// built from. Edge listings are ordered by edge created_at descending so the
// most recent follows come first.
type FollowRepository interface {
	Exists(ctx context.Context, followerID, followedID string) (bool, error)
	Create(ctx context.Context, followerID, followedID string) error
	Delete(ctx context.Context, followerID, followedID string) error
	ListFollowings(ctx context.Context, userID string, limit, offset int) ([]models.Follower, error)
	ListFollowers(ctx context.Context, userID string, limit, offset int) ([]models.Follower, error)
	FolloweeIDs(ctx context.Context, userID string, limit int) ([]string, error)
	FolloweesOf(ctx context.Context, userIDs []string, limit int) ([]models.Follower, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Exists(ctx context.Context, followerID, followedID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Follower{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error
	return count > 0, storeErr(err)
}

// Create inserts the edge. A second insert for the same ordered pair trips the
// composite primary key and surfaces as a Conflict.
func (r *followRepository) Create(ctx context.Context, followerID, followedID string) error {
	edge := models.Follower{FollowerID: followerID, FollowedID: followedID}
	err := r.db.WithContext(ctx).Create(&edge).Error
	if isUniqueViolation(err) {
		return apperror.Conflict("follow", "already following this user")
	}
	if isForeignKeyViolation(err) {
		return apperror.NotFound("user", followedID)
	}
	return storeErr(err)
}

// Delete removes the edge. Deleting an absent edge is a no-op success.
func (r *followRepository) Delete(ctx context.Context, followerID, followedID string) error {
	return storeErr(r.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.Follower{}).Error)
}

func (r *followRepository) ListFollowings(ctx context.Context, userID string, limit, offset int) ([]models.Follower, error) {
	var edges []models.Follower
	err := r.db.WithContext(ctx).
		Preload("Followed.Profile").
		Where("follower_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&edges).Error
	return edges, storeErr(err)
}

func (r *followRepository) ListFollowers(ctx context.Context, userID string, limit, offset int) ([]models.Follower, error) {
	var edges []models.Follower
	err := r.db.WithContext(ctx).
		Preload("FollowerUser.Profile").
		Where("followed_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&edges).Error
	return edges, storeErr(err)
}

// FolloweeIDs is phase one of the two-hop expansion: the ids of everyone
// userID follows.
func (r *followRepository) FolloweeIDs(ctx context.Context, userID string, limit int) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&models.Follower{}).
		Where("follower_id = ?", userID).
		Limit(limit).
		Pluck("followed_id", &ids).Error
	return ids, storeErr(err)
}

// FolloweesOf is phase two: the outgoing edges of the given users, each with
// the followed user and profile loaded.
func (r *followRepository) FolloweesOf(ctx context.Context, userIDs []string, limit int) ([]models.Follower, error) {
	if len(userIDs) == 0 {
		return []models.Follower{}, nil
	}
	var edges []models.Follower
	err := r.db.WithContext(ctx).
		Preload("Followed.Profile").
		Where("follower_id IN ?", userIDs).
		Limit(limit).
		Find(&edges).Error
	return edges, storeErr(err)
}
