package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"socialnet/internal/apperror"
	"socialnet/internal/models"
)

// UserRepository defines the interface for user data operations.
// Username comparisons are case-insensitive throughout.
type UserRepository interface {
	CreateWithProfile(ctx context.Context, user *models.User, profile *models.Profile) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	SearchByUsername(ctx context.Context, pattern string, offset, limit int) ([]models.User, error)
	ListExcluding(ctx context.Context, userID string, limit int) ([]models.User, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id string) error
	FindProfileByUserID(ctx context.Context, userID string) (*models.Profile, error)
	SaveProfile(ctx context.Context, profile *models.Profile) error
}

// userRepository is the GORM implementation of UserRepository.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository in a GORM implementation
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateWithProfile inserts the user row and its profile row in one
// transaction so a failed profile insert never leaves an orphaned user.
func (r *userRepository) CreateWithProfile(ctx context.Context, user *models.User, profile *models.Profile) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile.UserID = user.ID
		return tx.Create(profile).Error
	})
	if isUniqueViolation(err) {
		return apperror.Conflict("user", "username or email already in use")
	}
	return storeErr(err)
}

// Read-path lookups model "not found" as an absent value, never an error.

func (r *userRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Preload("Profile").First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Preload("Profile").Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Preload("Profile").
		Where("LOWER(username) = LOWER(?)", username).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &user, nil
}

// SearchByUsername matches the pattern as literal text (metacharacters are
// escaped), case-insensitively, ordered descending by username.
func (r *userRepository) SearchByUsername(ctx context.Context, pattern string, offset, limit int) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Preload("Profile").
		Where("username ILIKE ?", "%"+escapeLike(pattern)+"%").
		Order("username DESC").
		Offset(offset).
		Limit(limit).
		Find(&users).Error
	return users, storeErr(err)
}

// ListExcluding returns users other than currentUserID, annotated with their
// follower edges so callers can tell who already follows whom.
func (r *userRepository) ListExcluding(ctx context.Context, currentUserID string, limit int) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Preload("Profile").
		Preload("Followers").
		Where("id <> ?", currentUserID).
		Limit(limit).
		Find(&users).Error
	return users, storeErr(err)
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error
	return count, storeErr(err)
}

// Delete removes the user row. Dependent rows (profile, posts, comments,
// likes, follow edges, notifications) go with it via ON DELETE CASCADE.
func (r *userRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return storeErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("user", id)
	}
	return nil
}

func (r *userRepository) FindProfileByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &profile, nil
}

func (r *userRepository) SaveProfile(ctx context.Context, profile *models.Profile) error {
	return storeErr(r.db.WithContext(ctx).Save(profile).Error)
}
