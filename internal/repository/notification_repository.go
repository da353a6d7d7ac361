package repository

import (
	"context"

	"gorm.io/gorm"

	"socialnet/internal/models"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListByRecipient(ctx context.Context, userID string) ([]models.Notification, error)
	MarkAllRead(ctx context.Context, userID string) error
	DeleteAllForRecipient(ctx context.Context, userID string) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	return storeErr(r.db.WithContext(ctx).Create(notification).Error)
}

func (r *notificationRepository) ListByRecipient(ctx context.Context, userID string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.WithContext(ctx).
		Preload("FromUser").
		Where(`"to" = ?`, userID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, storeErr(err)
}

// MarkAllRead flips the read flag for every notification addressed to userID
// in one bulk update. With no matching rows it is a no-op.
func (r *notificationRepository) MarkAllRead(ctx context.Context, userID string) error {
	return storeErr(r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where(`"to" = ?`, userID).
		Update("read", true).Error)
}

func (r *notificationRepository) DeleteAllForRecipient(ctx context.Context, userID string) error {
	return storeErr(r.db.WithContext(ctx).
		Where(`"to" = ?`, userID).
		Delete(&models.Notification{}).Error)
}
