package service

import (
	"context"
	"encoding/json"

	"socialnet/internal/cache"
	"socialnet/internal/events"
	"socialnet/internal/models"
	"socialnet/internal/repository"
)

// CacheReader is the read side of the notification cache list.
type CacheReader interface {
	ListRange(ctx context.Context, key string) ([]string, error)
}

type NotificationService interface {
	List(ctx context.Context, userID string) ([]models.Notification, error)
	Recent(ctx context.Context, userID string) ([]models.Notification, error)
	MarkAllRead(userID string)
	Clear(userID string)
}

type notificationService struct {
	repo  repository.NotificationRepository
	cache CacheReader
	bus   EventPublisher
}

func NewNotificationService(repo repository.NotificationRepository, cacheReader CacheReader, bus EventPublisher) NotificationService {
	return &notificationService{repo: repo, cache: cacheReader, bus: bus}
}

// List reads from the notifications table, the source of truth.
func (s *notificationService) List(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.repo.ListByRecipient(ctx, userID)
}

// Recent reads the denormalized cache list. Entries cleared from the table may
// linger here until the TTL expires, that staleness window is accepted.
func (s *notificationService) Recent(ctx context.Context, userID string) ([]models.Notification, error) {
	entries, err := s.cache.ListRange(ctx, cache.NotificationKey(userID))
	if err != nil {
		return nil, err
	}

	notifications := make([]models.Notification, 0, len(entries))
	for _, entry := range entries {
		var n models.Notification
		if err := json.Unmarshal([]byte(entry), &n); err != nil {
			continue // skip undecodable entries rather than failing the read
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

// MarkAllRead and Clear go through the event pipeline, the caller does not
// wait for the bulk update to land.

func (s *notificationService) MarkAllRead(userID string) {
	s.bus.Publish(events.ReadEvent{UserID: userID})
}

func (s *notificationService) Clear(userID string) {
	s.bus.Publish(events.ClearEvent{UserID: userID})
}
