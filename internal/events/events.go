// Package events implements the notification pipeline that decouples graph
// mutations from their notification side effects. The event set is closed and
// the handler wiring is fixed when the bus is constructed, there is no global
// emitter to register against at runtime.
package events

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"socialnet/internal/cache"
	"socialnet/internal/models"
	"socialnet/internal/repository"
)

// Event is the closed set of notification events. The unexported method keeps
// callers from introducing new kinds outside this package.
type Event interface {
	kind() string
}

// FollowEvent fires after a new follow edge committed.
type FollowEvent struct {
	From string
	To   string
}

// LikeEvent fires after a post like committed. To is the post author.
type LikeEvent struct {
	From string
	To   string
}

// ClearEvent deletes every notification addressed to UserID. Cached entries
// are left to expire via TTL.
type ClearEvent struct {
	UserID string
}

// ReadEvent marks every notification addressed to UserID as read.
type ReadEvent struct {
	UserID string
}

func (FollowEvent) kind() string { return "follow" }
func (LikeEvent) kind() string   { return "like" }
func (ClearEvent) kind() string  { return "clear" }
func (ReadEvent) kind() string   { return "read" }

// CacheWriter is the append-to-list-with-expiry contract the pipeline needs
// from the cache adapter.
type CacheWriter interface {
	AddToList(ctx context.Context, key string, value any, ttl time.Duration) error
}

type Bus struct {
	notifications  repository.NotificationRepository
	cache          CacheWriter
	logger         *slog.Logger
	cacheTTL       time.Duration
	handlerTimeout time.Duration
	wg             sync.WaitGroup
}

func NewBus(notifications repository.NotificationRepository, cacheWriter CacheWriter, logger *slog.Logger, cacheTTL time.Duration) *Bus {
	return &Bus{
		notifications:  notifications,
		cache:          cacheWriter,
		logger:         logger,
		cacheTTL:       cacheTTL,
		handlerTimeout: 10 * time.Second,
	}
}

// Publish dispatches the event asynchronously. The caller never blocks on the
// handler, the triggering mutation has already committed by the time this
// runs. Handler failures are logged, a failed handler is a missed
// notification, not a rolled-back mutation.
func (b *Bus) Publish(event Event) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), b.handlerTimeout)
		defer cancel()
		b.dispatch(ctx, event)
	}()
}

// Wait blocks until all in-flight handlers finish. Used at shutdown and in
// tests.
func (b *Bus) Wait() {
	b.wg.Wait()
}

func (b *Bus) dispatch(ctx context.Context, event Event) {
	switch e := event.(type) {
	case FollowEvent:
		b.handleFollow(ctx, e)
	case LikeEvent:
		b.handleLike(ctx, e)
	case ClearEvent:
		if err := b.notifications.DeleteAllForRecipient(ctx, e.UserID); err != nil {
			b.logger.Error("failed to clear notifications", "user_id", e.UserID, "error", err)
		}
	case ReadEvent:
		if err := b.notifications.MarkAllRead(ctx, e.UserID); err != nil {
			b.logger.Error("failed to mark notifications read", "user_id", e.UserID, "error", err)
		}
	}
}

// handleFollow persists the notification row first, the table is the source
// of truth. Only after the durable write succeeds is the cache list appended,
// and a cache failure is logged without failing the handler.
func (b *Bus) handleFollow(ctx context.Context, e FollowEvent) {
	notification := &models.Notification{
		From: e.From,
		To:   e.To,
		Type: models.NotificationTypeFollow,
		Read: false,
	}
	if err := b.notifications.Create(ctx, notification); err != nil {
		b.logger.Error("missed follow notification", "from", e.From, "to", e.To, "error", err)
		return
	}

	key := cache.NotificationKey(e.To)
	if err := b.cache.AddToList(ctx, key, notification, b.cacheTTL); err != nil {
		b.logger.Warn("notification cache write failed", "key", key, "error", err)
	}
}

func (b *Bus) handleLike(ctx context.Context, e LikeEvent) {
	notification := &models.Notification{
		From: e.From,
		To:   e.To,
		Type: models.NotificationTypeLike,
		Read: false,
	}
	if err := b.notifications.Create(ctx, notification); err != nil {
		b.logger.Error("missed like notification", "from", e.From, "to", e.To, "error", err)
	}
}
