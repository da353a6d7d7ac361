package events

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialnet/internal/models"
)

// Mock repositories for testing
type mockNotificationRepo struct {
	mu            sync.Mutex
	notifications []*models.Notification
	createErr     error
	cleared       []string
	marked        []string
}

func (m *mockNotificationRepo) Create(ctx context.Context, notification *models.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	m.notifications = append(m.notifications, notification)
	return nil
}

func (m *mockNotificationRepo) ListByRecipient(ctx context.Context, userID string) ([]models.Notification, error) {
	return nil, nil
}

func (m *mockNotificationRepo) MarkAllRead(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.marked = append(m.marked, userID)
	return nil
}

func (m *mockNotificationRepo) DeleteAllForRecipient(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cleared = append(m.cleared, userID)
	return nil
}

type cacheCall struct {
	key   string
	value any
	ttl   time.Duration
}

type mockCache struct {
	mu    sync.Mutex
	calls []cacheCall
	err   error
}

func (m *mockCache) AddToList(ctx context.Context, key string, value any, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.calls = append(m.calls, cacheCall{key: key, value: value, ttl: ttl})
	return nil
}

func newTestBus(repo *mockNotificationRepo, cache *mockCache) *Bus {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewBus(repo, cache, logger, 604800*time.Second)
}

func TestFollowEventPersistsThenCaches(t *testing.T) {
	repo := &mockNotificationRepo{}
	cacheWriter := &mockCache{}
	bus := newTestBus(repo, cacheWriter)

	bus.Publish(FollowEvent{From: "user-a", To: "user-b"})
	bus.Wait()

	require.Len(t, repo.notifications, 1)
	n := repo.notifications[0]
	assert.Equal(t, "user-a", n.From)
	assert.Equal(t, "user-b", n.To)
	assert.Equal(t, models.NotificationTypeFollow, n.Type)
	assert.False(t, n.Read)

	require.Len(t, cacheWriter.calls, 1)
	assert.Equal(t, "notification:user-b", cacheWriter.calls[0].key)
	assert.Equal(t, 604800*time.Second, cacheWriter.calls[0].ttl)
	assert.Same(t, n, cacheWriter.calls[0].value)
}

func TestFollowEventCacheFailureIsNonFatal(t *testing.T) {
	repo := &mockNotificationRepo{}
	cacheWriter := &mockCache{err: errors.New("redis down")}
	bus := newTestBus(repo, cacheWriter)

	bus.Publish(FollowEvent{From: "user-a", To: "user-b"})
	bus.Wait()

	// The durable write still happened, the cache miss is only logged.
	require.Len(t, repo.notifications, 1)
	assert.Empty(t, cacheWriter.calls)
}

func TestFollowEventInsertFailureSkipsCache(t *testing.T) {
	repo := &mockNotificationRepo{createErr: errors.New("db down")}
	cacheWriter := &mockCache{}
	bus := newTestBus(repo, cacheWriter)

	bus.Publish(FollowEvent{From: "user-a", To: "user-b"})
	bus.Wait()

	assert.Empty(t, repo.notifications)
	assert.Empty(t, cacheWriter.calls, "cache must not be written when the durable write failed")
}

func TestLikeEventPersistsWithoutCacheWrite(t *testing.T) {
	repo := &mockNotificationRepo{}
	cacheWriter := &mockCache{}
	bus := newTestBus(repo, cacheWriter)

	bus.Publish(LikeEvent{From: "user-a", To: "user-b"})
	bus.Wait()

	require.Len(t, repo.notifications, 1)
	assert.Equal(t, models.NotificationTypeLike, repo.notifications[0].Type)
	assert.Empty(t, cacheWriter.calls)
}

func TestClearAndReadEvents(t *testing.T) {
	repo := &mockNotificationRepo{}
	bus := newTestBus(repo, &mockCache{})

	bus.Publish(ClearEvent{UserID: "user-b"})
	bus.Publish(ReadEvent{UserID: "user-b"})
	bus.Wait()

	assert.Equal(t, []string{"user-b"}, repo.cleared)
	assert.Equal(t, []string{"user-b"}, repo.marked)
}
