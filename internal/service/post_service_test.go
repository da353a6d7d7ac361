package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialnet/internal/apperror"
	"socialnet/internal/events"
	"socialnet/internal/models"
)

func TestCreatePost(t *testing.T) {
	t.Run("RequiresText", func(t *testing.T) {
		svc := NewPostService(&mockPostRepo{}, &mockPublisher{})

		_, err := svc.Create(context.Background(), "user-a", "", "", nil)

		assert.True(t, errors.Is(err, apperror.ErrValidation))
	})

	t.Run("AttachesTags", func(t *testing.T) {
		posts := &mockPostRepo{}
		svc := NewPostService(posts, &mockPublisher{})

		post, err := svc.Create(context.Background(), "user-a", "hello", "", []string{"go", "", "social"})

		require.NoError(t, err)
		require.Len(t, posts.created, 1)
		require.Len(t, post.Tags, 2, "empty tags are dropped")
		assert.Equal(t, "go", post.Tags[0].Tag)
	})
}

func TestLikePost(t *testing.T) {
	t.Run("UnknownPostIsNotFound", func(t *testing.T) {
		bus := &mockPublisher{}
		svc := NewPostService(&mockPostRepo{}, bus)

		err := svc.Like(context.Background(), "ghost", "user-a")

		assert.True(t, errors.Is(err, apperror.ErrNotFound))
		assert.Empty(t, bus.published)
	})

	t.Run("NotifiesAuthor", func(t *testing.T) {
		posts := &mockPostRepo{postsByID: map[string]*models.Post{
			"post-1": {ID: "post-1", UserID: "user-b"},
		}}
		bus := &mockPublisher{}
		svc := NewPostService(posts, bus)

		err := svc.Like(context.Background(), "post-1", "user-a")

		require.NoError(t, err)
		assert.Equal(t, []followPair{{"post-1", "user-a"}}, posts.likes)
		require.Len(t, bus.published, 1)
		assert.Equal(t, events.LikeEvent{From: "user-a", To: "user-b"}, bus.published[0])
	})

	t.Run("OwnPostCreatesNoNotification", func(t *testing.T) {
		posts := &mockPostRepo{postsByID: map[string]*models.Post{
			"post-1": {ID: "post-1", UserID: "user-a"},
		}}
		bus := &mockPublisher{}
		svc := NewPostService(posts, bus)

		err := svc.Like(context.Background(), "post-1", "user-a")

		require.NoError(t, err)
		assert.Empty(t, bus.published)
	})

	t.Run("DuplicateLikeIsConflictWithoutEvent", func(t *testing.T) {
		posts := &mockPostRepo{
			postsByID: map[string]*models.Post{"post-1": {ID: "post-1", UserID: "user-b"}},
			likeErr:   apperror.Conflict("like", "post already liked"),
		}
		bus := &mockPublisher{}
		svc := NewPostService(posts, bus)

		err := svc.Like(context.Background(), "post-1", "user-a")

		assert.True(t, errors.Is(err, apperror.ErrConflict))
		assert.Empty(t, bus.published)
	})
}

func TestCommentOnPost(t *testing.T) {
	t.Run("RequiresText", func(t *testing.T) {
		svc := NewPostService(&mockPostRepo{}, &mockPublisher{})

		_, err := svc.Comment(context.Background(), "post-1", "user-a", "")

		assert.True(t, errors.Is(err, apperror.ErrValidation))
	})

	t.Run("UnknownPostIsNotFound", func(t *testing.T) {
		svc := NewPostService(&mockPostRepo{}, &mockPublisher{})

		_, err := svc.Comment(context.Background(), "ghost", "user-a", "nice")

		assert.True(t, errors.Is(err, apperror.ErrNotFound))
	})

	t.Run("CreatesComment", func(t *testing.T) {
		posts := &mockPostRepo{postsByID: map[string]*models.Post{
			"post-1": {ID: "post-1", UserID: "user-b"},
		}}
		svc := NewPostService(posts, &mockPublisher{})

		comment, err := svc.Comment(context.Background(), "post-1", "user-a", "nice")

		require.NoError(t, err)
		assert.Equal(t, "user-a", comment.AuthorID)
		require.Len(t, posts.comments, 1)
	})
}
