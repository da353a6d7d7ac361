package service

import (
	"context"

	"socialnet/internal/apperror"
	"socialnet/internal/events"
	"socialnet/internal/models"
	"socialnet/internal/repository"
)

type PostService interface {
	Create(ctx context.Context, userID, text, image string, tags []string) (*models.Post, error)
	Get(ctx context.Context, id string) (*models.Post, error)
	Delete(ctx context.Context, id, userID string) error
	Like(ctx context.Context, postID, userID string) error
	Unlike(ctx context.Context, postID, userID string) error
	Comment(ctx context.Context, postID, authorID, text string) (*models.Comment, error)
	Reply(ctx context.Context, commentID, authorID, text string) (*models.Reply, error)
	Comments(ctx context.Context, postID string) ([]models.Comment, error)
	SavePost(ctx context.Context, postID, userID string) error
	UnsavePost(ctx context.Context, postID, userID string) error
	Saved(ctx context.Context, userID string) ([]models.SavePost, error)
}

type postService struct {
	posts repository.PostRepository
	bus   EventPublisher
}

func NewPostService(posts repository.PostRepository, bus EventPublisher) PostService {
	return &postService{posts: posts, bus: bus}
}

func (s *postService) Create(ctx context.Context, userID, text, image string, tags []string) (*models.Post, error) {
	if text == "" {
		return nil, apperror.ValidationFailed("text", "post text is required")
	}

	post := &models.Post{
		UserID: userID,
		Text:   text,
		Image:  image,
	}
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		post.Tags = append(post.Tags, models.PostTag{Tag: tag})
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) Get(ctx context.Context, id string) (*models.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperror.NotFound("post", id)
	}
	return post, nil
}

func (s *postService) Delete(ctx context.Context, id, userID string) error {
	return s.posts.Delete(ctx, id, userID)
}

// Like records the like and notifies the post author through the pipeline.
// Liking your own post creates no notification.
func (s *postService) Like(ctx context.Context, postID, userID string) error {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return apperror.NotFound("post", postID)
	}

	if err := s.posts.Like(ctx, postID, userID); err != nil {
		return err
	}

	if post.UserID != userID {
		s.bus.Publish(events.LikeEvent{From: userID, To: post.UserID})
	}
	return nil
}

func (s *postService) Unlike(ctx context.Context, postID, userID string) error {
	return s.posts.Unlike(ctx, postID, userID)
}

func (s *postService) Comment(ctx context.Context, postID, authorID, text string) (*models.Comment, error) {
	if text == "" {
		return nil, apperror.ValidationFailed("text", "comment text is required")
	}

	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperror.NotFound("post", postID)
	}

	comment := &models.Comment{
		AuthorID: authorID,
		Text:     text,
	}
	if err := s.posts.AddComment(ctx, postID, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *postService) Reply(ctx context.Context, commentID, authorID, text string) (*models.Reply, error) {
	if text == "" {
		return nil, apperror.ValidationFailed("text", "reply text is required")
	}

	reply := &models.Reply{
		CommentID: commentID,
		AuthorID:  authorID,
		Text:      text,
	}
	if err := s.posts.AddReply(ctx, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

func (s *postService) Comments(ctx context.Context, postID string) ([]models.Comment, error) {
	return s.posts.CommentsByPost(ctx, postID)
}

func (s *postService) SavePost(ctx context.Context, postID, userID string) error {
	return s.posts.Save(ctx, postID, userID)
}

func (s *postService) UnsavePost(ctx context.Context, postID, userID string) error {
	return s.posts.Unsave(ctx, postID, userID)
}

func (s *postService) Saved(ctx context.Context, userID string) ([]models.SavePost, error) {
	return s.posts.ListSaved(ctx, userID)
}
