package service

import (
	"context"

	"socialnet/internal/apperror"
	"socialnet/internal/events"
	"socialnet/internal/models"
	"socialnet/internal/repository"
)

// EventPublisher is the emit side of the notification pipeline. The bus
// satisfies it; tests substitute a recorder.
type EventPublisher interface {
	Publish(event events.Event)
}

// ProfileUpdate carries the mutable profile fields.
type ProfileUpdate struct {
	FullName   string
	Bio        string
	ProfilePic string
	Gender     string
}

// UserService is the social-graph query engine: lookups, search, follow-edge
// mutations and the multi-hop traversals built on them.
type UserService interface {
	Find(ctx context.Context, id, username, email string) (*models.User, error)
	Search(ctx context.Context, pattern string, offset, limit int) ([]models.User, error)
	Follow(ctx context.Context, followerID, followedID string) error
	Unfollow(ctx context.Context, followerID, followedID string) error
	IsFollowing(ctx context.Context, followerID, followedID string) (bool, error)
	Followings(ctx context.Context, userID string, limit, offset int) ([]models.Follower, error)
	Followers(ctx context.Context, userID string, limit, offset int) ([]models.Follower, error)
	SuggestConnections(ctx context.Context, userID string, limit int) ([]models.User, error)
	FollowingFeed(ctx context.Context, userID string, limit int) ([]models.Post, error)
	Discover(ctx context.Context, userID string, limit int) ([]models.User, error)
	Count(ctx context.Context) (int64, error)
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*models.Profile, error)
	DeleteAccount(ctx context.Context, userID string) error
}

type userService struct {
	users   repository.UserRepository
	follows repository.FollowRepository
	posts   repository.PostRepository
	bus     EventPublisher
}

func NewUserService(
	users repository.UserRepository,
	follows repository.FollowRepository,
	posts repository.PostRepository,
	bus EventPublisher,
) UserService {
	return &userService{
		users:   users,
		follows: follows,
		posts:   posts,
		bus:     bus,
	}
}

// Find looks a user up by the first present selector: id, then username, then
// email. A miss is an absent result, not an error.
func (s *userService) Find(ctx context.Context, id, username, email string) (*models.User, error) {
	switch {
	case id != "":
		return s.users.FindByID(ctx, id)
	case username != "":
		return s.users.FindByUsername(ctx, username)
	case email != "":
		return s.users.FindByEmail(ctx, email)
	default:
		return nil, apperror.ValidationFailed("query", "id, username or email is required")
	}
}

func (s *userService) Search(ctx context.Context, pattern string, offset, limit int) ([]models.User, error) {
	if pattern == "" {
		return nil, apperror.ValidationFailed("pattern", "search pattern is required")
	}
	return s.users.SearchByUsername(ctx, pattern, offset, limit)
}

// Follow creates the edge and publishes the follow event after the edge
// committed. The event handler runs asynchronously, the caller does not wait
// for notification persistence.
func (s *userService) Follow(ctx context.Context, followerID, followedID string) error {
	if followerID == followedID {
		return apperror.ValidationFailed("followed_id", "cannot follow yourself")
	}

	target, err := s.users.FindByID(ctx, followedID)
	if err != nil {
		return err
	}
	if target == nil {
		return apperror.NotFound("user", followedID)
	}

	if err := s.follows.Create(ctx, followerID, followedID); err != nil {
		return err
	}

	s.bus.Publish(events.FollowEvent{From: followerID, To: followedID})
	return nil
}

// Unfollow deletes the edge. Unfollowing someone not followed is a no-op.
func (s *userService) Unfollow(ctx context.Context, followerID, followedID string) error {
	return s.follows.Delete(ctx, followerID, followedID)
}

func (s *userService) IsFollowing(ctx context.Context, followerID, followedID string) (bool, error) {
	return s.follows.Exists(ctx, followerID, followedID)
}

func (s *userService) Followings(ctx context.Context, userID string, limit, offset int) ([]models.Follower, error) {
	return s.follows.ListFollowings(ctx, userID, limit, offset)
}

func (s *userService) Followers(ctx context.Context, userID string, limit, offset int) ([]models.Follower, error) {
	return s.follows.ListFollowers(ctx, userID, limit, offset)
}

// SuggestConnections runs the two-hop "friends of friends" expansion. Phase
// one fetches who userID follows, phase two fetches who those users follow,
// and the flattened result excludes the requester. Users reachable through
// several intermediate followees appear once per path, the result is not a
// distinct set.
func (s *userService) SuggestConnections(ctx context.Context, userID string, limit int) ([]models.User, error) {
	followeeIDs, err := s.follows.FolloweeIDs(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	if len(followeeIDs) == 0 {
		return []models.User{}, nil
	}

	edges, err := s.follows.FolloweesOf(ctx, followeeIDs, limit)
	if err != nil {
		return nil, err
	}

	suggestions := make([]models.User, 0, len(edges))
	for _, edge := range edges {
		if edge.FollowedID == userID || edge.Followed == nil {
			continue
		}
		suggestions = append(suggestions, *edge.Followed)
	}
	return suggestions, nil
}

// FollowingFeed assembles posts authored by the users userID follows. The
// limit bounds the follow edges walked, and the feed keeps the edge order:
// posts of the newest-followed user come first, regardless of post age.
func (s *userService) FollowingFeed(ctx context.Context, userID string, limit int) ([]models.Post, error) {
	edges, err := s.follows.ListFollowings(ctx, userID, limit, 0)
	if err != nil {
		return nil, err
	}

	feed := make([]models.Post, 0, len(edges))
	for _, edge := range edges {
		posts, err := s.posts.ListByAuthor(ctx, edge.FollowedID, -1)
		if err != nil {
			return nil, err
		}
		feed = append(feed, posts...)
	}
	return feed, nil
}

func (s *userService) Discover(ctx context.Context, userID string, limit int) ([]models.User, error) {
	return s.users.ListExcluding(ctx, userID, limit)
}

func (s *userService) Count(ctx context.Context) (int64, error) {
	return s.users.Count(ctx)
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*models.Profile, error) {
	if update.Gender != "" && update.Gender != "male" && update.Gender != "female" {
		return nil, apperror.ValidationFailed("gender", "gender must be male or female")
	}

	profile, err := s.users.FindProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("profile", userID)
	}

	profile.FullName = update.FullName
	profile.Bio = update.Bio
	profile.ProfilePic = update.ProfilePic
	profile.Gender = update.Gender

	if err := s.users.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *userService) DeleteAccount(ctx context.Context, userID string) error {
	return s.users.Delete(ctx, userID)
}
