package service

import (
	"context"

	"socialnet/internal/events"
	"socialnet/internal/models"
)

// Handwritten mocks implementing the repository interfaces.

type mockUserRepo struct {
	usersByID       map[string]*models.User
	usersByUsername map[string]*models.User
	usersByEmail    map[string]*models.User
	created         []*models.User
	createErr       error
	profile         *models.Profile
	savedProfiles   []*models.Profile
	deleted         []string
	deleteErr       error
	searchResults   []models.User
	countValue      int64
}

func (m *mockUserRepo) CreateWithProfile(ctx context.Context, user *models.User, profile *models.Profile) error {
	if m.createErr != nil {
		return m.createErr
	}
	profile.UserID = user.ID
	m.created = append(m.created, user)
	return nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	return m.usersByID[id], nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.usersByEmail[email], nil
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return m.usersByUsername[username], nil
}

func (m *mockUserRepo) SearchByUsername(ctx context.Context, pattern string, offset, limit int) ([]models.User, error) {
	return m.searchResults, nil
}

func (m *mockUserRepo) ListExcluding(ctx context.Context, userID string, limit int) ([]models.User, error) {
	return m.searchResults, nil
}

func (m *mockUserRepo) Count(ctx context.Context) (int64, error) {
	return m.countValue, nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockUserRepo) FindProfileByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	return m.profile, nil
}

func (m *mockUserRepo) SaveProfile(ctx context.Context, profile *models.Profile) error {
	m.savedProfiles = append(m.savedProfiles, profile)
	return nil
}

type followPair struct {
	followerID string
	followedID string
}

type mockFollowRepo struct {
	existing    map[followPair]bool
	created     []followPair
	createErr   error
	deleted     []followPair
	followings  []models.Follower
	followers   []models.Follower
	followeeIDs []string
	followeesOf []models.Follower
}

func (m *mockFollowRepo) Exists(ctx context.Context, followerID, followedID string) (bool, error) {
	return m.existing[followPair{followerID, followedID}], nil
}

func (m *mockFollowRepo) Create(ctx context.Context, followerID, followedID string) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, followPair{followerID, followedID})
	return nil
}

func (m *mockFollowRepo) Delete(ctx context.Context, followerID, followedID string) error {
	m.deleted = append(m.deleted, followPair{followerID, followedID})
	return nil
}

func (m *mockFollowRepo) ListFollowings(ctx context.Context, userID string, limit, offset int) ([]models.Follower, error) {
	return m.followings, nil
}

func (m *mockFollowRepo) ListFollowers(ctx context.Context, userID string, limit, offset int) ([]models.Follower, error) {
	return m.followers, nil
}

func (m *mockFollowRepo) FolloweeIDs(ctx context.Context, userID string, limit int) ([]string, error) {
	return m.followeeIDs, nil
}

func (m *mockFollowRepo) FolloweesOf(ctx context.Context, userIDs []string, limit int) ([]models.Follower, error) {
	return m.followeesOf, nil
}

type mockPostRepo struct {
	postsByID     map[string]*models.Post
	postsByAuthor map[string][]models.Post
	created       []*models.Post
	likes         []followPair // (postID, userID)
	likeErr       error
	unlikes       []followPair
	comments      []*models.Comment
	replies       []*models.Reply
	saves         []followPair
	unsaves       []followPair
	deleted       []string
	deleteErr     error
}

func (m *mockPostRepo) Create(ctx context.Context, post *models.Post) error {
	m.created = append(m.created, post)
	return nil
}

func (m *mockPostRepo) FindByID(ctx context.Context, id string) (*models.Post, error) {
	return m.postsByID[id], nil
}

func (m *mockPostRepo) Delete(ctx context.Context, id, userID string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockPostRepo) ListByAuthor(ctx context.Context, authorID string, limit int) ([]models.Post, error) {
	return m.postsByAuthor[authorID], nil
}

func (m *mockPostRepo) AddComment(ctx context.Context, postID string, comment *models.Comment) error {
	m.comments = append(m.comments, comment)
	return nil
}

func (m *mockPostRepo) AddReply(ctx context.Context, reply *models.Reply) error {
	m.replies = append(m.replies, reply)
	return nil
}

func (m *mockPostRepo) CommentsByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	return nil, nil
}

func (m *mockPostRepo) Like(ctx context.Context, postID, userID string) error {
	if m.likeErr != nil {
		return m.likeErr
	}
	m.likes = append(m.likes, followPair{postID, userID})
	return nil
}

func (m *mockPostRepo) Unlike(ctx context.Context, postID, userID string) error {
	m.unlikes = append(m.unlikes, followPair{postID, userID})
	return nil
}

func (m *mockPostRepo) Save(ctx context.Context, postID, userID string) error {
	m.saves = append(m.saves, followPair{postID, userID})
	return nil
}

func (m *mockPostRepo) Unsave(ctx context.Context, postID, userID string) error {
	m.unsaves = append(m.unsaves, followPair{postID, userID})
	return nil
}

func (m *mockPostRepo) ListSaved(ctx context.Context, userID string) ([]models.SavePost, error) {
	return nil, nil
}

// mockPublisher records published events synchronously.
type mockPublisher struct {
	published []events.Event
}

func (m *mockPublisher) Publish(event events.Event) {
	m.published = append(m.published, event)
}
