package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"socialnet/internal/dto"
	"socialnet/internal/service"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRoutes registers user and follow-graph routes
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("", h.Search) // ?q=pattern
		users.GET("/count", h.Count)
		users.GET("/discover", h.Discover)
		users.GET("/:username", h.GetByUsername)
	}

	follows := router.Group("/follows")
	{
		follows.POST("/:id", h.Follow)
		follows.DELETE("/:id", h.Unfollow)
		follows.GET("/:id", h.IsFollowing)
	}

	me := router.Group("/me")
	{
		me.GET("/followings", h.Followings)
		me.GET("/followers", h.Followers)
		me.GET("/suggestions", h.Suggestions)
		me.GET("/feed", h.Feed)
		me.PUT("/profile", h.UpdateProfile)
		me.DELETE("", h.DeleteAccount)
	}
}

// GetByUsername looks a user up by username (case-insensitive)
// GET /api/users/:username
func (h *UserHandler) GetByUsername(c *gin.Context) {
	user, err := h.userService.Find(c.Request.Context(), "", c.Param("username"), "")
	if err != nil {
		respondError(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// Search finds users whose username contains the query text
// GET /api/users?q=al&limit=20&offset=0
func (h *UserHandler) Search(c *gin.Context) {
	limit, offset := pagination(c)
	users, err := h.userService.Search(c.Request.Context(), c.Query("q"), offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Count returns the total number of users
// GET /api/users/count
func (h *UserHandler) Count(c *gin.Context) {
	count, err := h.userService.Count(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// Discover lists users other than the caller, with their follower edges
// GET /api/users/discover
func (h *UserHandler) Discover(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	limit, _ := pagination(c)
	users, err := h.userService.Discover(c.Request.Context(), userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Follow creates a follow edge from the caller to :id
// POST /api/follows/:id
func (h *UserHandler) Follow(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.userService.Follow(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "followed"})
}

// Unfollow removes the follow edge, succeeding even if it never existed
// DELETE /api/follows/:id
func (h *UserHandler) Unfollow(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.userService.Unfollow(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "unfollowed"})
}

// IsFollowing reports whether the caller follows :id
// GET /api/follows/:id
func (h *UserHandler) IsFollowing(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	following, err := h.userService.IsFollowing(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"following": following})
}

// Followings lists who the caller follows, newest follow first
// GET /api/me/followings
func (h *UserHandler) Followings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	limit, offset := pagination(c)
	edges, err := h.userService.Followings(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, edges)
}

// Followers lists who follows the caller, newest follow first
// GET /api/me/followers
func (h *UserHandler) Followers(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	limit, offset := pagination(c)
	edges, err := h.userService.Followers(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, edges)
}

// Suggestions runs the friends-of-friends expansion for the caller
// GET /api/me/suggestions
func (h *UserHandler) Suggestions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	limit, _ := pagination(c)
	users, err := h.userService.SuggestConnections(c.Request.Context(), userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Feed assembles posts from followed users, ordered by follow recency
// GET /api/me/feed
func (h *UserHandler) Feed(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	limit, _ := pagination(c)
	posts, err := h.userService.FollowingFeed(c.Request.Context(), userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// UpdateProfile updates the caller's profile fields
// PUT /api/me/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.userService.UpdateProfile(c.Request.Context(), userID, service.ProfileUpdate{
		FullName:   req.FullName,
		Bio:        req.Bio,
		ProfilePic: req.ProfilePic,
		Gender:     req.Gender,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// DeleteAccount removes the caller's account and everything cascading from it
// DELETE /api/me
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.userService.DeleteAccount(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}
