package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"socialnet/internal/dto"
	"socialnet/internal/service"
)

type PostHandler struct {
	postService service.PostService
}

func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// RegisterRoutes registers post, comment and like routes
func (h *PostHandler) RegisterRoutes(router *gin.RouterGroup) {
	posts := router.Group("/posts")
	{
		posts.POST("", h.Create)
		posts.GET("/:id", h.GetByID)
		posts.DELETE("/:id", h.Delete)
		posts.POST("/:id/like", h.Like)
		posts.DELETE("/:id/like", h.Unlike)
		posts.GET("/:id/comments", h.Comments)
		posts.POST("/:id/comments", h.Comment)
		posts.POST("/:id/save", h.Save)
		posts.DELETE("/:id/save", h.Unsave)
	}

	router.POST("/comments/:id/replies", h.Reply)
	router.GET("/me/saved", h.Saved)
}

// Create creates a new post with optional image and tags
// POST /api/posts
func (h *PostHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postService.Create(c.Request.Context(), userID, req.Text, req.Image, req.Tags)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// GetByID returns a post with its comments, likes, tags and author
// GET /api/posts/:id
func (h *PostHandler) GetByID(c *gin.Context) {
	post, err := h.postService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// Delete removes the caller's own post
// DELETE /api/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.postService.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}

// Like likes a post, notifying its author
// POST /api/posts/:id/like
func (h *PostHandler) Like(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.postService.Like(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "liked"})
}

// Unlike removes the caller's like
// DELETE /api/posts/:id/like
func (h *PostHandler) Unlike(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.postService.Unlike(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "unliked"})
}

// Comments lists a post's comments with replies and authors
// GET /api/posts/:id/comments
func (h *PostHandler) Comments(c *gin.Context) {
	comments, err := h.postService.Comments(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// Comment adds a comment to a post
// POST /api/posts/:id/comments
func (h *PostHandler) Comment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.postService.Comment(c.Request.Context(), c.Param("id"), userID, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// Reply adds a reply to a comment
// POST /api/comments/:id/replies
func (h *PostHandler) Reply(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.postService.Reply(c.Request.Context(), c.Param("id"), userID, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reply)
}

// Save bookmarks a post for the caller
// POST /api/posts/:id/save
func (h *PostHandler) Save(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.postService.SavePost(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "saved"})
}

// Unsave removes a bookmark
// DELETE /api/posts/:id/save
func (h *PostHandler) Unsave(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.postService.UnsavePost(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "unsaved"})
}

// Saved lists the caller's bookmarked posts
// GET /api/me/saved
func (h *PostHandler) Saved(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	saves, err := h.postService.Saved(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saves)
}
