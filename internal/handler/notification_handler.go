package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"socialnet/internal/service"
)

type NotificationHandler struct {
	notificationService service.NotificationService
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// RegisterRoutes registers notification routes
func (h *NotificationHandler) RegisterRoutes(router *gin.RouterGroup) {
	notifications := router.Group("/notifications")
	{
		notifications.GET("", h.List)
		notifications.GET("/recent", h.Recent)
		notifications.POST("/read", h.MarkAllRead)
		notifications.DELETE("", h.Clear)
	}
}

// List returns the caller's notifications from the authoritative store
// GET /api/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	notifications, err := h.notificationService.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// Recent returns the cached notification list, which may lag the store
// GET /api/notifications/recent
func (h *NotificationHandler) Recent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	notifications, err := h.notificationService.Recent(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// MarkAllRead marks every notification read, asynchronously
// POST /api/notifications/read
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	h.notificationService.MarkAllRead(userID)
	c.JSON(http.StatusAccepted, gin.H{"message": "marking notifications read"})
}

// Clear deletes every notification, asynchronously
// DELETE /api/notifications
func (h *NotificationHandler) Clear(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	h.notificationService.Clear(userID)
	c.JSON(http.StatusAccepted, gin.H{"message": "clearing notifications"})
}
