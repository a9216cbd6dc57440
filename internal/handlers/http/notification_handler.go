package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"metahub/internal/core/domain"
	"metahub/internal/core/ports"
	apperrors "metahub/pkg/errors"
)

type NotificationHandler struct {
	notificationService ports.NotificationService
}

func NewNotificationHandler(notificationService ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) SetupRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	{
		api.GET("/notifications", h.ListNotifications)
		api.GET("/notifications/unread-count", h.GetUnreadCount)
		api.POST("/notifications/read-all", h.MarkAllRead)
		api.POST("/notifications/:id/read", h.MarkRead)
		api.DELETE("/notifications/:id", h.DeleteNotification)
	}
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	notifications, err := h.notificationService.List(c.Request.Context())
	if err != nil {
		failWith(c, apperrors.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"count":         len(notifications),
	})
}

func (h *NotificationHandler) GetUnreadCount(c *gin.Context) {
	count, err := h.notificationService.UnreadCount(c.Request.Context())
	if err != nil {
		failWith(c, apperrors.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread": count})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id := domain.NotificationID(c.Param("id"))

	if err := h.notificationService.MarkRead(c.Request.Context(), id); err != nil {
		failWith(c, apperrors.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "read"})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.notificationService.MarkAllRead(c.Request.Context()); err != nil {
		failWith(c, apperrors.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "read"})
}

func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	id := domain.NotificationID(c.Param("id"))

	if err := h.notificationService.Delete(c.Request.Context(), id); err != nil {
		failWith(c, apperrors.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
