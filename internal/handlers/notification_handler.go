package handlers

import (
	"net/http"

	"github.com/arkodeep/socially/backend/internal/models"
	"github.com/arkodeep/socially/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// NotificationHandler handles notification-related HTTP requests
type NotificationHandler struct {
	notificationRepository repositories.NotificationRepository
	userRepository         repositories.UserRepository
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notifRepo repositories.NotificationRepository, userRepo repositories.UserRepository) *NotificationHandler {
	return &NotificationHandler{
		notificationRepository: notifRepo,
		userRepository:         userRepo,
	}
}

// RegisterNotificationRoutes registers notification routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.GetNotifications)
	g.GET("/notifications/unread-count", h.GetUnreadCount)
	g.PUT("/notifications/read", h.MarkRead)
	g.PUT("/notifications/read-all", h.MarkAllAsRead)
}

// GetNotifications returns the viewer's notifications, newest-first
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return respondError(c, err)
	}

	notifications, err := h.notificationRepository.GetByRecipientID(user.ID)
	if err != nil {
		return respondError(c, err)
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	return respondOK(c, http.StatusOK, echo.Map{"notifications": notifications})
}

// GetUnreadCount returns the unread notification count
func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return respondError(c, err)
	}

	count, err := h.notificationRepository.GetUnreadCount(user.ID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, http.StatusOK, echo.Map{"count": count})
}

// MarkRead bulk-marks the given notifications as read. Only the viewer's
// own notifications are affected.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return respondError(c, err)
	}

	var req models.MarkReadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	if err := h.notificationRepository.MarkRead(user.ID, req.NotificationIDs); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, http.StatusOK, echo.Map{"marked": len(req.NotificationIDs)})
}

// MarkAllAsRead marks every unread notification of the viewer as read
func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.notificationRepository.MarkAllAsRead(user.ID); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, http.StatusOK, echo.Map{"marked": true})
}
