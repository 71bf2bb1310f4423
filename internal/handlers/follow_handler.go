package handlers

import (
	"net/http"

	"github.com/arkodeep/socially/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	followRepository repositories.FollowRepository
	userRepository   repositories.UserRepository
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followRepo repositories.FollowRepository, userRepo repositories.UserRepository) *FollowHandler {
	return &FollowHandler{
		followRepository: followRepo,
		userRepository:   userRepo,
	}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(public, protected *echo.Group) {
	protected.POST("/users/:id/follow", h.ToggleFollow)
	protected.GET("/users/:id/follow", h.GetFollowStatus)
	public.GET("/users/:id/followers", h.GetFollowers)
	public.GET("/users/:id/following", h.GetFollowing)
}

// ToggleFollow follows the target if no edge exists, unfollows otherwise
func (h *FollowHandler) ToggleFollow(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return respondError(c, err)
	}

	targetID, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	if _, err := h.userRepository.GetUserByID(targetID); err != nil {
		return respondError(c, err)
	}

	outcome, err := h.followRepository.ToggleFollow(user.ID, targetID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, http.StatusOK, echo.Map{"following": outcome == repositories.ToggleCreated})
}

// GetFollowStatus reports whether the authenticated user follows the target
func (h *FollowHandler) GetFollowStatus(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return respondError(c, err)
	}

	targetID, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	following, err := h.followRepository.IsFollowing(user.ID, targetID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, http.StatusOK, echo.Map{"following": following})
}

// GetFollowers lists the users following the target
func (h *FollowHandler) GetFollowers(c echo.Context) error {
	targetID, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	users, err := h.followRepository.GetFollowers(targetID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, http.StatusOK, users)
}

// GetFollowing lists the users the target follows
func (h *FollowHandler) GetFollowing(c echo.Context) error {
	targetID, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	users, err := h.followRepository.GetFollowing(targetID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, http.StatusOK, users)
}
