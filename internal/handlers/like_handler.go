package handlers

import (
	"net/http"

	"github.com/arkodeep/socially/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	likeRepository repositories.LikeRepository
	userRepository repositories.UserRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository, userRepo repositories.UserRepository) *LikeHandler {
	return &LikeHandler{
		likeRepository: likeRepo,
		userRepository: userRepo,
	}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(public, protected *echo.Group) {
	protected.POST("/posts/:id/like", h.ToggleLike)
	protected.GET("/posts/:id/like", h.GetLikeStatus)
	public.GET("/posts/:id/likes/count", h.GetLikesCount)
}

// ToggleLike likes the post if the user has not liked it, unlikes it
// otherwise
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return respondError(c, err)
	}

	postID, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	outcome, err := h.likeRepository.ToggleLike(user.ID, postID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, http.StatusOK, echo.Map{"liked": outcome == repositories.ToggleCreated})
}

// GetLikeStatus reports whether the authenticated user has liked the post
func (h *LikeHandler) GetLikeStatus(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return respondError(c, err)
	}

	postID, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	liked, err := h.likeRepository.HasUserLikedPost(postID, user.ID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, http.StatusOK, echo.Map{"liked": liked})
}

// GetLikesCount returns the number of likes on a post
func (h *LikeHandler) GetLikesCount(c echo.Context) error {
	postID, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	count, err := h.likeRepository.GetLikesCountByPostID(postID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, http.StatusOK, echo.Map{"post_id": postID, "likes_count": count})
}
