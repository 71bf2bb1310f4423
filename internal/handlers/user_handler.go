package handlers

import (
	"net/http"

	"github.com/arkodeep/socially/backend/internal/middleware"
	"github.com/arkodeep/socially/backend/internal/models"
	"github.com/arkodeep/socially/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// UserHandler handles HTTP requests related to users and profiles
type UserHandler struct {
	userRepository   repositories.UserRepository
	postRepository   repositories.PostRepository
	followRepository repositories.FollowRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, postRepo repositories.PostRepository, followRepo repositories.FollowRepository) *UserHandler {
	return &UserHandler{
		userRepository:   userRepo,
		postRepository:   postRepo,
		followRepository: followRepo,
	}
}

// RegisterUserRoutes registers user and profile routes. Profile reads are
// public; everything else requires an authenticated principal.
func (h *UserHandler) RegisterUserRoutes(public, protected *echo.Group) {
	public.GET("/profile/:username", h.GetProfile)
	public.GET("/profile/:username/posts", h.GetProfilePosts)
	public.GET("/profile/:username/likes", h.GetLikedPosts)
	protected.GET("/me", h.Me)
	protected.PUT("/me", h.UpdateProfile)
	protected.GET("/users/suggested", h.GetSuggestedUsers)
	protected.GET("/users/search", h.SearchUsers)
}

// Me resolves (and on first sight provisions) the authenticated user.
func (h *UserHandler) Me(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, http.StatusOK, user)
}

// profileResponse joins the public profile with its counts
type profileResponse struct {
	models.UserCompact
	Bio            string `json:"bio,omitempty"`
	Location       string `json:"location,omitempty"`
	Website        string `json:"website,omitempty"`
	PostsCount     int64  `json:"posts_count"`
	FollowersCount int64  `json:"followers_count"`
	FollowingCount int64  `json:"following_count"`
	IsFollowing    bool   `json:"is_following"`
}

// GetProfile returns a user's public profile by username. When the viewer
// is authenticated the response includes their follow status; identity
// failures only skip that personalization.
func (h *UserHandler) GetProfile(c echo.Context) error {
	user, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if err != nil {
		return respondError(c, err)
	}

	resp := profileResponse{
		UserCompact: user.ToCompact(),
		Bio:         user.Bio,
		Location:    user.Location,
		Website:     user.Website,
	}
	resp.PostsCount, _ = h.postRepository.GetPostsCountByAuthorID(user.ID)
	resp.FollowersCount, _ = h.followRepository.GetFollowersCount(user.ID)
	resp.FollowingCount, _ = h.followRepository.GetFollowingCount(user.ID)

	if principal, ok := middleware.PrincipalFrom(c); ok {
		if viewer, verr := h.userRepository.GetOrProvision(principal); verr == nil {
			resp.IsFollowing, _ = h.followRepository.IsFollowing(viewer.ID, user.ID)
		}
	}

	return respondOK(c, http.StatusOK, resp)
}

// GetProfilePosts returns a user's posts, newest-first
func (h *UserHandler) GetProfilePosts(c echo.Context) error {
	user, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if err != nil {
		return respondError(c, err)
	}
	posts, err := h.postRepository.GetPostsByAuthorID(user.ID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, http.StatusOK, posts)
}

// GetLikedPosts returns the posts a user has liked, newest-first
func (h *UserHandler) GetLikedPosts(c echo.Context) error {
	user, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if err != nil {
		return respondError(c, err)
	}
	posts, err := h.postRepository.GetLikedPosts(user.ID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, http.StatusOK, posts)
}

// UpdateProfile updates the authenticated user's own profile
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return respondError(c, err)
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	user.Bio = req.Bio
	user.Location = req.Location
	user.Website = req.Website

	if err := h.userRepository.UpdateUser(user); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, http.StatusOK, user)
}

// GetSuggestedUsers returns a few random users the viewer does not follow
func (h *UserHandler) GetSuggestedUsers(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return respondError(c, err)
	}
	users, err := h.followRepository.GetSuggestedUsers(user.ID, 3)
	if err != nil {
		return respondError(c, err)
	}
	compact := make([]models.UserCompact, len(users))
	for i := range users {
		compact[i] = users[i].ToCompact()
	}
	return respondOK(c, http.StatusOK, compact)
}

// SearchUsers searches users by username or name
func (h *UserHandler) SearchUsers(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return respondOK(c, http.StatusOK, []models.UserCompact{})
	}
	users, err := h.userRepository.SearchUsers(query)
	if err != nil {
		return respondError(c, err)
	}
	compact := make([]models.UserCompact, len(users))
	for i := range users {
		compact[i] = users[i].ToCompact()
	}
	return respondOK(c, http.StatusOK, compact)
}
