package handlers

import (
	"net/http"
	"strconv"

	"github.com/arkodeep/socially/backend/internal/models"
	"github.com/arkodeep/socially/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository repositories.PostRepository
	userRepository repositories.UserRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, userRepo repositories.UserRepository) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		userRepository: userRepo,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(public, protected *echo.Group) {
	public.GET("/posts", h.GetFeed)
	public.GET("/posts/:id", h.GetPost)
	protected.POST("/posts", h.CreatePost)
	protected.DELETE("/posts/:id", h.DeletePost)
}

// GetFeed returns every post, newest-first
func (h *PostHandler) GetFeed(c echo.Context) error {
	posts, err := h.postRepository.GetAllPosts()
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, http.StatusOK, posts)
}

// GetPost returns a single post by ID
func (h *PostHandler) GetPost(c echo.Context) error {
	postID, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}
	post, err := h.postRepository.GetPostByID(postID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, http.StatusOK, post)
}

// CreatePost creates a new post for the authenticated user
func (h *PostHandler) CreatePost(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return respondError(c, err)
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.postRepository.CreatePost(user.ID, req.Content, req.Image)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, http.StatusCreated, post)
}

// DeletePost deletes a post owned by the authenticated user
func (h *PostHandler) DeletePost(c echo.Context) error {
	user, err := currentUser(c, h.userRepository)
	if err != nil {
		return respondError(c, err)
	}

	postID, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	if err := h.postRepository.DeletePost(user.ID, postID); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, http.StatusOK, echo.Map{"deleted": true})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	return uint(id), err
}
