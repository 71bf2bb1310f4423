package handlers

import (
	"net/http"

	"github.com/arkodeep/socially/backend/internal/caption"
	"github.com/arkodeep/socially/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// CaptionHandler exposes the AI caption assistant
type CaptionHandler struct {
	assistant      *caption.Assistant
	userRepository repositories.UserRepository
}

// NewCaptionHandler creates a new CaptionHandler
func NewCaptionHandler(assistant *caption.Assistant, userRepo repositories.UserRepository) *CaptionHandler {
	return &CaptionHandler{
		assistant:      assistant,
		userRepository: userRepo,
	}
}

// RegisterCaptionRoutes registers AI caption routes
func (h *CaptionHandler) RegisterCaptionRoutes(g *echo.Group) {
	g.POST("/ai/caption", h.GenerateCaption)
	g.POST("/ai/caption/improve", h.ImproveCaption)
}

// GenerateCaptionRequest defines the request body for generating a caption
type GenerateCaptionRequest struct {
	Topic string `json:"topic"`
}

// ImproveCaptionRequest defines the request body for improving a caption
type ImproveCaptionRequest struct {
	Caption string `json:"caption"`
}

// GenerateCaption generates a caption for a topic
func (h *CaptionHandler) GenerateCaption(c echo.Context) error {
	if _, err := currentUser(c, h.userRepository); err != nil {
		return respondError(c, err)
	}

	var req GenerateCaptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	result, err := h.assistant.Generate(c.Request().Context(), req.Topic)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, http.StatusOK, echo.Map{"caption": result})
}

// ImproveCaption rewrites an existing caption shorter and punchier
func (h *CaptionHandler) ImproveCaption(c echo.Context) error {
	if _, err := currentUser(c, h.userRepository); err != nil {
		return respondError(c, err)
	}

	var req ImproveCaptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	result, err := h.assistant.Improve(c.Request().Context(), req.Caption)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, http.StatusOK, echo.Map{"caption": result})
}
