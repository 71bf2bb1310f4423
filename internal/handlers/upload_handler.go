package handlers

import (
	"net/http"
	"path"
	"strings"

	"github.com/arkodeep/socially/backend/internal/apperr"
	"github.com/arkodeep/socially/backend/internal/repositories"
	"github.com/arkodeep/socially/backend/pkg/storage"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxUploadSize caps image payloads at 4 MB.
const maxUploadSize = 4 << 20

// UploadHandler accepts image uploads for posts
type UploadHandler struct {
	uploader       storage.Uploader
	userRepository repositories.UserRepository
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(uploader storage.Uploader, userRepo repositories.UserRepository) *UploadHandler {
	return &UploadHandler{
		uploader:       uploader,
		userRepository: userRepo,
	}
}

// RegisterUploadRoutes registers upload routes
func (h *UploadHandler) RegisterUploadRoutes(g *echo.Group) {
	g.POST("/uploads", h.UploadImage)
}

// UploadImage stores a multipart image payload and returns its public URL
func (h *UploadHandler) UploadImage(c echo.Context) error {
	if _, err := currentUser(c, h.userRepository); err != nil {
		return respondError(c, err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return respondError(c, apperr.New(apperr.CodeValidation, "no file provided"))
	}
	if fileHeader.Size > maxUploadSize {
		return respondError(c, apperr.New(apperr.CodeValidation, "file exceeds the 4MB limit"))
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return respondError(c, apperr.New(apperr.CodeValidation, "only image uploads are allowed"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return respondError(c, apperr.Wrap(apperr.CodeValidation, "could not read file", err))
	}
	defer file.Close()

	key := "posts/" + uuid.NewString() + path.Ext(fileHeader.Filename)
	url, err := h.uploader.Upload(c.Request().Context(), key, file, contentType)
	if err != nil {
		return respondError(c, apperr.Wrap(apperr.CodeUnavailable, "failed to upload file", err))
	}

	return respondOK(c, http.StatusOK, echo.Map{"url": url})
}
