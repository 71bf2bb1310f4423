package handlers

import (
	"github.com/arkodeep/socially/backend/internal/apperr"
	"github.com/arkodeep/socially/backend/internal/middleware"
	"github.com/arkodeep/socially/backend/internal/models"
	"github.com/arkodeep/socially/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// respondOK wraps data in the uniform success envelope.
func respondOK(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, echo.Map{"success": true, "data": data})
}

// respondError maps the error taxonomy to an HTTP status and reports the
// short human-readable reason. Handlers never propagate an unhandled fault
// past this point.
func respondError(c echo.Context, err error) error {
	return c.JSON(apperr.HTTPStatus(err), echo.Map{"success": false, "error": apperr.Message(err)})
}

// currentUser resolves the acting principal to its internal user record,
// provisioning it on first sight. Unauthenticated requests fail with
// Unauthorized; provisioning failures surface as identity unavailable.
func currentUser(c echo.Context, users repositories.UserRepository) (*models.User, error) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return nil, apperr.New(apperr.CodeUnauthorized, "not authenticated")
	}
	return users.GetOrProvision(principal)
}
