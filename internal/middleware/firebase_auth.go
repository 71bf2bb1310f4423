package middleware

import (
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/arkodeep/socially/backend/internal/models"
	"github.com/labstack/echo/v4"
)

const principalKey = "principal"

// FirebaseAuth creates an Echo middleware that verifies Firebase ID tokens
// and stores the external principal in the request context. With
// required=false an absent or invalid token is not an error: the request
// proceeds unauthenticated and mutation handlers reject it themselves.
func FirebaseAuth(authClient *auth.Client, required bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			idToken, ok := bearerToken(c.Request().Header.Get("Authorization"))
			if !ok {
				if required {
					return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header must be in Bearer format")
				}
				return next(c)
			}

			token, err := authClient.VerifyIDToken(c.Request().Context(), idToken)
			if err != nil {
				if required {
					return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired ID token")
				}
				return next(c)
			}

			c.Set(principalKey, principalFromToken(token))
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", false
	}
	return parts[1], true
}

func principalFromToken(token *auth.Token) models.ExternalPrincipal {
	p := models.ExternalPrincipal{UID: token.UID}
	if v, ok := token.Claims["name"].(string); ok {
		p.Name = v
	}
	if v, ok := token.Claims["email"].(string); ok {
		p.Email = v
	}
	if v, ok := token.Claims["picture"].(string); ok {
		p.Picture = v
	}
	if v, ok := token.Claims["preferred_username"].(string); ok {
		p.Handle = v
	}
	return p
}

// PrincipalFrom extracts the authenticated principal from the request
// context. The second return is false for unauthenticated requests.
func PrincipalFrom(c echo.Context) (models.ExternalPrincipal, bool) {
	p, ok := c.Get(principalKey).(models.ExternalPrincipal)
	return p, ok && p.UID != ""
}

// SetPrincipal injects a principal directly, bypassing token verification.
// Intended for tests.
func SetPrincipal(c echo.Context, p models.ExternalPrincipal) {
	c.Set(principalKey, p)
}
