package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/arkodeep/socially/backend/internal/middleware"
	"github.com/arkodeep/socially/backend/internal/models"
	"github.com/arkodeep/socially/backend/internal/repositories"
	"github.com/arkodeep/socially/backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// testEnv wires the full HTTP surface against an in-memory database. The
// principal is injected per request instead of going through token
// verification.
type testEnv struct {
	e             *echo.Echo
	db            *gorm.DB
	users         repositories.UserRepository
	posts         repositories.PostRepository
	likes         repositories.LikeRepository
	comments      repositories.CommentRepository
	follows       repositories.FollowRepository
	notifications repositories.NotificationRepository

	principal models.ExternalPrincipal
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
		&models.Follow{},
		&models.Notification{},
	))

	env := &testEnv{
		e:             echo.New(),
		db:            db,
		users:         repositories.NewPostgresUserRepository(db),
		posts:         repositories.NewPostgresPostRepository(db),
		likes:         repositories.NewPostgresLikeRepository(db),
		comments:      repositories.NewPostgresCommentRepository(db),
		follows:       repositories.NewPostgresFollowRepository(db),
		notifications: repositories.NewPostgresNotificationRepository(db),
	}
	env.e.Validator = validators.NewValidator()

	inject := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if env.principal.UID != "" {
				middleware.SetPrincipal(c, env.principal)
			}
			return next(c)
		}
	}
	public := env.e.Group("/api/v1", inject)
	protected := env.e.Group("/api/v1", inject)

	NewUserHandler(env.users, env.posts, env.follows).RegisterUserRoutes(public, protected)
	NewPostHandler(env.posts, env.users).RegisterPostRoutes(public, protected)
	NewLikeHandler(env.likes, env.users).RegisterLikeRoutes(public, protected)
	NewCommentHandler(env.comments, env.users).RegisterCommentRoutes(public, protected)
	NewFollowHandler(env.follows, env.users).RegisterFollowRoutes(public, protected)
	NewNotificationHandler(env.notifications, env.users).RegisterNotificationRoutes(protected)

	return env
}

// asUser makes subsequent requests act as the given principal and returns
// the provisioned user record.
func (env *testEnv) asUser(t *testing.T, p models.ExternalPrincipal) *models.User {
	t.Helper()
	env.principal = p
	user, err := env.users.GetOrProvision(p)
	require.NoError(t, err)
	return user
}

func (env *testEnv) anonymous() {
	env.principal = models.ExternalPrincipal{}
}

type envelope struct {
	Success bool            `json:"success"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func (env *testEnv) do(t *testing.T, method, path string, body io.Reader) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)

	var resp envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "body: %s", rec.Body.String())
	}
	return rec.Code, resp
}

func jsonBody(s string) io.Reader { return strings.NewReader(s) }

func alicePrincipal() models.ExternalPrincipal {
	return models.ExternalPrincipal{UID: "uid-alice", Name: "Alice", Handle: "alice", Email: "alice@example.com"}
}

func bobPrincipal() models.ExternalPrincipal {
	return models.ExternalPrincipal{UID: "uid-bob", Name: "Bob", Handle: "bob", Email: "bob@example.com"}
}
