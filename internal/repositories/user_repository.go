package repositories

import (
	"errors"
	"strings"

	"github.com/arkodeep/socially/backend/internal/apperr"
	"github.com/arkodeep/socially/backend/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	GetOrProvision(principal models.ExternalPrincipal) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	GetUserByFirebaseUID(firebaseUID string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	UpdateUser(user *models.User) error
	SearchUsers(query string) ([]models.User, error)
}

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// GetOrProvision resolves the external principal to an internal user,
// creating the row on first sight. Provisioning is idempotent under races:
// the insert relies on the unique index on firebase_uid, and a losing
// concurrent create falls back to reading the winner's row.
func (r *PostgresUserRepository) GetOrProvision(principal models.ExternalPrincipal) (*models.User, error) {
	var user models.User
	err := r.db.Where("firebase_uid = ?", principal.UID).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Wrap(apperr.CodeUnavailable, "identity unavailable", err)
	}

	user = models.User{
		FirebaseUID: principal.UID,
		Username:    usernameFor(principal),
		Name:        displayNameFor(principal),
		Email:       principal.Email,
		Image:       principal.Picture,
	}
	if err := r.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing models.User
			if ferr := r.db.Where("firebase_uid = ?", principal.UID).First(&existing).Error; ferr == nil {
				return &existing, nil
			}
		}
		return nil, apperr.Wrap(apperr.CodeUnavailable, "identity unavailable", err)
	}
	return &user, nil
}

// usernameFor picks the provider handle when present, then the local part
// of the email address, normalized either way. Principals carrying neither
// (phone-only sign-ins) fall back to a uid-derived handle so the unique
// username index never sees an empty value.
func usernameFor(principal models.ExternalPrincipal) string {
	if handle := models.NormalizeUsername(principal.Handle); handle != "" {
		return handle
	}
	local, _, _ := strings.Cut(principal.Email, "@")
	if local = models.NormalizeUsername(local); local != "" {
		return local
	}
	return models.NormalizeUsername("user_" + principal.UID)
}

func displayNameFor(principal models.ExternalPrincipal) string {
	if name := strings.TrimSpace(principal.Name); name != "" {
		return name
	}
	return usernameFor(principal)
}

// GetUserByID retrieves a user by ID from PostgreSQL
func (r *PostgresUserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.CodeNotFound, "user not found")
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByFirebaseUID retrieves a user by Firebase UID from PostgreSQL
func (r *PostgresUserRepository) GetUserByFirebaseUID(firebaseUID string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("firebase_uid = ?", firebaseUID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.CodeNotFound, "user not found")
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by normalized username
func (r *PostgresUserRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", models.NormalizeUsername(username)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.CodeNotFound, "user not found")
		}
		return nil, err
	}
	return &user, nil
}

// UpdateUser updates an existing user in PostgreSQL
func (r *PostgresUserRepository) UpdateUser(user *models.User) error {
	return r.db.Save(user).Error
}

// SearchUsers searches for users by username or name (case-insensitive)
func (r *PostgresUserRepository) SearchUsers(query string) ([]models.User, error) {
	var users []models.User
	if err := r.db.Where("LOWER(username) LIKE LOWER(?) OR LOWER(name) LIKE LOWER(?)", "%"+query+"%", "%"+query+"%").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
