package models

import (
	"strings"
	"time"
)

// User is the internal user record. Rows are provisioned lazily the first
// time an externally authenticated principal is seen and are never
// hard-deleted.
type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	FirebaseUID string    `json:"-" gorm:"size:128;uniqueIndex"` // external identity reference
	Username    string    `json:"username" gorm:"size:50;uniqueIndex"`
	Name        string    `json:"name"`
	Email       string    `json:"email" gorm:"uniqueIndex:idx_users_email,where:email <> ''"` // phone-only sign-ins have no email
	Bio         string    `json:"bio,omitempty"`
	Location    string    `json:"location,omitempty"`
	Website     string    `json:"website,omitempty"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}

// UserCompact is the public profile shape embedded in posts, comments and
// notifications.
type UserCompact struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Image    string `json:"image,omitempty"`
}

func (u *User) ToCompact() UserCompact {
	return UserCompact{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Image:    u.Image,
	}
}

// ExternalPrincipal carries the identity provider's view of the current
// request's principal, as extracted from a verified ID token.
type ExternalPrincipal struct {
	UID     string
	Name    string
	Handle  string
	Email   string
	Picture string
}

// NormalizeUsername lower-cases and trims a handle before lookup or storage.
func NormalizeUsername(handle string) string {
	return strings.ToLower(strings.TrimSpace(handle))
}

// UpdateProfileRequest defines the request body for updating the
// authenticated user's own profile
type UpdateProfileRequest struct {
	Name     string `json:"name,omitempty" validate:"omitempty,min=2,max=50"`
	Bio      string `json:"bio,omitempty" validate:"omitempty,max=160"`
	Location string `json:"location,omitempty" validate:"omitempty,max=100"`
	Website  string `json:"website,omitempty" validate:"omitempty,max=200"`
}
