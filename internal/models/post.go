package models

import "time"

// Post represents a social media post. At least one of Content/Image must
// be non-empty; deleting a post cascades to its likes, comments and
// notifications through the foreign keys declared on the association
// fields.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AuthorID  uint      `json:"author_id" gorm:"index"`
	Author    *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Content   string    `json:"content"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"-"`

	Likes         []Like         `json:"likes,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Comments      []Comment      `json:"comments,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Notifications []Notification `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Content string `json:"content" validate:"omitempty,max=280"`
	Image   string `json:"image,omitempty" validate:"omitempty,max=500"`
}
