package models

import "time"

// Comment represents a comment on a post. Comments are append-only: there
// is no edit or delete path.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"index"`
	AuthorID  uint      `json:"author_id" gorm:"index"`
	Author    *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=500"`
}
