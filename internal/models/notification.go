package models

import "time"

// NotificationType enumerates the actions that fan out a notification.
type NotificationType string

const (
	NotificationLike    NotificationType = "LIKE"
	NotificationComment NotificationType = "COMMENT"
	NotificationFollow  NotificationType = "FOLLOW"
)

// Notification is created as a side effect of the create half of a
// like/comment/follow action, in the same transaction as the primary row,
// and never when the actor is also the recipient. Rows flip read=false to
// read=true in bulk only.
type Notification struct {
	ID          uint             `json:"id" gorm:"primaryKey"`
	Type        NotificationType `json:"type" gorm:"size:20;index"`
	RecipientID uint             `json:"recipient_id" gorm:"index"`
	CreatorID   uint             `json:"creator_id" gorm:"index"`
	Creator     *User            `json:"creator,omitempty" gorm:"foreignKey:CreatorID"`
	PostID      *uint            `json:"post_id,omitempty" gorm:"index"`
	Post        *Post            `json:"post,omitempty"`
	CommentID   *uint            `json:"comment_id,omitempty"`
	Comment     *Comment         `json:"comment,omitempty"`
	Read        bool             `json:"read" gorm:"default:false;index"`
	CreatedAt   time.Time        `json:"created_at" gorm:"index"`
}

// MarkReadRequest defines the request body for bulk-marking notifications
// as read
type MarkReadRequest struct {
	NotificationIDs []uint `json:"notification_ids"`
}
