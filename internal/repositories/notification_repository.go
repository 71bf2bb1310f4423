package repositories

import (
	"github.com/arkodeep/socially/backend/internal/models"
	"gorm.io/gorm"
)

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	GetByRecipientID(recipientID uint) ([]models.Notification, error)
	GetUnreadCount(recipientID uint) (int64, error)
	MarkRead(recipientID uint, notificationIDs []uint) error
	MarkAllAsRead(recipientID uint) error
}

type postgresNotificationRepository struct {
	db *gorm.DB
}

func NewPostgresNotificationRepository(db *gorm.DB) NotificationRepository {
	return &postgresNotificationRepository{db: db}
}

// GetByRecipientID returns all notifications addressed to the recipient,
// newest-first, with the creator's public profile and the referenced
// post/comment preloaded. Rows whose creator reference has gone dangling
// are filtered out; that should not occur since users are never
// hard-deleted, but a stale row must not break the feed.
func (r *postgresNotificationRepository) GetByRecipientID(recipientID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.
		Preload("Creator").
		Preload("Post").
		Preload("Comment").
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}

	valid := notifications[:0]
	for _, n := range notifications {
		if n.Creator == nil {
			continue
		}
		valid = append(valid, n)
	}
	return valid, nil
}

func (r *postgresNotificationRepository) GetUnreadCount(recipientID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).Where("recipient_id = ? AND read = ?", recipientID, false).Count(&count).Error
	return count, err
}

// MarkRead bulk-sets read=true for the given ids. The update is scoped to
// the recipient, so ids belonging to someone else are silently ignored.
// An empty id set is a no-op.
func (r *postgresNotificationRepository) MarkRead(recipientID uint, notificationIDs []uint) error {
	if len(notificationIDs) == 0 {
		return nil
	}
	return r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND id IN ?", recipientID, notificationIDs).
		Update("read", true).Error
}

func (r *postgresNotificationRepository) MarkAllAsRead(recipientID uint) error {
	return r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND read = ?", recipientID, false).
		Update("read", true).Error
}
