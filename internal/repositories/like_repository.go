package repositories

import (
	"errors"

	"github.com/arkodeep/socially/backend/internal/apperr"
	"github.com/arkodeep/socially/backend/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	ToggleLike(userID, postID uint) (ToggleOutcome, error)
	HasUserLikedPost(postID, userID uint) (bool, error)
	GetLikesCountByPostID(postID uint) (int64, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// ToggleLike unlikes the post if the user already liked it, otherwise
// creates the like and, when the actor is not the post's author, a LIKE
// notification in the same transaction. Self-likes never notify.
func (r *PostgresLikeRepository) ToggleLike(userID, postID uint) (ToggleOutcome, error) {
	var post models.Post
	return runToggle(r.db, toggleSpec{
		exists: func(tx *gorm.DB) (bool, error) {
			if err := tx.Select("id", "author_id").First(&post, postID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return false, apperr.New(apperr.CodeNotFound, "post not found")
				}
				return false, err
			}
			var count int64
			err := tx.Model(&models.Like{}).
				Where("post_id = ? AND user_id = ?", postID, userID).
				Count(&count).Error
			return count > 0, err
		},
		create: func(tx *gorm.DB) error {
			return tx.Create(&models.Like{PostID: postID, UserID: userID}).Error
		},
		remove: func(tx *gorm.DB) error {
			return tx.Where("post_id = ? AND user_id = ?", postID, userID).
				Delete(&models.Like{}).Error
		},
		notify: func() *models.Notification {
			if post.AuthorID == userID {
				return nil
			}
			return &models.Notification{
				Type:        models.NotificationLike,
				RecipientID: post.AuthorID,
				CreatorID:   userID,
				PostID:      &post.ID,
			}
		},
	})
}

// HasUserLikedPost checks if a user has liked a specific post
func (r *PostgresLikeRepository) HasUserLikedPost(postID, userID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("post_id = ? AND user_id = ?", postID, userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetLikesCountByPostID retrieves the count of likes for a specific post
func (r *PostgresLikeRepository) GetLikesCountByPostID(postID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
