package repositories

import (
	"github.com/arkodeep/socially/backend/internal/apperr"
	"github.com/arkodeep/socially/backend/internal/models"
	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow data operations
type FollowRepository interface {
	ToggleFollow(followerID, followingID uint) (ToggleOutcome, error)
	IsFollowing(followerID, followingID uint) (bool, error)
	GetFollowers(userID uint) ([]models.User, error)
	GetFollowing(userID uint) ([]models.User, error)
	GetFollowersCount(userID uint) (int64, error)
	GetFollowingCount(userID uint) (int64, error)
	GetSuggestedUsers(userID uint, limit int) ([]models.User, error)
}

// PostgresFollowRepository implements FollowRepository for PostgreSQL
type PostgresFollowRepository struct {
	db *gorm.DB
}

// NewPostgresFollowRepository creates a new PostgresFollowRepository
func NewPostgresFollowRepository(db *gorm.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db}
}

// ToggleFollow removes the follow edge if it exists, otherwise creates it
// together with a FOLLOW notification for the target. Edge and notification
// commit in the same transaction; the unfollow half never notifies.
func (r *PostgresFollowRepository) ToggleFollow(followerID, followingID uint) (ToggleOutcome, error) {
	if followerID == followingID {
		return 0, apperr.New(apperr.CodeValidation, "you cannot follow yourself")
	}
	return runToggle(r.db, toggleSpec{
		exists: func(tx *gorm.DB) (bool, error) {
			var count int64
			err := tx.Model(&models.Follow{}).
				Where("follower_id = ? AND following_id = ?", followerID, followingID).
				Count(&count).Error
			return count > 0, err
		},
		create: func(tx *gorm.DB) error {
			return tx.Create(&models.Follow{FollowerID: followerID, FollowingID: followingID}).Error
		},
		remove: func(tx *gorm.DB) error {
			return tx.Where("follower_id = ? AND following_id = ?", followerID, followingID).
				Delete(&models.Follow{}).Error
		},
		notify: func() *models.Notification {
			return &models.Notification{
				Type:        models.NotificationFollow,
				RecipientID: followingID,
				CreatorID:   followerID,
			}
		},
	})
}

func (r *PostgresFollowRepository) IsFollowing(followerID, followingID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Follow{}).Where("follower_id = ? AND following_id = ?", followerID, followingID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresFollowRepository) GetFollowers(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id IN (?)",
		r.db.Table("follows").Select("follower_id").Where("following_id = ?", userID),
	).Find(&users).Error
	return users, err
}

func (r *PostgresFollowRepository) GetFollowing(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id IN (?)",
		r.db.Table("follows").Select("following_id").Where("follower_id = ?", userID),
	).Find(&users).Error
	return users, err
}

func (r *PostgresFollowRepository) GetFollowersCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("following_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *PostgresFollowRepository) GetFollowingCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&count).Error
	return count, err
}

// GetSuggestedUsers returns up to limit random users the viewer does not
// already follow, excluding the viewer.
func (r *PostgresFollowRepository) GetSuggestedUsers(userID uint, limit int) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id <> ?", userID).
		Where("id NOT IN (?)",
			r.db.Table("follows").Select("following_id").Where("follower_id = ?", userID),
		).
		Order("RANDOM()").
		Limit(limit).
		Find(&users).Error
	return users, err
}
