package repositories

import (
	"errors"
	"strings"

	"github.com/arkodeep/socially/backend/internal/apperr"
	"github.com/arkodeep/socially/backend/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(authorID, postID uint, content string) (*models.Comment, error)
	GetCommentsByPostID(postID uint) ([]models.Comment, error)
	GetCommentsCountByPostID(postID uint) (int64, error)
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// CreateComment appends a comment to a post and, when the commenter is not
// the post's author, a COMMENT notification linking both the post and the
// new comment. Comment and notification commit in the same transaction.
func (r *PostgresCommentRepository) CreateComment(authorID, postID uint, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperr.New(apperr.CodeValidation, "comment content is required")
	}

	comment := &models.Comment{PostID: postID, AuthorID: authorID, Content: content}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.Select("id", "author_id").First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(apperr.CodeNotFound, "post not found")
			}
			return err
		}
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		if post.AuthorID == authorID {
			return nil
		}
		return tx.Create(&models.Notification{
			Type:        models.NotificationComment,
			RecipientID: post.AuthorID,
			CreatorID:   authorID,
			PostID:      &post.ID,
			CommentID:   &comment.ID,
		}).Error
	})
	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperr.Wrap(apperr.CodeTransaction, "failed to create comment", err)
	}
	return comment, nil
}

// GetCommentsByPostID retrieves all comments for a specific post, oldest
// first, with each comment's author preloaded.
func (r *PostgresCommentRepository) GetCommentsByPostID(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Preload("Author").Where("post_id = ?", postID).Order("created_at ASC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// GetCommentsCountByPostID retrieves the count of comments for a specific post
func (r *PostgresCommentRepository) GetCommentsCountByPostID(postID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
