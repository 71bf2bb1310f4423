package repositories

import (
	"errors"
	"strings"

	"github.com/arkodeep/socially/backend/internal/apperr"
	"github.com/arkodeep/socially/backend/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(authorID uint, content, image string) (*models.Post, error)
	GetPostByID(id uint) (*models.Post, error)
	GetAllPosts() ([]models.Post, error)
	GetPostsByAuthorID(authorID uint) ([]models.Post, error)
	GetLikedPosts(userID uint) ([]models.Post, error)
	DeletePost(actorID, postID uint) error
	GetPostsCountByAuthorID(authorID uint) (int64, error)
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost persists a new post. A post with neither content nor an image
// is rejected; either one alone is enough.
func (r *PostgresPostRepository) CreatePost(authorID uint, content, image string) (*models.Post, error) {
	content = strings.TrimSpace(content)
	image = strings.TrimSpace(image)
	if content == "" && image == "" {
		return nil, apperr.New(apperr.CodeValidation, "post needs content or an image")
	}

	post := &models.Post{AuthorID: authorID, Content: content, Image: image}
	if err := r.db.Create(post).Error; err != nil {
		return nil, apperr.Wrap(apperr.CodeTransaction, "failed to create post", err)
	}
	return post, nil
}

// GetPostByID retrieves a post by ID with its author preloaded
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("Author").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.CodeNotFound, "post not found")
		}
		return nil, err
	}
	return &post, nil
}

// GetAllPosts retrieves the feed: every post newest-first with author,
// comments (and their authors) and likes preloaded.
func (r *PostgresPostRepository) GetAllPosts() ([]models.Post, error) {
	var posts []models.Post
	err := r.db.
		Preload("Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("comments.created_at ASC") }).
		Preload("Comments.Author").
		Preload("Likes").
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

// GetPostsByAuthorID retrieves a user's posts newest-first
func (r *PostgresPostRepository) GetPostsByAuthorID(authorID uint) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.
		Preload("Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("comments.created_at ASC") }).
		Preload("Comments.Author").
		Preload("Likes").
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

// GetLikedPosts retrieves the posts a user has liked, newest-first
func (r *PostgresPostRepository) GetLikedPosts(userID uint) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.
		Preload("Author").
		Preload("Likes").
		Where("id IN (?)",
			r.db.Table("likes").Select("post_id").Where("user_id = ?", userID),
		).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

// DeletePost removes a post owned by actorID. The storage layer's foreign
// keys cascade the delete to the post's likes, comments and notifications.
func (r *PostgresPostRepository) DeletePost(actorID, postID uint) error {
	var post models.Post
	if err := r.db.Select("id", "author_id").First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.CodeNotFound, "post not found")
		}
		return err
	}
	if post.AuthorID != actorID {
		return apperr.New(apperr.CodeForbidden, "only the author can delete this post")
	}
	if err := r.db.Delete(&models.Post{}, postID).Error; err != nil {
		return apperr.Wrap(apperr.CodeTransaction, "failed to delete post", err)
	}
	return nil
}

// GetPostsCountByAuthorID retrieves the number of posts a user has authored
func (r *PostgresPostRepository) GetPostsCountByAuthorID(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}
