package repositories

import (
	"testing"

	"github.com/arkodeep/socially/backend/internal/apperr"
	"github.com/arkodeep/socially/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCommentRejectsEmptyContent(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresCommentRepository(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	post := seedPost(t, db, bob, "hello")

	for _, content := range []string{"", "   ", "\n\t"} {
		_, err := repo.CreateComment(alice.ID, post.ID, content)
		require.Error(t, err)
		assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))
	}

	assert.EqualValues(t, 0, countRows(t, db, &models.Comment{}, ""))
	assert.EqualValues(t, 0, countRows(t, db, &models.Notification{}, ""))
}

func TestCreateCommentMissingPost(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresCommentRepository(db)
	alice := seedUser(t, db, "alice")

	_, err := repo.CreateComment(alice.ID, 9999, "nice post")
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
	assert.EqualValues(t, 0, countRows(t, db, &models.Comment{}, ""))
}

func TestCreateCommentNotifiesAuthorWithLinks(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresCommentRepository(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	post := seedPost(t, db, bob, "hello")

	comment, err := repo.CreateComment(alice.ID, post.ID, "  nice post  ")
	require.NoError(t, err)
	assert.Equal(t, "nice post", comment.Content)

	var notif models.Notification
	require.NoError(t, db.First(&notif, "type = ?", models.NotificationComment).Error)
	assert.Equal(t, bob.ID, notif.RecipientID)
	assert.Equal(t, alice.ID, notif.CreatorID)
	require.NotNil(t, notif.PostID)
	assert.Equal(t, post.ID, *notif.PostID)
	require.NotNil(t, notif.CommentID)
	assert.Equal(t, comment.ID, *notif.CommentID)
}

func TestCreateCommentOnOwnPostDoesNotNotify(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresCommentRepository(db)
	bob := seedUser(t, db, "bob")
	post := seedPost(t, db, bob, "hello")

	_, err := repo.CreateComment(bob.ID, post.ID, "replying to myself")
	require.NoError(t, err)

	assert.EqualValues(t, 1, countRows(t, db, &models.Comment{}, ""))
	assert.EqualValues(t, 0, countRows(t, db, &models.Notification{}, ""))
}

func TestGetCommentsByPostIDOldestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresCommentRepository(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	post := seedPost(t, db, bob, "hello")

	first, err := repo.CreateComment(alice.ID, post.ID, "first")
	require.NoError(t, err)
	second, err := repo.CreateComment(bob.ID, post.ID, "second")
	require.NoError(t, err)

	comments, err := repo.GetCommentsByPostID(post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, first.ID, comments[0].ID)
	assert.Equal(t, second.ID, comments[1].ID)
	require.NotNil(t, comments[0].Author)
	assert.Equal(t, "alice", comments[0].Author.Username)
}
