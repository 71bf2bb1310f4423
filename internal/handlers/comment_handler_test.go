package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/arkodeep/socially/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCommentRejectsEmptyContent(t *testing.T) {
	env := newTestEnv(t)
	alice := env.asUser(t, alicePrincipal())
	post, err := env.posts.CreatePost(alice.ID, "talk to me", "")
	require.NoError(t, err)

	code, resp := env.do(t, http.MethodPost, fmt.Sprintf("/api/v1/posts/%d/comments", post.ID), jsonBody(`{"content":"   "}`))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, resp.Success)
	assert.Equal(t, "comment content is required", resp.Error)
}

func TestCreateAndListComments(t *testing.T) {
	env := newTestEnv(t)
	alice := env.asUser(t, alicePrincipal())
	post, err := env.posts.CreatePost(alice.ID, "talk to me", "")
	require.NoError(t, err)

	env.asUser(t, bobPrincipal())
	path := fmt.Sprintf("/api/v1/posts/%d/comments", post.ID)
	code, resp := env.do(t, http.MethodPost, path, jsonBody(`{"content":"  great shot  "}`))
	require.Equal(t, http.StatusCreated, code)

	var created models.Comment
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	assert.Equal(t, "great shot", created.Content)

	env.anonymous()
	code, resp = env.do(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, code)

	var comments []models.Comment
	require.NoError(t, json.Unmarshal(resp.Data, &comments))
	require.Len(t, comments, 1)
	require.NotNil(t, comments[0].Author)
	assert.Equal(t, "bob", comments[0].Author.Username)
}

func TestCreateCommentRejectsOverlongContent(t *testing.T) {
	env := newTestEnv(t)
	alice := env.asUser(t, alicePrincipal())
	post, err := env.posts.CreatePost(alice.ID, "talk to me", "")
	require.NoError(t, err)

	body := fmt.Sprintf(`{"content":%q}`, strings.Repeat("a", 501))
	code, _ := env.do(t, http.MethodPost, fmt.Sprintf("/api/v1/posts/%d/comments", post.ID), jsonBody(body))
	assert.Equal(t, http.StatusBadRequest, code)

	count, err := env.comments.GetCommentsCountByPostID(post.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCreateCommentMissingPost(t *testing.T) {
	env := newTestEnv(t)
	env.asUser(t, bobPrincipal())

	code, resp := env.do(t, http.MethodPost, "/api/v1/posts/9999/comments", jsonBody(`{"content":"hello"}`))
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, resp.Success)
}
