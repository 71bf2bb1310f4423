package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/arkodeep/socially/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePostRequiresAuth(t *testing.T) {
	env := newTestEnv(t)
	env.anonymous()

	code, resp := env.do(t, http.MethodPost, "/api/v1/posts", jsonBody(`{"content":"hello"}`))
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.False(t, resp.Success)
	assert.Equal(t, "not authenticated", resp.Error)
}

func TestCreatePostRejectsEmptyBody(t *testing.T) {
	env := newTestEnv(t)
	env.asUser(t, alicePrincipal())

	code, resp := env.do(t, http.MethodPost, "/api/v1/posts", jsonBody(`{"content":"  ","image":""}`))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, resp.Success)
	assert.Equal(t, "post needs content or an image", resp.Error)
}

func TestCreateAndFetchPost(t *testing.T) {
	env := newTestEnv(t)
	env.asUser(t, alicePrincipal())

	code, resp := env.do(t, http.MethodPost, "/api/v1/posts", jsonBody(`{"content":"first post"}`))
	require.Equal(t, http.StatusCreated, code)
	require.True(t, resp.Success)

	var created models.Post
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	assert.Equal(t, "first post", created.Content)

	env.anonymous()
	code, resp = env.do(t, http.MethodGet, fmt.Sprintf("/api/v1/posts/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, code)

	var fetched models.Post
	require.NoError(t, json.Unmarshal(resp.Data, &fetched))
	require.NotNil(t, fetched.Author)
	assert.Equal(t, "alice", fetched.Author.Username)
}

func TestGetPostNotFound(t *testing.T) {
	env := newTestEnv(t)

	code, resp := env.do(t, http.MethodGet, "/api/v1/posts/9999", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, resp.Success)
	assert.Equal(t, "post not found", resp.Error)
}

func TestDeletePostForbiddenForNonAuthor(t *testing.T) {
	env := newTestEnv(t)
	env.asUser(t, alicePrincipal())

	code, resp := env.do(t, http.MethodPost, "/api/v1/posts", jsonBody(`{"content":"mine"}`))
	require.Equal(t, http.StatusCreated, code)
	var created models.Post
	require.NoError(t, json.Unmarshal(resp.Data, &created))

	env.asUser(t, bobPrincipal())
	code, resp = env.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/posts/%d", created.ID), nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.False(t, resp.Success)

	env.asUser(t, alicePrincipal())
	code, _ = env.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/posts/%d", created.ID), nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestFeedIsPublic(t *testing.T) {
	env := newTestEnv(t)
	env.asUser(t, alicePrincipal())
	_, _ = env.do(t, http.MethodPost, "/api/v1/posts", jsonBody(`{"content":"a"}`))
	_, _ = env.do(t, http.MethodPost, "/api/v1/posts", jsonBody(`{"content":"b"}`))

	env.anonymous()
	code, resp := env.do(t, http.MethodGet, "/api/v1/posts", nil)
	require.Equal(t, http.StatusOK, code)

	var feed []models.Post
	require.NoError(t, json.Unmarshal(resp.Data, &feed))
	assert.Len(t, feed, 2)
}
