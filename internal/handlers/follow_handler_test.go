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

func TestToggleFollowLifecycle(t *testing.T) {
	env := newTestEnv(t)
	alice := env.asUser(t, alicePrincipal())
	env.asUser(t, bobPrincipal())

	path := fmt.Sprintf("/api/v1/users/%d/follow", alice.ID)

	code, resp := env.do(t, http.MethodPost, path, nil)
	require.Equal(t, http.StatusOK, code)
	var result struct {
		Following bool `json:"following"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	assert.True(t, result.Following)

	code, resp = env.do(t, http.MethodPost, path, nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	assert.False(t, result.Following)

	// only the first toggle fanned out a notification
	notifications, err := env.notifications.GetByRecipientID(alice.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationFollow, notifications[0].Type)
}

func TestToggleFollowSelf(t *testing.T) {
	env := newTestEnv(t)
	bob := env.asUser(t, bobPrincipal())

	code, resp := env.do(t, http.MethodPost, fmt.Sprintf("/api/v1/users/%d/follow", bob.ID), nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, resp.Success)
	assert.Equal(t, "you cannot follow yourself", resp.Error)
}

func TestToggleFollowUnknownTarget(t *testing.T) {
	env := newTestEnv(t)
	env.asUser(t, bobPrincipal())

	code, resp := env.do(t, http.MethodPost, "/api/v1/users/9999/follow", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, resp.Success)
}

func TestFollowerListsArePublic(t *testing.T) {
	env := newTestEnv(t)
	alice := env.asUser(t, alicePrincipal())
	env.asUser(t, bobPrincipal())
	_, _ = env.do(t, http.MethodPost, fmt.Sprintf("/api/v1/users/%d/follow", alice.ID), nil)

	env.anonymous()
	code, resp := env.do(t, http.MethodGet, fmt.Sprintf("/api/v1/users/%d/followers", alice.ID), nil)
	require.Equal(t, http.StatusOK, code)

	var followers []models.User
	require.NoError(t, json.Unmarshal(resp.Data, &followers))
	require.Len(t, followers, 1)
	assert.Equal(t, "bob", followers[0].Username)
}
