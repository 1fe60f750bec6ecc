package server

import (
	"fmt"
	"net/http"
	"testing"

	"devconnect/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPost(t *testing.T, app *fiber.App, token, text string) models.Post {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/posts", token, map[string]any{"text": text})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decodeBody[models.Post](t, resp)
}

func TestCreateAndListPosts(t *testing.T) {
	s, app := setupTestServer(t)
	user, token := createTestUser(t, s, "Jane Doe", "jane@example.com")

	post := createPost(t, app, token, "My first post, hello everyone")
	assert.Equal(t, user.ID, post.UserID)
	assert.Equal(t, "Jane Doe", post.Name)
	assert.NotNil(t, post.Likes)
	assert.NotNil(t, post.Comments)

	createPost(t, app, token, "A second post comes after the first")

	resp := doJSON(t, app, http.MethodGet, "/api/posts", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	posts := decodeBody[[]models.Post](t, resp)
	require.Len(t, posts, 2)
	assert.Equal(t, "A second post comes after the first", posts[0].Text)
	assert.Equal(t, "My first post, hello everyone", posts[1].Text)
}

func TestCreatePostValidation(t *testing.T) {
	s, app := setupTestServer(t)
	_, token := createTestUser(t, s, "Jane Doe", "jane@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/posts", token, map[string]any{"text": "short"})
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeletePostOwnership(t *testing.T) {
	s, app := setupTestServer(t)
	_, owner := createTestUser(t, s, "Jane Doe", "jane@example.com")
	_, other := createTestUser(t, s, "Sam Roe", "sam@example.com")

	post := createPost(t, app, owner, "Only the owner may delete this")

	resp := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/posts/%d", post.ID), other, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/posts/%d", post.ID), owner, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/posts/%d", post.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestLikeUnlikeFlow(t *testing.T) {
	s, app := setupTestServer(t)
	_, owner := createTestUser(t, s, "Jane Doe", "jane@example.com")
	liker, likerToken := createTestUser(t, s, "Sam Roe", "sam@example.com")

	post := createPost(t, app, owner, "Something worth liking, surely")
	likeURL := fmt.Sprintf("/api/posts/like/%d", post.ID)
	unlikeURL := fmt.Sprintf("/api/posts/unlike/%d", post.ID)

	t.Run("like records the acting user", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, likeURL, likerToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		updated := decodeBody[models.Post](t, resp)
		require.Len(t, updated.Likes, 1)
		assert.Equal(t, liker.ID, updated.Likes[0].UserID)
	})

	t.Run("double like is a conflict", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, likeURL, likerToken, nil)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("unlike removes only the acting user's like", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, likeURL, owner, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()

		resp = doJSON(t, app, http.MethodPost, unlikeURL, likerToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		updated := decodeBody[models.Post](t, resp)
		require.Len(t, updated.Likes, 1)
		assert.NotEqual(t, liker.ID, updated.Likes[0].UserID)
	})

	t.Run("unliking when never liked is a conflict", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, unlikeURL, likerToken, nil)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}

func TestCommentFlow(t *testing.T) {
	s, app := setupTestServer(t)
	_, owner := createTestUser(t, s, "Jane Doe", "jane@example.com")
	commenter, commenterToken := createTestUser(t, s, "Sam Roe", "sam@example.com")
	_, bystander := createTestUser(t, s, "Pat Lee", "pat@example.com")

	post := createPost(t, app, owner, "Please leave your thoughts below")
	commentURL := fmt.Sprintf("/api/posts/comment/%d", post.ID)

	resp := doJSON(t, app, http.MethodPost, commentURL, commenterToken,
		map[string]any{"text": "Here is a thoughtful reply"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	updated := decodeBody[models.Post](t, resp)
	require.Len(t, updated.Comments, 1)
	comment := updated.Comments[0]
	assert.Equal(t, commenter.ID, comment.UserID)
	assert.Equal(t, "Sam Roe", comment.Name)
	require.NotEmpty(t, comment.ID)

	deleteURL := fmt.Sprintf("/api/posts/comment/%d/%s", post.ID, comment.ID)

	t.Run("bystander cannot delete", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete, deleteURL, bystander, nil)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("post owner can delete another user's comment", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete, deleteURL, owner, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		updated := decodeBody[models.Post](t, resp)
		assert.Empty(t, updated.Comments)
	})

	t.Run("unknown comment id is 404", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete, deleteURL, owner, nil)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestCommentValidation(t *testing.T) {
	s, app := setupTestServer(t)
	_, token := createTestUser(t, s, "Jane Doe", "jane@example.com")

	post := createPost(t, app, token, "A post to comment on, eventually")

	resp := doJSON(t, app, http.MethodPost,
		fmt.Sprintf("/api/posts/comment/%d", post.ID), token, map[string]any{"text": "nope"})
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
