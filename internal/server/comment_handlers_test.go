package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"blogicum/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment_OnHiddenPostIsNotFound(t *testing.T) {
	srv, app, db := setupTestServer(t)

	author := createTestUser(t, db, "author")
	stranger := createTestUser(t, db, "stranger")
	category := createTestCategory(t, db, "travel", true)
	draft := createTestPost(t, db, author, "draft", postOpts{categoryID: &category.ID, isPublished: false})

	body, _ := json.Marshal(map[string]string{"text": "sneaky"})
	req := httptest.NewRequest("POST", fmt.Sprintf("/api/posts/%d/comments", draft.ID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", authHeader(t, srv, stranger.ID))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestComments_ListOldestFirst(t *testing.T) {
	srv, app, db := setupTestServer(t)

	author := createTestUser(t, db, "author")
	reader := createTestUser(t, db, "reader")
	category := createTestCategory(t, db, "travel", true)
	post := createTestPost(t, db, author, "visible", postOpts{categoryID: &category.ID, isPublished: true})

	// Insert out of chronological order
	older := &models.Comment{Text: "older", AuthorID: reader.ID, PostID: post.ID, CreatedAt: time.Now().Add(-time.Hour)}
	newer := &models.Comment{Text: "newer", AuthorID: author.ID, PostID: post.ID, CreatedAt: time.Now()}
	require.NoError(t, db.Create(newer).Error)
	require.NoError(t, db.Create(older).Error)

	req := httptest.NewRequest("GET", fmt.Sprintf("/api/posts/%d/comments", post.ID), nil)
	req.Header.Set("Authorization", authHeader(t, srv, reader.ID))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var comments []models.Comment
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&comments))
	require.Len(t, comments, 2)
	assert.Equal(t, "older", comments[0].Text)
	assert.Equal(t, "newer", comments[1].Text)
}

func TestUpdateComment_NotOwnerIsRedirected(t *testing.T) {
	srv, app, db := setupTestServer(t)

	author := createTestUser(t, db, "author")
	commenter := createTestUser(t, db, "commenter")
	category := createTestCategory(t, db, "travel", true)
	post := createTestPost(t, db, author, "visible", postOpts{categoryID: &category.ID, isPublished: true})

	comment := &models.Comment{Text: "mine", AuthorID: commenter.ID, PostID: post.ID}
	require.NoError(t, db.Create(comment).Error)

	// The post author does not own the comment
	body, _ := json.Marshal(map[string]string{"text": "rewritten"})
	req := httptest.NewRequest("PUT", fmt.Sprintf("/api/posts/%d/comments/%d", post.ID, comment.ID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", authHeader(t, srv, author.ID))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, fmt.Sprintf("/api/posts/%d", post.ID), resp.Header.Get("Location"))

	// The owner can
	req = httptest.NewRequest("PUT", fmt.Sprintf("/api/posts/%d/comments/%d", post.ID, comment.ID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", authHeader(t, srv, commenter.ID))

	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.Comment
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, "rewritten", updated.Text)
}

func TestUpdateComment_WrongPostIsNotFound(t *testing.T) {
	srv, app, db := setupTestServer(t)

	author := createTestUser(t, db, "author")
	category := createTestCategory(t, db, "travel", true)
	postA := createTestPost(t, db, author, "a", postOpts{categoryID: &category.ID, isPublished: true})
	postB := createTestPost(t, db, author, "b", postOpts{categoryID: &category.ID, isPublished: true})

	comment := &models.Comment{Text: "on a", AuthorID: author.ID, PostID: postA.ID}
	require.NoError(t, db.Create(comment).Error)

	body, _ := json.Marshal(map[string]string{"text": "moved?"})
	req := httptest.NewRequest("PUT", fmt.Sprintf("/api/posts/%d/comments/%d", postB.ID, comment.ID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", authHeader(t, srv, author.ID))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteComment_OwnerDeletes(t *testing.T) {
	srv, app, db := setupTestServer(t)

	author := createTestUser(t, db, "author")
	category := createTestCategory(t, db, "travel", true)
	post := createTestPost(t, db, author, "visible", postOpts{categoryID: &category.ID, isPublished: true})

	comment := &models.Comment{Text: "regret", AuthorID: author.ID, PostID: post.ID}
	require.NoError(t, db.Create(comment).Error)

	req := httptest.NewRequest("DELETE", fmt.Sprintf("/api/posts/%d/comments/%d", post.ID, comment.ID), nil)
	req.Header.Set("Authorization", authHeader(t, srv, author.ID))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	db.Model(&models.Comment{}).Where("id = ?", comment.ID).Count(&count)
	assert.Zero(t, count)
}
