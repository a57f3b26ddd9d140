package routes

import (
	"net/http"
	"net/url"
	"testing"

	"inkwell/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostLifecycle(t *testing.T) {
	server, db := setupTestApp(t)

	admin := newClient(t)
	register(t, admin, server.URL, "admin@example.com", "Admin", "secret123")

	t.Run("create redirects to the listing", func(t *testing.T) {
		resp, _ := createPost(t, admin, server.URL, "First Post", "A body long enough to pass validation")
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/", resp.Header.Get("Location"))

		_, body := get(t, admin, server.URL+"/")
		assert.Contains(t, body, "First Post")
	})

	t.Run("post is stamped with author and date", func(t *testing.T) {
		var post models.Post
		require.NoError(t, db.Where("title = ?", "First Post").First(&post).Error)
		assert.Equal(t, "Admin", post.Author)
		assert.NotEmpty(t, post.Date)
		assert.Equal(t, models.AdminUserID, post.UserID)
	})

	t.Run("duplicate title re-renders with a message", func(t *testing.T) {
		resp, body := createPost(t, admin, server.URL, "First Post", "A different body, same title")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "already exists")

		var count int64
		db.Model(&models.Post{}).Where("title = ?", "First Post").Count(&count)
		assert.EqualValues(t, 1, count)
	})

	t.Run("view missing post is 404 regardless of auth state", func(t *testing.T) {
		resp, _ := get(t, newClient(t), server.URL+"/post/999")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		resp, _ = get(t, admin, server.URL+"/post/999")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestCommenting(t *testing.T) {
	server, db := setupTestApp(t)

	admin := newClient(t)
	register(t, admin, server.URL, "admin@example.com", "Admin", "secret123")
	createPost(t, admin, server.URL, "Commented Post", "A body long enough to pass validation")

	var post models.Post
	require.NoError(t, db.Where("title = ?", "Commented Post").First(&post).Error)
	postURL := server.URL + "/post/1"

	t.Run("anonymous submitter is sent to login", func(t *testing.T) {
		anon := newClient(t)
		resp, _ := postForm(t, anon, postURL, url.Values{"text": {"drive-by comment"}})
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/login", resp.Header.Get("Location"))

		var count int64
		db.Model(&models.Comment{}).Count(&count)
		assert.EqualValues(t, 0, count)

		_, body := get(t, anon, server.URL+"/login")
		assert.Contains(t, body, "log in or register to comment")
	})

	t.Run("logged-in user comments and sees it rendered", func(t *testing.T) {
		reader := newClient(t)
		register(t, reader, server.URL, "reader@example.com", "Reader", "secret123")

		resp, body := postForm(t, reader, postURL, url.Values{"text": {"lovely writing"}})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "lovely writing")

		var comment models.Comment
		require.NoError(t, db.Where("post_id = ?", post.ID).First(&comment).Error)
		assert.EqualValues(t, 2, comment.UserID)
	})

	t.Run("comment on missing post is 404", func(t *testing.T) {
		resp, _ := postForm(t, admin, server.URL+"/post/999", url.Values{"text": {"void"}})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

// TestEndToEnd exercises the full admin lifecycle: a second user cannot
// mutate posts, the seeded admin can, and deletion removes the post.
func TestEndToEnd(t *testing.T) {
	server, db := setupTestApp(t)

	// The very first registration becomes the admin (identifier 1).
	adminClient := newClient(t)
	resp, _ := register(t, adminClient, server.URL, "admin@example.com", "Admin", "secret123")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	// Register user A on its own client; A is logged in immediately.
	userA := newClient(t)
	resp, _ = register(t, userA, server.URL, "a@example.com", "User A", "secret123")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	_, home := get(t, userA, server.URL+"/")
	require.Contains(t, home, "logged in")

	// A cannot reach /new-post.
	resp, _ = get(t, userA, server.URL+"/new-post")
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	// A logs out.
	resp, _ = get(t, userA, server.URL+"/logout")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	// Log in as the admin on A's client.
	resp, _ = login(t, userA, server.URL, "admin@example.com", "secret123")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	// Create a post.
	resp, _ = createPost(t, userA, server.URL, "Launch Day", "A body long enough to pass validation")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	_, listing := get(t, userA, server.URL+"/")
	require.Contains(t, listing, "Launch Day")

	var post models.Post
	require.NoError(t, db.Where("title = ?", "Launch Day").First(&post).Error)
	postPath := "/post/1"
	require.EqualValues(t, 1, post.ID)

	// Edit the post title.
	resp, _ = postForm(t, userA, server.URL+"/edit-post/1", url.Values{
		"title":    {"Launch Week"},
		"subtitle": {"a subtitle"},
		"img_url":  {"/static/cover.png"},
		"body":     {"A body long enough to pass validation"},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, postPath, resp.Header.Get("Location"))

	_, shown := get(t, userA, server.URL+postPath)
	require.Contains(t, shown, "Launch Week")

	// Delete the post.
	resp, _ = get(t, userA, server.URL+"/delete/1")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	_, listing = get(t, userA, server.URL+"/")
	require.NotContains(t, listing, "Launch Week")

	resp, _ = get(t, userA, server.URL+postPath)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
