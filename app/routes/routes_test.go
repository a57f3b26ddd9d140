package routes

import (
	"net/http"
	"net/url"
	"testing"

	"inkwell/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationFlow(t *testing.T) {
	server, db := setupTestApp(t)
	client := newClient(t)

	t.Run("registration redirects to the listing", func(t *testing.T) {
		resp, _ := register(t, client, server.URL, "admin@example.com", "Admin", "secret123")
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/", resp.Header.Get("Location"))
	})

	t.Run("fresh registration is auto-logged-in", func(t *testing.T) {
		resp, body := get(t, client, server.URL+"/")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "logged in")
	})

	t.Run("duplicate email never creates a second user", func(t *testing.T) {
		other := newClient(t)
		resp, _ := register(t, other, server.URL, "admin@example.com", "Impostor", "secret456")
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/login", resp.Header.Get("Location"))

		var count int64
		db.Model(&models.User{}).Count(&count)
		assert.EqualValues(t, 1, count)

		// The impostor's session is as it was before the attempt: anonymous.
		_, body := get(t, other, server.URL+"/")
		assert.NotContains(t, body, "logged in")

		// The duplicate-email message shows up on the login page.
		_, loginBody := get(t, other, server.URL+"/login")
		assert.Contains(t, loginBody, "already signed up")
	})
}

func TestLoginFlow(t *testing.T) {
	server, _ := setupTestApp(t)
	register(t, newClient(t), server.URL, "admin@example.com", "Admin", "secret123")

	t.Run("wrong password never establishes a session", func(t *testing.T) {
		client := newClient(t)
		resp, body := login(t, client, server.URL, "admin@example.com", "wrongpass")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "password incorrect")

		_, home := get(t, client, server.URL+"/")
		assert.NotContains(t, home, "logged in")
	})

	t.Run("unknown email re-renders with a message", func(t *testing.T) {
		client := newClient(t)
		resp, body := login(t, client, server.URL, "nobody@example.com", "secret123")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "does not exist")
	})

	t.Run("correct credentials log in", func(t *testing.T) {
		client := newClient(t)
		resp, _ := login(t, client, server.URL, "admin@example.com", "secret123")
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/", resp.Header.Get("Location"))

		_, home := get(t, client, server.URL+"/")
		assert.Contains(t, home, "logged in")
	})

	t.Run("logout clears the session", func(t *testing.T) {
		client := newClient(t)
		login(t, client, server.URL, "admin@example.com", "secret123")

		resp, _ := get(t, client, server.URL+"/logout")
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

		_, home := get(t, client, server.URL+"/")
		assert.NotContains(t, home, "logged in")
	})
}

func TestAdminGate(t *testing.T) {
	server, db := setupTestApp(t)

	admin := newClient(t)
	register(t, admin, server.URL, "admin@example.com", "Admin", "secret123")

	reader := newClient(t)
	register(t, reader, server.URL, "reader@example.com", "Reader", "secret123")

	adminRoutes := []string{"/new-post", "/edit-post/1", "/delete/1"}

	t.Run("anonymous is forbidden", func(t *testing.T) {
		anon := newClient(t)
		for _, route := range adminRoutes {
			resp, _ := get(t, anon, server.URL+route)
			assert.Equal(t, http.StatusForbidden, resp.StatusCode, route)
		}
	})

	t.Run("non-admin is forbidden", func(t *testing.T) {
		for _, route := range adminRoutes {
			resp, _ := get(t, reader, server.URL+route)
			assert.Equal(t, http.StatusForbidden, resp.StatusCode, route)
		}
	})

	t.Run("forbidden writes change no data", func(t *testing.T) {
		resp, _ := createPost(t, reader, server.URL, "Sneaky Post", "should never be written")
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		var count int64
		db.Model(&models.Post{}).Count(&count)
		assert.EqualValues(t, 0, count)
	})

	t.Run("admin passes the gate", func(t *testing.T) {
		resp, _ := get(t, admin, server.URL+"/new-post")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestStaticPages(t *testing.T) {
	server, _ := setupTestApp(t)
	client := newClient(t)

	resp, body := get(t, client, server.URL+"/about")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "about page")

	resp, body = get(t, client, server.URL+"/contact")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "contact page")
}

func TestStaticFiles(t *testing.T) {
	server, _ := setupTestApp(t)
	client := newClient(t)

	resp, body := get(t, client, server.URL+"/static/style.css")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "background")
}

func TestMethodRouting(t *testing.T) {
	server, _ := setupTestApp(t)
	client := newClient(t)

	// The delete route only answers GET; other methods fall through.
	req, err := http.NewRequest(http.MethodDelete, server.URL+"/delete/1", nil)
	require.NoError(t, err)
	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	// Unknown paths 404.
	resp2, _ := get(t, client, server.URL+"/no-such-page")
	assert.Equal(t, http.StatusNotFound, resp2.StatusCode)
}

func TestCommentValidationMessage(t *testing.T) {
	server, _ := setupTestApp(t)

	admin := newClient(t)
	register(t, admin, server.URL, "admin@example.com", "Admin", "secret123")
	createPost(t, admin, server.URL, "Commented Post", "A body long enough to pass validation")

	resp, body := postForm(t, admin, server.URL+"/post/1", url.Values{"text": {""}})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "invalid comment")
}
