package routes

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"inkwell/app/repositories"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestTemplates(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	viewsDir := filepath.Join(tmpDir, "app", "views")
	require.NoError(t, os.MkdirAll(viewsDir, 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "static"), 0755))

	templates := map[string]string{
		"layout.html":    `{{define "layout"}}<!DOCTYPE html><html><body>{{if .LoggedIn}}<span id="logged-in">logged in</span>{{end}}{{range .Flashes}}<p class="flash">{{.}}</p>{{end}}{{template "content" .}}</body></html>{{end}}`,
		"index.html":     `{{define "content"}}<div class="posts">{{range .Posts}}<h2>{{.Title}}</h2>{{end}}</div>{{end}}`,
		"post.html":      `{{define "content"}}<h1>{{.Post.Title}}</h1><div>{{.Post.Body}}</div>{{range .Post.Comments}}<p class="comment">{{.Text}}</p>{{end}}{{end}}`,
		"make-post.html": `{{define "content"}}<form method="POST"><input name="title" value="{{.Form.Get "title"}}"><textarea name="body"></textarea></form>{{end}}`,
		"register.html":  `{{define "content"}}<form method="POST" action="/register">register</form>{{end}}`,
		"login.html":     `{{define "content"}}<form method="POST" action="/login">login</form>{{end}}`,
		"about.html":     `{{define "content"}}<p>about page</p>{{end}}`,
		"contact.html":   `{{define "content"}}<p>contact page</p>{{end}}`,
	}
	for name, content := range templates {
		require.NoError(t, os.WriteFile(filepath.Join(viewsDir, name), []byte(content), 0644))
	}

	cssContent := "body { background: #f0f0f0; }"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "static", "style.css"), []byte(cssContent), 0644))

	return tmpDir
}

func setupTestApp(t *testing.T) (*httptest.Server, *gorm.DB) {
	t.Helper()
	basePath := setupTestTemplates(t)

	db, err := repositories.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, repositories.Migrate(db))

	server := httptest.NewServer(SetupRoutes(db, "test-secret", basePath))
	t.Cleanup(server.Close)
	return server, db
}

// newClient returns a client with its own cookie jar that does not follow
// redirects, so tests can assert on redirect responses directly.
func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func get(t *testing.T, client *http.Client, url string) (*http.Response, string) {
	t.Helper()
	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func postForm(t *testing.T, client *http.Client, url string, form url.Values) (*http.Response, string) {
	t.Helper()
	resp, err := client.Post(url, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func register(t *testing.T, client *http.Client, base, email, name, password string) (*http.Response, string) {
	t.Helper()
	return postForm(t, client, base+"/register", url.Values{
		"email":    {email},
		"name":     {name},
		"password": {password},
	})
}

func login(t *testing.T, client *http.Client, base, email, password string) (*http.Response, string) {
	t.Helper()
	return postForm(t, client, base+"/login", url.Values{
		"email":    {email},
		"password": {password},
	})
}

func createPost(t *testing.T, client *http.Client, base, title, body string) (*http.Response, string) {
	t.Helper()
	return postForm(t, client, base+"/new-post", url.Values{
		"title":    {title},
		"subtitle": {"a subtitle"},
		"img_url":  {"/static/cover.png"},
		"body":     {body},
	})
}
