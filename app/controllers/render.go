package controllers

import (
	"html/template"
	"net/http"
	"net/url"
	"path/filepath"
	"time"

	"inkwell/app/middleware"
	"inkwell/app/models"
	"inkwell/app/sessions"
)

// templateData is the payload handed to every page template. The identity
// fields are filled in by render; handlers only set what the page needs.
type templateData struct {
	CurrentUser *models.User
	LoggedIn    bool
	IsAdmin     bool
	Flashes     []string
	Year        int

	Posts  []*models.Post
	Post   *models.Post
	IsEdit bool
	Form   url.Values
}

// renderer holds the parsed templates and the session manager that
// supplies flash messages. Controllers embed it.
type renderer struct {
	templates map[string]*template.Template
	sessions  *sessions.Manager
}

func (rd *renderer) render(w http.ResponseWriter, r *http.Request, name string, data *templateData) {
	if data == nil {
		data = &templateData{}
	}
	data.CurrentUser = middleware.UserFrom(r.Context())
	data.LoggedIn = data.CurrentUser != nil
	data.IsAdmin = data.CurrentUser.IsAdmin()
	data.Year = time.Now().Year()
	if data.Flashes == nil {
		data.Flashes = rd.sessions.Flashes(w, r)
	}

	tmpl, ok := rd.templates[name]
	if !ok {
		http.Error(w, "Template not found: "+name, http.StatusInternalServerError)
		return
	}
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}

// loadTemplates loads and parses all templates
func loadTemplates(basePath string) map[string]*template.Template {
	pages := []string{"index", "post", "make-post", "register", "login", "about", "contact"}

	templates := make(map[string]*template.Template, len(pages))
	layout := filepath.Join(basePath, "app/views/layout.html")
	for _, page := range pages {
		templates[page] = template.Must(template.ParseFiles(
			layout,
			filepath.Join(basePath, "app/views", page+".html"),
		))
	}
	return templates
}
