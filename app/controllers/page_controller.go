package controllers

import (
	"net/http"

	"inkwell/app/sessions"
)

// PageController serves the static about and contact pages. They have no
// data dependency beyond the session.
type PageController struct {
	renderer
}

// NewPageController creates a new PageController
func NewPageController(manager *sessions.Manager, basePath string) *PageController {
	return &PageController{
		renderer: renderer{templates: loadTemplates(basePath), sessions: manager},
	}
}

// About renders the about page
func (pg *PageController) About(w http.ResponseWriter, r *http.Request) {
	pg.render(w, r, "about", nil)
}

// Contact renders the contact page
func (pg *PageController) Contact(w http.ResponseWriter, r *http.Request) {
	pg.render(w, r, "contact", nil)
}
