package controllers

import (
	"errors"
	"net/http"

	"inkwell/app/services"
	"inkwell/app/sessions"
	"inkwell/pkg/logger"
)

// AuthController handles registration, login and logout
type AuthController struct {
	renderer
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, manager *sessions.Manager, basePath string) *AuthController {
	return &AuthController{
		renderer:    renderer{templates: loadTemplates(basePath), sessions: manager},
		authService: authService,
	}
}

// ShowRegister renders the registration form
func (ac *AuthController) ShowRegister(w http.ResponseWriter, r *http.Request) {
	ac.render(w, r, "register", nil)
}

// Register creates a new account and immediately logs it in
func (ac *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	user, err := ac.authService.Register(
		r.FormValue("email"),
		r.FormValue("name"),
		r.FormValue("password"),
	)
	if errors.Is(err, services.ErrEmailTaken) {
		ac.sessions.Flash(w, r, err.Error())
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err != nil {
		ac.render(w, r, "register", &templateData{
			Flashes: []string{err.Error()},
			Form:    r.PostForm,
		})
		return
	}

	if err := ac.sessions.Login(w, r, user.ID); err != nil {
		http.Error(w, "Failed to establish session", http.StatusInternalServerError)
		return
	}
	logger.Info("user registered", "user_id", user.ID)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ShowLogin renders the login form
func (ac *AuthController) ShowLogin(w http.ResponseWriter, r *http.Request) {
	ac.render(w, r, "login", nil)
}

// Login authenticates the submitted credentials and establishes a session
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	user, err := ac.authService.Authenticate(r.FormValue("email"), r.FormValue("password"))
	if errors.Is(err, services.ErrUnknownEmail) || errors.Is(err, services.ErrWrongPassword) {
		ac.render(w, r, "login", &templateData{
			Flashes: []string{err.Error()},
			Form:    r.PostForm,
		})
		return
	}
	if err != nil {
		http.Error(w, "Login failed", http.StatusInternalServerError)
		return
	}

	if err := ac.sessions.Login(w, r, user.ID); err != nil {
		http.Error(w, "Failed to establish session", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout clears the session and redirects to the post listing
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	_ = ac.sessions.Logout(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
