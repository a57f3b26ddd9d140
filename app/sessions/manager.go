// Package sessions binds requests to authenticated users through a signed
// cookie. The cookie carries only the user identifier; the user record is
// loaded from the store on every request. Anonymous requests resolve to no
// user, never to an error.
package sessions

import (
	"net/http"

	"inkwell/app/models"
	"inkwell/app/repositories"

	gorilla "github.com/gorilla/sessions"
)

// CookieName is the name of the signed session cookie.
const CookieName = "inkwell_session"

const userIDKey = "user_id"

// Manager resolves zero or one current identity per request and owns the
// login/logout side effects on the session cookie.
type Manager struct {
	store    *gorilla.CookieStore
	userRepo repositories.UserRepository
}

// NewManager creates a Manager signing cookies with secret.
func NewManager(secret string, userRepo repositories.UserRepository) *Manager {
	store := gorilla.NewCookieStore([]byte(secret))
	store.Options = &gorilla.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store, userRepo: userRepo}
}

// Login establishes a session for the user, setting the session cookie.
func (m *Manager) Login(w http.ResponseWriter, r *http.Request, userID uint) error {
	session, _ := m.store.Get(r, CookieName)
	session.Values[userIDKey] = userID
	return session.Save(r, w)
}

// Logout clears the session and expires the cookie.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, CookieName)
	delete(session.Values, userIDKey)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// CurrentUser returns the user bound to the request's session, or nil when
// there is no valid session or the user no longer exists. Callers must not
// assume a concrete identity is present.
func (m *Manager) CurrentUser(r *http.Request) *models.User {
	// A tampered or missing cookie yields a fresh empty session; the
	// error itself is not actionable here.
	session, _ := m.store.Get(r, CookieName)
	id, ok := session.Values[userIDKey].(uint)
	if !ok {
		return nil
	}
	user, err := m.userRepo.GetByID(id)
	if err != nil {
		return nil
	}
	return user
}

// Flash queues a one-shot user-visible message on the session.
func (m *Manager) Flash(w http.ResponseWriter, r *http.Request, msg string) {
	session, _ := m.store.Get(r, CookieName)
	session.AddFlash(msg)
	_ = session.Save(r, w)
}

// Flashes drains and returns the queued messages.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) []string {
	session, _ := m.store.Get(r, CookieName)
	raw := session.Flashes()
	if len(raw) > 0 {
		_ = session.Save(r, w)
	}
	msgs := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			msgs = append(msgs, s)
		}
	}
	return msgs
}
