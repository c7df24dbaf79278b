package handlers

import (
	"context"
	"html/template"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"travel-planner/internal/auth"
	"travel-planner/internal/models"
	"travel-planner/internal/planner"
	"travel-planner/internal/storage"
)

// Context key type to avoid collisions.
type contextKey string

const (
	// UserContextKey is the context key for the authenticated user.
	UserContextKey contextKey = "user"
	// SessionCookieName is the name of the session cookie.
	SessionCookieName = "session"
	// SessionDuration is how long sessions last (30 days).
	SessionDuration = 30 * 24 * time.Hour
)

// Handlers holds dependencies for HTTP handlers.
type Handlers struct {
	db           *storage.DB
	templateDir  string
	secureCookie bool
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(db *storage.DB, templateDir string, secureCookie bool) *Handlers {
	return &Handlers{db: db, templateDir: templateDir, secureCookie: secureCookie}
}

// GetUserFromContext retrieves the authenticated user from request context.
func GetUserFromContext(r *http.Request) *models.User {
	if user, ok := r.Context().Value(UserContextKey).(*models.User); ok {
		return user
	}
	return nil
}

// AuthMiddleware wraps handlers to require authentication.
// It also implements rolling sessions: if a session is past the halfway point
// of its lifetime, it automatically renews the session.
func (h *Handlers) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		sessionInfo, err := h.db.ValidateSessionWithInfo(cookie.Value)
		if err != nil {
			// Invalid or expired session, clear the cookie
			h.clearSessionCookie(w)
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		// Rolling session: renew if past halfway point
		now := time.Now()
		timeUntilExpiry := sessionInfo.ExpiresAt.Sub(now)
		halfSessionDuration := SessionDuration / 2

		if timeUntilExpiry < halfSessionDuration {
			newExpiresAt := now.Add(SessionDuration)
			if err := h.db.RenewSession(cookie.Value, newExpiresAt); err == nil {
				h.setSessionCookie(w, cookie.Value)
			}
			// If renewal fails, just continue with the current session
		}

		ctx := context.WithValue(r.Context(), UserContextKey, sessionInfo.User)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// plannerFor returns a Planner bound to the request's authenticated user.
func (h *Handlers) plannerFor(r *http.Request) *planner.Planner {
	user := GetUserFromContext(r)
	return planner.New(h.db, user.Username)
}

// AuthViewModel holds data for the login, register, and forgot pages.
type AuthViewModel struct {
	Error   string
	Message string
}

// LoginForm renders the login page.
func (h *Handlers) LoginForm(w http.ResponseWriter, r *http.Request) {
	// If already logged in, go straight to the calendar
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		if _, err := h.db.ValidateSession(cookie.Value); err == nil {
			http.Redirect(w, r, "/trips", http.StatusFound)
			return
		}
	}
	h.render(w, r, "login.html", AuthViewModel{})
}

// Login handles the login form submission.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, r, "login.html", AuthViewModel{Error: "Invalid form submission"})
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	if username == "" || password == "" {
		h.render(w, r, "login.html", AuthViewModel{Error: "Username and password are required"})
		return
	}

	user, ok, err := planner.Authenticate(h.db, username, password)
	if err != nil {
		log.Printf("Login error: %v", err)
		h.render(w, r, "login.html", AuthViewModel{Error: "An error occurred. Please try again."})
		return
	}
	if !ok {
		h.render(w, r, "login.html", AuthViewModel{Error: "Invalid username or password"})
		return
	}

	token, err := auth.GenerateSessionToken()
	if err != nil {
		log.Printf("Failed to generate session token: %v", err)
		h.render(w, r, "login.html", AuthViewModel{Error: "An error occurred. Please try again."})
		return
	}

	expiresAt := time.Now().Add(SessionDuration)
	if err := h.db.CreateSession(token, user.Username, expiresAt); err != nil {
		log.Printf("Failed to create session: %v", err)
		h.render(w, r, "login.html", AuthViewModel{Error: "An error occurred. Please try again."})
		return
	}

	h.setSessionCookie(w, token)
	http.Redirect(w, r, "/trips", http.StatusFound)
}

// RegisterForm renders the registration page.
func (h *Handlers) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "register.html", AuthViewModel{})
}

// Register handles the registration form submission. Registering a taken
// username is silently ignored, so the response is the same either way.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, r, "register.html", AuthViewModel{Error: "Invalid form submission"})
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	answer := r.FormValue("security_answer")

	if username == "" || password == "" || answer == "" {
		h.render(w, r, "register.html", AuthViewModel{Error: "All fields are required"})
		return
	}

	if err := planner.Register(h.db, username, password, answer); err != nil {
		log.Printf("Register error: %v", err)
		h.render(w, r, "register.html", AuthViewModel{Error: "An error occurred. Please try again."})
		return
	}

	h.render(w, r, "login.html", AuthViewModel{Message: "Registered successfully! Please log in."})
}

// ForgotForm renders the password reset page.
func (h *Handlers) ForgotForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "forgot.html", AuthViewModel{})
}

// Forgot handles the password reset submission: the security answer must
// match, and the password is rotated to the newly supplied one.
func (h *Handlers) Forgot(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, r, "forgot.html", AuthViewModel{Error: "Invalid form submission"})
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	answer := r.FormValue("security_answer")
	newPassword := r.FormValue("new_password")

	if username == "" || answer == "" || newPassword == "" {
		h.render(w, r, "forgot.html", AuthViewModel{Error: "All fields are required"})
		return
	}

	ok, err := planner.ResetPassword(h.db, username, answer, newPassword)
	if err != nil {
		log.Printf("Forgot error: %v", err)
		h.render(w, r, "forgot.html", AuthViewModel{Error: "An error occurred. Please try again."})
		return
	}
	if !ok {
		h.render(w, r, "forgot.html", AuthViewModel{Error: "Invalid username or security answer"})
		return
	}

	h.render(w, r, "login.html", AuthViewModel{Message: "Password updated. Please log in."})
}

// Logout handles user logout.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if err := h.db.DeleteSession(cookie.Value); err != nil {
			log.Printf("Failed to delete session: %v", err)
		}
	}
	h.clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *Handlers) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionDuration.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handlers) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

// NavItem is one entry in the authenticated menu.
type NavItem struct {
	Label string
	Href  string
}

// navItems is the authenticated menu, derived from the shared command list
// so the web and terminal menus can never drift apart.
var navItems = buildNav()

func buildNav() []NavItem {
	items := make([]NavItem, 0, len(planner.Commands))
	for _, c := range planner.Commands {
		items = append(items, NavItem{Label: c.String(), Href: "/" + c.Slug()})
	}
	return items
}

// page wraps view data with the chrome every template needs.
type page struct {
	Nav      []NavItem
	Username string
	Data     any
}

func (h *Handlers) render(w http.ResponseWriter, r *http.Request, viewName string, data any) {
	tmpl, err := template.ParseFiles(filepath.Join(h.templateDir, "base.html"), filepath.Join(h.templateDir, viewName))
	if err != nil {
		log.Printf("Template error: %v", err)
		http.Error(w, "Template error", http.StatusInternalServerError)
		return
	}

	p := page{Data: data}
	if user := GetUserFromContext(r); user != nil {
		p.Nav = navItems
		p.Username = user.Username
	}

	target := "base.html"
	if r.Header.Get("HX-Request") == "true" {
		target = "content"
	}
	if err := tmpl.ExecuteTemplate(w, target, p); err != nil {
		log.Printf("Template execution error: %v", err)
	}
}
