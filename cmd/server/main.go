package main

import (
	"log"
	"net/http"
	"os"

	"travel-planner/internal/config"
	"travel-planner/internal/handlers"
	"travel-planner/internal/planner"
	"travel-planner/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Config warning: %v (using defaults)", err)
	}

	dbPath := config.DBPath(cfg)
	db, err := storage.NewDB(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := bootstrapAdmin(db); err != nil {
		log.Fatalf("Failed to bootstrap admin user: %v", err)
	}

	if err := db.CleanExpiredSessions(); err != nil {
		log.Printf("Failed to clean expired sessions: %v", err)
	}

	h := handlers.NewHandlers(db, "web/templates", cfg.Server.SecureCookie)
	mux := setupRouter(h, "web/static")

	addr := cfg.Server.ListenAddr
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	log.Printf("Listening on %s (database %s)", addr, dbPath)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// setupRouter wires all routes. Pre-login pages are public; everything
// behind the menu goes through the auth middleware.
func setupRouter(h *handlers.Handlers, staticDir string) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/trips", http.StatusFound)
	})

	mux.HandleFunc("GET /login", h.LoginForm)
	mux.HandleFunc("POST /login", h.Login)
	mux.HandleFunc("GET /register", h.RegisterForm)
	mux.HandleFunc("POST /register", h.Register)
	mux.HandleFunc("GET /forgot", h.ForgotForm)
	mux.HandleFunc("POST /forgot", h.Forgot)
	mux.HandleFunc("GET /logout", h.Logout)

	authed := func(fn http.HandlerFunc) http.Handler {
		return h.AuthMiddleware(fn)
	}

	mux.Handle("GET /trips", authed(h.Calendar))
	mux.Handle("GET /trips/book", authed(h.BookTripForm))
	mux.Handle("POST /trips/book", authed(h.BookTrip))
	mux.Handle("GET /recommend", authed(h.Recommend))
	mux.Handle("GET /budget", authed(h.BudgetPlanner))
	mux.Handle("GET /export", authed(h.ExportForm))
	mux.Handle("POST /export", authed(h.Export))
	mux.Handle("GET /stats", authed(h.Statistics))

	return mux
}

// bootstrapAdmin registers the ADMIN_USER/ADMIN_PASSWORD account when the
// users table is empty, so a fresh deployment has a way in.
func bootstrapAdmin(db *storage.DB) error {
	username := os.Getenv("ADMIN_USER")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		return nil
	}

	count, err := db.UserCount()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Printf("Creating initial user %q", username)
	return planner.Register(db, username, password, password)
}
