package api

import (
	"net/http"
	"time"

	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/api/handler"
	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/api/middleware"
	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/app/service"
	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/common/security"
	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/platform/eventlog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	authService *service.AuthService,
	userService *service.UserService,
	noteService *service.NoteService,
	events *eventlog.Logger,
	allowedOrigins []string,
	webDir string,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger) // Chi's logger
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	r.Use(middleware.EventLogger(events))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Origin"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// JWT Auth Middleware Setup
	// It will search for a token in "Authorization: Bearer T".
	r.Use(jwtauth.Verifier(security.TokenAuth)) // Verifies token, puts claims in context

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Auth routes (public)
	authHandler := handler.NewAuthHandler(authService)
	r.Route("/auth", authHandler.RegisterRoutes)

	// User routes (authenticated)
	userHandler := handler.NewUserHandler(userService)
	r.Route("/users", func(users chi.Router) {
		users.Use(middleware.Authenticator)
		users.Use(middleware.ManagerOrAdmin)
		userHandler.RegisterRoutes(users)
	})

	// Note routes (authenticated)
	noteHandler := handler.NewNoteHandler(noteService)
	r.Route("/notes", func(notes chi.Router) {
		notes.Use(middleware.Authenticator)
		noteHandler.RegisterRoutes(notes)
	})

	// Landing page, assets, and catch-all 404
	staticHandler := handler.NewStaticHandler(webDir)
	staticHandler.RegisterRoutes(r)

	return r
}
