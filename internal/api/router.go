package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/naveenrjn/prep-hub-be/internal/api/handlers"
	"github.com/naveenrjn/prep-hub-be/internal/auth"
	"github.com/naveenrjn/prep-hub-be/internal/services"
)

// Deps bundles everything the router needs.
type Deps struct {
	Tokens         *auth.TokenService
	Users          services.UserServiceProvider
	Subjects       services.SubjectServiceProvider
	Quizzes        services.QuizServiceProvider
	Progress       services.ProgressServiceProvider
	Papers         services.PaperServiceProvider
	Chat           services.ChatServiceProvider
	AIHealth       handlers.HealthChecker
	AllowedOrigins []string
}

// NewRouter creates and configures a new Chi router.
func NewRouter(d Deps) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(d.Users, d.Tokens)
	subjectHandler := handlers.NewSubjectHandler(d.Subjects)
	quizHandler := handlers.NewQuizHandler(d.Quizzes)
	progressHandler := handlers.NewProgressHandler(d.Progress)
	paperHandler := handlers.NewPaperHandler(d.Papers)
	chatHandler := handlers.NewChatHandler(d.Chat)
	healthHandler := handlers.NewHealthHandler(d.AIHealth)

	requireAuth := auth.RequireAuth(d.Tokens, d.Users)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.Get)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.With(requireAuth).Get("/me", authHandler.Me)
		})

		r.Route("/subjects", func(r chi.Router) {
			r.Get("/", subjectHandler.List)
			r.Get("/{id}/questions", subjectHandler.ListQuestions)
			r.With(requireAuth).Post("/{id}/questions", subjectHandler.CreateQuestion)
		})

		r.Route("/quizzes", func(r chi.Router) {
			r.Get("/", quizHandler.List)
			r.With(requireAuth).Post("/", quizHandler.Create)
			r.With(requireAuth).Post("/{id}/attempts", quizHandler.RecordAttempt)
		})

		r.Get("/question-papers", paperHandler.List)

		r.Route("/user", func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/progress", progressHandler.Get)
			r.Post("/progress", progressHandler.Update)
			r.Get("/attempts", quizHandler.ListAttempts)
		})

		r.Route("/chat", func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", chatHandler.Ask)
			r.Get("/history", chatHandler.History)
		})
	})

	return r
}
