package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/naveenrjn/prep-hub-be/internal/api"
	"github.com/naveenrjn/prep-hub-be/internal/auth"
	"github.com/naveenrjn/prep-hub-be/internal/config"
	"github.com/naveenrjn/prep-hub-be/internal/database"
	"github.com/naveenrjn/prep-hub-be/internal/logger"
	"github.com/naveenrjn/prep-hub-be/internal/monitoring"
	"github.com/naveenrjn/prep-hub-be/internal/ollama"
	"github.com/naveenrjn/prep-hub-be/internal/services"
	"github.com/rs/zerolog/log"
)

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}
	if err := database.Seed(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed database")
	}

	// Set up the Ollama chat backend client
	ollamaClient := ollama.New(cfg.OllamaBaseURL, cfg.OllamaModel, cfg.OllamaTimeout)

	// Set up services
	tokenService := auth.NewTokenService([]byte(cfg.JWTSecret), cfg.TokenTTL)
	userService := services.NewUserService(db)
	subjectService := services.NewSubjectService(db)
	quizService := services.NewQuizService(db)
	progressService := services.NewProgressService(db)
	paperService := services.NewPaperService(db)
	chatService := services.NewChatService(db, ollamaClient)

	// Set up and run the background maintenance jobs
	maintenance := monitoring.NewMaintenance(chatService, ollamaClient, cfg.ChatRetention)
	go maintenance.Run()

	// Set up router
	router := api.NewRouter(api.Deps{
		Tokens:         tokenService,
		Users:          userService,
		Subjects:       subjectService,
		Quizzes:        quizService,
		Progress:       progressService,
		Papers:         paperService,
		Chat:           chatService,
		AIHealth:       ollamaClient,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	maintenance.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
