package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"questacademy/internal/auth"
	"questacademy/internal/config"
	"questacademy/internal/database"
	"questacademy/internal/gemini"
	"questacademy/internal/handlers"
	"questacademy/internal/kvstore"
	"questacademy/internal/leaderboard"
	"questacademy/internal/minigames"
	"questacademy/internal/profile"
	"questacademy/internal/progression"
	"questacademy/internal/security"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database (supports sqlite, postgres, mysql)
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	if err := db.EnsureSchema(); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	// Initialize stores and services
	kv := kvstore.NewSQLStore(db)
	credentials := auth.NewService(kv)
	tokens := auth.NewTokenManager(cfg.SessionSecret, cfg.SessionDuration)
	profiles := profile.NewStore(kv)
	engine := progression.NewEngine(profiles)
	board := leaderboard.NewProjection(credentials, profiles)
	manager := minigames.NewManager()
	ai := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)

	if ai.Offline() {
		log.Println("No GEMINI_API_KEY set, game master runs in offline mode")
	}

	// Initialize handlers
	middleware := handlers.NewMiddleware(tokens, security.NewRateLimiter(10, time.Minute))
	authHandler := handlers.NewAuthHandler(credentials, tokens, profiles, engine, cfg.SessionDuration)
	questHandler := handlers.NewQuestHandler(ai)
	progressHandler := handlers.NewProgressHandler(profiles, engine, board)
	gameHandler := handlers.NewGameHandler(manager, engine)

	mux := handlers.NewRouter(middleware, authHandler, questHandler, progressHandler, gameHandler)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handlers.Logging(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
