// This is the main entry point of the socialpost API server. It loads
// configuration, connects to the document store, wires the services and
// handlers, sets up the HTTP router and middleware, and runs the server
// with graceful shutdown.
//
// @title SocialPost API
// @version 1.0
// @description Minimal social-post API: signup/login, text/image posts, likes, comments.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/user/socialpost-go/apperror"
	"github.com/user/socialpost-go/auth"
	"github.com/user/socialpost-go/config"
	"github.com/user/socialpost-go/db"
	_ "github.com/user/socialpost-go/docs" // Generated Swagger docs
	"github.com/user/socialpost-go/posts"
	"github.com/user/socialpost-go/uploads"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading it: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Auth.JWTSecret == config.DevJWTSecret {
		log.Println("Warning: JWT_SECRET not set, using insecure development secret")
	}

	store, err := db.Connect(cfg.Mongo)
	if err != nil {
		log.Fatalf("Failed to connect to the document store: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(ctx); err != nil {
			log.Printf("Error disconnecting from the document store: %v", err)
		}
	}()

	indexCtx, indexCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := store.EnsureIndexes(indexCtx); err != nil {
		indexCancel()
		log.Fatalf("Failed to ensure indexes: %v", err)
	}
	indexCancel()

	media, err := uploads.NewSaver(cfg.Uploads)
	if err != nil {
		log.Fatalf("Failed to prepare upload directory: %v", err)
	}

	authService := auth.NewAuthService(store, *cfg.Auth)
	authHandlers := auth.NewHandlers(authService)

	postService := posts.NewPostService(store)
	postHandlers := posts.NewPostHandlers(postService, media)

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Server.ClientOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Panic recovery that answers in the standard error shape.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				if rvr := recover(); rvr != nil {
					log.Printf("Panic: %+v", rvr)
					writeError(ww, apperror.NewInternalError("Something went wrong.", nil))
				}
			}()
			next.ServeHTTP(ww, r)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "socialpost API is running"})
	})

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup", authHandlers.HandleSignup())
		r.Post("/login", authHandlers.HandleLogin())
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(authService))
			r.Get("/me", authHandlers.HandleMe())
		})
	})

	r.Route("/api/posts", func(r chi.Router) {
		postHandlers.RegisterRoutes(r, auth.RequireAuth(authService))
	})

	// Uploaded images, served read-only.
	r.Handle(uploads.URLPrefix+"/*", media.Handler())

	addr := fmt.Sprintf(":%s", cfg.Server.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}

// writeError is a local helper for the panic recovery middleware, kept
// separate to avoid depending on handler packages from main.
func writeError(w http.ResponseWriter, appErr *apperror.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode())
	if err := json.NewEncoder(w).Encode(appErr.ToResponse()); err != nil {
		http.Error(w, `{"message":"failed to encode error response"}`, http.StatusInternalServerError)
	}
}
