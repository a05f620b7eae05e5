// Command schoolfinder-go serves the school-proximity API: signup/login with
// JWT session tokens, profile management, and a listing endpoint that ranks
// every stored school by distance from the caller's location.
//
// @title Schoolfinder API
// @version 1.0
// @description Multi-tenant school directory with proximity-ranked listing.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
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

	"github.com/user/schoolfinder-go/apperror"
	"github.com/user/schoolfinder-go/auth"
	"github.com/user/schoolfinder-go/config"
	"github.com/user/schoolfinder-go/db"
	"github.com/user/schoolfinder-go/schools"
	"github.com/user/schoolfinder-go/users"
)

func main() {
	// .env is a development convenience; in production variables are set
	// directly in the environment.
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading it: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pool, err := db.NewPool(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to create database pool: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.Database, "./migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	authService := auth.NewAuthService(pool, *cfg.Auth)
	authHandlers := auth.NewHandlers(authService)

	userService := users.NewUserService(pool)
	userHandlers := users.NewUserHandlers(userService)

	schoolService := schools.NewSchoolService(pool)
	schoolHandlers := schools.NewSchoolHandlers(schoolService)

	r := chi.NewRouter()

	// Global middleware. Chi requires all middleware to be registered
	// before any routes.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	// Credentials must be allowed so the session-token cookie is accepted
	// cross-origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:5174", "http://localhost:3001"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Panics become generic 500 JSON responses; detail stays in the log.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				if rvr := recover(); rvr != nil {
					log.Printf("Panic: %+v", rvr)
					writeError(ww, apperror.NewInternalError("Internal server error", nil))
				}
			}()
			next.ServeHTTP(ww, r)
		})
	})

	authGate := auth.Middleware(cfg.Auth, authService)

	// Liveness probe.
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		auth.WriteJSON(w, http.StatusOK, map[string]string{"message": "Server is running!"})
	})

	// Public routes.
	r.Post("/signup", authHandlers.HandleSignup())
	r.Post("/login", authHandlers.HandleLogin())
	r.Get("/listSchools", schoolHandlers.HandleListSchools())

	// Protected routes: the auth gate runs and completes before any of
	// these handlers read or mutate state.
	r.Group(func(r chi.Router) {
		r.Use(authGate)
		r.Get("/profile", userHandlers.HandleGetProfile())
		r.Put("/profile", userHandlers.HandleUpdateProfile())
		r.Delete("/profile", userHandlers.HandleDeleteProfile())
		r.Post("/addSchool", schoolHandlers.HandleAddSchool())
	})

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

// writeError is a local helper for the panic recovery middleware.
func writeError(w http.ResponseWriter, appErr *apperror.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode())
	if err := json.NewEncoder(w).Encode(appErr.ToResponse()); err != nil {
		http.Error(w, `{"error":"Failed to encode error response"}`, http.StatusInternalServerError)
	}
}
