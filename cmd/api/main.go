package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"courseHub/cmd/app"
	"courseHub/internal/config"
	handlers "courseHub/internal/handler"
	"courseHub/internal/middleware"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, db, cfg)

	required := middleware.RequireAuth(cfg)
	optional := middleware.OptionalAuth(cfg)

	router := mux.NewRouter()

	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	router.HandleFunc("/api/auth/register", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/login", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/refresh-token", handler.RefreshToken).Methods(http.MethodPost)

	router.Handle("/courses/", optional(http.HandlerFunc(handler.Index))).Methods(http.MethodGet)
	router.Handle("/courses/new", required(http.HandlerFunc(handler.NewCourse))).Methods(http.MethodGet)
	router.Handle("/courses/create", required(http.HandlerFunc(handler.CreateCourse))).Methods(http.MethodPost)
	router.Handle("/courses/{course_id}", optional(http.HandlerFunc(handler.ShowCourse))).Methods(http.MethodGet)
	router.Handle("/courses/{course_id}/reviews", optional(http.HandlerFunc(handler.ListReviews))).Methods(http.MethodGet)
	router.Handle("/courses/{course_id}/reviews/create", required(http.HandlerFunc(handler.CreateReview))).Methods(http.MethodPost)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Сервер запущен на %s", addr)
	log.Printf("База данных: %s", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
