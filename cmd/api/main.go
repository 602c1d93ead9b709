package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"photoshare/cmd/app"
	"photoshare/internal/config"
	handlers "photoshare/internal/handler"
	"photoshare/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET не установлен")
	}

	db, repo, services, fileStore := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, fileStore, db, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handler.Index).Methods(http.MethodGet)
	router.HandleFunc("/health", handler.HealthHandler).Methods(http.MethodGet)

	router.HandleFunc("/signup", handler.Signup).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/login", handler.Login).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/logout", handler.Logout).Methods(http.MethodGet)

	router.HandleFunc("/dashboard", handler.Dashboard).Methods(http.MethodGet)
	router.HandleFunc("/upload", handler.Upload).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/profile", handler.Profile).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/user_profile/{username}", handler.UserProfile).Methods(http.MethodGet)
	router.HandleFunc("/edit_post/{post_id:[0-9]+}", handler.EditPost).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/delete_post/{post_id:[0-9]+}", handler.DeletePost).Methods(http.MethodPost)

	router.HandleFunc("/messages", handler.Messages).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/send_message", handler.SendMessage).Methods(http.MethodPost)
	router.HandleFunc("/delete_message/{message_id:[0-9]+}", handler.DeleteMessage).Methods(http.MethodPost)
	router.HandleFunc("/send_post_message/{post_id:[0-9]+}", handler.SendPostMessage).Methods(http.MethodPost)

	router.HandleFunc("/search", handler.Search).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/user_list", handler.UserList).Methods(http.MethodGet, http.MethodPost)

	router.HandleFunc("/uploads/{filename}", handler.ServeUpload).Methods(http.MethodGet)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.SessionMiddleware(services.Auth),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s (%s)\n", cfg.DB.Conn, cfg.DB.Driver)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
