package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"familycookbook/cmd/app"
	"familycookbook/internal/config"
	handlers "familycookbook/internal/handler"
	"familycookbook/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}
	if cfg.Admin.Password == "" && cfg.Admin.PasswordHash == "" {
		log.Fatal("ADMIN_PASSWORD или ADMIN_PASSWORD_HASH не установлен в .env файле")
	}

	db, _, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg)

	router := mux.NewRouter()
	router.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	// public endpoints
	api.HandleFunc("/health", handler.HealthHandler).Methods(http.MethodGet)
	api.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)

	api.HandleFunc("/recipes", handler.GetRecipes).Methods(http.MethodGet)
	api.HandleFunc("/recipes/submit", handler.SubmitRecipe).Methods(http.MethodPost)
	api.HandleFunc("/recipes/{id}", handler.GetRecipe).Methods(http.MethodGet)

	api.HandleFunc("/family-stories", handler.GetStories).Methods(http.MethodGet)
	api.HandleFunc("/family-stories/{id}", handler.GetStory).Methods(http.MethodGet)

	// admin endpoints
	admin := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireAdmin(h)
	}

	api.Handle("/recipes", admin(handler.CreateRecipe)).Methods(http.MethodPost)
	api.Handle("/recipes/{id}", admin(handler.UpdateRecipe)).Methods(http.MethodPut)
	api.Handle("/recipes/{id}", admin(handler.DeleteRecipe)).Methods(http.MethodDelete)
	api.Handle("/recipes/{id}/status", admin(handler.SetRecipeStatus)).Methods(http.MethodPatch)
	api.Handle("/recipes/{id}/image", admin(handler.UploadRecipeImage)).Methods(http.MethodPost)
	api.Handle("/admin/recipes", admin(handler.AdminGetRecipes)).Methods(http.MethodGet)
	api.Handle("/admin/recipes/{id}", admin(handler.AdminGetRecipe)).Methods(http.MethodGet)

	api.Handle("/family-stories", admin(handler.CreateStory)).Methods(http.MethodPost)
	api.Handle("/family-stories/{id}", admin(handler.UpdateStory)).Methods(http.MethodPut)
	api.Handle("/family-stories/{id}", admin(handler.DeleteStory)).Methods(http.MethodDelete)
	api.Handle("/family-stories/{id}/status", admin(handler.SetStoryStatus)).Methods(http.MethodPatch)
	api.Handle("/admin/family-stories", admin(handler.AdminGetStories)).Methods(http.MethodGet)
	api.Handle("/admin/family-stories/{id}", admin(handler.AdminGetStory)).Methods(http.MethodGet)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.Classify(services.Auth),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
