package main

import (
	"log"
	"net/http"

	"vespera/docs"

	"github.com/labstack/echo/v4"

	"vespera/internal/auth"
	"vespera/internal/config"
	"vespera/internal/db"
	"vespera/internal/handler"
	"vespera/internal/model"
	"vespera/internal/repository"
	"vespera/internal/router"
	"vespera/internal/service"
)

// @title Véspera API
// @version 1.0
// @description Diary web application with session-based registration and login.
// @host localhost:3000
// @schemes http
func main() {
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.DiaryEntry{},
		&model.ContactMessage{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	sessionStore := auth.NewRedisSessionStore(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.SessionTTL)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	diaryRepo := repository.NewDiaryRepository(gormDB)
	contactRepo := repository.NewContactRepository(gormDB)

	// Initialize services
	authService := service.NewAuthService(userRepo, sessionStore)
	diaryService := service.NewDiaryService(diaryRepo)
	contactService := service.NewContactService(contactRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	diaryHandler := handler.NewDiaryHandler(diaryService)
	contactHandler := handler.NewContactHandler(contactService)

	// Register routes
	router.Register(e, cfg, authService, authHandler, diaryHandler, contactHandler)

	addr := ":" + cfg.ServerPort
	log.Printf("Servidor rodando em http://localhost%s", addr)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
