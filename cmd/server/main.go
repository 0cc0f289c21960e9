package main

import (
	"log"
	"net/http"
	"os"

	"roomchoice/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"roomchoice/internal/auth"
	"roomchoice/internal/cache"
	"roomchoice/internal/config"
	"roomchoice/internal/db"
	"roomchoice/internal/handler"
	"roomchoice/internal/model"
	"roomchoice/internal/repository"
	"roomchoice/internal/router"
	"roomchoice/internal/service"
)

// @title RoomChoice API
// @version 1.0
// @description Room booking API with room inventory, booking and survey lifecycles, and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Survey{},
			&model.Booking{},
			&model.RoomLayout{},
			&model.Room{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Room{},
		&model.RoomLayout{},
		&model.Booking{},
		&model.Survey{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	roomRepo := repository.NewRoomRepository(gormDB)
	bookingRepo := repository.NewBookingRepository(gormDB)
	surveyRepo := repository.NewSurveyRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	roomService := service.NewRoomService(roomRepo, cacheClient)
	bookingService := service.NewBookingService(bookingRepo, cacheClient)
	surveyService := service.NewSurveyService(surveyRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	roomHandler := handler.NewRoomHandler(roomService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	surveyHandler := handler.NewSurveyHandler(surveyService)

	// Register routes
	router.Register(
		e,
		cfg,
		tokenStore,
		userRepo,
		authHandler,
		roomHandler,
		bookingHandler,
		surveyHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
