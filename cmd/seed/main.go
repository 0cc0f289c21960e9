package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"roomchoice/internal/config"
	"roomchoice/internal/db"
	"roomchoice/internal/model"
	"roomchoice/internal/repository"
)

// Seeds the admin account and, when the rooms table is empty, a small demo
// floor plan so a fresh install has something to book.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Room{},
		&model.RoomLayout{},
		&model.Booking{},
		&model.Survey{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	if err := seedAdmin(ctx, gormDB); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	if err := seedRooms(ctx, gormDB); err != nil {
		log.Fatalf("Failed to seed rooms: %v", err)
	}

	log.Println("Seed completed")
}

func seedAdmin(ctx context.Context, gormDB *gorm.DB) error {
	username := getEnv("ADMIN_USERNAME", "admin")
	email := getEnv("ADMIN_EMAIL", "admin@roomchoice.local")
	password := getEnv("ADMIN_PASSWORD", "admin123")

	userRepo := repository.NewUserRepository(gormDB)

	existing, err := userRepo.FindByUsernameOrEmail(ctx, username, email)
	if err == nil && existing != nil {
		log.Printf("Admin user %q already exists, skipping", existing.Username)
		return nil
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check admin existence: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	log.Printf("Admin user %q created", username)
	return nil
}

func seedRooms(ctx context.Context, gormDB *gorm.DB) error {
	var count int64
	if err := gormDB.WithContext(ctx).Model(&model.Room{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count rooms: %w", err)
	}
	if count > 0 {
		log.Printf("Rooms already present (%d), skipping demo rooms", count)
		return nil
	}

	rooms := []model.Room{
		{RoomNumber: "A101", RoomType: "standard", Price: decimal.NewFromInt(100), Status: model.RoomStatusAvailable,
			Layout: &model.RoomLayout{PositionX: 0, PositionY: 0, Width: 1, Height: 1}},
		{RoomNumber: "A102", RoomType: "standard", Price: decimal.NewFromInt(100), Status: model.RoomStatusAvailable,
			Layout: &model.RoomLayout{PositionX: 1, PositionY: 0, Width: 1, Height: 1}},
		{RoomNumber: "B201", RoomType: "deluxe", Price: decimal.NewFromInt(180), Status: model.RoomStatusAvailable,
			Layout: &model.RoomLayout{PositionX: 0, PositionY: 1, Width: 2, Height: 1}},
		{RoomNumber: "B202", RoomType: "suite", Price: decimal.NewFromInt(250), Status: model.RoomStatusAvailable,
			Layout: &model.RoomLayout{PositionX: 2, PositionY: 1, Width: 2, Height: 2}},
	}

	if err := gormDB.WithContext(ctx).Create(&rooms).Error; err != nil {
		return fmt.Errorf("create demo rooms: %w", err)
	}

	log.Printf("Seeded %d demo rooms", len(rooms))
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
