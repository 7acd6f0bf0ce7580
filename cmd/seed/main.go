// Command seed provisions the initial users. Public registration only ever
// creates User-role accounts, so the first Admin has to come from here.
package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"

	"datavision/internal/config"
	"datavision/internal/db"
	apperrors "datavision/internal/errors"
	"datavision/internal/model"
	"datavision/internal/repository"
	"datavision/internal/service"
)

func main() {
	log.Println("Starting seed script...")

	_ = godotenv.Load()
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.RequestLog{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	// Token issuance is not needed for seeding.
	authService := service.NewAuthService(userRepo, nil)
	ctx := context.Background()

	adminUser := getEnv("SEED_ADMIN_USERNAME", "admin")
	adminPass := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPass == "" {
		log.Fatal("SEED_ADMIN_PASSWORD is not set")
	}

	seedUser(ctx, authService, adminUser, adminPass, model.RoleAdmin)

	if demoPass := os.Getenv("SEED_DEMO_PASSWORD"); demoPass != "" {
		seedUser(ctx, authService, getEnv("SEED_DEMO_USERNAME", "demo"), demoPass, model.RoleUser)
	}

	log.Println("Seed completed")
}

func seedUser(ctx context.Context, svc service.AuthService, username, password, role string) {
	user, err := svc.Register(ctx, username, password, role)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserAlreadyExists) {
			log.Printf("User %q already exists, skipping", username)
			return
		}
		log.Fatalf("Failed to create user %q: %v", username, err)
	}
	log.Printf("Created %s user %q (id=%d)", role, user.Username, user.ID)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
