package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"star-gestao-backend/internal/config"
	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/logger"
	"star-gestao-backend/internal/repository"
	"star-gestao-backend/internal/repository/postgres"
	"star-gestao-backend/internal/security"
)

const minPasswordLength = 8

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	username := flag.String("usuario", "", "Login name of the new user")
	password := flag.String("senha", "", "Password of the new user")
	name := flag.String("nome", "", "Display name (defaults to the login name)")
	flag.Parse()

	if strings.TrimSpace(*username) == "" || *password == "" {
		log.Fatalf("usage: create_user -usuario <login> -senha <password> [-nome <name>]")
	}
	if len(*password) < minPasswordLength {
		log.Fatalf("password must have at least %d characters", minPasswordLength)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	hash, err := security.HashPassword(*password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user := &domain.User{
		Username:     strings.TrimSpace(*username),
		PasswordHash: hash,
		Name:         *name,
	}
	if user.Name == "" {
		user.Name = user.Username
	}

	if err := postgres.NewUserRepository(db).Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			log.Fatalf("User %q already exists", user.Username)
		}
		log.Fatalf("Failed to create user: %v", err)
	}
	logger.Info("User created", "id", user.ID, "usuario", user.Username)
}
