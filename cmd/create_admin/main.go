package main

import (
	"context"
	"flag"
	"os"
	"time"

	"vedika_events/internal/config"
	"vedika_events/internal/domain/models"
	"vedika_events/internal/repository"

	"github.com/fatih/color"
	"golang.org/x/crypto/bcrypt"
)

// Provisions (or re-keys) the single admin account used by the
// dashboard. Run once against a fresh database, or again to rotate
// the password.
func main() {
	var username, password string
	flag.StringVar(&username, "username", "", "admin login name")
	flag.StringVar(&password, "password", "", "admin password (stored as bcrypt hash)")

	cfg := config.MustLoad()

	if username == "" || password == "" {
		color.Red("both -username and -password are required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo, err := repository.NewRepository(ctx, cfg.DSN)
	if err != nil {
		color.Red("failed to connect to database: %v", err)
		os.Exit(1)
	}
	defer repo.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		color.Red("failed to hash password: %v", err)
		os.Exit(1)
	}

	id, err := repo.Admin.SaveAdmin(ctx, models.Admin{
		Username:     username,
		PasswordHash: hash,
	})
	if err != nil {
		color.Red("failed to save admin: %v", err)
		os.Exit(1)
	}

	color.Green("admin %q saved (id=%s)", username, id)
}
