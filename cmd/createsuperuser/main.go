// Command createsuperuser creates an administrative user with staff and
// superuser flags set.
package main

import (
	"flag"
	"log"

	"github.com/kaitoh/sns-api/internal/config"
	"github.com/kaitoh/sns-api/internal/database"
	"github.com/kaitoh/sns-api/internal/repository"
	"github.com/kaitoh/sns-api/internal/services"
)

func main() {
	email := flag.String("email", "", "email address of the superuser")
	password := flag.String("password", "", "password of the superuser")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	cfg := config.Load()

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(database.GetDB())
	authService := services.NewAuthService(userRepo)

	user, err := authService.CreateSuperuser(*email, *password)
	if err != nil {
		log.Fatalf("Failed to create superuser: %v", err)
	}

	log.Printf("Superuser %s created (id=%d)", user.Email, user.ID)
}
