// scripts/create_admin.go
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Vigneshwaren333/LexComply/config"
	"github.com/Vigneshwaren333/LexComply/database"
	"github.com/Vigneshwaren333/LexComply/models"
)

// Seeds a portal account so the firm's staff can log in before public
// registration is opened. Run once against a fresh database:
//
//	ADMIN_EMAIL=admin@lexcomply.in ADMIN_PASSWORD=... go run ./scripts
func main() {
	cfg := config.Load()
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer db.Close()

	name := getenv("ADMIN_NAME", "Admin")
	email := getenv("ADMIN_EMAIL", "admin@lexcomply.in")
	password := getenv("ADMIN_PASSWORD", "changeme")

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("failed to query users: %v", err)
		}
	} else {
		fmt.Println("account already exists for", email)
		os.Exit(0)
	}

	u := models.User{Name: name, Email: email, Password: string(hashed)}
	if err := db.Create(&u).Error; err != nil {
		log.Fatalf("failed to insert account: %v", err)
	}

	fmt.Println("account created:", email)
	if password == "changeme" {
		fmt.Println("warning: default password in use, change it after first login")
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
