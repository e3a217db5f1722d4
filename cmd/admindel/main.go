// admindel hard-deletes an admin account by email. This is the only code
// path that physically removes rows; the HTTP surface only ever
// deactivates. It refuses to remove the last active super-admin.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"lawsite-api/internal/client"
	"lawsite-api/internal/config"
	"lawsite-api/internal/model"
	"lawsite-api/internal/repository"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	email := flag.String("email", "", "email of the admin to delete")
	flag.Parse()

	if *email == "" {
		fmt.Println("usage: admindel -email admin@example.com")
		os.Exit(1)
	}

	_ = godotenv.Load()

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db := client.InitDB(cfg.DatabaseURL)
	adminRepo := repository.NewAdminRepository(db)
	ctx := context.Background()

	target := strings.ToLower(strings.TrimSpace(*email))

	var admin model.Admin
	if err := db.Where("email = ?", target).First(&admin).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			log.Fatalf("no admin with email %s", target)
		}
		log.Fatal(err)
	}

	if admin.Role == model.RoleSuperAdmin && admin.IsActive {
		count, err := adminRepo.CountActiveByRole(ctx, model.RoleSuperAdmin)
		if err != nil {
			log.Fatal(err)
		}
		if count <= 1 {
			log.Fatal("refusing to delete the last active super-admin")
		}
	}

	deleted, err := adminRepo.HardDeleteByEmail(ctx, target)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("deleted %d admin record(s) for %s", deleted, target)
}
