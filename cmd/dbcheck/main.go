// dbcheck is a one-shot connection smoke test: connect, ping, count a
// couple of collections, exit non-zero on any failure.
package main

import (
	"fmt"
	"log"
	"os"

	"lawsite-api/internal/client"
	"lawsite-api/internal/config"
	"lawsite-api/internal/model"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db := client.InitDB(cfg.DatabaseURL)

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal(err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatal("ping failed:", err)
	}

	var admins, templates, orders int64
	if err := db.Model(&model.Admin{}).Count(&admins).Error; err != nil {
		log.Fatal("count admins:", err)
	}
	if err := db.Model(&model.Template{}).Count(&templates).Error; err != nil {
		log.Fatal("count templates:", err)
	}
	if err := db.Model(&model.Order{}).Count(&orders).Error; err != nil {
		log.Fatal("count orders:", err)
	}

	log.Printf("connection ok: %d admins, %d templates, %d orders", admins, templates, orders)
}
