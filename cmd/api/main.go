package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"lawsite-api/internal/client"
	"lawsite-api/internal/config"
	"lawsite-api/internal/repository"
	"lawsite-api/internal/server"
	"lawsite-api/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}
	if cfg.JWTSecret == "" || cfg.Razorpay.WebhookSecret == "" {
		fmt.Println("JWT_SECRET and RAZORPAY_WEBHOOK_SECRET must be set")
		os.Exit(1)
	}

	db := client.InitDB(cfg.DatabaseURL)
	gateway := client.NewRazorpayClient(&cfg.Razorpay)

	adminRepo := repository.NewAdminRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	galleryBlogRepo := repository.NewGalleryBlogRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	webhookEventRepo := repository.NewWebhookEventRepository(db)

	adminService := service.NewAdminService(adminRepo, cfg.JWTSecret)
	contentService := service.NewContentService(templateRepo, blogRepo, galleryRepo, galleryBlogRepo, photoRepo)
	paymentService := service.NewPaymentService(gateway, templateRepo, orderRepo, webhookEventRepo)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	srv := server.NewServer(adminService, contentService, paymentService, cfg.JWTSecret, cfg.BaseURL)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
