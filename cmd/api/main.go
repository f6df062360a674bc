package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"pix-recovery/internal/client"
	"pix-recovery/internal/config"
	"pix-recovery/internal/repository"
	"pix-recovery/internal/server"
	"pix-recovery/internal/service"
	"syscall"
	"time"

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

	db := client.InitSqliteClient(cfg.DatabasePath)
	yeverClient := client.NewYeverClient(&cfg.Yever)

	cartRepo := repository.NewCartRepository(db)
	transactionRepo := repository.NewPixTransactionRepository(db)

	webhookService := service.NewWebhookService(cartRepo, cfg.Yever.WebhookSecret)
	cartService := service.NewCartService(cartRepo)
	pixService := service.NewPixService(cartRepo, transactionRepo, cfg.Pix.Key)
	orderService := service.NewOrderService(yeverClient)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(webhookService, cartService, pixService, orderService)

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

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
