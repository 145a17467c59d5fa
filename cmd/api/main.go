package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pizza-shop-backend/internal/client"
	"pizza-shop-backend/internal/config"
	"pizza-shop-backend/internal/logger"
	"pizza-shop-backend/internal/repository"
	"pizza-shop-backend/internal/server"
	"pizza-shop-backend/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
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

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := client.InitSqliteClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("init database", zap.Error(err))
	}

	squareClient := client.NewSquareClient(&cfg.Square)
	if !squareClient.Configured() {
		log.Warn("square gateway not configured, card payments disabled")
	}

	orderRepo := repository.NewOrderRepository(db)
	pizzaRepo := repository.NewPizzaRepository(db)

	if err := pizzaRepo.Seed(context.Background()); err != nil {
		log.Fatal("seed menu", zap.Error(err))
	}

	checkoutService := service.NewCheckoutService(orderRepo, pizzaRepo, squareClient, log)
	menuService := service.NewMenuService(pizzaRepo)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(checkoutService, menuService)

	log.Info("starting HTTP server", zap.String("addr", serverAddr))
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Info("signal received, starting graceful shutdown")

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error", zap.Error(err))
	}
}
