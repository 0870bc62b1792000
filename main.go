package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/shadecart/shadecart/initializers"
	"github.com/shadecart/shadecart/routes"
)

func init() {
	envErr := initializers.LoadEnv()
	initializers.InitLogger()
	if envErr != nil {
		initializers.Logger.Info("no .env file loaded, using process environment", zap.Error(envErr))
	}
	initializers.ConnectToDB()
	initializers.SyncDatabase()
	initializers.ConnectToRedis()
	initializers.SeedCatalog()
}

func main() {
	defer initializers.Logger.Sync()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           routes.NewRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		initializers.Logger.Info("server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			initializers.Logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	initializers.Logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		initializers.Logger.Error("server forced to shutdown", zap.Error(err))
	}
	if initializers.Redis != nil {
		initializers.Redis.Close()
	}
}
