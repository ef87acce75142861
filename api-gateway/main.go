package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"bitecart/api-gateway/internal/gateway"
	"bitecart/config"

	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	logger = logger.With(zap.String("service", "api-gateway"))

	settings := config.LoadGatewaySettings()

	gw := gateway.NewGateway(gateway.Config{
		CartSvcURL:    settings.CartSvcURL,
		HistorySvcURL: settings.HistorySvcURL,
		BackendURL:    settings.BackendURL,
	}, &http.Client{Timeout: settings.Timeout}, logger)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://127.0.0.1:5173", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"X-Session-Invalid"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:              settings.Addr,
		Handler:           c.Handler(gw.SetupRoutes()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("API Gateway starting",
			zap.String("addr", settings.Addr),
			zap.String("cart_svc", settings.CartSvcURL),
			zap.String("history_svc", settings.HistorySvcURL),
			zap.String("backend", settings.BackendURL))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
	}
}
