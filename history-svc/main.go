package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"bitecart/config"
	"bitecart/history-svc/internal/service"
	"bitecart/history-svc/internal/storage"

	httpapi "bitecart/history-svc/internal/api/http"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	logger = logger.With(zap.String("service", "history-svc"))

	settings := config.LoadHistorySettings()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	store := storage.NewStore(db, rdb, settings.StatusTTL)
	if err := store.EnsureSchema(ctx); err != nil {
		logger.Fatal("failed to create schema", zap.Error(err))
	}

	reader := config.NewKafkaReader(config.OrderEventsTopic, "history-svc")
	defer reader.Close()

	consumer := service.NewConsumer(reader, store, logger.Named("consumer"))
	go consumer.Start(ctx)

	handler := httpapi.NewHandler(service.NewHistoryService(store), logger.Named("http"))
	server := &http.Server{
		Addr:              settings.Addr,
		Handler:           httpapi.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("History Service starting", zap.String("addr", settings.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
	}
}
