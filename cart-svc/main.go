package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"bitecart/cart-svc/internal/backend"
	"bitecart/cart-svc/internal/domain"
	"bitecart/cart-svc/internal/service"
	"bitecart/cart-svc/internal/storage"
	"bitecart/config"

	httpapi "bitecart/cart-svc/internal/api/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	settings := config.LoadCartSettings()
	instanceID := uuid.NewString()
	logger = logger.With(zap.String("service", "cart-svc"), zap.String("instance", instanceID))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	cartWriter := config.NewKafkaWriter(config.CartEventsTopic)
	defer cartWriter.Close()
	orderWriter := config.NewKafkaWriter(config.OrderEventsTopic)
	defer orderWriter.Close()
	// Every instance needs every cart event, so each one joins its own group.
	cartReader := config.NewKafkaReader(config.CartEventsTopic, "cart-svc-"+instanceID)
	defer cartReader.Close()

	client := backend.NewClient(
		backend.Config{BaseURL: settings.BackendURL},
		&http.Client{Timeout: settings.HTTPTimeout},
		logger.Named("backend"),
	)

	publisher := storage.NewKafkaPublisher(cartWriter, orderWriter, instanceID)
	catalog := service.NewCatalog(client, storage.NewRedisProductCache(rdb, settings.ProductCacheTTL), logger.Named("catalog"))
	sessions := service.NewCartSessions(func(session domain.Session) *service.CartStore {
		return service.NewCartStore(session, client, catalog, publisher, logger.Named("cart"))
	}, settings.SessionIdleTTL)
	go sessions.RunSweeper(ctx, settings.SessionIdleTTL/2)
	submitter := service.NewOrderSubmitter(client, storage.NewRedisIdempotencyStore(rdb, settings.IdempotencyTTL), logger.Named("orders"))
	admin := service.NewOrderAdmin(client, publisher, logger.Named("admin"))

	watcher := service.NewOrderStatusWatcher(client, service.WatcherConfig{Interval: settings.PollInterval}, logger.Named("watcher"))
	defer watcher.Stop()

	onStatusChange := func(orderID string, oldStatus, newStatus domain.OrderStatus) {
		pubCtx, cancel := context.WithTimeout(context.Background(), settings.HTTPTimeout)
		defer cancel()
		if err := publisher.PublishStatusChange(pubCtx, orderID, oldStatus, newStatus); err != nil {
			logger.Warn("status change broadcast failed", zap.String("order_id", orderID), zap.Error(err))
		}
	}

	consumer := storage.NewCartEventConsumer(cartReader, sessions, instanceID, logger.Named("cart-events"))
	go consumer.Start(ctx)

	handler := &httpapi.Handler{
		Carts:          sessions,
		Catalog:        catalog,
		Orders:         submitter,
		Admin:          admin,
		Watcher:        watcher,
		QR:             service.DefaultQRGenerator{BaseURL: settings.TrackingBaseURL},
		OnStatusChange: onStatusChange,
		Logger:         logger.Named("http"),
	}

	server := &http.Server{
		Addr:              settings.Addr,
		Handler:           httpapi.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Cart Service starting", zap.String("addr", settings.Addr), zap.String("backend", settings.BackendURL))
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
