package tests

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"bitecart/cart-svc/internal/domain"
	"bitecart/cart-svc/internal/mocks"
	"bitecart/cart-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestRedisProductCache(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := storage.NewRedisProductCache(client, time.Minute)
	ctx := context.Background()

	_, ok, err := cache.Get(ctx, "A")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, *productA))
	assert.True(t, mr.Exists("product:A"))
	assert.Equal(t, time.Minute, mr.TTL("product:A"))

	got, ok, err := cache.Get(ctx, "A")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, productA.Name, got.Name)
	assert.True(t, got.Price.Equal(productA.Price))
	assert.True(t, got.Discount.Equal(productA.Discount))

	mr.FastForward(2 * time.Minute)
	_, ok, err = cache.Get(ctx, "A")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, *productA))
	require.NoError(t, cache.Delete(ctx, "A"))
	assert.False(t, mr.Exists("product:A"))
}

func TestRedisProductCache_CorruptEntry(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := storage.NewRedisProductCache(client, time.Minute)
	require.NoError(t, mr.Set("product:A", "{not json"))

	_, ok, err := cache.Get(context.Background(), "A")

	assert.Error(t, err)
	assert.False(t, ok)
}

func TestRedisIdempotencyStore_Lifecycle(t *testing.T) {
	mr, client := newTestRedis(t)
	store := storage.NewRedisIdempotencyStore(client, 15*time.Minute)
	ctx := context.Background()

	reserved, err := store.Reserve(ctx, "k1")
	require.NoError(t, err)
	assert.True(t, reserved)

	again, err := store.Reserve(ctx, "k1")
	require.NoError(t, err)
	assert.False(t, again)

	_, found, err := store.Lookup(ctx, "k1")
	require.NoError(t, err)
	assert.False(t, found, "a pending reservation is not a completed order")

	order := domain.Order{ID: "o1", UserID: "u1", Status: domain.StatusPending, TotalAmount: dec("230")}
	require.NoError(t, store.Complete(ctx, "k1", order))
	assert.Equal(t, 15*time.Minute, mr.TTL("idempotency:order:k1"))

	prior, found, err := store.Lookup(ctx, "k1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "o1", prior.ID)
	assert.True(t, prior.TotalAmount.Equal(dec("230")))
}

func TestRedisIdempotencyStore_ReleaseAllowsRetry(t *testing.T) {
	_, client := newTestRedis(t)
	store := storage.NewRedisIdempotencyStore(client, time.Minute)
	ctx := context.Background()

	_, err := store.Reserve(ctx, "k2")
	require.NoError(t, err)
	require.NoError(t, store.Release(ctx, "k2"))

	reserved, err := store.Reserve(ctx, "k2")
	require.NoError(t, err)
	assert.True(t, reserved)
}

func TestKafkaPublisher(t *testing.T) {
	cartWriter := mocks.NewMessageWriter(t)
	orderWriter := mocks.NewMessageWriter(t)
	publisher := storage.NewKafkaPublisher(cartWriter, orderWriter, "instance-1")
	ctx := context.Background()

	cartWriter.On("WriteMessages", ctx, mock.MatchedBy(func(msgs []kafka.Message) bool {
		if len(msgs) != 1 || string(msgs[0].Key) != "u1" {
			return false
		}
		var event domain.Event
		return json.Unmarshal(msgs[0].Value, &event) == nil &&
			event.Type == domain.EventCartUpdated &&
			event.UserID == "u1" &&
			event.Source == "instance-1"
	})).Return(nil).Once()

	orderWriter.On("WriteMessages", ctx, mock.MatchedBy(func(msgs []kafka.Message) bool {
		if len(msgs) != 1 || string(msgs[0].Key) != "o1" {
			return false
		}
		var event domain.Event
		return json.Unmarshal(msgs[0].Value, &event) == nil &&
			event.Type == domain.EventOrderStatusChanged &&
			event.OldStatus == domain.StatusPending &&
			event.NewStatus == domain.StatusConfirmed
	})).Return(errors.New("broker unavailable")).Once()

	assert.NoError(t, publisher.PublishCartUpdated(ctx, "u1"))
	assert.Error(t, publisher.PublishStatusChange(ctx, "o1", domain.StatusPending, domain.StatusConfirmed))
}

func TestCartEventConsumer_Process(t *testing.T) {
	tests := []struct {
		name        string
		event       domain.Event
		wantRefresh bool
	}{
		{name: "remote update", event: domain.Event{Type: domain.EventCartUpdated, Source: "other", UserID: "u1"}, wantRefresh: true},
		{name: "own echo", event: domain.Event{Type: domain.EventCartUpdated, Source: "self", UserID: "u1"}},
		{name: "other event type", event: domain.Event{Type: domain.EventOrderStatusChanged, Source: "other", OrderID: "o1"}},
		{name: "missing user", event: domain.Event{Type: domain.EventCartUpdated, Source: "other"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			handler := mocks.NewCartUpdateHandler(t)
			if testCase.wantRefresh {
				handler.On("HandleCartUpdated", mock.Anything, "u1").Return(nil).Once()
			}

			consumer := storage.NewCartEventConsumer(nil, handler, "self", nil)
			consumer.Process(context.Background(), testCase.event)

			if !testCase.wantRefresh {
				handler.AssertNotCalled(t, "HandleCartUpdated", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestCartEventConsumer_StartStopsOnCancel(t *testing.T) {
	reader := mocks.NewMessageReader(t)
	handler := mocks.NewCartUpdateHandler(t)
	ctx, cancel := context.WithCancel(context.Background())

	payload, err := json.Marshal(domain.Event{Type: domain.EventCartUpdated, Source: "other", UserID: "u1"})
	require.NoError(t, err)

	reader.On("ReadMessage", ctx).Return(kafka.Message{Value: []byte("garbage")}, nil).Once()
	reader.On("ReadMessage", ctx).Return(kafka.Message{Value: payload}, nil).Once()
	reader.On("ReadMessage", ctx).Run(func(mock.Arguments) { cancel() }).Return(kafka.Message{}, context.Canceled).Once()
	handler.On("HandleCartUpdated", ctx, "u1").Return(nil).Once()

	done := make(chan struct{})
	go func() {
		storage.NewCartEventConsumer(reader, handler, "self", nil).Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop after cancellation")
	}
}
