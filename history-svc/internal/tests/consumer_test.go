package tests

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"bitecart/history-svc/internal/domain"
	"bitecart/history-svc/internal/mocks"
	"bitecart/history-svc/internal/service"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConsumer_ProcessStatusChange(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	event := domain.StatusEvent{
		Type:      domain.EventOrderStatusChanged,
		Source:    "cart-1",
		OrderID:   "o1",
		OldStatus: "pending",
		NewStatus: "confirmed",
		Timestamp: at,
	}
	entry := domain.HistoryEntry{OrderID: "o1", OldStatus: "pending", NewStatus: "confirmed", Source: "cart-1", ChangedAt: at}

	tests := []struct {
		name           string
		event          domain.StatusEvent
		setupMockStore func(*mocks.StoreInterface)
	}{
		{
			name:  "success",
			event: event,
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordTransition", mock.Anything, entry).Return(true, nil).Once()
				mockStore.On("UpdateLatest", mock.Anything, "o1", "confirmed", at).Return(nil).Once()
			},
		},
		{
			name:  "duplicate skips latest",
			event: event,
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordTransition", mock.Anything, entry).Return(false, nil).Once()
			},
		},
		{
			name:  "RecordTransition error",
			event: event,
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordTransition", mock.Anything, entry).Return(false, errors.New("db connection failed")).Once()
			},
		},
		{
			name:  "UpdateLatest error",
			event: event,
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordTransition", mock.Anything, entry).Return(true, nil).Once()
				mockStore.On("UpdateLatest", mock.Anything, "o1", "confirmed", at).Return(errors.New("redis error")).Once()
			},
		},
		{
			name: "new order baseline",
			event: domain.StatusEvent{
				Type:      domain.EventOrderStatusChanged,
				Source:    "cart-1",
				OrderID:   "o2",
				NewStatus: "pending",
				Timestamp: at,
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				baseline := domain.HistoryEntry{OrderID: "o2", NewStatus: "pending", Source: "cart-1", ChangedAt: at}
				mockStore.On("RecordTransition", mock.Anything, baseline).Return(true, nil).Once()
				mockStore.On("UpdateLatest", mock.Anything, "o2", "pending", at).Return(nil).Once()
			},
		},
		{
			name:           "missing order id",
			event:          domain.StatusEvent{Type: domain.EventOrderStatusChanged, NewStatus: "confirmed"},
			setupMockStore: func(*mocks.StoreInterface) {},
		},
		{
			name:           "unknown status",
			event:          domain.StatusEvent{Type: domain.EventOrderStatusChanged, OrderID: "o1", NewStatus: "shipped"},
			setupMockStore: func(*mocks.StoreInterface) {},
		},
		{
			name:           "other event type",
			event:          domain.StatusEvent{Type: "cart_updated", OrderID: "o1", NewStatus: "confirmed"},
			setupMockStore: func(*mocks.StoreInterface) {},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockStore := mocks.NewStoreInterface(t)
			testCase.setupMockStore(mockStore)

			consumer := &service.Consumer{
				Store:  mockStore,
				Logger: zap.NewNop(),
			}

			consumer.ProcessStatusChange(context.Background(), testCase.event)
		})
	}
}

func TestConsumer_MissingTimestampUsesNow(t *testing.T) {
	mockStore := mocks.NewStoreInterface(t)
	before := time.Now().Add(-time.Second)

	mockStore.On("RecordTransition", mock.Anything, mock.MatchedBy(func(e domain.HistoryEntry) bool {
		return e.OrderID == "o2" && e.ChangedAt.After(before)
	})).Return(true, nil).Once()
	mockStore.On("UpdateLatest", mock.Anything, "o2", "pending", mock.AnythingOfType("time.Time")).Return(nil).Once()

	service.NewConsumer(nil, mockStore, nil).ProcessStatusChange(context.Background(),
		domain.StatusEvent{Type: domain.EventOrderStatusChanged, OrderID: "o2", NewStatus: "pending"})
}

func TestConsumer_StartStopsOnCancel(t *testing.T) {
	reader := mocks.NewMessageReader(t)
	mockStore := mocks.NewStoreInterface(t)
	ctx, cancel := context.WithCancel(context.Background())

	payload, err := json.Marshal(domain.StatusEvent{
		Type:      domain.EventOrderStatusChanged,
		OrderID:   "o1",
		OldStatus: "confirmed",
		NewStatus: "preparing",
		Timestamp: time.Now().UTC(),
	})
	require.NoError(t, err)

	reader.On("ReadMessage", ctx).Return(kafka.Message{}, errors.New("leader not available")).Once()
	reader.On("ReadMessage", ctx).Return(kafka.Message{Value: []byte("{broken")}, nil).Once()
	reader.On("ReadMessage", ctx).Return(kafka.Message{Value: payload}, nil).Once()
	reader.On("ReadMessage", ctx).Run(func(mock.Arguments) { cancel() }).Return(kafka.Message{}, context.Canceled).Once()
	mockStore.On("RecordTransition", ctx, mock.AnythingOfType("domain.HistoryEntry")).Return(true, nil).Once()
	mockStore.On("UpdateLatest", ctx, "o1", "preparing", mock.AnythingOfType("time.Time")).Return(nil).Once()

	done := make(chan struct{})
	go func() {
		service.NewConsumer(reader, mockStore, nil).Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop after cancellation")
	}
}
