package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"bitecart/cart-svc/internal/domain"

	"go.uber.org/zap"
)

const DefaultPollInterval = 5 * time.Second

type StatusChangeFunc func(orderID string, oldStatus, newStatus domain.OrderStatus)

type WatcherConfig struct {
	Interval time.Duration
	// OnError receives per-order poll failures. Optional.
	OnError func(orderID string, err error)
}

type watchedOrder struct {
	last     domain.OrderStatus
	onChange StatusChangeFunc
	// removed is set by Unwatch and Stop, never by a terminal status.
	removed bool
}

// OrderStatusWatcher polls the status of a set of orders on one ticker and
// reports each newly observed status once. Only the state at poll time is
// seen, so fast transitions between two ticks collapse into one callback.
//
// Callbacks run on the polling goroutine one at a time, without the watch set
// locked, so Watch and WatchKnown never wait on them. Unwatch and Stop wait for
// a running callback to return; callbacks must not call them.
type OrderStatusWatcher struct {
	backend  StatusBackend
	interval time.Duration
	onError  func(orderID string, err error)
	logger   *zap.Logger

	// callbackMu is held while a callback runs.
	callbackMu sync.Mutex

	mu     sync.Mutex
	orders map[string]*watchedOrder
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	polling atomic.Bool
}

func NewOrderStatusWatcher(backend StatusBackend, config WatcherConfig, logger *zap.Logger) *OrderStatusWatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.Interval <= 0 {
		config.Interval = DefaultPollInterval
	}
	return &OrderStatusWatcher{
		backend:  backend,
		interval: config.Interval,
		onError:  config.OnError,
		logger:   logger,
		orders:   make(map[string]*watchedOrder),
	}
}

// Watch starts tracking orderIDs. The first poll only records a baseline.
func (w *OrderStatusWatcher) Watch(orderIDs []string, onChange StatusChangeFunc) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, id := range orderIDs {
		if id == "" {
			continue
		}
		w.orders[id] = &watchedOrder{onChange: onChange}
	}
	w.startLocked()
}

// WatchKnown tracks one order whose current status the caller already has, so
// the very first poll can report a change.
func (w *OrderStatusWatcher) WatchKnown(orderID string, known domain.OrderStatus, onChange StatusChangeFunc) {
	if orderID == "" || known.IsTerminal() {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	w.orders[orderID] = &watchedOrder{last: known, onChange: onChange}
	w.startLocked()
}

// Unwatch stops tracking orderID. No callback for it runs after Unwatch returns.
func (w *OrderStatusWatcher) Unwatch(orderID string) {
	w.mu.Lock()
	if entry, ok := w.orders[orderID]; ok {
		entry.removed = true
		delete(w.orders, orderID)
	}
	w.mu.Unlock()
	w.awaitCallback()
}

func (w *OrderStatusWatcher) Watching(orderID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.orders[orderID]
	return ok
}

// Stop cancels polling and forgets every order. It is safe to call more than
// once; no callback runs after it returns.
func (w *OrderStatusWatcher) Stop() {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.cancel, w.done, w.ctx = nil, nil, nil
	for _, entry := range w.orders {
		entry.removed = true
	}
	w.orders = make(map[string]*watchedOrder)
	w.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
	w.awaitCallback()
}

// awaitCallback returns once no callback is running.
func (w *OrderStatusWatcher) awaitCallback() {
	w.callbackMu.Lock()
	w.callbackMu.Unlock()
}

func (w *OrderStatusWatcher) startLocked() {
	if w.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	w.ctx, w.cancel, w.done = ctx, cancel, make(chan struct{})
	go w.loop(ctx, w.done)
}

func (w *OrderStatusWatcher) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	// time.Ticker drops ticks while a poll is still running.
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.PollOnce(ctx)
		}
	}
}

// PollOnce fetches every watched order once. It returns false without polling
// when another poll is still in flight.
func (w *OrderStatusWatcher) PollOnce(ctx context.Context) bool {
	if !w.polling.CompareAndSwap(false, true) {
		w.logger.Debug("status poll skipped, previous poll still running")
		return false
	}
	defer w.polling.Store(false)

	w.mu.Lock()
	ids := make([]string, 0, len(w.orders))
	for id := range w.orders {
		ids = append(ids, id)
	}
	w.mu.Unlock()

	for _, id := range ids {
		if ctx.Err() != nil {
			return true
		}
		status, err := w.backend.OrderStatus(ctx, id)
		if err != nil {
			w.reportError(id, err)
			continue
		}
		w.observe(ctx, id, status)
	}
	return true
}

func (w *OrderStatusWatcher) observe(ctx context.Context, orderID string, status domain.OrderStatus) {
	entry, old, changed := w.record(ctx, orderID, status)
	if !changed || entry.onChange == nil {
		return
	}

	w.callbackMu.Lock()
	defer w.callbackMu.Unlock()

	// Unwatch or Stop may have run since the change was recorded.
	w.mu.Lock()
	live := !entry.removed && ctx.Err() == nil
	w.mu.Unlock()
	if live {
		entry.onChange(orderID, old, status)
	}
}

// record stores status as the order's last known one and reports whether a
// callback is due.
func (w *OrderStatusWatcher) record(ctx context.Context, orderID string, status domain.OrderStatus) (*watchedOrder, domain.OrderStatus, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if ctx.Err() != nil {
		return nil, "", false
	}
	entry, ok := w.orders[orderID]
	if !ok {
		return nil, "", false
	}

	old := entry.last
	if old == status {
		return nil, "", false
	}
	entry.last = status

	if status.IsTerminal() {
		delete(w.orders, orderID)
	}
	if old == "" {
		return nil, "", false
	}

	if !domain.Reachable(old, status) {
		w.logger.Warn("backend reported a status that is not a forward transition",
			zap.String("order_id", orderID),
			zap.String("old_status", string(old)),
			zap.String("new_status", string(status)))
	}
	w.logger.Info("order status changed",
		zap.String("order_id", orderID),
		zap.String("old_status", string(old)),
		zap.String("new_status", string(status)))
	return entry, old, true
}

func (w *OrderStatusWatcher) reportError(orderID string, err error) {
	w.logger.Warn("order status poll failed", zap.String("order_id", orderID), zap.Error(err))
	if w.onError != nil {
		w.onError(orderID, err)
	}
}
