package service

import (
	"context"
	"sync"
	"time"

	"bitecart/cart-svc/internal/domain"
)

type CartStoreFactory func(session domain.Session) *CartStore

type sessionEntry struct {
	store    *CartStore
	lastUsed time.Time
}

// CartSessions keeps one CartStore per signed-in user while the session is in
// use. A new token for a known user replaces the store, and stores idle for
// longer than the idle TTL are dropped by Sweep.
type CartSessions struct {
	mu       sync.Mutex
	entries  map[string]*sessionEntry
	newStore CartStoreFactory
	idleTTL  time.Duration
	now      func() time.Time
}

// NewCartSessions builds a registry; an idleTTL of zero disables eviction.
func NewCartSessions(factory CartStoreFactory, idleTTL time.Duration) *CartSessions {
	return &CartSessions{
		entries:  make(map[string]*sessionEntry),
		newStore: factory,
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

func (r *CartSessions) Get(session domain.Session) *CartStore {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if entry, ok := r.entries[session.UserID]; ok && entry.store.Session().Token == session.Token {
		entry.lastUsed = now
		return entry.store
	}
	store := r.newStore(session)
	r.entries[session.UserID] = &sessionEntry{store: store, lastUsed: now}
	return store
}

func (r *CartSessions) Cart(session domain.Session) CartService {
	return r.Get(session)
}

// Lookup does not count as use.
func (r *CartSessions) Lookup(userID string) (*CartStore, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[userID]
	if !ok {
		return nil, false
	}
	return entry.store, true
}

func (r *CartSessions) Drop(userID string) {
	r.mu.Lock()
	delete(r.entries, userID)
	r.mu.Unlock()
}

func (r *CartSessions) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Sweep drops every store not used since now minus the idle TTL and returns
// how many were dropped.
func (r *CartSessions) Sweep(now time.Time) int {
	if r.idleTTL <= 0 {
		return 0
	}
	cutoff := now.Add(-r.idleTTL)

	r.mu.Lock()
	defer r.mu.Unlock()
	dropped := 0
	for userID, entry := range r.entries {
		if entry.lastUsed.Before(cutoff) {
			delete(r.entries, userID)
			dropped++
		}
	}
	return dropped
}

// RunSweeper calls Sweep every interval until ctx is cancelled.
func (r *CartSessions) RunSweeper(ctx context.Context, interval time.Duration) {
	if r.idleTTL <= 0 || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			r.Sweep(now)
		}
	}
}

// HandleCartUpdated reloads the user's store after another instance changed
// the cart. Users without a live store are ignored.
func (r *CartSessions) HandleCartUpdated(ctx context.Context, userID string) error {
	store, ok := r.Lookup(userID)
	if !ok {
		return nil
	}
	_, err := store.Refresh(ctx)
	return err
}
