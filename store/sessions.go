package store

import (
	"sync"
	"time"
)

const (
	// SessionTTL is how long an idle cart survives before it is swept.
	SessionTTL = 30 * time.Minute

	// CleanupInterval is how often the background sweep runs.
	CleanupInterval = time.Minute
)

type sessionEntry struct {
	cart     *Cart
	lastSeen time.Time
}

// Sessions maps session ids to their cart stores. Carts are created lazily
// and live only in memory; an expired session loses its cart, same as a page
// reload did in the original client.
type Sessions struct {
	mu    sync.Mutex
	carts map[string]*sessionEntry

	stopCleanup chan struct{}
	wg          sync.WaitGroup
}

func NewSessions() *Sessions {
	s := &Sessions{
		carts:       make(map[string]*sessionEntry),
		stopCleanup: make(chan struct{}),
	}
	s.wg.Add(1)
	go s.cleanupLoop()
	return s
}

// Get returns the cart for a session id, creating it on first use and
// refreshing its idle timer.
func (s *Sessions) Get(id string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.carts[id]
	if !ok {
		entry = &sessionEntry{cart: NewCart()}
		s.carts[id] = entry
	}
	entry.lastSeen = time.Now()
	return entry.cart
}

// Len reports the number of live session carts.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.carts)
}

// Close stops the sweep loop and shuts down every cart.
func (s *Sessions) Close() {
	close(s.stopCleanup)
	s.wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, entry := range s.carts {
		entry.cart.Close()
		delete(s.carts, id)
	}
}

func (s *Sessions) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.expire()
		case <-s.stopCleanup:
			return
		}
	}
}

func (s *Sessions) expire() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, entry := range s.carts {
		if time.Since(entry.lastSeen) > SessionTTL {
			entry.cart.Close()
			delete(s.carts, id)
		}
	}
}
