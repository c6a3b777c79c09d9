package cart

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yzxsolutions/soofi-mandi-sub000/internal/model"
)

// Store keeps one cart per client session, keyed by generated id. It is the
// server-side stand-in for the storefront's local-storage session shim; carts
// expire after a period of inactivity and are gone on restart.
type Store interface {
	// Create makes a new empty cart and returns a copy of it.
	Create(ctx context.Context) (*Cart, error)

	// Get returns a copy of the cart with the given id.
	Get(ctx context.Context, id string) (*Cart, error)

	// Update applies fn to the cart under the store's lock and returns a copy
	// of the result. Returning an error from fn aborts the update.
	Update(ctx context.Context, id string, fn func(*Cart) error) (*Cart, error)

	// Delete removes the cart. Missing ids are a no-op.
	Delete(ctx context.Context, id string) error
}

// memoryStore implements Store over a mutex-guarded map.
type memoryStore struct {
	mu     sync.RWMutex
	carts  map[string]*Cart
	ttl    time.Duration
	now    func() time.Time
	logger zerolog.Logger
}

// NewMemoryStore creates an in-memory cart store. A non-positive ttl
// defaults to 24 hours.
func NewMemoryStore(ttl time.Duration, logger zerolog.Logger) Store {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &memoryStore{
		carts:  make(map[string]*Cart),
		ttl:    ttl,
		now:    time.Now,
		logger: logger.With().Str("store", "cart").Logger(),
	}
}

func (s *memoryStore) Create(_ context.Context) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep()
	c := New(uuid.NewString(), s.now())
	s.carts[c.ID] = c
	s.logger.Debug().Str("cart_id", c.ID).Msg("cart created")
	return c.Clone(), nil
}

func (s *memoryStore) Get(_ context.Context, id string) (*Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.carts[id]
	if !ok || s.expired(c) {
		return nil, model.ErrCartNotFound
	}
	return c.Clone(), nil
}

func (s *memoryStore) Update(_ context.Context, id string, fn func(*Cart) error) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[id]
	if !ok || s.expired(c) {
		return nil, model.ErrCartNotFound
	}
	if err := fn(c); err != nil {
		return nil, err
	}
	c.UpdatedAt = s.now()
	return c.Clone(), nil
}

func (s *memoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, id)
	return nil
}

func (s *memoryStore) expired(c *Cart) bool {
	return s.now().Sub(c.UpdatedAt) > s.ttl
}

// sweep drops expired carts so the map does not grow without bound in a
// long-lived process. Caller must hold the write lock.
func (s *memoryStore) sweep() {
	removed := 0
	for id, c := range s.carts {
		if s.expired(c) {
			delete(s.carts, id)
			removed++
		}
	}
	if removed > 0 {
		s.logger.Debug().Int("removed", removed).Msg("expired carts swept")
	}
}
