package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yzxsolutions/soofi-mandi-sub000/internal/model"
)

// memoryStore implements OrderStore over a mutex-guarded map. Contents are
// lost on restart, matching the mock data layer contract.
type memoryStore struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]*model.Order
	logger zerolog.Logger
}

// NewMemoryStore creates an in-memory order store.
func NewMemoryStore(logger zerolog.Logger) OrderStore {
	return &memoryStore{
		orders: make(map[uuid.UUID]*model.Order),
		logger: logger.With().Str("store", "order-memory").Logger(),
	}
}

func (s *memoryStore) Put(_ context.Context, o *model.Order) error {
	if o == nil {
		return model.ErrOrderNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders[o.ID] = copyOrder(o)
	s.logger.Debug().Str("order_id", o.ID.String()).Msg("order stored")
	return nil
}

func (s *memoryStore) Get(_ context.Context, id uuid.UUID) (*model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	return copyOrder(o), nil
}

func (s *memoryStore) List(_ context.Context) ([]model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, *copyOrder(o))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
