package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/yzxsolutions/soofi-mandi-sub000/internal/model"
)

const (
	orderKeyPrefix = "order:"
	orderIndexKey  = "orders:index"
)

// redisStore implements OrderStore over Redis. Orders are stored as JSON
// snapshots keyed by id, with a sorted-set index by creation time for
// newest-first listing. Same key-value contract as the memory store.
type redisStore struct {
	client *redis.Client
	logger zerolog.Logger
}

// NewRedisStore creates a Redis-backed order store.
func NewRedisStore(client *redis.Client, logger zerolog.Logger) OrderStore {
	return &redisStore{
		client: client,
		logger: logger.With().Str("store", "order-redis").Logger(),
	}
}

func (s *redisStore) Put(ctx context.Context, o *model.Order) error {
	if o == nil {
		return model.ErrOrderNotFound
	}
	data, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}
	key := orderKeyPrefix + o.ID.String()
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		s.logger.Error().Err(err).Str("order_id", o.ID.String()).Msg("failed to store order")
		return fmt.Errorf("store order: %w", err)
	}
	score := float64(o.CreatedAt.UnixNano())
	if err := s.client.ZAdd(ctx, orderIndexKey, redis.Z{Score: score, Member: o.ID.String()}).Err(); err != nil {
		return fmt.Errorf("index order: %w", err)
	}
	return nil
}

func (s *redisStore) Get(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	data, err := s.client.Get(ctx, orderKeyPrefix+id.String()).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load order: %w", err)
	}
	var o model.Order
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("unmarshal order: %w", err)
	}
	return &o, nil
}

func (s *redisStore) List(ctx context.Context) ([]model.Order, error) {
	ids, err := s.client.ZRevRange(ctx, orderIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list order ids: %w", err)
	}
	orders := make([]model.Order, 0, len(ids))
	for _, id := range ids {
		data, err := s.client.Get(ctx, orderKeyPrefix+id).Bytes()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load order %s: %w", id, err)
		}
		var o model.Order
		if err := json.Unmarshal(data, &o); err != nil {
			return nil, fmt.Errorf("unmarshal order %s: %w", id, err)
		}
		orders = append(orders, o)
	}
	return orders, nil
}
