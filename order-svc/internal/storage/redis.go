package storage

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"tableside/order-svc/internal/domain"
	"tableside/order-svc/internal/service"
)

const (
	cartTTL  = 7 * 24 * time.Hour
	boardTTL = 5 * time.Minute
)

// RedisCartStore persists one cart per session under cart:<sessionID>. Carts
// survive process restarts and expire after a week of inactivity.
type RedisCartStore struct {
	Client *redis.Client
}

func NewRedisCartStore(client *redis.Client) *RedisCartStore {
	return &RedisCartStore{Client: client}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

func (s *RedisCartStore) Load(ctx context.Context, sessionID string) (*domain.Cart, error) {
	payload, err := s.Client.Get(ctx, cartKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var cart domain.Cart
	if err := json.Unmarshal(payload, &cart); err != nil {
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []domain.CartItem{}
	}
	return &cart, nil
}

func (s *RedisCartStore) Save(ctx context.Context, sessionID string, cart *domain.Cart) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, cartKey(sessionID), payload, cartTTL).Err()
}

func (s *RedisCartStore) Delete(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, cartKey(sessionID)).Err()
}

// RedisBoardCache holds the staff order board per restaurant. Checkout and
// status updates invalidate it; the TTL is a backstop.
type RedisBoardCache struct {
	Client *redis.Client
}

func NewRedisBoardCache(client *redis.Client) *RedisBoardCache {
	return &RedisBoardCache{Client: client}
}

func boardKey(restaurantID int) string {
	return "board:" + strconv.Itoa(restaurantID)
}

func (c *RedisBoardCache) GetBoard(ctx context.Context, restaurantID int) (*service.OrderBoard, error) {
	payload, err := c.Client.Get(ctx, boardKey(restaurantID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var board service.OrderBoard
	if err := json.Unmarshal(payload, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

func (c *RedisBoardCache) SetBoard(ctx context.Context, restaurantID int, board *service.OrderBoard) error {
	payload, err := json.Marshal(board)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, boardKey(restaurantID), payload, boardTTL).Err()
}

func (c *RedisBoardCache) Invalidate(ctx context.Context, restaurantID int) error {
	return c.Client.Del(ctx, boardKey(restaurantID)).Err()
}
