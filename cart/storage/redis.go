package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Alturino/audiophile/cart/store"
)

const keyCarts = "carts:%s"

// Redis is the durable Storage backing carts in production. Each owner's
// collection is one RedisJSON document.
type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Save(c context.Context, ownerID string, items []store.LineItem) error {
	key := fmt.Sprintf(keyCarts, ownerID)
	err := r.client.JSONSet(c, key, "$", items).Err()
	if err != nil {
		return fmt.Errorf("failed saving cart key=%s with error=%w", key, err)
	}
	return nil
}

func (r *Redis) Load(c context.Context, ownerID string) ([]store.LineItem, error) {
	key := fmt.Sprintf(keyCarts, ownerID)
	raw, err := r.client.JSONGet(c, key, "$").Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed loading cart key=%s with error=%w", key, err)
	}
	if raw == "" {
		return nil, nil
	}

	// JSONGet with a "$" path wraps the document in a one-element array.
	collections := [][]store.LineItem{}
	err = json.Unmarshal([]byte(raw), &collections)
	if err != nil {
		return nil, fmt.Errorf("failed unmarshaling cart key=%s with error=%w", key, err)
	}
	if len(collections) == 0 {
		return nil, nil
	}
	return collections[0], nil
}

func (r *Redis) Clear(c context.Context, ownerID string) error {
	key := fmt.Sprintf(keyCarts, ownerID)
	err := r.client.JSONDel(c, key, "$").Err()
	if err != nil {
		return fmt.Errorf("failed clearing cart key=%s with error=%w", key, err)
	}
	return nil
}
