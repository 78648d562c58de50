package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pesqueriaOutfitters/domain"

	"github.com/redis/go-redis/v9"
)

// RecommendationCache holds computed recommendation lists for a short TTL so
// hot surfaces (trending) skip the order-store aggregation on every hit.
type RecommendationCache struct {
	client *redis.Client
}

func NewRecommendationCache(client *redis.Client) *RecommendationCache {
	return &RecommendationCache{
		client: client,
	}
}

func (c *RecommendationCache) Get(ctx context.Context, key string) ([]domain.Recommendation, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read recommendation cache: %w", err)
	}

	var recs []domain.Recommendation
	if err := json.Unmarshal([]byte(val), &recs); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached recommendations: %w", err)
	}

	return recs, true, nil
}

func (c *RecommendationCache) Set(ctx context.Context, key string, recs []domain.Recommendation, ttl time.Duration) error {
	jsonData, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	if err := c.client.Set(ctx, key, jsonData, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store recommendations in Redis: %w", err)
	}

	return nil
}
