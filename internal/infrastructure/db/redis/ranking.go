package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/pechomax/pechomax-api/internal/core/ports"
)

const rankingKey = "ranking:anglers"

// RankingCache is a Redis ZSET mirror of user scores, refreshed after every
// progression write. The relational store stays authoritative; reads here
// tolerate staleness.
type RankingCache struct {
	client *redis.Client
}

// NewRankingCache creates a RankingCache wrapping the given Redis client.
func NewRankingCache(client *redis.Client) *RankingCache {
	return &RankingCache{client: client}
}

// Upsert records the user's current score.
func (c *RankingCache) Upsert(ctx context.Context, username string, score int64) error {
	err := c.client.ZAdd(ctx, rankingKey, redis.Z{
		Score:  float64(score),
		Member: username,
	}).Err()
	if err != nil {
		return fmt.Errorf("ranking upsert: %w", err)
	}
	return nil
}

// Top returns the highest-scoring users, best first.
func (c *RankingCache) Top(ctx context.Context, limit int) ([]ports.RankEntry, error) {
	if limit < 1 {
		limit = 10
	}
	members, err := c.client.ZRevRangeWithScores(ctx, rankingKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("ranking top: %w", err)
	}

	entries := make([]ports.RankEntry, 0, len(members))
	for i, m := range members {
		username, _ := m.Member.(string)
		entries = append(entries, ports.RankEntry{
			Rank:     i + 1,
			Username: username,
			Score:    int64(m.Score),
		})
	}
	return entries, nil
}
