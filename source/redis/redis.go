// Package redis provides paging.Source implementations over Redis lists and
// sorted sets. Items are the raw member strings.
package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ListClient is the subset of redis.Cmdable used by list sources.
type ListClient interface {
	LLen(ctx context.Context, key string) *redis.IntCmd
	LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
}

// SortedSetClient is the subset of redis.Cmdable used by sorted set sources.
type SortedSetClient interface {
	ZCard(ctx context.Context, key string) *redis.IntCmd
	ZRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
}

// Source pages through the members stored at a key.
type Source struct {
	key    string
	kind   string
	length func(ctx context.Context, key string) *redis.IntCmd
	rng    func(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
}

// NewList returns a Source over the list at key, in list order (LLEN/LRANGE).
func NewList(client ListClient, key string) *Source {
	return &Source{key: key, kind: "list", length: client.LLen, rng: client.LRange}
}

// NewSortedSet returns a Source over the sorted set at key, by ascending
// score (ZCARD/ZRANGE).
func NewSortedSet(client SortedSetClient, key string) *Source {
	return &Source{key: key, kind: "zset", length: client.ZCard, rng: client.ZRange}
}

// Count returns the number of members. A missing key counts as empty.
func (s *Source) Count(ctx context.Context) (int64, error) {
	n, err := s.length(ctx, s.key).Result()
	if err != nil {
		return 0, fmt.Errorf("%s %s length: %w", s.kind, s.key, err)
	}
	return n, nil
}

// FetchSlice returns up to limit members starting at offset. Redis ranges
// are inclusive on both ends.
func (s *Source) FetchSlice(ctx context.Context, offset, limit int64) ([]string, error) {
	if limit <= 0 {
		return []string{}, nil
	}
	members, err := s.rng(ctx, s.key, offset, offset+limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("%s %s range: %w", s.kind, s.key, err)
	}
	if members == nil {
		members = []string{}
	}
	return members, nil
}
