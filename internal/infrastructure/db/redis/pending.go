package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultPendingTTL = time.Hour

// PendingDeletes keeps one Redis set per resource kind with the UUIDs whose
// remote retraction is in flight. Every Mark refreshes the set TTL so a
// crashed process cannot hide a resource forever.
type PendingDeletes struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPendingDeletes wraps client. A non-positive ttl falls back to one hour.
func NewPendingDeletes(client *redis.Client, ttl time.Duration) *PendingDeletes {
	if ttl <= 0 {
		ttl = defaultPendingTTL
	}
	return &PendingDeletes{client: client, ttl: ttl}
}

func (p *PendingDeletes) Mark(ctx context.Context, kind, uuid string) error {
	pipe := p.client.TxPipeline()
	pipe.SAdd(ctx, p.key(kind), uuid)
	pipe.Expire(ctx, p.key(kind), p.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("mark %s: %w", kind, err)
	}
	return nil
}

func (p *PendingDeletes) Clear(ctx context.Context, kind, uuid string) error {
	if err := p.client.SRem(ctx, p.key(kind), uuid).Err(); err != nil {
		return fmt.Errorf("clear %s: %w", kind, err)
	}
	return nil
}

func (p *PendingDeletes) IsPending(ctx context.Context, kind, uuid string) (bool, error) {
	ok, err := p.client.SIsMember(ctx, p.key(kind), uuid).Result()
	if err != nil {
		return false, fmt.Errorf("check %s: %w", kind, err)
	}
	return ok, nil
}

func (p *PendingDeletes) Members(ctx context.Context, kind string) (map[string]struct{}, error) {
	members, err := p.client.SMembers(ctx, p.key(kind)).Result()
	if err != nil {
		return nil, fmt.Errorf("members %s: %w", kind, err)
	}
	set := make(map[string]struct{}, len(members))
	for _, m := range members {
		set[m] = struct{}{}
	}
	return set, nil
}

func (p *PendingDeletes) key(kind string) string {
	return "pending:" + kind
}
