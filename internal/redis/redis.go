package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type Client struct {
	rdb     *redis.Client
	seenTTL time.Duration
}

func New(addr string, seenTTL time.Duration) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Client{rdb: rdb, seenTTL: seenTTL}, nil
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

// Source management: disabled sources are skipped by the scrape loop.
func (c *Client) DisableSource(ctx context.Context, source string) error {
	return c.rdb.SAdd(ctx, "sources:disabled", source).Err()
}

func (c *Client) EnableSource(ctx context.Context, source string) error {
	return c.rdb.SRem(ctx, "sources:disabled", source).Err()
}

func (c *Client) DisabledSources(ctx context.Context) ([]string, error) {
	return c.rdb.SMembers(ctx, "sources:disabled").Result()
}

func (c *Client) SourceDisabled(ctx context.Context, source string) (bool, error) {
	return c.rdb.SIsMember(ctx, "sources:disabled", source).Result()
}

// Seen-job dedupe across scrape runs. Keys expire so long-gone postings can
// reappear after the TTL.
func (c *Client) MarkSeen(ctx context.Context, source, jobID string) error {
	key := "seen:" + source
	if err := c.rdb.SAdd(ctx, key, jobID).Err(); err != nil {
		return err
	}
	return c.rdb.Expire(ctx, key, c.seenTTL).Err()
}

func (c *Client) Seen(ctx context.Context, source, jobID string) (bool, error) {
	return c.rdb.SIsMember(ctx, "seen:"+source, jobID).Result()
}
