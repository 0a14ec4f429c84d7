package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/laundry-marketplace/internal/models"
)

func TestNopAlwaysMisses(t *testing.T) {
	var c MerchantCache = Nop{}
	ctx := context.Background()

	c.SetList(ctx, []models.Merchant{{ID: 1}})
	c.Set(ctx, &models.Merchant{ID: 1})

	_, ok := c.GetList(ctx)
	assert.False(t, ok)
	_, ok = c.Get(ctx, 1)
	assert.False(t, ok)
}

func TestRedisUnreachableBehavesAsMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	c := NewRedisWithClient(client, time.Minute, zap.NewNop())
	ctx := context.Background()

	c.Set(ctx, &models.Merchant{ID: 7, Name: "Bubbles"})
	_, ok := c.Get(ctx, 7)
	assert.False(t, ok)

	c.Invalidate(ctx, 7)
	_, ok = c.GetList(ctx)
	assert.False(t, ok)
}

func TestNewRedisRejectsBadURL(t *testing.T) {
	_, err := NewRedis(context.Background(), "http://not-redis", time.Minute, zap.NewNop())
	assert.Error(t, err)
}

func TestMerchantKey(t *testing.T) {
	assert.Equal(t, "laundry:merchants:42", merchantKey(42))
}
