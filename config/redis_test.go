package config

import (
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestConnectRedisReusesSharedClient(t *testing.T) {
	// Đã có client dùng chung thì trả lại luôn, không quay số mới
	existing := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	RedisClient = existing
	defer func() { RedisClient = nil }()

	client, err := ConnectRedis()

	assert.NoError(t, err)
	assert.Same(t, existing, client)
}
