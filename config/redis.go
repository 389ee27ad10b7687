package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

// ConnectRedis trả về client Redis dùng chung, chỉ quay số và ping ở lần
// gọi đầu tiên. Các handler gọi lại thoải mái mà không mở kết nối mới.
func ConnectRedis() (*redis.Client, error) {
	if RedisClient != nil {
		return RedisClient, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_ADDR"),
		Username: os.Getenv("REDIS_USER"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if _, err := client.Ping(Ctx).Result(); err != nil {
		return nil, err
	}

	log.Println("Kết nối Redis thành công")
	RedisClient = client
	return client, nil
}
