package redis

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/modmail-cloud/departments-worker/config"
)

var Client *redis.Client

func Connect() error {
	options := &redis.Options{
		Network:      "tcp",
		Addr:         config.Conf.Redis.Address,
		Password:     config.Conf.Redis.Password,
		PoolSize:     config.Conf.Redis.Threads,
		MinIdleConns: config.Conf.Redis.Threads,
	}

	Client = redis.NewClient(options)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	return Client.Ping(ctx).Err()
}
