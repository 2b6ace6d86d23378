package event

import (
	"context"
	stdjson "encoding/json"

	"github.com/modmail-cloud/departments-worker/bot/redis"
	"github.com/modmail-cloud/departments-worker/config"
	"github.com/modmail-cloud/departments-worker/worker"
	"go.uber.org/zap"
)

// RedisListener consumes forwarded gateway events published by the sharder on
// a redis pub/sub channel, one goroutine per configured thread.
type RedisListener struct {
	logger *zap.Logger
}

func NewRedisListener(logger *zap.Logger) *RedisListener {
	return &RedisListener{
		logger: logger,
	}
}

type forwardedEvent struct {
	ShardId int                `json:"shard_id"`
	Event   stdjson.RawMessage `json:"event"`
}

func (l *RedisListener) Listen(ctx context.Context) {
	pubsub := redis.Client.Subscribe(ctx, config.Conf.Redis.EventsChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()

	for i := 0; i < config.Conf.Redis.Threads; i++ {
		go func() {
			for message := range ch {
				l.handleMessage(message.Payload)
			}
		}()
	}

	<-ctx.Done()
}

func (l *RedisListener) handleMessage(message string) {
	l.logger.Debug("Received forwarded event", zap.Int("message_size", len(message)))

	var event forwardedEvent
	if err := json.Unmarshal([]byte(message), &event); err != nil {
		l.logger.Error("Failed to unmarshal forwarded event", zap.Error(err))
		return
	}

	workerCtx := &worker.Context{
		Token:       config.Conf.Bot.Token,
		BotId:       config.Conf.Bot.Id,
		ShardId:     event.ShardId,
		RateLimiter: nil, // Use http-proxy ratelimit functionality
	}

	if err := execute(workerCtx, event.Event, l.logger); err != nil {
		l.logger.Error("Failed to handle event", zap.Error(err))
	}
}
