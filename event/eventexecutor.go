package event

import (
	"context"
	"fmt"

	"github.com/TicketsBot-cloud/gdl/gateway/payloads"
	sentrygo "github.com/getsentry/sentry-go"
	"github.com/modmail-cloud/departments-worker/bot/listeners"
	"github.com/modmail-cloud/departments-worker/bot/metrics/prometheus"
	"github.com/modmail-cloud/departments-worker/worker"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func execute(c *worker.Context, event []byte, logger *zap.Logger) error {
	var payload payloads.Payload
	if err := json.Unmarshal(event, &payload); err != nil {
		return errors.Wrap(err, "error whilst decoding event data")
	}

	logger.Debug("Executing gateway event",
		zap.String("event_type", payload.EventName),
		zap.Uint64("bot_id", c.BotId),
		zap.Int("shard_id", c.ShardId))

	span := sentrygo.StartTransaction(context.Background(), "Handle Event")
	span.SetTag("event", payload.EventName)
	defer span.Finish()

	prometheus.Events.WithLabelValues(payload.EventName).Inc()

	if err := listeners.HandleEvent(c, payload); err != nil {
		logger.Error("Error whilst handling event",
			zap.String("event_type", payload.EventName),
			zap.Uint64("bot_id", c.BotId),
			zap.Error(err),
		)

		return fmt.Errorf("handle %s: %w", payload.EventName, err)
	}

	return nil
}
