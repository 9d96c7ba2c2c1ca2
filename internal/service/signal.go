package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/inklet-dev/inklet/internal/domain"
)

const eventChannel = "inklet:events"

// SignalService fans out created-entity events over redis pub/sub so every
// server instance can feed its realtime subscribers.
type SignalService struct {
	rdb *redis.Client
}

func NewSignalService(redisClient *redis.Client) *SignalService {
	return &SignalService{
		rdb: redisClient,
	}
}

func (s *SignalService) Publish(ctx context.Context, event domain.Event) error {
	jsonstr, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = s.rdb.Publish(ctx, eventChannel, jsonstr).Err()
	if err != nil {
		return err
	}

	return nil
}

// Subscribe returns a channel of events published on this deployment and a
// stop function releasing the subscription. The channel closes when ctx is
// cancelled or stop is called.
func (s *SignalService) Subscribe(ctx context.Context) (<-chan domain.Event, func()) {
	sub := s.rdb.Subscribe(ctx, eventChannel)
	out := make(chan domain.Event)

	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			var event domain.Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				slog.WarnContext(
					ctx, "dropping malformed event payload",
					slog.String("error", err.Error()),
					slog.String("module", "signal"),
				)
				continue
			}
			select {
			case out <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, func() {
		sub.Close() //nolint:errcheck
	}
}
