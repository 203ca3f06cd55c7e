package service

import (
	"context"
	"encoding/json"

	"github.com/csexamtest/examtest-backend/internal/config"
	"github.com/csexamtest/examtest-backend/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ActivityPublisher receives test attempt events.
type ActivityPublisher interface {
	Publish(ctx context.Context, event model.ActivityEvent)
}

// ActivityService fans test attempt events out over Redis pub/sub. A nil
// Redis client turns it into a no-op.
type ActivityService struct {
	rdb *redis.Client
	log zerolog.Logger
}

// NewActivityService creates a new ActivityService.
func NewActivityService(rdb *redis.Client, log zerolog.Logger) *ActivityService {
	return &ActivityService{
		rdb: rdb,
		log: log.With().Str("component", "activity").Logger(),
	}
}

// Enabled reports whether events are actually delivered anywhere.
func (s *ActivityService) Enabled() bool {
	return s.rdb != nil
}

// Publish sends the event to subscribers. Delivery failures are logged and
// never reach the caller.
func (s *ActivityService) Publish(ctx context.Context, event model.ActivityEvent) {
	if s.rdb == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to encode activity event")
		return
	}
	if err := s.rdb.Publish(ctx, config.CacheKey.ActivityChannel(), payload).Err(); err != nil {
		s.log.Warn().Err(err).
			Str("event", string(event.Type)).
			Str("test_attempt_id", event.TestAttemptID.String()).
			Msg("Failed to publish activity event")
	}
}

// Subscribe streams raw event payloads until ctx is cancelled. The returned
// channel is closed when the subscription ends.
func (s *ActivityService) Subscribe(ctx context.Context) (<-chan []byte, error) {
	if s.rdb == nil {
		return nil, ErrFeedUnavailable
	}

	sub := s.rdb.Subscribe(ctx, config.CacheKey.ActivityChannel())
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, err
	}

	out := make(chan []byte, 16)
	go func() {
		defer close(out)
		defer sub.Close()
		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				select {
				case out <- []byte(msg.Payload):
				default:
					s.log.Warn().Msg("Activity subscriber is slow, dropping event")
				}
			}
		}
	}()
	return out, nil
}
