package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// fanoutMessage is the wire form of a topic published across instances.
type fanoutMessage struct {
	Origin  string          `json:"origin"`
	Topic   string          `json:"topic"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// RedisFanout mirrors locally published topics onto a Redis channel and
// republishes topics received from other instances into the local
// notifier, so cache-invalidation signals reach every running replica.
type RedisFanout struct {
	rdb      *goredis.Client
	channel  string
	origin   string
	notifier *Notifier
	log      zerolog.Logger
}

// NewRedisFanout connects to Redis and returns a fanout bound to the
// given local notifier.
func NewRedisFanout(addr, channel string, notifier *Notifier, log zerolog.Logger) (*RedisFanout, error) {
	if channel == "" {
		channel = "tnqdo:events"
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisFanout{
		rdb:      rdb,
		channel:  channel,
		origin:   uuid.NewString(),
		notifier: notifier,
		log:      log,
	}, nil
}

// Publish sends topic and payload to the Redis channel.
func (f *RedisFanout) Publish(ctx context.Context, topic string, payload interface{}) error {
	var raw json.RawMessage
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal fanout payload: %w", err)
		}
		raw = b
	}

	msg, err := json.Marshal(fanoutMessage{Origin: f.origin, Topic: topic, Payload: raw})
	if err != nil {
		return err
	}
	return f.rdb.Publish(ctx, f.channel, msg).Err()
}

// Start subscribes to the Redis channel and republishes messages from
// other instances into the local notifier until ctx is cancelled.
// Messages this instance published itself are skipped so a topic never
// loops back into its own handlers twice.
func (f *RedisFanout) Start(ctx context.Context) error {
	sub := f.rdb.Subscribe(ctx, f.channel)

	// ensures subscription actually started
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return fmt.Errorf("redis subscribe: %w", err)
	}

	go func() {
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				_ = sub.Close()
				return
			case m, ok := <-ch:
				if !ok || m == nil {
					_ = sub.Close()
					return
				}
				var msg fanoutMessage
				if err := json.Unmarshal([]byte(m.Payload), &msg); err != nil {
					f.log.Warn().Err(err).Msg("Bad fanout payload")
					continue
				}
				if msg.Origin == f.origin {
					continue
				}
				f.notifier.Publish(msg.Topic, msg.Payload)
			}
		}
	}()

	return nil
}

// BindTopics mirrors local publishes of the given topics onto the Redis
// channel. Payloads arriving as json.RawMessage were republished by the
// fanout itself and are skipped, which keeps a topic from ping-ponging
// between instances.
func (f *RedisFanout) BindTopics(ctx context.Context, topics ...string) {
	for _, topic := range topics {
		t := topic
		f.notifier.Subscribe(t, func(payload interface{}) {
			if _, remote := payload.(json.RawMessage); remote {
				return
			}
			if err := f.Publish(ctx, t, payload); err != nil {
				f.log.Warn().Err(err).Str("topic", t).Msg("Fanout publish failed")
			}
		})
	}
}

// Close releases the Redis connection.
func (f *RedisFanout) Close() error {
	return f.rdb.Close()
}
