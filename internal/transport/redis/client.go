package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

// Connect opens a client and checks the server answers.
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return conn, nil
}

// Publisher republishes engine snapshots on a Redis channel for external displays.
type Publisher struct {
	logger  *slog.Logger
	client  *redis.Client
	channel string

	queue   chan entity.Snapshot
	dropped atomic.Uint64
}

func NewPublisher(logger *slog.Logger, client *redis.Client, channel string, buffer int) *Publisher {
	if buffer < 1 {
		buffer = 1
	}

	return &Publisher{
		logger:  logger.With("component", "publisher", "channel", channel),
		client:  client,
		channel: channel,
		queue:   make(chan entity.Snapshot, buffer),
	}
}

// StateChanged queues the snapshot without blocking the engine. Snapshots that don't fit are dropped.
func (that *Publisher) StateChanged(snapshot entity.Snapshot) {
	select {
	case that.queue <- snapshot:
	default:
		that.dropped.Add(1)
		that.logger.Warn("publish queue is full, snapshot dropped", "version", snapshot.Version)
	}
}

// Dropped returns how many snapshots were lost to a full queue.
func (that *Publisher) Dropped() uint64 {
	return that.dropped.Load()
}

// Run publishes queued snapshots until ctx is done.
func (that *Publisher) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	for {
		select {
		case <-ctx.Done():
			log.Info("publisher stopped", "dropped", that.Dropped())
			return nil
		case snapshot := <-that.queue:
			if err := that.publish(ctx, snapshot); err != nil {
				log.Error("failed to publish snapshot", "version", snapshot.Version, "error", err)
			}
		}
	}
}

func (that *Publisher) publish(ctx context.Context, snapshot entity.Snapshot) error {
	snapshotJSON, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("could not marshal snapshot: %w", err)
	}

	if err = that.client.Publish(ctx, that.channel, snapshotJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish snapshot: %w", err)
	}

	return nil
}

// Subscribe decodes snapshots published on channel. The returned channel is closed once ctx is done.
func Subscribe(ctx context.Context, client *redis.Client, channel string) (<-chan entity.Snapshot, error) {
	pubsub := client.Subscribe(ctx, channel)

	// wait for the subscription to be confirmed so nothing published afterwards is missed
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", channel, err)
	}

	snapshots := make(chan entity.Snapshot)

	go func() {
		defer close(snapshots)
		defer pubsub.Close()

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}

				var snapshot entity.Snapshot
				if err := json.Unmarshal([]byte(msg.Payload), &snapshot); err != nil {
					continue
				}

				select {
				case snapshots <- snapshot:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return snapshots, nil
}
