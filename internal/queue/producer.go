package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

type Producer interface {
	Enqueue(ctx context.Context, msg SmsUpdateMessage) error
	Close() error
}

type redisProducer struct {
	client *redis.Client
	stream string
	maxLen int64
	logger *slog.Logger
}

// NewRedisProducer publishes to stream, trimming it to roughly maxLen
// entries. A non-positive maxLen disables trimming.
func NewRedisProducer(client *redis.Client, stream string, maxLen int64, logger *slog.Logger) Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisProducer{
		client: client,
		stream: stream,
		maxLen: maxLen,
		logger: logger,
	}
}

func (p *redisProducer) Enqueue(ctx context.Context, msg SmsUpdateMessage) error {
	args := &redis.XAddArgs{
		Stream: p.stream,
		Values: msg.values(),
	}
	if p.maxLen > 0 {
		args.MaxLen = p.maxLen
		args.Approx = true
	}

	if err := p.client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("enqueue sms update: %w", err)
	}

	p.logger.DebugContext(ctx, "enqueued sms update", "message_sid", msg.MessageSid, "message_status", msg.MessageStatus, "stream", p.stream)
	return nil
}

func (p *redisProducer) Close() error {
	return p.client.Close()
}
