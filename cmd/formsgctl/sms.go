package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"

	"github.com/Primesh-FL/FormSG/common/logger"
	"github.com/Primesh-FL/FormSG/internal/queue"
)

func newSmsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sms",
		Short: "Inspect Twilio delivery updates",
	}
	cmd.AddCommand(newSmsTailCmd())
	return cmd
}

func newSmsTailCmd() *cobra.Command {
	var (
		group    string
		consumer string
		batch    int64
		noAck    bool
	)

	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Stream SMS delivery updates as JSON lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if consumer == "" {
				host, _ := os.Hostname()
				consumer = fmt.Sprintf("formsgctl-%s-%d", host, os.Getpid())
			}

			redisOpts, err := redis.ParseURL(cfg.Redis.URL)
			if err != nil {
				return fmt.Errorf("parsing redis url: %w", err)
			}

			client := redis.NewClient(redisOpts)
			defer client.Close()

			c, err := queue.NewRedisConsumer(ctx, client, queue.ConsumerConfig{
				Stream:    cfg.Redis.SmsStream,
				Group:     group,
				Consumer:  consumer,
				BatchSize: batch,
				Block:     5 * time.Second,
			})
			if err != nil {
				return err
			}

			slog.InfoContext(ctx, "tailing sms updates", "stream", cfg.Redis.SmsStream, "group", group, "consumer", consumer)
			return tail(ctx, c, json.NewEncoder(cmd.OutOrStdout()), !noAck)
		},
	}

	cmd.Flags().StringVar(&group, "group", "formsgctl", "consumer group to read with")
	cmd.Flags().StringVar(&consumer, "consumer", "", "consumer name (defaults to host and pid)")
	cmd.Flags().Int64Var(&batch, "batch", 50, "messages per read")
	cmd.Flags().BoolVar(&noAck, "no-ack", false, "leave messages pending in the group")

	return cmd
}

func tail(ctx context.Context, c *queue.RedisConsumer, enc *json.Encoder, ack bool) error {
	for {
		msgs, err := c.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		for _, msg := range msgs {
			if err := emit(ctx, c, enc, msg, ack); err != nil {
				return err
			}
		}
	}
}

// emit writes one update under a span joined to the trace that published it.
func emit(ctx context.Context, c *queue.RedisConsumer, enc *json.Encoder, msg queue.SmsUpdateMessage, ack bool) error {
	sc := logger.StartSpanFromTraceID(ctx, msg.TraceID, "formsgctl.sms.tail",
		trace.WithSpanKind(trace.SpanKindConsumer))
	defer sc.End()
	ctx = sc.Context()

	if err := enc.Encode(msg); err != nil {
		sc.RecordError(err)
		return fmt.Errorf("writing message: %w", err)
	}
	if !ack {
		return nil
	}
	if err := c.Ack(ctx, msg.ID); err != nil {
		sc.RecordError(err)
		return err
	}
	return nil
}
