package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/Primesh-FL/FormSG/common/logger"
	"github.com/Primesh-FL/FormSG/internal/model"
	"github.com/Primesh-FL/FormSG/internal/queue"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	smsMetricPrefix     = "vendor.twilio."
	SmsUpdateMetricName = smsMetricPrefix + "sms.update"
)

type SmsDeliveryService interface {
	RecordUpdate(ctx context.Context, update model.SmsDeliveryUpdate) error
}

type smsDeliveryService struct {
	producer queue.Producer
	updates  metric.Int64Counter
}

// NewSmsDeliveryService records Twilio delivery callbacks. producer may be
// nil, in which case updates are only logged and counted.
func NewSmsDeliveryService(producer queue.Producer, meter metric.Meter) (SmsDeliveryService, error) {
	updates, err := meter.Int64Counter(SmsUpdateMetricName,
		metric.WithDescription("Twilio SMS delivery status callbacks"),
		metric.WithUnit("{update}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", SmsUpdateMetricName, err)
	}
	return &smsDeliveryService{producer: producer, updates: updates}, nil
}

func (s *smsDeliveryService) RecordUpdate(ctx context.Context, update model.SmsDeliveryUpdate) error {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		MessageSid: logger.Ptr(update.MessageSid),
		Component:  "formsg.service.sms",
	})

	errorCode := "0"
	attrs := []any{
		"action", "twilioSmsUpdates",
		"sms_sid", update.SmsSid,
		"sms_status", update.SmsStatus,
		"message_status", update.MessageStatus,
		"account_sid", update.AccountSid,
		"to", update.To,
		"from", update.From,
		"api_version", update.ApiVersion,
	}

	if update.IsError() {
		errorCode = errorCodeTag(update.ErrorCode)
		attrs = append(attrs, "error_code", errorCode)
		if update.ErrorMessage != nil {
			attrs = append(attrs, "error_message", *update.ErrorMessage)
		}
		slog.ErrorContext(ctx, "Error occurred when attempting to send SMS on twilio", attrs...)
	} else {
		slog.InfoContext(ctx, "Sms Delivery update", attrs...)
	}

	s.updates.Add(ctx, 1, metric.WithAttributes(
		attribute.String("accountsid", update.AccountSid),
		attribute.String("smsstatus", update.SmsStatus),
		attribute.String("errorcode", errorCode),
	))

	if s.producer == nil {
		return nil
	}

	msg := queue.SmsUpdateMessage{
		MessageSid:    update.MessageSid,
		SmsSid:        update.SmsSid,
		AccountSid:    update.AccountSid,
		SmsStatus:     update.SmsStatus,
		MessageStatus: update.MessageStatus,
		To:            update.To,
		From:          update.From,
		ErrorCode:     update.ErrorCode,
	}
	if update.ErrorMessage != nil {
		msg.ErrorMessage = *update.ErrorMessage
	}
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		msg.TraceID = sc.TraceID().String()
	}

	// Twilio retries on non-2xx, so a publish failure must not fail the callback.
	if err := s.producer.Enqueue(ctx, msg); err != nil {
		slog.WarnContext(ctx, "failed to publish sms update", "error", err)
	}
	return nil
}

// errorCodeTag renders a missing code as "undefined".
func errorCodeTag(code *int) string {
	if code == nil {
		return "undefined"
	}
	return strconv.Itoa(*code)
}
