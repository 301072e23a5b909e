package queue

import (
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// SmsUpdateMessage is the stream payload for one Twilio delivery callback.
type SmsUpdateMessage struct {
	ID            string `json:"id"`
	MessageSid    string `json:"message_sid"`
	SmsSid        string `json:"sms_sid"`
	AccountSid    string `json:"account_sid"`
	SmsStatus     string `json:"sms_status"`
	MessageStatus string `json:"message_status"`
	To            string `json:"to"`
	From          string `json:"from"`
	ErrorCode     *int   `json:"error_code,omitempty"`
	ErrorMessage  string `json:"error_message,omitempty"`
	TraceID       string `json:"trace_id,omitempty"`
}

func (m SmsUpdateMessage) values() map[string]any {
	values := map[string]any{
		"message_sid":    m.MessageSid,
		"sms_sid":        m.SmsSid,
		"account_sid":    m.AccountSid,
		"sms_status":     m.SmsStatus,
		"message_status": m.MessageStatus,
		"to":             m.To,
		"from":           m.From,
	}
	if m.ErrorCode != nil {
		values["error_code"] = *m.ErrorCode
	}
	if m.ErrorMessage != "" {
		values["error_message"] = m.ErrorMessage
	}
	if m.TraceID != "" {
		values["trace_id"] = m.TraceID
	}
	return values
}

func ParseSmsUpdate(msg redis.XMessage) (SmsUpdateMessage, error) {
	messageSid, err := parseString(msg.Values, "message_sid")
	if err != nil {
		return SmsUpdateMessage{}, err
	}
	status, err := parseString(msg.Values, "message_status")
	if err != nil {
		return SmsUpdateMessage{}, err
	}
	errorCode, err := parseOptionalInt(msg.Values, "error_code")
	if err != nil {
		return SmsUpdateMessage{}, err
	}

	return SmsUpdateMessage{
		ID:            msg.ID,
		MessageSid:    messageSid,
		MessageStatus: status,
		SmsSid:        parseOptionalString(msg.Values, "sms_sid"),
		AccountSid:    parseOptionalString(msg.Values, "account_sid"),
		SmsStatus:     parseOptionalString(msg.Values, "sms_status"),
		To:            parseOptionalString(msg.Values, "to"),
		From:          parseOptionalString(msg.Values, "from"),
		ErrorCode:     errorCode,
		ErrorMessage:  parseOptionalString(msg.Values, "error_message"),
		TraceID:       parseOptionalString(msg.Values, "trace_id"),
	}, nil
}

func parseString(values map[string]any, key string) (string, error) {
	raw, ok := values[key]
	if !ok {
		return "", fmt.Errorf("missing %s", key)
	}
	return fmt.Sprint(raw), nil
}

func parseOptionalInt(values map[string]any, key string) (*int, error) {
	raw, ok := values[key]
	if !ok {
		return nil, nil
	}
	num, err := strconv.Atoi(fmt.Sprint(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", key, err)
	}
	return &num, nil
}

func parseOptionalString(values map[string]any, key string) string {
	raw, ok := values[key]
	if !ok {
		return ""
	}
	return fmt.Sprint(raw)
}
