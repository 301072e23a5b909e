package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields are attached to every record logged with a context carrying them.
// Request middleware and services enrich the context once; individual log
// calls don't repeat the identifiers.
type LogFields struct {
	UserID      *int64  // Authenticated admin
	WorkspaceID *int64  // Workspace being read or mutated
	FormID      *int64  // Form being read, edited or submitted
	MessageSid  *string // Twilio message SID for delivery callbacks
	Component   string  // e.g. "formsg.service.workspace"
}

// WithLogFields enriches ctx with structured log fields.
// Multiple calls merge, newer non-nil/non-empty values win.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	merged := mergeFields(GetLogFields(ctx), fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields returns the fields stored in ctx, or the zero value.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.UserID != nil {
		result.UserID = next.UserID
	}
	if next.WorkspaceID != nil {
		result.WorkspaceID = next.WorkspaceID
	}
	if next.FormID != nil {
		result.FormID = next.FormID
	}
	if next.MessageSid != nil {
		result.MessageSid = next.MessageSid
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr returns a pointer to v, for inline LogFields literals.
func Ptr[T any](v T) *T {
	return &v
}
