package observability

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type contextKey string

const (
	traceIDBytes = 16 // OpenTelemetry trace ID size in bytes
	spanIDBytes  = 8  // OpenTelemetry span ID size in bytes
)

const (
	// TraceIDKey holds the OpenTelemetry trace ID.
	TraceIDKey contextKey = "trace_id"

	// SpanIDKey holds the OpenTelemetry span ID.
	SpanIDKey contextKey = "span_id"

	// RequestIDKey holds the request identifier, possibly supplied by the calling service.
	RequestIDKey contextKey = "request_id"

	// RequesterKey holds the ID of the sponsor asking for or redeeming a quote.
	RequesterKey contextKey = "requester_id"

	// EstimateKey holds the fee estimate being issued or redeemed.
	EstimateKey contextKey = "estimate_id"
)

// correlationKeys is the order in which IDs appear on log lines and events.
var correlationKeys = [...]contextKey{ //nolint:gochecknoglobals // read-only
	TraceIDKey, SpanIDKey, RequestIDKey, RequesterKey, EstimateKey,
}

// WithTraceID injects trace ID into context.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// WithSpanID injects span ID into context.
func WithSpanID(ctx context.Context, spanID string) context.Context {
	return context.WithValue(ctx, SpanIDKey, spanID)
}

// WithRequestID injects request ID into context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// WithRequesterID tags every log line and event of the quote flow with the requester.
func WithRequesterID(ctx context.Context, requesterID string) context.Context {
	return context.WithValue(ctx, RequesterKey, requesterID)
}

// WithEstimateID tags every log line and event with the fee estimate being handled.
func WithEstimateID(ctx context.Context, estimateID string) context.Context {
	return context.WithValue(ctx, EstimateKey, estimateID)
}

// GetTraceID extracts trace ID from context.
func GetTraceID(ctx context.Context) string { return stringValue(ctx, TraceIDKey) }

// GetSpanID extracts span ID from context.
func GetSpanID(ctx context.Context) string { return stringValue(ctx, SpanIDKey) }

// GetRequestID extracts request ID from context.
func GetRequestID(ctx context.Context) string { return stringValue(ctx, RequestIDKey) }

// GetRequesterID extracts the requester ID from context.
func GetRequesterID(ctx context.Context) string { return stringValue(ctx, RequesterKey) }

// GetEstimateID extracts the fee estimate ID from context.
func GetEstimateID(ctx context.Context) string { return stringValue(ctx, EstimateKey) }

// ContextFields returns one field per correlation ID present in ctx, in a stable order.
func ContextFields(ctx context.Context) []Field {
	fields := make([]Field, 0, len(correlationKeys))
	for _, key := range correlationKeys {
		if v := stringValue(ctx, key); v != "" {
			fields = append(fields, zap.String(string(key), v))
		}
	}
	return fields
}

func stringValue(ctx context.Context, key contextKey) string {
	if ctx == nil {
		return ""
	}
	v, _ := ctx.Value(key).(string)
	return v
}

// GenerateTraceID generates an OpenTelemetry-compatible trace ID (32 hex chars).
func GenerateTraceID() string {
	return randomHex(traceIDBytes)
}

// GenerateSpanID generates an OpenTelemetry-compatible span ID (16 hex chars).
func GenerateSpanID() string {
	return randomHex(spanIDBytes)
}

// GenerateRequestID generates a unique request identifier (UUID).
func GenerateRequestID() string {
	return uuid.New().String()
}

func randomHex(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		u := uuid.New()
		return hex.EncodeToString(u[:])[:2*n]
	}
	return hex.EncodeToString(bytes)
}
