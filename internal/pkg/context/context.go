package context

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ContextKey represents a key for context values
type ContextKey string

const (
	// RequestIDKey is the key for request ID in context
	RequestIDKey ContextKey = "request_id"
	// VehicleIDKey is the key for vehicle ID in context
	VehicleIDKey ContextKey = "vehicle_id"
	// TraceIDKey is the key for trace ID in context
	TraceIDKey ContextKey = "trace_id"
	// ServiceNameKey is the key for service name in context
	ServiceNameKey ContextKey = "service_name"
)

// WithRequestID adds a request ID to the context, generating one when
// empty
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = uuid.New().String()
	}
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestID retrieves the request ID from context
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// WithVehicleID adds a vehicle ID to the context
func WithVehicleID(ctx context.Context, vehicleID string) context.Context {
	return context.WithValue(ctx, VehicleIDKey, vehicleID)
}

// GetVehicleID retrieves the vehicle ID from context
func GetVehicleID(ctx context.Context) string {
	if vehicleID, ok := ctx.Value(VehicleIDKey).(string); ok {
		return vehicleID
	}
	return ""
}

// WithTraceID adds a trace ID to the context
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// GetTraceID retrieves the trace ID from context
func GetTraceID(ctx context.Context) string {
	if traceID, ok := ctx.Value(TraceIDKey).(string); ok {
		return traceID
	}
	return ""
}

// WithTimeout creates a context with timeout for operations
func WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}
