// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Context keys for logging.
type contextKey string

const (
	// requestIDKey is the context key for the per-command request ID.
	requestIDKey contextKey = "request_id"

	// operationKey is the context key for the command being executed.
	operationKey contextKey = "operation"

	// loggerKey is the context key for storing a logger instance.
	loggerKey contextKey = "logger"
)

// GenerateRequestID creates a new unique request ID.
func GenerateRequestID() string {
	return uuid.New().String()
}

// ContextWithRequestID returns a new context with the given request ID.
//
//	ctx = logging.ContextWithRequestID(ctx, requestID)
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// ContextWithNewRequestID returns a context with a newly generated request ID.
func ContextWithNewRequestID(ctx context.Context) context.Context {
	return ContextWithRequestID(ctx, GenerateRequestID())
}

// RequestIDFromContext retrieves the request ID from context.
// Returns empty string if not present.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// ContextWithOperation records the command name in the context.
func ContextWithOperation(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, operationKey, op)
}

// OperationFromContext returns the command name, or "".
func OperationFromContext(ctx context.Context) string {
	if op, ok := ctx.Value(operationKey).(string); ok {
		return op
	}
	return ""
}

// ContextWithLogger stores a logger in the context.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func ContextWithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext retrieves the logger stored in ctx, or the global logger.
func LoggerFromContext(ctx context.Context) zerolog.Logger {
	if logger, ok := ctx.Value(loggerKey).(zerolog.Logger); ok {
		return logger
	}
	return Logger()
}

// Ctx returns a logger with the request ID and operation from ctx added.
//
//	logging.Ctx(ctx).Info().Msg("user added")
//	// Output: {"level":"info","request_id":"uuid","operation":"add-user","message":"user added"}
func Ctx(ctx context.Context) *zerolog.Logger {
	l := CtxWith(ctx).Logger()
	return &l
}

// CtxWith returns a logger context builder with context values pre-populated.
//
//	logger := logging.CtxWith(ctx).Int("user_id", id).Logger()
func CtxWith(ctx context.Context) zerolog.Context {
	logger := LoggerFromContext(ctx)
	logCtx := logger.With()

	if requestID := RequestIDFromContext(ctx); requestID != "" {
		logCtx = logCtx.Str("request_id", requestID)
	}
	if op := OperationFromContext(ctx); op != "" {
		logCtx = logCtx.Str("operation", op)
	}
	return logCtx
}

// WithComponent creates a child logger with a component field.
//
//	storeLogger := logging.WithComponent("store")
func WithComponent(component string) zerolog.Logger {
	return With().Str("component", component).Logger()
}
