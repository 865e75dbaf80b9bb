package logging

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fieldsCtxKey struct{}

// WithFields returns a context carrying extra log fields.
func WithFields(ctx context.Context, fields ...zap.Field) context.Context {
	existing := ContextFields(ctx)
	all := make([]zap.Field, 0, len(existing)+len(fields))
	all = append(all, existing...)
	all = append(all, fields...)
	return context.WithValue(ctx, fieldsCtxKey{}, all)
}

// WithOperation tags ctx with the command name and a fresh op_id.
func WithOperation(ctx context.Context, command string) context.Context {
	return WithFields(ctx, zap.String("command", command), zap.String("op_id", uuid.NewString()))
}

// ContextFields returns the fields stored in ctx.
func ContextFields(ctx context.Context) []zap.Field {
	if ctx == nil {
		return nil
	}
	fields, _ := ctx.Value(fieldsCtxKey{}).([]zap.Field)
	return fields
}

// For returns base enriched with the context fields. A nil base yields a no-op logger.
func For(ctx context.Context, base *zap.Logger) *zap.Logger {
	if base == nil {
		return zap.NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return base
	}
	return base.With(fields...)
}
