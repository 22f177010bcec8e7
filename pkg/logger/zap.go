package logger

import (
	"context"

	"go.uber.org/zap"

	"github.com/Gunvolt24/pos_printer/pkg/ctxmeta"
)

type ZapLogger struct {
	base   *zap.Logger
	sugar  *zap.SugaredLogger
	isProd bool
}

func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	var (
		logger *zap.Logger
		err    error
	)

	if isProd {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, nil, err
	}

	return wrap(logger, isProd), func() error { return logger.Sync() }, nil
}

// NewFromZap — обёртка над готовым *zap.Logger (например, zaptest/observer в тестах).
func NewFromZap(l *zap.Logger) *ZapLogger { return wrap(l, false) }

func wrap(l *zap.Logger, isProd bool) *ZapLogger {
	return &ZapLogger{base: l, sugar: l.Sugar(), isProd: isProd}
}

// withCtx — логгер с полями из контекста: request_id, order_id, роль, trace_id.
func (z *ZapLogger) withCtx(ctx context.Context) *zap.SugaredLogger {
	var kv []any
	if v, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		kv = append(kv, "request_id", v)
	}
	if v, ok := ctxmeta.OrderIDFromContext(ctx); ok {
		kv = append(kv, "order_id", v)
	}
	if v, ok := ctxmeta.RoleFromContext(ctx); ok {
		kv = append(kv, "role", v)
	}
	if v, ok := ctxmeta.TraceIDFromContext(ctx); ok {
		kv = append(kv, "trace_id", v)
	}
	if len(kv) == 0 {
		return z.sugar
	}
	return z.sugar.With(kv...)
}

func (z *ZapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.withCtx(ctx).Infof(format, args...)
}
func (z *ZapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.withCtx(ctx).Warnf(format, args...)
}
func (z *ZapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.withCtx(ctx).Errorf(format, args...)
}

func (z *ZapLogger) Base() *zap.Logger           { return z.base }
func (z *ZapLogger) Sugared() *zap.SugaredLogger { return z.sugar }
