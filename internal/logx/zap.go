package logx

import (
	"time"

	"go.uber.org/zap"
)

// ZapAdapter adapts a *zap.Logger to the logx.Logger interface.
type ZapAdapter struct {
	l *zap.Logger
}

// NewZapAdapter returns a Logger implementation backed by the provided *zap.Logger.
func NewZapAdapter(l *zap.Logger) Logger {
	return &ZapAdapter{l: l}
}

// Debug logs a debug-level message with optional structured fields.
func (z *ZapAdapter) Debug(msg string, fields ...Field) { z.l.Debug(msg, toZapFields(fields)...) }

// Info logs an info-level message with optional structured fields.
func (z *ZapAdapter) Info(msg string, fields ...Field) { z.l.Info(msg, toZapFields(fields)...) }

// Warn logs a warning-level message with optional structured fields.
func (z *ZapAdapter) Warn(msg string, fields ...Field) { z.l.Warn(msg, toZapFields(fields)...) }

// Error logs an error-level message with optional structured fields.
func (z *ZapAdapter) Error(msg string, fields ...Field) { z.l.Error(msg, toZapFields(fields)...) }

// With returns a new logger with the provided fields attached to every subsequent log entry.
func (z *ZapAdapter) With(fields ...Field) Logger {
	return &ZapAdapter{l: z.l.With(toZapFields(fields)...)}
}

// Sync flushes any buffered log entries.
func (z *ZapAdapter) Sync() error { return z.l.Sync() }

func toZapFields(fields []Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			out = append(out, zap.String(f.Key, v))
		case int:
			out = append(out, zap.Int(f.Key, v))
		case int64:
			out = append(out, zap.Int64(f.Key, v))
		case bool:
			out = append(out, zap.Bool(f.Key, v))
		case time.Time:
			out = append(out, zap.Time(f.Key, v))
		case time.Duration:
			out = append(out, zap.Duration(f.Key, v))
		case error:
			out = append(out, zap.NamedError(f.Key, v))
		default:
			out = append(out, zap.Any(f.Key, v))
		}
	}
	return out
}
