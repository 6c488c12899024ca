package app

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"volunteer-dispatch/internal/config"
	"volunteer-dispatch/internal/logx"
)

// NewLogger builds the service logger. Format is json, text or zap.
func NewLogger(cfg config.Log) (logx.Logger, error) {
	level := slog.LevelInfo
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	if err := level.UnmarshalText([]byte(strings.ToUpper(cfg.Level))); err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}

	switch strings.ToLower(cfg.Format) {
	case "", "json":
		return logx.NewSlogAdapter(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))), nil
	case "text":
		return logx.NewSlogAdapter(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))), nil
	case "zap":
		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(zapLevel(level))
		zl, err := zcfg.Build()
		if err != nil {
			return nil, fmt.Errorf("build zap logger: %w", err)
		}
		return logx.NewZapAdapter(zl), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}
}

func zapLevel(l slog.Level) zapcore.Level {
	switch {
	case l < slog.LevelInfo:
		return zapcore.DebugLevel
	case l < slog.LevelWarn:
		return zapcore.InfoLevel
	case l < slog.LevelError:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
