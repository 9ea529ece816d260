// Package logging builds the diagnostic logger. Every entry carries the
// session id of the running process so several runs can share one log file.
package logging

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"stockroom/pkg/config"
)

var (
	sessionID     string
	sessionIDOnce sync.Once
)

// SessionID returns the id shared by every logger of this process.
func SessionID() string {
	sessionIDOnce.Do(func() {
		sessionID = uuid.New().String()
	})
	return sessionID
}

// New creates a zap logger from cfg. Output goes to cfg.File when set, to
// stderr otherwise; stdout is left to the console.
func New(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid logging level: %w", err)
	}

	output := "stderr"
	if cfg.File != "" {
		output = cfg.File
	}

	encoding := cfg.Format
	if encoding == "" {
		encoding = "console"
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	zcfg := zap.Config{
		Level:             level,
		Encoding:          encoding,
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{output},
		ErrorOutputPaths:  []string{"stderr"},
		DisableStacktrace: true,
		InitialFields:     map[string]interface{}{"session": SessionID()},
	}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// For scopes logger to component. Entries carry the component both as the
// logger name and as a "component" field. A nil logger yields a no-op one.
func For(logger *zap.Logger, component string) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger.Named(component).With(zap.String("component", component))
}
