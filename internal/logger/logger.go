package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultLogFilename   = "orders.log"
	defaultLogMaxSizeMB  = 100
	defaultLogMaxBackups = 7
	defaultLogMaxAgeDays = 30
)

type Options struct {
	// Level is one of debug, info, warn, error. Unknown values mean info.
	Level string
	// Dir enables rotating file output when set. Stdout is used otherwise.
	Dir string
	// Development switches to the console encoder.
	Development bool
}

// New builds the process logger. It never returns nil: a broken log
// directory falls back to stdout.
func New(options Options) *zap.Logger {
	level := zap.NewAtomicLevelAt(parseLevel(options.Level))

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.MessageKey = "message"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeDuration = zapcore.MillisDurationEncoder
	encoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	encoder := zapcore.NewJSONEncoder(encoderConfig)
	if options.Development {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	sink := zapcore.AddSync(os.Stdout)
	if strings.TrimSpace(options.Dir) != "" {
		fileSink, err := newFileWriteSyncer(options.Dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "logger: file output disabled, using stdout: %v\n", err)
		} else {
			sink = zapcore.NewMultiWriteSyncer(sink, fileSink)
		}
	}

	return zap.New(zapcore.NewCore(encoder, sink, level), zap.AddCaller())
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	}
	return zapcore.InfoLevel
}

func newFileWriteSyncer(dir string) (zapcore.WriteSyncer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(dir, defaultLogFilename),
		MaxSize:    defaultLogMaxSizeMB,
		MaxBackups: defaultLogMaxBackups,
		MaxAge:     defaultLogMaxAgeDays,
		Compress:   true,
	}), nil
}
