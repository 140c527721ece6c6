// Package logging provides the service-wide structured logging interface and
// its zap-backed implementation.  Components depend on the Logger interface
// only; go.uber.org/zap is not imported outside this package.
//
// Initialisation order in cmd/*/main.go:
//
//  1. Parse configuration.
//  2. Call NewLogger(cfg) and hand the result to SetDefault.
//  3. Construct every other component with the Logger injected.
package logging

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ─────────────────────────────────────────────────────────────────────────────
// Field
// ─────────────────────────────────────────────────────────────────────────────

// Field is a typed key-value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// String constructs a Field with a string value.
func String(key, val string) Field { return Field{Key: key, Value: val} }

// Strings constructs a Field with a string slice value.
func Strings(key string, val []string) Field { return Field{Key: key, Value: val} }

// Int constructs a Field with an int value.
func Int(key string, val int) Field { return Field{Key: key, Value: val} }

// Int64 constructs a Field with an int64 value.
func Int64(key string, val int64) Field { return Field{Key: key, Value: val} }

// Float64 constructs a Field with a float64 value.
func Float64(key string, val float64) Field { return Field{Key: key, Value: val} }

// Bool constructs a Field with a bool value.
func Bool(key string, val bool) Field { return Field{Key: key, Value: val} }

// Duration constructs a Field with a time.Duration value.
func Duration(key string, val time.Duration) Field { return Field{Key: key, Value: val} }

// Err constructs a Field that captures an error under the key "error".
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: "<nil>"}
	}
	return Field{Key: "error", Value: err.Error()}
}

// CAS tags an entry with the normalized CAS number it concerns.
func CAS(cas string) Field { return Field{Key: "cas", Value: cas} }

// CID tags an entry with an upstream compound id.
func CID(cid int) Field { return Field{Key: "cid", Value: cid} }

// ─────────────────────────────────────────────────────────────────────────────
// Logger
// ─────────────────────────────────────────────────────────────────────────────

// Logger is the structured logging contract.  Implementations must be safe
// for concurrent use.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// Fatal logs and then calls os.Exit(1).  Startup failures only.
	Fatal(msg string, fields ...Field)

	// With returns a child Logger that adds fields to every entry.
	With(fields ...Field) Logger

	// Named returns a child Logger whose name is appended with a period
	// separator ("ghs" → "ghs.pubchem").
	Named(name string) Logger
}

// Level names accepted by LogConfig.Level.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// LogConfig carries the parameters required to construct a Logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.  Defaults to info.
	Level string `mapstructure:"level" yaml:"level" json:"level"`

	// Format is "json" (default) or "console".
	Format string `mapstructure:"format" yaml:"format" json:"format"`

	// OutputPaths lists sinks; "stdout" and "stderr" are special values.
	// A nil slice means ["stdout"]; an empty non-nil slice is rejected.
	OutputPaths []string `mapstructure:"output_paths" yaml:"output_paths" json:"output_paths"`

	// ErrorOutputPaths receives zap's internal errors.  Defaults to ["stderr"].
	ErrorOutputPaths []string `mapstructure:"error_output_paths" yaml:"error_output_paths" json:"error_output_paths"`
}

// ─────────────────────────────────────────────────────────────────────────────
// zapLogger
// ─────────────────────────────────────────────────────────────────────────────

type zapLogger struct {
	z *zap.Logger
}

func toZapFields(fields []Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			out = append(out, zap.String(f.Key, v))
		case []string:
			out = append(out, zap.Strings(f.Key, v))
		case int:
			out = append(out, zap.Int(f.Key, v))
		case int64:
			out = append(out, zap.Int64(f.Key, v))
		case float64:
			out = append(out, zap.Float64(f.Key, v))
		case bool:
			out = append(out, zap.Bool(f.Key, v))
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

func (l *zapLogger) Debug(msg string, fields ...Field) { l.z.Debug(msg, toZapFields(fields)...) }
func (l *zapLogger) Info(msg string, fields ...Field)  { l.z.Info(msg, toZapFields(fields)...) }
func (l *zapLogger) Warn(msg string, fields ...Field)  { l.z.Warn(msg, toZapFields(fields)...) }
func (l *zapLogger) Error(msg string, fields ...Field) { l.z.Error(msg, toZapFields(fields)...) }
func (l *zapLogger) Fatal(msg string, fields ...Field) { l.z.Fatal(msg, toZapFields(fields)...) }

func (l *zapLogger) With(fields ...Field) Logger {
	return &zapLogger{z: l.z.With(toZapFields(fields)...)}
}

func (l *zapLogger) Named(name string) Logger {
	return &zapLogger{z: l.z.Named(name)}
}

// ─────────────────────────────────────────────────────────────────────────────
// Construction
// ─────────────────────────────────────────────────────────────────────────────

// parseLevel maps a level name to zap.  Unknown values fall back to info.
func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// DynamicLevel is a minimum level that can be raised or lowered after the
// logger has been built.
type DynamicLevel struct {
	atom zap.AtomicLevel
}

// NewDynamicLevel starts at the named level.
func NewDynamicLevel(level string) *DynamicLevel {
	return &DynamicLevel{atom: zap.NewAtomicLevelAt(parseLevel(level))}
}

// Set switches to the named level.  Unknown names mean info.
func (d *DynamicLevel) Set(level string) { d.atom.SetLevel(parseLevel(level)) }

// String returns the current level name.
func (d *DynamicLevel) String() string { return d.atom.Level().String() }

// NewLogger builds a zap-backed Logger from cfg.
func NewLogger(cfg LogConfig) (Logger, error) {
	return NewLoggerWithLevel(cfg, NewDynamicLevel(cfg.Level))
}

// NewLoggerWithLevel is NewLogger with the level owned by the caller;
// cfg.Level is ignored.
func NewLoggerWithLevel(cfg LogConfig, level *DynamicLevel) (Logger, error) {
	if level == nil {
		level = NewDynamicLevel(cfg.Level)
	}
	if cfg.OutputPaths == nil {
		cfg.OutputPaths = []string{"stdout"}
	}
	if len(cfg.OutputPaths) == 0 {
		return nil, fmt.Errorf("logging: at least one output path is required")
	}
	if len(cfg.ErrorOutputPaths) == 0 {
		cfg.ErrorOutputPaths = []string{"stderr"}
	}

	console := cfg.Format == "console"

	encCfg := zap.NewProductionEncoderConfig()
	encoding := "json"
	if console {
		encCfg = zap.NewDevelopmentEncoderConfig()
		encoding = "console"
	}
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	zapCfg := zap.Config{
		Level:            level.atom,
		Development:      console,
		Encoding:         encoding,
		EncoderConfig:    encCfg,
		OutputPaths:      cfg.OutputPaths,
		ErrorOutputPaths: cfg.ErrorOutputPaths,
	}

	z, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("logging: failed to build zap logger: %w", err)
	}
	return &zapLogger{z: z}, nil
}

// NewDefaultLogger returns an info-level JSON logger on stdout.  It never
// returns nil; if zap cannot be built a no-op logger is returned.
func NewDefaultLogger() Logger {
	l, err := NewLogger(LogConfig{Level: LevelInfo, Format: "json"})
	if err != nil {
		return NewNopLogger()
	}
	return l
}

// NewDevelopmentLogger returns a debug-level console logger on stderr.
func NewDevelopmentLogger() Logger {
	l, err := NewLogger(LogConfig{Level: LevelDebug, Format: "console", OutputPaths: []string{"stderr"}})
	if err != nil {
		return NewNopLogger()
	}
	return l
}

// NewLoggerFromCore constructs a Logger from an existing zapcore.Core; tests
// pair it with zaptest/observer.
func NewLoggerFromCore(core zapcore.Core) Logger {
	return &zapLogger{z: zap.New(core, zap.AddCallerSkip(1))}
}

// ─────────────────────────────────────────────────────────────────────────────
// nopLogger
// ─────────────────────────────────────────────────────────────────────────────

type nopLogger struct{}

func (nopLogger) Debug(_ string, _ ...Field) {}
func (nopLogger) Info(_ string, _ ...Field)  {}
func (nopLogger) Warn(_ string, _ ...Field)  {}
func (nopLogger) Error(_ string, _ ...Field) {}
func (nopLogger) Fatal(_ string, _ ...Field) {}
func (n nopLogger) With(_ ...Field) Logger   { return n }
func (n nopLogger) Named(_ string) Logger    { return n }

// NewNopLogger returns a Logger that discards everything.
func NewNopLogger() Logger { return nopLogger{} }

// ─────────────────────────────────────────────────────────────────────────────
// Process default and context propagation
// ─────────────────────────────────────────────────────────────────────────────

var (
	defaultMu     sync.RWMutex
	defaultLogger Logger = nopLogger{}
)

// SetDefault replaces the process-wide default Logger.  nil is ignored.
func SetDefault(l Logger) {
	if l == nil {
		return
	}
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
}

// Default returns the process-wide default Logger.
func Default() Logger {
	defaultMu.RLock()
	l := defaultLogger
	defaultMu.RUnlock()
	return l
}

type loggerKey struct{}

// WithContext returns a copy of ctx carrying l.
func WithContext(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// FromContext returns the Logger stored in ctx, or fallback when none is set.
// A nil fallback resolves to Default().
func FromContext(ctx context.Context, fallback Logger) Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(Logger); ok && l != nil {
			return l
		}
	}
	if fallback != nil {
		return fallback
	}
	return Default()
}
