// Package logger builds the process logger: a coloured console core, optional
// rotating JSON files split into info and error streams, and an optional
// Sentry core for errors.
package logger

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/LinkinStars/golang-util/gu"
	"github.com/getsentry/sentry-go"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/katalvlaran/lvmine/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Name prefixes the rotating log file names.
const Name = "lvmine"

// Option adjusts New.
type Option func(*options)

type options struct {
	sentryClient *sentry.Client
	fields       []zap.Field
}

// WithSentryClient reports errors through c instead of a client built from
// the configured DSN.
func WithSentryClient(c *sentry.Client) Option {
	return func(o *options) {
		o.sentryClient = c
	}
}

// WithFields attaches fields to every entry, e.g. a run id.
func WithFields(fs ...zap.Field) Option {
	return func(o *options) {
		o.fields = append(o.fields, fs...)
	}
}

// New builds a logger writing human-readable lines to console at cfg.Level.
// When cfg.Path is set, entries are also written as JSON to daily rotated
// files in that directory (<name>_info_*.log and <name>_err_*.log, errors
// only in the latter). When a Sentry client is available, errors are
// reported to it.
func New(cfg config.LoggerConfig, console io.Writer, opts ...Option) (*zap.Logger, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	consoleCfg.EncodeTime = timeEncoder
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.Lock(zapcore.AddSync(console)), level),
	}

	if cfg.Path != "" {
		fc, err := fileCores(cfg, level)
		if err != nil {
			return nil, err
		}
		cores = append(cores, fc...)
	}

	client := o.sentryClient
	if client == nil && cfg.SentryDSN != "" {
		client, err = sentry.NewClient(sentry.ClientOptions{Dsn: cfg.SentryDSN})
		if err != nil {
			return nil, fmt.Errorf("logger: sentry client: %w", err)
		}
	}
	if client != nil {
		cores = append(cores, NewSentryCore(SentryCoreConfig{Level: zapcore.ErrorLevel}, client))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()).With(o.fields...), nil
}

// fileCores opens the info and error rotating writers.
func fileCores(cfg config.LoggerConfig, level zapcore.Level) ([]zapcore.Core, error) {
	if err := gu.CreateDirIfNotExist(cfg.Path); err != nil {
		return nil, fmt.Errorf("logger: create %s: %w", cfg.Path, err)
	}
	base := filepath.Join(cfg.Path, Name)

	maxAge := time.Duration(cfg.MaxAge) * 24 * time.Hour
	rotation := time.Duration(cfg.RotationTime) * time.Hour
	if rotation <= 0 {
		rotation = 24 * time.Hour
	}
	size := int64(cfg.RotationSize) * 1024 * 1024
	if size <= 0 {
		size = 1024 * 1024 * 1024
	}

	open := func(kind string) (*rotatelogs.RotateLogs, error) {
		w, err := rotatelogs.New(
			base+"_"+kind+"_%Y-%m-%d.log",
			rotatelogs.WithLinkName(base+"_"+kind+"_last.log"),
			rotatelogs.WithMaxAge(maxAge),
			rotatelogs.WithRotationTime(rotation),
			rotatelogs.WithRotationSize(size),
		)
		if err != nil {
			return nil, fmt.Errorf("logger: open %s log: %w", kind, err)
		}
		return w, nil
	}
	errWriter, err := open("err")
	if err != nil {
		return nil, err
	}
	infoWriter, err := open("info")
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = timeEncoder
	enc := zapcore.NewJSONEncoder(encCfg)

	high := zap.LevelEnablerFunc(func(l zapcore.Level) bool { return l > zapcore.WarnLevel && level.Enabled(l) })
	return []zapcore.Core{
		zapcore.NewCore(enc, zapcore.AddSync(errWriter), high),
		zapcore.NewCore(enc, zapcore.AddSync(infoWriter), level),
	}, nil
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
}
