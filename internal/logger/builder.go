package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/bjornmorten/stoat-wh/internal/config"
)

// Builder provides a fluent interface for constructing loggers.
type Builder struct {
	level         zerolog.Level
	format        string
	filePath      string
	maxSizeMB     int
	maxBackups    int
	levelOverride bool
}

// NewBuilder creates a logger builder with the default configuration.
func NewBuilder() *Builder {
	return &Builder{
		level:      zerolog.WarnLevel,
		format:     config.DefaultLogFormat,
		maxSizeMB:  config.DefaultMaxLogSizeMB,
		maxBackups: config.DefaultMaxLogBackups,
	}
}

// WithConfig applies the logging configuration. An unparseable level
// falls back to the builder's current level.
func (b *Builder) WithConfig(cfg config.LogConfig) *Builder {
	if !b.levelOverride && cfg.LogLevel != "" {
		if level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel)); err == nil {
			b.level = level
		}
	}
	if cfg.LogFormat != "" {
		b.format = cfg.LogFormat
	}
	b.filePath = cfg.LogFile
	if cfg.MaxLogSizeMB > 0 {
		b.maxSizeMB = cfg.MaxLogSizeMB
	}
	if cfg.MaxLogBackups >= 0 {
		b.maxBackups = cfg.MaxLogBackups
	}
	return b
}

// WithLevel pins the log level, overriding any configured level.
func (b *Builder) WithLevel(level zerolog.Level) *Builder {
	b.level = level
	b.levelOverride = true
	return b
}

// Build creates the logger instance.
func (b *Builder) Build() (zerolog.Logger, error) {
	writers := []io.Writer{b.consoleWriter()}

	if b.filePath != "" {
		fileWriter, err := b.fileWriter()
		if err != nil {
			return zerolog.Logger{}, err
		}
		writers = append(writers, fileWriter)
	}

	multi := zerolog.MultiLevelWriter(writers...)
	return zerolog.New(multi).Level(b.level).With().Timestamp().Logger(), nil
}

// consoleWriter returns the stderr writer for the configured format.
// "console" and "text" use the human-readable writer; "json" writes raw
// zerolog JSON.
func (b *Builder) consoleWriter() io.Writer {
	switch b.format {
	case "json":
		return os.Stderr
	case "text":
		return zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}
	default:
		return zerolog.ConsoleWriter{Out: os.Stderr}
	}
}

// fileWriter returns a size-rotated JSON writer for the configured file.
func (b *Builder) fileWriter() (io.Writer, error) {
	if err := os.MkdirAll(filepath.Dir(b.filePath), 0755); err != nil {
		return nil, err
	}
	return &lumberjack.Logger{
		Filename:   b.filePath,
		MaxSize:    b.maxSizeMB,
		MaxBackups: b.maxBackups,
		LocalTime:  true,
	}, nil
}
