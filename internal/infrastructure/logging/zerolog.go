package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/andrescamacho/factorysim-go/internal/infrastructure/config"
)

// ZerologLogger adapts zerolog to the application Logger interface
type ZerologLogger struct {
	logger zerolog.Logger
	closer io.Closer
}

// NewLogger builds a logger from configuration. Close must be called when
// the output is a file.
func NewLogger(cfg config.LoggingConfig) (*ZerologLogger, error) {
	var (
		out    io.Writer
		closer io.Closer
	)
	switch cfg.Output {
	case "", "stdout":
		out = os.Stdout
	case "stderr":
		out = os.Stderr
	case "file":
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out, closer = f, f
	default:
		return nil, fmt.Errorf("unsupported log output: %s", cfg.Output)
	}

	l, err := NewLoggerWithWriter(out, cfg.Level, cfg.Format, cfg.IncludeCaller)
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return nil, err
	}
	l.closer = closer
	return l, nil
}

// NewLoggerWithWriter builds a logger writing to w
func NewLoggerWithWriter(w io.Writer, level, format string, includeCaller bool) (*ZerologLogger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	if format == "text" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	}

	ctx := zerolog.New(w).Level(lvl).With().Timestamp()
	if includeCaller {
		ctx = ctx.Caller()
	}
	return &ZerologLogger{logger: ctx.Logger()}, nil
}

func parseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(level) {
	case "", "info":
		return zerolog.InfoLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	}
	return zerolog.NoLevel, fmt.Errorf("unsupported log level: %s", level)
}

// Log writes one event. Unknown levels are logged at info.
func (l *ZerologLogger) Log(level, message string, metadata map[string]interface{}) {
	var event *zerolog.Event
	switch strings.ToUpper(level) {
	case "DEBUG":
		event = l.logger.Debug()
	case "WARN", "WARNING":
		event = l.logger.Warn()
	case "ERROR":
		event = l.logger.Error()
	default:
		event = l.logger.Info()
	}
	event.Fields(metadata).Msg(message)
}

// Close releases the log file, if any
func (l *ZerologLogger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
