package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config represents logger settings.
type Config struct {
	Level  string `json:"level,omitempty" yaml:"level,omitempty" toml:"level,omitempty"`
	Format string `json:"format,omitempty" yaml:"format,omitempty" toml:"format,omitempty"`
}

// DefaultConfig returns info level text logging.
func DefaultConfig() Config {
	return Config{Level: logrus.InfoLevel.String(), Format: FormatText}
}

// Validate checks level and format.
func (c *Config) Validate() error {
	if c.Level != "" {
		if _, err := logrus.ParseLevel(c.Level); err != nil {
			return fmt.Errorf("logging.level: %w", err)
		}
	}
	switch strings.ToLower(c.Format) {
	case "", FormatText, FormatJSON:
		return nil
	}
	return fmt.Errorf("logging.format: unsupported format %q", c.Format)
}

// New creates a logger writing to w (os.Stderr when nil).
func New(cfg Config, w io.Writer) (*logrus.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := logrus.New()
	if w == nil {
		w = os.Stderr
	}
	logger.SetOutput(w)
	if cfg.Level != "" {
		level, _ := logrus.ParseLevel(cfg.Level)
		logger.SetLevel(level)
	}
	if strings.ToLower(cfg.Format) == FormatJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger, nil
}

// Discard returns a logger that drops every entry.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
