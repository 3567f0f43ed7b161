package motion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	"github.com/viant/motion/logging"
)

// Built-in tracer names resolved by NewFromConfig.
const (
	TracerConsole = "console"
	TracerMetrics = "metrics"
	TracerOtel    = "otel"
)

var namespaceExpr = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Config is a serialisable representation of the runtime configuration. It
// can be populated from YAML, TOML or JSON.
type Config struct {
	Tracers []string       `json:"tracers,omitempty" yaml:"tracers,omitempty" toml:"tracers,omitempty"`
	Logging logging.Config `json:"logging" yaml:"logging" toml:"logging"`
	Tracing TracingConfig  `json:"tracing" yaml:"tracing" toml:"tracing"`
	Metrics MetricsConfig  `json:"metrics" yaml:"metrics" toml:"metrics"`
}

// TracingConfig controls OpenTelemetry tracing.
type TracingConfig struct {
	Enabled        bool   `json:"enabled" yaml:"enabled" toml:"enabled"`
	ServiceName    string `json:"serviceName,omitempty" yaml:"serviceName,omitempty" toml:"serviceName,omitempty"`
	ServiceVersion string `json:"serviceVersion,omitempty" yaml:"serviceVersion,omitempty" toml:"serviceVersion,omitempty"`
	// OutputFile receives stdout exporter output; empty means os.Stdout.
	OutputFile string `json:"outputFile,omitempty" yaml:"outputFile,omitempty" toml:"outputFile,omitempty"`
}

// MetricsConfig controls the Prometheus collector.
type MetricsConfig struct {
	Enabled   bool   `json:"enabled" yaml:"enabled" toml:"enabled"`
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty" toml:"namespace,omitempty"`
}

// DefaultConfig returns a Config populated with default values. Callers may
// modify the returned struct before passing it to NewFromConfig.
func DefaultConfig() *Config {
	return &Config{
		Logging: logging.DefaultConfig(),
		Tracing: TracingConfig{ServiceName: "motion"},
		Metrics: MetricsConfig{Namespace: "motion"},
	}
}

// Validate returns aggregated error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	var errs []error
	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Tracing.Enabled && c.Tracing.ServiceName == "" {
		errs = append(errs, fmt.Errorf("tracing.serviceName is required when tracing is enabled"))
	}
	if c.Metrics.Enabled && !namespaceExpr.MatchString(c.Metrics.Namespace) {
		errs = append(errs, fmt.Errorf("metrics.namespace: invalid namespace %q", c.Metrics.Namespace))
	}
	seen := map[string]bool{}
	for i, name := range c.Tracers {
		switch {
		case name == "":
			errs = append(errs, fmt.Errorf("tracers[%d]: name is empty", i))
		case seen[name]:
			errs = append(errs, fmt.Errorf("tracers[%d]: duplicate tracer %q", i, name))
		}
		seen[name] = true
	}
	return errors.Join(errs...)
}

// LoadConfig reads the configuration from URL, expanding ${env.KEY}
// expressions. The format follows the URL extension: .toml, .json, otherwise
// YAML.
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	ret, err := DecodeConfig(data, path.Ext(URL))
	if err != nil {
		return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
	}
	return ret, nil
}

// DecodeConfig decodes data in the given format (file extension or name) on
// top of DefaultConfig and validates the result.
func DecodeConfig(data []byte, format string) (*Config, error) {
	data = []byte(expandEnv(string(data)))
	ret := DefaultConfig()
	switch strings.TrimPrefix(strings.ToLower(format), ".") {
	case "toml":
		if _, err := toml.Decode(string(data), ret); err != nil {
			return nil, err
		}
	case "json":
		if err := json.NewDecoder(bytes.NewReader(data)).Decode(ret); err != nil {
			return nil, err
		}
	default:
		if err := yaml.Unmarshal(data, ret); err != nil {
			return nil, err
		}
	}
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}
