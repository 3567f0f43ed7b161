package motion

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/motion/logging"
	"github.com/viant/motion/runtime/tracer"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "motion", cfg.Tracing.ServiceName)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Nil(t, (*Config)(nil).Validate())
}

func TestConfig_Validate(t *testing.T) {
	var testCases = []struct {
		description string
		mutate      func(cfg *Config)
		expect      []string
	}{
		{
			description: "invalid level",
			mutate:      func(cfg *Config) { cfg.Logging.Level = "loud" },
			expect:      []string{"logging.level"},
		},
		{
			description: "invalid format",
			mutate:      func(cfg *Config) { cfg.Logging.Format = "xml" },
			expect:      []string{`logging.format: unsupported format "xml"`},
		},
		{
			description: "tracing without service name",
			mutate: func(cfg *Config) {
				cfg.Tracing.Enabled = true
				cfg.Tracing.ServiceName = ""
			},
			expect: []string{"tracing.serviceName"},
		},
		{
			description: "invalid namespace",
			mutate: func(cfg *Config) {
				cfg.Metrics.Enabled = true
				cfg.Metrics.Namespace = "my-app"
			},
			expect: []string{`metrics.namespace: invalid namespace "my-app"`},
		},
		{
			description: "tracer names",
			mutate:      func(cfg *Config) { cfg.Tracers = []string{"console", "", "console"} },
			expect:      []string{"tracers[1]: name is empty", `tracers[2]: duplicate tracer "console"`},
		},
		{
			description: "aggregated",
			mutate: func(cfg *Config) {
				cfg.Logging.Format = "xml"
				cfg.Tracers = []string{""}
			},
			expect: []string{"logging.format", "tracers[0]"},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			cfg := DefaultConfig()
			testCase.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			for _, fragment := range testCase.expect {
				assert.Contains(t, err.Error(), fragment)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("MOTION_NAMESPACE", "demo")
	expect := &Config{
		Tracers: []string{"console"},
		Logging: logging.Config{Level: "debug", Format: "json"},
		Tracing: TracingConfig{ServiceName: "motion"},
		Metrics: MetricsConfig{Enabled: true, Namespace: "demo"},
	}

	var testCases = []struct {
		description string
		file        string
		content     string
	}{
		{
			description: "yaml",
			file:        "motion.yaml",
			content: `tracers: [console]
logging:
  level: debug
  format: json
metrics:
  enabled: true
  namespace: ${env.MOTION_NAMESPACE}
`,
		},
		{
			description: "toml",
			file:        "motion.toml",
			content: `tracers = ["console"]

[logging]
level = "debug"
format = "json"

[metrics]
enabled = true
namespace = "${env.MOTION_NAMESPACE}"
`,
		},
		{
			description: "json",
			file:        "motion.json",
			content:     `{"tracers":["console"],"logging":{"level":"debug","format":"json"},"metrics":{"enabled":true,"namespace":"${env.MOTION_NAMESPACE}"}}`,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			location := filepath.Join(t.TempDir(), testCase.file)
			require.NoError(t, os.WriteFile(location, []byte(testCase.content), 0o644))
			cfg, err := LoadConfig(context.Background(), location)
			require.NoError(t, err)
			assert.Equal(t, expect, cfg)
		})
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadConfig(context.Background(), filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("logging:\n  format: xml\n"), 0o644))
	_, err = LoadConfig(context.Background(), invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.format")
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("MOTION_A", "alpha")
	var testCases = []struct {
		input  string
		expect string
	}{
		{input: "plain", expect: "plain"},
		{input: "${env.MOTION_A}", expect: "alpha"},
		{input: "x-${env.MOTION_A}-${env.MOTION_A}", expect: "x-alpha-alpha"},
		{input: "${env.MOTION_UNSET_KEY}", expect: ""},
		{input: "${env.MOTION_A", expect: "${env.MOTION_A"},
		{input: "${env.bad-key}", expect: "${env.bad-key}"},
		{input: "${env.${env.MOTION_A}}", expect: "${env.alpha}"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, expandEnv(testCase.input), testCase.input)
	}
}

func TestNewFromConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		runtime, err := NewFromConfig(nil)
		require.NoError(t, err)
		assert.Empty(t, runtime.Tracers())
		assert.Nil(t, runtime.metrics)
	})

	t.Run("console tracer", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Tracers = []string{TracerConsole}
		runtime, err := NewFromConfig(cfg, WithLogger(logging.Discard()))
		require.NoError(t, err)
		require.Len(t, runtime.Tracers(), 1)
		assert.IsType(t, &logging.Tracer{}, runtime.Tracers()[0])
	})

	t.Run("registered tracer", func(t *testing.T) {
		require.NoError(t, tracer.Register(&recorder{}))

		cfg := DefaultConfig()
		cfg.Tracers = []string{"motion.recorder"}
		runtime, err := NewFromConfig(cfg, WithLogger(logging.Discard()))
		require.NoError(t, err)
		require.Len(t, runtime.Tracers(), 1)
		rec, ok := runtime.Tracers()[0].(*recorder)
		require.True(t, ok)
		runtime.AddPlan(&fadePlan{id: "P1"}, "v")
		assert.Len(t, rec.events, 2)
	})

	t.Run("unknown tracer", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Tracers = []string{"missing"}
		_, err := NewFromConfig(cfg)
		require.Error(t, err)
		assert.True(t, errors.Is(err, tracer.ErrUnknownTracer))
	})

	t.Run("invalid config", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Logging.Level = "loud"
		_, err := NewFromConfig(cfg)
		assert.Error(t, err)
	})
}
