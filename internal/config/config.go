package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/goccy/go-yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/afero"
)

// EnvPrefix is stripped from environment variables before they are mapped
// onto configuration keys, so FDCHECK_ANALYSIS_CONCURRENCY sets
// analysis.concurrency.
const EnvPrefix = "FDCHECK_"

// DefaultConcurrency is the number of candidate key workers.
const DefaultConcurrency = 4

type Config struct {
	Analysis AnalysisConfig `koanf:"analysis"`
	Log      LogConfig      `koanf:"log"`
	Output   OutputConfig   `koanf:"output"`
	Metrics  MetricsConfig  `koanf:"metrics"`
}

type AnalysisConfig struct {
	// Concurrency bounds the candidate key search worker pool.
	Concurrency int `koanf:"concurrency" validate:"min=1,max=256"`
}

type LogConfig struct {
	Level  string `koanf:"level"  validate:"oneof=debug info warn error disabled"`
	JSON   bool   `koanf:"json"`
	Source bool   `koanf:"source"`
}

type OutputConfig struct {
	Format string `koanf:"format" validate:"oneof=text json yaml"`
}

type MetricsConfig struct {
	Enabled bool `koanf:"enabled"`
}

// Default returns the built in configuration.
func Default() *Config {
	return &Config{
		Analysis: AnalysisConfig{Concurrency: DefaultConcurrency},
		Log:      LogConfig{Level: "info"},
		Output:   OutputConfig{Format: "text"},
	}
}

// rawMap is a koanf.Provider adapter for map[string]any data.
type rawMap map[string]any

func (r rawMap) Read() (map[string]any, error) {
	return r, nil
}

func (r rawMap) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("ReadBytes not implemented")
}

// Load builds the configuration from, in increasing precedence, the
// defaults, the YAML file at path (skipped when path is empty), the
// environment, and overrides keyed by dotted path.
func Load(fs afero.Fs, path string, overrides map[string]any) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		var m map[string]any
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		if err := k.Load(rawMap(m), nil); err != nil {
			return nil, fmt.Errorf("failed to apply config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key string, value string) (string, any) {
			return transformEnvKey(strings.TrimPrefix(key, EnvPrefix)), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	for key, value := range overrides {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to set key %s: %w", key, err)
		}
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &cfg,
			TagName:          "koanf",
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the struct tags of cfg.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration cannot be nil")
	}
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

// transformEnvKey converts environment variable names to koanf paths.
// For example: ANALYSIS_CONCURRENCY -> analysis.concurrency
func transformEnvKey(s string) string {
	s = strings.ToLower(s)
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_'
	})
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}
	// the first part is the section, the rest is the field name
	return parts[0] + "." + strings.Join(parts[1:], "_")
}
