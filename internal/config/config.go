// Package config provides configuration types and defaults for eventreg.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/zjrosen/eventregistry/internal/log"
)

// Config holds all configuration options for eventreg.
type Config struct {
	DBPath   string         `mapstructure:"db_path"`
	Registry RegistryConfig `mapstructure:"registry"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Tracing  TracingConfig  `mapstructure:"tracing"`
	Log      LogConfig      `mapstructure:"log"`
	Watch    WatchConfig    `mapstructure:"watch"`
}

// RegistryConfig controls how deployments are classified, parsed and versioned.
type RegistryConfig struct {
	// ResourceSuffixes selects which resource names are event definitions.
	ResourceSuffixes []string `mapstructure:"resource_suffixes" yaml:"resource_suffixes"`

	// KnownPayloadTypes are accepted without a parse warning.
	KnownPayloadTypes []string `mapstructure:"known_payload_types" yaml:"known_payload_types,omitempty"`

	// DuplicateFiltering skips deployments identical to the latest one of the same name.
	DuplicateFiltering bool `mapstructure:"duplicate_filtering" yaml:"duplicate_filtering"`

	// DefaultTenantID is used when a deployment names no tenant.
	DefaultTenantID string `mapstructure:"default_tenant_id" yaml:"default_tenant_id,omitempty"`
}

// CacheConfig configures the latest-definition cache.
type CacheConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// TracingConfig holds distributed tracing configuration.
type TracingConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	Exporter     string  `mapstructure:"exporter"`      // "none", "file", "stdout", "otlp"
	FilePath     string  `mapstructure:"file_path"`     // required for the file exporter
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"` // required for the otlp exporter
	SampleRate   float64 `mapstructure:"sample_rate"`
}

// LogConfig configures the debug log.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// WatchConfig configures `deploy --watch`.
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// DefaultDBPath returns ~/.config/eventreg/registry.db, or a relative path if
// the home directory is unavailable.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".eventreg", "registry.db")
	}
	return filepath.Join(home, ".config", "eventreg", "registry.db")
}

// DefaultTracesFilePath returns ~/.config/eventreg/traces/traces.jsonl or empty
// string if home dir unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "eventreg", "traces", "traces.jsonl")
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		DBPath: DefaultDBPath(),
		Registry: RegistryConfig{
			ResourceSuffixes:   []string{".event"},
			KnownPayloadTypes:  []string{"string", "integer", "long", "double", "boolean", "json"},
			DuplicateFiltering: true,
		},
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             10 * time.Minute,
			CleanupInterval: 30 * time.Minute,
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     "", // Derived from config dir at runtime
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
		Log: LogConfig{
			Path:  "debug.log",
			Level: "debug",
		},
		Watch: WatchConfig{
			Debounce: 500 * time.Millisecond,
		},
	}
}

// Validate checks the whole configuration.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.DBPath) == "" {
		return fmt.Errorf("db_path is required")
	}
	if err := ValidateRegistry(cfg.Registry); err != nil {
		return err
	}
	if err := ValidateCache(cfg.Cache); err != nil {
		return err
	}
	if err := ValidateTracing(cfg.Tracing); err != nil {
		return err
	}
	if cfg.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative, got %s", cfg.Watch.Debounce)
	}
	return nil
}

// ValidateRegistry checks registry configuration for errors.
func ValidateRegistry(reg RegistryConfig) error {
	if len(reg.ResourceSuffixes) == 0 {
		return fmt.Errorf("registry.resource_suffixes must contain at least one suffix")
	}
	for i, s := range reg.ResourceSuffixes {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("registry.resource_suffixes[%d] must not be empty", i)
		}
	}
	for i, t := range reg.KnownPayloadTypes {
		if strings.TrimSpace(t) == "" {
			return fmt.Errorf("registry.known_payload_types[%d] must not be empty", i)
		}
	}
	return nil
}

// ValidateCache checks cache configuration for errors.
func ValidateCache(cache CacheConfig) error {
	if !cache.Enabled {
		return nil
	}
	if cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive when the cache is enabled, got %s", cache.TTL)
	}
	if cache.CleanupInterval < 0 {
		return fmt.Errorf("cache.cleanup_interval must not be negative, got %s", cache.CleanupInterval)
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
func ValidateTracing(tracing TracingConfig) error {
	if tracing.SampleRate < 0 || tracing.SampleRate > 1 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tracing.SampleRate)
	}

	if tracing.Exporter != "" && !slices.Contains([]string{"none", "file", "stdout", "otlp"}, tracing.Exporter) {
		return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tracing.Exporter)
	}

	if !tracing.Enabled {
		return nil
	}
	if tracing.Exporter == "otlp" && tracing.OTLPEndpoint == "" {
		return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# eventreg configuration

# SQLite database holding deployments and event definitions
# db_path: ~/.config/eventreg/registry.db

registry:
  # Resource name suffixes treated as event definitions (case-sensitive)
  resource_suffixes:
    - .event
  # Payload types accepted without a parse warning
  known_payload_types: [string, integer, long, double, boolean, json]
  # Skip a deployment whose resources equal the latest deployment with the same name
  duplicate_filtering: true
  # Tenant used when a deployment names none (default: no tenant)
  # default_tenant_id: acme

# Latest-definition cache
cache:
  enabled: true
  ttl: 10m
  cleanup_interval: 30m

# Debug log (written when --debug or EVENTREG_DEBUG is set)
log:
  path: debug.log
  level: debug            # debug, info, warn, error

# deploy --watch
watch:
  debounce: 500ms

# Distributed tracing
# tracing:
#   enabled: false                 # default: false
#   exporter: file                 # none, file, stdout, otlp (default: file)
#   file_path: ~/.config/eventreg/traces/traces.jsonl
#   otlp_endpoint: localhost:4317  # for the otlp exporter
#   sample_rate: 1.0               # 0.0-1.0
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
