package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	app "github.com/zjrosen/eventregistry/internal/application/eventregistry"
	"github.com/zjrosen/eventregistry/internal/cachemanager"
	"github.com/zjrosen/eventregistry/internal/config"
	domain "github.com/zjrosen/eventregistry/internal/domain/eventregistry"
	"github.com/zjrosen/eventregistry/internal/infrastructure/sqlite"
	"github.com/zjrosen/eventregistry/internal/log"
	"github.com/zjrosen/eventregistry/internal/tracing"
)

// localConfigPath is the project config, preferred over the user config.
const localConfigPath = ".eventreg/config.yaml"

var (
	version   = "dev"
	cfgFile   string
	cfg       config.Config
	debugFlag bool

	// configErr holds a config read failure until setup can report it.
	configErr error
)

var rootCmd = &cobra.Command{
	Use:   "eventreg",
	Short: "Deploy and query event definitions",
	Long: `eventreg deploys bundles of resources, registers the event definitions they
contain, and answers queries about deployed definitions.

Resources whose names end in a configured suffix (default: .event) are parsed
as event definitions in JSON or YAML. Every other resource is stored with the
deployment but never parsed.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .eventreg/config.yaml, then ~/.config/eventreg/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"write a debug log (also EVENTREG_DEBUG)")
	rootCmd.PersistentFlags().String("db", "", "path to the registry database")

	_ = viper.BindPFlag("db_path", rootCmd.PersistentFlags().Lookup("db"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("db_path", defaults.DBPath)
	viper.SetDefault("registry.resource_suffixes", defaults.Registry.ResourceSuffixes)
	viper.SetDefault("registry.known_payload_types", defaults.Registry.KnownPayloadTypes)
	viper.SetDefault("registry.duplicate_filtering", defaults.Registry.DuplicateFiltering)
	viper.SetDefault("registry.default_tenant_id", defaults.Registry.DefaultTenantID)
	viper.SetDefault("cache.enabled", defaults.Cache.Enabled)
	viper.SetDefault("cache.ttl", defaults.Cache.TTL)
	viper.SetDefault("cache.cleanup_interval", defaults.Cache.CleanupInterval)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.file_path", defaults.Tracing.FilePath)
	viper.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)
	viper.SetDefault("log.path", defaults.Log.Path)
	viper.SetDefault("log.level", defaults.Log.Level)
	viper.SetDefault("watch.debounce", defaults.Watch.Debounce)

	viper.SetEnvPrefix("EVENTREG")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .eventreg/config.yaml (current directory)
		// 2. ~/.config/eventreg/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			viper.SetConfigFile(localConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "eventreg"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	cfg = config.Config{}
	configErr = readConfig()
}

// readConfig reads the selected config file into cfg. A missing config file is
// fine; `eventreg config:init` writes one. A file that exists but cannot be
// parsed is an error.
func readConfig() error {
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("reading config %s: %w", viper.ConfigFileUsed(), err)
		}
	}
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	return nil
}

// setup initializes logging and validates the loaded configuration.
func setup(cmd *cobra.Command, _ []string) error {
	if configErr != nil {
		return configErr
	}

	if debugFlag || os.Getenv("EVENTREG_DEBUG") != "" {
		logPath := cfg.Log.Path
		if env := os.Getenv("EVENTREG_LOG"); env != "" {
			logPath = env
		}
		if _, err := log.Init(logPath); err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}
		log.SetMinLevel(log.ParseLevel(cfg.Log.Level))
		log.Info(log.CatConfig, "eventreg starting", "command", cmd.Name(), "config", viper.ConfigFileUsed())
	} else {
		log.SetEnabled(false)
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// registry bundles the service with everything that must be closed after use.
type registry struct {
	service    *app.RegistryService
	classifier *domain.SuffixClassifier
	tracer     *tracing.Provider
	db         *sqlite.DB
}

// openRegistry wires the registry service from cfg.
func openRegistry() (*registry, error) {
	classifier, err := domain.NewSuffixClassifier(cfg.Registry.ResourceSuffixes...)
	if err != nil {
		return nil, err
	}

	tracingCfg := tracing.Config{
		Enabled:      cfg.Tracing.Enabled,
		Exporter:     cfg.Tracing.Exporter,
		FilePath:     cfg.Tracing.FilePath,
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		SampleRate:   cfg.Tracing.SampleRate,
	}
	if tracingCfg.Exporter == tracing.ExporterFile && tracingCfg.FilePath == "" {
		tracingCfg.FilePath = config.DefaultTracesFilePath()
	}
	provider, err := tracing.NewProvider(tracingCfg)
	if err != nil {
		return nil, fmt.Errorf("creating tracing provider: %w", err)
	}

	db, err := sqlite.NewDB(cfg.DBPath)
	if err != nil {
		_ = provider.Shutdown(context.Background())
		return nil, fmt.Errorf("opening registry database: %w", err)
	}

	svcCfg := app.ServiceConfig{
		Deployments:        db.DeploymentRepository(),
		Definitions:        db.DefinitionRepository(),
		Classifier:         classifier,
		Parser:             app.NewYAMLDefinitionParser(),
		Settings:           domain.Settings{KnownPayloadTypes: cfg.Registry.KnownPayloadTypes},
		CacheTTL:           cfg.Cache.TTL,
		DuplicateFiltering: cfg.Registry.DuplicateFiltering,
		DefaultTenantID:    cfg.Registry.DefaultTenantID,
		Tracer:             provider.Tracer(),
	}
	if cfg.Cache.Enabled {
		svcCfg.Cache = cachemanager.NewInMemoryCacheManager[string, *domain.EventDefinition](
			"latest-definitions", cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	}

	service, err := app.NewRegistryService(svcCfg)
	if err != nil {
		_ = db.Close()
		_ = provider.Shutdown(context.Background())
		return nil, err
	}

	return &registry{service: service, classifier: classifier, tracer: provider, db: db}, nil
}

// Close releases the service, the database and flushes pending spans.
func (r *registry) Close() {
	r.service.Close()
	if err := r.db.Close(); err != nil {
		log.ErrorErr(log.CatDB, "failed to close database", err)
	}
	if err := r.tracer.Shutdown(context.Background()); err != nil {
		log.ErrorErr(log.CatConfig, "failed to shut down tracing", err)
	}
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
