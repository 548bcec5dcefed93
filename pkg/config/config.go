// Package config loads hyply's runtime configuration from an optional file
// plus environment variables, the way the rest of the corpus layers viper
// over a typed struct.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ErrInvalidWorkers is returned when the configured worker count is negative.
// Zero is accepted and means runtime.NumCPU().
var ErrInvalidWorkers = errors.New("breakdown workers must be positive")

// Default configuration values.
const (
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
	defaultWorkers   = 0 // 0 means "use runtime.NumCPU()"
)

// Config holds all configuration for the hyply CLI and trainer.
type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging"`
	Breakdown BreakdownConfig `mapstructure:"breakdown"`
	Training  TrainingConfig  `mapstructure:"training"`
}

// LoggingConfig controls the slog handler cmd/hyply and cmd/hyply-train install.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// BreakdownConfig controls the parallel tree walker in pkg/breakdown.
type BreakdownConfig struct {
	Workers int      `mapstructure:"workers"`
	Ignore  []string `mapstructure:"ignore"`
}

// TrainingConfig controls the offline trainer in pkg/trainer.
type TrainingConfig struct {
	SamplesDir string `mapstructure:"samples_dir"`
	OutputFile string `mapstructure:"output_file"`
}

// Load reads configuration from configPath (if non-empty) and the HYPLY_*
// environment, falling back to defaults, then validates the result.
func Load(configPath string) (*Config, error) {
	viperCfg := viper.New()
	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("hyply")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("$HOME/.config/hyply")
		viperCfg.AddConfigPath("/etc/hyply")
	}

	viperCfg.SetEnvPrefix("HYPLY")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// HYPLY_THREADS predates breakdown.workers' viper key ("HYPLY_BREAKDOWN_WORKERS"
	// under the prefix/replacer above); bind it explicitly so both names keep
	// working and there is still exactly one source of truth downstream.
	if err := viperCfg.BindEnv("breakdown.workers", "HYPLY_THREADS"); err != nil {
		return nil, fmt.Errorf("bind HYPLY_THREADS: %w", err)
	}

	if err := viperCfg.ReadInConfig(); err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(err, &notFoundErr) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := viperCfg.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("logging.level", defaultLogLevel)
	viperCfg.SetDefault("logging.format", defaultLogFormat)
	viperCfg.SetDefault("breakdown.workers", defaultWorkers)
	viperCfg.SetDefault("breakdown.ignore", []string{})
	viperCfg.SetDefault("training.samples_dir", "samples")
	viperCfg.SetDefault("training.output_file", "pkg/langs/token_probs_generated.go")
}

func validate(cfg *Config) error {
	if cfg.Breakdown.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, cfg.Breakdown.Workers)
	}
	return nil
}
