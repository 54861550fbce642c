package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. CYBR_LOG_LEVEL.
const EnvPrefix = "CYBR"

// Config holds the CLI settings. Every field has a default, so running
// without a config file is fine.
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Progress ProgressConfig `mapstructure:"progress"`
	Demo     DemoConfig     `mapstructure:"demo"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // text, json
}

// ProgressConfig drives the simulated progress indicator.
type ProgressConfig struct {
	Interval time.Duration `mapstructure:"interval"` // time between advances
	MaxStep  float64       `mapstructure:"max_step"` // largest single advance, in units
	Plain    bool          `mapstructure:"plain"`    // one line per progress, no animation
}

// DemoConfig feeds the arguments of the example workflow.
type DemoConfig struct {
	Pause     time.Duration `mapstructure:"pause"`
	Workdir   string        `mapstructure:"workdir"`
	InputFile string        `mapstructure:"input_file"`
	Email     string        `mapstructure:"email"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("progress.interval", 100*time.Millisecond)
	v.SetDefault("progress.max_step", 5.0)
	v.SetDefault("progress.plain", false)
	v.SetDefault("demo.pause", time.Second)
	v.SetDefault("demo.workdir", "/tmp/example")
	v.SetDefault("demo.input_file", "data.csv")
	v.SetDefault("demo.email", "user@example.com")
}

// Load reads configuration from filename, or searches for cybrconsole.yaml
// in the working directory and $HOME when filename is empty. A missing
// file is not an error in the search case.
func Load(filename string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if filename != "" {
		v.SetConfigFile(filename)
	} else {
		v.SetConfigName("cybrconsole")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if filename != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the progress display cannot work with.
func (c *Config) Validate() error {
	if c.Progress.Interval <= 0 {
		return fmt.Errorf("config: progress.interval must be positive, got %s", c.Progress.Interval)
	}
	if c.Progress.MaxStep <= 0 {
		return fmt.Errorf("config: progress.max_step must be positive, got %g", c.Progress.MaxStep)
	}
	if c.Demo.Pause < 0 {
		return fmt.Errorf("config: demo.pause must not be negative, got %s", c.Demo.Pause)
	}
	return nil
}
