package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	StrategyQLearning = "qlearning"
	StrategyRandom    = "random"
)

type Config struct {
	Alpha    float64 `mapstructure:"alpha"`
	Gamma    float64 `mapstructure:"gamma"`
	Epsilon  float64 `mapstructure:"epsilon"`
	Episodes int     `mapstructure:"episodes"`
	Seed     uint64  `mapstructure:"seed"`
	Strategy string  `mapstructure:"strategy"`

	LogEvery      int `mapstructure:"log_every"`
	SummaryWindow int `mapstructure:"summary_window"`

	Log LogConfig `mapstructure:"log"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Env    string `mapstructure:"env"`
}

// New returns a viper instance holding the defaults, reading TIMETABLE_* environment variables
// and, if file is not empty, the given config file
func New(file string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("timetable")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("cannot read config file: %w", err)
		}
	}
	return v, nil
}

// Load decodes and validates the configuration held by v
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("cannot decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) Validate() error {
	var errs []error
	if cfg.Alpha <= 0 || cfg.Alpha > 1 {
		errs = append(errs, fmt.Errorf("alpha must be greater than 0 and at most 1: %v", cfg.Alpha))
	}
	if cfg.Gamma < 0 || cfg.Gamma > 1 {
		errs = append(errs, fmt.Errorf("gamma must be between 0 and 1: %v", cfg.Gamma))
	}
	if cfg.Epsilon < 0 || cfg.Epsilon > 1 {
		errs = append(errs, fmt.Errorf("epsilon must be between 0 and 1: %v", cfg.Epsilon))
	}
	if cfg.Episodes < 0 {
		errs = append(errs, fmt.Errorf("episodes must not be negative: %v", cfg.Episodes))
	}
	if cfg.Strategy != StrategyQLearning && cfg.Strategy != StrategyRandom {
		errs = append(errs, fmt.Errorf("%v is not a valid strategy", cfg.Strategy))
	}
	return errors.Join(errs...)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("alpha", 0.1)
	v.SetDefault("gamma", 0.9)
	v.SetDefault("epsilon", 0.1)
	v.SetDefault("episodes", 100000)
	v.SetDefault("seed", 1)
	v.SetDefault("strategy", StrategyQLearning)

	v.SetDefault("log_every", 10000)
	v.SetDefault("summary_window", 1000)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.env", "development")
}
