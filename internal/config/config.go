package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	Region   string `mapstructure:"region"`
	Profile  string `mapstructure:"profile"`
	DataDir  string `mapstructure:"data_dir"`
	Language string `mapstructure:"language"`
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
	// OutputDir is where documents are saved: a local directory or an
	// s3://bucket/prefix destination.
	OutputDir string `mapstructure:"output_dir"`
}

// Load reads configuration from <data dir>/config.yaml and the environment.
// Env var overrides use prefix EMD_.
func Load() (Config, error) {
	v := viper.New()

	dataDir := defaultDataDir()
	if env := os.Getenv("EMD_DATA_DIR"); env != "" {
		dataDir = env
	}

	v.SetDefault("region", GetDefaultRegion())
	v.SetDefault("profile", "")
	v.SetDefault("data_dir", dataDir)
	v.SetDefault("language", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("output_dir", ".")

	v.SetConfigType("yaml")
	v.AddConfigPath(dataDir)
	v.SetConfigName("config")

	v.SetEnvPrefix("EMD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.LogFile == "" {
		c.LogFile = filepath.Join(c.DataDir, "emd.log")
	}
	return c, nil
}

// GetDefaultRegion returns the default AWS region
func GetDefaultRegion() string {
	if region, ok := os.LookupEnv("AWS_REGION"); ok && region != "" {
		return region
	}
	if region, ok := os.LookupEnv("AWS_DEFAULT_REGION"); ok && region != "" {
		return region
	}
	return Regions[0].Code
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".emd"
	}
	return filepath.Join(home, ".emd")
}
