package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Defaults applied when neither flags, env, nor config file set a value.
const (
	DefaultAPIURL       = "http://localhost:8080"
	DefaultOutputFormat = "table"
	DefaultTimeout      = 30 * time.Second
)

// Config holds the CLI configuration resolved from flags, environment and
// the config file.
type Config struct {
	APIURL       string        `mapstructure:"api_url"`
	UserID       string        `mapstructure:"user_id"`
	OutputFormat string        `mapstructure:"output_format"`
	Verbose      bool          `mapstructure:"verbose"`
	Timeout      time.Duration `mapstructure:"timeout"`
	SessionFile  string        `mapstructure:"session_file"`
}

// Init wires viper to the config file and environment. Missing config files
// are fine; explicit values still apply.
func Init() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".agrocraft")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(dir)
	viper.SetEnvPrefix("AGROCRAFT")
	viper.AutomaticEnv()

	viper.SetDefault("api_url", DefaultAPIURL)
	viper.SetDefault("output_format", DefaultOutputFormat)
	viper.SetDefault("timeout", DefaultTimeout)
	viper.SetDefault("session_file", filepath.Join(dir, "session.json"))

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}

// Get unmarshals the current viper state into a Config.
func Get() (*Config, error) {
	cfg := &Config{}
	hook := viper.DecodeHook(mapstructure.StringToTimeDurationHookFunc())
	if err := viper.Unmarshal(cfg, hook); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// Prompt styling shared by the CLI commands.
var (
	BoldGreen  = color.New(color.FgGreen, color.Bold).SprintfFunc()
	BoldRed    = color.New(color.FgRed, color.Bold).SprintfFunc()
	BoldYellow = color.New(color.FgYellow, color.Bold).SprintfFunc()
)
