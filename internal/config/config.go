package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/codegen-labs/codegen/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys understood by the CLI.
const (
	KeyEndpoint = "endpoint"
	KeyTimeout  = "timeout"
	KeyNoColor  = "no_color"
)

// Keys lists every supported key, in display order.
var Keys = []string{KeyEndpoint, KeyTimeout, KeyNoColor}

// Dir returns the path to the config directory (~/.codegen/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.codegen/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyEndpoint, branding.Endpoint())
	viper.SetDefault(KeyTimeout, time.Duration(0))
	viper.SetDefault(KeyNoColor, false)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Endpoint returns the generation proxy URL.
func Endpoint() string {
	return viper.GetString(KeyEndpoint)
}

// Timeout returns the HTTP timeout for generation requests. Zero means none.
func Timeout() time.Duration {
	return viper.GetDuration(KeyTimeout)
}

// NoColor reports whether console styling is disabled.
func NoColor() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return true
	}
	return viper.GetBool(KeyNoColor)
}

// IsKnown reports whether key is a supported config key.
func IsKnown(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Set writes a config key-value pair and saves the config file. Only keys
// already in the file plus key are written; defaults, environment values and
// flag overrides never reach disk.
func Set(key, value string) error {
	if !IsKnown(key) {
		return fmt.Errorf("unknown config key %q (known: %v)", key, Keys)
	}
	if key == KeyTimeout {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid timeout %q: %w", value, err)
		}
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()

	file := viper.New()
	file.SetConfigFile(configFile)
	file.SetConfigType(fileType)
	if err := file.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading config file %s: %w", configFile, err)
	}
	file.Set(key, value)

	if err := file.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	viper.Set(key, value)
	return nil
}
