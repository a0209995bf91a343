package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/buildpin-labs/buildpin/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys understood by Load and Current.
const (
	KeyCompileSDK   = "compile_sdk"
	KeyOutputOffset = "output_offset"
	KeyAggregator   = "aggregator"
	KeyExtension    = "extension"
)

// Built-in defaults, matching the layout of a Flutter-style android/ tree.
const (
	DefaultCompileSDK   = 36
	DefaultOutputOffset = "../../build"
	DefaultAggregator   = "app"
	DefaultExtension    = "android"
)

// Keys lists every recognised setting key.
var Keys = []string{KeyCompileSDK, KeyOutputOffset, KeyAggregator, KeyExtension}

// Settings is the resolved override configuration for one pass.
type Settings struct {
	CompileSDK   int
	OutputOffset string
	Aggregator   string
	Extension    string
}

// Dir returns the path to the config directory (~/.buildpin/).
// BUILDPIN_HOME takes precedence when set.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.buildpin/config.yaml).
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

// Load (re)initializes Viper to read from the config file and environment.
func Load() {
	viper.Reset()
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyCompileSDK, DefaultCompileSDK)
	viper.SetDefault(KeyOutputOffset, DefaultOutputOffset)
	viper.SetDefault(KeyAggregator, DefaultAggregator)
	viper.SetDefault(KeyExtension, DefaultExtension)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(Keys, ", "))
	}
	if err := checkValue(key, value); err != nil {
		return err
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// checkValue rejects values that Settings.Validate would refuse later, so a
// bad value never reaches the config file.
func checkValue(key, value string) error {
	switch key {
	case KeyCompileSDK:
		if n, err := strconv.Atoi(value); err != nil || n < 1 {
			return fmt.Errorf("%s must be a positive integer, got %q", key, value)
		}
	case KeyOutputOffset:
		if filepath.IsAbs(value) {
			return fmt.Errorf("%s must be relative to the root build directory, got %q", key, value)
		}
	case KeyExtension:
		if value == "" {
			return fmt.Errorf("%s must not be empty", key)
		}
	}
	return nil
}

// IsKnownKey reports whether key is one of Keys.
func IsKnownKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Current returns the settings resolved from defaults, the config file and
// the environment. Call Load first.
func Current() (Settings, error) {
	s := Settings{
		CompileSDK:   viper.GetInt(KeyCompileSDK),
		OutputOffset: viper.GetString(KeyOutputOffset),
		Aggregator:   viper.GetString(KeyAggregator),
		Extension:    viper.GetString(KeyExtension),
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks that every setting holds a usable value.
func (s Settings) Validate() error {
	if s.CompileSDK < 1 {
		return fmt.Errorf("%s must be a positive API level, got %d", KeyCompileSDK, s.CompileSDK)
	}
	if s.Extension == "" {
		return fmt.Errorf("%s must not be empty", KeyExtension)
	}
	if filepath.IsAbs(s.OutputOffset) {
		return fmt.Errorf("%s must be relative to the root build directory, got %q", KeyOutputOffset, s.OutputOffset)
	}
	return nil
}
