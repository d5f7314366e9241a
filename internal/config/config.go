// Package config resolves console settings from flags, the environment,
// a local .env file, an optional clinic.yaml and built-in defaults, in that
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every key when read from the environment,
// e.g. CLINIC_DATA_DIR.
const EnvPrefix = "CLINIC"

// Config keys.
const (
	KeyDataDir     = "data_dir"
	KeyLogLevel    = "log_level"
	KeyLogFile     = "log_file"
	KeyPrompt      = "prompt"
	KeyTheme       = "theme"
	KeyHistoryFile = "history_file"
	KeyPlain       = "plain"
	KeyTestMode    = "test_mode"
)

// Config holds the resolved settings.
type Config struct {
	DataDir     string `mapstructure:"data_dir"`
	LogLevel    string `mapstructure:"log_level"`
	LogFile     string `mapstructure:"log_file"`
	Prompt      string `mapstructure:"prompt"`
	Theme       string `mapstructure:"theme"`
	HistoryFile string `mapstructure:"history_file"`
	Plain       bool   `mapstructure:"plain"`
	TestMode    bool   `mapstructure:"test_mode"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDataDir, "data")
	v.SetDefault(KeyLogLevel, "")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyPrompt, "clinic> ")
	v.SetDefault(KeyTheme, "default")
	v.SetDefault(KeyHistoryFile, "")
	v.SetDefault(KeyPlain, false)
	v.SetDefault(KeyTestMode, false)
}

// Load resolves the configuration into v, which may already carry bound
// flags. clinic.yaml and .env are looked up in workDir; both are optional.
func Load(v *viper.Viper, workDir string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	yamlPath := filepath.Join(workDir, "clinic.yaml")
	if _, err := os.Stat(yamlPath); err == nil {
		v.SetConfigFile(yamlPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", yamlPath, err)
		}
	}

	dotenv, err := readDotEnv(filepath.Join(workDir, ".env"))
	if err != nil {
		return nil, err
	}
	if len(dotenv) > 0 {
		if err := v.MergeConfigMap(dotenv); err != nil {
			return nil, fmt.Errorf("failed to merge .env: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.HistoryFile == "" {
		cfg.HistoryFile = filepath.Join(cfg.DataDir, ".clinic_history")
	}
	return cfg, nil
}

// readDotEnv parses a .env file and returns its CLINIC_ entries as config
// keys. A missing file yields an empty map.
func readDotEnv(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read .env file %s: %w", path, err)
	}

	envMap, err := godotenv.Unmarshal(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse .env file %s: %w", path, err)
	}

	values := make(map[string]interface{}, len(envMap))
	for key, value := range envMap {
		name, ok := strings.CutPrefix(strings.ToUpper(key), EnvPrefix+"_")
		if !ok || name == "" {
			continue
		}
		values[strings.ToLower(name)] = value
	}
	return values, nil
}
