package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// LoaderConfig controls config file resolution.
type LoaderConfig struct {
	// ConfigFile is an explicit config file path. When empty, standard
	// locations are searched and missing config is not an error.
	ConfigFile string
	// EnvFile is an explicit .env file path. When empty, ./.env is loaded
	// if it exists.
	EnvFile string
	// FileSystem defaults to RealFileSystem.
	FileSystem FileSystem
}

// configSearchPaths are the standard fixmap.yml locations, nearest first.
var configSearchPaths = []string{
	"./fixmap.yml",
	"./config/fixmap.yml",
	"../fixmap.yml",
}

// Load reads suite configuration from the environment and a fixmap.yml
// file. Env values (FIXMAP_ prefix) override file values. When no config
// file is found, defaults apply.
func Load(opts LoaderConfig) (*Config, error) {
	fs := opts.FileSystem
	if fs == nil {
		fs = &RealFileSystem{}
	}

	if err := loadEnvFile(fs, opts.EnvFile); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix("FIXMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	autoBindEnvVars(v)

	configFile := opts.ConfigFile
	if configFile == "" {
		configFile = findConfigFile(fs)
	} else if !fs.Exists(configFile) {
		return nil, fmt.Errorf("config file not found: %s", configFile)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadEnvFile(fs FileSystem, envFile string) error {
	if envFile != "" {
		if !fs.Exists(envFile) {
			return fmt.Errorf("env file not found: %s", envFile)
		}
		return fs.LoadEnv(envFile)
	}
	if fs.Exists(".env") {
		return fs.LoadEnv(".env")
	}
	return nil
}

func findConfigFile(fs FileSystem) string {
	for _, path := range configSearchPaths {
		if fs.Exists(path) {
			return path
		}
	}
	return ""
}

// autoBindEnvVars force-sets every FIXMAP_ environment value into Viper.
// AutomaticEnv alone does not surface env-only keys to Unmarshal, so each
// value is Set under every plausible nested key variant.
func autoBindEnvVars(v *viper.Viper) {
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 || !strings.HasPrefix(pair[0], "FIXMAP_") {
			continue
		}
		for _, variant := range envKeyVariants(strings.TrimPrefix(pair[0], "FIXMAP_")) {
			v.Set(variant, pair[1])
		}
	}
}

// envKeyVariants converts UPPER_CASE_WITH_UNDERSCORES to the nested key
// formats the variable may address.
//
//	LOGGING_LEVEL    -> [logging_level, logging.level]
//	LOGGING_NO_COLOR -> [logging_no_color, logging.no.color, logging.no_color, ...]
func envKeyVariants(envKey string) []string {
	lowerKey := strings.ToLower(envKey)
	parts := strings.Split(lowerKey, "_")
	if len(parts) <= 1 {
		return []string{lowerKey}
	}

	variants := []string{
		lowerKey,
		strings.ReplaceAll(lowerKey, "_", "."),
	}
	for i := 1; i < len(parts); i++ {
		variants = append(variants, strings.Join(parts[:i], ".")+"."+strings.Join(parts[i:], "_"))
	}
	return removeDuplicates(variants)
}

func removeDuplicates(items []string) []string {
	seen := make(map[string]bool, len(items))
	result := make([]string, 0, len(items))
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}
	return result
}
