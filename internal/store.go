package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const dirName = ".ngs"

// candidateNames are tried in order by LoadDefault.
var candidateNames = []string{"config.yaml", "config.yml", "config.toml", "config.json"}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Dir returns ~/.ngs.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find home directory: %w", err)
	}
	return filepath.Join(homeDir, dirName), nil
}

// DefaultLogPath returns ~/.ngs/ngs.log.
func DefaultLogPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "ngs.log"), nil
}

// LoadDefault reads the first config file found in ~/.ngs, or returns
// defaults if there is none. The second return value is the path used.
func LoadDefault() (Config, string, error) {
	dir, err := Dir()
	if err != nil {
		return Config{}, "", err
	}
	for _, name := range candidateNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			cfg, err := Load(path)
			return cfg, path, err
		}
	}
	cfg := Default()
	applyEnv(&cfg)
	return cfg, "", cfg.Validate()
}

// Load reads config from path. The format follows the file extension
// (.yaml/.yml, .toml or .json). ${VAR} references are expanded first and
// unset keys keep their defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := Parse(filepath.Ext(path), data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes raw config bytes in the format named by ext.
func Parse(ext string, data []byte) (Config, error) {
	cfg := Default()
	expanded := expandEnvVars(string(data))

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing yaml: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(expanded, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing toml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal([]byte(expanded), &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported config format %q", ext)
	}

	if err := parseDurations(&cfg); err != nil {
		return Config{}, err
	}
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Marshal renders cfg as YAML for display.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// expandEnvVars replaces ${VAR} with environment variable values.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(envVarPattern.FindStringSubmatch(match)[1])
	})
}

func parseDurations(cfg *Config) error {
	if cfg.Catalog.FetchTimeoutRaw == "" {
		return nil
	}
	d, err := time.ParseDuration(cfg.Catalog.FetchTimeoutRaw)
	if err != nil {
		return fmt.Errorf("parsing fetch_timeout %q: %w", cfg.Catalog.FetchTimeoutRaw, err)
	}
	cfg.Catalog.FetchTimeout = d
	return nil
}

// applyEnv lets the environment override the catalog location and log level.
func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("NEXTGEN_CATALOG_URL")); v != "" {
		cfg.Catalog.Location = v
	}
	if v := strings.TrimSpace(os.Getenv("NEXTGEN_LOG_LEVEL")); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
}
