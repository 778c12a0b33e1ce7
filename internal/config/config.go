package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/dshills/ghgists/internal/github"
	"github.com/dshills/ghgists/internal/restclient"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "GHGISTS"

// Config represents the ghgists configuration.
type Config struct {
	BaseURL        string   `yaml:"baseUrl" json:"baseUrl"`
	UserAgent      string   `yaml:"userAgent" json:"userAgent"`
	Accept         string   `yaml:"accept" json:"accept"`
	Tags           []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	TimeoutSeconds int      `yaml:"timeoutSeconds" json:"timeoutSeconds"`
	Debug          bool     `yaml:"debug" json:"debug"`
	Format         string   `yaml:"format" json:"format"`
	LogLevel       string   `yaml:"logLevel" json:"logLevel"`
}

// envConfig mirrors Config for envconfig. Debug is a pointer so an unset
// variable can be told apart from "false".
type envConfig struct {
	BaseURL        string   `envconfig:"BASE_URL"`
	UserAgent      string   `envconfig:"USER_AGENT"`
	Accept         string   `envconfig:"ACCEPT"`
	Tags           []string `envconfig:"TAGS"`
	TimeoutSeconds int      `envconfig:"TIMEOUT_SECONDS"`
	Debug          *bool    `envconfig:"DEBUG"`
	Format         string   `envconfig:"FORMAT"`
	LogLevel       string   `envconfig:"LOG_LEVEL"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		BaseURL:        github.DefaultBaseURL,
		UserAgent:      github.DefaultUserAgent,
		Accept:         github.DefaultAccept,
		TimeoutSeconds: int(github.DefaultTimeout / time.Second),
		Format:         "text",
		LogLevel:       "info",
	}
}

// ConfigDir returns the platform-appropriate config directory for ghgists.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ghgists"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "ghgists"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "ghgists"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "ghgists"), nil
	default:
		return filepath.Join(home, ".config", "ghgists"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil error if file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadDotEnv loads variables from a .env file into the process environment
// without overriding variables that are already set. A missing file is not
// an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	if err := mergeEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := mergeOverrides(&cfg, overrides); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ClientConfig converts cfg into the partial client configuration accepted
// by github.New. Empty fields stay empty so the client defaults apply.
func ClientConfig(cfg Config) restclient.Config {
	out := restclient.Config{
		BaseURL: cfg.BaseURL,
		Tags:    append([]string(nil), cfg.Tags...),
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		Debug:   cfg.Debug,
	}
	headers := make(map[string]string)
	if cfg.Accept != "" {
		headers["Accept"] = cfg.Accept
	}
	if cfg.UserAgent != "" {
		headers["User-Agent"] = cfg.UserAgent
	}
	if len(headers) > 0 {
		out.Headers = headers
	}
	return out
}

func mergeFile(dst *Config, src Config) {
	if src.BaseURL != "" {
		dst.BaseURL = src.BaseURL
	}
	if src.UserAgent != "" {
		dst.UserAgent = src.UserAgent
	}
	if src.Accept != "" {
		dst.Accept = src.Accept
	}
	if len(src.Tags) > 0 {
		dst.Tags = src.Tags
	}
	if src.TimeoutSeconds > 0 {
		dst.TimeoutSeconds = src.TimeoutSeconds
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	dst.Debug = src.Debug || dst.Debug
}

func mergeEnv(cfg *Config) error {
	var env envConfig
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}
	if env.BaseURL != "" {
		cfg.BaseURL = env.BaseURL
	}
	if env.UserAgent != "" {
		cfg.UserAgent = env.UserAgent
	}
	if env.Accept != "" {
		cfg.Accept = env.Accept
	}
	if len(env.Tags) > 0 {
		cfg.Tags = env.Tags
	}
	if env.TimeoutSeconds > 0 {
		cfg.TimeoutSeconds = env.TimeoutSeconds
	}
	if env.Debug != nil {
		cfg.Debug = *env.Debug
	}
	if env.Format != "" {
		cfg.Format = env.Format
	}
	if env.LogLevel != "" {
		cfg.LogLevel = env.LogLevel
	}
	return nil
}

func mergeOverrides(cfg *Config, overrides map[string]string) error {
	for key, value := range overrides {
		if value == "" {
			continue
		}
		if err := SetField(cfg, key, value); err != nil {
			return err
		}
	}
	return nil
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "baseUrl":
		cfg.BaseURL = value
	case "userAgent":
		cfg.UserAgent = value
	case "accept":
		cfg.Accept = value
	case "tags":
		cfg.Tags = splitComma(value)
	case "timeoutSeconds":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("timeoutSeconds must be an integer: %w", err)
		}
		cfg.TimeoutSeconds = n
	case "debug":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("debug must be a boolean: %w", err)
		}
		cfg.Debug = b
	case "format":
		cfg.Format = value
	case "logLevel":
		cfg.LogLevel = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

func splitComma(s string) []string {
	var result []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
