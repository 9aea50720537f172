// Package config loads and persists the client's yaml configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jotlabs/jot/internal/constants"
)

type SearchConfig struct {
	Scope string `yaml:"scope" json:"scope"`
}

// StyleConfig holds the presentation defaults applied to note titles when a
// note carries no style attributes of its own.
type StyleConfig struct {
	TitleBold  bool   `yaml:"title_bold"  json:"title_bold"`
	TitleSize  int    `yaml:"title_size"  json:"title_size"`
	TitleColor string `yaml:"title_color" json:"title_color"`
}

type Config struct {
	ServerURL    string       `yaml:"server_url"    json:"server_url"`
	Token        string       `yaml:"token"         json:"token"`
	Email        string       `yaml:"email"         json:"email"`
	AllowedEmail string       `yaml:"allowed_email" json:"allowed_email"`
	Search       SearchConfig `yaml:"search"        json:"search"`
	Style        StyleConfig  `yaml:"style"         json:"style"`

	home string `yaml:"-"`
}

func GetConfigPath(homeDir string) string {
	return filepath.Join(
		homeDir,
		constants.ConfigDir,
		constants.ConfigFile+"."+constants.ConfigFileType,
	)
}

func GetLogPath(homeDir string) string {
	return filepath.Join(homeDir, constants.ConfigDir, constants.LogFile)
}

// EnsureConfigExists creates the config directory and an empty config file
// on first run.
func EnsureConfigExists(homeDir string) error {
	configPath := GetConfigPath(homeDir)

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		file, err := os.Create(configPath)
		if err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
		file.Close()
	} else if err != nil {
		return fmt.Errorf("failed to check config file existence: %w", err)
	}

	return nil
}

// Load reads the config file under homeDir, filling defaults for anything
// unset. An empty file yields a default config.
func Load(homeDir string) (*Config, error) {
	data, err := os.ReadFile(GetConfigPath(homeDir))
	if err != nil {
		return nil, err
	}

	cfg := &Config{home: homeDir}
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	cfg.ensureDefaults()
	return cfg, nil
}

func (cfg *Config) ensureDefaults() {
	if strings.TrimSpace(cfg.ServerURL) == "" {
		cfg.ServerURL = constants.DefaultServerURL
	}
	if strings.TrimSpace(cfg.Search.Scope) == "" {
		cfg.Search.Scope = constants.DefaultScope
	}
}

func (cfg *Config) GetConfigPath() string {
	return GetConfigPath(cfg.home)
}

func (cfg *Config) Save() error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	configPath := cfg.GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// ChangeToken stores a new bearer token (empty on logout) and saves.
func (cfg *Config) ChangeToken(token string) error {
	cfg.Token = token
	return cfg.Save()
}

// ChangeIdentity records the signed-in email and saves.
func (cfg *Config) ChangeIdentity(email string) error {
	cfg.Email = email
	return cfg.Save()
}

// ChangeScope validates and stores the default search scope.
func (cfg *Config) ChangeScope(scope string) error {
	normalized := strings.ToLower(strings.TrimSpace(scope))
	switch normalized {
	case "title", "content", "all", "title+content":
	default:
		return fmt.Errorf(
			"invalid scope: %q. Please choose 'title', 'content', or 'all'.",
			scope,
		)
	}

	cfg.Search.Scope = normalized
	return cfg.Save()
}

// ChangeServer stores the service base URL and saves.
func (cfg *Config) ChangeServer(serverURL string) error {
	if strings.TrimSpace(serverURL) == "" {
		return fmt.Errorf("server url cannot be empty")
	}
	cfg.ServerURL = strings.TrimRight(serverURL, "/")
	return cfg.Save()
}
