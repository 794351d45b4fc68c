package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTimeoutSeconds = 10
	DefaultConcurrency    = 4
)

// Config holds the defaults applied when flags don't say otherwise, plus the
// saved list of sites probed when the command line carries no URLs.
type Config struct {
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	NoRedirects    bool   `yaml:"no_redirects,omitempty"`
	Concurrency    int    `yaml:"concurrency"`
	LogDir         string `yaml:"log_dir,omitempty"`
	Sites          []Site `yaml:"sites"`
}

// Site is a saved probe target.
type Site struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// GetConfigPath returns the path to the global config file
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "healthcheck", "config.yml"), nil
}

// InitConfig creates the config directory and file with default content
func InitConfig(force bool) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", configPath)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(getDefaultConfig()), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// LoadConfig reads and parses the config file, filling in defaults for
// fields the file leaves unset.
func LoadConfig() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}

	return &cfg, nil
}

// SaveConfig writes the config back to the file
func SaveConfig(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// AddSite adds a new site to the config
func (c *Config) AddSite(site Site) error {
	for _, s := range c.Sites {
		if s.Name == site.Name {
			return fmt.Errorf("site with name '%s' already exists", site.Name)
		}
	}

	c.Sites = append(c.Sites, site)
	return nil
}

// RemoveSite removes a site by name from the config
func (c *Config) RemoveSite(name string) error {
	for i, s := range c.Sites {
		if s.Name == name {
			c.Sites = append(c.Sites[:i], c.Sites[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("site '%s' not found", name)
}

// URLs returns the saved site URLs in config order.
func (c *Config) URLs() []string {
	urls := make([]string, 0, len(c.Sites))
	for _, s := range c.Sites {
		urls = append(urls, s.URL)
	}
	return urls
}

// getDefaultConfig returns the default configuration as YAML
func getDefaultConfig() string {
	return fmt.Sprintf(`# healthcheck configuration
# Defaults applied when flags don't override them
timeout_seconds: %d
concurrency: %d

# Sites checked when no URLs are passed on the command line
sites:
  - name: example
    url: https://example.com
`, DefaultTimeoutSeconds, DefaultConcurrency)
}
