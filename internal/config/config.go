// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultPostsPerPage = 6

// SiteConfig holds the configuration from the site.yaml file. It is
// constructed once at startup and passed into every pipeline component.
type SiteConfig struct {
	Title        string `yaml:"title"`
	Author       string `yaml:"author"`
	BaseURL      string `yaml:"baseurl"`
	Domain       string `yaml:"domain"`
	Description  string `yaml:"description"`
	Template     string `yaml:"template"`
	PostsPerPage int    `yaml:"posts_per_page"`
}

// LoadSiteConfig reads site.yaml and applies environment overrides. A
// .env file in the working directory is loaded first when present, so a
// deployment can swap the base URL or domain without editing the site
// file.
func LoadSiteConfig(path string) (SiteConfig, error) {
	cfg := SiteConfig{}
	data, err := os.ReadFile(path)
	if err != nil {
		return SiteConfig{}, fmt.Errorf("could not read config file at %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("could not parse config file %s: %w", path, err)
	}

	// Optional; a missing .env is not an error.
	_ = godotenv.Load()

	if v := os.Getenv("PLUME_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("PLUME_DOMAIN"); v != "" {
		cfg.Domain = v
	}

	if cfg.Template == "" {
		cfg.Template = "simple"
	}
	if cfg.PostsPerPage <= 0 {
		cfg.PostsPerPage = defaultPostsPerPage
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return cfg, nil
}
