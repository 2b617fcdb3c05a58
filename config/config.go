package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds every knob for a crawl run. The defaults target the
// Notion help center; a YAML file or command-line flags can retarget the
// same logic at a different site.
type Config struct {
	// BaseURL is the site origin used to resolve relative article links.
	BaseURL string `yaml:"base_url"`
	// ListingURL is the page scanned for article links.
	ListingURL string `yaml:"listing_url"`
	// PathMarker identifies an href as a help article.
	PathMarker string `yaml:"path_marker"`
	// ExcludeMarker rejects hrefs containing it, case-insensitively.
	ExcludeMarker string `yaml:"exclude_marker"`
	// ContainerSelector locates the article content container. When it
	// matches nothing the document body is scanned instead.
	ContainerSelector string `yaml:"container_selector"`
	// BulletPrefix is prepended to each flattened list item.
	BulletPrefix string `yaml:"bullet_prefix"`
	// MaxChunkLength bounds chunk size in bytes. A single block longer
	// than this still becomes its own chunk.
	MaxChunkLength int `yaml:"max_chunk_length"`
	// FetchTimeout is a time.ParseDuration string; "0" disables the
	// per-request timeout.
	FetchTimeout string `yaml:"fetch_timeout"`
	// UserAgent overrides the default request User-Agent when non-empty.
	UserAgent string `yaml:"user_agent"`
	// OutputPath is where the JSON record array is written.
	OutputPath string `yaml:"output_path"`
}

// Default returns the compiled-in configuration.
func Default() *Config {
	return &Config{
		BaseURL:           "https://www.notion.so",
		ListingURL:        "https://www.notion.so/help",
		PathMarker:        "/help/",
		ExcludeMarker:     "academy",
		ContainerSelector: "div.help-article-container",
		BulletPrefix:      "- ",
		MaxChunkLength:    750,
		FetchTimeout:      "10s",
		OutputPath:        "notion_help_chunks.json",
	}
}

// Load returns the defaults with any values from the YAML file at path
// layered on top. An empty path or a missing file is not an error -- the
// defaults stand. A file that exists but cannot be parsed is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Timeout parses FetchTimeout. Call Validate first; an unparsable value
// falls back to the default here.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.FetchTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// Validate checks that the configuration can drive a crawl.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base_url must not be empty")
	}
	if c.ListingURL == "" {
		return errors.New("listing_url must not be empty")
	}
	if c.PathMarker == "" {
		return errors.New("path_marker must not be empty")
	}
	if c.MaxChunkLength <= 0 {
		return errors.New("max_chunk_length must be positive")
	}
	if c.OutputPath == "" {
		return errors.New("output_path must not be empty")
	}
	if _, err := time.ParseDuration(c.FetchTimeout); err != nil {
		return fmt.Errorf("invalid fetch_timeout: %w", err)
	}
	return nil
}
