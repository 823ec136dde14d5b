package config

import (
	"fmt"
	"strings"
	"time"
)

// Config represents user settings stored on disk.
type Config struct {
	Catalog CatalogConfig `json:"catalog" yaml:"catalog" toml:"catalog"`
	Gallery GalleryConfig `json:"gallery" yaml:"gallery" toml:"gallery"`
	Logging LoggingConfig `json:"logging" yaml:"logging" toml:"logging"`
}

// CatalogConfig says where the template catalog comes from and how titles sort.
type CatalogConfig struct {
	// Location is an http(s) URL or a file path. Empty means the bundled catalog.
	Location string `json:"location" yaml:"location" toml:"location"`
	// Locale is a BCP 47 tag used for title collation and label casing.
	Locale string `json:"locale" yaml:"locale" toml:"locale"`

	FetchTimeout    time.Duration `json:"-" yaml:"-" toml:"-"`
	FetchTimeoutRaw string        `json:"fetch_timeout" yaml:"fetch_timeout" toml:"fetch_timeout"`
}

// GalleryConfig holds presentation settings.
type GalleryConfig struct {
	Variant string `json:"variant" yaml:"variant" toml:"variant"`
	PerPage int    `json:"per_page" yaml:"per_page" toml:"per_page"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `json:"level" yaml:"level" toml:"level"`
	Format string `json:"format" yaml:"format" toml:"format"`
	// File receives logs while the TUI owns the terminal.
	File string `json:"file" yaml:"file" toml:"file"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		Catalog: CatalogConfig{
			Locale:          "en",
			FetchTimeout:    15 * time.Second,
			FetchTimeoutRaw: "15s",
		},
		Gallery: GalleryConfig{
			Variant: "detailed",
			PerPage: 6,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "color",
		},
	}
}

// Validate checks enumerated fields and numeric bounds.
func (c *Config) Validate() error {
	switch c.Gallery.Variant {
	case "compact", "detailed":
	default:
		return fmt.Errorf("gallery.variant must be compact or detailed, got %q", c.Gallery.Variant)
	}
	if c.Gallery.PerPage <= 0 {
		return fmt.Errorf("gallery.per_page must be positive, got %d", c.Gallery.PerPage)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "color", "text", "json":
	default:
		return fmt.Errorf("logging.format must be color, text or json, got %q", c.Logging.Format)
	}
	if c.Catalog.FetchTimeout < 0 {
		return fmt.Errorf("catalog.fetch_timeout must not be negative")
	}
	return nil
}
