/*
Package config reads the optional site configuration file.

The file is TOML and lives at the root of the site, next to the CNAME file.
All settings are optional; command line flags take precedence.

	content       = "content"      # folder holding the Markdown files
	output        = "out"          # build output folder
	cname         = "CNAME"        # file holding the site's domain
	style         = "github"       # code highlighting style
	anchors       = true           # add "#" links to headings
	cachesize     = 0              # dev server content cache in bytes, 0 disables
	cacheduration = "10s"          # dev server content cache expiry

	[headers]                      # extra dev server response headers
	X-Frame-Options = "DENY"
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ancientlore/quire/markdown"
	"github.com/pelletier/go-toml/v2"
)

// DefaultFile is the name of the configuration file.
const DefaultFile = "quire.toml"

// Config contains configuration data from the configuration file.
type Config struct {
	Content       string            `toml:"content"`
	Output        string            `toml:"output"`
	CNAME         string            `toml:"cname"`
	Style         string            `toml:"style"`
	Anchors       *bool             `toml:"anchors"`
	CacheSize     int64             `toml:"cachesize"`
	CacheDuration Duration          `toml:"cacheduration"`
	Headers       map[string]string `toml:"headers"`
}

// Default returns the configuration used when there is no file.
func Default() *Config {
	anchors := true
	return &Config{
		Content: "content",
		Output:  "out",
		CNAME:   "CNAME",
		Style:   "github",
		Anchors: &anchors,

		CacheDuration: Duration(10 * time.Second),
		Headers:       map[string]string{},
	}
}

// Load reads the named configuration file from fsys, filling in defaults
// for missing settings. It is not an error if the file does not exist.
func Load(fsys fs.FS, name string) (*Config, error) {
	cfg := Default()
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("Cannot read config file: %w", err)
	}
	var file Config
	err = toml.Unmarshal(b, &file)
	if err != nil {
		return nil, fmt.Errorf("Cannot parse config file: %w", err)
	}
	cfg.merge(&file)
	return cfg, nil
}

// MarkdownOptions returns the converter options for the configured
// style and heading anchors.
func (cfg *Config) MarkdownOptions() markdown.Options {
	opts := markdown.DefaultOptions()
	opts.Style = cfg.Style
	if cfg.Anchors != nil {
		opts.HeadingAnchors = *cfg.Anchors
	}
	return opts
}

// merge overrides settings with the ones set in other.
func (cfg *Config) merge(other *Config) {
	if other.Content != "" {
		cfg.Content = other.Content
	}
	if other.Output != "" {
		cfg.Output = other.Output
	}
	if other.CNAME != "" {
		cfg.CNAME = other.CNAME
	}
	if other.Style != "" {
		cfg.Style = other.Style
	}
	if other.Anchors != nil {
		cfg.Anchors = other.Anchors
	}
	if other.CacheSize != 0 {
		cfg.CacheSize = other.CacheSize
	}
	if other.CacheDuration != 0 {
		cfg.CacheDuration = other.CacheDuration
	}
	for k, v := range other.Headers {
		cfg.Headers[k] = v
	}
}
