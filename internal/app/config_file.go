package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema.
// Nested sections map naturally to the dotted flag names.
type FileConfig struct {
	Input   string `yaml:"input" json:"input"`
	Output  string `yaml:"output" json:"output"`
	Format  string `yaml:"format" json:"format"`
	Select  string `yaml:"select" json:"select"`
	Charset string `yaml:"charset" json:"charset"`

	Links *struct {
		Show *bool `yaml:"show" json:"show"`
	} `yaml:"links" json:"links"`

	Fetch struct {
		UA          string `yaml:"ua" json:"ua"`
		MaxAttempts int    `yaml:"maxAttempts" json:"maxAttempts"`
		// Timeout is a duration string such as "15s".
		Timeout         string `yaml:"timeout" json:"timeout"`
		RedirectMaxHops int    `yaml:"redirectMaxHops" json:"redirectMaxHops"`
	} `yaml:"fetch" json:"fetch"`

	Cache struct {
		Dir string `yaml:"dir" json:"dir"`
		// MaxAge is a duration string such as "24h".
		MaxAge string `yaml:"maxAge" json:"maxAge"`
		Clear  bool   `yaml:"clear" json:"clear"`
		Bypass bool   `yaml:"bypass" json:"bypass"`
	} `yaml:"cache" json:"cache"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// Defaults shared between flag declarations and the file-config overlay, so
// the overlay can tell an explicit flag from an untouched default.
const (
	UserAgentDefault   = "goplaintext/1.0 (+https://github.com/hyperifyio/goplaintext)"
	CacheDirDefault    = ".goplaintext-cache"
	MaxAttemptsDefault = 3
	TimeoutDefault     = 15 * time.Second
)

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// that are currently unset or still at their flag default. Flags should
// already have been parsed; this lets a config file supply defaults while
// preserving explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}

	if cfg.Input == "" && fc.Input != "" {
		cfg.Input = fc.Input
	}
	if cfg.Output == "" && fc.Output != "" {
		cfg.Output = fc.Output
	}
	if cfg.Format == "" && fc.Format != "" {
		cfg.Format = fc.Format
	}
	if cfg.Selector == "" && fc.Select != "" {
		cfg.Selector = fc.Select
	}
	if cfg.Charset == "" && fc.Charset != "" {
		cfg.Charset = fc.Charset
	}

	// Link annotation: default on; file config may disable with show=false
	if fc.Links != nil && fc.Links.Show != nil {
		cfg.DisableLinks = !*fc.Links.Show
	}

	if (cfg.UserAgent == "" || cfg.UserAgent == UserAgentDefault) && fc.Fetch.UA != "" {
		cfg.UserAgent = fc.Fetch.UA
	}
	if (cfg.MaxAttempts == 0 || cfg.MaxAttempts == MaxAttemptsDefault) && fc.Fetch.MaxAttempts > 0 {
		cfg.MaxAttempts = fc.Fetch.MaxAttempts
	}
	if cfg.Timeout == 0 || cfg.Timeout == TimeoutDefault {
		if d, err := time.ParseDuration(fc.Fetch.Timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	if cfg.RedirectMaxHops == 0 && fc.Fetch.RedirectMaxHops > 0 {
		cfg.RedirectMaxHops = fc.Fetch.RedirectMaxHops
	}

	if (cfg.CacheDir == "" || cfg.CacheDir == CacheDirDefault) && fc.Cache.Dir != "" {
		cfg.CacheDir = fc.Cache.Dir
	}
	if cfg.CacheMaxAge == 0 {
		if d, err := time.ParseDuration(fc.Cache.MaxAge); err == nil && d > 0 {
			cfg.CacheMaxAge = d
		}
	}
	if !cfg.CacheClear && fc.Cache.Clear {
		cfg.CacheClear = true
	}
	if !cfg.BypassCache && fc.Cache.Bypass {
		cfg.BypassCache = true
	}

	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}
