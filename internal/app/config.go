package app

import (
	"errors"
	"strings"
	"time"
)

// Config holds runtime configuration for the application.
type Config struct {
	// Input is a URL, a file path, or "-" for stdin.
	Input string
	// Output is a file path; empty writes to stdout.
	Output string
	// Format selects the renderer: text (default), markdown, json, or pdf.
	Format string

	// Selector optionally reduces the document to the first CSS match
	// before conversion.
	Selector string
	// Charset forces decoding of file/stdin input (e.g. "latin1").
	// Fetched pages are decoded from their Content-Type instead.
	Charset string
	// DisableLinks turns off the " (href) " annotation after anchors.
	DisableLinks bool

	// Fetch behavior
	UserAgent       string
	MaxAttempts     int
	Timeout         time.Duration
	RedirectMaxHops int

	// Cache behavior
	CacheDir    string
	CacheMaxAge time.Duration
	CacheClear  bool
	BypassCache bool

	Verbose bool
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.Input) == "" {
		return errors.New("config: input is required")
	}
	if cfg.MaxAttempts < 0 {
		return errors.New("config: negative attempt counts are not allowed")
	}
	if cfg.Timeout < 0 {
		return errors.New("config: negative timeout is not allowed")
	}
	switch cfg.Format {
	case "", "text", "txt", "markdown", "md", "json", "pdf":
	default:
		return errors.New("config: unknown format " + cfg.Format)
	}
	return nil
}
