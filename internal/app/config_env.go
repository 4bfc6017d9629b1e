package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ApplyEnvToConfig populates unset fields of cfg from GOPLAINTEXT_*
// environment variables. Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Format == "" {
		cfg.Format = os.Getenv("GOPLAINTEXT_FORMAT")
	}
	if cfg.Charset == "" {
		cfg.Charset = os.Getenv("GOPLAINTEXT_CHARSET")
	}
	if cfg.UserAgent == "" || cfg.UserAgent == UserAgentDefault {
		if v := os.Getenv("GOPLAINTEXT_USER_AGENT"); v != "" {
			cfg.UserAgent = v
		}
	}
	if cfg.CacheDir == "" || cfg.CacheDir == CacheDirDefault {
		if v := os.Getenv("GOPLAINTEXT_CACHE_DIR"); v != "" {
			cfg.CacheDir = v
		}
	}

	if cfg.MaxAttempts == 0 || cfg.MaxAttempts == MaxAttemptsDefault {
		if s := strings.TrimSpace(os.Getenv("GOPLAINTEXT_MAX_ATTEMPTS")); s != "" {
			if n, err := strconv.Atoi(s); err == nil && n > 0 {
				cfg.MaxAttempts = n
			}
		}
	}
	if cfg.CacheMaxAge == 0 {
		if s := os.Getenv("GOPLAINTEXT_CACHE_MAX_AGE"); s != "" {
			if d, err := time.ParseDuration(s); err == nil {
				cfg.CacheMaxAge = d
			}
		}
	}

	setBool := func(dst *bool, envKey string) {
		if *dst {
			return
		}
		switch strings.ToLower(strings.TrimSpace(os.Getenv(envKey))) {
		case "1", "true", "yes", "on":
			*dst = true
		}
	}
	setBool(&cfg.Verbose, "GOPLAINTEXT_VERBOSE")
	setBool(&cfg.CacheClear, "GOPLAINTEXT_CACHE_CLEAR")
	setBool(&cfg.BypassCache, "GOPLAINTEXT_CACHE_BYPASS")
	setBool(&cfg.DisableLinks, "GOPLAINTEXT_NO_LINKS")
}
