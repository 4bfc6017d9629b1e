package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goplaintext/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		inputArg    string
		outputPath  string
		format      string
		selector    string
		charsetName string
		showLinks   bool
		userAgent   string
		maxAttempts int
		timeout     time.Duration
		maxHops     int
		cacheDir    string
		cacheMaxAge time.Duration
		cacheClear  bool
		cacheBypass bool
		configPath  string
		verbose     bool
		showVersion bool
	)

	flag.StringVar(&inputArg, "input", "", "HTML document to convert: file path, http(s) URL, or '-' for stdin")
	flag.StringVar(&outputPath, "output", "", "Path to write the result; empty writes to stdout")
	flag.StringVar(&format, "format", os.Getenv("GOPLAINTEXT_FORMAT"), "Output format: text (default), markdown, json, or pdf")
	flag.StringVar(&selector, "select", "", "CSS selector to reduce the document before conversion")
	flag.StringVar(&charsetName, "charset", "", "Force a charset for file/stdin input (e.g. latin1)")
	flag.BoolVar(&showLinks, "links.show", true, "Annotate anchors with their absolute targets")
	flag.StringVar(&userAgent, "fetch.ua", app.UserAgentDefault, "User-Agent for URL inputs")
	flag.IntVar(&maxAttempts, "fetch.maxAttempts", app.MaxAttemptsDefault, "Fetch attempts including the first (transient errors only)")
	flag.DurationVar(&timeout, "fetch.timeout", app.TimeoutDefault, "Per-request timeout for URL inputs")
	flag.IntVar(&maxHops, "fetch.redirectMaxHops", 0, "Redirect hop limit; 0 uses the default")
	flag.StringVar(&cacheDir, "cache.dir", app.CacheDirDefault, "Cache directory for fetched pages; empty disables caching")
	flag.DurationVar(&cacheMaxAge, "cache.maxAge", 0, "Max age for cache entries before purge (e.g. 24h); 0 disables")
	flag.BoolVar(&cacheClear, "cache.clear", false, "Clear cache directory before run")
	flag.BoolVar(&cacheBypass, "cache.bypass", false, "Fetch fresh without conditional revalidation")
	flag.StringVar(&configPath, "config", os.Getenv("GOPLAINTEXT_CONFIG"), "Path to YAML or JSON config file")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.BoolVar(&showVersion, "version", false, "Print version information and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("goplaintext %s (commit %s, built %s)\n", app.BuildVersion, app.BuildCommit, app.BuildDate)
		return
	}

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	// A bare positional argument is accepted as the input.
	if inputArg == "" && flag.NArg() > 0 {
		inputArg = flag.Arg(0)
	}

	cfg := app.Config{
		Input:           inputArg,
		Output:          outputPath,
		Format:          format,
		Selector:        selector,
		Charset:         charsetName,
		DisableLinks:    !showLinks,
		UserAgent:       userAgent,
		MaxAttempts:     maxAttempts,
		Timeout:         timeout,
		RedirectMaxHops: maxHops,
		CacheDir:        cacheDir,
		CacheMaxAge:     cacheMaxAge,
		CacheClear:      cacheClear,
		BypassCache:     cacheBypass,
		Verbose:         verbose,
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("load config file")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	app.ApplyEnvToConfig(&cfg)

	if err := app.ValidateConfig(cfg); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		// Exit code policy: 2 when the input produced no convertible
		// content, 1 for operational failures.
		if errors.Is(err, app.ErrNoContent) {
			log.Warn().Msg("no content to convert")
			os.Exit(2)
		}
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	ctx := context.Background()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer a.Close()

	return a.Run(ctx)
}
