package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"

	"github.com/hyperifyio/goplaintext/internal/cache"
	"github.com/hyperifyio/goplaintext/internal/fetch"
	"github.com/hyperifyio/goplaintext/internal/htmltext"
	"github.com/hyperifyio/goplaintext/internal/render"
)

// ErrNoContent is returned when there is nothing to convert: empty input, a
// document without a body, or a selector that matches nothing. Per the exit
// code policy this maps to a distinct non-zero exit.
var ErrNoContent = errors.New("no content")

type App struct {
	cfg       Config
	client    *fetch.Client
	pageCache *cache.PageCache
}

func New(ctx context.Context, cfg Config) (*App, error) {
	a := &App{cfg: cfg}
	if cfg.CacheDir != "" {
		if cfg.CacheClear {
			if err := cache.ClearDir(cfg.CacheDir); err != nil {
				log.Warn().Err(err).Str("dir", cfg.CacheDir).Msg("cache clear failed")
			}
		}
		if cfg.CacheMaxAge > 0 {
			if n, err := cache.PurgeByAge(cfg.CacheDir, cfg.CacheMaxAge); err == nil && n > 0 {
				log.Debug().Int("removed", n).Msg("purged stale cache entries")
			}
		}
		a.pageCache = &cache.PageCache{Dir: cfg.CacheDir}
	}
	a.client = &fetch.Client{
		HTTPClient:        newHTTPClient(),
		UserAgent:         cfg.UserAgent,
		MaxAttempts:       cfg.MaxAttempts,
		PerRequestTimeout: cfg.Timeout,
		Cache:             a.pageCache,
		BypassCache:       cfg.BypassCache,
		RedirectMaxHops:   cfg.RedirectMaxHops,
	}
	return a, nil
}

func (a *App) Close() {}

// Run resolves the input, converts it to plain text, and writes the rendered
// output. Nothing is written when the result is absent.
func (a *App) Run(ctx context.Context) error {
	raw, srcURL, fetchedAt, err := a.readInput(ctx)
	if err != nil {
		return err
	}

	source := string(raw)
	if sel := strings.TrimSpace(a.cfg.Selector); sel != "" {
		source, err = reduceToSelection(source, sel)
		if err != nil {
			return err
		}
	}

	text, ok := htmltext.FromString(source, htmltext.Options{DisableLinks: a.cfg.DisableLinks})
	if !ok {
		return ErrNoContent
	}

	var title string
	if doc, err := html.Parse(strings.NewReader(source)); err == nil {
		title = htmltext.Title(doc)
	}

	r, err := render.ForFormat(a.cfg.Format)
	if err != nil {
		return err
	}
	out, err := r.Render(render.Page{
		URL:       srcURL,
		Title:     title,
		HTML:      source,
		Text:      text,
		FetchedAt: fetchedAt,
	})
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if a.cfg.Output == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(a.cfg.Output, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Debug().Str("path", a.cfg.Output).Int("bytes", len(out)).Msg("wrote output")
	return nil
}

// readInput resolves the configured input to UTF-8 bytes. URLs are fetched
// and decoded from their Content-Type; files and stdin honor the forced
// charset option when set.
func (a *App) readInput(ctx context.Context) ([]byte, string, time.Time, error) {
	in := a.cfg.Input
	if isURL(in) {
		body, contentType, err := a.client.Get(ctx, in)
		if err != nil {
			return nil, "", time.Time{}, fmt.Errorf("fetch %s: %w", in, err)
		}
		decoded, err := fetch.DecodeBody(body, contentType)
		if err != nil {
			return nil, "", time.Time{}, err
		}
		return decoded, in, time.Now().UTC(), nil
	}

	var raw []byte
	var err error
	if in == "-" {
		raw, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", time.Time{}, fmt.Errorf("read stdin: %w", err)
		}
	} else {
		raw, err = os.ReadFile(in)
		if err != nil {
			return nil, "", time.Time{}, fmt.Errorf("read input: %w", err)
		}
	}
	if a.cfg.Charset != "" {
		raw, err = decodeCharset(raw, a.cfg.Charset)
		if err != nil {
			return nil, "", time.Time{}, err
		}
	}
	return raw, "", time.Time{}, nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
