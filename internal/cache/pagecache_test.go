package cache

import (
	"context"
	"testing"
)

func TestPageCache_SaveAndLoad(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	c := &PageCache{Dir: dir}
	url := "https://example.com/page"
	body := []byte("<html><body>cached</body></html>")

	if err := c.Save(context.Background(), url, "text/html", `"etag1"`, "Mon, 01 Jan 2024 00:00:00 GMT", body); err != nil {
		t.Fatalf("save: %v", err)
	}

	meta, err := c.LoadMeta(context.Background(), url)
	if err != nil {
		t.Fatalf("load meta: %v", err)
	}
	if meta.ETag != `"etag1"` || meta.ContentType != "text/html" || meta.URL != url {
		t.Fatalf("unexpected meta: %+v", meta)
	}
	if meta.SavedAt.IsZero() {
		t.Fatalf("expected SavedAt to be set")
	}

	got, err := c.LoadBody(context.Background(), url)
	if err != nil {
		t.Fatalf("load body: %v", err)
	}
	if string(got) != string(body) {
		t.Fatalf("body mismatch: %q", got)
	}
}

func TestPageCache_MissingEntry(t *testing.T) {
	t.Parallel()
	c := &PageCache{Dir: t.TempDir()}
	if _, err := c.LoadMeta(context.Background(), "https://example.com/absent"); err == nil {
		t.Fatalf("expected error for missing meta")
	}
	if _, err := c.LoadBody(context.Background(), "https://example.com/absent"); err == nil {
		t.Fatalf("expected error for missing body")
	}
}

func TestPageCache_UnconfiguredDir(t *testing.T) {
	t.Parallel()
	c := &PageCache{}
	if err := c.Save(context.Background(), "https://example.com", "text/html", "", "", []byte("x")); err == nil {
		t.Fatalf("expected error when dir not configured")
	}
}
