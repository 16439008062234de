package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"Dunklab/internal/config"
	"Dunklab/pkg/logger"
)

func TestRun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "public")
	if err := run(context.Background(), config.New(), out, "https://dunklab.example", logger.Nop()); err != nil {
		t.Fatalf("run: %v", err)
	}

	sitemap, err := os.ReadFile(filepath.Join(out, "sitemap.xml"))
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(sitemap), "<url>"); got != 8 {
		t.Errorf("sitemap has %d urls, want 8", got)
	}
	robots, err := os.ReadFile(filepath.Join(out, "robots.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(robots), "https://dunklab.example/sitemap.xml") {
		t.Errorf("robots.txt = %q", robots)
	}
}
