// Command sitemap writes sitemap.xml and robots.txt for the static site
// from the calculator catalog.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"Dunklab/internal/catalog"
	"Dunklab/internal/config"
	"Dunklab/pkg/logger"
)

func main() {
	var (
		outDir  = flag.String("out", "static", "Directory to write sitemap.xml and robots.txt into")
		baseURL = flag.String("url", "", "Public site URL (default: base_url from config)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	if err := logger.Init(cfg.LogFormat); err != nil {
		os.Stderr.WriteString("logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.Named("sitemap")
	if *baseURL == "" {
		*baseURL = cfg.BaseURL
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := run(ctx, cfg, *outDir, *baseURL, log); err != nil {
		log.Error(ctx, "generate sitemap", logger.Error(err))
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, outDir, baseURL string, log logger.Logger) error {
	repo, closeDB, err := catalog.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseURL, cfg.Migrate, log)
	if err != nil {
		return err
	}
	defer closeDB()

	entries, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	if err := catalog.WriteFiles(outDir, baseURL, entries, time.Now()); err != nil {
		return err
	}
	log.Info(ctx, "sitemap written", logger.String("dir", outDir), logger.Int("pages", len(entries)+1))
	return nil
}
