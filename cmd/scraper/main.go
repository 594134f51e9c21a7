// Package main provides the catalog scraper tool. It crawls the UChicago
// college catalog and writes programs.json and courses.json for the server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/aKrishnan0817/uchicago-ai-advisor/internal/config"
	apperrors "github.com/aKrishnan0817/uchicago-ai-advisor/internal/errors"
	"github.com/aKrishnan0817/uchicago-ai-advisor/internal/logger"
	"github.com/aKrishnan0817/uchicago-ai-advisor/internal/scraper"
	"github.com/aKrishnan0817/uchicago-ai-advisor/internal/scraper/uchicago"
)

// CLI flags
var (
	testFlag = flag.Bool("test", false, "Scrape only the small test set of programs")
	allFlag  = flag.Bool("all", false, "Scrape every program in the catalog")
)

func main() {
	// Parse command-line flags
	flag.Parse()

	if *testFlag == *allFlag {
		_, _ = fmt.Fprintln(os.Stderr, "Usage: scraper -test | -all")
		flag.PrintDefaults()
		os.Exit(2)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.LogLevel)
	log.WithField("mode", mode(*testFlag)).Info("Starting catalog scraper")

	// Create scraper client with polite crawl delay
	client := scraper.NewClient(cfg.ScraperTimeout, cfg.ScraperDelay, cfg.ScraperMaxRetries)
	crawler := uchicago.New(client, cfg.CatalogBaseURL, log)

	// Cancel the crawl on interrupt so partial output is never written
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	startTime := time.Now()

	// Discover program pages from the catalog index
	links, err := crawler.DiscoverPrograms(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to discover programs")
		os.Exit(1)
	}
	log.WithField("programs", len(links)).Info("Programs discovered")

	if *testFlag {
		links = uchicago.FilterTest(links)
		log.WithField("programs", len(links)).Info("Test mode, filtered program list")
	}

	// Scrape every program page
	programs, courses, err := crawler.ScrapeAll(ctx, links)
	if err != nil {
		log.WithError(err).Error("Scrape aborted")
		os.Exit(1)
	}
	duration := time.Since(startTime)

	// A crawl that produced nothing means the catalog layout changed;
	// never overwrite existing data files with empty documents.
	if len(programs) == 0 {
		log.WithError(apperrors.ErrCatalogEmpty).Error("No programs scraped, refusing to write data files")
		os.Exit(1)
	}

	log.WithField("programs", len(programs)).
		WithField("courses", len(courses)).
		WithField("duration", duration.Round(time.Second).String()).
		Info("Scrape complete")

	// Write results for the server to load
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.WithError(err).Error("Failed to create data directory")
		os.Exit(1)
	}

	if err := writeJSON(cfg.ProgramsPath(), programs); err != nil {
		log.WithError(err).Error("Failed to write programs file")
		os.Exit(1)
	}
	if err := writeJSON(cfg.CoursesPath(), courses); err != nil {
		log.WithError(err).Error("Failed to write courses file")
		os.Exit(1)
	}

	fmt.Printf("Saved %d programs and %d courses to %s\n", len(programs), len(courses), cfg.DataDir)
}

func mode(test bool) string {
	if test {
		return "test"
	}
	return "all"
}

// writeJSON writes v as indented JSON via a temp file and rename so the
// server never loads a half-written document.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}
