package main

import (
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/pevans/helpchunk"
	"github.com/pevans/helpchunk/config"
)

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt parses an int from an environment variable or returns default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func main() {
	// A missing .env is fine; real environment variables win over it.
	_ = godotenv.Load()

	configPath := flag.String("config", getEnv("HELPCHUNK_CONFIG", ""), "Path to YAML config file (HELPCHUNK_CONFIG)")
	listingURL := flag.String("listing-url", getEnv("HELPCHUNK_LISTING_URL", ""), "Help-center listing page URL (HELPCHUNK_LISTING_URL)")
	outputPath := flag.String("output", getEnv("HELPCHUNK_OUTPUT", ""), "Output JSON file path (HELPCHUNK_OUTPUT)")
	maxChunk := flag.Int("max-chunk", getEnvInt("HELPCHUNK_MAX_CHUNK", 0), "Maximum chunk length in bytes (HELPCHUNK_MAX_CHUNK)")
	fetchTimeout := flag.String("fetch-timeout", getEnv("HELPCHUNK_TIMEOUT", ""), "Per-request timeout, e.g. 10s; 0 disables (HELPCHUNK_TIMEOUT)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Flags override the config file.
	if *listingURL != "" {
		cfg.ListingURL = *listingURL
	}
	if *outputPath != "" {
		cfg.OutputPath = *outputPath
	}
	if *maxChunk > 0 {
		cfg.MaxChunkLength = *maxChunk
	}
	if *fetchTimeout != "" {
		cfg.FetchTimeout = *fetchTimeout
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	fetcher := helpchunk.NewHTTPFetcher(cfg.Timeout(), cfg.UserAgent)
	crawler := helpchunk.NewCrawler(fetcher, cfg)

	// Per-article failures are logged and skipped inside Run; only a
	// discovery failure reaches here.
	records, _, err := crawler.Run()
	if err != nil {
		log.Fatalf("Crawl failed: %v", err)
	}

	if err := helpchunk.WriteRecords(records, cfg.OutputPath); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}

	log.Printf("INFO: Wrote %d records to %s", len(records), cfg.OutputPath)
}
