// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, browser rendering, speech synthesis,
// persistence, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache built on go-cache
// - cache/redis: Redis-based cache implementation
// - http/standard: Standard library HTTP client with browser-like headers and retry logic
// - browser/chromedp: Headless Chrome rendering backend over CDP
// - speech/google: Google Cloud Text-to-Speech synthesizer
// - storage/sqlite: SQLite persistence for shows and episodes
// - blob/filesystem: Filesystem media store behind the audio proxy
// - logger/logrus: Structured JSON logging with rotating file output
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include retries, timeouts, and error handling
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(time.Hour)
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// # HTTP Client
//
// The HTTP client sends browser-like headers and retries transient failures:
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewLogger(logrus.Options{Level: "info"})
//	logger.Info("Processing request", map[string]interface{}{
//	    "url":    "https://example.com/article",
//	    "action": "scrape",
//	})
package infrastructure
