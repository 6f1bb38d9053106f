// ABOUTME: Main entry point for the Anoncast API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"anoncast-api/api"
	"anoncast-api/api/handlers"
	"anoncast-api/core/episode"
	"anoncast-api/core/feed"
	"anoncast-api/core/interfaces"
	"anoncast-api/core/scrape"
	"anoncast-api/core/services"
	"anoncast-api/core/voices"
	"anoncast-api/infrastructure/blob/filesystem"
	"anoncast-api/infrastructure/browser/chromedp"
	"anoncast-api/infrastructure/cache/memory"
	"anoncast-api/infrastructure/cache/redis"
	stdhttp "anoncast-api/infrastructure/http/standard"
	logruslogger "anoncast-api/infrastructure/logger/logrus"
	"anoncast-api/infrastructure/speech/google"
	"anoncast-api/infrastructure/storage/sqlite"
	"anoncast-api/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.NewLogger(logruslogger.Options{
		Level:    cfg.Logging.Level,
		FilePath: cfg.Logging.FilePath,
	})
	logger.Info("Starting Anoncast API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
	})

	// Create cache
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second)
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second)
		logger.Info("Using memory cache", nil)
	}

	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Headless rendering is optional; without it JS-heavy pages fail
	// with a clear error instead of garbage output
	var renderBackend interfaces.RenderBackend
	if cfg.Browser.WebSocketURL != "" {
		renderBackend = chromedp.NewBackend(cfg.Browser.WebSocketURL, logger)
		logger.Info("Headless rendering enabled", nil)
	} else {
		logger.Warn("BROWSER_WS_URL not set; JS-rendered pages cannot be scraped", nil)
	}

	scrapeOpts := scrape.DefaultOptions()
	scrapeOpts.RenderConnectTimeout = time.Duration(cfg.Browser.ConnectTimeout) * time.Second
	scrapeOpts.RenderNavigateTimeout = time.Duration(cfg.Browser.NavigateTimeout) * time.Second
	scrapeOpts.RenderMaxRetries = cfg.Browser.MaxRetries
	scrapeOpts.RenderRetryDelay = time.Duration(cfg.Browser.RetryDelay) * time.Second
	scrapeService := scrape.NewService(deps, renderBackend, scrapeOpts)

	ctx := context.Background()

	synth, err := google.NewSynthesizer(ctx, logger,
		cfg.Speech.LanguageCode, cfg.Speech.DefaultVoice)
	if err != nil {
		log.Fatalf("Failed to create speech synthesizer: %v", err)
	}
	defer synth.Close()

	voiceService := voices.NewService(deps, synth, voices.DefaultCatalogPolicy())

	store, err := sqlite.NewStore(cfg.Storage.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open episode store: %v", err)
	}
	defer store.Close()

	blobs, err := filesystem.NewStore(cfg.Storage.MediaDir, cfg.Server.PublicBaseURL)
	if err != nil {
		log.Fatalf("Failed to create media store: %v", err)
	}

	// Payment authorization is not wired to a provider; generation is
	// open when no authorizer is configured
	episodeService := episode.NewService(deps, synth, store, blobs, nil)
	feedService := feed.NewService(deps, store)
	artworkColors := services.NewArtworkColorService(deps)

	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:     logger,
		RateLimit:  100, // 100 requests per minute per client
		RateWindow: time.Minute,
	})

	handlers.NewScrapeHandler(scrapeService).RegisterRoutes(humaAPI)
	handlers.NewVoicesHandler(voiceService).RegisterRoutes(humaAPI)
	handlers.NewEpisodesHandler(episodeService, cfg.Server.PublicBaseURL).RegisterRoutes(humaAPI)
	handlers.NewArtworkHandler(artworkColors).RegisterRoutes(humaAPI)
	handlers.NewFeedHandler(feedService, logger).RegisterRoutes(router)
	handlers.NewAudioHandler(blobs, logger).RegisterRoutes(router)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // synthesis requests are slow
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
