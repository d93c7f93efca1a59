package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"grocery-assistant/config"
	_ "grocery-assistant/docs" // Swagger docs
	"grocery-assistant/internal/action"
	"grocery-assistant/internal/conversation"
	tgDelivery "grocery-assistant/internal/conversation/delivery/telegram"
	"grocery-assistant/internal/httpserver"
	"grocery-assistant/internal/intent"
	"grocery-assistant/internal/middleware"
	"grocery-assistant/internal/reply"
	"grocery-assistant/internal/textgen"
	"grocery-assistant/pkg/llmprovider"
	"grocery-assistant/pkg/log"
	"grocery-assistant/pkg/telegram"
)

// @title       Grocery Assistant API
// @description Intent classification and action dispatch for a grocery shopping assistant, over HTTP and Telegram.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Grocery Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Text generation (optional)
	var generator textgen.Generator
	if cfg.LLM.HasProviders() {
		providers, pErr := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
		if pErr != nil {
			logger.Warnf(ctx, "LLM providers unavailable, replies will be canned: %v", pErr)
		} else {
			manager, mErr := llmprovider.NewManagerFromConfig(providers, &cfg.LLM, logger)
			if mErr != nil {
				logger.Error(ctx, "Failed to build LLM manager: ", mErr)
				return
			}
			generator = textgen.New(manager, textgen.Config{
				CacheSize:       cfg.Enrichment.CacheSize,
				CacheTTL:        cfg.Enrichment.CacheTTL,
				RateLimitPerMin: cfg.Enrichment.RateLimitPerMin,
				Temperature:     cfg.Enrichment.Temperature,
				MaxTokens:       cfg.Enrichment.MaxTokens,
			}, logger)
			logger.Infof(ctx, "Text generation enabled with %d provider(s)", len(providers))
		}
	} else {
		logger.Warn(ctx, "No LLM providers configured, replies will be canned")
	}

	// 4. Assistant core
	catalog := action.New()

	var lexicon *intent.Lexicon
	if cfg.Assistant.LexiconPath != "" {
		lexicon, err = intent.LoadLexicon(cfg.Assistant.LexiconPath)
		if err != nil {
			logger.Error(ctx, "Failed to load lexicon: ", err)
			return
		}
		logger.Infof(ctx, "Lexicon loaded from %s", cfg.Assistant.LexiconPath)
	}
	classifier := intent.New(lexicon)

	synth, err := reply.New(generator, catalog, reply.Config{
		EnrichmentTimeout: cfg.Assistant.EnrichmentTimeout,
	}, logger)
	if err != nil {
		logger.Error(ctx, "Failed to build response synthesizer: ", err)
		return
	}

	sessions := conversation.NewRegistry(conversation.RegistryConfig{
		MaxSessions: cfg.Assistant.MaxSessions,
		SessionTTL:  cfg.Assistant.SessionTTL,
	}, func() *conversation.Engine {
		return conversation.New(classifier, synth, logger)
	}, logger)

	mw := middleware.New(logger, middleware.Config{
		RequestsPerMin: cfg.RateLimit.RequestsPerMin,
		TelegramSecret: cfg.Telegram.WebhookSecret,
	})

	// 5. Telegram channel (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, telegramBot, sessions, catalog)

		// Register webhook: auto-detect ngrok or fallback to manual config
		webhookURL := cfg.Telegram.WebhookURL
		if webhookURL == "" {
			ngrokURL, ngrokErr := detectNgrokURL(ctx, defaultNgrokAPI)
			if ngrokErr != nil {
				logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
			} else {
				webhookURL = ngrokURL + httpserver.TelegramWebhookPath
				logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
			}
		}

		if webhookURL != "" {
			if whErr := telegramBot.SetWebhook(ctx, webhookURL, cfg.Telegram.WebhookSecret); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		Sessions:        sessions,
		Classifier:      classifier,
		Catalog:         catalog,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
