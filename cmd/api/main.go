package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"taskbuddy/config"
	_ "taskbuddy/docs" // Swagger docs
	"taskbuddy/internal/analyzer"
	"taskbuddy/internal/difficulty"
	"taskbuddy/internal/httpserver"
	"taskbuddy/internal/middleware"
	"taskbuddy/internal/nlu"
	"taskbuddy/internal/router"
	tgDelivery "taskbuddy/internal/task/delivery/telegram"
	sqliteRepo "taskbuddy/internal/task/repository/sqlite"
	"taskbuddy/internal/task/usecase"
	"taskbuddy/internal/temporal"
	"taskbuddy/pkg/datemath"
	"taskbuddy/pkg/gcalendar"
	"taskbuddy/pkg/log"
	"taskbuddy/pkg/telegram"
)

// @title       Task Buddy API
// @description Conversational task manager with Telegram, rule-based NLU, SQLite, and Google Calendar.
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

	logger.Info(ctx, "Starting Task Buddy...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Interpretation pipeline
	if err := analyzer.Init(); err != nil {
		logger.Errorf(ctx, "Failed to load linguistic model: %v", err)
		return
	}

	dateMathParser, err := datemath.NewParser(cfg.NLU.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.NLU.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	interpreter := nlu.New(
		logger,
		analyzer.Default(),
		temporal.New(dateMathParser),
		router.New(),
		difficulty.New(cfg.NLU.DifficultyLowCutoff, cfg.NLU.DifficultyHighCutoff),
	)

	// 4. Task domain
	taskRepo, err := sqliteRepo.New(cfg.Database.Path, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to open task database: %v", err)
		return
	}
	defer taskRepo.Close()

	// Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		} else {
			logger.Info(ctx, "✅ Google Calendar initialized")
		}
	}

	taskUC := usecase.New(logger, taskRepo, calendarClient, cfg.GoogleCalendar.CalendarID, cfg.NLU.Timezone)

	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)

		telegramHandler, err = tgDelivery.New(logger, interpreter, taskUC, telegramBot)
		if err != nil {
			logger.Errorf(ctx, "Failed to create Telegram handler: %v", err)
			return
		}

		// Register webhook: auto-detect ngrok or fall back to manual config
		webhookURL := cfg.Telegram.WebhookURL
		if webhookURL == "" {
			ngrokURL, ngrokErr := detectNgrokURL(ctx, "http://ngrok:4040")
			if ngrokErr != nil {
				logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
			} else {
				webhookURL = ngrokURL + "/webhook/telegram"
				logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
			}
		}

		if webhookURL != "" {
			if whErr := telegramBot.SetWebhook(webhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "Telegram disabled: TELEGRAM_BOT_TOKEN is missing")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      middleware.New(logger, cfg.Telegram.RateLimitPerMin),
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
