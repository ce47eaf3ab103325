package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tg "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/BalanceBalls/duty-bot/internal/bot"
	"github.com/BalanceBalls/duty-bot/internal/duty"
	htmlgenerator "github.com/BalanceBalls/duty-bot/internal/generator/html"
	"github.com/BalanceBalls/duty-bot/internal/keepalive"
	"github.com/BalanceBalls/duty-bot/internal/logger"
	"github.com/BalanceBalls/duty-bot/internal/storage"
	"github.com/BalanceBalls/duty-bot/internal/storage/postgres"
	"github.com/BalanceBalls/duty-bot/internal/storage/sqlite"
)

func main() {
	cfg, err := bot.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %s", err)
	}

	appLogger, err := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	if err != nil {
		log.Fatalf("failed to create logger: %s", err)
	}
	slog.SetDefault(appLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.AddToContext(ctx, appLogger)

	if err := run(ctx, cfg); err != nil {
		appLogger.ErrorContext(ctx, "duty bot stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *bot.Config) error {
	log := logger.GetFromContext(ctx)

	journal, err := openJournal(cfg.JournalDriver, cfg.JournalDsn)
	if err != nil {
		return err
	}
	defer journal.Close()

	if err := journal.Up(ctx); err != nil {
		return fmt.Errorf("failed to prepare journal: %w", err)
	}

	api, err := tg.NewBotAPI(cfg.BotToken)
	if err != nil {
		return fmt.Errorf("failed to create telegram client: %w", err)
	}
	log.InfoContext(ctx, "authorized on account", "account", api.Self.UserName)

	tracker := duty.NewTracker()
	gen := htmlgenerator.New(cfg.ReportFileDir, cfg.ReportTemplate)
	dutyBot := bot.New(cfg, api, tracker, journal, gen)

	if cfg.KeepAlive {
		server := keepalive.New(cfg.KeepAliveAddr, tracker, log)
		go func() {
			if err := server.Run(ctx); err != nil {
				log.ErrorContext(ctx, "keep-alive server failed", "error", err)
			}
		}()
	}

	go dutyBot.RunWeeklyReports(ctx, cfg.ReportInterval)

	u := tg.NewUpdate(0)
	u.Timeout = cfg.UpdatesTimeout

	updates := api.GetUpdatesChan(u)
	dutyBot.Serve(ctx, updates)
	api.StopReceivingUpdates()

	log.InfoContext(ctx, "shutting down")
	return nil
}

func openJournal(driver, dsn string) (storage.Journal, error) {
	switch driver {
	case storage.DriverSqlite:
		return sqlite.New(dsn)
	case storage.DriverPostgres:
		return postgres.New(dsn)
	case storage.DriverNone:
		return storage.Nop(), nil
	default:
		return nil, fmt.Errorf("%w: %q", storage.ErrUnknownDriver, driver)
	}
}
