package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"goal-chatter/internal/config"
	"goal-chatter/internal/conversation"
	"goal-chatter/internal/errreport"
	"goal-chatter/internal/llm"
	"goal-chatter/internal/scheduler"
	"goal-chatter/internal/state"
	"goal-chatter/internal/storage"
	"goal-chatter/internal/telegram"
)

var version = "dev"

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	errreport.Init(cfg.SentryDSN, cfg.SentryEnvironment, version)
	defer errreport.Flush()

	llmClient, err := llm.NewFactory(cfg).CreateClient(string(cfg.LLMProvider))
	if err != nil {
		log.Fatalf("failed to create llm client: %v", err)
	}

	backend, closeBackend, err := newStateBackend(cfg)
	if err != nil {
		log.Printf("⚠️ failed to init state backend, keeping state in memory: %v", err)
	}
	defer closeBackend()
	store := state.New(backend, cfg.HistoryLimit)

	var rec storage.Recorder
	if cfg.LogFilePath != "" {
		fr, err := storage.NewFileRecorder(cfg.LogFilePath)
		if err != nil {
			log.Printf("failed to init file recorder: %v", err)
		} else {
			rec = fr
		}
	}

	conv := conversation.New(store, llmClient, rec, conversation.Options{
		Model:       cfg.OpenAIModel,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
		Timeout:     cfg.LLMTimeout,
	})

	bot, err := telegram.New(cfg.BotToken, conv, rec, cfg.AdminUserID, cfg.MaxConcurrentUpdates)
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}

	sched := scheduler.New()
	if err := sched.Add("state-snapshot", cfg.SnapshotSchedule, func(context.Context) error {
		store.Snapshot()
		return nil
	}); err != nil {
		log.Printf("⚠️ %v", err)
	}
	if cfg.AdminUserID != 0 {
		if err := sched.Add("daily-report", cfg.ReportSchedule, bot.SendDailyReport); err != nil {
			log.Printf("⚠️ %v", err)
		}
	}
	if sched.IsRunning() {
		sched.Start()
	} else {
		log.Println("📅 No scheduled jobs configured")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bot.Start(ctx)

	sched.Stop()
	store.Snapshot()
	log.Println("👋 Bot stopped")
}

func newStateBackend(cfg *config.Config) (state.Backend, func(), error) {
	noop := func() {}
	switch cfg.StateBackend {
	case config.BackendFile:
		f, err := state.NewJSONFile(cfg.StateFilePath)
		if err != nil {
			return nil, noop, err
		}
		return f, noop, nil
	case config.BackendSQLite:
		db, err := state.NewSQLite(cfg.StateDBPath)
		if err != nil {
			return nil, noop, err
		}
		return db, func() { _ = db.Close() }, nil
	case config.BackendMemory:
		return nil, noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown state backend: %s", cfg.StateBackend)
	}
}
