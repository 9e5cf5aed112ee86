package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"chat-relay/internal/analytics"
	"chat-relay/internal/auth"
	"chat-relay/internal/config"
	"chat-relay/internal/llm"
	"chat-relay/internal/scheduler"
	"chat-relay/internal/storage"
	"chat-relay/internal/telegram"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	llmClient, err := llm.NewClient(
		string(cfg.LLMProvider),
		cfg.OpenAIAPIKey,
		cfg.OpenAIBaseURL,
		cfg.OpenAIModel,
		cfg.OpenRouterReferrer,
		cfg.OpenRouterTitle,
		cfg.YandexOAuthToken,
		cfg.YandexFolderID,
	)
	if err != nil {
		log.Fatalf("failed to create llm client: %v", err)
	}

	var rec storage.Recorder
	if cfg.LogFilePath != "" {
		fr, err := storage.NewFileRecorder(cfg.LogFilePath)
		if err != nil {
			log.Printf("failed to init file recorder: %v", err)
		} else {
			rec = fr
		}
	}

	bot, err := telegram.New(
		cfg.TelegramBotToken,
		llmClient,
		auth.New(cfg.AllowedChats),
		rec,
		readSystemPrompt(cfg.SystemPromptPath),
		cfg.WebhookSecret,
	)
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}

	if rec != nil && cfg.AdminChatID != 0 {
		sched := scheduler.New()
		sched.SetReportFunction(func(ctx context.Context) error {
			events, err := rec.LoadInteractions()
			if err != nil {
				return err
			}
			stats := analytics.AnalyzeDailyLogs(events, time.Now().UTC())
			return bot.SendTo(cfg.AdminChatID, stats.ReportSummary())
		})
		if err := sched.Start(); err != nil {
			log.Printf("failed to start scheduler: %v", err)
		}
		defer sched.Stop()
	}

	mux := http.NewServeMux()
	mux.Handle("/api/webhook", bot.Handler())

	// No WriteTimeout: the webhook ack waits for the completion call, which
	// enforces its own deadline.
	srv := &http.Server{
		Addr:        cfg.ListenAddr,
		Handler:     mux,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}
	log.Printf("listening on %s", cfg.ListenAddr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func readSystemPrompt(path string) string {
	if path == "" {
		return telegram.DefaultSystemPrompt
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("system prompt file not found or unreadable at %s: %v", path, err)
		return telegram.DefaultSystemPrompt
	}
	if s := strings.TrimSpace(string(data)); s != "" {
		return s
	}
	return telegram.DefaultSystemPrompt
}
