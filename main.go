package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v9"

	"github.com/okhramov/llm-telegram-bot/pkg/auth"
	"github.com/okhramov/llm-telegram-bot/pkg/database"
	"github.com/okhramov/llm-telegram-bot/pkg/digitalocean"
	"github.com/okhramov/llm-telegram-bot/pkg/domain"
	"github.com/okhramov/llm-telegram-bot/pkg/llm"
	"github.com/okhramov/llm-telegram-bot/pkg/logger"
	"github.com/okhramov/llm-telegram-bot/pkg/repository"
	"github.com/okhramov/llm-telegram-bot/pkg/services"
	"github.com/okhramov/llm-telegram-bot/pkg/telegram"
	"github.com/okhramov/llm-telegram-bot/pkg/telegram/handler"
	"github.com/okhramov/llm-telegram-bot/pkg/workers"
)

type Config struct {
	TelegramBotToken          string  `env:"TELEGRAM_BOT_TOKEN,required"`
	TelegramAuthorizedUserIDs []int64 `env:"TELEGRAM_AUTHORIZED_USER_IDS" envSeparator:" "`

	LLMProvider string `env:"LLM_PROVIDER" envDefault:"local"`
	LLMAPIKey   string `env:"LLM_API_KEY"`
	LLMModel    string `env:"LLM_MODEL"`
	LLMBaseURL  string `env:"LLM_BASE_URL"`

	PgURL      string `env:"DATABASE_URL"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"data/bot.db"`

	ChatTTL         time.Duration `env:"CHAT_TTL" envDefault:"0"`
	MaxHistoryPairs int           `env:"MAX_HISTORY_PAIRS" envDefault:"10"`

	DigitalOceanToken string `env:"DIGITALOCEAN_TOKEN"`
}

func main() {
	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, logger.DefaultOptions)))

	if err := runMain(); err != nil {
		slog.Error("shutting down due to error", logger.Err(err))
		os.Exit(1)
	}
	slog.Info("shutdown complete")
}

func runMain() error {
	workerGroup, err := setupWorkers()
	if err != nil {
		return err
	}

	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		select {
		case s := <-sigCh:
			slog.Info("shutting down due to signal", "signal", s.String())
			cancelFn()
		case <-ctx.Done():
		}
	}()

	return workerGroup.Start(ctx)
}

func setupWorkers() (workers.Group, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing env config: %w", err)
	}

	telegramClient, err := telegram.NewClient(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("creating telegram client: %w", err)
	}
	authenticator := auth.NewAuthenticator(cfg.TelegramAuthorizedUserIDs)

	db, err := database.New(cfg.PgURL, cfg.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("creating db: %w", err)
	}

	promptRepository := repository.NewPromptsRepository(db)
	if err := promptRepository.Load(context.Background()); err != nil {
		return nil, fmt.Errorf("loading prompts: %w", err)
	}
	sessionRepository := repository.NewSessionsRepository(cfg.ChatTTL)

	provider, err := llm.NewProvider(llm.Config{
		Kind:    cfg.LLMProvider,
		APIKey:  cfg.LLMAPIKey,
		Model:   cfg.LLMModel,
		BaseURL: cfg.LLMBaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating llm provider: %w", err)
	}

	chatService := services.NewChatService(
		sessionRepository,
		promptRepository,
		provider,
		cfg.MaxHistoryPairs,
	)

	responseCh := make(chan domain.Response)

	handlers := []telegram.Handler{
		handler.NewStart(chatService, responseCh),
		handler.NewClearChat(chatService, responseCh),
		handler.NewListPrompts(chatService, responseCh),
		handler.NewSetPrompt(chatService, responseCh),
		handler.NewAddPrompt(chatService, responseCh),
	}
	var helpExtras []string
	if cfg.DigitalOceanToken != "" {
		handlers = append(handlers, handler.NewBalance(digitalocean.NewClient(cfg.DigitalOceanToken), responseCh))
		helpExtras = append(helpExtras, handler.BalanceHelp)
	}
	handlers = append(handlers, handler.NewHelp(responseCh, helpExtras...))
	// The free-text handler claims everything else, so it goes last.
	handlers = append(handlers, handler.NewChat(chatService, responseCh))

	router := telegram.NewRouter(handlers)

	var workerGroup workers.Group

	listener, err := workers.NewTelegramUpdateListener(
		telegramClient,
		authenticator,
		router,
		responseCh,
	)
	if err != nil {
		return nil, fmt.Errorf("creating telegram update listener: %w", err)
	}
	workerGroup = append(workerGroup, listener)

	slog.Info("bot configured", "provider", cfg.LLMProvider, "model", cfg.LLMModel)

	return workerGroup, nil
}
