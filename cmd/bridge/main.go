package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/pixaro/brand-social-bridge/internal/biz/usecase"
	"github.com/pixaro/brand-social-bridge/internal/conf"
	"github.com/pixaro/brand-social-bridge/internal/data"
	"github.com/pixaro/brand-social-bridge/internal/infra/openai"
	"github.com/pixaro/brand-social-bridge/internal/infra/twitter"
	"github.com/pixaro/brand-social-bridge/internal/server"
	"github.com/pixaro/brand-social-bridge/internal/service"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := conf.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	// Initialize clients
	twitterClient := twitter.NewClient(cfg.Twitter.ConsumerKey, cfg.Twitter.ConsumerSecret)

	var openaiClient *openai.Client
	if cfg.OpenAI.APIKey != "" {
		openaiClient = openai.NewClient(
			cfg.OpenAI.APIKey,
			cfg.OpenAI.Model,
			cfg.Brand.Handle,
			cfg.Brand.Niche,
			openai.Prompts{
				Caption:  cfg.Prompts.Composer.CaptionPrompt,
				Hashtags: cfg.Prompts.Composer.HashtagPrompt,
				System:   cfg.Prompts.Chat.SystemPrompt,
			},
		)
		fmt.Println("[Bridge] Content generation enabled")
	} else {
		fmt.Println("[Bridge] OPENAI_API_KEY not set, using fallback content")
	}

	// Initialize repository layer
	repos, err := data.NewRepositories(
		twitterClient,
		openaiClient,
		cfg.History.DBPath,
		cfg.Server.UploadDir,
		cfg.Twitter.HandshakeTTL,
	)
	if err != nil {
		log.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.History.Close()

	fmt.Printf("[Bridge] History DB: %s\n", cfg.History.DBPath)

	// Initialize usecase layer
	callbackURL := cfg.Server.BaseURL + "/auth/callback"
	connectUC := usecase.NewConnectUsecase(repos.Provider, repos.Handshakes, repos.Credentials, callbackURL)
	composerUC := usecase.NewComposerUsecase(repos.Generator)
	publishUC := usecase.NewPublishUsecase(repos.Credentials, repos.Provider, repos.Media)
	chatUC := usecase.NewChatUsecase(composerUC, publishUC, repos.Generator, repos.History, cfg.History.MaxCount)

	// Start background history cleanup
	janitor := service.NewJanitor(repos.History, cfg.History.MaxAge)
	janitor.Start()

	// Initialize HTTP server
	srv := server.NewServer(connectUC, chatUC, composerUC, publishUC, cfg.Server.Port)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println("\nShutting down...")
		janitor.Stop()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Stop(ctx); err != nil {
			fmt.Printf("[Bridge] Shutdown error: %v\n", err)
		}
	}()

	fmt.Printf("[Bridge] Callback URL: %s\n", callbackURL)
	if err := srv.Start(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
