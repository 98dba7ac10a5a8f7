package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/robot-coder/converse-craft/internal/config"
	"github.com/robot-coder/converse-craft/internal/handlers"
	"github.com/robot-coder/converse-craft/internal/llm"
	"github.com/robot-coder/converse-craft/internal/router"
)

func main() {
	log.Println("🚀 Starting Converse Craft...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Build the Model Registry ────
	registry := llm.NewRegistry()
	registry.Register("liteLLM", llm.NewLiteLLMClient(cfg.LiteLLMBaseURL, cfg.LiteLLMAPIKey, cfg.LiteLLMModel))

	if cfg.GeminiAPIKey != "" {
		gemini, err := llm.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("✗ Gemini client initialization failed: %v", err)
		}
		defer gemini.Close()
		registry.Register("gemini", gemini)
	}

	if cfg.OllamaHost != "" {
		ollama, err := llm.NewOllamaClient(cfg.OllamaHost, cfg.OllamaModel)
		if err != nil {
			log.Fatalf("✗ Ollama client initialization failed: %v", err)
		}
		registry.Register("ollama", ollama)
	}

	log.Printf("✓ Models registered: %s", strings.Join(registry.Names(), ", "))

	// ──── Step 3: Initialize Handlers ────
	chatHandler := handlers.NewChatHandler(registry)

	// ──── Step 4: Start HTTP Server ────
	r := router.New(chatHandler, cfg.AllowedOrigin)

	server := &http.Server{
		Addr:        fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
		// No write timeout: the chat endpoint blocks on the upstream
		// completion call, which carries no deadline.
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Converse Craft ready on http://%s:%s", cfg.Host, cfg.Port)
	log.Printf("  Chat UI:  http://localhost:%s/", cfg.Port)
	log.Printf("  Endpoint: http://localhost:%s/api/chat", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
