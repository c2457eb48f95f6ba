package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"schedbot/internal/config"
	"schedbot/internal/domain"
	"schedbot/internal/identity"
	"schedbot/internal/llm"
	"schedbot/internal/mqtt"
	"schedbot/internal/orchestrator"
	"schedbot/internal/sched"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadServerConfig()
	if err != nil {
		logger.Error("load config failed", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := identity.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Error("connect db failed", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		logger.Error("migrate db failed", "error", err)
		os.Exit(1)
	}

	fallback, err := llm.NewProvider(llm.Config{
		Provider:         strings.ToLower(cfg.LLMProvider),
		Model:            cfg.LLMModel,
		OpenAIBaseURL:    cfg.OpenAIBaseURL,
		OpenAIAPIKey:     cfg.OpenAIAPIKey,
		AnthropicBaseURL: cfg.AnthropicBaseURL,
		AnthropicAPIKey:  cfg.AnthropicAPIKey,
	})
	if err != nil {
		logger.Error("init llm provider failed", "error", err)
		os.Exit(1)
	}

	schedClient := sched.NewClient(cfg.SchedAPIBaseURL, cfg.SchedAPIKey, cfg.SchedTimeout)

	svc := orchestrator.New(orchestrator.Config{
		LLMModel: cfg.LLMModel,
	}, store, schedClient, fallback, logger)

	bridge := mqtt.NewBridge(mqtt.BridgeConfig{
		BrokerURL:     cfg.MQTTBrokerURL,
		ClientID:      cfg.MQTTClientID,
		Username:      cfg.MQTTUsername,
		Password:      cfg.MQTTPassword,
		TopicPrefix:   cfg.MQTTTopicPrefix,
		HandleTimeout: cfg.HandleTimeout,
	}, svc, logger)
	if err := bridge.Start(ctx); err != nil {
		logger.Error("start mqtt bridge failed", "error", err)
		os.Exit(1)
	}

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
	r.Post("/v1/messages", func(w http.ResponseWriter, req *http.Request) {
		var msg domain.Message
		if err := json.NewDecoder(req.Body).Decode(&msg); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid json"})
			return
		}
		if strings.TrimSpace(msg.PlatformUserID) == "" {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "platform_user_id is required"})
			return
		}
		if strings.TrimSpace(msg.Text) == "" {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "text is required"})
			return
		}
		if msg.MessageID == "" {
			msg.MessageID = uuid.NewString()
		}
		if msg.ReceivedAt.IsZero() {
			msg.ReceivedAt = time.Now().UTC()
		}

		reply, err := svc.HandleMessage(req.Context(), msg)
		if err != nil {
			logger.Error("message handling failed", "message_id", msg.MessageID, "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, reply)
	})

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("schedbot server started", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			cancel()
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
		logger.Info("received shutdown signal")
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
