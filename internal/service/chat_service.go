package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/aircloud/supportbot/internal/domain"
	"github.com/aircloud/supportbot/internal/llm"
)

// SettingsStore is the configuration read needed by the pipeline.
type SettingsStore interface {
	Get() (*domain.BotConfig, error)
}

// ProductStore is the catalog read needed by the pipeline.
type ProductStore interface {
	List() ([]*domain.Product, error)
}

// ChatLogStore records completed exchanges.
type ChatLogStore interface {
	Append(sessionID, userMessage, botReply string) (*domain.ChatLogEntry, error)
}

// ChatService runs the chat pipeline: enabled check, prompt assembly,
// generation, logging.
type ChatService struct {
	settings SettingsStore
	products ProductStore
	logs     ChatLogStore
	provider llm.CompletionProvider
	logger   *zap.Logger
	timeout  time.Duration
}

// NewChatService creates a new chat service
func NewChatService(
	settings SettingsStore,
	products ProductStore,
	logs ChatLogStore,
	provider llm.CompletionProvider,
	logger *zap.Logger,
	timeout time.Duration,
) *ChatService {
	return &ChatService{
		settings: settings,
		products: products,
		logs:     logs,
		provider: provider,
		logger:   logger,
		timeout:  timeout,
	}
}

// Chat handles one chat message. Configuration and catalog are re-read on
// every request so admin edits take effect on the next message. A disabled
// or unreadable configuration yields the fixed offline reply without a log
// entry; a provider failure yields an error without a log entry; a log
// write failure is non-fatal to the caller.
func (s *ChatService) Chat(ctx context.Context, req *domain.ChatRequest) (*domain.ChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, fmt.Errorf("%w: message is required", domain.ErrInvalidRequest)
	}

	cfg, err := s.settings.Get()
	if err != nil {
		// Unreadable settings answer as offline, but are logged apart
		// from an admin-disabled bot.
		s.logger.Warn("settings unavailable, answering offline", zap.Error(err))
		return &domain.ChatResponse{Reply: domain.OfflineReply}, nil
	}
	if cfg == nil {
		s.logger.Warn("settings not seeded, answering offline")
		return &domain.ChatResponse{Reply: domain.OfflineReply}, nil
	}
	if !cfg.IsActive {
		s.logger.Info("bot disabled, answering offline")
		return &domain.ChatResponse{Reply: domain.OfflineReply}, nil
	}

	// Catalog unavailability must never block chat.
	products, err := s.products.List()
	if err != nil {
		s.logger.Warn("catalog unavailable, omitting inventory from prompt", zap.Error(err))
		products = nil
	}

	prompt := BuildPrompt(cfg.Context, products, req.Message)

	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reply, err := s.provider.Generate(genCtx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderFailure, err)
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = domain.GuestSession
	}

	if _, err := s.logs.Append(sessionID, req.Message, reply); err != nil {
		// The user already has a reply; losing the transcript row is an
		// operator problem, not a caller error.
		s.logger.Warn("failed to persist chat log",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
	}

	return &domain.ChatResponse{Reply: reply}, nil
}
