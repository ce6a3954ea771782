package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/aircloud/supportbot/internal/domain"
	"github.com/aircloud/supportbot/internal/repository"
)

// AdminService handles admin operations
type AdminService struct {
	settingsRepo *repository.SettingsRepository
	productRepo  *repository.ProductRepository
	chatLogRepo  *repository.ChatLogRepository
	logger       *zap.Logger
}

// NewAdminService creates a new admin service
func NewAdminService(
	settingsRepo *repository.SettingsRepository,
	productRepo *repository.ProductRepository,
	chatLogRepo *repository.ChatLogRepository,
	logger *zap.Logger,
) *AdminService {
	return &AdminService{
		settingsRepo: settingsRepo,
		productRepo:  productRepo,
		chatLogRepo:  chatLogRepo,
		logger:       logger,
	}
}

// Settings operations

func (s *AdminService) GetSettings(ctx context.Context) (*domain.BotConfig, error) {
	cfg, err := s.settingsRepo.Get()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, domain.ErrNotFound
	}
	return cfg, nil
}

func (s *AdminService) UpdateSettings(ctx context.Context, req *domain.UpdateSettingsRequest) (*domain.BotConfig, error) {
	cfg, err := s.settingsRepo.Upsert(req.Context, req.IsActive)
	if err != nil {
		return nil, err
	}
	s.logger.Info("bot settings updated", zap.Bool("is_active", cfg.IsActive))
	return cfg, nil
}

// Product operations

func (s *AdminService) CreateProduct(ctx context.Context, req *domain.CreateProductRequest) (*domain.Product, error) {
	product := &domain.Product{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *AdminService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.productRepo.List()
}

// Chat log operations

func (s *AdminService) ListLogs(ctx context.Context, needle string) ([]*domain.ChatLogEntry, error) {
	return s.chatLogRepo.List(needle)
}

// GroupedLogs returns the full log partitioned by session, filtered by the
// same case-insensitive session substring as ListLogs.
func (s *AdminService) GroupedLogs(ctx context.Context, needle string) (map[string][]*domain.ChatLogEntry, error) {
	entries, err := s.chatLogRepo.List("")
	if err != nil {
		return nil, err
	}
	return domain.GroupLogsBySession(entries, needle), nil
}

// DeleteSession removes every log entry of one session and reports the count.
func (s *AdminService) DeleteSession(ctx context.Context, sessionID string) (int64, error) {
	deleted, err := s.chatLogRepo.DeleteBySession(sessionID)
	if err != nil {
		return 0, err
	}
	s.logger.Info("chat session deleted",
		zap.String("session_id", sessionID),
		zap.Int64("entries", deleted),
	)
	return deleted, nil
}
