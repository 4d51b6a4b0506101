package service

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/mkulima/livestock-market/internal/database/models"
	"github.com/mkulima/livestock-market/internal/database/repository"
)

// BrokerService defines the interface for broker profile business logic
type BrokerService interface {
	ListBrokers() ([]models.Broker, error)
	GetBroker(id uint) (*models.Broker, error)
	CreateBroker(userID uint, companyName, address string) (*models.Broker, error)
}

type brokerService struct {
	brokerRepo repository.BrokerRepository
	userRepo   repository.UserRepository
	logger     *slog.Logger
}

// NewBrokerService creates a new broker service instance
func NewBrokerService(
	brokerRepo repository.BrokerRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) BrokerService {
	return &brokerService{
		brokerRepo: brokerRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (s *brokerService) ListBrokers() ([]models.Broker, error) {
	return s.brokerRepo.List()
}

func (s *brokerService) GetBroker(id uint) (*models.Broker, error) {
	return s.brokerRepo.FindByID(id)
}

func (s *brokerService) CreateBroker(userID uint, companyName, address string) (*models.Broker, error) {
	if len(strings.TrimSpace(companyName)) < 2 {
		return nil, validationError("Company name must be at least 2 characters long")
	}

	if _, err := s.userRepo.FindByID(userID); err != nil {
		return nil, err
	}

	broker := &models.Broker{
		UserID:      userID,
		CompanyName: companyName,
		Address:     address,
		IsActive:    true,
	}

	if err := s.brokerRepo.Create(broker); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			s.logger.Warn("⚠️ [BrokerService] Broker profile already exists", "user_id", userID)
			return nil, ErrProfileExists
		}
		s.logger.Error("❌ [BrokerService] Failed to create broker", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [BrokerService] Broker profile created", "broker_id", broker.ID, "user_id", userID)
	return broker, nil
}
