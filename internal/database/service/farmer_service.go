package service

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/mkulima/livestock-market/internal/database/models"
	"github.com/mkulima/livestock-market/internal/database/repository"
)

// FarmerService defines the interface for farmer profile business logic
type FarmerService interface {
	ListFarmers() ([]models.Farmer, error)
	GetFarmer(id uint) (*models.Farmer, error)
	CreateFarmer(userID uint, farmName, farmLocation string) (*models.Farmer, error)
	ListFarmersByLocation(location string) ([]models.Farmer, error)
	ListFarmerLivestock(farmerID uint) ([]models.Livestock, error)
}

type farmerService struct {
	farmerRepo    repository.FarmerRepository
	userRepo      repository.UserRepository
	livestockRepo repository.LivestockRepository
	logger        *slog.Logger
}

// NewFarmerService creates a new farmer service instance
func NewFarmerService(
	farmerRepo repository.FarmerRepository,
	userRepo repository.UserRepository,
	livestockRepo repository.LivestockRepository,
	logger *slog.Logger,
) FarmerService {
	return &farmerService{
		farmerRepo:    farmerRepo,
		userRepo:      userRepo,
		livestockRepo: livestockRepo,
		logger:        logger,
	}
}

func (s *farmerService) ListFarmers() ([]models.Farmer, error) {
	return s.farmerRepo.List()
}

func (s *farmerService) GetFarmer(id uint) (*models.Farmer, error) {
	return s.farmerRepo.FindByID(id)
}

func (s *farmerService) CreateFarmer(userID uint, farmName, farmLocation string) (*models.Farmer, error) {
	if len(strings.TrimSpace(farmName)) < 2 {
		return nil, validationError("Farm name must be at least 2 characters long")
	}

	// The user must exist and not be soft-deleted
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return nil, err
	}

	farmer := &models.Farmer{
		UserID:       userID,
		FarmName:     farmName,
		FarmLocation: farmLocation,
		IsActive:     true,
	}

	if err := s.farmerRepo.Create(farmer); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			s.logger.Warn("⚠️ [FarmerService] Farmer profile already exists", "user_id", userID)
			return nil, ErrProfileExists
		}
		s.logger.Error("❌ [FarmerService] Failed to create farmer", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [FarmerService] Farmer profile created", "farmer_id", farmer.ID, "user_id", userID)
	return farmer, nil
}

func (s *farmerService) ListFarmersByLocation(location string) ([]models.Farmer, error) {
	return s.farmerRepo.ListByLocation(location)
}

func (s *farmerService) ListFarmerLivestock(farmerID uint) ([]models.Livestock, error) {
	farmer, err := s.farmerRepo.FindByID(farmerID)
	if err != nil {
		return nil, err
	}
	return s.livestockRepo.ListByOwner(farmer.UserID)
}
