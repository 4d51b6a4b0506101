package service

import (
	"log/slog"

	"github.com/mkulima/livestock-market/internal/database/models"
	"github.com/mkulima/livestock-market/internal/database/repository"
)

// LivestockService defines the interface for livestock listing business logic
type LivestockService interface {
	ListLivestock() ([]models.Livestock, error)
	GetLivestock(id uint) (*models.Livestock, error)
	CreateLivestock(ownerID uint, input LivestockInput) (*models.Livestock, error)
	UpdateLivestock(id, actingUserID uint, input LivestockInput) (*models.Livestock, error)
	DeleteLivestock(id, actingUserID uint) error
	RestoreLivestock(id, actingUserID uint) error
	ListOwnedLivestock(ownerID uint) ([]models.Livestock, error)
}

// LivestockInput carries the mutable listing attributes
type LivestockInput struct {
	Breed       string
	Age         string
	Weight      string
	Price       float64
	Location    string
	Image       string
	Description string
}

type livestockService struct {
	livestockRepo repository.LivestockRepository
	userRepo      repository.UserRepository
	logger        *slog.Logger
}

// NewLivestockService creates a new livestock service instance
func NewLivestockService(
	livestockRepo repository.LivestockRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) LivestockService {
	return &livestockService{
		livestockRepo: livestockRepo,
		userRepo:      userRepo,
		logger:        logger,
	}
}

func (s *livestockService) ListLivestock() ([]models.Livestock, error) {
	return s.livestockRepo.List()
}

func (s *livestockService) GetLivestock(id uint) (*models.Livestock, error) {
	return s.livestockRepo.FindByID(id)
}

func validateLivestockInput(input LivestockInput) error {
	if input.Breed == "" || input.Age == "" || input.Weight == "" || input.Location == "" {
		return validationError("Missing required fields")
	}
	if input.Price <= 0 {
		return validationError("Price must be greater than 0")
	}
	return nil
}

func (s *livestockService) CreateLivestock(ownerID uint, input LivestockInput) (*models.Livestock, error) {
	if err := validateLivestockInput(input); err != nil {
		return nil, err
	}

	// Owner must resolve to an existing, non-deleted user
	if _, err := s.userRepo.FindByID(ownerID); err != nil {
		return nil, err
	}

	livestock := &models.Livestock{
		Breed:       input.Breed,
		Age:         input.Age,
		Weight:      input.Weight,
		Price:       input.Price,
		Location:    input.Location,
		Image:       input.Image,
		Description: input.Description,
		OwnerID:     ownerID,
		IsActive:    true,
	}

	if err := s.livestockRepo.Create(livestock); err != nil {
		s.logger.Error("❌ [LivestockService] Failed to create listing", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [LivestockService] Listing created", "livestock_id", livestock.ID, "owner_id", ownerID)
	return livestock, nil
}

func (s *livestockService) UpdateLivestock(id, actingUserID uint, input LivestockInput) (*models.Livestock, error) {
	livestock, err := s.livestockRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if livestock.OwnerID != actingUserID {
		s.logger.Warn("⚠️ [LivestockService] Ownership check failed",
			"livestock_id", id, "owner_id", livestock.OwnerID, "acting_user_id", actingUserID)
		return nil, ErrNotOwner
	}

	if err := validateLivestockInput(input); err != nil {
		return nil, err
	}

	livestock.Breed = input.Breed
	livestock.Age = input.Age
	livestock.Weight = input.Weight
	livestock.Price = input.Price
	livestock.Location = input.Location
	livestock.Description = input.Description
	if input.Image != "" {
		livestock.Image = input.Image
	}

	if err := s.livestockRepo.Update(livestock); err != nil {
		s.logger.Error("❌ [LivestockService] Failed to update listing", "error", err, "livestock_id", id)
		return nil, err
	}

	s.logger.Info("✅ [LivestockService] Listing updated", "livestock_id", id)
	return livestock, nil
}

func (s *livestockService) DeleteLivestock(id, actingUserID uint) error {
	livestock, err := s.livestockRepo.FindByID(id)
	if err != nil {
		return err
	}

	if livestock.OwnerID != actingUserID {
		return ErrNotOwner
	}

	if err := s.livestockRepo.SoftDelete(id); err != nil {
		return err
	}
	s.logger.Info("🗑️ [LivestockService] Listing soft-deleted", "livestock_id", id)
	return nil
}

func (s *livestockService) RestoreLivestock(id, actingUserID uint) error {
	livestock, err := s.livestockRepo.FindByIDIncludingDeleted(id)
	if err != nil {
		return err
	}

	if livestock.OwnerID != actingUserID {
		return ErrNotOwner
	}

	if err := s.livestockRepo.Restore(id); err != nil {
		return err
	}
	s.logger.Info("♻️ [LivestockService] Listing restored", "livestock_id", id)
	return nil
}

func (s *livestockService) ListOwnedLivestock(ownerID uint) ([]models.Livestock, error) {
	return s.livestockRepo.ListByOwner(ownerID)
}
