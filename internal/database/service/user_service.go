package service

import (
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/mkulima/livestock-market/internal/database/models"
	"github.com/mkulima/livestock-market/internal/database/repository"
)

// UserService defines the interface for user profile business logic
type UserService interface {
	GetProfile(userID uint) (*models.User, error)
	UpdateProfile(userID uint, input UpdateProfileInput) (*models.User, error)
	DeleteProfile(userID uint) error
	RestoreUser(userID uint) error
	ListUsers() ([]models.User, error)
	GetUser(id uint) (*models.User, error)
	ListUsersByRole(role string) ([]models.User, error)
}

// UpdateProfileInput holds optional profile mutations; nil means leave as is
type UpdateProfileInput struct {
	Name     *string
	Phone    *string
	Password *string
}

type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repository.UserRepository, logger *slog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *userService) GetProfile(userID uint) (*models.User, error) {
	return s.userRepo.FindByID(userID)
}

func (s *userService) UpdateProfile(userID uint, input UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, validationError("Name cannot be empty")
		}
		user.Name = *input.Name
	}
	if input.Phone != nil {
		if !models.IsValidPhone(*input.Phone) {
			return nil, validationError("Phone must be 10 digits")
		}
		user.Phone = *input.Phone
	}
	if input.Password != nil {
		if !models.IsValidPassword(*input.Password) {
			return nil, validationError("Invalid password format")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			s.logger.Error("❌ [UserService] Failed to hash password", "error", err)
			return nil, err
		}
		user.PasswordHash = string(hashed)
	}

	if err := s.userRepo.Update(user); err != nil {
		s.logger.Error("❌ [UserService] Failed to update profile", "error", err, "user_id", userID)
		return nil, err
	}

	s.logger.Info("✅ [UserService] Profile updated", "user_id", userID)
	return user, nil
}

func (s *userService) DeleteProfile(userID uint) error {
	if err := s.userRepo.SoftDelete(userID); err != nil {
		return err
	}
	s.logger.Info("🗑️ [UserService] Profile soft-deleted", "user_id", userID)
	return nil
}

func (s *userService) RestoreUser(userID uint) error {
	if err := s.userRepo.Restore(userID); err != nil {
		return err
	}
	s.logger.Info("♻️ [UserService] User restored", "user_id", userID)
	return nil
}

func (s *userService) ListUsers() ([]models.User, error) {
	return s.userRepo.List()
}

func (s *userService) GetUser(id uint) (*models.User, error) {
	return s.userRepo.FindByID(id)
}

func (s *userService) ListUsersByRole(role string) ([]models.User, error) {
	return s.userRepo.ListByRole(role)
}
