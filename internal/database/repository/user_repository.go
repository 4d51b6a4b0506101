package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mkulima/livestock-market/internal/database/models"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(user *models.User) error
	// CreateWithProfile atomically creates the user together with its
	// role-specific profile; either everything persists or nothing does.
	CreateWithProfile(user *models.User, farmer *models.Farmer, broker *models.Broker) error
	FindByEmail(email string) (*models.User, error)
	FindByID(id uint) (*models.User, error)
	List() ([]models.User, error)
	ListByRole(role string) ([]models.User, error)
	Update(user *models.User) error
	SoftDelete(id uint) error
	Restore(id uint) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (r *userRepository) CreateWithProfile(user *models.User, farmer *models.Farmer, broker *models.Broker) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if farmer != nil {
			farmer.UserID = user.ID
			if err := tx.Create(farmer).Error; err != nil {
				return err
			}
			user.Farmer = farmer
		}
		if broker != nil {
			broker.UserID = user.ID
			if err := tx.Create(broker).Error; err != nil {
				return err
			}
			user.Broker = broker
		}
		return nil
	})
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ? AND is_deleted = ?", email, false).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List() ([]models.User, error) {
	var users []models.User
	err := r.db.Where("is_deleted = ?", false).Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *userRepository) ListByRole(role string) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("role = ? AND is_deleted = ?", role, false).Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) SoftDelete(id uint) error {
	result := r.db.Model(&models.User{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]interface{}{
			"is_deleted": true,
			"deleted_at": time.Now().UTC(),
			"is_active":  false,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *userRepository) Restore(id uint) error {
	result := r.db.Model(&models.User{}).
		Where("id = ? AND is_deleted = ?", id, true).
		Updates(map[string]interface{}{
			"is_deleted": false,
			"deleted_at": nil,
			"is_active":  true,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
