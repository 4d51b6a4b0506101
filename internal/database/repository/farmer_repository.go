package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mkulima/livestock-market/internal/database/models"
)

// FarmerRepository defines the interface for farmer profile operations
type FarmerRepository interface {
	Create(farmer *models.Farmer) error
	FindByID(id uint) (*models.Farmer, error)
	FindByUserID(userID uint) (*models.Farmer, error)
	List() ([]models.Farmer, error)
	ListByLocation(location string) ([]models.Farmer, error)
	SoftDelete(id uint) error
	Restore(id uint) error
}

type farmerRepository struct {
	db *gorm.DB
}

// NewFarmerRepository creates a new farmer repository instance
func NewFarmerRepository(db *gorm.DB) FarmerRepository {
	return &farmerRepository{db: db}
}

func (r *farmerRepository) Create(farmer *models.Farmer) error {
	if err := r.db.Create(farmer).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (r *farmerRepository) FindByID(id uint) (*models.Farmer, error) {
	var farmer models.Farmer
	err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&farmer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFarmerNotFound
		}
		return nil, err
	}
	return &farmer, nil
}

func (r *farmerRepository) FindByUserID(userID uint) (*models.Farmer, error) {
	var farmer models.Farmer
	err := r.db.Where("user_id = ? AND is_deleted = ?", userID, false).First(&farmer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFarmerNotFound
		}
		return nil, err
	}
	return &farmer, nil
}

func (r *farmerRepository) List() ([]models.Farmer, error) {
	var farmers []models.Farmer
	err := r.db.Where("is_deleted = ?", false).Order("created_at DESC").Find(&farmers).Error
	return farmers, err
}

func (r *farmerRepository) ListByLocation(location string) ([]models.Farmer, error) {
	var farmers []models.Farmer
	err := r.db.Where("farm_location = ? AND is_deleted = ?", location, false).
		Order("created_at DESC").Find(&farmers).Error
	return farmers, err
}

func (r *farmerRepository) SoftDelete(id uint) error {
	result := r.db.Model(&models.Farmer{}).
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
		return ErrFarmerNotFound
	}
	return nil
}

func (r *farmerRepository) Restore(id uint) error {
	result := r.db.Model(&models.Farmer{}).
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
		return ErrFarmerNotFound
	}
	return nil
}
