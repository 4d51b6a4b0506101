package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mkulima/livestock-market/internal/database/models"
)

// LivestockRepository defines the interface for livestock listing operations
type LivestockRepository interface {
	Create(livestock *models.Livestock) error
	FindByID(id uint) (*models.Livestock, error)
	// FindByIDIncludingDeleted also returns soft-deleted rows, for restore
	FindByIDIncludingDeleted(id uint) (*models.Livestock, error)
	List() ([]models.Livestock, error)
	ListByOwner(ownerID uint) ([]models.Livestock, error)
	Update(livestock *models.Livestock) error
	SoftDelete(id uint) error
	Restore(id uint) error
}

type livestockRepository struct {
	db *gorm.DB
}

// NewLivestockRepository creates a new livestock repository instance
func NewLivestockRepository(db *gorm.DB) LivestockRepository {
	return &livestockRepository{db: db}
}

func (r *livestockRepository) Create(livestock *models.Livestock) error {
	return r.db.Create(livestock).Error
}

func (r *livestockRepository) FindByID(id uint) (*models.Livestock, error) {
	var livestock models.Livestock
	err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&livestock).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLivestockNotFound
		}
		return nil, err
	}
	return &livestock, nil
}

func (r *livestockRepository) FindByIDIncludingDeleted(id uint) (*models.Livestock, error) {
	var livestock models.Livestock
	err := r.db.Where("id = ?", id).First(&livestock).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLivestockNotFound
		}
		return nil, err
	}
	return &livestock, nil
}

func (r *livestockRepository) List() ([]models.Livestock, error) {
	var listings []models.Livestock
	err := r.db.Where("is_deleted = ?", false).Order("created_at DESC").Find(&listings).Error
	return listings, err
}

func (r *livestockRepository) ListByOwner(ownerID uint) ([]models.Livestock, error) {
	var listings []models.Livestock
	err := r.db.Where("owner_id = ? AND is_deleted = ?", ownerID, false).
		Order("created_at DESC").Find(&listings).Error
	return listings, err
}

func (r *livestockRepository) Update(livestock *models.Livestock) error {
	return r.db.Save(livestock).Error
}

func (r *livestockRepository) SoftDelete(id uint) error {
	result := r.db.Model(&models.Livestock{}).
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
		return ErrLivestockNotFound
	}
	return nil
}

func (r *livestockRepository) Restore(id uint) error {
	result := r.db.Model(&models.Livestock{}).
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
		return ErrLivestockNotFound
	}
	return nil
}
