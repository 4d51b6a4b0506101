package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mkulima/livestock-market/internal/database/models"
)

// BrokerRepository defines the interface for broker profile operations
type BrokerRepository interface {
	Create(broker *models.Broker) error
	FindByID(id uint) (*models.Broker, error)
	FindByUserID(userID uint) (*models.Broker, error)
	List() ([]models.Broker, error)
	SoftDelete(id uint) error
	Restore(id uint) error
}

type brokerRepository struct {
	db *gorm.DB
}

// NewBrokerRepository creates a new broker repository instance
func NewBrokerRepository(db *gorm.DB) BrokerRepository {
	return &brokerRepository{db: db}
}

func (r *brokerRepository) Create(broker *models.Broker) error {
	if err := r.db.Create(broker).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (r *brokerRepository) FindByID(id uint) (*models.Broker, error) {
	var broker models.Broker
	err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&broker).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrokerNotFound
		}
		return nil, err
	}
	return &broker, nil
}

func (r *brokerRepository) FindByUserID(userID uint) (*models.Broker, error) {
	var broker models.Broker
	err := r.db.Where("user_id = ? AND is_deleted = ?", userID, false).First(&broker).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrokerNotFound
		}
		return nil, err
	}
	return &broker, nil
}

func (r *brokerRepository) List() ([]models.Broker, error) {
	var brokers []models.Broker
	err := r.db.Where("is_deleted = ?", false).Order("created_at DESC").Find(&brokers).Error
	return brokers, err
}

func (r *brokerRepository) SoftDelete(id uint) error {
	result := r.db.Model(&models.Broker{}).
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
		return ErrBrokerNotFound
	}
	return nil
}

func (r *brokerRepository) Restore(id uint) error {
	result := r.db.Model(&models.Broker{}).
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
		return ErrBrokerNotFound
	}
	return nil
}
